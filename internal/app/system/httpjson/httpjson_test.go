package httpjson

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, 201, map[string]string{"name": "demo"})

	if rec.Code != 201 {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), `"name":"demo"`) {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	Message(rec, 404, "Project not found")

	if !strings.Contains(rec.Body.String(), `"message":"Project not found"`) {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestDecode(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid object", `{"name":"x"}`, false},
		{"empty body", ``, true},
		{"malformed", `{"name":`, true},
		{"trailing garbage", `{"name":"x"}{"name":"y"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/", strings.NewReader(tt.body))
			var p payload
			err := Decode(req, &p)
			if (err != nil) != tt.wantErr {
				t.Errorf("Decode(%q) error = %v, wantErr %v", tt.body, err, tt.wantErr)
			}
		})
	}
}
