package sanitize_test

import (
	"testing"

	"github.com/rvetrivignesh/teamify/internal/app/system/sanitize"
)

func TestText_Empty(t *testing.T) {
	if got := sanitize.Text(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestText_PlainTextUnchanged(t *testing.T) {
	if got := sanitize.Text("Backend engineer who likes Go."); got != "Backend engineer who likes Go." {
		t.Errorf("expected plain text unchanged, got %q", got)
	}
}

func TestText_RemovesScript(t *testing.T) {
	got := sanitize.Text(`hello<script>alert("xss")</script>`)
	if got != "hello" {
		t.Errorf("expected script removed, got %q", got)
	}
}

func TestText_RemovesTagsKeepsContent(t *testing.T) {
	got := sanitize.Text("<b>Go</b> and <i>Rust</i>")
	if got != "Go and Rust" {
		t.Errorf("expected markup stripped, got %q", got)
	}
}

func TestText_Trims(t *testing.T) {
	if got := sanitize.Text("  spaced out  "); got != "spaced out" {
		t.Errorf("expected trimmed text, got %q", got)
	}
}
