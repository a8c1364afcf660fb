package timeouts

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	Reset()
	if Ping() != DefaultPing {
		t.Errorf("expected default ping %v, got %v", DefaultPing, Ping())
	}
	if Short() != DefaultShort {
		t.Errorf("expected default short %v, got %v", DefaultShort, Short())
	}
	if Medium() != DefaultMedium {
		t.Errorf("expected default medium %v, got %v", DefaultMedium, Medium())
	}
	if Long() != DefaultLong {
		t.Errorf("expected default long %v, got %v", DefaultLong, Long())
	}
}

func TestConfigure_PartialOverride(t *testing.T) {
	Reset()
	defer Reset()

	Configure(Config{Short: 15 * time.Second})

	if Short() != 15*time.Second {
		t.Errorf("expected short to be overridden, got %v", Short())
	}
	// Zero values keep defaults
	if Medium() != DefaultMedium {
		t.Errorf("expected medium untouched, got %v", Medium())
	}
}
