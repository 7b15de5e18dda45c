package build

import (
	"strings"
	"testing"
)

func TestVersionFromEmbeddedFile(t *testing.T) {
	if version != "" {
		t.Skip("version overridden by ldflags")
	}
	want := strings.TrimSpace(embeddedVersion)
	if want == "" {
		t.Fatal("embedded VERSION is empty")
	}
	if got := Version(); got != want {
		t.Errorf("Version() = %q, want %q", got, want)
	}
}

func TestVersionOverride(t *testing.T) {
	old := version
	t.Cleanup(func() { version = old })

	version = "9.9.9"
	if got := Current().Version; got != "9.9.9" {
		t.Errorf("Current().Version = %q, want 9.9.9", got)
	}
}
