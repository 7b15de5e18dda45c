package debug

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetDebug(t *testing.T) {
	// Initially disabled
	SetDebug(false)
	if IsEnabled() {
		t.Error("Debug should be disabled initially")
	}

	// Enable
	SetDebug(true)
	if !IsEnabled() {
		t.Error("Debug should be enabled")
	}

	// Disable again
	SetDebug(false)
	if IsEnabled() {
		t.Error("Debug should be disabled again")
	}
}

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetNoColor(true)
	SetDebug(true)
	t.Cleanup(func() {
		SetDebug(false)
		SetOutput(nil)
		SetNoColor(false)
	})

	fn()
	return buf.String()
}

func TestDebugOutput(t *testing.T) {
	output := captureOutput(t, func() {
		Debug("test message %s", "arg")
	})

	if !strings.Contains(output, "DEBUG") {
		t.Errorf("Output should contain DEBUG level, got: %s", output)
	}

	if !strings.Contains(output, "test message arg") {
		t.Errorf("Output should contain message, got: %s", output)
	}

	// Should contain timestamp
	if !strings.Contains(output, ":") {
		t.Errorf("Output should contain timestamp, got: %s", output)
	}
}

func TestDebugDisabled(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetDebug(false)
	t.Cleanup(func() { SetOutput(nil) })

	Debug("should not appear")
	DebugSection("section")
	DebugValue("key", "value")
	DebugJSON("data", map[string]string{"a": "b"})

	if buf.Len() != 0 {
		t.Errorf("Expected no output when disabled, got: %s", buf.String())
	}
}

func TestDebugSection(t *testing.T) {
	output := captureOutput(t, func() {
		DebugSection("Test Section")
	})

	if !strings.Contains(output, "=== Test Section ===") {
		t.Errorf("Output should contain section header, got: %s", output)
	}
}

func TestDebugValue(t *testing.T) {
	output := captureOutput(t, func() {
		DebugValue("testKey", "testValue")
		DebugValue("count", 42)
	})

	if !strings.Contains(output, "testKey = testValue") {
		t.Errorf("Output should contain key=value, got: %s", output)
	}
	if !strings.Contains(output, "count = 42") {
		t.Errorf("Output should contain count=42, got: %s", output)
	}
}

func TestDebugJSON(t *testing.T) {
	output := captureOutput(t, func() {
		DebugJSON("plan", map[string]interface{}{
			"destination": "src/server/api/root.ts",
		})
	})

	if !strings.Contains(output, "plan") {
		t.Errorf("Output should contain key, got: %s", output)
	}
	if !strings.Contains(output, `"destination"`) || !strings.Contains(output, "src/server/api/root.ts") {
		t.Errorf("Output should contain JSON field, got: %s", output)
	}
}

func TestNoColorOutput(t *testing.T) {
	output := captureOutput(t, func() {
		Debug("no color test")
	})

	if strings.Contains(output, "\033[") {
		t.Errorf("Output should not contain ANSI codes, got: %q", output)
	}
}
