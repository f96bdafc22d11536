package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestClassifyCommand(t *testing.T) {
	today := time.Now().UTC().Format(time.DateOnly)

	out, err := runCmd(t, "classify", today, "--tz", "UTC")
	if err != nil {
		t.Fatalf("classify error: %v", err)
	}
	if !strings.HasPrefix(out, "Today\ttoday") {
		t.Fatalf("unexpected output %q", out)
	}

	if _, err := runCmd(t, "classify", "not-a-date"); err == nil {
		t.Fatalf("expected error for invalid date")
	}
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "petcare.toml")

	if _, err := runCmd(t, "config", "init", path); err != nil {
		t.Fatalf("config init error: %v", err)
	}
	if _, err := runCmd(t, "config", "init", path); err == nil {
		t.Fatalf("expected error when file already exists")
	}

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("DEV_AUTH", "false")
	t.Setenv("JWT_SECRET", "")
	if _, err := runCmd(t, "config", "show"); err == nil {
		t.Fatalf("expected error for the default secret outside dev mode")
	}

	t.Setenv("JWT_SECRET", "s3cret")
	out, err := runCmd(t, "config", "show")
	if err != nil {
		t.Fatalf("config show error: %v", err)
	}
	if !strings.Contains(out, "[storage]") || strings.Contains(out, "dev-secret-change-me") {
		t.Fatalf("unexpected config output:\n%s", out)
	}
}
