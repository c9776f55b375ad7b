package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/showroom/internal/catalog"
)

func TestValidate_BuiltInCatalog(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"validate"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("validate error = %v", err)
	}
	for _, want := range []string{"built-in catalog: ok", "company: KMG Robust"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestValidate_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("company:\n  name: \"\"\n"), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"validate", path})

	err := cmd.Execute()
	if !errors.Is(err, catalog.ErrInvalidCatalog) {
		t.Fatalf("validate error = %v, want ErrInvalidCatalog", err)
	}
}

func TestRoot_RejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})

	if err := cmd.Execute(); err == nil {
		t.Fatalf("Execute() with a stray argument succeeded")
	}
}

func TestLogs_UsesConfigFlag(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "showroom.log")
	entry := `{"level":"info","ts":"2025-01-01T10:00:00.000Z","msg":"showroom starting","company":"KMG Robust"}`
	if err := os.WriteFile(logPath, []byte(entry+"\n"), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	cfgPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(cfgPath, []byte("log_file = \""+filepath.ToSlash(logPath)+"\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"logs", "--config", cfgPath, "-n", "5"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("logs error = %v", err)
	}
	if !strings.Contains(out.String(), "INFO  showroom starting company=KMG Robust") {
		t.Fatalf("logs output = %q", out.String())
	}
}
