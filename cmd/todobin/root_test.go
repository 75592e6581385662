package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nhle/todobin/internal/model"
)

func TestWriteConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", path, "--write-config", "--log-file", "debug.log"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(out.String(), path) {
		t.Errorf("expected output to name %s, got %q", path, out.String())
	}

	cfg, err := model.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Log.File != "debug.log" {
		t.Errorf("expected --log-file to be saved, got %q", cfg.Log.File)
	}
	if cfg.Display.Title != "To-Do List" {
		t.Errorf("expected default title, got %q", cfg.Display.Title)
	}
}

func TestMalformedConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("display: [\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cmd := rootCmd()
	cmd.SetArgs([]string{"--config", path, "--write-config"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for a malformed config")
	}
}

func TestRejectsArguments(t *testing.T) {
	cmd := rootCmd()
	cmd.SetArgs([]string{"extra"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for positional arguments")
	}
}
