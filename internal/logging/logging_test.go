package logging

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupWritesTaggedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todobin.log")

	closer, session, err := Setup(path)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetPrefix("")
		log.SetFlags(log.LstdFlags)
	})

	log.Printf("task %d added", 1)
	if err := closer.Close(); err != nil {
		t.Fatalf("closing log: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, "todobin "+session) {
		t.Errorf("expected session %q in %q", session, line)
	}
	if !strings.Contains(line, "task 1 added") {
		t.Errorf("expected message in %q", line)
	}
}

func TestSetupWithoutPathDiscards(t *testing.T) {
	closer, session, err := Setup("")
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	if len(session) != 8 {
		t.Errorf("expected 8 character session id, got %q", session)
	}
	if err := closer.Close(); err != nil {
		t.Errorf("closing discard logger: %v", err)
	}
}

func TestSetupBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "todobin.log")

	if _, _, err := Setup(path); err == nil {
		t.Fatal("expected an error for an unwritable path")
	}
}
