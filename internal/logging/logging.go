// Package logging routes the standard logger away from the terminal,
// which Bubble Tea owns while the program runs.
package logging

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Setup points the standard logger at path, tagging every line with a
// short per-run session id. An empty path discards log output. The
// returned closer must be called on exit.
func Setup(path string) (io.Closer, string, error) {
	session := uuid.NewString()[:8]

	if path == "" {
		log.SetOutput(io.Discard)
		return nopCloser{}, session, nil
	}

	f, err := tea.LogToFile(path, "todobin "+session)
	if err != nil {
		return nil, "", fmt.Errorf("opening log file %s: %w", path, err)
	}
	log.SetFlags(log.LstdFlags | log.Lmsgprefix)
	return f, session, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
