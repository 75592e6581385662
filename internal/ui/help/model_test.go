package help

import (
	"strings"
	"testing"

	"github.com/nhle/todobin/internal/keys"
)

func TestViewListsBindings(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 100, 30)
	m.SetSize(100, 30)

	view := m.View()
	for _, want := range []string{"Keyboard Shortcuts", "move to bin", "restore", "delete forever"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in help view:\n%s", want, view)
		}
	}
}
