package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestContentHeight(t *testing.T) {
	l := NewLayout(80, 24)
	if got := l.ContentHeight(); got != 22 {
		t.Errorf("expected 22, got %d", got)
	}

	tiny := NewLayout(10, 1)
	if got := tiny.ContentHeight(); got != 0 {
		t.Errorf("expected 0 for a terminal smaller than the chrome, got %d", got)
	}
}

func TestSectionHeightsUseAllRows(t *testing.T) {
	for _, h := range []int{5, 10, 24, 60} {
		l := NewLayout(80, h)
		tasks, bin := l.SectionHeights()
		if tasks < 0 || bin < 0 {
			t.Errorf("height %d: negative section %d/%d", h, tasks, bin)
		}
		if want := max(0, l.ContentHeight()-EntryHeight); tasks+bin != want {
			t.Errorf("height %d: sections %d+%d do not fill %d rows", h, tasks, bin, want)
		}
		if tasks < bin {
			t.Errorf("height %d: task section %d smaller than bin %d", h, tasks, bin)
		}
	}
}

func TestRenderHeaderFillsWidth(t *testing.T) {
	l := NewLayout(60, 24)
	header := l.RenderHeader("To-Do List", "1/2 done")

	if got := lipgloss.Width(header); got != 60 {
		t.Errorf("expected header width 60, got %d", got)
	}
	if !strings.Contains(header, "To-Do List") || !strings.Contains(header, "1/2 done") {
		t.Errorf("header missing title or summary: %q", header)
	}
}

func TestRenderSectionIncludesTitle(t *testing.T) {
	out := RenderSection("Bin", "empty", 30, 6, false)
	if !strings.Contains(out, "Bin") || !strings.Contains(out, "empty") {
		t.Errorf("section missing content: %q", out)
	}
	if got := lipgloss.Height(out); got != 6 {
		t.Errorf("expected section height 6, got %d", got)
	}
}
