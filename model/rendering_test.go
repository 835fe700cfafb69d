package model

import (
	"bytes"
	"testing"
)

func TestDisplay(t *testing.T) {
	g := mustGrid(t, 2, 2)
	g.ToggleCell(0)
	g.ToggleCell(3)

	var buf bytes.Buffer
	if err := NewTerminalRenderer(&buf).Display(g); err != nil {
		t.Fatalf("Display: %v", err)
	}
	want := "▒▒░░\n░░▒▒\nDays: 0\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestDisplayShowsGeneration(t *testing.T) {
	g := mustGrid(t, 1, 1)
	g.Advance()
	g.Advance()

	var buf bytes.Buffer
	if err := NewTerminalRenderer(&buf).Display(g); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if want := "░░\nDays: 2\n"; buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestClear(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTerminalRenderer(&buf).Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if buf.String() != "\x1b[2J\x1b[H" {
		t.Fatalf("got %q", buf.String())
	}
}
