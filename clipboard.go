package main

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// readClipboardText prefers pbpaste on macOS, where clipboard.ReadAll can
// hand back styled text instead of the plain value.
func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
		if output, err := exec.Command("pbpaste").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

// copyDisplay puts the current display value on the system clipboard.
func (m *model) copyDisplay() {
	text := m.engine.DisplayText()
	if err := clipboard.WriteAll(text); err != nil {
		m.errorMessage = fmt.Sprintf("Error copying: %s", err.Error())
		return
	}
	m.successMessage = fmt.Sprintf("Copied %s", text)
}

// pasteFromClipboard replays clipboard text through the engine so pasted
// input obeys the same entry rules as typed input.
func (m *model) pasteFromClipboard() {
	text, err := readClipboardText()
	if err != nil {
		m.errorMessage = fmt.Sprintf("Error pasting: %s", err.Error())
		return
	}
	feedNumber(m.engine, text)
}

// feedNumber pushes the leading numeric run of text into the engine,
// stopping at the first rune that is neither a digit nor a decimal point.
func feedNumber(e *Engine, text string) {
	for _, r := range strings.TrimSpace(text) {
		switch {
		case r >= '0' && r <= '9':
			e.EnterDigit(r)
		case r == '.':
			e.EnterDecimalPoint()
		default:
			return
		}
	}
}
