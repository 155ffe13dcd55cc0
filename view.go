package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const displayWidth = 24

type palette struct {
	display  lipgloss.Style
	errBox   lipgloss.Style
	hint     lipgloss.Style
	errText  lipgloss.Style
	tape     lipgloss.Style
	title    lipgloss.Style
	success  lipgloss.Style
	statusEr lipgloss.Style
}

func newPalette(t Theme) palette {
	fg := lipgloss.Color("252")
	dim := lipgloss.Color("243")
	accent := lipgloss.Color("39")
	red := lipgloss.Color("203")
	green := lipgloss.Color("114")
	if t == ThemeLight {
		fg = lipgloss.Color("235")
		dim = lipgloss.Color("246")
		accent = lipgloss.Color("26")
		red = lipgloss.Color("160")
		green = lipgloss.Color("28")
	}

	display := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(dim).
		Foreground(fg).
		Width(displayWidth).
		Align(lipgloss.Right).
		Padding(0, 1)

	return palette{
		display:  display,
		errBox:   display.Copy().Foreground(red).BorderForeground(red),
		hint:     lipgloss.NewStyle().Foreground(accent),
		errText:  lipgloss.NewStyle().Foreground(red),
		tape:     lipgloss.NewStyle().Foreground(dim),
		title:    lipgloss.NewStyle().Foreground(accent).Bold(true),
		success:  lipgloss.NewStyle().Foreground(green),
		statusEr: lipgloss.NewStyle().Foreground(red),
	}
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	pal := newPalette(m.theme)

	var parts []string
	parts = append(parts, pal.title.Render("Tally"))

	for _, entry := range m.tape {
		parts = append(parts, pal.tape.Render(entry))
	}

	if m.engine.InError() {
		parts = append(parts, pal.errBox.Render(m.engine.DisplayText()))
		parts = append(parts, pal.errText.Render(m.engine.ErrorMessage()))
	} else {
		parts = append(parts, pal.display.Render(m.engine.DisplayText()))
		if op, ok := m.engine.PendingOperator(); ok {
			parts = append(parts, pal.hint.Render("Op: "+op.String()))
		} else {
			parts = append(parts, "")
		}
	}

	face := lipgloss.JoinVertical(lipgloss.Left, parts...)

	statusLine := m.statusLine(pal)

	bodyHeight := m.height - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, face)

	var result strings.Builder
	result.WriteString(body)
	result.WriteString("\n")
	result.WriteString(statusLine)
	return result.String()
}

func (m model) statusLine(pal palette) string {
	switch m.mode {
	case ModeFileInput:
		if m.errorMessage != "" {
			return fmt.Sprintf("Mode: FILE | ERROR: %s | Export PNG filename: %s█ | Enter=retry, Esc=cancel",
				m.errorMessage, m.filename)
		}
		return fmt.Sprintf("Mode: FILE | Export PNG filename: %s█ | Enter=confirm, Esc=cancel", m.filename)

	case ModeConfirm:
		return fmt.Sprintf("Mode: CONFIRM | File %s already exists. Overwrite? (y/n)", m.filename)

	default:
		status := "Mode: CALC"
		if m.successMessage != "" {
			status += " | " + pal.success.Render(m.successMessage)
		}
		if m.errorMessage != "" {
			status += " | " + pal.statusEr.Render("ERROR: "+m.errorMessage)
		} else if m.successMessage == "" {
			status += " | ? for help | q to quit"
		}
		return status
	}
}

func (m model) helpView() string {
	helpLines := []string{
		"Tally Help",
		"==========",
		"",
		"Entry:",
		"------",
		"  0-9              Enter digits",
		"  .                Decimal point",
		"  + - * /          Select operator ('x' also multiplies)",
		"  = or Enter       Evaluate",
		"",
		"Clearing:",
		"---------",
		"  c                Clear entry (keeps the pending operation)",
		"  a or Esc         All clear",
		"",
		"Clipboard:",
		"----------",
		"  y                Copy the display value",
		"  p                Paste a number from the clipboard",
		"",
		"Other:",
		"------",
		"  s                Export a PNG snapshot of the calculator",
		"  t                Toggle light/dark theme",
		"  ?                Toggle this help screen",
		"  q/Ctrl+C         Quit Tally",
		"",
		"Press any key to return",
	}
	return strings.Join(helpLines, "\n")
}
