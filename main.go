package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

type model struct {
	width          int
	height         int
	engine         *Engine
	mode           Mode
	help           bool
	theme          Theme
	tape           []string
	filename       string
	confirmAction  ConfirmAction
	errorMessage   string
	successMessage string
	config         *Config
}

func initialModel() model {
	config := loadConfig()

	theme := ThemeDark
	if config.Theme == "light" {
		theme = ThemeLight
	}

	return model{
		engine: NewEngine(),
		mode:   ModeCalc,
		theme:  theme,
		config: config,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.help {
			// Any key closes the help overlay.
			m.help = false
			return m, nil
		}

		switch m.mode {
		case ModeCalc:
			return m.updateCalc(msg)
		case ModeFileInput:
			return m.updateFileInput(msg)
		case ModeConfirm:
			return m.updateConfirm(msg)
		}
	}

	return m, nil
}

func (m model) updateCalc(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errorMessage = ""
	m.successMessage = ""

	switch key := msg.String(); key {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.engine.EnterDigit(rune(key[0]))
	case ".":
		m.engine.EnterDecimalPoint()
	case "+":
		m.engine.SelectOperator(OpAdd)
	case "-":
		m.engine.SelectOperator(OpSub)
	case "*", "x":
		m.engine.SelectOperator(OpMul)
	case "/":
		m.engine.SelectOperator(OpDiv)
	case "=", "enter":
		entry := m.tapeEntry()
		m.engine.Evaluate()
		if entry != "" && !m.engine.InError() {
			m.appendTape(entry + " = " + m.engine.DisplayText())
		}
	case "c":
		m.engine.ClearEntry()
	case "a", "esc":
		m.engine.AllClear()
	case "y":
		m.copyDisplay()
	case "p":
		m.pasteFromClipboard()
	case "t":
		if m.theme == ThemeDark {
			m.theme = ThemeLight
		} else {
			m.theme = ThemeDark
		}
	case "s":
		m.mode = ModeFileInput
		m.filename = ""
	case "?":
		m.help = true
	case "q", "ctrl+c":
		return m, tea.Quit
	}

	return m, nil
}

func (m model) updateFileInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEscape:
		m.mode = ModeCalc
		m.filename = ""
		m.errorMessage = ""
		return m, nil

	case msg.Type == tea.KeyEnter:
		if strings.TrimSpace(m.filename) == "" {
			m.errorMessage = "Please enter a filename"
			return m, nil
		}
		filename := m.filename
		if !strings.HasSuffix(strings.ToLower(filename), ".png") {
			filename += ".png"
		}
		if m.config.Confirmations {
			if _, err := os.Stat(m.config.GetSavePath(filename)); err == nil {
				// File exists, show confirmation
				m.mode = ModeConfirm
				m.confirmAction = ConfirmOverwriteFile
				m.filename = filename
				return m, nil
			}
		}
		return m.saveSnapshot(filename)

	case msg.Type == tea.KeyBackspace:
		if len(m.filename) > 0 {
			m.filename = m.filename[:len(m.filename)-1]
		}
		return m, nil

	default:
		// Handle all other keys as regular characters
		keyStr := msg.String()
		if len(keyStr) == 1 {
			m.filename += keyStr
		}
		return m, nil
	}
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if m.confirmAction == ConfirmOverwriteFile {
			return m.saveSnapshot(m.filename)
		}
		m.mode = ModeCalc
	case "n", "N", "esc":
		m.mode = ModeCalc
		m.filename = ""
	}
	return m, nil
}

func (m model) saveSnapshot(filename string) (tea.Model, tea.Cmd) {
	path := m.config.GetSavePath(filename)
	if err := m.snapshotPNG(path); err != nil {
		// Stay in file input so the user can retry with a different name.
		m.mode = ModeFileInput
		m.errorMessage = fmt.Sprintf("Error exporting PNG: %s", err.Error())
		return m, nil
	}
	absPath, _ := filepath.Abs(path)
	m.successMessage = fmt.Sprintf("Exported to %s", absPath)
	m.errorMessage = ""
	m.mode = ModeCalc
	m.filename = ""
	return m, nil
}

// tapeEntry renders the operation the next Evaluate would perform, or ""
// when no full operation is pending.
func (m *model) tapeEntry() string {
	op, ok := m.engine.PendingOperator()
	if !ok {
		return ""
	}
	first, ok := m.engine.FirstOperand()
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s %s %s", formatNumber(first), op, m.engine.DisplayText())
}

func (m *model) appendTape(entry string) {
	m.tape = append(m.tape, entry)
	if len(m.tape) > maxTapeEntries {
		m.tape = m.tape[len(m.tape)-maxTapeEntries:]
	}
}
