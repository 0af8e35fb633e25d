package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/redactyl/seclab/internal/cipher"
	"github.com/redactyl/seclab/internal/password"
	"github.com/redactyl/seclab/internal/types"
)

// Tab identifies one playground screen.
type Tab int

const (
	TabCaesar Tab = iota
	TabVigenere
	TabPassword
	tabCount
)

func (t Tab) String() string {
	switch t {
	case TabCaesar:
		return "Caesar"
	case TabVigenere:
		return "Vigenère"
	case TabPassword:
		return "Password"
	default:
		return "?"
	}
}

type statusMsg string

const defaultStatus = "tab: switch | ctrl+e: encrypt/decrypt | ctrl+y: copy | esc: quit"

// Options seeds the playground with starting values.
type Options struct {
	Shift int
	Key   string
	Tab   Tab
}

// Model is the playground state. It only holds user input; every output is
// recomputed from the inputs on render.
type Model struct {
	active   Tab
	decrypt  bool
	shift    int
	text     textinput.Model
	key      textinput.Model
	pw       textinput.Model
	keyFocus bool // Vigenère tab: key field has focus instead of text
	reveal   bool // Password tab: show the password in clear
	steps    table.Model

	width         int
	height        int
	ready         bool
	quitting      bool
	statusMessage string
	statusTimeout *time.Time

	// copyFunc writes to the system clipboard; swapped out in tests.
	copyFunc func(string) error
}

// NewModel initializes the playground.
func NewModel(opts Options) Model {
	text := newInput("> ", "Type text to encrypt...", 500)
	key := newInput("key> ", "Vigenère key (letters only count)", 100)
	key.SetValue(opts.Key)
	pw := newInput("password> ", "Type a password to analyze...", 256)
	pw.EchoMode = textinput.EchoPassword
	pw.EchoCharacter = '•'

	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Plain", Width: 6},
		{Title: "Key", Width: 5},
		{Title: "Shift", Width: 6},
		{Title: "Cipher", Width: 7},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(8),
	)
	s := table.DefaultStyles()
	s.Header = lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Foreground(lipgloss.Color("15")).
		Bold(true).
		Padding(0, 1)
	s.Cell = lipgloss.NewStyle().Padding(0, 1)
	s.Selected = s.Cell
	t.SetStyles(s)

	m := Model{
		active:        opts.Tab % tabCount,
		shift:         opts.Shift,
		text:          text,
		key:           key,
		pw:            pw,
		steps:         t,
		statusMessage: defaultStatus,
		copyFunc:      clipboard.WriteAll,
	}
	m.focus()
	m.refreshSteps()
	return m
}

func newInput(prompt, placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 60
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	return ti
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// focus gives keyboard focus to the input that belongs to the active tab.
func (m *Model) focus() {
	m.text.Blur()
	m.key.Blur()
	m.pw.Blur()
	switch m.active {
	case TabCaesar:
		m.text.Focus()
	case TabVigenere:
		if m.keyFocus {
			m.key.Focus()
		} else {
			m.text.Focus()
		}
	case TabPassword:
		m.pw.Focus()
	}
}

// Output is the text the active tab produces for the current input.
func (m Model) Output() string {
	switch m.active {
	case TabCaesar:
		if m.decrypt {
			return cipher.CaesarDecrypt(m.text.Value(), m.shift)
		}
		return cipher.CaesarEncrypt(m.text.Value(), m.shift)
	case TabVigenere:
		if m.decrypt {
			return cipher.VigenereDecrypt(m.text.Value(), m.key.Value())
		}
		return cipher.VigenereEncrypt(m.text.Value(), m.key.Value())
	case TabPassword:
		r := m.report()
		return fmt.Sprintf("%s (%.1f bits)", r.StrengthLabel, r.EntropyBits)
	}
	return ""
}

func (m Model) mapping() types.CaesarMapping {
	return cipher.CaesarMapping(m.shift)
}

func (m Model) report() types.PasswordReport {
	return password.Analyze(m.pw.Value())
}

func (m *Model) refreshSteps() {
	steps := cipher.VigenereSteps(m.text.Value(), m.key.Value())
	rows := make([]table.Row, len(steps))
	for i, s := range steps {
		key, shift := "-", "-"
		if s.KeyChar != nil {
			key = *s.KeyChar
		}
		if s.Shift != nil {
			shift = strconv.Itoa(*s.Shift)
		}
		rows[i] = table.Row{strconv.Itoa(s.Index), s.PlainChar, key, shift, s.CipherChar}
	}
	m.steps.SetRows(rows)
}

func (m *Model) setStatus(msg string, d time.Duration) {
	timeout := time.Now().Add(d)
	m.statusTimeout = &timeout
	m.statusMessage = msg
}

func (m Model) copyOutput() tea.Cmd {
	out := m.Output()
	copyFn := m.copyFunc
	return func() tea.Msg {
		if out == "" {
			return statusMsg("Nothing to copy")
		}
		if err := copyFn(out); err != nil {
			return statusMsg(fmt.Sprintf("Copy failed: %v", err))
		}
		return statusMsg("Copied output to clipboard")
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		w := msg.Width - 16
		if w < 20 {
			w = 20
		}
		m.text.Width, m.key.Width, m.pw.Width = w, w, w
		return m, nil

	case statusMsg:
		m.setStatus(string(msg), 3*time.Second)
		return m, nil

	case tea.KeyMsg:
		if m.statusTimeout != nil && time.Now().After(*m.statusTimeout) {
			m.statusTimeout = nil
			m.statusMessage = defaultStatus
		}

		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			m.active = (m.active + 1) % tabCount
			m.focus()
			return m, nil
		case "shift+tab":
			m.active = (m.active + tabCount - 1) % tabCount
			m.focus()
			return m, nil
		case "ctrl+e":
			if m.active == TabPassword {
				return m, nil
			}
			m.decrypt = !m.decrypt
			mode := "Encrypt"
			if m.decrypt {
				mode = "Decrypt"
			}
			m.setStatus(mode+" mode", 3*time.Second)
			return m, nil
		case "ctrl+y":
			return m, m.copyOutput()
		case "ctrl+r":
			if m.active == TabPassword {
				m.reveal = !m.reveal
				if m.reveal {
					m.pw.EchoMode = textinput.EchoNormal
				} else {
					m.pw.EchoMode = textinput.EchoPassword
				}
			}
			return m, nil
		case "up", "down":
			switch m.active {
			case TabCaesar:
				if msg.String() == "up" {
					m.shift++
				} else {
					m.shift--
				}
			case TabVigenere:
				m.keyFocus = !m.keyFocus
				m.focus()
			}
			return m, nil
		}

		switch m.active {
		case TabCaesar:
			m.text, cmd = m.text.Update(msg)
		case TabVigenere:
			if m.keyFocus {
				m.key, cmd = m.key.Update(msg)
			} else {
				m.text, cmd = m.text.Update(msg)
			}
		case TabPassword:
			m.pw, cmd = m.pw.Update(msg)
		}
		m.refreshSteps()
		return m, cmd
	}
	return m, nil
}
