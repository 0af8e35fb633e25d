package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(Model)
}

func press(t *testing.T, m Model, k tea.KeyType) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	return next.(Model), cmd
}

// =============================================================================
// Caesar
// =============================================================================

func TestCaesar_LiveOutput(t *testing.T) {
	m := NewModel(Options{Shift: 3})
	m = typeText(t, m, "Hello, World!")
	if got := m.Output(); got != "Khoor, Zruog!" {
		t.Fatalf("expected Khoor, Zruog!, got %q", got)
	}
}

func TestCaesar_ShiftKeys(t *testing.T) {
	m := NewModel(Options{})
	m = typeText(t, m, "abc")
	m, _ = press(t, m, tea.KeyUp)
	if m.shift != 1 || m.Output() != "bcd" {
		t.Fatalf("after up: shift=%d output=%q", m.shift, m.Output())
	}
	m, _ = press(t, m, tea.KeyDown)
	m, _ = press(t, m, tea.KeyDown)
	if m.shift != -1 || m.Output() != "zab" {
		t.Fatalf("after down x2: shift=%d output=%q", m.shift, m.Output())
	}
	if m.mapping().Cipher[0] != "Z" {
		t.Fatalf("mapping should follow shift, got %v", m.mapping().Cipher[:3])
	}
}

func TestCaesar_DecryptToggle(t *testing.T) {
	m := NewModel(Options{Shift: 3})
	m = typeText(t, m, "Khoor")
	m, _ = press(t, m, tea.KeyCtrlE)
	if !m.decrypt {
		t.Fatal("ctrl+e should switch to decrypt")
	}
	if got := m.Output(); got != "Hello" {
		t.Fatalf("expected Hello, got %q", got)
	}
	if !strings.Contains(m.statusMessage, "Decrypt") {
		t.Errorf("expected status to mention decrypt, got %q", m.statusMessage)
	}
}

// =============================================================================
// Vigenère
// =============================================================================

func TestVigenere_TextAndKeyFields(t *testing.T) {
	m := NewModel(Options{Tab: TabVigenere, Key: "LEMON"})
	m = typeText(t, m, "ATTACKATDAWN")
	if got := m.Output(); got != "LXFOPVEFRNHR" {
		t.Fatalf("expected LXFOPVEFRNHR, got %q", got)
	}
	if n := len(m.steps.Rows()); n != 12 {
		t.Fatalf("expected 12 step rows, got %d", n)
	}

	// Move to the key field and extend the key.
	m, _ = press(t, m, tea.KeyDown)
	if !m.keyFocus {
		t.Fatal("down should focus the key field")
	}
	m = typeText(t, m, "X")
	if m.key.Value() != "LEMONX" {
		t.Fatalf("expected key LEMONX, got %q", m.key.Value())
	}
	if m.text.Value() != "ATTACKATDAWN" {
		t.Fatalf("text should be untouched, got %q", m.text.Value())
	}
}

func TestVigenere_StepRowsMarkNonLetters(t *testing.T) {
	m := NewModel(Options{Tab: TabVigenere, Key: "KEY"})
	m = typeText(t, m, "Ab1")
	rows := m.steps.Rows()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0][2] != "K" || rows[1][2] != "E" {
		t.Errorf("unexpected key column: %v %v", rows[0], rows[1])
	}
	if rows[2][2] != "-" || rows[2][3] != "-" || rows[2][4] != "1" {
		t.Errorf("non-letter row should have no key or shift: %v", rows[2])
	}
}

func TestVigenere_EmptyKeyIsNoOp(t *testing.T) {
	m := NewModel(Options{Tab: TabVigenere})
	m = typeText(t, m, "plain text")
	if got := m.Output(); got != "plain text" {
		t.Fatalf("expected unchanged text, got %q", got)
	}
	if len(m.steps.Rows()) != 0 {
		t.Fatalf("expected no steps without a key")
	}
}

// =============================================================================
// Password
// =============================================================================

func TestPassword_LiveReport(t *testing.T) {
	m := NewModel(Options{Tab: TabPassword})
	m = typeText(t, m, "password")
	if got := m.Output(); got != "Medium (37.6 bits)" {
		t.Fatalf("unexpected summary %q", got)
	}
	if len(m.report().Warnings) != 3 {
		t.Fatalf("expected three warnings, got %v", m.report().Warnings)
	}
}

func TestPassword_RevealToggle(t *testing.T) {
	m := NewModel(Options{Tab: TabPassword})
	m = typeText(t, m, "s3cret")
	if strings.Contains(m.pw.View(), "s3cret") {
		t.Fatal("password should be masked by default")
	}
	m, _ = press(t, m, tea.KeyCtrlR)
	if !m.reveal {
		t.Fatal("ctrl+r should reveal the password")
	}
	m, _ = press(t, m, tea.KeyCtrlR)
	if m.reveal {
		t.Fatal("second ctrl+r should hide the password again")
	}
}

func TestPassword_CtrlEIgnored(t *testing.T) {
	m := NewModel(Options{Tab: TabPassword})
	m, _ = press(t, m, tea.KeyCtrlE)
	if m.decrypt {
		t.Fatal("decrypt mode makes no sense on the password tab")
	}
}

// =============================================================================
// Navigation, clipboard, quit
// =============================================================================

func TestTabs_Cycle(t *testing.T) {
	m := NewModel(Options{})
	m, _ = press(t, m, tea.KeyTab)
	if m.active != TabVigenere {
		t.Fatalf("expected Vigenère, got %v", m.active)
	}
	m, _ = press(t, m, tea.KeyTab)
	m, _ = press(t, m, tea.KeyTab)
	if m.active != TabCaesar {
		t.Fatalf("expected wrap to Caesar, got %v", m.active)
	}
	m, _ = press(t, m, tea.KeyShiftTab)
	if m.active != TabPassword {
		t.Fatalf("expected shift+tab to wrap to Password, got %v", m.active)
	}
	if !m.pw.Focused() {
		t.Fatal("password input should have focus on the password tab")
	}
}

func TestTabs_TextSharedBetweenCipherTabs(t *testing.T) {
	m := NewModel(Options{Shift: 1, Key: "B"})
	m = typeText(t, m, "abc")
	m, _ = press(t, m, tea.KeyTab)
	if got := m.Output(); got != "bcd" {
		t.Fatalf("vigenère with key B should shift by one, got %q", got)
	}
}

func TestCopy_UsesClipboard(t *testing.T) {
	var copied string
	m := NewModel(Options{Shift: 13})
	m.copyFunc = func(s string) error { copied = s; return nil }
	m = typeText(t, m, "Hello")
	m, cmd := press(t, m, tea.KeyCtrlY)
	if cmd == nil {
		t.Fatal("expected copy command")
	}
	msg := cmd()
	if copied != "Uryyb" {
		t.Fatalf("expected Uryyb on clipboard, got %q", copied)
	}
	next, _ := m.Update(msg)
	m = next.(Model)
	if !strings.Contains(m.statusMessage, "Copied") {
		t.Fatalf("expected copied status, got %q", m.statusMessage)
	}
}

func TestCopy_Failure(t *testing.T) {
	m := NewModel(Options{})
	m.copyFunc = func(string) error { return errors.New("no clipboard") }
	m = typeText(t, m, "x")
	_, cmd := press(t, m, tea.KeyCtrlY)
	if got := string(cmd().(statusMsg)); !strings.Contains(got, "no clipboard") {
		t.Fatalf("expected failure status, got %q", got)
	}
}

func TestCopy_NothingToCopy(t *testing.T) {
	m := NewModel(Options{})
	m.copyFunc = func(string) error { t.Fatal("clipboard should not be touched"); return nil }
	_, cmd := press(t, m, tea.KeyCtrlY)
	if got := string(cmd().(statusMsg)); got != "Nothing to copy" {
		t.Fatalf("unexpected status %q", got)
	}
}

func TestQuit(t *testing.T) {
	m := NewModel(Options{})
	m, cmd := press(t, m, tea.KeyEsc)
	if !m.quitting || cmd == nil {
		t.Fatal("esc should quit")
	}
	if m.View() != "" {
		t.Fatal("view should be empty after quitting")
	}
}
