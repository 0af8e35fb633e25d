package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/redactyl/seclab/internal/report"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("232")).
			Background(lipgloss.Color("208")).
			Bold(true).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("7")).
				Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	outputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("7"))
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Security Playground"))
	b.WriteString("\n")
	b.WriteString(m.tabBar())
	b.WriteString("\n\n")

	var body string
	switch m.active {
	case TabCaesar:
		body = m.caesarView()
	case TabVigenere:
		body = m.vigenereView()
	case TabPassword:
		body = m.passwordView()
	}
	width := m.width - 2
	if width < 40 {
		width = 40
	}
	b.WriteString(panelStyle.Width(width).Render(body))
	b.WriteString("\n")

	status := m.statusMessage
	b.WriteString(statusStyle.Width(m.width).Render(status))
	return b.String()
}

func (m Model) tabBar() string {
	tabs := make([]string, 0, tabCount)
	for t := Tab(0); t < tabCount; t++ {
		if t == m.active {
			tabs = append(tabs, activeTabStyle.Render(t.String()))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(t.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) modeLabel() string {
	if m.decrypt {
		return "Decrypt"
	}
	return "Encrypt"
}

func (m Model) caesarView() string {
	mp := m.mapping()
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d  %s\n\n", labelStyle.Render("Shift:"), m.shift, labelStyle.Render("(up/down to change)"))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Plain: "), strings.Join(mp.Plain, " "))
	fmt.Fprintf(&b, "%s %s\n\n", labelStyle.Render("Cipher:"), strings.Join(mp.Cipher, " "))
	fmt.Fprintf(&b, "%s\n", labelStyle.Render(m.modeLabel()))
	b.WriteString(m.text.View())
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s", labelStyle.Render("Output:"), outputStyle.Render(m.Output()))
	return b.String()
}

func (m Model) vigenereView() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", labelStyle.Render(m.modeLabel()), labelStyle.Render("(up/down to switch field)"))
	b.WriteString(m.text.View())
	b.WriteString("\n")
	b.WriteString(m.key.View())
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n\n", labelStyle.Render("Output:"), outputStyle.Render(m.Output()))
	switch {
	case m.decrypt:
		b.WriteString(labelStyle.Render("Step trace shows encryption only"))
	case len(m.steps.Rows()) == 0:
		b.WriteString(labelStyle.Render("Enter text and a key with letters to see each step"))
	default:
		b.WriteString(m.steps.View())
	}
	return b.String()
}

func (m Model) passwordView() string {
	r := m.report()
	var b strings.Builder
	b.WriteString(m.pw.View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("ctrl+r: show/hide"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Strength:"), report.StrengthStyle(r.StrengthLabel).Render(string(r.StrengthLabel)))
	fmt.Fprintf(&b, "%s %d  %s %.1f bits\n", labelStyle.Render("Length:"), r.Length, labelStyle.Render("Entropy:"), r.EntropyBits)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Online (10/s):"), r.CrackTimes.OnlineDisplay)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Offline (1e9/s):"), r.CrackTimes.OfflineDisplay)
	for _, w := range r.Warnings {
		fmt.Fprintf(&b, "\n%s", warnStyle.Render("! "+w))
	}
	if len(r.Suggestions) > 0 {
		b.WriteString("\n")
		for _, s := range r.Suggestions {
			fmt.Fprintf(&b, "\n- %s", s)
		}
	}
	return b.String()
}
