package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m mainLoopModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "y", "s":
		kind := m.confirm
		m.confirm = confirmNone
		if kind == confirmClear {
			return m, m.cmdClear()
		}
		if m.idx < len(m.records) {
			return m, m.cmdDelete(m.records[m.idx].ID)
		}
		return m, nil
	case "n", "esc":
		m.confirm = confirmNone
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m mainLoopModel) viewConfirm() string {
	var content string
	if m.confirm == confirmClear {
		content = "Limpar todo o histórico de traduções?"
	} else if m.idx < len(m.records) {
		content = "Remover \"" + fitText(strings.TrimSpace(m.records[m.idx].SourceText), 30) + "\"?"
	} else {
		content = "Remover a tradução selecionada?"
	}
	content += "\n\ny: sim    n: não"
	return overlayBoxStyle.Render(content)
}
