package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m mainLoopModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.records)-1 {
			m.idx++
		}
	case "r":
		m.loadingHistory = true
		m.status = ""
		return m, m.cmdLoadHistory()
	case "d":
		if len(m.records) == 0 {
			return m, nil
		}
		m.confirm = confirmDelete
	case "x":
		if len(m.records) == 0 {
			return m, nil
		}
		m.confirm = confirmClear
	}

	return m, nil
}

func (m mainLoopModel) viewHistory() string {
	var b strings.Builder

	b.WriteString(m.screenTabs())
	b.WriteString("\n\n")

	switch {
	case m.loadingHistory:
		b.WriteString("Carregando histórico...\n")
	case len(m.records) == 0:
		b.WriteString("Nenhuma tradução no histórico.\n")
	default:
		for i, record := range m.records {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			langs := record.SourceLanguage + "→" + record.TargetLanguage
			if record.DetectedLanguage != "" {
				langs = record.DetectedLanguage + "→" + record.TargetLanguage
			}
			b.WriteString(fmt.Sprintf("%s[%d] %s │ %s\n", cursor, record.ID, langs, fitText(record.SourceText, 34)))
			b.WriteString(fmt.Sprintf("      %s\n", fitText(record.TranslatedText, 40)))
		}
	}

	b.WriteString(m.statusLines())

	return renderPage(
		"HISTÓRICO DE TRADUÇÕES",
		strings.TrimRight(b.String(), "\n"),
		"↑/↓: navegação │ d: remover │ x: limpar tudo │ r: atualizar │ ctrl+o: sair da conta",
	)
}

func (m mainLoopModel) cmdLoadHistory() tea.Cmd {
	ctx := m.ctx
	svc := m.services.TranslationService

	return func() tea.Msg {
		err := svc.ListTranslations(ctx)
		return historyLoadedMsg{records: svc.Records(), err: err}
	}
}

func (m mainLoopModel) cmdDelete(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TranslationService

	return func() tea.Msg {
		return deleteDoneMsg{err: svc.RemoveTranslation(ctx, id)}
	}
}

func (m mainLoopModel) cmdClear() tea.Cmd {
	ctx := m.ctx
	svc := m.services.TranslationService

	return func() tea.Msg {
		return clearDoneMsg{err: svc.ClearHistory(ctx)}
	}
}
