package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	translateFocusText = iota
	translateFocusSource
	translateFocusTarget
)

func (m mainLoopModel) updateTranslate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab":
			m.focusTranslateField((m.translateFocus + 1) % 3)
			return m, nil
		case "shift+tab":
			m.focusTranslateField((m.translateFocus + 2) % 3)
			return m, nil
		case "ctrl+t":
			if m.translating {
				return m, nil
			}

			text := strings.TrimSpace(m.sourceArea.Value())
			if text == "" {
				m.errMsg = "Digite um texto para traduzir"
				return m, nil
			}
			target := strings.TrimSpace(m.targetLang.Value())
			if target == "" {
				m.errMsg = "Informe o idioma de destino"
				return m, nil
			}

			source := strings.TrimSpace(m.sourceLang.Value())
			autoDetect := m.autoDetect || source == "auto"

			m.errMsg = ""
			m.status = ""
			m.translating = true
			return m, m.cmdTranslate(text, source, target, autoDetect)
		case "ctrl+d":
			if m.translating {
				return m, nil
			}

			text := strings.TrimSpace(m.sourceArea.Value())
			if text == "" {
				m.errMsg = "Digite um texto para detectar o idioma"
				return m, nil
			}

			m.errMsg = ""
			m.status = ""
			m.translating = true
			return m, m.cmdDetect(text)
		case "ctrl+y":
			if m.result.TranslatedText == "" {
				return m, nil
			}
			return m, m.cmdCopy(m.result.TranslatedText)
		}
	}

	var cmd tea.Cmd
	switch m.translateFocus {
	case translateFocusSource:
		m.sourceLang, cmd = m.sourceLang.Update(msg)
	case translateFocusTarget:
		m.targetLang, cmd = m.targetLang.Update(msg)
	default:
		m.sourceArea, cmd = m.sourceArea.Update(msg)
	}
	return m, cmd
}

func (m *mainLoopModel) focusTranslateField(focus int) {
	m.translateFocus = focus
	m.sourceArea.Blur()
	m.sourceLang.Blur()
	m.targetLang.Blur()

	switch focus {
	case translateFocusSource:
		m.sourceLang.Focus()
	case translateFocusTarget:
		m.targetLang.Focus()
	default:
		m.sourceArea.Focus()
	}
}

func (m mainLoopModel) viewTranslate() string {
	var b strings.Builder

	b.WriteString(m.screenTabs())
	b.WriteString("\n\n")
	b.WriteString("Texto:\n")
	b.WriteString(m.sourceArea.View())
	b.WriteString("\n\n")
	b.WriteString("De:  [")
	b.WriteString(m.sourceLang.View())
	b.WriteString("]   Para: [")
	b.WriteString(m.targetLang.View())
	b.WriteString("]")
	if m.autoDetect {
		b.WriteString("   (detecção automática ativa)")
	}
	b.WriteString("\n")

	if m.translating {
		b.WriteString("\n[Traduzindo...]\n")
	}

	if m.result.TranslatedText != "" {
		b.WriteString("\nTradução")
		if m.result.DetectedLanguage != "" {
			b.WriteString(" (detectado: " + m.result.DetectedLanguage + ")")
		}
		b.WriteString(":\n")
		b.WriteString(m.result.TranslatedText)
		b.WriteString("\n")
	}

	b.WriteString(m.statusLines())

	return renderPage(
		"TRADUZO",
		strings.TrimRight(b.String(), "\n"),
		"ctrl+t: traduzir │ ctrl+d: detectar idioma │ ctrl+y: copiar │ tab: próximo campo │ ctrl+o: sair da conta",
	)
}

func (m mainLoopModel) cmdTranslate(text, source, target string, autoDetect bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TranslationService

	return func() tea.Msg {
		result, err := svc.Translate(ctx, text, source, target, autoDetect)
		return translateDoneMsg{result: result, err: err}
	}
}

func (m mainLoopModel) cmdDetect(text string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TranslationService

	return func() tea.Msg {
		resp, err := svc.DetectLanguage(ctx, text)
		return detectDoneMsg{resp: resp, err: err}
	}
}

func (m mainLoopModel) cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		_ = clipboard.WriteAll(text)
		return copiedMsg{}
	}
}
