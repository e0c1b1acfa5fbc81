package tui

import (
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m mainLoopModel) updateImage(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			if m.ocrRunning {
				return m, nil
			}

			path := strings.TrimSpace(m.imagePath.Value())
			if path == "" {
				m.errMsg = "Informe o caminho da imagem"
				return m, nil
			}

			m.errMsg = ""
			m.status = ""
			m.ocrRunning = true
			return m, m.cmdExtractText(path)
		case "ctrl+y":
			if m.ocrText == "" {
				return m, nil
			}
			return m, m.cmdCopy(m.ocrText)
		}
	}

	if !m.imagePath.Focused() {
		m.imagePath.Focus()
	}

	var cmd tea.Cmd
	m.imagePath, cmd = m.imagePath.Update(msg)
	return m, cmd
}

func (m mainLoopModel) viewImage() string {
	var b strings.Builder

	b.WriteString(m.screenTabs())
	b.WriteString("\n\n")
	b.WriteString("Arquivo de imagem:\n[")
	b.WriteString(m.imagePath.View())
	b.WriteString("]\n")

	if m.ocrRunning {
		b.WriteString("\n[Extraindo texto...]\n")
	}

	if m.ocrText != "" {
		b.WriteString("\nTexto extraído:\n")
		b.WriteString(m.ocrText)
		b.WriteString("\n")
	}

	b.WriteString(m.statusLines())

	return renderPage(
		"IMAGEM PARA TEXTO",
		strings.TrimRight(b.String(), "\n"),
		"enter: extrair texto │ ctrl+y: copiar │ ctrl+o: sair da conta",
	)
}

func (m mainLoopModel) cmdExtractText(path string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TranslationService

	return func() tea.Msg {
		image, err := os.ReadFile(path)
		if err != nil {
			return ocrDoneMsg{err: err}
		}

		text, err := svc.TranslateImage(ctx, filepath.Base(path), image)
		return ocrDoneMsg{text: text, err: err}
	}
}
