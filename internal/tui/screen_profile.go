package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/traduzo/traduzo/models"
)

const (
	profileFieldName = iota
	profileFieldLanguage
	profileFieldTheme
	profileFieldAvatar
)

func newProfileInputs(user models.User) []textinput.Model {
	fields := make([]textinput.Model, 4)

	fields[profileFieldName] = textinput.New()
	fields[profileFieldName].Placeholder = "nome"
	fields[profileFieldName].Width = 40
	fields[profileFieldName].SetValue(user.Name)
	fields[profileFieldName].Focus()

	fields[profileFieldLanguage] = textinput.New()
	fields[profileFieldLanguage].Placeholder = "pt"
	fields[profileFieldLanguage].CharLimit = 8
	fields[profileFieldLanguage].Width = 10
	fields[profileFieldLanguage].SetValue(user.PreferredLanguage)

	fields[profileFieldTheme] = textinput.New()
	fields[profileFieldTheme].Placeholder = "light | dark"
	fields[profileFieldTheme].CharLimit = 10
	fields[profileFieldTheme].Width = 12
	fields[profileFieldTheme].SetValue(user.Theme)

	fields[profileFieldAvatar] = textinput.New()
	fields[profileFieldAvatar].Placeholder = "URL ou data:image/..."
	fields[profileFieldAvatar].Width = 40

	return fields
}

func (m mainLoopModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab":
			m.focusProfileField((m.profileFocus + 1) % len(m.profileInputs))
			return m, nil
		case "shift+tab":
			m.focusProfileField((m.profileFocus + len(m.profileInputs) - 1) % len(m.profileInputs))
			return m, nil
		case "ctrl+n":
			m.notifications = !m.notifications
			return m, nil
		case "ctrl+d":
			m.autoDetect = !m.autoDetect
			return m, nil
		case "ctrl+s":
			if m.savingProfile {
				return m, nil
			}
			m.errMsg = ""
			m.status = ""
			m.savingProfile = true
			return m, m.cmdSaveProfile()
		case "ctrl+a":
			if m.savingProfile {
				return m, nil
			}
			avatar := strings.TrimSpace(m.profileInputs[profileFieldAvatar].Value())
			if avatar == "" {
				m.errMsg = "Informe a URL do avatar"
				return m, nil
			}
			m.errMsg = ""
			m.status = ""
			m.savingProfile = true
			return m, m.cmdSaveAvatar(avatar)
		}
	}

	var cmd tea.Cmd
	m.profileInputs[m.profileFocus], cmd = m.profileInputs[m.profileFocus].Update(msg)
	return m, cmd
}

func (m *mainLoopModel) focusProfileField(focus int) {
	m.profileInputs[m.profileFocus].Blur()
	m.profileFocus = focus
	m.profileInputs[m.profileFocus].Focus()
}

func (m mainLoopModel) viewProfile() string {
	var b strings.Builder
	user, _ := m.services.SessionService.User()

	b.WriteString(m.screenTabs())
	b.WriteString("\n\n")
	b.WriteString("Email: " + valueOrDash(user.Email) + "\n\n")
	b.WriteString("Campo              │ Valor\n")
	b.WriteString("───────────────────┼──────────────────────────────────\n")
	b.WriteString("Nome               │ [")
	b.WriteString(m.profileInputs[profileFieldName].View())
	b.WriteString("]\n")
	b.WriteString("Idioma preferido   │ [")
	b.WriteString(m.profileInputs[profileFieldLanguage].View())
	b.WriteString("]\n")
	b.WriteString("Tema               │ [")
	b.WriteString(m.profileInputs[profileFieldTheme].View())
	b.WriteString("]\n")
	b.WriteString("Avatar             │ [")
	b.WriteString(m.profileInputs[profileFieldAvatar].View())
	b.WriteString("]\n")
	b.WriteString("Notificações       │ " + onOff(m.notifications) + " (ctrl+n)\n")
	b.WriteString("Detecção de idioma │ " + onOff(m.autoDetect) + " (ctrl+d)\n")

	if m.savingProfile {
		b.WriteString("\n[Salvando...]\n")
	}

	b.WriteString(m.statusLines())

	return renderPage(
		"PERFIL",
		strings.TrimRight(b.String(), "\n"),
		"ctrl+s: salvar │ ctrl+a: enviar avatar │ tab: próximo campo │ ctrl+o: sair da conta",
	)
}

func (m mainLoopModel) cmdSaveProfile() tea.Cmd {
	ctx := m.ctx
	session := m.services.SessionService

	name := strings.TrimSpace(m.profileInputs[profileFieldName].Value())
	language := strings.TrimSpace(m.profileInputs[profileFieldLanguage].Value())
	theme := strings.TrimSpace(m.profileInputs[profileFieldTheme].Value())
	notifications := m.notifications
	autoDetect := m.autoDetect

	return func() tea.Msg {
		patch := models.ProfilePatch{
			Notifications:      &notifications,
			AutoDetectLanguage: &autoDetect,
		}
		if name != "" {
			patch.Name = &name
		}
		if language != "" {
			patch.PreferredLanguage = &language
		}
		if theme != "" {
			patch.Theme = &theme
		}
		return profileSavedMsg{err: session.SaveProfile(ctx, patch)}
	}
}

func (m mainLoopModel) cmdSaveAvatar(avatar string) tea.Cmd {
	ctx := m.ctx
	session := m.services.SessionService

	return func() tea.Msg {
		return avatarSavedMsg{err: session.UpdateAvatar(ctx, avatar)}
	}
}
