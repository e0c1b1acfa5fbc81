package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/traduzo/traduzo/internal/app"
	"github.com/traduzo/traduzo/internal/service"
	"github.com/traduzo/traduzo/models"
)

type mainScreen int

const (
	screenTranslate mainScreen = iota
	screenHistory
	screenProfile
	screenImage
)

type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmDelete
	confirmClear
)

// mainLoopModel drives the authenticated part of the application: the
// translation form, the history list, the profile editor, and the
// image-to-text screen. Screens share one status and one error line.
type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices

	screen mainScreen
	status string
	errMsg string
	logout bool

	// translate screen
	sourceArea     textarea.Model
	sourceLang     textinput.Model
	targetLang     textinput.Model
	translateFocus int
	translating    bool
	result         service.TranslateResult

	// history screen
	records        []models.TranslationRecord
	idx            int
	loadingHistory bool
	confirm        confirmKind

	// profile screen
	profileInputs []textinput.Model
	profileFocus  int
	notifications bool
	autoDetect    bool
	savingProfile bool

	// image screen
	imagePath  textinput.Model
	ocrText    string
	ocrRunning bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices) mainLoopModel {
	user, _ := services.SessionService.User()

	sourceArea := textarea.New()
	sourceArea.Placeholder = "Digite o texto para traduzir..."
	sourceArea.SetWidth(52)
	sourceArea.SetHeight(5)
	sourceArea.Focus()

	sourceLang := textinput.New()
	sourceLang.Placeholder = "auto"
	sourceLang.CharLimit = 8
	sourceLang.Width = 10
	sourceLang.SetValue("auto")

	targetLang := textinput.New()
	targetLang.CharLimit = 8
	targetLang.Width = 10
	if user.PreferredLanguage != "" {
		targetLang.SetValue(user.PreferredLanguage)
	} else {
		targetLang.SetValue("pt")
	}

	imagePath := textinput.New()
	imagePath.Placeholder = "/caminho/para/imagem.png"
	imagePath.Width = 48

	return mainLoopModel{
		ctx:            ctx,
		services:       services,
		sourceArea:     sourceArea,
		sourceLang:     sourceLang,
		targetLang:     targetLang,
		imagePath:      imagePath,
		profileInputs:  newProfileInputs(user),
		notifications:  user.Notifications,
		autoDetect:     user.AutoDetectLanguage,
		loadingHistory: true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadHistory(), textarea.Blink)
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case translateDoneMsg:
		m.translating = false
		if msg.err != nil {
			m.errMsg = m.historyError(msg.err)
			return m, nil
		}
		m.result = msg.result
		m.errMsg = ""
		m.status = "Tradução concluída"
		m.records = m.services.TranslationService.Records()
		return m, nil

	case detectDoneMsg:
		m.translating = false
		if msg.err != nil {
			m.errMsg = m.historyError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.sourceLang.SetValue(msg.resp.DetectedLanguage)
		m.status = "Idioma detectado: " + msg.resp.DetectedLanguage
		return m, nil

	case historyLoadedMsg:
		m.loadingHistory = false
		if msg.err != nil {
			m.errMsg = m.historyError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.records = msg.records
		if m.idx >= len(m.records) {
			m.idx = len(m.records) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case deleteDoneMsg:
		if msg.err != nil {
			m.errMsg = m.historyError(msg.err)
			return m, nil
		}
		m.status = "Tradução removida"
		m.errMsg = ""
		m.records = m.services.TranslationService.Records()
		if m.idx >= len(m.records) && m.idx > 0 {
			m.idx--
		}
		return m, nil

	case clearDoneMsg:
		if msg.err != nil {
			m.errMsg = m.historyError(msg.err)
			return m, nil
		}
		m.status = "Histórico limpo"
		m.errMsg = ""
		m.records = nil
		m.idx = 0
		return m, nil

	case profileSavedMsg:
		m.savingProfile = false
		if msg.err != nil {
			m.errMsg = m.sessionError(msg.err)
			return m, nil
		}
		m.status = "Perfil atualizado"
		m.errMsg = ""
		return m, nil

	case avatarSavedMsg:
		m.savingProfile = false
		if msg.err != nil {
			m.errMsg = m.sessionError(msg.err)
			return m, nil
		}
		m.status = "Avatar atualizado"
		m.errMsg = ""
		return m, nil

	case ocrDoneMsg:
		m.ocrRunning = false
		if msg.err != nil {
			m.errMsg = m.historyError(msg.err)
			return m, nil
		}
		m.ocrText = msg.text
		m.errMsg = ""
		m.status = "Texto extraído da imagem"
		return m, nil

	case copiedMsg:
		m.status = "Copiado para a área de transferência"
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateActiveScreen(msg)
	}

	if m.confirm != confirmNone {
		return m.updateConfirm(keyMsg)
	}

	switch keyMsg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+o":
		m.logout = true
		return m, tea.Quit
	case "f1":
		m.switchScreen(screenTranslate)
		return m, nil
	case "f2":
		m.switchScreen(screenHistory)
		m.loadingHistory = true
		return m, m.cmdLoadHistory()
	case "f3":
		m.switchScreen(screenProfile)
		return m, nil
	case "f4":
		m.switchScreen(screenImage)
		return m, nil
	}

	return m.updateActiveScreen(msg)
}

func (m *mainLoopModel) switchScreen(next mainScreen) {
	m.screen = next
	m.status = ""
	m.errMsg = ""
	m.confirm = confirmNone
}

func (m mainLoopModel) updateActiveScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenHistory:
		return m.updateHistory(msg)
	case screenProfile:
		return m.updateProfile(msg)
	case screenImage:
		return m.updateImage(msg)
	default:
		return m.updateTranslate(msg)
	}
}

func (m mainLoopModel) View() string {
	if m.confirm != confirmNone {
		return m.viewConfirm()
	}

	switch m.screen {
	case screenHistory:
		return m.viewHistory()
	case screenProfile:
		return m.viewProfile()
	case screenImage:
		return m.viewImage()
	default:
		return m.viewTranslate()
	}
}

// historyError prefers the translation service's user-facing message over the
// raw error chain.
func (m mainLoopModel) historyError(err error) string {
	if errors.Is(err, service.ErrOperationInFlight) {
		return app.MsgOperationInFlight
	}
	if lastErr := m.services.TranslationService.LastError(); lastErr != "" {
		return lastErr
	}
	return humanizeServerUnavailableError(err)
}

func (m mainLoopModel) sessionError(err error) string {
	if lastErr := m.services.SessionService.LastError(); lastErr != "" {
		return lastErr
	}
	return humanizeServerUnavailableError(err)
}

// screenTabs renders the shared screen switcher line.
func (m mainLoopModel) screenTabs() string {
	tabs := []struct {
		screen mainScreen
		label  string
	}{
		{screenTranslate, "F1 Tradução"},
		{screenHistory, "F2 Histórico"},
		{screenProfile, "F3 Perfil"},
		{screenImage, "F4 Imagem"},
	}

	out := ""
	for i, tab := range tabs {
		if i > 0 {
			out += "  "
		}
		if tab.screen == m.screen {
			out += "[" + tab.label + "]"
		} else {
			out += " " + tab.label + " "
		}
	}
	return out
}

// statusLines renders the shared status and error lines, empty when silent.
func (m mainLoopModel) statusLines() string {
	out := ""
	if m.status != "" {
		out += "\nOK: " + m.status
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("Erro: "+m.errMsg)
	}
	return out
}
