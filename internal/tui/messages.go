package tui

import (
	"github.com/traduzo/traduzo/internal/service"
	"github.com/traduzo/traduzo/models"
)

// NavigateTo switches the RootModel to another page, optionally delivering a
// payload message to it.
type NavigateTo struct {
	Page    string
	Payload interface{}
}

// LoginResult reports the outcome of an async login command.
type LoginResult struct {
	Err   error
	Email string
}

// RegisterResult reports the outcome of an async registration command.
type RegisterResult struct {
	Err  error
	Name string
}

type translateDoneMsg struct {
	result service.TranslateResult
	err    error
}

type detectDoneMsg struct {
	resp models.DetectResponse
	err  error
}

type historyLoadedMsg struct {
	records []models.TranslationRecord
	err     error
}

type deleteDoneMsg struct {
	err error
}

type clearDoneMsg struct {
	err error
}

type profileSavedMsg struct {
	err error
}

type avatarSavedMsg struct {
	err error
}

type ocrDoneMsg struct {
	text string
	err  error
}

type copiedMsg struct{}
