package service

import (
	"github.com/traduzo/traduzo/internal/adapter"
	"github.com/traduzo/traduzo/internal/logger"
	"github.com/traduzo/traduzo/internal/store"
)

// ClientServices bundles every client-side service behind one constructor.
type ClientServices struct {
	SessionService     ClientSessionService
	TranslationService ClientTranslationService
	HistoryJob         ClientHistoryJob
}

func NewClientServices(tokens store.TokenStore, serverAdapter adapter.ServerAdapter, log *logger.Logger) *ClientServices {
	sessionSvc := NewClientSessionService(tokens, serverAdapter, log)
	translationSvc := NewClientTranslationService(sessionSvc, serverAdapter, log)

	return &ClientServices{
		SessionService:     sessionSvc,
		TranslationService: translationSvc,
		HistoryJob:         NewClientHistoryJob(translationSvc, log),
	}
}
