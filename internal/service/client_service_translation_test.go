package service_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/traduzo/traduzo/internal/adapter"
	"github.com/traduzo/traduzo/internal/logger"
	"github.com/traduzo/traduzo/internal/mock"
	"github.com/traduzo/traduzo/internal/service"
	"github.com/traduzo/traduzo/models"
)

func newTestTranslationSvc(t *testing.T, ctrl *gomock.Controller, token string) (service.ClientTranslationService, *mock.MockServerAdapter) {
	t.Helper()
	session := mock.NewMockTokenSource(ctrl)
	session.EXPECT().Token().Return(token).AnyTimes()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := service.NewClientTranslationService(session, mockAdapter, logger.Nop())
	return svc, mockAdapter
}

func historyRecords() []models.TranslationRecord {
	return []models.TranslationRecord{
		{ID: 3, SourceText: "good morning", TranslatedText: "bom dia", SourceLanguage: "en", TargetLanguage: "pt"},
		{ID: 2, SourceText: "thanks", TranslatedText: "obrigado", SourceLanguage: "en", TargetLanguage: "pt"},
		{ID: 1, SourceText: "hello", TranslatedText: "olá", SourceLanguage: "en", TargetLanguage: "pt"},
	}
}

func seedHistory(t *testing.T, svc service.ClientTranslationService, mockAdapter *mock.MockServerAdapter, records []models.TranslationRecord) {
	t.Helper()
	ctx := context.Background()
	mockAdapter.EXPECT().Translations(ctx, "jwt-token").Return(records, nil)
	require.NoError(t, svc.ListTranslations(ctx))
	require.Len(t, svc.Records(), len(records))
}

// ── Translate ────────────────────────────────────────────────────────────────

func TestClientTranslationService_Translate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestTranslationSvc(t, ctrl, "jwt-token")
	ctx := context.Background()

	mockAdapter.EXPECT().
		Translate(ctx, "jwt-token", models.TranslateRequest{Text: "hello", Source: "en", Target: "pt"}).
		Return(models.TranslateResponse{TranslatedText: "olá", DetectedLanguage: ""}, nil)
	mockAdapter.EXPECT().
		Translations(ctx, "jwt-token").
		Return(historyRecords(), nil)

	result, err := svc.Translate(ctx, "hello", "en", "pt", false)
	require.NoError(t, err)

	assert.Equal(t, "olá", result.TranslatedText)
	assert.Empty(t, result.DetectedLanguage)
	assert.Len(t, svc.Records(), 3)
	assert.Empty(t, svc.LastError())
	assert.False(t, svc.InFlight())
}

func TestClientTranslationService_Translate_AutoDetectOverridesSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestTranslationSvc(t, ctrl, "jwt-token")
	ctx := context.Background()

	mockAdapter.EXPECT().
		Translate(ctx, "jwt-token", models.TranslateRequest{Text: "hello", Source: "auto", Target: "pt"}).
		Return(models.TranslateResponse{TranslatedText: "olá", DetectedLanguage: "en"}, nil)
	mockAdapter.EXPECT().Translations(ctx, "jwt-token").Return(nil, nil)

	result, err := svc.Translate(ctx, "hello", "en", "pt", true)
	require.NoError(t, err)
	assert.Equal(t, "en", result.DetectedLanguage)
}

func TestClientTranslationService_Translate_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestTranslationSvc(t, ctrl, "jwt-token")
	ctx := context.Background()

	mockAdapter.EXPECT().
		Translate(ctx, "jwt-token", gomock.Any()).
		Return(models.TranslateResponse{}, fmt.Errorf("%w: %s", adapter.ErrInternalServerError, "Serviço de tradução indisponível"))

	_, err := svc.Translate(ctx, "hello", "auto", "pt", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
	assert.Equal(t, "Serviço de tradução indisponível", svc.LastError())
	assert.Empty(t, svc.Records())
	assert.False(t, svc.InFlight())
}

func TestClientTranslationService_Translate_HistoryRefreshFailureKeepsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestTranslationSvc(t, ctrl, "jwt-token")
	ctx := context.Background()
	seedHistory(t, svc, mockAdapter, historyRecords())

	mockAdapter.EXPECT().
		Translate(ctx, "jwt-token", gomock.Any()).
		Return(models.TranslateResponse{TranslatedText: "tchau", DetectedLanguage: "en"}, nil)
	mockAdapter.EXPECT().
		Translations(ctx, "jwt-token").
		Return(nil, fmt.Errorf("%w: %s", adapter.ErrInternalServerError, "timeout"))

	result, err := svc.Translate(ctx, "bye", "auto", "pt", false)
	require.NoError(t, err)
	assert.Equal(t, "tchau", result.TranslatedText)

	// the stale cache beats an empty one
	assert.Len(t, svc.Records(), 3)
	assert.Empty(t, svc.LastError())
}

// ── In-flight guard ──────────────────────────────────────────────────────────

func TestClientTranslationService_InFlightGuard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestTranslationSvc(t, ctrl, "jwt-token")
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})

	mockAdapter.EXPECT().
		Translate(ctx, "jwt-token", gomock.Any()).
		DoAndReturn(func(context.Context, string, models.TranslateRequest) (models.TranslateResponse, error) {
			close(started)
			<-release
			return models.TranslateResponse{TranslatedText: "olá"}, nil
		})
	mockAdapter.EXPECT().Translations(ctx, "jwt-token").Return(nil, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := svc.Translate(ctx, "hello", "auto", "pt", false)
		assert.NoError(t, err)
	}()

	<-started
	assert.True(t, svc.InFlight())

	assert.ErrorIs(t, svc.ClearHistory(ctx), service.ErrOperationInFlight)
	assert.ErrorIs(t, svc.RemoveTranslation(ctx, 1), service.ErrOperationInFlight)
	_, err := svc.DetectLanguage(ctx, "hola")
	assert.ErrorIs(t, err, service.ErrOperationInFlight)
	_, err = svc.Translate(ctx, "bye", "auto", "pt", false)
	assert.ErrorIs(t, err, service.ErrOperationInFlight)
	_, err = svc.TranslateImage(ctx, "nota.png", []byte{1})
	assert.ErrorIs(t, err, service.ErrOperationInFlight)

	// a losing refresh backs off quietly
	assert.NoError(t, svc.ListTranslations(ctx))

	close(release)
	wg.Wait()
	assert.False(t, svc.InFlight())
}

// ── ListTranslations ─────────────────────────────────────────────────────────

func TestClientTranslationService_ListTranslations_NoopWhenAnonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestTranslationSvc(t, ctrl, "")

	err := svc.ListTranslations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, svc.Records())
}

func TestClientTranslationService_ListTranslations_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestTranslationSvc(t, ctrl, "jwt-token")
	ctx := context.Background()
	seedHistory(t, svc, mockAdapter, historyRecords())

	mockAdapter.EXPECT().
		Translations(ctx, "jwt-token").
		Return(nil, fmt.Errorf("%w: %s", adapter.ErrInternalServerError, "Banco de dados indisponível"))

	err := svc.ListTranslations(ctx)
	require.Error(t, err)
	assert.Equal(t, "Banco de dados indisponível", svc.LastError())
	assert.Len(t, svc.Records(), 3)
}

// ── RemoveTranslation / ClearHistory ─────────────────────────────────────────

func TestClientTranslationService_RemoveTranslation_DropsLocallyPreservingOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestTranslationSvc(t, ctrl, "jwt-token")
	ctx := context.Background()
	seedHistory(t, svc, mockAdapter, historyRecords())

	// no Translations expectation: the delete must not re-fetch the list
	mockAdapter.EXPECT().DeleteTranslation(ctx, "jwt-token", int64(2)).Return(nil)

	err := svc.RemoveTranslation(ctx, 2)
	require.NoError(t, err)

	records := svc.Records()
	require.Len(t, records, 2)
	assert.Equal(t, int64(3), records[0].ID)
	assert.Equal(t, int64(1), records[1].ID)
}

func TestClientTranslationService_RemoveTranslation_ServerErrorKeepsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestTranslationSvc(t, ctrl, "jwt-token")
	ctx := context.Background()
	seedHistory(t, svc, mockAdapter, historyRecords())

	mockAdapter.EXPECT().
		DeleteTranslation(ctx, "jwt-token", int64(2)).
		Return(fmt.Errorf("%w: %s", adapter.ErrNotFound, "Tradução não encontrada"))

	err := svc.RemoveTranslation(ctx, 2)
	require.Error(t, err)
	assert.Equal(t, "Tradução não encontrada", svc.LastError())
	assert.Len(t, svc.Records(), 3)
}

func TestClientTranslationService_ClearHistory_EmptiesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestTranslationSvc(t, ctrl, "jwt-token")
	ctx := context.Background()
	seedHistory(t, svc, mockAdapter, historyRecords())

	mockAdapter.EXPECT().ClearTranslations(ctx, "jwt-token").Return(nil)

	err := svc.ClearHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, svc.Records())
}

// ── Detect / image OCR ───────────────────────────────────────────────────────

func TestClientTranslationService_DetectLanguage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestTranslationSvc(t, ctrl, "jwt-token")
	ctx := context.Background()

	mockAdapter.EXPECT().
		Detect(ctx, "jwt-token", "bonjour").
		Return(models.DetectResponse{DetectedLanguage: "fr", Confidence: 0.97}, nil)

	resp, err := svc.DetectLanguage(ctx, "bonjour")
	require.NoError(t, err)
	assert.Equal(t, "fr", resp.DetectedLanguage)
	assert.InDelta(t, 0.97, resp.Confidence, 1e-9)
}

func TestClientTranslationService_TranslateImage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestTranslationSvc(t, ctrl, "jwt-token")
	ctx := context.Background()
	image := []byte{0x89, 0x50, 0x4E, 0x47}

	mockAdapter.EXPECT().
		TranslateImage(ctx, "jwt-token", "nota.png", image).
		Return("Prezado cliente", nil)

	text, err := svc.TranslateImage(ctx, "nota.png", image)
	require.NoError(t, err)
	assert.Equal(t, "Prezado cliente", text)
}

func TestClientTranslationService_TranslateImage_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestTranslationSvc(t, ctrl, "jwt-token")
	ctx := context.Background()

	mockAdapter.EXPECT().
		TranslateImage(ctx, "jwt-token", "nota.png", gomock.Any()).
		Return("", fmt.Errorf("%w: %s", adapter.ErrInternalServerError, "Não foi possível extrair texto da imagem"))

	_, err := svc.TranslateImage(ctx, "nota.png", []byte{1})
	require.Error(t, err)
	assert.Equal(t, "Não foi possível extrair texto da imagem", svc.LastError())
}

// ── Records ──────────────────────────────────────────────────────────────────

func TestClientTranslationService_Records_ReturnsCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestTranslationSvc(t, ctrl, "jwt-token")
	seedHistory(t, svc, mockAdapter, historyRecords())

	records := svc.Records()
	records[0].TranslatedText = "mutated"

	assert.Equal(t, "bom dia", svc.Records()[0].TranslatedText)
}
