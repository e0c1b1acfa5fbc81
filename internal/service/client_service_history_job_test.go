package service_test

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/traduzo/traduzo/internal/logger"
	"github.com/traduzo/traduzo/internal/mock"
	"github.com/traduzo/traduzo/internal/service"
)

func TestClientHistoryJob_RefreshesOnTicker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHistory := mock.NewMockClientTranslationService(ctrl)
	job := service.NewClientHistoryJob(mockHistory, logger.Nop())

	refreshed := make(chan struct{}, 1)
	mockHistory.EXPECT().
		ListTranslations(gomock.Any()).
		DoAndReturn(func(context.Context) error {
			select {
			case refreshed <- struct{}{}:
			default:
			}
			return nil
		}).
		MinTimes(1)

	job.Start(context.Background(), 10*time.Millisecond)
	defer job.Stop()

	select {
	case <-refreshed:
	case <-time.After(2 * time.Second):
		t.Fatal("history was never refreshed")
	}
}

func TestClientHistoryJob_StopWithoutStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHistory := mock.NewMockClientTranslationService(ctrl)
	job := service.NewClientHistoryJob(mockHistory, logger.Nop())

	job.Stop()
	job.Stop()
}

func TestClientHistoryJob_RestartReplacesPreviousLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHistory := mock.NewMockClientTranslationService(ctrl)
	mockHistory.EXPECT().ListTranslations(gomock.Any()).Return(nil).AnyTimes()
	job := service.NewClientHistoryJob(mockHistory, logger.Nop())

	ctx := context.Background()
	job.Start(ctx, 10*time.Millisecond)
	job.Start(ctx, 10*time.Millisecond)
	job.Stop()
}

func TestClientHistoryJob_DefaultIntervalDoesNotTickImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// default interval is 5 minutes, so no refresh is expected here
	mockHistory := mock.NewMockClientTranslationService(ctrl)
	job := service.NewClientHistoryJob(mockHistory, logger.Nop())

	job.Start(context.Background(), 0)
	job.Stop()
}
