package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/traduzo/traduzo/internal/adapter"
	"github.com/traduzo/traduzo/internal/app"
	"github.com/traduzo/traduzo/internal/logger"
	"github.com/traduzo/traduzo/internal/mock"
	"github.com/traduzo/traduzo/internal/service"
	"github.com/traduzo/traduzo/internal/store"
	"github.com/traduzo/traduzo/models"
)

func newTestSessionSvc(t *testing.T, ctrl *gomock.Controller) (service.ClientSessionService, *mock.MockTokenStore, *mock.MockServerAdapter) {
	t.Helper()
	mockTokens := mock.NewMockTokenStore(ctrl)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := service.NewClientSessionService(mockTokens, mockAdapter, logger.Nop())
	return svc, mockTokens, mockAdapter
}

func testUser() models.User {
	return models.User{
		ID:                7,
		Name:              "Ana",
		Email:             "ana@example.com",
		PreferredLanguage: "pt",
		Theme:             "light",
	}
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientSessionService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTokens, mockAdapter := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		Login(ctx, models.LoginRequest{Email: "ana@example.com", Password: "secret"}).
		Return(models.AuthResponse{Token: "jwt-token", User: testUser()}, nil)
	mockTokens.EXPECT().Save("jwt-token").Return(nil)

	err := svc.Login(ctx, "ana@example.com", "secret")
	require.NoError(t, err)

	assert.Equal(t, service.PhaseAuthenticated, svc.Phase())
	assert.Equal(t, "jwt-token", svc.Token())
	user, ok := svc.User()
	require.True(t, ok)
	assert.Equal(t, int64(7), user.ID)
	assert.Empty(t, svc.LastError())
}

func TestClientSessionService_Login_ServerRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		Login(ctx, gomock.Any()).
		Return(models.AuthResponse{}, fmt.Errorf("%w: %s", adapter.ErrUnauthorized, "Credenciais inválidas"))

	err := svc.Login(ctx, "ana@example.com", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)

	// failure leaves the session untouched
	assert.Equal(t, service.PhaseAnonymous, svc.Phase())
	assert.Empty(t, svc.Token())
	_, ok := svc.User()
	assert.False(t, ok)
	assert.Equal(t, "Credenciais inválidas", svc.LastError())
}

func TestClientSessionService_Login_MalformedResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		Login(ctx, gomock.Any()).
		Return(models.AuthResponse{User: testUser()}, nil)

	err := svc.Login(ctx, "ana@example.com", "secret")
	require.Error(t, err)
	assert.Equal(t, service.PhaseAnonymous, svc.Phase())
	assert.Equal(t, app.MsgLoginFailed, svc.LastError())
}

func TestClientSessionService_Login_TokenPersistFailureKeepsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTokens, mockAdapter := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		Login(ctx, gomock.Any()).
		Return(models.AuthResponse{Token: "jwt-token", User: testUser()}, nil)
	mockTokens.EXPECT().Save("jwt-token").Return(errors.New("disk full"))

	err := svc.Login(ctx, "ana@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, service.PhaseAuthenticated, svc.Phase())
	assert.Equal(t, "jwt-token", svc.Token())
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestClientSessionService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTokens, mockAdapter := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		Register(ctx, models.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secret"}).
		Return(models.AuthResponse{Token: "jwt-token", User: testUser()}, nil)
	mockTokens.EXPECT().Save("jwt-token").Return(nil)

	err := svc.Register(ctx, "Ana", "ana@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, service.PhaseAuthenticated, svc.Phase())
}

func TestClientSessionService_Register_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		Register(ctx, gomock.Any()).
		Return(models.AuthResponse{}, fmt.Errorf("%w: %s", adapter.ErrBadRequest, "Email já cadastrado"))

	err := svc.Register(ctx, "Ana", "ana@example.com", "secret")
	require.Error(t, err)
	assert.Equal(t, "Email já cadastrado", svc.LastError())
	assert.Equal(t, service.PhaseAnonymous, svc.Phase())
}

// ── Hydrate ──────────────────────────────────────────────────────────────────

func TestClientSessionService_Hydrate_NoPersistedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTokens, _ := newTestSessionSvc(t, ctrl)

	mockTokens.EXPECT().Load().Return("", store.ErrTokenNotFound)

	err := svc.Hydrate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, service.PhaseAnonymous, svc.Phase())
	assert.Empty(t, svc.Token())
}

func TestClientSessionService_Hydrate_ValidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTokens, mockAdapter := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockTokens.EXPECT().Load().Return("stored-token", nil)
	mockAdapter.EXPECT().Profile(ctx, "stored-token").Return(testUser(), nil)

	err := svc.Hydrate(ctx)
	require.NoError(t, err)

	assert.Equal(t, service.PhaseAuthenticated, svc.Phase())
	assert.Equal(t, "stored-token", svc.Token())
	user, ok := svc.User()
	require.True(t, ok)
	assert.Equal(t, "Ana", user.Name)
}

func TestClientSessionService_Hydrate_StaleTokenForcesLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTokens, mockAdapter := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockTokens.EXPECT().Load().Return("stale-token", nil)
	mockAdapter.EXPECT().
		Profile(ctx, "stale-token").
		Return(models.User{}, fmt.Errorf("%w: %s", adapter.ErrUnauthorized, "Token inválido"))
	mockTokens.EXPECT().Clear().Return(nil)

	err := svc.Hydrate(ctx)
	require.Error(t, err)

	assert.Equal(t, service.PhaseAnonymous, svc.Phase())
	assert.Empty(t, svc.Token())
	_, ok := svc.User()
	assert.False(t, ok)
	assert.Equal(t, "Token inválido", svc.LastError())
}

func TestClientSessionService_Hydrate_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTokens, _ := newTestSessionSvc(t, ctrl)

	mockTokens.EXPECT().Load().Return("", errors.New("corrupt session file"))

	err := svc.Hydrate(context.Background())
	require.Error(t, err)
	assert.Equal(t, service.PhaseAnonymous, svc.Phase())
}

// ── RefreshProfile / Logout ──────────────────────────────────────────────────

func TestClientSessionService_RefreshProfile_NoopWhenAnonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestSessionSvc(t, ctrl)

	err := svc.RefreshProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, service.PhaseAnonymous, svc.Phase())
}

func TestClientSessionService_Logout_ClearsEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTokens, mockAdapter := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		Login(ctx, gomock.Any()).
		Return(models.AuthResponse{Token: "jwt-token", User: testUser()}, nil)
	mockTokens.EXPECT().Save("jwt-token").Return(nil)
	mockTokens.EXPECT().Clear().Return(nil)

	require.NoError(t, svc.Login(ctx, "ana@example.com", "secret"))
	svc.Logout()

	assert.Equal(t, service.PhaseAnonymous, svc.Phase())
	assert.Empty(t, svc.Token())
	_, ok := svc.User()
	assert.False(t, ok)
}

// ── Profile updates ──────────────────────────────────────────────────────────

func loginHelper(t *testing.T, svc service.ClientSessionService, mockTokens *mock.MockTokenStore, mockAdapter *mock.MockServerAdapter) {
	t.Helper()
	ctx := context.Background()
	mockAdapter.EXPECT().
		Login(ctx, gomock.Any()).
		Return(models.AuthResponse{Token: "jwt-token", User: testUser()}, nil)
	mockTokens.EXPECT().Save("jwt-token").Return(nil)
	require.NoError(t, svc.Login(ctx, "ana@example.com", "secret"))
}

func TestClientSessionService_SaveProfile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTokens, mockAdapter := newTestSessionSvc(t, ctrl)
	loginHelper(t, svc, mockTokens, mockAdapter)
	ctx := context.Background()

	theme := "dark"
	updated := testUser()
	updated.Theme = "dark"
	mockAdapter.EXPECT().
		UpdateProfile(ctx, "jwt-token", models.ProfilePatch{Theme: &theme}).
		Return(updated, nil)

	err := svc.SaveProfile(ctx, models.ProfilePatch{Theme: &theme})
	require.NoError(t, err)

	user, ok := svc.User()
	require.True(t, ok)
	assert.Equal(t, "dark", user.Theme)
}

func TestClientSessionService_SaveProfile_NotAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestSessionSvc(t, ctrl)

	err := svc.SaveProfile(context.Background(), models.ProfilePatch{})
	assert.ErrorIs(t, err, service.ErrNotAuthenticated)
}

func TestClientSessionService_UpdateAvatar_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTokens, mockAdapter := newTestSessionSvc(t, ctrl)
	loginHelper(t, svc, mockTokens, mockAdapter)
	ctx := context.Background()

	mockAdapter.EXPECT().
		UpdateAvatar(ctx, "jwt-token", "data:image/png;base64,AAAA").
		Return(models.User{}, fmt.Errorf("%w: %s", adapter.ErrBadRequest, "Avatar inválido"))

	err := svc.UpdateAvatar(ctx, "data:image/png;base64,AAAA")
	require.Error(t, err)
	assert.Equal(t, "Avatar inválido", svc.LastError())

	// the user loaded at login survives the failed update
	user, ok := svc.User()
	require.True(t, ok)
	assert.Equal(t, "Ana", user.Name)
}

func TestClientSessionService_UpdateUserLocal_MergesFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTokens, mockAdapter := newTestSessionSvc(t, ctrl)
	loginHelper(t, svc, mockTokens, mockAdapter)

	err := svc.UpdateUserLocal(models.User{Theme: "dark"})
	require.NoError(t, err)

	user, ok := svc.User()
	require.True(t, ok)
	assert.Equal(t, "dark", user.Theme)
	assert.Equal(t, "Ana", user.Name)
	assert.Equal(t, "pt", user.PreferredLanguage)
}

func TestClientSessionService_UpdateUserLocal_NoopWhenAnonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestSessionSvc(t, ctrl)

	err := svc.UpdateUserLocal(models.User{Theme: "dark"})
	require.NoError(t, err)
	_, ok := svc.User()
	assert.False(t, ok)
}
