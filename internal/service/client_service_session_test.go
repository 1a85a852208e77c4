// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/recipe-keeper/internal/adapter"
	"github.com/MKhiriev/recipe-keeper/internal/identity"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/mock"
	"github.com/MKhiriev/recipe-keeper/internal/store"
	"github.com/MKhiriev/recipe-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestSessionSvc builds a clientSessionService wired to gomock doubles.
func newTestSessionSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*clientSessionService,
	*mock.MockProvider,
	*mock.MockBackendAdapter,
	*mock.MockSessionStore,
) {
	t.Helper()
	mockProvider := mock.NewMockProvider(ctrl)
	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	mockStore := mock.NewMockSessionStore(ctrl)

	svc := NewClientSessionService(mockProvider, mockAdapter, mockStore, true, logger.Nop()).(*clientSessionService)
	return svc, mockProvider, mockAdapter, mockStore
}

func testIdentityToken() models.IdentityToken {
	return models.IdentityToken{
		IDToken:      "id-token-1",
		RefreshToken: "refresh-1",
		UID:          "uid-1",
		Email:        "alice@example.com",
		ExpiresAt:    time.Now().Add(time.Hour),
	}
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientSessionService_Login_WithEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProvider, mockAdapter, mockStore := newTestSessionSvc(t, ctrl)
	ctx := context.Background()
	token := testIdentityToken()

	mockProvider.EXPECT().SignIn(ctx, "alice@example.com", "pass").Return(token, nil)
	mockAdapter.EXPECT().ExchangeSession(ctx, token.IDToken).
		Return(models.UserView{UID: "uid-1", Username: "alice"}, nil)
	mockProvider.EXPECT().CurrentUser().Return(token, true)
	mockStore.EXPECT().SaveSession(ctx, gomock.Any(), token.RefreshToken).Return(nil)

	err := svc.Login(ctx, "alice@example.com", "pass")
	require.NoError(t, err)

	assert.Equal(t, StateAuthenticated, svc.State())
	user, ok := svc.CurrentUser()
	require.True(t, ok)
	// the backend omitted the email, so it is filled in from the token
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "alice", user.Username)
}

func TestClientSessionService_Login_WithUsername_LookupBeforeSignIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProvider, mockAdapter, mockStore := newTestSessionSvc(t, ctrl)
	ctx := context.Background()
	token := testIdentityToken()

	gomock.InOrder(
		mockAdapter.EXPECT().LookupEmailByUsername(ctx, "alice").Return("alice@example.com", nil),
		mockProvider.EXPECT().SignIn(ctx, "alice@example.com", "pass").Return(token, nil),
		mockAdapter.EXPECT().ExchangeSession(ctx, token.IDToken).
			Return(models.UserView{UID: "uid-1", Email: "alice@example.com"}, nil),
	)
	mockProvider.EXPECT().CurrentUser().Return(token, true)
	mockStore.EXPECT().SaveSession(ctx, gomock.Any(), token.RefreshToken).Return(nil)

	err := svc.Login(ctx, "alice", "pass")
	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, svc.State())
}

func TestClientSessionService_Login_LookupFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().LookupEmailByUsername(ctx, "ghost").
		Return("", errors.New("not found: user not found"))

	err := svc.Login(ctx, "ghost", "pass")
	require.ErrorIs(t, err, ErrUserLookupFailed)
	assert.Equal(t, StateUnknown, svc.State(), "a failed login must not change the state")
}

func TestClientSessionService_Login_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProvider, _, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockProvider.EXPECT().SignIn(ctx, "alice@example.com", "wrong").
		Return(models.IdentityToken{}, identity.ErrInvalidCredentials)

	err := svc.Login(ctx, "alice@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, StateUnknown, svc.State())
}

func TestClientSessionService_Login_ExchangeFails_SignsOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProvider, mockAdapter, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()
	token := testIdentityToken()

	mockProvider.EXPECT().SignIn(ctx, "alice@example.com", "pass").Return(token, nil)
	mockAdapter.EXPECT().ExchangeSession(ctx, token.IDToken).
		Return(models.UserView{}, adapter.ErrBadGateway)
	mockProvider.EXPECT().SignOut(ctx).Return(nil)

	err := svc.Login(ctx, "alice@example.com", "pass")
	require.ErrorIs(t, err, ErrSessionEstablishFailed)
	assert.Equal(t, StateUnknown, svc.State())
	_, ok := svc.CurrentUser()
	assert.False(t, ok)
}

func TestClientSessionService_Login_PersistenceNone_StoresNoRefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := mock.NewMockProvider(ctrl)
	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	mockStore := mock.NewMockSessionStore(ctrl)
	svc := NewClientSessionService(mockProvider, mockAdapter, mockStore, false, logger.Nop())
	ctx := context.Background()
	token := testIdentityToken()

	mockProvider.EXPECT().SignIn(ctx, "alice@example.com", "pass").Return(token, nil)
	mockAdapter.EXPECT().ExchangeSession(ctx, token.IDToken).
		Return(models.UserView{UID: "uid-1", Username: "alice"}, nil)
	mockProvider.EXPECT().CurrentUser().Return(token, true)
	// the view snapshot is still cached, but the refresh token must not be
	mockStore.EXPECT().SaveSession(ctx, gomock.Any(), "").Return(nil)

	err := svc.Login(ctx, "alice@example.com", "pass")
	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, svc.State())
}

// ── SignUp ───────────────────────────────────────────────────────────────────

func TestClientSessionService_SignUp_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProvider, mockAdapter, mockStore := newTestSessionSvc(t, ctrl)
	ctx := context.Background()
	token := testIdentityToken()

	input := models.SignUpInput{
		Email:     "alice@example.com",
		Password:  "pass",
		Username:  "alice",
		FirstName: "Alice",
		LastName:  "Anderson",
	}

	mockProvider.EXPECT().SignUp(ctx, input.Email, input.Password).Return(token, nil)
	mockAdapter.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, got models.SignUpInput) (models.UserView, error) {
			assert.Equal(t, "Alice Anderson", got.DisplayName, "display name is derived when empty")
			return models.UserView{UID: "uid-1", Username: "alice"}, nil
		},
	)
	mockAdapter.EXPECT().ExchangeSession(ctx, token.IDToken).
		Return(models.UserView{UID: "uid-1", Username: "alice", RecipesCount: 0}, nil)
	mockProvider.EXPECT().CurrentUser().Return(token, true)
	mockStore.EXPECT().SaveSession(ctx, gomock.Any(), token.RefreshToken).Return(nil)

	err := svc.SignUp(ctx, input)
	require.NoError(t, err)

	user, ok := svc.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "Alice Anderson", user.DisplayName)
}

func TestClientSessionService_SignUp_ProfileFails_DeletesIdentityAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProvider, mockAdapter, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()
	token := testIdentityToken()

	input := models.SignUpInput{Email: "alice@example.com", Password: "pass", Username: "alice"}

	gomock.InOrder(
		mockProvider.EXPECT().SignUp(ctx, input.Email, input.Password).Return(token, nil),
		mockAdapter.EXPECT().CreateUser(ctx, gomock.Any()).
			Return(models.UserView{}, errors.New("create user: conflict: username already taken")),
		// compensation: the orphaned identity account is removed
		mockProvider.EXPECT().DeleteAccount(ctx).Return(nil),
	)

	err := svc.SignUp(ctx, input)
	require.Error(t, err)
	assert.Equal(t, StateUnknown, svc.State())
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestClientSessionService_Logout_SynchronousStateChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProvider, mockAdapter, mockStore := newTestSessionSvc(t, ctrl)
	svc.commitAuthenticated(0, models.UserView{UID: "uid-1"})

	release := make(chan struct{})
	done := make(chan struct{})

	// a hanging backend must not delay the local transition
	mockAdapter.EXPECT().Logout(gomock.Any()).DoAndReturn(
		func(context.Context) error {
			<-release
			return nil
		},
	)
	mockProvider.EXPECT().SignOut(gomock.Any()).Return(nil)
	mockStore.EXPECT().ClearSession(gomock.Any()).DoAndReturn(
		func(context.Context) error {
			close(done)
			return nil
		},
	)

	err := svc.Logout(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateUnauthenticated, svc.State(), "state must flip before remote cleanup finishes")
	_, ok := svc.CurrentUser()
	assert.False(t, ok)

	close(release)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("background cleanup did not run")
	}
}

func TestClientSessionService_Logout_SupersedesInFlightLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProvider, mockAdapter, mockStore := newTestSessionSvc(t, ctrl)

	mockAdapter.EXPECT().Logout(gomock.Any()).Return(nil)
	mockProvider.EXPECT().SignOut(gomock.Any()).Return(nil)
	done := make(chan struct{})
	mockStore.EXPECT().ClearSession(gomock.Any()).DoAndReturn(
		func(context.Context) error {
			close(done)
			return nil
		},
	)

	// a login snapshots the generation, then a logout lands before the
	// login commits: the commit must be refused
	gen := svc.snapshotGeneration()
	require.NoError(t, svc.Logout(context.Background()))
	<-done

	ok := svc.commitAuthenticated(gen, models.UserView{UID: "uid-1"})
	assert.False(t, ok, "a commit from before the logout must lose")
	assert.Equal(t, StateUnauthenticated, svc.State())
}

// ── UpdateProfile ────────────────────────────────────────────────────────────

func TestClientSessionService_UpdateProfile_MergesOnlyReturnedFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProvider, mockAdapter, mockStore := newTestSessionSvc(t, ctrl)
	ctx := context.Background()
	token := testIdentityToken()

	svc.commitAuthenticated(0, models.UserView{
		UID:         "uid-1",
		Username:    "alice",
		DisplayName: "Alice A",
		Bio:         "old bio",
	})

	bio := "I cook"
	update := models.ProfileUpdate{Bio: &bio}

	// the backend echoes only the changed field
	mockAdapter.EXPECT().UpdateProfile(ctx, update).
		Return(models.UserView{Bio: "I cook"}, nil)
	mockProvider.EXPECT().CurrentUser().Return(token, true)
	mockStore.EXPECT().SaveSession(ctx, gomock.Any(), token.RefreshToken).Return(nil)

	merged, err := svc.UpdateProfile(ctx, update)
	require.NoError(t, err)

	assert.Equal(t, "I cook", merged.Bio)
	assert.Equal(t, "Alice A", merged.DisplayName, "omitted fields keep their prior value")
	assert.Equal(t, "alice", merged.Username)

	user, _ := svc.CurrentUser()
	assert.Equal(t, merged, user)
}

func TestClientSessionService_UpdateProfile_NotAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestSessionSvc(t, ctrl)

	_, err := svc.UpdateProfile(context.Background(), models.ProfileUpdate{})
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestClientSessionService_UpdateProfile_BackendRejects_KeepsView(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	before := models.UserView{UID: "uid-1", DisplayName: "Alice A"}
	svc.commitAuthenticated(0, before)

	mockAdapter.EXPECT().UpdateProfile(ctx, gomock.Any()).
		Return(models.UserView{}, adapter.ErrBadRequest)

	_, err := svc.UpdateProfile(ctx, models.ProfileUpdate{})
	require.ErrorIs(t, err, ErrProfileUpdateFailed)

	user, ok := svc.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, before, user, "a rejected update must not touch the view")
}

// ── CheckSession ─────────────────────────────────────────────────────────────

func TestClientSessionService_CheckSession_NoPersistedSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, mockStore := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockStore.EXPECT().LoadSession(ctx).
		Return(models.UserView{}, "", store.ErrSessionNotFound)

	err := svc.CheckSession(ctx)
	require.NoError(t, err, "an absent session is not an error")
	assert.Equal(t, StateUnauthenticated, svc.State())
}

func TestClientSessionService_CheckSession_EmptyRefreshToken_StaysSignedOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, mockStore := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	// a snapshot written under persistence mode "none" carries no token
	mockStore.EXPECT().LoadSession(ctx).
		Return(models.UserView{UID: "uid-1", Username: "alice"}, "", nil)

	err := svc.CheckSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, StateUnauthenticated, svc.State())
	_, ok := svc.CurrentUser()
	assert.False(t, ok)
}

func TestClientSessionService_CheckSession_RestoresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProvider, mockAdapter, mockStore := newTestSessionSvc(t, ctrl)
	ctx := context.Background()
	token := testIdentityToken()

	cached := models.UserView{UID: "uid-1", Username: "alice", Bio: "cached bio"}

	gomock.InOrder(
		mockStore.EXPECT().LoadSession(ctx).Return(cached, "refresh-1", nil),
		mockProvider.EXPECT().Resume(ctx, "refresh-1").Return(nil),
		mockProvider.EXPECT().IDToken(ctx, false).Return("id-token-1", nil),
		mockAdapter.EXPECT().ExchangeSession(ctx, "id-token-1").
			Return(models.UserView{UID: "uid-1", Username: "alice", Bio: "fresh bio"}, nil),
	)
	mockProvider.EXPECT().CurrentUser().Return(token, true)
	mockStore.EXPECT().SaveSession(ctx, gomock.Any(), token.RefreshToken).Return(nil)

	err := svc.CheckSession(ctx)
	require.NoError(t, err)

	assert.Equal(t, StateAuthenticated, svc.State())
	user, _ := svc.CurrentUser()
	assert.Equal(t, "fresh bio", user.Bio, "fresh fields overwrite the cached snapshot")
}

func TestClientSessionService_CheckSession_ZeroCountersOverwriteCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProvider, mockAdapter, mockStore := newTestSessionSvc(t, ctrl)
	ctx := context.Background()
	token := testIdentityToken()

	cached := models.UserView{UID: "uid-1", Username: "alice", FollowersCount: 3, RecipesCount: 7}

	gomock.InOrder(
		mockStore.EXPECT().LoadSession(ctx).Return(cached, "refresh-1", nil),
		mockProvider.EXPECT().Resume(ctx, "refresh-1").Return(nil),
		mockProvider.EXPECT().IDToken(ctx, false).Return("id-token-1", nil),
		mockAdapter.EXPECT().ExchangeSession(ctx, "id-token-1").
			Return(models.UserView{UID: "uid-1", Username: "alice", FollowersCount: 0, RecipesCount: 2}, nil),
	)
	mockProvider.EXPECT().CurrentUser().Return(token, true)
	mockStore.EXPECT().SaveSession(ctx, gomock.Any(), token.RefreshToken).Return(nil)

	err := svc.CheckSession(ctx)
	require.NoError(t, err)

	user, _ := svc.CurrentUser()
	assert.Equal(t, 0, user.FollowersCount, "the full exchanged profile is authoritative even at zero")
	assert.Equal(t, 2, user.RecipesCount)
}

func TestClientSessionService_CheckSession_ResumeFails_CleansUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProvider, _, mockStore := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockStore.EXPECT().LoadSession(ctx).
			Return(models.UserView{UID: "uid-1"}, "stale-refresh", nil),
		mockProvider.EXPECT().Resume(ctx, "stale-refresh").
			Return(identity.ErrTokenRefresh),
		mockProvider.EXPECT().SignOut(ctx).Return(nil),
		mockStore.EXPECT().ClearSession(ctx).Return(nil),
	)

	err := svc.CheckSession(ctx)
	require.Error(t, err)
	assert.Equal(t, StateUnauthenticated, svc.State())
}

// ── RefreshSession ───────────────────────────────────────────────────────────

func TestClientSessionService_RefreshSession_NoopWhenNotAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestSessionSvc(t, ctrl)

	require.NoError(t, svc.RefreshSession(context.Background()))
	assert.Equal(t, StateUnknown, svc.State())
}

func TestClientSessionService_RefreshSession_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProvider, mockAdapter, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	svc.commitAuthenticated(0, models.UserView{UID: "uid-1"})

	mockProvider.EXPECT().IDToken(ctx, true).Return("fresh-id-token", nil)
	mockAdapter.EXPECT().RefreshSession(ctx, "fresh-id-token").Return(nil)

	require.NoError(t, svc.RefreshSession(ctx))
	assert.Equal(t, StateAuthenticated, svc.State())
}

func TestClientSessionService_RefreshSession_Rejected_ForcesLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProvider, mockAdapter, mockStore := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	svc.commitAuthenticated(0, models.UserView{UID: "uid-1"})

	mockProvider.EXPECT().IDToken(ctx, true).Return("fresh-id-token", nil)
	mockAdapter.EXPECT().RefreshSession(ctx, "fresh-id-token").
		Return(adapter.ErrUnauthorized)
	mockProvider.EXPECT().SignOut(ctx).Return(nil)
	mockStore.EXPECT().ClearSession(ctx).Return(nil)

	err := svc.RefreshSession(ctx)
	require.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, StateUnauthenticated, svc.State())
	_, ok := svc.CurrentUser()
	assert.False(t, ok)
}
