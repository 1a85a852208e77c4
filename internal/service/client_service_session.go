package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"dario.cat/mergo"

	"github.com/MKhiriev/recipe-keeper/internal/adapter"
	"github.com/MKhiriev/recipe-keeper/internal/identity"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/store"
	"github.com/MKhiriev/recipe-keeper/models"
)

// remoteLogoutTimeout bounds the background cleanup calls a logout fires off.
const remoteLogoutTimeout = 5 * time.Second

type clientSessionService struct {
	identity identity.Provider
	backend  adapter.BackendAdapter
	store    store.SessionStore
	logger   *logger.Logger

	// persistRefreshToken mirrors the identity persistence mode: when false
	// the refresh token never reaches the local cache, so a restart cannot
	// resume the session.
	persistRefreshToken bool

	mu    sync.RWMutex
	state SessionState
	user  *models.UserView

	// generation counts Logout transitions. An in-flight login or refresh
	// snapshots it before its remote calls and commits only if it is
	// unchanged, so a logout issued mid-login always wins.
	generation uint64
}

func NewClientSessionService(provider identity.Provider, backendAdapter adapter.BackendAdapter, sessions store.SessionStore, persistRefreshToken bool, log *logger.Logger) ClientSessionService {
	return &clientSessionService{
		identity:            provider,
		backend:             backendAdapter,
		store:               sessions,
		logger:              log,
		state:               StateUnknown,
		persistRefreshToken: persistRefreshToken,
	}
}

func (s *clientSessionService) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *clientSessionService) CurrentUser() (models.UserView, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateAuthenticated || s.user == nil {
		return models.UserView{}, false
	}
	return *s.user, true
}

func (s *clientSessionService) Login(ctx context.Context, identifier, password string) error {
	gen := s.snapshotGeneration()

	email := identifier
	if !looksLikeEmail(identifier) {
		resolved, err := s.backend.LookupEmailByUsername(ctx, identifier)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUserLookupFailed, err)
		}
		email = resolved
	}

	token, err := s.identity.SignIn(ctx, email, password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
		}
		return fmt.Errorf("sign in: %w", err)
	}

	user, err := s.backend.ExchangeSession(ctx, token.IDToken)
	if err != nil {
		// roll back the half-finished sign-in so no principal lingers
		// without a session
		if serr := s.identity.SignOut(ctx); serr != nil {
			s.logger.Warn().Err(serr).Msg("failed to sign out after session exchange failure")
		}
		return fmt.Errorf("%w: %v", ErrSessionEstablishFailed, err)
	}
	if user.Email == "" {
		user.Email = token.Email
	}

	if !s.commitAuthenticated(gen, user) {
		if serr := s.identity.SignOut(ctx); serr != nil {
			s.logger.Warn().Err(serr).Msg("failed to sign out superseded login")
		}
		return fmt.Errorf("%w: superseded by logout", ErrSessionEstablishFailed)
	}

	s.persistSession(ctx, user)
	return nil
}

func (s *clientSessionService) SignUp(ctx context.Context, input models.SignUpInput) error {
	gen := s.snapshotGeneration()

	if input.DisplayName == "" {
		input.DisplayName = strings.TrimSpace(input.FirstName + " " + input.LastName)
	}

	token, err := s.identity.SignUp(ctx, input.Email, input.Password)
	if err != nil {
		return fmt.Errorf("sign up: %w", err)
	}

	created, err := s.backend.CreateUser(ctx, input)
	if err != nil {
		// compensate: the identity account exists but the profile does
		// not, so remove the account rather than strand it
		if derr := s.identity.DeleteAccount(ctx); derr != nil {
			s.logger.Warn().Err(derr).Str("email", input.Email).
				Msg("failed to delete identity account after signup failure")
		}
		return fmt.Errorf("create profile: %w", mapAdapterError(err))
	}

	view := userViewFromSignUp(input, token.UID)
	if merr := mergo.Merge(&view, created, mergo.WithOverride); merr != nil {
		s.logger.Warn().Err(merr).Msg("failed to merge created profile fields")
	}

	sessionView, err := s.backend.ExchangeSession(ctx, token.IDToken)
	if err != nil {
		if serr := s.identity.SignOut(ctx); serr != nil {
			s.logger.Warn().Err(serr).Msg("failed to sign out after session exchange failure")
		}
		return fmt.Errorf("%w: %v", ErrSessionEstablishFailed, err)
	}
	if merr := mergo.Merge(&view, sessionView, mergo.WithOverride); merr != nil {
		s.logger.Warn().Err(merr).Msg("failed to merge session profile fields")
	}

	if !s.commitAuthenticated(gen, view) {
		if serr := s.identity.SignOut(ctx); serr != nil {
			s.logger.Warn().Err(serr).Msg("failed to sign out superseded signup")
		}
		return fmt.Errorf("%w: superseded by logout", ErrSessionEstablishFailed)
	}

	s.persistSession(ctx, view)
	return nil
}

// Logout flips the local state first and unconditionally; the remote calls
// run detached so a hanging backend can never delay or revert the
// transition.
func (s *clientSessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	s.state = StateUnauthenticated
	s.user = nil
	s.mu.Unlock()

	go s.remoteLogout()
	return nil
}

func (s *clientSessionService) remoteLogout() {
	ctx, cancel := context.WithTimeout(context.Background(), remoteLogoutTimeout)
	defer cancel()

	if err := s.backend.Logout(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("best-effort backend logout failed")
	}
	if err := s.identity.SignOut(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("best-effort identity sign-out failed")
	}
	if err := s.store.ClearSession(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("failed to clear persisted session")
	}
}

func (s *clientSessionService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.UserView, error) {
	if s.State() != StateAuthenticated {
		return models.UserView{}, ErrNotAuthenticated
	}

	resp, err := s.backend.UpdateProfile(ctx, update)
	if err != nil {
		return models.UserView{}, fmt.Errorf("%w: %v", ErrProfileUpdateFailed, mapAdapterError(err))
	}

	// Read-then-merge under the lock: another operation may have replaced
	// the view while the update was in flight. The echo is partial, so a
	// zero-valued counter in it cannot overwrite a cached non-zero one;
	// the next session exchange corrects any counter drift.
	s.mu.Lock()
	if s.state != StateAuthenticated || s.user == nil {
		s.mu.Unlock()
		return models.UserView{}, ErrNotAuthenticated
	}
	merged := *s.user
	if merr := mergo.Merge(&merged, resp, mergo.WithOverride); merr != nil {
		s.mu.Unlock()
		return models.UserView{}, fmt.Errorf("%w: %v", ErrProfileUpdateFailed, merr)
	}
	s.user = &merged
	s.mu.Unlock()

	s.persistSession(ctx, merged)
	return merged, nil
}

func (s *clientSessionService) CheckSession(ctx context.Context) error {
	gen := s.snapshotGeneration()

	cached, refreshToken, err := s.store.LoadSession(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrSessionNotFound) {
			s.logger.Warn().Err(err).Msg("failed to load persisted session")
		}
		s.markUnauthenticated()
		return nil
	}
	if refreshToken == "" {
		s.markUnauthenticated()
		return nil
	}

	if err = s.identity.Resume(ctx, refreshToken); err != nil {
		s.forceSessionCleanup(ctx)
		return fmt.Errorf("resume session: %w", err)
	}

	idToken, err := s.identity.IDToken(ctx, false)
	if err != nil {
		s.forceSessionCleanup(ctx)
		return fmt.Errorf("resume session token: %w", err)
	}

	fresh, err := s.backend.ExchangeSession(ctx, idToken)
	if err != nil {
		s.forceSessionCleanup(ctx)
		return fmt.Errorf("%w: %v", ErrSessionEstablishFailed, err)
	}

	view := cached
	if merr := mergo.Merge(&view, fresh, mergo.WithOverride); merr != nil {
		s.logger.Warn().Err(merr).Msg("failed to merge restored profile fields")
	}
	// The exchange returns the full profile, so its counters are
	// authoritative even at zero; the merge above would keep a stale cached
	// value instead.
	view.FollowersCount = fresh.FollowersCount
	view.FollowingCount = fresh.FollowingCount
	view.RecipesCount = fresh.RecipesCount

	if !s.commitAuthenticated(gen, view) {
		return nil
	}

	s.persistSession(ctx, view)
	return nil
}

func (s *clientSessionService) RefreshSession(ctx context.Context) error {
	if s.State() != StateAuthenticated {
		return nil
	}

	idToken, err := s.identity.IDToken(ctx, true)
	if err != nil {
		return fmt.Errorf("refresh identity token: %w", err)
	}

	if err = s.backend.RefreshSession(ctx, idToken); err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			// the backend no longer recognises the session: forced logout
			s.forceSessionCleanup(ctx)
			return fmt.Errorf("%w: %v", ErrSessionExpired, err)
		}
		return fmt.Errorf("refresh session: %w", err)
	}

	return nil
}

func (s *clientSessionService) snapshotGeneration() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// commitAuthenticated installs user as the current view unless a logout
// happened since gen was snapshotted.
func (s *clientSessionService) commitAuthenticated(gen uint64, user models.UserView) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		return false
	}
	s.state = StateAuthenticated
	u := user
	s.user = &u
	return true
}

func (s *clientSessionService) markUnauthenticated() {
	s.mu.Lock()
	s.generation++
	s.state = StateUnauthenticated
	s.user = nil
	s.mu.Unlock()
}

// forceSessionCleanup handles a failed session check: the view reverts to
// unauthenticated and both the identity principal and the persisted session
// are dropped, best-effort.
func (s *clientSessionService) forceSessionCleanup(ctx context.Context) {
	s.markUnauthenticated()

	if err := s.identity.SignOut(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("best-effort identity sign-out failed")
	}
	if err := s.store.ClearSession(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("failed to clear persisted session")
	}
}

// persistSession is best-effort: a write failure costs the next start a
// fresh login, it never fails the current operation. The UserView snapshot is
// always cached; the refresh token only under persistence mode "local", so in
// mode "none" CheckSession finds an empty token and stays signed out.
func (s *clientSessionService) persistSession(ctx context.Context, user models.UserView) {
	token, ok := s.identity.CurrentUser()
	if !ok {
		return
	}
	refreshToken := ""
	if s.persistRefreshToken {
		refreshToken = token.RefreshToken
	}
	if err := s.store.SaveSession(ctx, user, refreshToken); err != nil {
		s.logger.Warn().Err(err).Str("uid", user.UID).Msg("failed to persist session snapshot")
	}
}

func userViewFromSignUp(input models.SignUpInput, uid string) models.UserView {
	return models.UserView{
		UID:         uid,
		Username:    input.Username,
		Email:       input.Email,
		DisplayName: input.DisplayName,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
	}
}

func looksLikeEmail(identifier string) bool {
	return strings.Contains(identifier, "@")
}
