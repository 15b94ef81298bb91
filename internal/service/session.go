package service

import (
	"context"
	"errors"
	"log"
	"sync"

	"foodexpress-storefront/internal/domain"
)

var (
	ErrMissingField            = errors.New("token, role, user id and name are all required")
	ErrInvalidAdminCredentials = errors.New("invalid admin credentials")
	ErrAdminDisabled           = errors.New("admin login is not configured")
)

// The admin session never comes from the backend; the sentinel token keeps
// the all-or-nothing session invariant intact.
const (
	adminToken  = "admin-token"
	adminUserID = "admin-id"
	adminName   = "Admin"
)

// AdminCredentials come from deployment configuration, never from source.
type AdminCredentials struct {
	Email    string
	Password string
}

// SessionService owns the authentication state machine. It hydrates from the
// store at boot, verifies the cached token against the backend, and exposes
// the login/logout mutations. All state changes are persisted to the store.
type SessionService struct {
	store    SessionStore
	verifier TokenVerifier
	catalog  CatalogRefresher
	admin    AdminCredentials

	mu       sync.RWMutex
	current  domain.Session
	initOnce sync.Once
}

func NewSessionService(store SessionStore, verifier TokenVerifier, catalog CatalogRefresher, admin AdminCredentials) *SessionService {
	return &SessionService{
		store:    store,
		verifier: verifier,
		catalog:  catalog,
		admin:    admin,
	}
}

// Initialize runs exactly once. Until it returns, Current().Initialized is
// false and the HTTP surface refuses to evaluate gated routes.
func (s *SessionService) Initialize(ctx context.Context) {
	s.initOnce.Do(func() {
		s.hydrate(ctx)
	})
}

// hydrate adopts the stored token if the backend still accepts it, and
// behaves as logout on any failure. Safe to re-run for reloads.
func (s *SessionService) hydrate(ctx context.Context) {
	defer s.markInitialized()

	token, _, _, _, err := s.store.LoadSession(ctx)
	if err != nil {
		log.Printf("[session] failed to read store, starting anonymous: %v", err)
		s.setSession(domain.Session{})
		return
	}
	if token == "" {
		s.setSession(domain.Session{})
		return
	}

	resp, err := s.verifier.VerifyToken(ctx)
	if err != nil {
		log.Printf("[session] cached token rejected, clearing session: %v", err)
		s.setSession(domain.Session{})
		if clearErr := s.store.ClearSession(ctx); clearErr != nil {
			log.Printf("[session] failed to clear store: %v", clearErr)
		}
		return
	}

	s.setSession(domain.Session{
		Token:  token,
		Role:   resp.Role,
		UserID: resp.UserID,
		Name:   resp.Name,
	})
}

func (s *SessionService) markInitialized() {
	s.mu.Lock()
	s.current.Initialized = true
	s.mu.Unlock()
}

func (s *SessionService) setSession(session domain.Session) {
	s.mu.Lock()
	session.Initialized = s.current.Initialized
	s.current = session
	s.mu.Unlock()
}

func (s *SessionService) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Login validates that no field is empty, updates memory before the store so
// the watch loop does not see its own write as foreign, and refreshes the
// catalog for a consistent post-auth view. A failed store write rolls the
// in-memory session back: the store is the token source for outgoing
// requests, so memory must never claim a session the store does not hold.
func (s *SessionService) Login(ctx context.Context, token string, role domain.Role, userID, name string) error {
	if token == "" || role == "" || userID == "" || name == "" {
		return ErrMissingField
	}

	previous := s.Current()
	s.setSession(domain.Session{
		Token:  token,
		Role:   role,
		UserID: userID,
		Name:   name,
	})
	if err := s.store.SaveSession(ctx, token, string(role), userID, name); err != nil {
		s.setSession(previous)
		return err
	}

	s.refreshCatalog(ctx, "login")
	return nil
}

// LoginAdmin checks the configured credentials without any backend call.
// A mismatch changes no state.
func (s *SessionService) LoginAdmin(ctx context.Context, email, password string) error {
	if s.admin.Email == "" || s.admin.Password == "" {
		return ErrAdminDisabled
	}
	if email != s.admin.Email || password != s.admin.Password {
		return ErrInvalidAdminCredentials
	}
	return s.Login(ctx, adminToken, domain.RoleAdmin, adminUserID, adminName)
}

// Logout clears store and memory. It never calls the backend: token
// invalidation is not server-tracked. Idempotent, so the 401 hook may fire it
// at any time.
func (s *SessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	wasAuthenticated := s.current.Token != ""
	s.current = domain.Session{Initialized: s.current.Initialized}
	s.mu.Unlock()

	if err := s.store.ClearSession(ctx); err != nil {
		return err
	}

	// The refresh exists to restore a consistent post-auth view; logging out
	// an already anonymous session changes nothing to restore, and the 401
	// hook may fire this repeatedly against an unreachable backend.
	if wasAuthenticated {
		s.refreshCatalog(ctx, "logout")
	}
	return nil
}

func (s *SessionService) refreshCatalog(ctx context.Context, cause string) {
	if s.catalog == nil {
		return
	}
	if err := s.catalog.Refresh(ctx); err != nil {
		log.Printf("[session] catalog refresh after %s failed: %v", cause, err)
	}
}

// StartWatch reloads this instance's entire state whenever another storefront
// instance changes the stored token. The state is small and cheap to refetch,
// so no finer reconciliation is attempted.
func (s *SessionService) StartWatch(ctx context.Context) {
	updates := s.store.WatchSession(ctx)
	go func() {
		for token := range updates {
			if token == s.Current().Token {
				continue
			}
			log.Printf("[session] store changed in another context, reloading")
			s.hydrate(ctx)
			s.refreshCatalog(ctx, "reload")
		}
	}()
}

var _ SessionServiceInterface = (*SessionService)(nil)
