package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Rrens/kopiloka/internal/domain"
	"github.com/Rrens/kopiloka/internal/security"
	"github.com/Rrens/kopiloka/internal/store"
	"github.com/rs/zerolog/log"
)

type demoAccount struct {
	password string
	user     domain.User
}

// demoAccounts are always available and cannot be registered over
var demoAccounts = map[string]demoAccount{
	"buyer@kopiloka.com": {
		password: "buyer123",
		user: domain.User{
			ID:      "buyer-1",
			Email:   "buyer@kopiloka.com",
			Name:    "Ahmad Buyer",
			Role:    domain.RoleBuyer,
			Phone:   "081234567890",
			Address: "Jl. Kopi No. 1, Jakarta",
		},
	},
	"seller@kopiloka.com": {
		password: "seller123",
		user: domain.User{
			ID:      "seller-1",
			Email:   "seller@kopiloka.com",
			Name:    "Budi Petani Kopi",
			Role:    domain.RoleSeller,
			Phone:   "089876543210",
			Address: "Jl. Perkebunan No. 5, Toraja",
		},
	},
}

// AuthService handles authentication operations
type AuthService struct {
	store      domain.DocumentStore
	jwtManager *security.JWTManager
	now        func() time.Time

	// mu serializes registrations, which rewrite the registrant list
	mu sync.Mutex
}

// NewAuthService creates a new auth service
func NewAuthService(docs domain.DocumentStore, jwtManager *security.JWTManager) *AuthService {
	return &AuthService{
		store:      docs,
		jwtManager: jwtManager,
		now:        time.Now,
	}
}

// Register creates a new account and signs it in
func (s *AuthService) Register(ctx context.Context, input domain.UserCreate) (*domain.AuthResult, error) {
	email := normalizeEmail(input.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	registrants, err := s.registrants(ctx)
	if err != nil {
		return nil, err
	}

	if _, ok := demoAccounts[email]; ok {
		return nil, ErrEmailTaken
	}
	for _, r := range registrants {
		if r.Email == email {
			return nil, ErrEmailTaken
		}
	}

	hash, err := security.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	id := timestampID(input.Role, s.now(), func(id string) bool {
		for _, r := range registrants {
			if r.ID == id {
				return true
			}
		}
		return false
	})

	user := domain.User{
		ID:    id,
		Email: email,
		Name:  strings.TrimSpace(input.Name),
		Role:  input.Role,
	}

	registrants = append(registrants, domain.Registrant{User: user, PasswordHash: hash})
	if err := s.store.Put(ctx, store.KeyRegisteredUsers, registrants); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user registered")

	return s.issue(user)
}

// Login checks the credentials against the demo accounts, then the registrants.
// The role must match the account's role.
func (s *AuthService) Login(ctx context.Context, input domain.UserLogin) (*domain.AuthResult, error) {
	email := normalizeEmail(input.Email)

	if demo, ok := demoAccounts[email]; ok {
		if subtle.ConstantTimeCompare([]byte(demo.password), []byte(input.Password)) == 1 && demo.user.Role == input.Role {
			return s.issue(demo.user)
		}
	}

	registrants, err := s.registrants(ctx)
	if err != nil {
		return nil, err
	}

	for _, r := range registrants {
		if r.Email == email && r.Role == input.Role && security.CheckPassword(r.PasswordHash, input.Password) {
			return s.issue(r.User)
		}
	}

	return nil, ErrInvalidCredentials
}

// Refresh exchanges a refresh token for a new token pair
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	result, err := s.issue(*user)
	if err != nil {
		return nil, err
	}
	return &result.Tokens, nil
}

// GetUserByID retrieves a user by ID
func (s *AuthService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	for _, demo := range demoAccounts {
		if demo.user.ID == userID {
			u := demo.user
			return &u, nil
		}
	}

	registrants, err := s.registrants(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range registrants {
		if r.ID == userID {
			u := r.User
			return &u, nil
		}
	}

	return nil, ErrUserNotFound
}

func (s *AuthService) registrants(ctx context.Context) ([]domain.Registrant, error) {
	var registrants []domain.Registrant
	if _, err := s.store.Get(ctx, store.KeyRegisteredUsers, &registrants); err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	return registrants, nil
}

func (s *AuthService) issue(user domain.User) (*domain.AuthResult, error) {
	accessToken, refreshToken, expiresIn, err := s.jwtManager.GenerateTokenPair(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &domain.AuthResult{
		User: user,
		Tokens: domain.TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			ExpiresIn:    expiresIn,
		},
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
