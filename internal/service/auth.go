package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pizzapos-backend/internal/domain"
	"pizzapos-backend/internal/logger"
	"pizzapos-backend/internal/repository"
	"pizzapos-backend/internal/session"
)

var ErrInvalidToken = errors.New("invalid token")

type authService struct {
	userRepo  repository.UserRepository
	slot      *session.Store
	jwtSecret []byte
	tokenTTL  time.Duration

	mu      sync.RWMutex
	current *domain.Session
}

func NewAuthService(userRepo repository.UserRepository, slot *session.Store, secret string, tokenTTL time.Duration) AuthService {
	s := &authService{
		userRepo:  userRepo,
		slot:      slot,
		jwtSecret: []byte(secret),
		tokenTTL:  tokenTTL,
	}
	// Restore the durable slot so a restart does not force a re-login.
	restored, err := slot.Load()
	if err != nil {
		logger.Warn("Could not restore session slot", "error", err)
	} else if restored != nil {
		s.current = restored
		logger.Info("Session restored", "user", restored.User.Name)
	}
	return s
}

func (s *authService) Login(ctx context.Context, pin string) (*domain.AppUser, string, error) {
	user, err := s.userRepo.GetActiveByPIN(ctx, pin)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, "", domain.ErrInvalidCredential
	}
	if err != nil {
		return nil, "", err
	}

	sess := &domain.Session{User: *user, IssuedAt: time.Now()}
	if err := s.slot.Save(sess); err != nil {
		return nil, "", fmt.Errorf("persist session: %w", err)
	}
	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) Logout() error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	return s.slot.Clear()
}

func (s *authService) CurrentSession() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *authService) generateToken(user *domain.AppUser) (string, error) {
	modules := make([]string, 0, len(user.AllowedModules))
	for _, m := range user.AllowedModules {
		modules = append(modules, string(m))
	}
	claims := jwt.MapClaims{
		"sub":     user.ID,
		"name":    user.Name,
		"role":    string(user.Role),
		"modules": modules,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

// VerifyToken reconstructs the user snapshot carried in a session token.
func (s *authService) VerifyToken(token string) (*domain.AppUser, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	user := &domain.AppUser{IsActive: true}
	if sub, ok := claims["sub"].(string); ok {
		user.ID = sub
	}
	if name, ok := claims["name"].(string); ok {
		user.Name = name
	}
	if role, ok := claims["role"].(string); ok {
		user.Role = domain.Role(role)
	}
	if raw, ok := claims["modules"].([]interface{}); ok {
		for _, m := range raw {
			if str, ok := m.(string); ok {
				user.AllowedModules = append(user.AllowedModules, domain.Module(str))
			}
		}
	}
	if user.ID == "" {
		return nil, ErrInvalidToken
	}
	return user, nil
}
