package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"rental-booking/internal/data/entity"
	"rental-booking/internal/data/repository"
	"rental-booking/internal/dto/request"
	"rental-booking/internal/dto/response"
	"rental-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	ValidateSession(ctx context.Context, token string) (string, bool)
	GetProfile(ctx context.Context) (*response.AdminProfileResponse, error)
	UpdateProfile(ctx context.Context, req *request.UpdateProfileRequest) (*response.AdminProfileResponse, error)
}

type session struct {
	username  string
	expiresAt time.Time
}

type authService struct {
	repo       *repository.Repository
	cfg        utils.AdminConfig
	log        *zap.Logger
	sessionTTL time.Duration

	mu       sync.Mutex
	sessions map[string]session
}

func NewAuthService(repo *repository.Repository, cfg utils.AdminConfig, log *zap.Logger) AuthService {
	ttl := time.Duration(cfg.SessionTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &authService{
		repo:       repo,
		cfg:        cfg,
		log:        log.With(zap.String("service", "auth")),
		sessionTTL: ttl,
		sessions:   make(map[string]session),
	}
}

// ensureProfile loads the stored admin profile, bootstrapping one from the
// configured credentials on first run. The load is strict: bootstrapping
// over a profile that exists but could not be read would reset it.
func (s *authService) ensureProfile(ctx context.Context) (*entity.AdminProfile, error) {
	profile, err := s.repo.Document.GetAdminProfileForUpdate(ctx)
	if err != nil {
		return nil, fmt.Errorf("get admin profile: %w", err)
	}
	if profile != nil {
		return profile, nil
	}

	if s.cfg.Password == "" {
		return nil, fmt.Errorf("no admin account configured")
	}

	hash, err := utils.HashPassword(s.cfg.Password)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}

	now := time.Now()
	profile = &entity.AdminProfile{
		ID:           utils.GenerateRecordID("admin"),
		Username:     s.cfg.Username,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Document.SaveAdminProfile(ctx, profile); err != nil {
		return nil, err
	}

	s.log.Info("Admin profile bootstrapped", zap.String("username", profile.Username))
	return profile, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	profile, err := s.ensureProfile(ctx)
	if err != nil {
		s.log.Error("Failed to load admin profile", zap.Error(err))
		return nil, err
	}

	if req.Username != profile.Username || !utils.CheckPassword(req.Password, profile.PasswordHash) {
		s.log.Warn("Login failed", zap.String("username", req.Username))
		return nil, fmt.Errorf("unauthorized: invalid credentials")
	}

	token := utils.GenerateSessionToken()
	expiresAt := time.Now().Add(s.sessionTTL)

	s.mu.Lock()
	s.pruneExpiredLocked()
	s.sessions[token] = session{username: profile.Username, expiresAt: expiresAt}
	s.mu.Unlock()

	now := time.Now()
	profile.LastLogin = &now
	if err := s.repo.Document.SaveAdminProfile(ctx, profile); err != nil {
		// Login already succeeded; a failed last-login stamp is not fatal.
		s.log.Warn("Failed to record last login", zap.Error(err))
	}

	s.log.Info("Admin logged in", zap.String("username", profile.Username))

	return &response.LoginResponse{
		Token:     token,
		Username:  profile.Username,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[token]; !ok {
		return fmt.Errorf("session not found")
	}
	delete(s.sessions, token)
	return nil
}

// ValidateSession reports the username bound to a live session token.
func (s *authService) ValidateSession(ctx context.Context, token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return "", false
	}
	if time.Now().After(sess.expiresAt) {
		delete(s.sessions, token)
		return "", false
	}
	return sess.username, true
}

// pruneExpiredLocked drops expired sessions. Caller must hold s.mu.
func (s *authService) pruneExpiredLocked() {
	now := time.Now()
	for token, sess := range s.sessions {
		if now.After(sess.expiresAt) {
			delete(s.sessions, token)
		}
	}
}

func (s *authService) GetProfile(ctx context.Context) (*response.AdminProfileResponse, error) {
	profile, err := s.ensureProfile(ctx)
	if err != nil {
		return nil, err
	}
	resp := response.AdminProfileToResponse(profile)
	return &resp, nil
}

func (s *authService) UpdateProfile(ctx context.Context, req *request.UpdateProfileRequest) (*response.AdminProfileResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	profile, err := s.ensureProfile(ctx)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		profile.Email = *req.Email
	}
	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		profile.PasswordHash = hash
	}
	profile.UpdatedAt = time.Now()

	if err := s.repo.Document.SaveAdminProfile(ctx, profile); err != nil {
		return nil, err
	}

	s.log.Info("Admin profile updated", zap.String("username", profile.Username))

	resp := response.AdminProfileToResponse(profile)
	return &resp, nil
}
