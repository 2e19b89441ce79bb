package service

import (
	"context"
	"errors"
	"fmt"

	"esrs-platform/internal/auth"
	"esrs-platform/internal/database"
	"esrs-platform/internal/models"
	"esrs-platform/internal/repository"
	"esrs-platform/pkg/validator"
)

var (
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrRegistrationClosed = errors.New("registration is disabled")
	ErrProfileNotFound    = errors.New("profile not found")
)

// AuthService handles registration, login and profile lookups
type AuthService struct {
	profileRepo        *repository.ProfileRepository
	authService        *auth.Service
	enableRegistration bool
}

// NewAuthService creates a new auth service
func NewAuthService(profileRepo *repository.ProfileRepository, authService *auth.Service, enableRegistration bool) *AuthService {
	return &AuthService{
		profileRepo:        profileRepo,
		authService:        authService,
		enableRegistration: enableRegistration,
	}
}

// Register creates a profile and returns it with a fresh token. New
// accounts start as data collectors; only an admin can promote them.
func (s *AuthService) Register(ctx context.Context, email, password, fullName string) (*models.Profile, string, error) {
	if !s.enableRegistration {
		return nil, "", ErrRegistrationClosed
	}

	email = validator.SanitizeEmail(email)
	if err := validator.ValidateEmail(email); err != nil {
		return nil, "", err
	}
	if err := validator.ValidatePassword(password); err != nil {
		return nil, "", err
	}

	hash, err := s.authService.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	profile := &models.Profile{
		Email:        email,
		PasswordHash: hash,
		GlobalRole:   models.RoleDataCollector,
	}
	if name := validator.SanitizeString(fullName); name != "" {
		profile.FullName = &name
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", fmt.Errorf("failed to create profile: %w", err)
	}

	token, err := s.authService.GenerateToken(profile.ID, profile.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return profile, token, nil
}

// Login verifies credentials and returns the profile with a token
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Profile, string, error) {
	email = validator.SanitizeEmail(email)

	profile, err := s.profileRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up profile: %w", err)
	}
	if profile == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := s.authService.VerifyPassword(profile.PasswordHash, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.authService.GenerateToken(profile.ID, profile.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return profile, token, nil
}

// GetProfile retrieves a profile by ID
func (s *AuthService) GetProfile(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}
