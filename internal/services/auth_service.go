package services

import (
	"time"

	"navigator_backend/internal/auth"
	"navigator_backend/internal/email"
	"navigator_backend/internal/logger"
	"navigator_backend/internal/models"
	"navigator_backend/internal/repositories"
	"navigator_backend/internal/services/dto"
	"navigator_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetCurrentUser(userID uint) (*dto.UserResponse, error)
	UpdateRole(userID uint, role models.UserRole) (*dto.UserResponse, error)
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	orgRepo       repositories.OrganizationRepository
	tokens        *auth.TokenService
	emailProvider email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	orgRepo repositories.OrganizationRepository,
	tokens *auth.TokenService,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		orgRepo:       orgRepo,
		tokens:        tokens,
		emailProvider: emailProvider,
	}
}

// Register creates the user, lazily resolving the organization by name, and
// returns the persisted user together with a signed token.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         models.UserRoleUser,
	}

	if req.Organization != "" {
		org, err := s.orgRepo.FindOrCreateByName(req.Organization)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.OrganizationID = &org.ID
		user.Organization = org
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := s.tokens.Issue(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Best effort; registration already succeeded.
	go func() {
		if err := s.emailProvider.SendWelcome(user.Email, user.Name); err != nil {
			logger.Warn("welcome email failed", "email", user.Email, "error", err)
		}
	}()

	return &dto.AuthResponse{
		User:  dto.NewUserResponse(user),
		Token: token,
	}, nil
}

// Login authenticates by email and password. Unknown emails and wrong
// passwords produce the same error, so callers cannot probe for accounts.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Independent write: the token stands even when this update fails.
	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(user.ID, now); err != nil {
		logger.Warn("failed to update last login", "user_id", user.ID, "error", err)
	} else {
		user.LastLogin = &now
	}

	return &dto.AuthResponse{
		User:  dto.NewUserResponse(user),
		Token: token,
	}, nil
}

// GetCurrentUser re-reads the user row behind a verified token.
func (s *AuthServiceImpl) GetCurrentUser(userID uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

// UpdateRole is the admin-only promotion path; roles change nowhere else.
func (s *AuthServiceImpl) UpdateRole(userID uint, role models.UserRole) (*dto.UserResponse, error) {
	if !models.ValidRole(role) {
		return nil, apperrors.NewBadRequestError("Invalid role")
	}

	if err := s.userRepo.UpdateRole(userID, role); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	return s.GetCurrentUser(userID)
}
