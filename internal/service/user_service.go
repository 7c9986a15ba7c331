package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/service/auth"
	"github.com/phrazzld/contacts-api/internal/store"
)

// UserService provides registration, session and profile operations.
type UserService interface {
	// Register creates a user with a hashed password and no session.
	Register(ctx context.Context, req RegisterUserRequest) (*UserResponse, error)

	// Login verifies credentials and issues a fresh session token,
	// replacing any previous one.
	Login(ctx context.Context, req LoginUserRequest) (*UserResponse, error)

	// Get projects an already authenticated user.
	Get(ctx context.Context, user *domain.User) *UserResponse

	// Update changes the supplied fields of the authenticated user.
	Update(ctx context.Context, user *domain.User, req UpdateUserRequest) (*UserResponse, error)

	// Logout clears the authenticated user's session token.
	Logout(ctx context.Context, user *domain.User) error
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	users     store.UserStore
	hasher    auth.PasswordHasher
	tokens    auth.TokenGenerator
	validator *Validator
	logger    *slog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	users store.UserStore,
	hasher auth.PasswordHasher,
	tokens auth.TokenGenerator,
	validator *Validator,
	logger *slog.Logger,
) UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserServiceImpl{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		validator: validator,
		logger:    logger.With(slog.String("component", "user_service")),
	}
}

// Register implements UserService.Register
func (s *UserServiceImpl) Register(ctx context.Context, req RegisterUserRequest) (*UserResponse, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	exists, err := s.users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		log.Debug("attempted to register existing username", slog.String("username", req.Username))
		return nil, ErrUsernameExists
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	user := &domain.User{
		Username: req.Username,
		Password: hashed,
		Name:     req.Name,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			return nil, ErrUsernameExists
		}
		log.Error("failed to save user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	log.Info("user registered", slog.String("username", user.Username))
	return &UserResponse{Username: user.Username, Name: user.Name}, nil
}

// Login implements UserService.Login
func (s *UserServiceImpl) Login(ctx context.Context, req LoginUserRequest) (*UserResponse, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("login for unknown username", slog.String("username", req.Username))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user for login: %w", err)
	}

	if err := s.hasher.Compare(user.Password, req.Password); err != nil {
		log.Debug("login with wrong password", slog.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}
	if err := s.users.SetToken(ctx, user.Username, &token); err != nil {
		return nil, fmt.Errorf("failed to store session token: %w", err)
	}

	log.Info("user logged in", slog.String("username", user.Username))
	return &UserResponse{Username: user.Username, Name: user.Name, Token: &token}, nil
}

// Get implements UserService.Get
func (s *UserServiceImpl) Get(_ context.Context, user *domain.User) *UserResponse {
	return &UserResponse{
		Username: user.Username,
		Name:     user.Name,
		Token:    user.Token,
	}
}

// Update implements UserService.Update
func (s *UserServiceImpl) Update(
	ctx context.Context,
	user *domain.User,
	req UpdateUserRequest,
) (*UserResponse, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	updated := *user
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Password != nil {
		hashed, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
		updated.Password = hashed
	}

	if err := s.users.Update(ctx, &updated); err != nil {
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.String("username", user.Username))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	log.Info("user updated",
		slog.String("username", user.Username),
		slog.Bool("name_changed", req.Name != nil),
		slog.Bool("password_changed", req.Password != nil))
	return &UserResponse{Username: updated.Username, Name: updated.Name}, nil
}

// Logout implements UserService.Logout
func (s *UserServiceImpl) Logout(ctx context.Context, user *domain.User) error {
	if err := s.users.SetToken(ctx, user.Username, nil); err != nil {
		return fmt.Errorf("failed to clear session token: %w", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("user logged out",
		slog.String("username", user.Username))
	return nil
}
