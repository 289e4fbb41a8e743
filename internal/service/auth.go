package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agrosense/croprec-server/internal/logger"
	"github.com/agrosense/croprec-server/internal/model"
)

// Auth registers users and validates login credentials.
type Auth struct {
	userStore model.UserStore
	logger    *logger.Logger
}

// NewAuth creates a new Auth service.
func NewAuth(userStore model.UserStore, logger *logger.Logger) *Auth {
	return &Auth{
		userStore: userStore,
		logger:    logger,
	}
}

// Register creates a new user account. All fields are required, password and
// confirmation must match, and the email must not already be registered.
func (a *Auth) Register(ctx context.Context, params model.RegisterParams) error {
	a.logger.Debug("Auth service: starting user registration",
		"email", params.Email)

	if params.Name == "" || params.Email == "" || params.Password == "" || params.ConfirmPassword == "" {
		return model.ErrMissingFields
	}

	if params.Password != params.ConfirmPassword {
		return model.ErrPasswordMismatch
	}

	_, err := a.userStore.GetByEmail(ctx, params.Email)
	if err == nil {
		a.logger.Info("Auth service: email already registered",
			"email", params.Email)
		return model.ErrEmailTaken
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", params.Email,
			"error", err.Error())
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	user := model.User{
		ID:        uuid.New(),
		Name:      params.Name,
		Email:     params.Email,
		Password:  params.Password,
		CreatedAt: time.Now(),
	}

	if _, err := a.userStore.Create(ctx, user); err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", params.Email,
			"error", err.Error())
		return fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registration completed",
		"email", params.Email)

	return nil
}

// Login looks up the user matching both email and password exactly. The
// comparison is plaintext on purpose; see DESIGN.md.
func (a *Auth) Login(ctx context.Context, email, password string) (model.User, error) {
	a.logger.Debug("Auth service: starting user login",
		"email", email)

	user, err := a.userStore.GetByCredentials(ctx, email, password)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: invalid credentials",
			"email", email)
		return model.User{}, model.ErrInvalidCredentials
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by credentials",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by credentials: %w", err)
	}

	a.logger.Info("Auth service: user login completed",
		"email", email)

	return user, nil
}
