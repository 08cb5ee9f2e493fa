package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/trackbox-server/internal/apierrors"
	"github.com/dtroode/trackbox-server/internal/logger"
	"github.com/dtroode/trackbox-server/internal/model"
)

type Auth struct {
	userStore     model.UserStore
	favoriteStore model.FavoriteStore
	tokenService  *TokenService
	logger        *logger.Logger
	cost          int
}

// NewAuth creates the auth service. cost is the bcrypt cost; values outside
// bcrypt's range are clamped.
func NewAuth(
	userStore model.UserStore,
	favoriteStore model.FavoriteStore,
	tokenService *TokenService,
	logger *logger.Logger,
	cost int,
) *Auth {
	switch {
	case cost < bcrypt.MinCost:
		cost = bcrypt.DefaultCost
	case cost > bcrypt.MaxCost:
		cost = bcrypt.MaxCost
	}

	return &Auth{
		userStore:     userStore,
		favoriteStore: favoriteStore,
		tokenService:  tokenService,
		logger:        logger,
		cost:          cost,
	}
}

// Register creates a user with an empty favorites set.
func (a *Auth) Register(ctx context.Context, username, password string) (model.User, error) {
	a.logger.Debug("Auth service: starting user registration",
		"username", username)

	if username == "" || password == "" {
		return model.User{}, apierrors.NewErrMissingCredentials()
	}

	_, err := a.userStore.GetByUsername(ctx, username)
	if err == nil {
		a.logger.Info("Auth service: user already exists",
			"username", username)
		return model.User{}, apierrors.NewErrUsernameTaken(username)
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return model.User{}, apierrors.NewErrPasswordTooLong()
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	})
	if errors.Is(err, model.ErrAlreadyExists) {
		return model.User{}, apierrors.NewErrUsernameTaken(username)
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"username", username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	if err := a.favoriteStore.Init(ctx, username); err != nil {
		return model.User{}, fmt.Errorf("failed to init favorites: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"username", username)

	return user, nil
}

// Login verifies the password and issues an access token. Unknown users and
// wrong passwords produce the same error.
func (a *Auth) Login(ctx context.Context, username, password string) (string, error) {
	a.logger.Debug("Auth service: starting user login",
		"username", username)

	if username == "" || password == "" {
		return "", apierrors.NewErrMissingCredentials()
	}

	user, err := a.userStore.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: login for unknown user",
			"username", username)
		return "", apierrors.NewErrInvalidCredentials()
	}
	if err != nil {
		return "", fmt.Errorf("failed to get user by username: %w", err)
	}

	err = bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		a.logger.Info("Auth service: wrong password",
			"username", username)
		return "", apierrors.NewErrInvalidCredentials()
	}
	if err != nil {
		return "", fmt.Errorf("failed to verify password: %w", err)
	}

	token, err := a.tokenService.Issue(ctx, username)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: login completed",
		"username", username)

	return token, nil
}
