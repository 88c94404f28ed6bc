package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/notekeeper-server/internal/logger"
	"github.com/dtroode/notekeeper-server/internal/model"
)

// Auth registers users and logs them in.
type Auth struct {
	userStore model.UserStore
	hasher    model.PasswordHasher
	tokens    model.TokenManager
	logger    *logger.Logger
	now       func() time.Time
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokens model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore: userStore,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger,
		now:       time.Now,
	}
}

// AddUser hashes the password, stores the user and issues a token for it.
// Email uniqueness is enforced by the store.
func (a *Auth) AddUser(ctx context.Context, input model.UserInput) (model.AuthPayload, error) {
	a.logger.Debug("Auth service: starting user registration",
		"email", input.Email)

	hashed, err := a.hasher.Hash(input.Password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", input.Email,
			"error", err.Error())
		return model.AuthPayload{}, err
	}

	user, err := a.userStore.Create(ctx, model.User{
		ID:        uuid.New(),
		Username:  input.Username,
		Email:     input.Email,
		Password:  hashed,
		CreatedAt: a.now(),
	})
	if errors.Is(err, model.ErrEmailTaken) {
		a.logger.Info("Auth service: email already registered",
			"email", input.Email)
		return model.AuthPayload{}, model.NewErrEmailTaken()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", input.Email,
			"error", err.Error())
		return model.AuthPayload{}, model.NewErrStore(err)
	}

	token, err := a.tokens.SignToken(user.Username, user.ID)
	if err != nil {
		return model.AuthPayload{}, fmt.Errorf("failed to sign token: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"user_id", user.ID)

	return model.AuthPayload{Token: token, User: user}, nil
}

// Login checks the credentials and issues a token.
func (a *Auth) Login(ctx context.Context, input model.LoginInput) (model.AuthPayload, error) {
	a.logger.Debug("Auth service: starting user login",
		"email", input.Email)

	user, err := a.userStore.GetByEmail(ctx, input.Email)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: login for unknown email",
			"email", input.Email)
		return model.AuthPayload{}, model.NewErrUserNotFound()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", input.Email,
			"error", err.Error())
		return model.AuthPayload{}, model.NewErrStore(err)
	}

	ok, err := a.hasher.Compare(user.Password, input.Password)
	if err != nil {
		a.logger.Error("Auth service: failed to compare password",
			"user_id", user.ID,
			"error", err.Error())
		return model.AuthPayload{}, err
	}
	if !ok {
		a.logger.Info("Auth service: incorrect password",
			"user_id", user.ID)
		return model.AuthPayload{}, model.NewErrInvalidCredentials()
	}

	token, err := a.tokens.SignToken(user.Username, user.ID)
	if err != nil {
		return model.AuthPayload{}, fmt.Errorf("failed to sign token: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"user_id", user.ID)

	return model.AuthPayload{Token: token, User: user}, nil
}
