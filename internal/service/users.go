package service

import (
	"context"

	"github.com/dtroode/notekeeper-server/internal/logger"
	"github.com/dtroode/notekeeper-server/internal/model"
)

// Users lists registered users.
type Users struct {
	userStore model.UserStore
	logger    *logger.Logger
}

func NewUsers(userStore model.UserStore, logger *logger.Logger) *Users {
	return &Users{userStore: userStore, logger: logger}
}

// GetUsers returns every user, newest first. Records include the password hash.
func (s *Users) GetUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		s.logger.Error("Users service: failed to list users", "error", err.Error())
		return nil, model.NewErrStore(err)
	}
	return users, nil
}
