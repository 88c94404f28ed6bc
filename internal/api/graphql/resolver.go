package graphql

import (
	"context"

	"github.com/dtroode/notekeeper-server/internal/logger"
	"github.com/dtroode/notekeeper-server/internal/model"
)

// NoteService serves note queries and owner-scoped note mutations.
type NoteService interface {
	GetNotes(ctx context.Context) ([]model.NoteWithAuthor, error)
	GetUserNotes(ctx context.Context, identity model.Identity) ([]model.Note, error)
	GetNoteByID(ctx context.Context, identity model.Identity, id string) (*model.Note, error)
	AddNote(ctx context.Context, identity model.Identity, params model.CreateNoteParams) (model.Note, error)
	UpdateNote(ctx context.Context, identity model.Identity, id string, patch model.NotePatch) (*model.Note, error)
	DeleteNote(ctx context.Context, identity model.Identity, id string) (bool, error)
}

// AuthService registers and logs in users.
type AuthService interface {
	AddUser(ctx context.Context, input model.UserInput) (model.AuthPayload, error)
	Login(ctx context.Context, input model.LoginInput) (model.AuthPayload, error)
}

// UserService lists users.
type UserService interface {
	GetUsers(ctx context.Context) ([]model.User, error)
}

// MediaService uploads images.
type MediaService interface {
	UploadImage(ctx context.Context, file *model.File) (string, error)
}

// Resolver holds the services behind the root fields.
type Resolver struct {
	Notes          NoteService
	Auth           AuthService
	Users          UserService
	Media          MediaService
	ContextManager model.ContextManager
	Logger         *logger.Logger
}

const greeting = "Hello World"

// identity reads the caller once per operation. Unauthenticated requests yield the zero Identity.
func (r *Resolver) identity(ctx context.Context) model.Identity {
	if r.ContextManager == nil {
		return model.Identity{}
	}
	identity, ok := r.ContextManager.GetIdentityFromContext(ctx)
	if !ok {
		return model.Identity{}
	}
	return identity
}
