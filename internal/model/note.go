package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UnknownUsername is reported for notes whose owner has no user record.
const UnknownUsername = "Unknown"

// NoteStore defines persistence operations for notes.
// Owner-scoped methods filter by both note id and owner id in a single statement.
type NoteStore interface {
	List(ctx context.Context) ([]Note, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Note, error)
	GetOwned(ctx context.Context, id, ownerID uuid.UUID) (Note, error)
	Create(ctx context.Context, note Note) (Note, error)
	UpdateOwned(ctx context.Context, id, ownerID uuid.UUID, patch NotePatch) (Note, error)
	DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) (int64, error)
}

// Note represents a stored note.
type Note struct {
	ID        uuid.UUID
	Title     string
	Note      string
	ImageURLs []string
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NoteWithAuthor is a note together with its owner's username.
type NoteWithAuthor struct {
	Note
	Username string
}

// CreateNoteParams contains client-supplied fields of a new note.
type CreateNoteParams struct {
	Title     string
	Note      string
	ImageURLs []string
}

// NotePatch lists fields to change. Nil fields are left untouched.
type NotePatch struct {
	Title     *string
	Note      *string
	ImageURLs *[]string
}

// IsEmpty reports whether the patch changes nothing.
func (p NotePatch) IsEmpty() bool {
	return p.Title == nil && p.Note == nil && p.ImageURLs == nil
}
