package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/notekeeper-server/internal/logger"
	"github.com/dtroode/notekeeper-server/internal/model"
)

// Notes implements note queries and owner-scoped note mutations.
type Notes struct {
	noteStore model.NoteStore
	userStore model.UserStore
	logger    *logger.Logger
	now       func() time.Time
}

func NewNotes(noteStore model.NoteStore, userStore model.UserStore, logger *logger.Logger) *Notes {
	return &Notes{
		noteStore: noteStore,
		userStore: userStore,
		logger:    logger,
		now:       time.Now,
	}
}

// GetNotes returns every note, newest first, with the owner's username.
// Owners are looked up in one batch; notes without an owner record get UnknownUsername.
func (s *Notes) GetNotes(ctx context.Context) ([]model.NoteWithAuthor, error) {
	notes, err := s.noteStore.List(ctx)
	if err != nil {
		s.logger.Error("Notes service: failed to list notes", "error", err.Error())
		return nil, model.NewErrStore(err)
	}
	if len(notes) == 0 {
		return []model.NoteWithAuthor{}, nil
	}

	seen := make(map[uuid.UUID]struct{}, len(notes))
	ids := make([]uuid.UUID, 0, len(notes))
	for _, n := range notes {
		if _, ok := seen[n.UserID]; ok {
			continue
		}
		seen[n.UserID] = struct{}{}
		ids = append(ids, n.UserID)
	}

	users, err := s.userStore.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("Notes service: failed to get note owners", "error", err.Error())
		return nil, model.NewErrStore(err)
	}

	usernames := make(map[uuid.UUID]string, len(users))
	for _, u := range users {
		usernames[u.ID] = u.Username
	}

	out := make([]model.NoteWithAuthor, len(notes))
	for i, n := range notes {
		name, ok := usernames[n.UserID]
		if !ok {
			name = model.UnknownUsername
		}
		out[i] = model.NoteWithAuthor{Note: n, Username: name}
	}

	return out, nil
}

// GetUserNotes returns the caller's notes, newest first.
func (s *Notes) GetUserNotes(ctx context.Context, identity model.Identity) ([]model.Note, error) {
	if identity.IsZero() {
		return nil, model.NewErrAuthRequired()
	}

	notes, err := s.noteStore.ListByOwner(ctx, identity.UserID)
	if err != nil {
		s.logger.Error("Notes service: failed to list user notes",
			"user_id", identity.UserID,
			"error", err.Error())
		return nil, model.NewErrStore(err)
	}

	return notes, nil
}

// GetNoteByID returns the caller's note with the given id, or nil when there is none.
// A note owned by someone else is indistinguishable from a missing one.
func (s *Notes) GetNoteByID(ctx context.Context, identity model.Identity, id string) (*model.Note, error) {
	if identity.IsZero() {
		return nil, model.NewErrAuthRequired()
	}

	noteID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}

	note, err := s.noteStore.GetOwned(ctx, noteID, identity.UserID)
	if errors.Is(err, model.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		s.logger.Error("Notes service: failed to get note",
			"note_id", noteID,
			"user_id", identity.UserID,
			"error", err.Error())
		return nil, model.NewErrStore(err)
	}

	return &note, nil
}

// AddNote stores a new note owned by the caller.
func (s *Notes) AddNote(ctx context.Context, identity model.Identity, params model.CreateNoteParams) (model.Note, error) {
	if identity.IsZero() {
		return model.Note{}, model.NewErrAuthRequired()
	}

	s.logger.Debug("Notes service: saving note",
		"user_id", identity.UserID,
		"image_urls", params.ImageURLs)

	now := s.now()
	note, err := s.noteStore.Create(ctx, model.Note{
		ID:        uuid.New(),
		Title:     params.Title,
		Note:      params.Note,
		ImageURLs: params.ImageURLs,
		UserID:    identity.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		s.logger.Error("Notes service: failed to create note",
			"user_id", identity.UserID,
			"error", err.Error())
		return model.Note{}, model.NewErrStore(err)
	}

	s.logger.Info("Notes service: note created",
		"note_id", note.ID,
		"user_id", identity.UserID)

	return note, nil
}

// UpdateNote patches the caller's note and returns it, or nil when the caller owns no such note.
func (s *Notes) UpdateNote(ctx context.Context, identity model.Identity, id string, patch model.NotePatch) (*model.Note, error) {
	if identity.IsZero() {
		return nil, model.NewErrAuthRequired()
	}

	noteID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}

	var note model.Note
	if patch.IsEmpty() {
		note, err = s.noteStore.GetOwned(ctx, noteID, identity.UserID)
	} else {
		note, err = s.noteStore.UpdateOwned(ctx, noteID, identity.UserID, patch)
	}
	if errors.Is(err, model.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		s.logger.Error("Notes service: failed to update note",
			"note_id", noteID,
			"user_id", identity.UserID,
			"error", err.Error())
		return nil, model.NewErrStore(err)
	}

	s.logger.Info("Notes service: note updated",
		"note_id", note.ID,
		"user_id", identity.UserID)

	return &note, nil
}

// DeleteNote removes the caller's note. It reports true only when exactly one note was removed.
func (s *Notes) DeleteNote(ctx context.Context, identity model.Identity, id string) (bool, error) {
	if identity.IsZero() {
		return false, model.NewErrAuthRequired()
	}

	noteID, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}

	deleted, err := s.noteStore.DeleteOwned(ctx, noteID, identity.UserID)
	if err != nil {
		s.logger.Error("Notes service: failed to delete note",
			"note_id", noteID,
			"user_id", identity.UserID,
			"error", err.Error())
		return false, model.NewErrStore(err)
	}

	s.logger.Info("Notes service: delete processed",
		"note_id", noteID,
		"user_id", identity.UserID,
		"deleted", deleted)

	return deleted == 1, nil
}
