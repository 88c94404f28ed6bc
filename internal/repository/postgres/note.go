package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/notekeeper-server/internal/model"
)

var _ model.NoteStore = (*NoteRepository)(nil)

const noteColumns = `id, title, note, image_urls, user_id, created_at, updated_at`

type NoteRepository struct {
	db *Connection
}

func NewNoteRepository(db *Connection) *NoteRepository {
	return &NoteRepository{
		db: db,
	}
}

func (r *NoteRepository) List(ctx context.Context) ([]model.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes ORDER BY created_at DESC, id DESC`

	return r.list(ctx, query)
}

func (r *NoteRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE user_id = $1 ORDER BY created_at DESC, id DESC`

	return r.list(ctx, query, ownerID)
}

func (r *NoteRepository) GetOwned(ctx context.Context, id, ownerID uuid.UUID) (model.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = $1 AND user_id = $2`

	note, err := scanNote(r.db.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Note{}, model.ErrNotFound
		}
		return model.Note{}, fmt.Errorf("failed to get note: %w", err)
	}

	return note, nil
}

func (r *NoteRepository) Create(ctx context.Context, note model.Note) (model.Note, error) {
	query := `INSERT INTO notes (id, title, note, image_urls, user_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, COALESCE($6::timestamptz, NOW()), COALESCE($6::timestamptz, NOW()))
			  RETURNING ` + noteColumns

	var createdAt any
	if !note.CreatedAt.IsZero() {
		createdAt = note.CreatedAt
	}

	saved, err := scanNote(r.db.QueryRow(ctx, query,
		note.ID, note.Title, note.Note, nonNilURLs(note.ImageURLs), note.UserID, createdAt,
	))
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to create note: %w", err)
	}

	return saved, nil
}

// UpdateOwned applies patch to the note matching both id and ownerID and returns it.
// user_id is never part of the SET list.
func (r *NoteRepository) UpdateOwned(ctx context.Context, id, ownerID uuid.UUID, patch model.NotePatch) (model.Note, error) {
	query := `UPDATE notes
			  SET title = COALESCE($3, title),
			      note = COALESCE($4, note),
			      image_urls = COALESCE($5::text[], image_urls),
			      updated_at = NOW()
			  WHERE id = $1 AND user_id = $2
			  RETURNING ` + noteColumns

	var imageURLs any
	if patch.ImageURLs != nil {
		imageURLs = nonNilURLs(*patch.ImageURLs)
	}

	note, err := scanNote(r.db.QueryRow(ctx, query, id, ownerID, patch.Title, patch.Note, imageURLs))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Note{}, model.ErrNotFound
		}
		return model.Note{}, fmt.Errorf("failed to update note: %w", err)
	}

	return note, nil
}

// DeleteOwned removes the note matching both id and ownerID and reports how many rows went away.
func (r *NoteRepository) DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) (int64, error) {
	const query = `DELETE FROM notes WHERE id = $1 AND user_id = $2`

	cmd, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete note: %w", err)
	}

	return cmd.RowsAffected(), nil
}

func (r *NoteRepository) list(ctx context.Context, query string, args ...any) ([]model.Note, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	notes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Note, error) {
		return scanNote(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan notes: %w", err)
	}

	return notes, nil
}

func scanNote(row pgx.Row) (model.Note, error) {
	var note model.Note
	err := row.Scan(&note.ID, &note.Title, &note.Note, &note.ImageURLs, &note.UserID, &note.CreatedAt, &note.UpdatedAt)
	return note, err
}

// nonNilURLs keeps pgx from encoding a nil slice as NULL.
func nonNilURLs(urls []string) []string {
	if urls == nil {
		return []string{}
	}
	return urls
}
