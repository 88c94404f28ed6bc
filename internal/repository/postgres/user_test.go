package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestNewUserRepository(t *testing.T) {
	db := &Connection{}
	repo := NewUserRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{
			name:       "matching constraint",
			err:        &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
			constraint: "users_email_key",
			want:       true,
		},
		{
			name:       "wrapped",
			err:        fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}),
			constraint: "users_email_key",
			want:       true,
		},
		{
			name:       "other constraint",
			err:        &pgconn.PgError{Code: "23505", ConstraintName: "users_pkey"},
			constraint: "users_email_key",
			want:       false,
		},
		{
			name:       "any constraint",
			err:        &pgconn.PgError{Code: "23505", ConstraintName: "users_pkey"},
			constraint: "",
			want:       true,
		},
		{
			name: "other code",
			err:  &pgconn.PgError{Code: "23503"},
			want: false,
		},
		{
			name: "not a pg error",
			err:  errors.New("boom"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueViolation(tt.err, tt.constraint))
		})
	}
}

func TestUUIDStrings(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	assert.Equal(t, []string{a.String(), b.String()}, uuidStrings([]uuid.UUID{a, b}))
	assert.Empty(t, uuidStrings(nil))
}
