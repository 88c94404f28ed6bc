package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNoteRepository(t *testing.T) {
	db := &Connection{}
	repo := NewNoteRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestNonNilURLs(t *testing.T) {
	assert.NotNil(t, nonNilURLs(nil))
	assert.Empty(t, nonNilURLs(nil))
	assert.Equal(t, []string{"a"}, nonNilURLs([]string{"a"}))
}
