//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/notekeeper-server/internal/model"
	repo "github.com/dtroode/notekeeper-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "notekeeper_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/notekeeper_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func connect(t *testing.T) *repo.Connection {
	t.Helper()
	conn, err := repo.NewConnection(context.Background(), dsn, 4)
	require.NoError(t, err)
	require.NoError(t, conn.Ping(context.Background()))
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func newUser(email string) model.User {
	return model.User{ID: uuid.New(), Username: "user-" + email, Email: email, Password: "$2a$10$hash"}
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	ur := repo.NewUserRepository(connect(t))

	u := newUser("user@example.com")
	saved, err := ur.Create(ctx, u)
	require.NoError(t, err)
	require.Equal(t, u.ID, saved.ID)
	require.False(t, saved.CreatedAt.IsZero())

	byEmail, err := ur.GetByEmail(ctx, u.Email)
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)
	require.Equal(t, u.Password, byEmail.Password)

	byID, err := ur.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, byID.Email)

	_, err = ur.GetByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, model.ErrNotFound)

	_, err = ur.Create(ctx, newUser(u.Email))
	require.ErrorIs(t, err, model.ErrEmailTaken)

	other, err := ur.Create(ctx, newUser("other@example.com"))
	require.NoError(t, err)

	batch, err := ur.GetByIDs(ctx, []uuid.UUID{u.ID, other.ID, uuid.New()})
	require.NoError(t, err)
	require.Len(t, batch, 2)

	all, err := ur.List(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(all), 2)
	for i := 1; i < len(all); i++ {
		require.False(t, all[i].CreatedAt.After(all[i-1].CreatedAt))
	}
}

func TestNoteRepository(t *testing.T) {
	ctx := context.Background()
	nr := repo.NewNoteRepository(connect(t))

	owner, stranger := uuid.New(), uuid.New()
	base := time.Now().Add(-time.Hour).UTC().Truncate(time.Millisecond)

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		n, err := nr.Create(ctx, model.Note{
			ID:        uuid.New(),
			Title:     fmt.Sprintf("t%d", i),
			Note:      "body",
			UserID:    owner,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
		require.NotNil(t, n.ImageURLs)
		ids = append(ids, n.ID)
	}

	t.Run("list by owner newest first", func(t *testing.T) {
		list, err := nr.ListByOwner(ctx, owner)
		require.NoError(t, err)
		require.Len(t, list, 3)
		require.Equal(t, ids[2], list[0].ID)
		require.Equal(t, ids[0], list[2].ID)
	})

	t.Run("get owned", func(t *testing.T) {
		got, err := nr.GetOwned(ctx, ids[0], owner)
		require.NoError(t, err)
		require.Equal(t, "t0", got.Title)

		_, err = nr.GetOwned(ctx, ids[0], stranger)
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("update owned", func(t *testing.T) {
		title := "changed"
		urls := []string{"https://img/1.png"}

		_, err := nr.UpdateOwned(ctx, ids[1], stranger, model.NotePatch{Title: &title})
		require.ErrorIs(t, err, model.ErrNotFound)

		got, err := nr.UpdateOwned(ctx, ids[1], owner, model.NotePatch{Title: &title, ImageURLs: &urls})
		require.NoError(t, err)
		require.Equal(t, "changed", got.Title)
		require.Equal(t, "body", got.Note)
		require.Equal(t, urls, got.ImageURLs)
		require.Equal(t, owner, got.UserID)
	})

	t.Run("delete owned", func(t *testing.T) {
		n, err := nr.DeleteOwned(ctx, ids[2], stranger)
		require.NoError(t, err)
		require.Zero(t, n)

		n, err = nr.DeleteOwned(ctx, ids[2], owner)
		require.NoError(t, err)
		require.EqualValues(t, 1, n)

		n, err = nr.DeleteOwned(ctx, ids[2], owner)
		require.NoError(t, err)
		require.Zero(t, n)
	})

	t.Run("list all", func(t *testing.T) {
		list, err := nr.List(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(list), 2)
		for i := 1; i < len(list); i++ {
			require.False(t, list[i].CreatedAt.After(list[i-1].CreatedAt))
		}

		pos := make(map[uuid.UUID]int, len(list))
		for i, n := range list {
			pos[n.ID] = i
		}
		require.Contains(t, pos, ids[0])
		require.Contains(t, pos, ids[1])
		require.NotContains(t, pos, ids[2])
		require.Less(t, pos[ids[1]], pos[ids[0]])
	})
}
