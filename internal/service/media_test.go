package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/notekeeper-server/internal/mocks"
	"github.com/dtroode/notekeeper-server/internal/model"
	"github.com/dtroode/notekeeper-server/internal/testutil"
)

// pngBytes is a 1x1 transparent PNG.
var pngBytes = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

var fixedID = uuid.MustParse("7f2c1a9e-3b4d-4e5f-8a6b-9c0d1e2f3a4b")

func newMedia(t *testing.T, timeout time.Duration) (*Media, *mocks.MediaStore) {
	store := mocks.NewMediaStore(t)
	m := NewMedia(store, timeout, testutil.MakeNoopLogger())
	m.newID = func() uuid.UUID { return fixedID }
	return m, store
}

func TestMedia_UploadImage(t *testing.T) {
	t.Run("streams image and returns url", func(t *testing.T) {
		m, store := newMedia(t, time.Minute)
		var uploaded []byte
		store.On("UploadStream", mock.Anything, "images/"+fixedID.String()+"-holiday-photo.png", mock.Anything, model.UploadOptions{
			ContentType: "image/png",
			Size:        int64(len(pngBytes)),
		}).Return(func(ctx context.Context, key string, r io.Reader, _ model.UploadOptions) (model.UploadResult, error) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			uploaded, _ = io.ReadAll(r)
			return model.UploadResult{Key: key, SecureURL: "http://localhost:9000/bucket/" + key}, nil
		})

		url, err := m.UploadImage(context.Background(), &model.File{
			Filename: "Holiday Photo.png",
			Size:     int64(len(pngBytes)),
			Content:  bytes.NewReader(pngBytes),
		})
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9000/bucket/images/"+fixedID.String()+"-holiday-photo.png", url)
		assert.Equal(t, pngBytes, uploaded)
	})

	t.Run("filename without a usable stem", func(t *testing.T) {
		m, store := newMedia(t, 0)
		store.On("UploadStream", mock.Anything, "images/"+fixedID.String()+".png", mock.Anything, mock.Anything).
			Return(model.UploadResult{Key: "k", SecureURL: "u"}, nil)

		url, err := m.UploadImage(context.Background(), &model.File{
			Filename: "***.png",
			Size:     -1,
			Content:  bytes.NewReader(pngBytes),
		})
		require.NoError(t, err)
		assert.Equal(t, "u", url)
	})

	t.Run("missing file", func(t *testing.T) {
		m, _ := newMedia(t, 0)

		_, err := m.UploadImage(context.Background(), nil)
		require.Error(t, err)
		assert.Equal(t, model.KindUpload, model.KindOf(err))
		assert.Equal(t, "No file received.", err.Error())
	})

	t.Run("non image rejected", func(t *testing.T) {
		m, _ := newMedia(t, 0)

		_, err := m.UploadImage(context.Background(), &model.File{
			Filename: "notes.txt",
			Content:  bytes.NewReader([]byte("just some text")),
		})
		require.Error(t, err)
		assert.Equal(t, model.KindUpload, model.KindOf(err))
		assert.Contains(t, err.Error(), "text/plain")
	})

	t.Run("store failure keeps message", func(t *testing.T) {
		m, store := newMedia(t, 0)
		store.On("UploadStream", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(model.UploadResult{}, errors.New("bucket unavailable"))

		_, err := m.UploadImage(context.Background(), &model.File{
			Filename: "a.png",
			Content:  bytes.NewReader(pngBytes),
		})
		require.Error(t, err)
		assert.Equal(t, model.KindUpload, model.KindOf(err))
		assert.Equal(t, "bucket unavailable", err.Error())
	})
}
