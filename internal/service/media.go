package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/dtroode/notekeeper-server/internal/logger"
	"github.com/dtroode/notekeeper-server/internal/model"
)

// sniffLen is how many leading bytes are inspected to detect the media type.
const sniffLen = 3072

const imageKeyPrefix = "images/"

// Media uploads images to the media store.
type Media struct {
	store   model.MediaStore
	timeout time.Duration
	logger  *logger.Logger
	newID   func() uuid.UUID
}

// NewMedia creates a Media service. A non-positive timeout disables the upload deadline.
func NewMedia(store model.MediaStore, timeout time.Duration, logger *logger.Logger) *Media {
	return &Media{
		store:   store,
		timeout: timeout,
		logger:  logger,
		newID:   uuid.New,
	}
}

// UploadImage streams the file to the media store and returns its durable URL.
func (s *Media) UploadImage(ctx context.Context, file *model.File) (string, error) {
	if file == nil || file.Content == nil {
		return "", model.NewErrNoFile()
	}

	header := make([]byte, sniffLen)
	n, err := io.ReadFull(file.Content, header)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", model.NewErrUpload(err)
	}
	header = header[:n]

	mtype := mimetype.Detect(header)
	if !strings.HasPrefix(mtype.String(), "image/") {
		s.logger.Info("Media service: rejected upload",
			"filename", file.Filename,
			"mime", mtype.String())
		return "", model.NewErrUnsupportedMedia(mtype.String())
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	key := s.objectKey(file.Filename, mtype.Extension())
	res, err := s.store.UploadStream(ctx, key, io.MultiReader(bytes.NewReader(header), file.Content), model.UploadOptions{
		ContentType: mtype.String(),
		Size:        file.Size,
	})
	if err != nil {
		s.logger.Error("Media service: upload failed",
			"key", key,
			"error", err.Error())
		return "", model.NewErrUpload(err)
	}

	s.logger.Info("Media service: image uploaded",
		"key", res.Key,
		"mime", mtype.String())

	return res.SecureURL, nil
}

func (s *Media) objectKey(filename, ext string) string {
	name := slug.Make(strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)))
	if name == "" || name == "." {
		return imageKeyPrefix + s.newID().String() + ext
	}
	return imageKeyPrefix + s.newID().String() + "-" + name + ext
}
