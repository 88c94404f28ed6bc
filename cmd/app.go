package main

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	gql "github.com/dtroode/notekeeper-server/internal/api/graphql"
	httpctx "github.com/dtroode/notekeeper-server/internal/api/http/context"
	"github.com/dtroode/notekeeper-server/internal/model"
	"github.com/dtroode/notekeeper-server/internal/password"
	"github.com/dtroode/notekeeper-server/internal/repository/postgres"
	"github.com/dtroode/notekeeper-server/internal/service"
	storage "github.com/dtroode/notekeeper-server/internal/storage/minio"
	"github.com/dtroode/notekeeper-server/internal/token"
)

// app holds the wired dependencies shared by serve and query.
type app struct {
	db             *postgres.Connection
	tokens         *token.JWT
	contextManager *httpctx.Manager
	resolver       *gql.Resolver
}

// newApp connects to the database and, when withMedia is set, to object storage.
func newApp(ctx context.Context, withMedia bool) (*app, error) {
	db, err := postgres.NewConnection(ctx, cfg.Database.DSN, cfg.Database.MaxConns)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	userRepo := postgres.NewUserRepository(db)
	noteRepo := postgres.NewNoteRepository(db)
	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)
	ctxMgr := httpctx.NewManager()

	var media gql.MediaService = unavailableMedia{}
	if withMedia {
		store, err := newMediaStore(ctx)
		if err != nil {
			db.Close()
			return nil, err
		}
		media = service.NewMedia(store, cfg.Storage.UploadTimeout, log)
	}

	return &app{
		db:             db,
		tokens:         tokenManager,
		contextManager: ctxMgr,
		resolver: &gql.Resolver{
			Notes:          service.NewNotes(noteRepo, userRepo, log),
			Auth:           service.NewAuth(userRepo, password.NewBcrypt(cfg.Bcrypt.Cost), tokenManager, log),
			Users:          service.NewUsers(userRepo, log),
			Media:          media,
			ContextManager: ctxMgr,
			Logger:         log,
		},
	}, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		log.Error("failed to close database", "error", err)
	}
}

func newMediaStore(ctx context.Context) (*storage.Client, error) {
	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	store, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket, cfg.Storage.PublicURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage client: %w", err)
	}
	return store, nil
}

// unavailableMedia rejects uploads when no object storage is connected.
type unavailableMedia struct{}

func (unavailableMedia) UploadImage(context.Context, *model.File) (string, error) {
	return "", model.NewErrMediaUnavailable()
}
