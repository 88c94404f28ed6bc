package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	minioLib "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/notekeeper-server/internal/model"
)

// fakeMinio implements minioAPI for testing without network.
type fakeMinio struct {
	bucketExists    bool
	bucketExistsErr error
	makeBucketErr   error
	policyErr       error

	madeBucket bool
	policy     string

	putInfo minioLib.UploadInfo
	putErr  error

	gotKey  string
	gotSize int64
	gotOpts minioLib.PutObjectOptions
	gotBody []byte
}

func (f *fakeMinio) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.bucketExists, f.bucketExistsErr
}

func (f *fakeMinio) MakeBucket(_ context.Context, _ string, _ minioLib.MakeBucketOptions) error {
	f.madeBucket = true
	return f.makeBucketErr
}

func (f *fakeMinio) SetBucketPolicy(_ context.Context, _ string, policy string) error {
	f.policy = policy
	return f.policyErr
}

func (f *fakeMinio) PutObject(_ context.Context, _ string, key string, r io.Reader, size int64, opts minioLib.PutObjectOptions) (minioLib.UploadInfo, error) {
	f.gotKey, f.gotSize, f.gotOpts = key, size, opts
	f.gotBody, _ = io.ReadAll(r)
	return f.putInfo, f.putErr
}

func TestNewClientWithAPI_BucketExists(t *testing.T) {
	api := &fakeMinio{bucketExists: true}
	c, err := NewClientWithAPI(context.Background(), api, "b", "http://localhost:9000")
	require.NoError(t, err)
	assert.Equal(t, "b", c.bucket)
	assert.False(t, api.madeBucket)
}

func TestNewClientWithAPI_CreateBucket(t *testing.T) {
	api := &fakeMinio{bucketExists: false}
	c, err := NewClientWithAPI(context.Background(), api, "images", "http://localhost:9000")
	require.NoError(t, err)
	assert.NotNil(t, c)
	assert.True(t, api.madeBucket)
	assert.Contains(t, api.policy, "arn:aws:s3:::images/*")
}

func TestNewClientWithAPI_Errors(t *testing.T) {
	tests := []struct {
		name      string
		api       *fakeMinio
		publicURL string
		wantMsg   string
	}{
		{
			name:      "bucket exists error",
			api:       &fakeMinio{bucketExistsErr: errors.New("boom")},
			publicURL: "http://localhost:9000",
			wantMsg:   "failed to check bucket existence",
		},
		{
			name:      "make bucket error",
			api:       &fakeMinio{makeBucketErr: errors.New("fail")},
			publicURL: "http://localhost:9000",
			wantMsg:   "failed to create bucket",
		},
		{
			name:      "policy error",
			api:       &fakeMinio{policyErr: errors.New("denied")},
			publicURL: "http://localhost:9000",
			wantMsg:   "failed to set bucket policy",
		},
		{
			name:      "bad public url",
			api:       &fakeMinio{bucketExists: true},
			publicURL: "localhost",
			wantMsg:   "invalid public url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClientWithAPI(context.Background(), tt.api, "bucket", tt.publicURL)
			assert.Nil(t, c)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestClient_UploadStream(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		api := &fakeMinio{bucketExists: true}
		c, err := NewClientWithAPI(ctx, api, "images", "https://cdn.example.com/")
		require.NoError(t, err)

		res, err := c.UploadStream(ctx, "images/abc-cat.png", bytes.NewReader([]byte("data")), model.UploadOptions{ContentType: "image/png"})
		require.NoError(t, err)
		assert.Equal(t, "images/abc-cat.png", res.Key)
		assert.Equal(t, "https://cdn.example.com/images/images/abc-cat.png", res.SecureURL)
		assert.Equal(t, int64(-1), api.gotSize)
		assert.Equal(t, "image/png", api.gotOpts.ContentType)
		assert.Equal(t, []byte("data"), api.gotBody)
	})

	t.Run("known size", func(t *testing.T) {
		api := &fakeMinio{bucketExists: true}
		c, err := NewClientWithAPI(ctx, api, "b", "http://localhost:9000")
		require.NoError(t, err)

		_, err = c.UploadStream(ctx, "k", bytes.NewReader([]byte("data")), model.UploadOptions{Size: 4})
		require.NoError(t, err)
		assert.Equal(t, int64(4), api.gotSize)
	})

	t.Run("error", func(t *testing.T) {
		api := &fakeMinio{bucketExists: true, putErr: errors.New("put-fail")}
		c, err := NewClientWithAPI(ctx, api, "b", "http://localhost:9000")
		require.NoError(t, err)

		_, err = c.UploadStream(ctx, "k", bytes.NewReader([]byte("data")), model.UploadOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to upload object")
		assert.Contains(t, err.Error(), "put-fail")
	})
}
