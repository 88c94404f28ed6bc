package minio

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"

	"github.com/dtroode/notekeeper-server/internal/model"
)

// Internal adapter interface to enable mocking without a real MinIO server.
type minioAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	SetBucketPolicy(ctx context.Context, bucketName, policy string) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

var _ minioAPI = (*minio.Client)(nil)

var _ model.MediaStore = (*Client)(nil)

// publicReadPolicy lets anonymous clients fetch objects, so returned URLs are durable links.
const publicReadPolicy = `{
  "Version": "2012-10-17",
  "Statement": [
    {
      "Effect": "Allow",
      "Principal": {"AWS": ["*"]},
      "Action": ["s3:GetObject"],
      "Resource": ["arn:aws:s3:::%s/*"]
    }
  ]
}`

// Client stores media in a MinIO bucket.
type Client struct {
	api       minioAPI
	bucket    string
	publicURL *url.URL
}

// NewClient creates a new MinIO media client using a real *minio.Client instance.
// The bucket is created with a public read policy when it does not exist yet.
//
// Parameters:
//   - ctx: Context for the bucket bootstrap calls
//   - client: Configured MinIO client
//   - bucket: Name of the bucket holding uploaded images
//   - publicURL: Base URL under which the bucket is publicly reachable
//
// Returns the ready client or an error if publicURL is invalid or the bucket
// cannot be prepared.
func NewClient(ctx context.Context, client *minio.Client, bucket, publicURL string) (*Client, error) {
	return NewClientWithAPI(ctx, client, bucket, publicURL)
}

// NewClientWithAPI allows injecting a mockable API (used in tests).
func NewClientWithAPI(ctx context.Context, api minioAPI, bucket, publicURL string) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(publicURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid public url %q", publicURL)
	}

	c := &Client{
		api:       api,
		bucket:    bucket,
		publicURL: base,
	}

	if err := c.ensureBucketExists(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket exists: %w", err)
	}

	return c, nil
}

// ensureBucketExists creates a publicly readable bucket if it doesn't exist.
func (c *Client) ensureBucketExists(ctx context.Context) error {
	exists, err := c.api.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}

	if err := c.api.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}

	if err := c.api.SetBucketPolicy(ctx, c.bucket, fmt.Sprintf(publicReadPolicy, c.bucket)); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	return nil
}

// UploadStream streams reader into the bucket under key.
//
// Parameters:
//   - ctx: Context bounding the upload
//   - key: Object key inside the bucket
//   - reader: Object content, consumed until EOF
//   - opts: Content type and size; a non-positive size streams with unknown length
//
// Returns the stored key and its public URL, or an error if the upload fails.
func (c *Client) UploadStream(ctx context.Context, key string, reader io.Reader, opts model.UploadOptions) (model.UploadResult, error) {
	size := opts.Size
	if size <= 0 {
		size = -1
	}

	info, err := c.api.PutObject(ctx, c.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: opts.ContentType,
	})
	if err != nil {
		return model.UploadResult{}, fmt.Errorf("failed to upload object: %w", err)
	}

	if info.Key != "" {
		key = info.Key
	}

	return model.UploadResult{
		Key:       key,
		SecureURL: c.objectURL(key),
	}, nil
}

func (c *Client) objectURL(key string) string {
	return c.publicURL.JoinPath(c.bucket, key).String()
}
