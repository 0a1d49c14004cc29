package storage

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ErrUploadFailed wraps any failure talking to the object store.
var ErrUploadFailed = errors.New("object store upload failed")

// ObjectStore uploads files to an S3-compatible HTTP object store and hands
// back the public URL they will be served from.
type ObjectStore struct {
	http      *resty.Client
	bucket    string
	publicURL string
}

func NewObjectStore(endpoint, bucket, publicURL string, timeout time.Duration) *ObjectStore {
	if publicURL == "" {
		publicURL = endpoint
	}
	return &ObjectStore{
		http:      resty.New().SetBaseURL(endpoint).SetTimeout(timeout),
		bucket:    bucket,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}
}

// Upload stores the file under a unique key derived from its original name
// and returns its public URL.
func (s *ObjectStore) Upload(ctx context.Context, localPath, originalName, contentType string) (string, error) {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	key := uuid.NewString() + sanitizeExt(originalName)
	resp, err := s.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(data).
		Put("/" + s.bucket + "/" + key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%w: status %d", ErrUploadFailed, resp.StatusCode())
	}

	return s.publicURL + "/" + s.bucket + "/" + key, nil
}

func sanitizeExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if len(ext) > 10 {
		return ""
	}
	return ext
}

// StageUpload saves a multipart file to a temp path for processing. The
// caller must remove the returned path when done, success or not.
func StageUpload(c *fiber.Ctx, fh *multipart.FileHeader) (string, error) {
	path := filepath.Join(os.TempDir(), uuid.NewString()+sanitizeExt(fh.Filename))
	if err := c.SaveFile(fh, path); err != nil {
		return "", err
	}
	return path, nil
}
