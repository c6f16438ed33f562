package storage

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"stumpworks-site/internal/config"
)

type minioStore struct {
	client *minio.Client
	cfg    *config.Config
}

func NewMinIOStore(client *minio.Client, cfg *config.Config) Store {
	return &minioStore{client: client, cfg: cfg}
}

func (s *minioStore) Upload(ctx context.Context, in UploadInput) (*Asset, error) {
	folder := in.Folder
	if folder == "" {
		folder = "portfolio"
	}

	objectName := path.Join(folder, time.Now().Format("2006/01"), uuid.New().String())
	if ext := path.Ext(in.Name); ext != "" {
		objectName += ext
	}

	contentType := in.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, s.cfg.MinIOBucket, objectName, in.Reader, in.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}

	return &Asset{
		URL:         s.publicURL(objectName),
		Ref:         objectName,
		Size:        in.Size,
		ContentType: contentType,
	}, nil
}

func (s *minioStore) Delete(ctx context.Context, ref string) error {
	return s.client.RemoveObject(ctx, s.cfg.MinIOBucket, ref, minio.RemoveObjectOptions{})
}

func (s *minioStore) publicURL(objectName string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, url.PathEscape(objectName))
}
