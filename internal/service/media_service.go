package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"stumpworks-site/internal/domain"
	"stumpworks-site/internal/storage"
)

var ErrInvalidUpload = errors.New("invalid upload request")

// MediaService is the asset-host upload path: it takes base64 payloads,
// pushes them to the store, and hands back the URLs and reference ids the
// client later posts as a portfolio record.
type MediaService interface {
	Upload(ctx context.Context, req domain.UploadRequest) (*domain.UploadResult, error)
}

type mediaService struct {
	store storage.Store
}

func NewMediaService(store storage.Store) MediaService {
	return &mediaService{store: store}
}

func (s *mediaService) Upload(ctx context.Context, req domain.UploadRequest) (*domain.UploadResult, error) {
	switch req.UploadType {
	case domain.UploadTypeStandalone:
		return s.uploadStandalone(ctx, req)
	case domain.UploadTypeBeforeAfter:
		return s.uploadBeforeAfter(ctx, req)
	case domain.UploadTypeGallery:
		return s.uploadGallery(ctx, req)
	default:
		return nil, fmt.Errorf("%w: unknown upload type %q", ErrInvalidUpload, req.UploadType)
	}
}

func (s *mediaService) uploadStandalone(ctx context.Context, req domain.UploadRequest) (*domain.UploadResult, error) {
	if req.File == "" {
		return nil, fmt.Errorf("%w: no file provided", ErrInvalidUpload)
	}

	mediaType := "image"
	kind := storage.KindImage
	if strings.HasPrefix(req.FileType, "video/") {
		mediaType = "video"
		kind = storage.KindVideo
	}

	asset, err := s.uploadBase64(ctx, req.File, req.FileName, req.FileType, kind)
	if err != nil {
		return nil, err
	}

	return &domain.UploadResult{
		Success:   true,
		MediaType: mediaType,
		URL:       asset.URL,
		Ref:       asset.Ref,
	}, nil
}

func (s *mediaService) uploadBeforeAfter(ctx context.Context, req domain.UploadRequest) (*domain.UploadResult, error) {
	if req.BeforeImage == "" || req.AfterImage == "" {
		return nil, fmt.Errorf("%w: both before and after images are required", ErrInvalidUpload)
	}

	before, err := s.uploadBase64(ctx, req.BeforeImage, "before.jpg", "image/jpeg", storage.KindImage)
	if err != nil {
		return nil, err
	}

	after, err := s.uploadBase64(ctx, req.AfterImage, "after.jpg", "image/jpeg", storage.KindImage)
	if err != nil {
		return nil, err
	}

	return &domain.UploadResult{
		Success: true,
		Before:  &domain.UploadedAsset{URL: before.URL, Ref: before.Ref},
		After:   &domain.UploadedAsset{URL: after.URL, Ref: after.Ref},
	}, nil
}

func (s *mediaService) uploadGallery(ctx context.Context, req domain.UploadRequest) (*domain.UploadResult, error) {
	if len(req.GalleryFiles) == 0 {
		return nil, fmt.Errorf("%w: gallery files are required", ErrInvalidUpload)
	}

	images := make([]domain.UploadedAsset, 0, len(req.GalleryFiles))
	for i, file := range req.GalleryFiles {
		asset, err := s.uploadBase64(ctx, file, fmt.Sprintf("gallery-%d.jpg", i), "image/jpeg", storage.KindImage)
		if err != nil {
			return nil, err
		}
		images = append(images, domain.UploadedAsset{URL: asset.URL, Ref: asset.Ref})
	}

	return &domain.UploadResult{
		Success: true,
		Images:  images,
	}, nil
}

func (s *mediaService) uploadBase64(ctx context.Context, payload, name, contentType string, kind storage.Kind) (*storage.Asset, error) {
	data, err := decodeBase64Payload(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidUpload, err)
	}

	return s.store.Upload(ctx, storage.UploadInput{
		Reader:      bytes.NewReader(data),
		Size:        int64(len(data)),
		Name:        name,
		ContentType: contentType,
		Kind:        kind,
		Folder:      "portfolio",
	})
}

// decodeBase64Payload accepts both a bare base64 string and a full data URI.
func decodeBase64Payload(payload string) ([]byte, error) {
	if strings.HasPrefix(payload, "data:") {
		idx := strings.Index(payload, ";base64,")
		if idx < 0 {
			return nil, errors.New("malformed data URI")
		}
		payload = payload[idx+len(";base64,"):]
	}

	return base64.StdEncoding.DecodeString(payload)
}
