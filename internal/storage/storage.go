package storage

import (
	"context"
	"io"
)

type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
	KindAuto  Kind = "auto"
)

// Asset is what an upload leaves behind: a publicly retrievable URL and the
// opaque reference id needed to delete the asset later.
type Asset struct {
	URL         string `json:"url"`
	Ref         string `json:"ref"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
}

type UploadInput struct {
	Reader      io.Reader
	Size        int64
	Name        string
	ContentType string
	Kind        Kind
	Folder      string
}

// Store abstracts the asset host. Two backings exist: a MinIO object store
// and a local uploads directory; the caller cannot tell them apart.
type Store interface {
	Upload(ctx context.Context, in UploadInput) (*Asset, error)
	Delete(ctx context.Context, ref string) error
}
