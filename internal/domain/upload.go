package domain

type UploadType string

const (
	UploadTypeStandalone  UploadType = "standalone"
	UploadTypeBeforeAfter UploadType = "before-after"
	UploadTypeGallery     UploadType = "gallery"
)

// UploadRequest is the base64 payload of the asset-host upload path. Exactly
// one of File, BeforeImage+AfterImage, or GalleryFiles is used, depending on
// UploadType.
type UploadRequest struct {
	UploadType UploadType `json:"uploadType"`

	File     string `json:"file"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`

	BeforeImage string `json:"beforeImage"`
	AfterImage  string `json:"afterImage"`

	GalleryFiles []string `json:"galleryFiles"`
}

type UploadedAsset struct {
	URL string `json:"url"`
	Ref string `json:"ref"`
}

type UploadResult struct {
	Success   bool            `json:"success"`
	MediaType string          `json:"mediaType,omitempty"`
	URL       string          `json:"url,omitempty"`
	Ref       string          `json:"ref,omitempty"`
	Before    *UploadedAsset  `json:"before,omitempty"`
	After     *UploadedAsset  `json:"after,omitempty"`
	Images    []UploadedAsset `json:"images,omitempty"`
}
