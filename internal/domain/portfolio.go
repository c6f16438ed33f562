package domain

import (
	"time"

	"github.com/lib/pq"
)

type ItemType string

const (
	ItemTypeStandalone  ItemType = "standalone"
	ItemTypeGallery     ItemType = "gallery"
	ItemTypeBeforeAfter ItemType = "before-after"
)

func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeStandalone, ItemTypeGallery, ItemTypeBeforeAfter:
		return true
	}
	return false
}

// PortfolioItem is the single domain entity. Type decides which of the
// media fields are populated; the others stay empty and are omitted from
// JSON. Type and media identity never change after creation, only the
// description is mutable.
type PortfolioItem struct {
	ID          string    `json:"id" db:"id"`
	Type        ItemType  `json:"type" db:"type"`
	Description string    `json:"description" db:"description"`
	UploadedAt  time.Time `json:"uploadedAt" db:"uploaded_at"`

	// standalone
	MediaURL  string `json:"mediaUrl,omitempty" db:"media_url"`
	MediaType string `json:"mediaType,omitempty" db:"media_type"`
	MediaRef  string `json:"mediaRef,omitempty" db:"media_ref"`

	// gallery; Images and ImageRefs are positionally aligned
	Images    pq.StringArray `json:"images,omitempty" db:"images"`
	ImageRefs pq.StringArray `json:"imageRefs,omitempty" db:"image_refs"`

	// before-after
	BeforeURL string `json:"beforeUrl,omitempty" db:"before_url"`
	AfterURL  string `json:"afterUrl,omitempty" db:"after_url"`
	BeforeRef string `json:"beforeRef,omitempty" db:"before_ref"`
	AfterRef  string `json:"afterRef,omitempty" db:"after_ref"`
}

// AssetRefs returns every asset-host reference id attached to the item,
// regardless of its type.
func (p *PortfolioItem) AssetRefs() []string {
	var refs []string
	if p.MediaRef != "" {
		refs = append(refs, p.MediaRef)
	}
	for _, ref := range p.ImageRefs {
		if ref != "" {
			refs = append(refs, ref)
		}
	}
	if p.BeforeRef != "" {
		refs = append(refs, p.BeforeRef)
	}
	if p.AfterRef != "" {
		refs = append(refs, p.AfterRef)
	}
	return refs
}

// CreateItemInput carries an already-uploaded set of assets; the service
// generates the id and timestamp itself.
type CreateItemInput struct {
	Type        ItemType `json:"type"`
	Description string   `json:"description"`

	MediaURL  string `json:"mediaUrl"`
	MediaType string `json:"mediaType"`
	MediaRef  string `json:"mediaRef"`

	Images    []string `json:"images"`
	ImageRefs []string `json:"imageRefs"`

	BeforeURL string `json:"beforeUrl"`
	AfterURL  string `json:"afterUrl"`
	BeforeRef string `json:"beforeRef"`
	AfterRef  string `json:"afterRef"`
}

type UpdateItemInput struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}
