package handler

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"stumpworks-site/internal/config"
	"stumpworks-site/internal/domain"
	"stumpworks-site/internal/middleware"
	"stumpworks-site/internal/repository"
	"stumpworks-site/internal/service"
	"stumpworks-site/internal/storage"
)

var allowedUploadExts = map[string]bool{
	".jpeg": true, ".jpg": true, ".png": true, ".gif": true,
	".mp4": true, ".mov": true, ".avi": true,
}

type PortfolioHandler struct {
	portfolioService service.PortfolioService
	store            storage.Store
	cfg              *config.Config
}

func NewPortfolioHandler(portfolioService service.PortfolioService, store storage.Store, cfg *config.Config) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
		store:            store,
		cfg:              cfg,
	}
}

func (h *PortfolioHandler) List(c *fiber.Ctx) error {
	items, err := h.portfolioService.List(c.Context())
	if err != nil {
		return middleware.UpstreamFailure("Failed to fetch portfolio")
	}
	return c.Status(fiber.StatusOK).JSON(items)
}

// Create persists a record whose assets were already uploaded through the
// asset-host path; it never touches the media store itself.
func (h *PortfolioHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateItemInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	item, err := h.portfolioService.Create(c.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidItem) {
			return middleware.BadRequest(err.Error())
		}
		return middleware.UpstreamFailure("Failed to add portfolio item")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Item added successfully",
		"item":    item,
	})
}

func (h *PortfolioHandler) Update(c *fiber.Ctx) error {
	var input domain.UpdateItemInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	item, err := h.portfolioService.UpdateDescription(c.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidItem) {
			return middleware.BadRequest(err.Error())
		}
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.NotFound("Item not found")
		}
		return middleware.UpstreamFailure("Failed to update portfolio item")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Item updated successfully",
		"item":    item,
	})
}

func (h *PortfolioHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		id = c.Query("id")
	}
	if id == "" {
		return middleware.BadRequest("Item ID required")
	}

	if err := h.portfolioService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.NotFound("Item not found")
		}
		return middleware.UpstreamFailure("Failed to delete item")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Item deleted successfully",
	})
}

// Upload is the self-hosted variant: the file arrives as multipart, goes
// through the media store, and the record is created in the same request.
func (h *PortfolioHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("No file uploaded")
	}

	asset, mediaType, err := h.storeUploadedFile(c, file)
	if err != nil {
		return err
	}

	item, err := h.portfolioService.Create(c.Context(), domain.CreateItemInput{
		Type:        domain.ItemTypeStandalone,
		Description: c.FormValue("description"),
		MediaURL:    asset.URL,
		MediaType:   mediaType,
		MediaRef:    asset.Ref,
	})
	if err != nil {
		return middleware.UpstreamFailure("Failed to upload file")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "File uploaded successfully",
		"item":    item,
	})
}

func (h *PortfolioHandler) UploadBeforeAfter(c *fiber.Ctx) error {
	before, beforeErr := c.FormFile("beforeImage")
	after, afterErr := c.FormFile("afterImage")
	if beforeErr != nil || afterErr != nil {
		return middleware.BadRequest("Both before and after images are required")
	}

	beforeAsset, _, err := h.storeUploadedFile(c, before)
	if err != nil {
		return err
	}
	afterAsset, _, err := h.storeUploadedFile(c, after)
	if err != nil {
		return err
	}

	item, err := h.portfolioService.Create(c.Context(), domain.CreateItemInput{
		Type:        domain.ItemTypeBeforeAfter,
		Description: c.FormValue("description"),
		BeforeURL:   beforeAsset.URL,
		BeforeRef:   beforeAsset.Ref,
		AfterURL:    afterAsset.URL,
		AfterRef:    afterAsset.Ref,
	})
	if err != nil {
		return middleware.UpstreamFailure("Failed to upload files")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Before/after images uploaded successfully",
		"item":    item,
	})
}

func (h *PortfolioHandler) storeUploadedFile(c *fiber.Ctx, file *multipart.FileHeader) (*storage.Asset, string, error) {
	if file.Size > h.cfg.MaxUploadSize {
		return nil, "", middleware.BadRequest("File is too large")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedUploadExts[ext] {
		return nil, "", middleware.BadRequest("Only image and video files are allowed")
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	mediaType := "image"
	kind := storage.KindImage
	if strings.HasPrefix(contentType, "video/") {
		mediaType = "video"
		kind = storage.KindVideo
	}

	reader, err := file.Open()
	if err != nil {
		return nil, "", middleware.BadRequest("Failed to read file")
	}
	defer reader.Close()

	asset, err := h.store.Upload(c.Context(), storage.UploadInput{
		Reader:      reader,
		Size:        file.Size,
		Name:        file.Filename,
		ContentType: contentType,
		Kind:        kind,
		Folder:      "portfolio",
	})
	if err != nil {
		return nil, "", middleware.UpstreamFailure("Failed to store file")
	}

	return asset, mediaType, nil
}
