package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/senbim-immo/admin-service/internal/upload"
	apperrors "github.com/senbim-immo/admin-service/pkg/util"
)

// UploadsHandler accepts listing and agent photos.
type UploadsHandler struct {
	store upload.Store
}

// NewUploadsHandler constructs handler.
func NewUploadsHandler(store upload.Store) *UploadsHandler {
	return &UploadsHandler{store: store}
}

// Upload POST /uploads. A single "file" field fails loudly; a multi-valued
// "files" field saves what it can and returns only the survivors, so one bad
// image never sinks a whole listing submission.
func (h *UploadsHandler) Upload(c *fiber.Ctx) error {
	if form, err := c.MultipartForm(); err == nil && len(form.File["files"]) > 0 {
		urls := make([]string, 0, len(form.File["files"]))
		for _, header := range form.File["files"] {
			if header.Size > h.store.MaxBytes() {
				continue
			}
			f, err := header.Open()
			if err != nil {
				continue
			}
			url, err := h.store.Save(header.Filename, f)
			f.Close() //nolint:errcheck
			if err != nil {
				continue
			}
			urls = append(urls, url)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"urls": urls}})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apperrors.NewValidationError("file field required", nil)
	}
	if fileHeader.Size > h.store.MaxBytes() {
		return apperrors.NewValidationError("file too large", map[string]any{
			"max_bytes": h.store.MaxBytes(),
		})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	defer f.Close() //nolint:errcheck

	url, err := h.store.Save(fileHeader.Filename, f)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"url": url}})
}
