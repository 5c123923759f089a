package handlers

import (
	"trendyshop/internal/log"
	"trendyshop/internal/services"

	"github.com/gofiber/fiber/v2"
)

const uploadField = "product"

type UploadHandler struct {
	Images *services.ImageStore
}

func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile(uploadField)
	if err != nil {
		return fail(c, &services.ValidationError{Field: uploadField, Msg: "multipart file is required"})
	}
	name, url, err := h.Images.Save(uploadField, fh, c.SaveFile)
	if err != nil {
		return fail(c, err)
	}
	log.Audit(c, "upload.image", map[string]any{"file": name, "size": fh.Size})
	return c.JSON(fiber.Map{"success": 1, "image_url": url})
}
