package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/tkndbj/nar24admin-sub002/internal/delivery/http/response"
	"github.com/tkndbj/nar24admin-sub002/internal/domain/entity"
	"github.com/tkndbj/nar24admin-sub002/internal/usecase"
	"github.com/tkndbj/nar24admin-sub002/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// maxBannerBytes bounds a banner upload. Larger images are rejected before
// any storage write.
const maxBannerBytes = 10 << 20

// AssetHandler holds dependencies for asset upload and generation handlers.
type AssetHandler struct {
	uc     usecase.AssetUsecase
	logger *slog.Logger
}

// NewAssetHandler is the constructor for AssetHandler, injected by Fx.
func NewAssetHandler(uc usecase.AssetUsecase, logger *slog.Logger) *AssetHandler {
	return &AssetHandler{
		uc:     uc,
		logger: logger,
	}
}

// UploadBanner accepts a multipart banner image and returns its public URL.
func (h *AssetHandler) UploadBanner(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing image file")
	}

	if fileHeader.Size > maxBannerBytes {
		return response.BadRequest(c, "INVALID_INPUT", "Image exceeds the 10MB limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unreadable image file")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBannerBytes+1))
	if err != nil {
		return errors.Wrap(err, "failed to read banner upload")
	}
	if len(data) > maxBannerBytes {
		return response.BadRequest(c, "INVALID_INPUT", "Image exceeds the 10MB limit")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := h.uc.UploadBannerImage(c.Request().Context(), fileHeader.Filename, data, contentType)
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("banner uploaded",
		slog.String("filename", fileHeader.Filename),
		slog.String("size", util.FormatBytes(int64(len(data)))),
	)

	return response.Created(c, map[string]string{"url": url}, "Banner uploaded")
}

// ListingQRCode renders a PNG QR code for a live listing's public page.
func (h *AssetHandler) ListingQRCode(c echo.Context) error {
	collection := entity.ListingCollection(c.Param("collection"))

	png, err := h.uc.ListingQRCode(c.Request().Context(), collection, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
