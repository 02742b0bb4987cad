package usecase

import (
	"context"

	"github.com/tkndbj/nar24admin-sub002/internal/domain/entity"
)

// AssetUsecase covers admin asset generation and uploads.
type AssetUsecase interface {
	// UploadBannerImage stores banner image bytes and returns the public URL.
	UploadBannerImage(ctx context.Context, filename string, data []byte, contentType string) (string, error)

	// ListingQRCode renders a PNG QR code for a live listing's public page.
	ListingQRCode(ctx context.Context, collection entity.ListingCollection, id string) ([]byte, error)
}
