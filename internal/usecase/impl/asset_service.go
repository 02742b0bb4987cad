package impl

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/tkndbj/nar24admin-sub002/config"
	"github.com/tkndbj/nar24admin-sub002/internal/domain/entity"
	domainerrors "github.com/tkndbj/nar24admin-sub002/internal/domain/errors"
	"github.com/tkndbj/nar24admin-sub002/internal/domain/repository"
	"github.com/tkndbj/nar24admin-sub002/internal/domain/service"
	"github.com/tkndbj/nar24admin-sub002/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type assetService struct {
	listingRepo repository.ListingRepository
	storage     service.StorageService
	qrcode      service.QRCodeService
	config      *config.Config
}

// AssetServiceParams holds dependencies for AssetService, injected by Fx.
type AssetServiceParams struct {
	fx.In

	ListingRepo repository.ListingRepository
	Storage     service.StorageService
	QRCode      service.QRCodeService
	Config      *config.Config
}

// NewAssetService creates the admin asset service.
func NewAssetService(params AssetServiceParams) usecase.AssetUsecase {
	return &assetService{
		listingRepo: params.ListingRepo,
		storage:     params.Storage,
		qrcode:      params.QRCode,
		config:      params.Config,
	}
}

// UploadBannerImage stores banner image bytes under a fresh object key and
// returns the public URL.
func (s *assetService) UploadBannerImage(ctx context.Context, filename string, data []byte, contentType string) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	objectPath := fmt.Sprintf("banners/%s%s", uuid.NewString(), ext)

	url, err := s.storage.Upload(ctx, objectPath, data, contentType)
	if err != nil {
		return "", domainerrors.ErrUploadFailed.WithDetails(err.Error())
	}

	return url, nil
}

// ListingQRCode renders a PNG QR code pointing at the listing's public page.
func (s *assetService) ListingQRCode(ctx context.Context, collection entity.ListingCollection, id string) ([]byte, error) {
	listing, err := s.listingRepo.FindByID(ctx, collection, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to load listing")
	}

	baseURL := ""
	if s.config.QRCode != nil {
		baseURL = strings.TrimSuffix(s.config.QRCode.BaseURL, "/")
	}
	target := fmt.Sprintf("%s/%s/%s", baseURL, collection, listing.ID)

	png, err := s.qrcode.Generate(target)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render QR code")
	}

	return png, nil
}
