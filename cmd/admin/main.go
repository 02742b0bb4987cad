package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/tkndbj/nar24admin-sub002/config"
	"github.com/tkndbj/nar24admin-sub002/internal/delivery"
	"github.com/tkndbj/nar24admin-sub002/internal/delivery/http"
	"github.com/tkndbj/nar24admin-sub002/internal/delivery/http/middleware"
	"github.com/tkndbj/nar24admin-sub002/internal/delivery/http/router/handler"
	requestmiddleware "github.com/tkndbj/nar24admin-sub002/internal/delivery/middleware"
	"github.com/tkndbj/nar24admin-sub002/internal/domain/service"
	"github.com/tkndbj/nar24admin-sub002/internal/infra/auth"
	logs "github.com/tkndbj/nar24admin-sub002/internal/infra/log"
	"github.com/tkndbj/nar24admin-sub002/internal/infra/mail"
	"github.com/tkndbj/nar24admin-sub002/internal/infra/persistence/fsdb"
	"github.com/tkndbj/nar24admin-sub002/internal/infra/pubsub"
	"github.com/tkndbj/nar24admin-sub002/internal/infra/push"
	"github.com/tkndbj/nar24admin-sub002/internal/infra/qrcode"
	"github.com/tkndbj/nar24admin-sub002/internal/infra/storage"
	"github.com/tkndbj/nar24admin-sub002/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		fsdb.NewApp,
		fsdb.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			fsdb.NewSubmissionRepository,
			fsdb.NewReviewTransactionManager,
			fsdb.NewCategoryIndexRepository,
			fsdb.NewListingRepository,
			fsdb.NewUserRepository,
			fsdb.NewNotificationRepository,
			fsdb.NewTicketRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewFirebaseAuthService,
			push.NewFCMService,
			pubsub.NewEventPublisher,
			storage.NewBlobStorage,
			newMailService,
			newQRCodeService,
		),
	)
}

// newMailService creates the mail sender with dependency injection
func newMailService(cfg *config.Config) service.MailService {
	if cfg.Mail == nil || cfg.Mail.APIKey == "" {
		return nil // Mail is optional
	}

	return mail.NewResendSender(cfg.Mail.APIKey, cfg.Mail.FromEmail, cfg.Mail.SiteURL)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewReviewService,
			impl.NewBroadcastService,
			impl.NewAccountService,
			impl.NewTicketService,
			impl.NewAssetService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			requestmiddleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewReviewHandler,
			handler.NewBroadcastHandler,
			handler.NewTicketHandler,
			handler.NewAccountHandler,
			handler.NewAssetHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
