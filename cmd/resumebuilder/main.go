package main

import (
	"context"
	"log/slog"
	"os"

	"resumebuilder/config"
	"resumebuilder/internal/delivery"
	"resumebuilder/internal/delivery/http"
	httpmiddleware "resumebuilder/internal/delivery/http/middleware"
	"resumebuilder/internal/delivery/http/router/handler"
	deliverymiddleware "resumebuilder/internal/delivery/middleware"
	"resumebuilder/internal/domain/service"
	"resumebuilder/internal/infra/auth"
	logs "resumebuilder/internal/infra/log"
	"resumebuilder/internal/infra/mail"
	"resumebuilder/internal/infra/pdf"
	"resumebuilder/internal/infra/persistence/postgres"
	"resumebuilder/internal/infra/qrcode"
	"resumebuilder/internal/usecase/impl"

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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewResumeRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			pdf.NewRenderer,
			mail.NewSMTPSender,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	size := 256
	level := "M"
	if cfg.QRCode != nil {
		size = cfg.QRCode.Size
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	baseURL := ""
	if cfg.Share != nil {
		baseURL = cfg.Share.BaseURL
	}

	return qrcode.NewQRCodeService(size, level, baseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewResumeService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			deliverymiddleware.NewRequestIDMiddleware,
			httpmiddleware.NewIdentityMiddleware,
			httpmiddleware.NewErrorMiddleware,
			httpmiddleware.NewLoggerMiddleware,
			newAccessPolicy,
		),
	)
}

// newAccessPolicy builds the route policy from the static rule table.
func newAccessPolicy() *httpmiddleware.AccessPolicy {
	return httpmiddleware.NewAccessPolicy(httpmiddleware.DefaultRules())
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewResumeHandler,
			handler.NewPDFHandler,
			handler.NewEmailHandler,
			handler.NewAdminHandler,
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
