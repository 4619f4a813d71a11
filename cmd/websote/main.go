package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/khaledhussein957/my-websote-sub000/config"
	"github.com/khaledhussein957/my-websote-sub000/internal/delivery"
	"github.com/khaledhussein957/my-websote-sub000/internal/delivery/http"
	httpmiddleware "github.com/khaledhussein957/my-websote-sub000/internal/delivery/http/middleware"
	"github.com/khaledhussein957/my-websote-sub000/internal/delivery/http/router/handler"
	deliverymiddleware "github.com/khaledhussein957/my-websote-sub000/internal/delivery/middleware"
	"github.com/khaledhussein957/my-websote-sub000/internal/infra/auth"
	logs "github.com/khaledhussein957/my-websote-sub000/internal/infra/log"
	"github.com/khaledhussein957/my-websote-sub000/internal/infra/mail"
	"github.com/khaledhussein957/my-websote-sub000/internal/infra/media"
	"github.com/khaledhussein957/my-websote-sub000/internal/infra/persistence/postgres"
	"github.com/khaledhussein957/my-websote-sub000/internal/infra/phone"
	"github.com/khaledhussein957/my-websote-sub000/internal/usecase/impl"

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
			postgres.NewAccountRepository,
			postgres.NewNotificationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			phone.NewSomaliValidator,
			mail.NewSMTPMailer,
			media.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
			deliverymiddleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewNotificationHandler,
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
