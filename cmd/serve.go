package main

import (
	"context"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/pizza-service/docs"
	"github.com/SergeyBogomolovv/pizza-service/internal/app"
	"github.com/SergeyBogomolovv/pizza-service/internal/auth"
	"github.com/SergeyBogomolovv/pizza-service/internal/config"
	"github.com/SergeyBogomolovv/pizza-service/internal/handler"
	"github.com/SergeyBogomolovv/pizza-service/internal/lifecycle"
	"github.com/SergeyBogomolovv/pizza-service/internal/middleware"
	"github.com/SergeyBogomolovv/pizza-service/internal/postgres"
	"github.com/SergeyBogomolovv/pizza-service/internal/repo"
	"github.com/SergeyBogomolovv/pizza-service/internal/service"
	"github.com/SergeyBogomolovv/pizza-service/pkg/cache"
	"github.com/SergeyBogomolovv/pizza-service/pkg/trm"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			serve()
			return nil
		},
	}
}

func serve() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	orderRepo := repo.NewOrderRepo(db)
	productRepo := repo.NewProductRepo(db)
	userRepo := repo.NewUserRepo(db)
	txManager := trm.NewManager(db)

	store := cache.New(conf.Cache.TTL, conf.Cache.CleanupInterval)

	tokens, err := auth.NewTokenManager(auth.TokenOptions{
		Secret: []byte(conf.JWT.Secret),
		Issuer: conf.JWT.Issuer,
		TTL:    conf.JWT.TTL,
	})
	panicIfErr("failed to create token manager", err)

	hasher, err := auth.NewBcryptHasher(conf.Bcrypt.Cost)
	panicIfErr("failed to create password hasher", err)

	query := service.QueryOptions{
		DrainTimeout:  conf.Query.DrainTimeout,
		DrainPageSize: conf.Query.DrainPageSize,
	}

	productService := service.NewProductService(logger, txManager, productRepo, store.Namespace("variants"))
	orderService := service.NewOrderService(logger, orderRepo, productService, lifecycle.New(lifecycle.DefaultRules()), query)
	userService := service.NewUserService(logger, userRepo, hasher, query)
	authService := service.NewAuthService(logger, userRepo, hasher, tokens, store.Namespace("principals"))

	authorize := middleware.Authorize(auth.NewAuthorizer(auth.DefaultPermissions()))
	handler.RegisterMetrics(prometheus.DefaultRegisterer)

	app := app.New(logger, conf, authService)
	app.SetHTTPHandlers(
		handler.NewServiceHandler(),
		handler.NewAuthHandler(logger, authService),
		handler.NewUserHandler(logger, userService, authorize),
		handler.NewProductHandler(logger, productService, authorize),
		handler.NewOrderHandler(logger, orderService, authorize),
	)

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}
