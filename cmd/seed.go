package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SergeyBogomolovv/pizza-service/internal/auth"
	"github.com/SergeyBogomolovv/pizza-service/internal/config"
	"github.com/SergeyBogomolovv/pizza-service/internal/entities"
	"github.com/SergeyBogomolovv/pizza-service/internal/postgres"
	"github.com/SergeyBogomolovv/pizza-service/internal/repo"
	"github.com/SergeyBogomolovv/pizza-service/internal/service"
	"github.com/SergeyBogomolovv/pizza-service/pkg/cache"
	"github.com/SergeyBogomolovv/pizza-service/pkg/trm"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the administrator account and a sample catalog",
		Long:  "Insert the administrator account and a sample catalog. Rows that already exist are left untouched.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return seed(cmd.Context())
		},
	}
}

var sampleCatalog = []entities.CreateProduct{
	{Name: "Margherita", Sku: "MARG", Variants: sizes("9.99", "12.99", "15.99", "vegetarian")},
	{Name: "Pepperoni", Sku: "PEPP", Variants: sizes("11.49", "14.49", "17.49", "")},
	{Name: "Four Cheese", Sku: "FOURCHEESE", Variants: sizes("11.99", "14.99", "17.99", "vegetarian")},
	{Name: "Hawaiian", Sku: "HAWAII", Variants: sizes("10.99", "13.99", "16.99", "")},
}

func sizes(small, medium, large, typ string) []entities.CreateVariant {
	return []entities.CreateVariant{
		{Size: entities.SizeSmall, Price: decimal.RequireFromString(small), Type: typ},
		{Size: entities.SizeMedium, Price: decimal.RequireFromString(medium), Type: typ},
		{Size: entities.SizeLarge, Price: decimal.RequireFromString(large), Type: typ},
	}
}

func seed(ctx context.Context) error {
	conf := config.New()
	logger := newLogger(conf.Env)
	if err := conf.Postgres.Validate(); err != nil {
		return err
	}
	if err := conf.Seed.Validate(); err != nil {
		return err
	}

	db, err := postgres.New(ctx, conf.Postgres)
	if err != nil {
		return err
	}
	defer db.Close()

	if conf.Seed.AdminEmail != "" {
		hasher, err := auth.NewBcryptHasher(conf.Bcrypt.Cost)
		if err != nil {
			return err
		}
		users := service.NewUserService(logger, repo.NewUserRepo(db), hasher, service.QueryOptions{})

		_, err = users.RegisterInternal(ctx, entities.CreateUser{
			FullName: conf.Seed.AdminName,
			Email:    conf.Seed.AdminEmail,
			Role:     entities.RoleAdministrator,
			Password: conf.Seed.AdminPassword,
		})
		switch {
		case errors.Is(err, entities.ErrUserExists):
			logger.Info("administrator already exists", slog.String("email", conf.Seed.AdminEmail))
		case err != nil:
			return err
		default:
			logger.Info("administrator created", slog.String("email", conf.Seed.AdminEmail))
		}
	}

	store := cache.New(conf.Cache.TTL, conf.Cache.CleanupInterval)
	products := service.NewProductService(logger, trm.NewManager(db), repo.NewProductRepo(db), store)

	for _, p := range sampleCatalog {
		_, err := products.CreateProduct(ctx, p)
		if errors.Is(err, entities.ErrProductExists) {
			logger.Info("product already exists", slog.String("sku", p.Sku))
			continue
		}
		if err != nil {
			return err
		}
		logger.Info("product created", slog.String("sku", p.Sku))
	}
	return nil
}
