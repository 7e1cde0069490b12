package main

import (
	"context"
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"

	"github.com/Muhammad-true/mm-shop-admin/internal/api"
	"github.com/Muhammad-true/mm-shop-admin/internal/auth"
	"github.com/Muhammad-true/mm-shop-admin/internal/config"
	"github.com/Muhammad-true/mm-shop-admin/internal/editor"
	apphttp "github.com/Muhammad-true/mm-shop-admin/internal/http"
	"github.com/Muhammad-true/mm-shop-admin/internal/http/flash"
	"github.com/Muhammad-true/mm-shop-admin/internal/kvstore"
	"github.com/Muhammad-true/mm-shop-admin/internal/nav"
	"github.com/Muhammad-true/mm-shop-admin/internal/session"
	"github.com/Muhammad-true/mm-shop-admin/internal/uploader"
	"github.com/Muhammad-true/mm-shop-admin/internal/views/categories"
	"github.com/Muhammad-true/mm-shop-admin/internal/views/dashboard"
	"github.com/Muhammad-true/mm-shop-admin/internal/views/orders"
	"github.com/Muhammad-true/mm-shop-admin/internal/views/products"
	"github.com/Muhammad-true/mm-shop-admin/internal/views/roles"
	"github.com/Muhammad-true/mm-shop-admin/internal/views/settings"
	"github.com/Muhammad-true/mm-shop-admin/internal/views/users"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}

	kv, err := kvstore.FromEnv()
	if err != nil {
		log.Fatalf("failed to open state store: %v", err)
	}
	logger.Info("state store ready", slog.String("driver", kv.Driver))

	sessions := session.NewStore(kv.Store)
	client := api.NewClient(cfg.APIBaseURL, sessions)
	authSvc := auth.NewService(client, sessions, logger)

	up, err := uploader.FromEnv(context.Background(), client)
	if err != nil {
		log.Fatalf("failed to init uploader: %v", err)
	}
	logger.Info("uploader ready", slog.String("driver", up.Driver))

	productsCtrl := products.NewController(client, sessions)
	categoriesCtrl := categories.NewController(client)
	usersCtrl := users.NewController(client)
	ordersCtrl := orders.NewController(client, sessions)
	dashboardCtrl := dashboard.NewController(client, sessions)
	settingsCtrl := settings.NewController(client, sessions)
	rolesCtrl := roles.NewController(client)

	navCtrl := nav.NewController(sessions)
	navCtrl.Register(nav.ViewDashboard, dashboardCtrl.Load)
	navCtrl.Register(nav.ViewProducts, productsCtrl.Load)
	navCtrl.Register(nav.ViewCategories, categoriesCtrl.Load)
	navCtrl.Register(nav.ViewUsers, usersCtrl.Load)
	navCtrl.Register(nav.ViewRoles, rolesCtrl.Load)
	navCtrl.Register(nav.ViewOrders, ordersCtrl.Load)
	navCtrl.Register(nav.ViewSettings, settingsCtrl.Load)

	// Resume where the user left off, if the stored session survived the
	// idle window.
	if err := navCtrl.Start(context.Background()); err != nil {
		logger.Info("starting logged out", slog.Any("reason", err))
	} else if active, ok := navCtrl.Active(); ok {
		logger.Info("session restored", slog.String("view", string(active)))
	}

	// Owner scope for the product safety-net filter, from the cached
	// profile until a fresh one lands.
	if p, ok := settingsCtrl.Profile(); ok {
		productsCtrl.SetOwnerScope(p.ID)
	}

	r := apphttp.NewRouter(apphttp.Deps{
		Logger:     logger,
		Sessions:   sessions,
		Auth:       authSvc,
		Nav:        navCtrl,
		Flash:      flash.NewCodec([]byte(cfg.FlashSecret), "mm_flash", false),
		Uploader:   up.Uploader,
		Editor:     editor.NewEditSession(),
		Products:   productsCtrl,
		Categories: categoriesCtrl,
		Users:      usersCtrl,
		Orders:     ordersCtrl,
		Dashboard:  dashboardCtrl,
		Settings:   settingsCtrl,
		Roles:      rolesCtrl,
	})
	_ = r.Run(cfg.ListenAddr)
}
