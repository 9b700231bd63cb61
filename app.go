// Package menuorder wires the catalog, cart, flow, order and profile
// packages into a ready-to-use ordering application.
package menuorder

import (
	"context"
	"log"

	"menu-ordering-service/internal/cart"
	"menu-ordering-service/internal/catalog"
	"menu-ordering-service/internal/config"
	"menu-ordering-service/internal/order"
	"menu-ordering-service/internal/profile"
)

// App is the composition root: one instance per running front-end.
type App struct {
	Catalog    *catalog.Catalog
	Cart       *cart.Engine
	Profiles   *profile.Manager
	Addresses  *profile.AddressBook
	Orders     *order.Builder
	WhatsApp   *order.WhatsApp
	Branches   []string
	TipPresets []int

	sqlStore *profile.SQLStore
}

// Open builds the application from configuration. A catalog that fails
// to load leaves browsing empty but keeps the rest of the app (and any
// persisted cart state) usable, so customers are never locked out of
// an order they already started.
func Open(ctx context.Context, cfg *config.Config) (*App, error) {
	cat, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		log.Printf("WARN: failed to load catalog from %s, starting with an empty menu: %v", cfg.Catalog.Path, err)
		cat = catalog.Empty()
	}

	sqlStore, err := profile.OpenSQLite(ctx, cfg.Profile.SQLitePath)
	if err != nil {
		return nil, err
	}
	cookies := profile.NewCookieFile(cfg.Profile.CookiePath)
	profiles := profile.NewManager(sqlStore, cookies)

	app := &App{
		Catalog:    cat,
		Cart:       cart.NewEngine(),
		Profiles:   profiles,
		Addresses:  profile.NewAddressBook(sqlStore),
		Orders:     order.NewBuilder(cfg.Order.Header),
		WhatsApp:   order.NewWhatsApp(cfg.Order.WhatsAppBaseURL, cfg.Order.WhatsAppPhone),
		Branches:   cfg.Order.Branches,
		TipPresets: cfg.Order.TipPresets,
		sqlStore:   sqlStore,
	}
	log.Printf("INFO: application ready, catalog has %d sections", len(cat.Sections()))
	return app, nil
}

// Close releases the profile database.
func (a *App) Close() error {
	return a.sqlStore.Close()
}
