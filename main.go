package main

import (
	"net/http"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/nextwipe/wipetime/backend/cache"
	"github.com/nextwipe/wipetime/backend/config"
	"github.com/nextwipe/wipetime/backend/database"
	"github.com/nextwipe/wipetime/backend/handlers"
	"github.com/nextwipe/wipetime/backend/scrapers"
	"github.com/nextwipe/wipetime/backend/services"
	"github.com/nextwipe/wipetime/backend/sources"
)

func main() {
	config.SetupEnvironment()
	log.Info().Msg("Starting wipetime backend")

	configPath := "config/config.yaml"
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configPath = "backend/config/config.yaml"
	}
	if err := config.LoadConfig(configPath); err != nil {
		log.Fatal().Err(err).Msg("Error loading configuration")
	}
	log.Info().Str("port", config.AppConfig.Server.Port).
		Str("cache_dir", config.AppConfig.Cache.Dir).Msg("Configuration loaded")

	// The scrape-history database is optional: without one, history logging
	// is skipped and /api/history answers 503.
	var history *database.HistoryStore
	if config.AppConfig.Database.Enabled() {
		if err := database.InitDB(config.AppConfig.Database); err != nil {
			log.Fatal().Err(err).Msg("Error initializing database")
		}
		defer database.CloseDB()
		history = database.NewHistoryStore()
	} else {
		log.Info().Msg("No scrape-history database configured, history disabled")
	}

	browser := sources.NewBrowser()
	defer browser.Close()

	registry := scrapers.BuildRegistry(browser)
	store := cache.NewStore(config.AppConfig.Cache.Dir)

	wipeService := services.NewWipeService(store, registry, historyRecorder(history))
	eventService := services.NewEventService(wipeService)

	wipeHandler := handlers.NewWipeHandler(wipeService)
	cronHandler := handlers.NewCronHandler(wipeService)
	eventsHandler := handlers.NewEventsHandler(eventService)
	historyHandler := handlers.NewHistoryHandler(history)
	healthHandler := handlers.NewHealthHandler(wipeService)

	http.HandleFunc("/api/health", healthHandler.Handle)
	http.HandleFunc("/api/wipes/", wipeHandler.Handle)
	http.HandleFunc("/api/cron/update-wipes", cronHandler.Handle)
	http.HandleFunc("/api/events/upcoming", eventsHandler.HandleUpcoming)
	http.HandleFunc("/api/events/export.csv", eventsHandler.HandleExportCSV)
	http.HandleFunc("/api/history/", historyHandler.Handle)

	serverAddr := ":" + config.AppConfig.Server.Port
	log.Info().Str("addr", serverAddr).Msg("Server starting")
	if err := http.ListenAndServe(serverAddr, nil); err != nil {
		log.Fatal().Err(err).Msg("Error starting server")
	}
}

// historyRecorder keeps the typed-nil pitfall out of the service wiring: a
// nil *HistoryStore must become a nil interface, not a non-nil one.
func historyRecorder(store *database.HistoryStore) services.HistoryRecorder {
	if store == nil {
		return nil
	}
	return store
}
