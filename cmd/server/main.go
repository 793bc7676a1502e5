package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/venue-booking/internal/config"
	"github.com/iliyamo/venue-booking/internal/database"
	"github.com/iliyamo/venue-booking/internal/handler"
	"github.com/iliyamo/venue-booking/internal/middleware"
	"github.com/iliyamo/venue-booking/internal/queue"
	"github.com/iliyamo/venue-booking/internal/repository"
	"github.com/iliyamo/venue-booking/internal/router"
	queuepub "github.com/iliyamo/venue-booking/internal/service"
)

func main() {
	// Load .env when present; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	venueRepo := repository.NewVenueRepo(db)
	artistRepo := repository.NewArtistRepo(db)
	showRepo := repository.NewShowRepo(db)

	// Fire-and-forget event publishing; a dead broker never fails a request.
	publish := func(ev queue.ListingCreatedEvent) {
		go func() { _ = queuepub.PublishListingCreated(context.Background(), ev) }()
	}

	venueHandler := &handler.VenueHandler{VenueRepo: venueRepo, ShowRepo: showRepo, Publish: publish}
	artistHandler := &handler.ArtistHandler{ArtistRepo: artistRepo, ShowRepo: showRepo, Publish: publish}
	showHandler := &handler.ShowHandler{ShowRepo: showRepo, VenueRepo: venueRepo, ArtistRepo: artistRepo, Publish: publish}

	e := echo.New()
	e.HTTPErrorHandler = handler.HTTPErrorHandler
	e.Use(echomw.Recover())

	// Redis is optional: without it the limiter and cache become no-ops.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting and response caching disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	router.RegisterRoutes(e, venueHandler, artistHandler, showHandler)

	// Consume listing events in the background and append them to logs/listing.log.
	go func() {
		if err := queue.StartListingConsumer(); err != nil {
			log.Printf("listing consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
