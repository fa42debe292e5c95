package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/larder-app/larder/internal/config"
	"github.com/larder-app/larder/internal/database"
	"github.com/larder-app/larder/internal/docstore"
	"github.com/larder-app/larder/internal/logging"
	"github.com/larder-app/larder/internal/model"
	"github.com/larder-app/larder/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.Setup(cfg.LogLevel)

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	store := docstore.New(db, logger.With("component", "docstore"))

	if cfg.Seed {
		if err := seed(store); err != nil {
			log.Fatalf("failed to seed demo data: %v", err)
		}
	}

	srv := server.New(store, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go srv.Run(ctx)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		fmt.Printf("Larder running at http://localhost:%s\n", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}

// seed inserts a small demo pantry when the store is empty.
func seed(store *docstore.Store) error {
	ctx := context.Background()

	existing, err := store.Containers().Find(ctx, nil)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	fridge := docstore.NewID()
	if _, err := store.Containers().Insert(ctx, docstore.Document{
		"id": fridge, "name": "Fridge", "description": "Kitchen fridge", "color": "#4A90D9",
	}); err != nil {
		return err
	}

	dairy := docstore.NewID()
	if _, err := store.ProductGroups().Insert(ctx, docstore.Document{
		"id": dairy, "name": "Dairy",
	}); err != nil {
		return err
	}

	milk := docstore.NewID()
	product, err := docstore.Encode(model.Product{
		ID: milk, Name: "Milk", Brand: "Andechser", ProductGroupID: dairy,
	})
	if err != nil {
		return err
	}
	if _, err := store.Products().Insert(ctx, product); err != nil {
		return err
	}

	item, err := docstore.Encode(model.GroceryItem{
		ID:           docstore.NewID(),
		ProductID:    milk,
		ContainerID:  fridge,
		RestQuantity: 1,
	})
	if err != nil {
		return err
	}
	_, err = store.GroceryItems().Insert(ctx, item)
	return err
}
