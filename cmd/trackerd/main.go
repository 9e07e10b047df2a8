package main

import (
	"context"
	"log"

	"researchtracker/internal/config"
	"researchtracker/internal/infra/db"
	httpinfra "researchtracker/internal/infra/http"
)

func main() {
	cfg := config.FromEnv()

	store, err := db.NewStore(cfg)
	if err != nil {
		log.Fatalf("failed to init store: %v", err)
	}

	srv, err := httpinfra.NewServer(cfg, store)
	if err != nil {
		log.Fatalf("failed to init server: %v", err)
	}

	if err := srv.Bootstrap(context.Background()); err != nil {
		log.Fatalf("failed to bootstrap admin: %v", err)
	}

	if err := srv.Run(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
