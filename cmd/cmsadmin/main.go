package main

import (
	"context"
	"log"
	"os"

	"cmsadmin/internal/adapter/rest"
	"cmsadmin/internal/adapter/storage"
	"cmsadmin/internal/adapter/term"
	"cmsadmin/internal/app"
	"cmsadmin/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	durable, err := storage.NewFile(cfg.StateDir)
	if err != nil {
		log.Fatalf("state dir: %v", err)
	}
	store := app.NewStore(storage.NewMemory(), durable)

	client := rest.New(rest.Config{BaseURL: cfg.BaseURL, Timeout: cfg.Timeout}, store)
	gate := app.NewGate(store, client)

	console := term.New(client, store, gate, os.Stdin, os.Stdout)
	if err := console.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
