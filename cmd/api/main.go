package main

import (
	"log"
	"net/http"

	"itam-dashboard/internal"
	"itam-dashboard/internal/config"
)

func main() {
	// Load and validate configuration
	cfg, err := config.LoadAndValidate()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Create and start server
	srv := internal.NewServer(cfg)

	log.Println("Starting ITAM dashboard gateway...")
	log.Printf("CMS: %s", cfg.CMSBaseURL)
	log.Printf("Session TTL: %v", cfg.SessionTTL)
	log.Printf("Listening on %s", cfg.ListenAddr)

	log.Fatal(http.ListenAndServe(cfg.ListenAddr, srv.Router))
}
