package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"itam-dashboard/internal/cms"
	"itam-dashboard/internal/config"
	"itam-dashboard/internal/export"
	"itam-dashboard/internal/inventory"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: export_excel --identifier=... --password=... [--office=...] [--q=...] [--out=path.xlsx]")
		os.Exit(1)
	}

	var identifier, password, office, search, outPath string

	for _, arg := range os.Args[1:] {
		if strings.HasPrefix(arg, "--identifier=") {
			identifier = strings.TrimPrefix(arg, "--identifier=")
		} else if strings.HasPrefix(arg, "--password=") {
			password = strings.TrimPrefix(arg, "--password=")
		} else if strings.HasPrefix(arg, "--office=") {
			office = strings.TrimPrefix(arg, "--office=")
		} else if strings.HasPrefix(arg, "--q=") {
			search = strings.TrimPrefix(arg, "--q=")
		} else if strings.HasPrefix(arg, "--out=") {
			outPath = strings.TrimPrefix(arg, "--out=")
		}
	}

	if identifier == "" || password == "" {
		fmt.Println("Error: identifier and password are required")
		fmt.Println("Usage: export_excel --identifier=... --password=... [--office=...] [--q=...] [--out=path.xlsx]")
		os.Exit(1)
	}

	cfg, err := config.LoadAndValidate()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	client := cms.New(cfg.CMSBaseURL)
	ctx := context.Background()

	auth, err := client.Login(ctx, identifier, password)
	if err != nil {
		log.Fatalf("Login failed: %v", err)
	}

	records, err := inventory.NewService(client).FetchAll(ctx, auth.JWT, office, search)
	if err != nil {
		log.Fatalf("Sweep failed: %v", err)
	}

	if outPath == "" {
		outPath = export.Filename(office)
	}

	f, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", outPath, err)
	}
	defer f.Close()

	if err := export.Write(f, records, time.Now(), client.FileURL); err != nil {
		log.Fatalf("Failed to write workbook: %v", err)
	}

	log.Printf("Exported %d records to %s", len(records), outPath)
}
