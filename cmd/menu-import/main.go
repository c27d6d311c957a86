package main

import (
	"log"

	"github.com/UIT23520530/AnEat-sub002/internal/catalog"
	"github.com/UIT23520530/AnEat-sub002/internal/config"
	"github.com/UIT23520530/AnEat-sub002/internal/database"
	"github.com/UIT23520530/AnEat-sub002/internal/menuimport"
)

// menu-import reads the menu document (MENU_DOC_PATH) and reconciles it
// into the catalog. Safe to re-run, the job is idempotent.
func main() {
	cfg := config.Load()
	database.Init(cfg)

	importer := menuimport.NewImporter(catalog.NewStore(database.DB), cfg.ProductImagePath)

	summary, err := importer.Run(cfg.MenuDocPath)
	if err != nil {
		log.Fatalf("[FATAL] Menu import failed: %v", err)
	}

	if summary.Errors > 0 {
		log.Printf("[WARN] Menu import completed with %d item errors", summary.Errors)
	}
}
