package menuimport

import (
	"github.com/UIT23520530/AnEat-sub002/internal/catalog"
	"github.com/UIT23520530/AnEat-sub002/internal/config"
	"github.com/UIT23520530/AnEat-sub002/internal/database"

	"github.com/gofiber/fiber/v2"
)

// POST /api/admin/menu-import — runs the same job the CLI runs and
// returns the counts. The source document lives on the server.
func ImportHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		importer := NewImporter(catalog.NewStore(database.DB), cfg.ProductImagePath)

		summary, err := importer.Run(cfg.MenuDocPath)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		return c.JSON(fiber.Map{
			"created": summary.Created,
			"updated": summary.Updated,
			"skipped": summary.Skipped,
			"errors":  summary.Errors,
		})
	}
}
