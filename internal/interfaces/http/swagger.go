package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
)

// SwaggerMiddleware devuelve el middleware de documentación si el
// swagger.json generado existe; nil si no está (la API arranca igual,
// solo sin /docs). El middleware entra en pánico ante un archivo ausente,
// por eso la verificación va antes de construirlo.
func SwaggerMiddleware(filePath, title string) fiber.Handler {
	if _, err := os.Stat(filePath); err != nil {
		return nil
	}
	return swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    title,
	})
}
