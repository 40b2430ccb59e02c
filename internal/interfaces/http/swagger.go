package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
)

// RegisterSwagger monta la UI de Swagger en /docs sirviendo el JSON estático
// indicado. El middleware de contrib entra en pánico si el archivo no existe,
// así que con un build sin docs la ruta simplemente no se monta y el servidor
// arranca igual. Devuelve si la UI quedó montada.
func RegisterSwagger(app *fiber.App, filePath, title string) bool {
	if _, err := os.Stat(filePath); err != nil {
		return false
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    title,
	}))
	return true
}
