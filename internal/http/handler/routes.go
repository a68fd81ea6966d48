package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/etaubman/annotations/internal/service"
	"github.com/etaubman/annotations/internal/storage"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Keep handlers minimal and free of business logic.
func RegisterRoutes(app *fiber.App, db *sql.DB, docSvc service.DocumentService, annSvc service.AnnotationService, typeSvc service.DocumentTypeService, store storage.Storage) {
	// Serve OpenAPI spec; Swagger UI is mounted separately in main.
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Health endpoints: readiness checks DB connectivity, liveness does not
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	// Documents
	app.Post("/documents/", UploadDocument(docSvc))
	app.Get("/documents/", ListDocuments(docSvc))
	app.Get("/documents/:id", GetDocument(docSvc))
	app.Get("/documents_with_annotations/", ListDocumentsWithAnnotationCounts(docSvc))

	// Annotations (append-only)
	app.Post("/annotations/", CreateAnnotation(annSvc))
	app.Get("/annotations/:document_id", ListAnnotations(annSvc))

	// Reference data
	app.Get("/document_types/", ListDocumentTypes(typeSvc))
	app.Post("/document_types/", CreateDocumentType(typeSvc))
	app.Post("/data_elements/", CreateDataElement(typeSvc))
	app.Post("/document_type_data_elements/", AssociateDataElement(typeSvc))
	app.Get("/data_elements_by_document_type/:id", ListDataElementsByType(typeSvc))

	// Stored files
	app.Get("/uploaded_files/:filename", ServeUploadedFile(store))
}
