package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg gin.IRoutes) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>Mistral Document Q&amp;A - Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "Mistral Document Q&A", "description": "Smart document Q&A powered by Mistral AI", "version": "1.0.0" },
  "paths": {
    "/": { "get": { "summary": "Service metadata and endpoint map", "responses": { "200": { "description": "metadata" } } } },
    "/upload": {
      "post": {
        "summary": "Upload a text or PDF document",
        "requestBody": { "content": { "multipart/form-data": { "schema": {"type":"object","properties":{"file":{"type":"string","format":"binary"}},"required":["file"]}}}},
        "responses": { "200": { "description": "document stored" }, "400": { "description": "file could not be decoded" } }
      }
    },
    "/ask": {
      "post": {
        "summary": "Ask a question about an uploaded document",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"question":{"type":"string"},"document_id":{"type":"string"}},"required":["question","document_id"]}}}},
        "responses": { "200": { "description": "answer" }, "404": { "description": "document not found" }, "500": { "description": "provider failure" } }
      }
    },
    "/documents": { "get": { "summary": "List uploaded documents", "responses": { "200": { "description": "count and documents" } } } },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
