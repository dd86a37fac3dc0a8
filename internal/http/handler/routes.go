package handler

import (
	"github.com/gofiber/fiber/v2"
)

const (
	// helloBody keeps the mismatched closing tag: clients assert on the
	// exact byte sequence, do not "fix" it.
	helloBody  = `<h1>Hello from Flask & Docker</h2>`
	healthBody = "success"
)

// Hello serves the landing page greeting as HTML.
func Hello() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Type("html").SendString(helloBody)
	}
}

// Health is the liveness endpoint polled by orchestration tooling.
// It always answers 200 "success" as plain text; the process being able
// to respond at all is the signal.
func Health() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendString(healthBody)
	}
}

// LivenessProbe is a bare 200 with no body, for probes that only look at
// the status code.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App) {
	// Serve OpenAPI spec and Swagger UI
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

	app.Get("/", Hello())
	app.Get("/health", Health())
	app.Get("/healthz", LivenessProbe())
}
