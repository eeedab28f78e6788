// Package api provides the HTTP API layer for the SiteGen application.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The API automatically generates OpenAPI 3.0 documentation:
// - JSON spec available at /openapi.json
// - Interactive Swagger UI at /docs
//
// 2. Request/Response Validation
//
// Huma provides automatic validation based on struct tags. Fields whose
// absence must map to a 400 rather than a schema error are validated in
// the service layer instead:
//
//	type CreateWebsiteRequest struct {
//	    ProductURL string `json:"productUrl,omitempty"`
//	}
//
// 3. Middleware Support
//
// The API includes middleware for:
// - Request logging with unique request IDs
// - Rate limiting per IP address
// - CORS handling
//
// # Usage Example
//
//	// Create API with middleware
//	cfg := api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	}
//	humaAPI, router := api.NewAPIWithMiddleware(cfg)
//
//	// Register handlers
//	websiteHandler := handlers.NewWebsiteHandler(websiteService, identityService, baseURL)
//	websiteHandler.RegisterRoutes(humaAPI)
//
//	// Start server
//	http.ListenAndServe(":8080", router)
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807:
//
//	{
//	    "status": 400,
//	    "title": "Bad Request",
//	    "detail": "productUrl: cannot be empty",
//	    "instance": "/websites"
//	}
//
// The one exception is the quota rejection, which keeps the body shape
// clients depend on: { "message", "currentCount", "limit" } with a 403.
// Domain errors are automatically mapped to appropriate HTTP status codes.
package api
