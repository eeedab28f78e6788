// Package core contains the business logic for the SiteGen API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (ProductSummary, ImageAsset, Website, Account)
// - analyzer: Product page analysis with field-level fallbacks
// - images: Stock image sourcing with placeholder substitution
// - synth: Marketing page synthesis with a deterministic template fallback
// - deploy: Hosting provider deployment, degrading to an internal preview
// - quota: Plan-based website creation limits
// - identity: Bearer token to account resolution
// - website: The pipeline orchestrator tying the stages together
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, storage)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// The pipeline stages that call external providers (analyzer, images,
// synth, deploy) are total: they degrade to fallbacks instead of
// returning errors, so a missing credential or a provider outage never
// fails a website creation.
//
// # Usage Example
//
//	import (
//	    "sitegen-api/core/analyzer"
//	    "sitegen-api/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	analyzerService := analyzer.NewAnalyzerService(deps)
//
//	// Analyze a product page
//	summary := analyzerService.Analyze(ctx, "https://shop.example.com/widget")
package core
