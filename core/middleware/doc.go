// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation (X-API-Key) protecting every route
//   - rayid: a unique request id (X-Ray-ID) injected into the context and
//     response headers for tracing
//
// Both are registered globally in the start command, rayid first.
package middleware
