// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation (X-API-Key header or api_key query parameter).
//   - rayid: assigns a RayID to every request, stored in the context locals and echoed
//     in the response headers for tracing.
//
// Register rayid first so every later log line carries the RayID.
package middleware
