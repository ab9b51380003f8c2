// Package server provides the HTTP front end: a gorilla/mux router
// exposing /health, /search and /data, with an environment-sensitive
// CORS policy and request logging.
//
// Error payloads follow one shape, {"error": ..., "details": ...}.
// Readiness failures surface as 503 with a details field naming the
// blocker; internal error details are suppressed in production.
package server
