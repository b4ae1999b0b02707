// Package middleware provides HTTP middleware for the compositor API:
// CORS handling and per-IP rate limiting.
package middleware
