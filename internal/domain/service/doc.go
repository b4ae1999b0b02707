// Package service provides the provider registry: service providers
// register tool surfaces, and callers execute namespaced tools through
// a single entry point.
package service
