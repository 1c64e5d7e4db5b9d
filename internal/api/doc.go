// Package api provides the HTTP handlers, request/response models, and error
// mapping for the flash card API surface.
package api
