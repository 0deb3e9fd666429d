// Package api contains the HTTP delivery layer: request/response models,
// handlers for the product and user endpoints, and the error mapping that
// translates service and store errors into HTTP status codes with sanitized
// messages.
package api
