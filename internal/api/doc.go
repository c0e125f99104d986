// Package api implements the HTTP surface: request models and their
// validation schemas, the error taxonomy and its terminal dispatcher, and
// the resource handlers. Every failure response in the application is
// emitted by HandleAPIError in this package.
package api
