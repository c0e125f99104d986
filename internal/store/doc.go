// Package store defines the persistence interfaces and the store-level
// error taxonomy consumed by the API layer. Concrete implementations live
// in internal/platform/postgres.
package store
