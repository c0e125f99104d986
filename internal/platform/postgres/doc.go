// Package postgres provides PostgreSQL-backed implementations of the
// store interfaces and the translation of driver faults into the store
// error taxonomy.
package postgres
