// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces (repositories) defined in the internal/store package.
// It handles query execution, mapping between rows and domain entities, and
// translation of driver errors into store errors. The schema is shipped as
// embedded goose migrations.
package postgres
