// Package postgres provides a PostgreSQL-backed console store for shared
// deployments where several console replicas use one database.
package postgres
