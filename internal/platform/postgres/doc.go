// Package postgres provides PostgreSQL implementations of the store
// interfaces. Decks are persisted as single JSONB documents to preserve the
// deck-as-one-record storage model.
package postgres
