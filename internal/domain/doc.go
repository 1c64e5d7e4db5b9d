// Package domain contains the core entities of the flash card system:
// decks, the cards they own, and status check records. Entities are created
// through constructors that generate ids and timestamps, and are immutable
// after creation.
package domain
