// Package service contains the application services orchestrating deck
// generation, retrieval, deletion, export, and status checks. Services hold
// no mutable state beyond their injected collaborators; every operation is a
// single-shot transaction against storage.
package service
