// Package store defines interfaces for holding goal-tracking entities and an
// in-memory implementation of them. Entities are indexed by id and listed in
// insertion order; each entity kind draws ids from its own sequence.
package store
