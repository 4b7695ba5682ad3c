// Package events provides lifecycle events for goal-tracking entities.
//
// The session emits an event each time an entity is created. Handlers
// registered on an emitter receive every event without the session knowing
// who they are.
//
// The primary components are:
// - EntityEvent: Describes something that happened to one entity
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
// - LogHandler: Writes a redacted audit line per event
package events
