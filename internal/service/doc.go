// Package service provides the session controller that drives entity
// creation: it holds the current user, workspace, goal table and goal,
// enforces creation prerequisites, assigns ids from the store sequences,
// and emits lifecycle events.
package service
