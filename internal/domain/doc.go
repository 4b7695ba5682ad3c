// Package domain contains the core goal-tracking entities and their validation
// rules: users own workspaces, workspaces contain goal tables, and goal tables
// contain goals. It is independent of any storage or delivery mechanism.
package domain
