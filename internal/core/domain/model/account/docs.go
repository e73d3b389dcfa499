// Package account defines the role ladder used to gate operations.
// Roles are resolved per request by a directory port; the domain only
// knows the ladder and how to compare against a gate's minimum level.
package account
