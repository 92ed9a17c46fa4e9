// Package host declares the collaborator interfaces the engines consume
// from their embedding host: exit hooks and focus discovery. Every
// implementation here is a plain value, so tests wire fakes directly.
package host
