// Package estructura holds the fixed template table for the standard
// construction project folder tree and materializes it on disk: idempotent
// creation, conflict detection, and the health check behind the doctor
// command. Folder names come from literal format strings; nothing here
// computes separators or prefixes.
package estructura
