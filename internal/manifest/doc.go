// Package manifest defines the structure plan document: a YAML record of
// the folder tree resolved for a project. It handles parsing, writing,
// JSON-schema validation of untrusted plan files, and semantic verification
// against the current template table.
package manifest
