// Package docsync builds a categorized catalog of document files, publishes
// the catalog together with the files to a remote repository, and notifies a
// consumer application about what changed.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, gogit/, sqlite/).
package docsync
