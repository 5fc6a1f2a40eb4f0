// Package types defines the core data model shared across scour:
// cleanup outcomes, run reports, user profiles, and the host-collaborator
// interfaces (filesystem, registry, hive mounting, package inventory) that
// components are written against so tests can substitute fakes.
package types
