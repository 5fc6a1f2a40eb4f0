// Package testutil provides in-memory and recording fakes for scour's
// host collaborators: filesystem, registry, hive mounter, and package
// manager. Production code never imports this package.
package testutil
