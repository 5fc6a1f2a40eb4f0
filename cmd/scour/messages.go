package scour

const msgRootLong = `scour removes the residual artifacts an application family leaves
behind after its own uninstaller has run: data folders and shortcuts in
every user profile, per-user registry state reached by mounting each
profile's offline hive, machine-wide registry keys, and any still
installed packages.

Targets come from the built-in configuration or a scour.toml override.
Removal is best effort: targets that are already gone are normal, and a
target that cannot be removed is reported without stopping the run.`

const msgCleanLong = `Run the cleanup pipeline: uninstall matching packages, delete machine
registry keys, then for every user profile remove data folders and
shortcuts and clean the per-user registry, and finally sweep the shared
shortcut locations.

The command exits zero as long as the pipeline completes, whatever the
individual target outcomes; only a structural failure such as an
unreadable profiles root exits non-zero.`
