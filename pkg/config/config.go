// Package config loads scour's target configuration: which profiles,
// paths, shortcuts, registry keys, and packages a run acts on. Targets
// are static input owned by the operator; the cleanup components treat
// them as read-only. Defaults are embedded and an on-disk scour.toml
// overrides them key by key.
package config

import (
	_ "embed"
	"errors"
	"os"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	scourerr "github.com/scourtool/scour/pkg/errors"
)

//go:embed embedded/scour.toml
var defaultConfig []byte

// ProfilesConfig locates user profiles and their offline hives.
type ProfilesConfig struct {
	Root     string   `toml:"root"`
	Skip     []string `toml:"skip"`
	HiveFile string   `toml:"hive_file"`
}

// PathsConfig lists per-profile data folders, relative to a profile root.
type PathsConfig struct {
	Data []string `toml:"data"`
}

// ShortcutsConfig lists shortcut name patterns and where to look for them.
// ProfileLocations are relative to a profile root; SharedLocations are
// absolute machine-wide paths.
type ShortcutsConfig struct {
	Patterns         []string `toml:"patterns"`
	ProfileLocations []string `toml:"profile_locations"`
	SharedLocations  []string `toml:"shared_locations"`
}

// RegistryConfig lists machine-scope keys, per-user hive subkeys, and
// the prefix used for temporary hive mount names.
type RegistryConfig struct {
	MachineKeys []string `toml:"machine_keys"`
	UserSubkeys []string `toml:"user_subkeys"`
	MountPrefix string   `toml:"mount_prefix"`
}

// PackagesConfig lists name globs for installed packages to uninstall.
// An empty list disables the package stage entirely.
type PackagesConfig struct {
	Patterns []string `toml:"patterns"`
}

// Config is the full, validated run configuration.
type Config struct {
	Profiles  ProfilesConfig  `toml:"profiles"`
	Paths     PathsConfig     `toml:"paths"`
	Shortcuts ShortcutsConfig `toml:"shortcuts"`
	Registry  RegistryConfig  `toml:"registry"`
	Packages  PackagesConfig  `toml:"packages"`
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load builds the configuration from embedded defaults, overridden by
// the file at path when path is non-empty, or by ./scour.toml when one
// exists. A non-empty path that cannot be read is an error; the
// implicit scour.toml is optional.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, scourerr.Wrap(err, scourerr.ErrConfigParse, "failed to load embedded defaults")
	}

	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, scourerr.Wrap(err, scourerr.ErrConfigLoad, "failed to load config file").
				WithDetail("path", path)
		}
	} else if _, err := os.Stat("scour.toml"); err == nil {
		if err := k.Load(file.Provider("scour.toml"), toml.Parser()); err != nil {
			return nil, scourerr.Wrap(err, scourerr.ErrConfigLoad, "failed to load scour.toml")
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "toml"}); err != nil {
		return nil, scourerr.Wrap(err, scourerr.ErrConfigParse, "failed to unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the structural requirements a run cannot start without.
func (c *Config) Validate() error {
	if c.Profiles.Root == "" {
		return scourerr.New(scourerr.ErrConfigParse, "profiles.root must be set")
	}
	if c.Profiles.HiveFile == "" {
		return scourerr.New(scourerr.ErrConfigParse, "profiles.hive_file must be set")
	}
	if c.Registry.MountPrefix == "" {
		return scourerr.New(scourerr.ErrConfigParse, "registry.mount_prefix must be set")
	}
	return nil
}
