package scour

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/scourtool/scour/internal/version"
	"github.com/scourtool/scour/pkg/commands/clean"
	"github.com/scourtool/scour/pkg/commands/listprofiles"
	"github.com/scourtool/scour/pkg/config"
	"github.com/scourtool/scour/pkg/logging"
	"github.com/scourtool/scour/pkg/output"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:     "scour",
		Short:   "Remove residual application artifacts across all user profiles",
		Long:    msgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug, -vvv trace)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a scour.toml overriding the built-in targets")

	rootCmd.AddCommand(newCleanCmd(&configPath))
	rootCmd.AddCommand(newProfilesCmd(&configPath))
	rootCmd.AddCommand(newConfigCmd(&configPath))

	return rootCmd
}

func newCleanCmd(configPath *string) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Run the full cleanup pipeline",
		Long:  msgCleanLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			report, err := clean.Run(clean.Options{
				Config: cfg,
				DryRun: dryRun,
			})
			if err != nil {
				// Structural failure: the pipeline could not start.
				return err
			}

			fmt.Print(output.RenderReport(report))
			// Per-target failures are reported, not propagated: a
			// partial cleanup is still a successful run.
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Probe targets without deleting anything")
	return cmd
}

func newConfigCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective target configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			rendered, err := toml.Marshal(cfg)
			if err != nil {
				return err
			}
			fmt.Print(string(rendered))
			return nil
		},
	}
}

func newProfilesCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the user profiles a cleanup run would touch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			infos, err := listprofiles.List(listprofiles.Options{Config: cfg})
			if err != nil {
				return err
			}

			for _, info := range infos {
				hive := "hive present"
				if !info.HasHive {
					hive = "no hive"
				}
				fmt.Printf("%s\t%s\t(%s)\n", info.Name, info.Root, hive)
			}
			return nil
		},
	}
}
