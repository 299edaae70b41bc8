package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotup/internal/version"
	"github.com/arthur-debert/dotup/pkg/config"
	"github.com/arthur-debert/dotup/pkg/logging"
	"github.com/arthur-debert/dotup/pkg/paths"
	"github.com/arthur-debert/dotup/pkg/platform"
	"github.com/arthur-debert/dotup/pkg/setup"
	"github.com/arthur-debert/dotup/pkg/ui"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int
	var dotfilesRoot string
	var quiet bool

	rootCmd := &cobra.Command{
		Use:     "dotup",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// A .env in the working directory may carry DOTFILES_PATH or
			// DOTUP_* overrides.
			_ = godotenv.Load()

			logging.SetupLogger(verbosity)
			logger := logging.GetLogger("cmd")
			logger.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return setup.Run(platform.Detect(), setup.Options{
				DotfilesRoot: dotfilesRoot,
				Quiet:        quiet,
			})
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&dotfilesRoot, "dotfiles", "", MsgFlagDotfiles)
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, MsgFlagQuiet)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newReadmeCmd(&dotfilesRoot))

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dotup version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gen-config",
		Short: MsgGenConfigShort,
		Long:  MsgGenConfigLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := config.DefaultTOML()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

func newReadmeCmd(dotfilesRoot *string) *cobra.Command {
	return &cobra.Command{
		Use:   "readme",
		Short: MsgReadmeShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := paths.New(*dotfilesRoot, platform.Detect())
			if err != nil {
				return err
			}

			readme := env.Dotfile("README.md")
			data, err := os.ReadFile(readme)
			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "No README.md found in %s\n", env.DotfilesRoot)
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), ui.RenderMarkdown(string(data)))
			return nil
		},
	}
}
