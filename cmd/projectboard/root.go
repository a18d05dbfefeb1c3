package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/projectboard/internal/platform/config"
)

// rootOptions are the flags shared by every subcommand.
type rootOptions struct {
	profile   string
	configDir string
}

func (o *rootOptions) load() (*config.Config, error) {
	return config.Load(o.profile, config.WithConfigDir(o.configDir))
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "projectboard",
		Short: "Collect projects through a validated form and list them by status",
		Long: `projectboard serves a form for new projects (title, description, team size)
and lists submitted projects by status. Submissions are validated before they
are stored; invalid ones are rejected with a notice and nothing is stored.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.profile, "profile", os.Getenv("APP_PROFILE"),
		"config profile to load (local, dev, prod); defaults to $APP_PROFILE")
	cmd.PersistentFlags().StringVar(&opts.configDir, "config-dir", "configs",
		"directory holding base.yaml and the profile files")

	cmd.AddCommand(newServeCmd(opts), newCheckCmd(opts))
	return cmd
}
