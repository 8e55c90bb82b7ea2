package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	logFormat  string
	logFile    string
	configFile string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{}

	cmd := &cobra.Command{
		Use:           "vlightbox",
		Short:         "Browse image galleries in a terminal lightbox",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			built, err := newAppContext(cmd, flags)
			if err != nil {
				return err
			}
			*app = *built
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.Close()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Log format: text, json, logfmt or zerolog")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file instead of stderr")
	cmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "Settings file (default is $XDG_CONFIG_HOME/vlightbox/config.yaml)")

	cmd.AddCommand(newViewCmd(app))
	cmd.AddCommand(newInspectCmd(app))
	cmd.AddCommand(newDownloadCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
