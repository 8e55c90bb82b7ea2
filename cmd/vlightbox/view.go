package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/vlightbox/internal/gallery"
	"github.com/alexisbeaulieu97/vlightbox/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/vlightbox/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/vlightbox/internal/lightbox"
	"github.com/alexisbeaulieu97/vlightbox/internal/ports"
	"github.com/alexisbeaulieu97/vlightbox/internal/tui"
)

type viewOptions struct {
	index       int
	noLoop      bool
	noNav       bool
	noCaption   bool
	resetStyles bool
	download    bool
	title       string
}

func newViewCmd(app *AppContext) *cobra.Command {
	opts := &viewOptions{}

	cmd := &cobra.Command{
		Use:   "view <source>",
		Short: "Open a gallery in the interactive lightbox",
		Long: `Open a directory, archive (.zip, .cbz, .7z, .rar), gallery manifest
(.yaml, .toml) or git repository in the terminal lightbox.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, log := app.CommandContext(cmd, "command.view")
			log.Info(ctx, "opening gallery", "source", args[0])
			err := runView(ctx, cmd, app, log, args[0], opts)
			if err != nil {
				log.Error(ctx, "view command failed", "source", args[0], "error", err)
			}
			return err
		},
	}

	cmd.Flags().IntVarP(&opts.index, "index", "i", 0, "Zero-based index of the first image shown")
	cmd.Flags().BoolVar(&opts.noLoop, "no-loop", false, "Stop at the first and last image")
	cmd.Flags().BoolVar(&opts.noNav, "no-nav", false, "Hide the previous/next controls")
	cmd.Flags().BoolVar(&opts.noCaption, "no-caption", false, "Hide captions")
	cmd.Flags().BoolVar(&opts.resetStyles, "reset-styles", false, "Render without colors or borders")
	cmd.Flags().BoolVar(&opts.download, "download", false, "Offer the download control")
	cmd.Flags().StringVar(&opts.title, "title", "", "Title shown above the image")

	return cmd
}

func runView(ctx context.Context, cmd *cobra.Command, app *AppContext, log ports.Logger, source string, opts *viewOptions) error {
	if !isTerminal(cmd.OutOrStdout()) {
		return newCommandError("view", "stdout is not a terminal", fmt.Errorf("interactive mode needs a TTY"), fmt.Sprintf("Run 'vlightbox inspect %s' for a non-interactive listing.", source))
	}

	g, err := app.LoadGallery(ctx, source, log)
	if err != nil {
		return err
	}

	props, err := viewProps(cmd, g, opts)
	if err != nil {
		return err
	}

	// Logs would corrupt the alternate screen; hold them until the program exits.
	hostLog := log
	var deferred *logging.Deferred
	if app.logsToTerminal {
		deferred = logging.NewDeferred(0)
		hostLog = deferred.Logger()
		defer deferred.Release(log)
	}

	model, err := tui.NewModel(tui.Options{
		Context:   ctx,
		Props:     props,
		Registry:  app.Registry,
		Fetcher:   app.Saver(hostLog),
		Publisher: events.NewLoggingPublisher(hostLog),
		Logger:    hostLog,
	})
	if err != nil {
		return newCommandError("view", "building the lightbox component", err, "Reinstall vlightbox; the component registry is incomplete.")
	}

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	final, err := program.Run()
	if m, ok := final.(tui.Model); ok {
		m.Close()
	} else {
		model.Close()
	}
	if err != nil {
		return newCommandError("view", "running the terminal UI", err, "Try again with --reset-styles, or use 'vlightbox inspect'.")
	}

	log.Info(ctx, "gallery closed", "source", source)
	return nil
}

// viewProps applies the flags the user set on top of the gallery's own options.
func viewProps(cmd *cobra.Command, g *gallery.Gallery, opts *viewOptions) (lightbox.Props, error) {
	if len(g.Images) > 0 && (opts.index < 0 || opts.index >= len(g.Images)) {
		return lightbox.Props{}, newCommandError("view", fmt.Sprintf("index %d", opts.index), fmt.Errorf("out of range"), fmt.Sprintf("Pick an index between 0 and %d.", len(g.Images)-1))
	}

	props := g.Props(opts.index)
	flags := cmd.Flags()
	if flags.Changed("no-loop") {
		props.Options.Loop = !opts.noLoop
	}
	if flags.Changed("no-nav") {
		props.Options.Nav = !opts.noNav
	}
	if flags.Changed("no-caption") {
		props.Options.Caption = !opts.noCaption
	}
	if flags.Changed("reset-styles") {
		props.Options.ResetStyles = opts.resetStyles
	}
	if flags.Changed("download") {
		props.Options.Download = opts.download
	}
	if flags.Changed("title") {
		props.Options.Title = opts.title
	} else if props.Options.Title == "" {
		props.Options.Title = g.Title
	}
	return props, nil
}

func isTerminal(writer io.Writer) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
