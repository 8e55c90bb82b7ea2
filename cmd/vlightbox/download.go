package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/vlightbox/internal/download"
	"github.com/alexisbeaulieu97/vlightbox/internal/lightbox"
	"github.com/alexisbeaulieu97/vlightbox/internal/ports"
)

type downloadOptions struct {
	force bool
}

func newDownloadCmd(app *AppContext) *cobra.Command {
	opts := &downloadOptions{}

	cmd := &cobra.Command{
		Use:   "download <source> <index>",
		Short: "Save one image of a gallery without opening the lightbox",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, log := app.CommandContext(cmd, "command.download")
			err := runDownload(ctx, cmd, app, log, args[0], args[1], opts)
			if err != nil {
				log.Error(ctx, "download command failed", "source", args[0], "index", args[1], "error", err)
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.force, "force", false, "Enable downloads for images that do not opt out")

	return cmd
}

// runDownload drives the component exactly as the lightbox would: open at
// index, click the download control, let the saver run.
func runDownload(ctx context.Context, cmd *cobra.Command, app *AppContext, log ports.Logger, source, rawIndex string, opts *downloadOptions) error {
	index, err := strconv.Atoi(rawIndex)
	if err != nil {
		return newCommandError("download", fmt.Sprintf("parsing index %q", rawIndex), err, "Pass a zero-based image index.")
	}

	g, err := app.LoadGallery(ctx, source, log)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(g.Images) {
		return newCommandError("download", fmt.Sprintf("index %d", index), fmt.Errorf("out of range for %d images", len(g.Images)), "Run 'vlightbox inspect' to list valid indexes.")
	}

	props := g.Props(index)
	if opts.force {
		props.Options.Download = true
	}

	saver := app.Saver(log)
	var (
		saved     string
		saveErr   error
		requested bool
	)
	component, err := app.Registry.Build(lightbox.TagName, lightbox.ComponentOptions{
		Emit: func(e lightbox.Event) {
			if _, ok := e.(lightbox.DownloadRequested); ok {
				requested = true
			}
			if err := app.Publisher.Publish(ctx, e); err != nil {
				log.Warn(ctx, "publish failed", "event_type", e.EventType(), "error", err)
			}
		},
		Saver: lightbox.SaverFunc(func(req lightbox.DownloadRequest) error {
			saved, saveErr = saver.Fetch(ctx, req)
			_ = app.Publisher.Publish(ctx, download.Outcome(req.Index, req.URL, saved, saveErr))
			return saveErr
		}),
		Logger: log,
	})
	if err != nil {
		return err
	}

	bus := lightbox.NewKeyBus()
	component.Mount(bus, props)
	component.Click(lightbox.RoleDownload)
	component.Unmount()

	if !requested {
		return newCommandError("download", fmt.Sprintf("image %d", index), fmt.Errorf("download is not available for this image"), "Pass --force, or set downloadable: true in the gallery manifest.")
	}
	if saveErr != nil {
		return newCommandError("download", fmt.Sprintf("image %d", index), saveErr, "Check the URL and the download directory.")
	}

	fmt.Fprintln(cmd.OutOrStdout(), saved)
	return nil
}
