package main

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/vlightbox/internal/gallery"
	"github.com/alexisbeaulieu97/vlightbox/internal/lightbox"
	"github.com/alexisbeaulieu97/vlightbox/internal/ports"
)

type inspectOptions struct {
	jsonOutput bool
}

type inspectImage struct {
	Index          int    `json:"index"`
	ID             string `json:"id,omitempty"`
	Src            string `json:"src"`
	Caption        string `json:"caption,omitempty"`
	CaptionVisible bool   `json:"caption_visible"`
	Downloadable   bool   `json:"downloadable"`
	DownloadURL    string `json:"download_url"`
}

type inspectOutput struct {
	Title   string           `json:"title"`
	Kind    string           `json:"kind"`
	Origin  string           `json:"origin"`
	Options lightbox.Options `json:"options"`
	Images  []inspectImage   `json:"images"`
}

func newInspectCmd(app *AppContext) *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <source>",
		Short: "List the images of a gallery without opening the lightbox",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, log := app.CommandContext(cmd, "command.inspect")
			err := runInspect(ctx, cmd, app, log, args[0], opts)
			if err != nil {
				log.Error(ctx, "inspect command failed", "source", args[0], "error", err)
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, app *AppContext, log ports.Logger, source string, opts *inspectOptions) error {
	g, err := app.LoadGallery(ctx, source, log)
	if err != nil {
		return err
	}

	out := describeGallery(g)
	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	}

	if len(out.Images) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No images found in %s.\n", source)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, %d images)\n\n", valueOrFallback(out.Title, "(untitled)"), out.Kind, len(out.Images))
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "INDEX\tID\tCAPTION\tDOWNLOAD\tURL")
	for _, img := range out.Images {
		caption := "-"
		if img.CaptionVisible {
			caption = img.Caption
		}
		availability := "no"
		if img.Downloadable {
			availability = "yes"
		}
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%s\n", img.Index, valueOrFallback(img.ID, "-"), caption, availability, img.DownloadURL)
	}
	return writer.Flush()
}

func describeGallery(g *gallery.Gallery) inspectOutput {
	out := inspectOutput{
		Title:   g.Title,
		Kind:    string(g.Kind),
		Origin:  g.Origin,
		Options: g.Options,
		Images:  make([]inspectImage, 0, len(g.Images)),
	}
	for i, img := range g.Images {
		out.Images = append(out.Images, inspectImage{
			Index:          i,
			ID:             img.ID,
			Src:            img.Src,
			Caption:        img.Caption,
			CaptionVisible: lightbox.IsCaptionVisible(img, g.Options.Caption),
			Downloadable:   lightbox.IsDownloadAvailable(img, g.Options.Download),
			DownloadURL:    lightbox.ResolveDownloadURL(img),
		})
	}
	return out
}

func valueOrFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
