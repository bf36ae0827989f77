package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bnema/gallery-captioner/internal/adapters/render/captions"
	"github.com/bnema/gallery-captioner/internal/application"
	"github.com/bnema/gallery-captioner/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type listEntry struct {
	Image   string `json:"image"`
	Caption string `json:"caption"`
}

type listOutput struct {
	Store      string      `json:"store"`
	StoreFound bool        `json:"store_found"`
	Captions   []listEntry `json:"captions"`
	Added      []string    `json:"added"`
	Orphaned   []listEntry `json:"orphaned"`
}

func newListCmd(v *viper.Viper, opts *rootOptions, deps dependencies) *cobra.Command {
	var strict bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list [gallery-dir]",
		Short: "Show the reconciled captions without writing anything",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			app, err := wireApp(cmd, v, opts.configPath, deps, false)
			if err != nil {
				return err
			}
			defer func() {
				err = errors.Join(err, app.Close())
			}()

			galleryDir := galleryDirArg(args)
			captionStore, err := app.openStore(galleryDir)
			if err != nil {
				return err
			}

			result, err := app.service().Sync(cmd.Context(), application.SyncCommand{
				GalleryDir:   galleryDir,
				Store:        captionStore,
				RequireStore: strict,
			})
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(newListOutput(result))
			}

			rendered := captions.RenderTable(result.Records, captions.TableOptions{Plain: !deps.interactive()})
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when the caption file does not exist yet")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")

	return cmd
}

func newListOutput(result application.SyncResult) listOutput {
	return listOutput{
		Store:      result.StorePath,
		StoreFound: result.StoreFound,
		Captions:   toEntries(result.Records),
		Added:      append([]string{}, result.Report.Added...),
		Orphaned:   toEntries(result.Report.Orphaned()),
	}
}

func toEntries(records []domain.CaptionRecord) []listEntry {
	entries := make([]listEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, listEntry{Image: record.Filename, Caption: record.Caption})
	}

	return entries
}
