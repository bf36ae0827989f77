package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/bnema/gallery-captioner/internal/adapters/render/captions"
	"github.com/bnema/gallery-captioner/internal/application"
	"github.com/bnema/gallery-captioner/internal/config"
	"github.com/bnema/gallery-captioner/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var errNotInteractive = errors.New("edit mode needs an interactive terminal")

func Execute() error {
	return newRootCmd(defaultDependencies()).Execute()
}

type rootOptions struct {
	configPath string
	edit       bool
}

func newRootCmd(deps dependencies) *cobra.Command {
	v := viper.New()
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "captioner [gallery-dir]",
		Short: "Caption the images of a gallery directory",
		Long: "captioner keeps a caption file next to an image gallery in sync with the images on disk " +
			"and lets you write captions interactively, optionally previewing each image in an external viewer.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCaptioner(cmd, v, opts, deps, galleryDirArg(args))
		},
	}

	persistent := rootCmd.PersistentFlags()
	persistent.StringVar(&opts.configPath, "config", "", "Config file path (default $XDG_CONFIG_HOME/captioner/config.toml)")
	persistent.StringP("output-type", "t", "", "Caption file type: csv, toml, yaml or sqlite (default csv)")
	persistent.StringP("output-name", "n", "", "Caption file name, relative to the gallery (default captions.<ext>)")
	persistent.String("log-level", "", "Log level: debug, info, warn or error")

	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.edit, "edit", "e", false, "Edit captions interactively")
	flags.StringP("view-command", "c", "", "Viewer executable started for the image being edited")
	flags.StringArrayP("view-command-args", "a", nil, `Viewer argument, repeatable; escape leading dashes as \-`)

	bindFlags(v, persistent, map[string]string{
		config.KeyOutputType: "output-type",
		config.KeyOutputName: "output-name",
		config.KeyLogLevel:   "log-level",
	})
	bindFlags(v, flags, map[string]string{
		config.KeyViewerCommand: "view-command",
		config.KeyViewerArgs:    "view-command-args",
	})

	rootCmd.AddCommand(
		newVersionCmd(),
		newListCmd(v, opts, deps),
	)

	return rootCmd
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}
}

func galleryDirArg(args []string) string {
	if len(args) == 0 {
		return "."
	}

	return filepath.Clean(args[0])
}

func runCaptioner(cmd *cobra.Command, v *viper.Viper, opts *rootOptions, deps dependencies, galleryDir string) (err error) {
	if opts.edit && !deps.interactive() {
		return fmt.Errorf("%w: %w", domain.ErrInvalidArgument, errNotInteractive)
	}

	app, err := wireApp(cmd, v, opts.configPath, deps, opts.edit)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, app.Close())
	}()

	captionStore, err := app.openStore(galleryDir)
	if err != nil {
		return err
	}

	viewerSpec, err := app.viewerSpec()
	if err != nil {
		return err
	}

	runCmd := application.RunCommand{
		GalleryDir: galleryDir,
		Store:      captionStore,
		Edit:       opts.edit,
		Viewer:     viewerSpec,
	}

	var serviceOpts []application.ServiceOption
	if opts.edit {
		serviceOpts = append(serviceOpts, application.WithSessionRunner(deps.newRunner(galleryTitle(galleryDir))))
	}
	service := app.service(serviceOpts...)

	var result application.RunResult
	run := func(ctx context.Context) error {
		var runErr error
		result, runErr = service.Run(ctx, runCmd)
		return runErr
	}

	if !opts.edit && deps.interactive() {
		err = runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Syncing captions...", run)
	} else {
		err = run(cmd.Context())
	}
	if err != nil {
		return err
	}

	summary, err := captions.RenderSummary(result)
	if err != nil {
		return fmt.Errorf("render summary: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), summary)
	return err
}

func galleryTitle(galleryDir string) string {
	abs, err := filepath.Abs(galleryDir)
	if err != nil {
		return "Gallery captions"
	}

	return "Gallery captions: " + abs
}
