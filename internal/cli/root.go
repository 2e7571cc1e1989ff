// Package cli wires the command line: the default command opens the window,
// "prompt" runs the text front end and "version" prints build information.
package cli

import (
	"fmt"
	"os"
	"strings"

	"axescanvas/internal/app"
	"axescanvas/internal/config"
	"axescanvas/ui/mainwindow"

	"github.com/spf13/cobra"
)

// Options holds the persistent flags.
type Options struct {
	ConfigPath string
	Width      int
	Height     int
	Verbose    bool
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:          "axescanvas",
		Short:        "Place labelled points on a two-axis canvas",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Open the canvas window
  axescanvas

  # Use a custom configuration
  axescanvas --config canvas.yaml

  # Drive the editor from a script
  axescanvas prompt < session.txt
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := newState(cmd, opts)
			if err != nil {
				return err
			}
			mainwindow.Run(state)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", envOr("AXESCANVAS_CONFIG", ""), "Path to a YAML config file")
	cmd.PersistentFlags().IntVar(&opts.Width, "width", 0, "Canvas width in pixels (overrides config)")
	cmd.PersistentFlags().IntVar(&opts.Height, "height", 0, "Canvas height in pixels (overrides config)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Log gesture transitions")

	cmd.AddCommand(newPromptCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command, opts *Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("width") {
		cfg.Canvas.Width = opts.Width
	}
	if cmd.Flags().Changed("height") {
		cfg.Canvas.Height = opts.Height
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}

func newState(cmd *cobra.Command, opts *Options) (*app.State, error) {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, err
	}
	state := app.NewState(cfg)
	state.SetVerbose(opts.Verbose)
	return state, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
