// pkg/cli/root.go
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bstardust/exifgps/internal/config"
	"github.com/bstardust/exifgps/internal/exif"
	"github.com/bstardust/exifgps/internal/logger"
	"github.com/bstardust/exifgps/internal/metadata"
	"github.com/bstardust/exifgps/internal/render"
	"github.com/spf13/cobra"
)

// app carries the configuration resolved before a command runs
type app struct {
	configPath string
	cfg        *config.Config
}

func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interruption signals
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalCh
		logger.Info("Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		logger.Error("Error executing command: %v", err)
		os.Exit(1)
	}
}

// NewRootCommand builds the exifgps command tree
func NewRootCommand() *cobra.Command {
	a := &app{}
	defaults := config.New()

	rootCmd := &cobra.Command{
		Use:   "exifgps <image>",
		Short: "Print the GPS metadata embedded in an image",
		Long: `exifgps reads the EXIF GPS tags of an image and prints its location as decimal
degrees, a Google Maps link, the altitude and the GPS timestamp.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShow(cmd, args[0])
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to a configuration file (yaml, toml or json)")
	flags.String("log-level", defaults.LogLevel, "Log level (debug, info, warn, error)")
	flags.String("backend", defaults.Backend, fmt.Sprintf("EXIF decoder backend %v", exif.Backends()))
	flags.String("format", defaults.Format, "Output format (text, lines, json)")

	// Add commands
	rootCmd.AddCommand(a.newScanCommand())

	return rootCmd
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.SetLevel(cfg.LogLevel)
	a.cfg = cfg
	return nil
}

func (a *app) runShow(cmd *cobra.Command, path string) error {
	decoder, err := exif.NewDecoder(a.cfg.Backend)
	if err != nil {
		return err
	}

	record, ok := metadata.NewExtractor(decoder).ExtractFile(path)
	if !ok {
		fmt.Fprintf(cmd.ErrOrStderr(), "No EXIF metadata found in %s\n", path)
		return nil
	}

	out := cmd.OutOrStdout()
	switch a.cfg.Format {
	case config.FormatLines:
		return render.WriteLines(out, record)
	case config.FormatJSON:
		return render.WriteJSON(out, record)
	default:
		return render.WriteConsole(out, record)
	}
}
