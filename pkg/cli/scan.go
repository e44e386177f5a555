package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bstardust/exifgps/internal/config"
	"github.com/bstardust/exifgps/internal/exif"
	"github.com/bstardust/exifgps/internal/fshelper"
	"github.com/bstardust/exifgps/internal/journal"
	"github.com/bstardust/exifgps/internal/logger"
	"github.com/bstardust/exifgps/internal/metadata"
	"github.com/bstardust/exifgps/internal/progress"
	"github.com/bstardust/exifgps/internal/render"
	"github.com/bstardust/exifgps/internal/scan"
	"github.com/bstardust/exifgps/internal/uploader"
	"github.com/bstardust/exifgps/internal/worker"
	"github.com/bstardust/exifgps/pkg/models"
	"github.com/bstardust/exifgps/pkg/s3client"
	"github.com/spf13/cobra"
)

func (a *app) newScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [flags] <dir> | <archive.zip> | <glob>...",
		Short: "Extract GPS metadata from many images into a JSON report",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runScan(cmd, args)
		},
	}
	defaults := config.New()

	// Scan options
	cmd.Flags().IntP("concurrency", "c", defaults.Scan.Concurrency, "Number of files decoded at once")
	cmd.Flags().Bool("only-gps", defaults.Scan.OnlyGPS, "Only report images that carry coordinates")
	cmd.Flags().StringP("output", "o", defaults.Scan.Output, "Write the report to this file instead of stdout")
	cmd.Flags().Duration("timeout", defaults.Scan.Timeout, "Abort the scan after this long (0 disables)")

	// Upload options
	cmd.Flags().Bool("upload", defaults.Scan.Upload, "Upload the report to the S3 bucket")
	cmd.Flags().Bool("upload-images", defaults.Scan.UploadImages, "Upload images with coordinates, GPS fields as object metadata")
	cmd.Flags().Bool("skip-existing", defaults.Scan.SkipExisting, "Skip images that already exist in the bucket")
	cmd.Flags().Bool("dry-run", defaults.Scan.DryRun, "Log uploads without performing them")
	cmd.Flags().String("report-key", defaults.Scan.ReportKey, "Object key of the uploaded report")
	cmd.Flags().String("journal", defaults.Scan.Journal, "Journal file for resumable image uploads")

	// S3 connection flags
	cmd.Flags().String("endpoint", defaults.S3.Endpoint, "S3 endpoint URL")
	cmd.Flags().String("region", defaults.S3.Region, "S3 region")
	cmd.Flags().String("bucket", defaults.S3.Bucket, "S3 bucket name")
	cmd.Flags().String("access-key", defaults.S3.AccessKey, "S3 access key")
	cmd.Flags().String("secret-key", defaults.S3.SecretKey, "S3 secret key")
	cmd.Flags().Bool("use-ssl", defaults.S3.UseSSL, "Use SSL for S3 connection")
	cmd.Flags().String("prefix", defaults.S3.Prefix, "Prefix for S3 object keys")

	return cmd
}

func (a *app) runScan(cmd *cobra.Command, args []string) error {
	cfg := a.cfg

	ctx := cmd.Context()
	if cfg.Scan.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Scan.Timeout)
		defer cancel()
	}

	sources, err := fshelper.ParsePath(args)
	if err != nil {
		return err
	}
	defer fshelper.CloseAll(sources)

	decoder, err := exif.NewDecoder(cfg.Backend)
	if err != nil {
		return err
	}

	scanner := scan.New(ctx, metadata.NewExtractor(decoder), worker.NewPool(cfg.Scan.Concurrency), progress.New(), cfg)

	var up *uploader.Uploader
	if cfg.Scan.Upload || cfg.Scan.UploadImages {
		// Initialize S3 client
		s3Client, err := s3client.New(ctx, s3client.Config{
			Endpoint:  cfg.S3.Endpoint,
			Region:    cfg.S3.Region,
			Bucket:    cfg.S3.Bucket,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			UseSSL:    cfg.S3.UseSSL,
			Prefix:    cfg.S3.Prefix,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
		logger.Info("Publishing to %s/%s on %s", s3Client.GetBucketName(), s3Client.GetPrefix(), s3Client.GetEndpoint())

		up = uploader.New(ctx, s3Client, cfg)
		if cfg.Scan.UploadImages {
			scanner.WithPublisher(up)
		}

		if cfg.Scan.UploadImages && cfg.Scan.Journal != "" {
			jnl := journal.New(cfg.Scan.Journal)
			if err := jnl.Load(); err != nil {
				logger.Warn("Could not load journal: %v", err)
			}
			up.WithJournal(jnl)
			defer func() {
				if err := jnl.Flush(); err != nil {
					logger.Error("Failed to save journal: %v", err)
				}
			}()
		}
	}

	report, err := scanner.Run(sources)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if err := a.writeReport(cmd.OutOrStdout(), report); err != nil {
		return err
	}

	if cfg.Scan.Upload {
		if err := up.UploadReport(report); err != nil {
			return fmt.Errorf("failed to upload report: %w", err)
		}
	}
	return nil
}

func (a *app) writeReport(stdout io.Writer, report *models.Report) error {
	if a.cfg.Scan.Output == "" {
		return render.WriteJSON(stdout, report)
	}

	f, err := os.Create(a.cfg.Scan.Output)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	if err := render.WriteJSON(f, report); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}
	logger.Info("Report written to %s", a.cfg.Scan.Output)
	return nil
}
