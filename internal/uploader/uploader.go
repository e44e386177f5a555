package uploader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"sync"

	"github.com/bstardust/exifgps/internal/config"
	"github.com/bstardust/exifgps/internal/fileinfo"
	"github.com/bstardust/exifgps/internal/fshelper"
	"github.com/bstardust/exifgps/internal/journal"
	"github.com/bstardust/exifgps/internal/logger"
	"github.com/bstardust/exifgps/internal/metadata"
	"github.com/bstardust/exifgps/pkg/models"
	"github.com/bstardust/exifgps/pkg/s3client"
)

// Uploader publishes scan results to S3-compatible storage
type Uploader struct {
	ctx      context.Context
	s3Client s3client.S3Interface
	journal  *journal.Journal
	retry    RetryConfig
	config   *config.Config

	mu        sync.Mutex
	published map[string]string
}

// New creates a new Uploader
func New(ctx context.Context, s3Client s3client.S3Interface, cfg *config.Config) *Uploader {
	return &Uploader{
		ctx:       ctx,
		s3Client:  s3Client,
		retry:     DefaultRetryConfig(),
		config:    cfg,
		published: make(map[string]string),
	}
}

// WithRetry replaces the retry policy
func (u *Uploader) WithRetry(rc RetryConfig) *Uploader {
	u.retry = rc
	return u
}

// WithJournal records published images in j and skips those it already lists
func (u *Uploader) WithJournal(j *journal.Journal) *Uploader {
	u.journal = j
	return u
}

// UploadReport stores the report as a JSON object under the configured key
func (u *Uploader) UploadReport(report *models.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	key := u.config.Scan.ReportKey
	meta := map[string]string{
		"backend":     report.Backend,
		"image-count": strconv.Itoa(len(report.Images)),
		"gps-count":   strconv.Itoa(report.CountGPS()),
	}

	if u.config.Scan.DryRun {
		logger.Info("DRY RUN: Would upload report %s (%d bytes) to %s", key, len(data), u.s3Client.GetBucketName())
		return nil
	}

	err = RetryWithBackoff(u.ctx, "upload "+key, func() error {
		return u.s3Client.UploadFile(u.ctx, bytes.NewReader(data), key, int64(len(data)), meta, fileinfo.GetContentType(key))
	}, u.retry)
	if err != nil {
		return fmt.Errorf("failed to upload report: %w", err)
	}

	logger.Info("Uploaded report to %s/%s", u.s3Client.GetBucketName(), key)
	return nil
}

// ObjectKey returns the key an image is published under: the source
// label followed by the path inside the source.
func ObjectKey(fsys fshelper.NameFS, name string) string {
	return path.Join(fshelper.Label(fsys), name)
}

// claim reserves key for source, failing when another source already
// published the same key during this run
func (u *Uploader) claim(key, source string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if prev, ok := u.published[key]; ok && prev != source {
		return fmt.Errorf("object key %s from %s collides with %s", key, source, prev)
	}
	u.published[key] = source
	return nil
}

// PublishImage uploads one image with its GPS record as object metadata
func (u *Uploader) PublishImage(fsys fshelper.NameFS, name string, record *metadata.Record) error {
	key := ObjectKey(fsys, name)
	if err := u.claim(key, fsys.Name()); err != nil {
		return err
	}

	if u.journal != nil && u.journal.IsUploaded(key) {
		logger.Debug("Skipping %s, listed in journal", key)
		return nil
	}

	if u.config.Scan.SkipExisting {
		exists, err := u.s3Client.ObjectExists(u.ctx, key)
		if err != nil {
			logger.Warn("Failed to check if %s exists: %v", key, err)
		} else if exists {
			logger.Debug("Skipping %s, already uploaded", key)
			return nil
		}
	}

	info, err := fs.Stat(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}

	meta := record.ToMap()
	meta["original-filename"] = path.Base(name)
	contentType := fileinfo.GetContentType(name)

	if u.config.Scan.DryRun {
		logger.Info("DRY RUN: Would upload %s as %s (%d bytes, %s) with %d metadata fields",
			name, key, info.Size(), contentType, len(meta))
		return nil
	}

	// Each attempt reopens the file since a failed upload consumes the reader
	err = RetryWithBackoff(u.ctx, "upload "+key, func() error {
		file, err := fsys.Open(name)
		if err != nil {
			return fmt.Errorf("failed to open file: %w", err)
		}
		defer file.Close()

		return u.s3Client.UploadFile(u.ctx, file, key, info.Size(), meta, contentType)
	}, u.retry)
	if err != nil {
		return err
	}

	if u.journal != nil {
		u.journal.MarkUploaded(key, fsys.Name())
		if err := u.journal.Save(); err != nil {
			logger.Warn("Failed to save journal: %v", err)
		}
	}
	return nil
}
