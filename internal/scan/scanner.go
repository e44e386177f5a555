package scan

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/bstardust/exifgps/internal/config"
	"github.com/bstardust/exifgps/internal/fshelper"
	"github.com/bstardust/exifgps/internal/logger"
	"github.com/bstardust/exifgps/internal/metadata"
	"github.com/bstardust/exifgps/internal/progress"
	"github.com/bstardust/exifgps/internal/worker"
	"github.com/bstardust/exifgps/pkg/common"
	"github.com/bstardust/exifgps/pkg/models"
	"github.com/bstardust/exifgps/pkg/s3client"
)

// Publisher receives every image that carries coordinates
type Publisher interface {
	PublishImage(fsys fshelper.NameFS, name string, record *metadata.Record) error
}

// Scanner extracts GPS records from every image in a set of sources
type Scanner struct {
	ctx       context.Context
	extractor *metadata.Extractor
	pool      *worker.Pool
	progress  *progress.Reporter
	config    *config.Config
	publisher Publisher

	mu     sync.Mutex
	images []models.Image
}

// New creates a new scanner
func New(ctx context.Context, extractor *metadata.Extractor, pool *worker.Pool, progress *progress.Reporter, cfg *config.Config) *Scanner {
	return &Scanner{
		ctx:       ctx,
		extractor: extractor,
		pool:      pool,
		progress:  progress,
		config:    cfg,
	}
}

// WithPublisher sets where GPS-tagged images are sent after extraction
func (s *Scanner) WithPublisher(p Publisher) *Scanner {
	s.publisher = p
	return s
}

type job struct {
	fsys fshelper.NameFS
	path string
}

// Run scans all sources and returns the report. Per-file failures are
// counted by the progress reporter and never abort the scan.
func (s *Scanner) Run(sources []fshelper.NameFS) (*models.Report, error) {
	var jobs []job
	for _, fsys := range sources {
		files, err := fshelper.ListImages(fsys)
		if err != nil {
			return nil, fmt.Errorf("failed to list images: %w", err)
		}
		for _, f := range files {
			jobs = append(jobs, job{fsys: fsys, path: f})
		}
	}

	s.images = nil
	s.progress.Start(len(jobs))

	for _, j := range jobs {
		// Check for cancellation
		select {
		case <-s.ctx.Done():
			s.pool.Wait()
			return nil, s.ctx.Err()
		default:
		}

		j := j
		s.pool.Submit(func() {
			s.process(j)
		})
	}

	s.pool.Wait()
	s.progress.Finish()

	if err := s.ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(s.images, func(a, b int) bool {
		if s.images[a].Source != s.images[b].Source {
			return s.images[a].Source < s.images[b].Source
		}
		return s.images[a].Path < s.images[b].Path
	})

	return models.NewReport(s.config.Backend, s.images), nil
}

func (s *Scanner) process(j job) {
	file, err := j.fsys.Open(j.path)
	if err != nil {
		s.progress.Error(j.path, common.NewScanError(fmt.Sprintf("%s: cannot open %s: %v", j.fsys.Name(), j.path, err)))
		return
	}
	record, err := s.extractor.ExtractFromReader(file)
	file.Close()

	img := models.Image{Source: j.fsys.Name(), Path: j.path}
	if err != nil {
		logger.Debug("No EXIF metadata in %s: %v", j.path, err)
		s.progress.Skip(j.path)
	} else {
		img.HasExif = true
		img.GPS = record
		s.progress.Complete(j.path, img.HasGPS())
	}

	if img.HasGPS() && s.publisher != nil {
		if err := s.publisher.PublishImage(j.fsys, j.path, record); err != nil {
			if s3client.IsAuthError(err) {
				logger.Error("Access denied publishing %s, check the S3 credentials: %s", j.path, s3client.FormatError(err))
			} else {
				logger.Error("Failed to publish %s: %s", j.path, s3client.FormatError(err))
			}
		}
	}

	if s.config.Scan.OnlyGPS && !img.HasGPS() {
		return
	}

	s.mu.Lock()
	s.images = append(s.images, img)
	s.mu.Unlock()
}
