package s3client_test

import (
	"context"
	"os"
	"testing"
	"testing/fstest"
	"time"

	"github.com/bstardust/exifgps/internal/config"
	"github.com/bstardust/exifgps/internal/exif/exiftest"
	"github.com/bstardust/exifgps/internal/fshelper"
	"github.com/bstardust/exifgps/internal/metadata"
	"github.com/bstardust/exifgps/internal/uploader"
	"github.com/bstardust/exifgps/pkg/models"
	"github.com/bstardust/exifgps/pkg/s3client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Integration tests require a running S3-compatible server
// You can use MinIO in Docker for local testing:
// docker run -p 9000:9000 -p 9001:9001 minio/minio server /data --console-address ":9001"

func TestIntegrationPublish(t *testing.T) {
	// Skip if not in integration test mode
	if os.Getenv("INTEGRATION_TEST") != "true" {
		t.Skip("Skipping integration test. Set INTEGRATION_TEST=true to run")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	s3Client, err := s3client.New(ctx, s3client.Config{
		Endpoint:  getEnvOrDefault("TEST_S3_ENDPOINT", "localhost:9000"),
		Region:    getEnvOrDefault("TEST_S3_REGION", "us-east-1"),
		Bucket:    getEnvOrDefault("TEST_S3_BUCKET", "test-bucket"),
		AccessKey: getEnvOrDefault("TEST_S3_ACCESS_KEY", "minioadmin"),
		SecretKey: getEnvOrDefault("TEST_S3_SECRET_KEY", "minioadmin"),
		UseSSL:    os.Getenv("TEST_S3_USE_SSL") == "true",
		Prefix:    "integration-test",
	})
	require.NoError(t, err, "Failed to create S3 client")

	image := exiftest.New().
		ASCII(exiftest.GPSLatitudeRef, "N").
		Rationals(exiftest.GPSLatitude, [2]uint32{48, 1}, [2]uint32{51, 1}, [2]uint32{30, 1}).
		ASCII(exiftest.GPSLongitudeRef, "E").
		Rationals(exiftest.GPSLongitude, [2]uint32{2, 1}, [2]uint32{17, 1}, [2]uint32{40, 1}).
		TIFF()
	fsys := fshelper.NewDirFS(fstest.MapFS{"paris.tif": &fstest.MapFile{Data: image}}, "memory")

	record, ok := metadata.NewExtractor(nil).ExtractFromFile(fsys, "paris.tif")
	require.True(t, ok)

	cfg := config.New()
	cfg.Scan.SkipExisting = false
	up := uploader.New(ctx, s3Client, cfg)

	require.NoError(t, up.PublishImage(fsys, "paris.tif", record))
	report := models.NewReport(cfg.Backend, []models.Image{{Source: "memory", Path: "paris.tif", HasExif: true, GPS: record}})
	require.NoError(t, up.UploadReport(report))

	for _, key := range []string{uploader.ObjectKey(fsys, "paris.tif"), cfg.Scan.ReportKey} {
		exists, err := s3Client.ObjectExists(ctx, key)
		assert.NoError(t, err, "Failed to check if object exists")
		assert.True(t, exists, "Uploaded object %s does not exist in S3", key)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
