package s3client

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"slow down", fmt.Errorf("upload: %w", minio.ErrorResponse{Code: "SlowDown"}), true},
		{"access denied", minio.ErrorResponse{Code: "AccessDenied"}, false},
		{"connection reset", errors.New("read tcp: connection reset by peer"), true},
		{"canceled", context.Canceled, false},
		{"missing bucket", fmt.Errorf("bucket x: %w", ErrBucketNotFound), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestIsNotFoundError(t *testing.T) {
	assert.False(t, IsNotFoundError(nil))
	assert.True(t, IsNotFoundError(minio.ErrorResponse{Code: "NoSuchKey"}))
	assert.False(t, IsNotFoundError(errors.New("boom")))
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "", FormatError(nil))
	assert.Equal(t, "boom", FormatError(errors.New("boom")))
}
