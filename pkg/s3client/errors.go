package s3client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
)

// ErrBucketNotFound is returned by New when the configured bucket is missing
var ErrBucketNotFound = errors.New("bucket not found")

// IsNotFoundError checks if an error is a "not found" error
func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrBucketNotFound) {
		return true
	}

	switch errorCode(err) {
	case "NoSuchBucket", "NoSuchKey", "NotFound":
		return true
	}
	return false
}

// IsAuthError checks if an error is an authentication error
func IsAuthError(err error) bool {
	switch errorCode(err) {
	case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch", "AuthorizationHeaderMalformed":
		return true
	}
	return false
}

// IsRetryable reports whether a failed request is worth repeating
func IsRetryable(err error) bool {
	if err == nil || errors.Is(err, ErrBucketNotFound) {
		return false
	}

	switch errorCode(err) {
	case "RequestTimeout", "RequestTimeTooSkewed", "InternalError", "SlowDown",
		"OperationAborted", "ServiceUnavailable", "RequestLimitExceeded":
		return true
	case "":
	default:
		return false
	}

	// No S3 error code: look for transport failures
	msg := strings.ToLower(err.Error())
	for _, s := range []string{"timeout", "connection", "reset", "broken pipe", "unavailable"} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}

// FormatError formats an error for display
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	var minioErr minio.ErrorResponse
	if errors.As(err, &minioErr) {
		return fmt.Sprintf("S3 error: %s (code: %s)", minioErr.Message, minioErr.Code)
	}

	return err.Error()
}

func errorCode(err error) string {
	var minioErr minio.ErrorResponse
	if errors.As(err, &minioErr) {
		return minioErr.Code
	}
	return ""
}
