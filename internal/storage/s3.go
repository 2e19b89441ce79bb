// Package storage persists evidence files in S3-compatible object
// storage and hands back the public URLs stored on datapoint entries.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"esrs-platform/internal/config"
)

// EvidenceStore uploads evidence attachments to an S3 bucket
type EvidenceStore struct {
	client        *s3.S3
	bucket        string
	publicBaseURL string
}

// NewEvidenceStore creates an S3-backed evidence store
func NewEvidenceStore(cfg *config.StorageConfig) (*EvidenceStore, error) {
	awsConfig := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	}
	if cfg.Endpoint != "" {
		// Non-AWS endpoints (MinIO and friends) need path-style addressing.
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	return &EvidenceStore{
		client:        s3.New(sess),
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}, nil
}

// Upload stores an evidence file under a timestamp-prefixed key scoped
// to the project and returns its public URL.
func (s *EvidenceStore) Upload(ctx context.Context, projectID uint, filename, contentType string, data io.ReadSeeker) (string, error) {
	key := fmt.Sprintf("projects/%d/%d_%s", projectID, time.Now().UnixMilli(), sanitizeFilename(filename))

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   data,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObjectWithContext(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload evidence: %w", err)
	}

	return s.publicURL(key), nil
}

// Delete removes an evidence object by key
func (s *EvidenceStore) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

func (s *EvidenceStore) publicURL(key string) string {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
}

// sanitizeFilename keeps only the base name and replaces characters
// that do not belong in an object key.
func sanitizeFilename(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, base)
}
