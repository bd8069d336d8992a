package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"moviweb-backend/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// PosterService stores custom poster artwork in a MinIO/S3 bucket. OMDb
// posters stay on their upstream URLs; only user-uploaded posters live here.
type PosterService struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    *logrus.Logger
}

func NewPosterService(cfg *config.MinIOConfig, logger *logrus.Logger) (*PosterService, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
	}).Info("Poster storage initialized")

	service := &PosterService{
		client:    client,
		bucket:    cfg.BucketName,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
		logger:    logger,
	}

	if err := service.ensureBucket(context.Background()); err != nil {
		logger.WithError(err).Warn("Failed to configure poster bucket, continuing")
	}

	return service, nil
}

func (s *PosterService) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Poster bucket created")
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, s.bucket)

	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}
	return nil
}

// PresignUpload returns a short-lived PUT URL for the client to upload a
// poster directly, plus the public URL the movie record should store.
func (s *PosterService) PresignUpload(ctx context.Context, filename string) (string, string, error) {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filepath.Base(filename), ext)
	objectName := fmt.Sprintf("%s_%s%s", base, uuid.New().String()[:8], ext)

	presignedURL, err := s.client.PresignedPutObject(ctx, s.bucket, objectName, 15*time.Minute)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate presigned upload URL")
		return "", "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	publicURL := fmt.Sprintf("%s/%s", s.publicURL, objectName)

	s.logger.WithFields(logrus.Fields{
		"filename": filename,
		"object":   objectName,
	}).Info("Generated presigned poster upload URL")

	return presignedURL.String(), publicURL, nil
}

// Owns reports whether a poster URL points into our bucket, as opposed to an
// upstream OMDb poster we must not touch.
func (s *PosterService) Owns(posterURL string) bool {
	return posterURL != "" && strings.HasPrefix(posterURL, s.publicURL+"/")
}

// DeleteByURL removes a bucket-hosted poster object given its public URL.
func (s *PosterService) DeleteByURL(ctx context.Context, posterURL string) error {
	if !s.Owns(posterURL) {
		return fmt.Errorf("poster URL %q is not bucket-hosted", posterURL)
	}

	objectName := strings.TrimPrefix(posterURL, s.publicURL+"/")
	if idx := strings.Index(objectName, "?"); idx != -1 {
		objectName = objectName[:idx]
	}

	if err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		s.logger.WithError(err).WithField("object", objectName).Error("Failed to delete poster object")
		return fmt.Errorf("failed to delete poster: %w", err)
	}

	s.logger.WithField("object", objectName).Info("Poster object deleted")
	return nil
}
