package s3

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	awss3 "github.com/aws/aws-sdk-go/service/s3"
)

// Config captures the settings for the object-storage client.
type Config struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	// Endpoint switches the client to a custom S3-compatible endpoint
	// (MinIO in local development). Empty means AWS.
	Endpoint   string
	DisableSSL bool
}

// Signer issues presigned upload/download URLs and deletes objects.
// It implements ports.StorageSigner.
type Signer struct {
	client *awss3.S3
	bucket string
}

func NewSigner(cfg Config) (*Signer, error) {
	awsCfg := &aws.Config{
		Region: aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
	}

	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
		awsCfg.S3ForcePathStyle = aws.Bool(true)
		if cfg.DisableSSL {
			awsCfg.DisableSSL = aws.Bool(true)
		}
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("aws session: %w", err)
	}

	return &Signer{client: awss3.New(sess), bucket: cfg.Bucket}, nil
}

// SignUpload returns a presigned PUT URL for a new object. Presigning is a
// local signature computation; no network call is made.
func (s *Signer) SignUpload(_ context.Context, key, contentType string, ttl time.Duration) (string, error) {
	req, _ := s.client.PutObjectRequest(&awss3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	})

	url, err := req.Presign(ttl)
	if err != nil {
		return "", fmt.Errorf("presign upload: %w", err)
	}
	return url, nil
}

// SignDownload returns a presigned GET URL for an existing object.
func (s *Signer) SignDownload(_ context.Context, key string, ttl time.Duration) (string, error) {
	req, _ := s.client.GetObjectRequest(&awss3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})

	url, err := req.Presign(ttl)
	if err != nil {
		return "", fmt.Errorf("presign download: %w", err)
	}
	return url, nil
}

// DeleteObject removes one object. Callers treat failures as non-fatal.
func (s *Signer) DeleteObject(ctx context.Context, key string) error {
	_, err := s.client.DeleteObjectWithContext(ctx, &awss3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}
