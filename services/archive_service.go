// services/archive_service.go
package services

import (
	"context"
	"fmt"
	"io"
	"path"

	"club-events/logger"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// Archiver keeps a copy of a generated certificate somewhere durable.
type Archiver interface {
	Archive(ctx context.Context, name string, body io.Reader) error
}

// uploader is the part of s3manager.Uploader we use.
type uploader interface {
	UploadWithContext(ctx aws.Context, input *s3manager.UploadInput, opts ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error)
}

// S3Archiver uploads certificates under a fixed prefix in one bucket.
type S3Archiver struct {
	bucket   string
	prefix   string
	uploader uploader
}

// NewS3Archiver builds an archiver using the default AWS credential chain.
func NewS3Archiver(bucket, region string) (*S3Archiver, error) {
	sess, err := session.NewSession(&aws.Config{Region: aws.String(region)})
	if err != nil {
		return nil, fmt.Errorf("create aws session: %w", err)
	}
	return &S3Archiver{
		bucket:   bucket,
		prefix:   "certificates",
		uploader: s3manager.NewUploader(sess),
	}, nil
}

// Archive uploads body as <prefix>/<name>.
func (a *S3Archiver) Archive(ctx context.Context, name string, body io.Reader) error {
	key := path.Join(a.prefix, name)
	out, err := a.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return fmt.Errorf("upload s3://%s/%s: %w", a.bucket, key, err)
	}
	logger.Info.Printf("Archive: uploaded certificate to %s", out.Location)
	return nil
}
