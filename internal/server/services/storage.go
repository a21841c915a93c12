package services

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	sc "github.com/dmitrijs2005/minutesfolio/internal/server/config"
	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}

	storageNow = time.Now
)

// ObjectStorage hands out presigned URLs for objects in the media bucket.
// The server never proxies file bytes.
type ObjectStorage interface {
	PresignUpload(ctx context.Context, key, contentType string) (string, time.Time, error)
	PresignDownload(ctx context.Context, key string) (string, error)
}

// S3Storage presigns against any S3-compatible backend (MinIO in
// development).
type S3Storage struct {
	config *sc.Config
}

func NewS3Storage(config *sc.Config) *S3Storage {
	return &S3Storage{config: config}
}

// NewStorageKey builds a date-partitioned, collision-free object key that
// keeps a readable form of the original file name.
func NewStorageKey(fileName string) string {
	d := storageNow()
	ext := strings.ToLower(path.Ext(fileName))
	base := slug.Make(strings.TrimSuffix(path.Base(fileName), path.Ext(fileName)))
	if base == "" {
		base = "file"
	}
	return fmt.Sprintf("media/%d/%02d/%02d/%v-%s%s", d.Year(), d.Month(), d.Day(), uuid.New(), base, ext)
}

func (s *S3Storage) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,     // MINIO_ROOT_USER
			s.config.S3RootPassword, // MINIO_ROOT_PASSWORD
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

func (s *S3Storage) PresignUpload(ctx context.Context, key, contentType string) (string, time.Time, error) {
	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return "", time.Time{}, err
	}

	in := &s3.PutObjectInput{
		Bucket: aws.String(s.config.S3Bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	expires := storageNow().Add(s.config.UploadURLExpiry)
	req, err := presignPutObject(presignClient, ctx, in, s3.WithPresignExpires(s.config.UploadURLExpiry))
	if err != nil {
		return "", time.Time{}, err
	}

	return req.URL, expires, nil
}

func (s *S3Storage) PresignDownload(ctx context.Context, key string) (string, error) {
	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return "", err
	}

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.config.S3Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.config.UploadURLExpiry))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
