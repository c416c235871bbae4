package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"go.uber.org/zap"

	"github.com/schedule-assistant/soc-api/pkg/config"
)

const roleSessionName = "soc-api-reader"

// S3Store reads raw schedule blobs from the schedule bucket under a
// time-limited assumed-role credential obtained once at construction.
// There is no refresh-on-expiry; the process is expected to outlive it.
type S3Store struct {
	client *s3.Client
	bucket string
	logger *zap.Logger
}

// NewS3Store assumes the reader role and returns a store bound to the
// configured bucket. Role assumption failure is fatal.
func NewS3Store(ctx context.Context, cfg config.StoreConfig, logger *zap.Logger) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	stsClient := sts.NewFromConfig(awsCfg)
	assumed, err := stsClient.AssumeRole(ctx, &sts.AssumeRoleInput{
		RoleArn:         aws.String(cfg.ReaderRoleARN),
		RoleSessionName: aws.String(roleSessionName),
	})
	if err != nil {
		logger.Error("failed to assume reader role", zap.String("role", cfg.ReaderRoleARN), zap.Error(err))
		return nil, fmt.Errorf("assume role %s: %w", cfg.ReaderRoleARN, err)
	}

	creds := assumed.Credentials
	awsCfg.Credentials = credentials.NewStaticCredentialsProvider(
		aws.ToString(creds.AccessKeyId),
		aws.ToString(creds.SecretAccessKey),
		aws.ToString(creds.SessionToken),
	)

	return &S3Store{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.Bucket,
		logger: logger,
	}, nil
}

// Get returns the raw content addressed by key. A missing object is not an
// error: it yields (nil, nil) so callers can treat absence as an empty
// schedule. Transport and store failures are logged and propagated.
func (s *S3Store) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, nil
		}
		s.logger.Error("s3 get failed",
			zap.String("bucket", s.bucket),
			zap.String("key", key),
			zap.Error(err))
		return nil, fmt.Errorf("get object %s from bucket %s: %w", key, s.bucket, err)
	}
	defer out.Body.Close() //nolint:errcheck

	data, err := io.ReadAll(out.Body)
	if err != nil {
		s.logger.Error("s3 read failed", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("read object %s: %w", key, err)
	}

	return data, nil
}
