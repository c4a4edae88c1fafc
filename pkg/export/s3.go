package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the subset of *s3.Client used by S3Target.
type S3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Target uploads files to a bucket.
type S3Target struct {
	client S3API
	bucket string
	prefix string

	// CacheControl, if set, is sent with every object.
	CacheControl string
}

// NewS3Target creates a target that stores key under prefix+key in bucket.
func NewS3Target(client S3API, bucket, prefix string) *S3Target {
	return &S3Target{client: client, bucket: bucket, prefix: prefix}
}

// Put uploads one file.
func (t *S3Target) Put(ctx context.Context, key string, data []byte) error {
	in := &s3.PutObjectInput{
		Bucket:        aws.String(t.bucket),
		Key:           aws.String(t.prefix + key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType(key)),
	}
	if t.CacheControl != "" {
		in.CacheControl = aws.String(t.CacheControl)
	}
	if _, err := t.client.PutObject(ctx, in); err != nil {
		return fmt.Errorf("s3 put %s/%s: %w", t.bucket, t.prefix+key, err)
	}
	return nil
}

func contentType(key string) string {
	if strings.HasSuffix(key, ".html") {
		return "text/html; charset=utf-8"
	}
	return "application/octet-stream"
}

// S3Config describes how to reach the bucket.
type S3Config struct {
	Region string

	// Endpoint overrides the AWS endpoint, for S3 compatible stores.
	Endpoint string

	// PathStyle addresses buckets as endpoint/bucket instead of a subdomain.
	PathStyle bool
}

// NewS3Client builds a client that reads static credentials from the
// AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN variables.
func NewS3Client(cfg S3Config) (*s3.Client, error) {
	if cfg.Region == "" {
		cfg.Region = os.Getenv("AWS_REGION")
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("s3: no region configured")
	}

	opts := s3.Options{
		Region:       cfg.Region,
		Credentials:  aws.NewCredentialsCache(envCredentials{}),
		UsePathStyle: cfg.PathStyle,
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	return s3.New(opts), nil
}

type envCredentials struct{}

func (envCredentials) Retrieve(context.Context) (aws.Credentials, error) {
	id, secret := os.Getenv("AWS_ACCESS_KEY_ID"), os.Getenv("AWS_SECRET_ACCESS_KEY")
	if id == "" || secret == "" {
		return aws.Credentials{}, fmt.Errorf("s3: AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
	}
	return aws.Credentials{
		AccessKeyID:     id,
		SecretAccessKey: secret,
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "environment",
	}, nil
}
