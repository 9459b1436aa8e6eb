package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	// ErrNoBucket is returned when a publisher has no bucket configured.
	ErrNoBucket = errors.New("publish: bucket not configured")

	// ErrNoCredentials is returned by the environment credentials provider
	// when the access key variables are unset.
	ErrNoCredentials = errors.New("publish: AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")

	// ErrEmptyName is returned when Publish is called without an object name.
	ErrEmptyName = errors.New("publish: empty object name")
)

// PutObjectAPI is the part of the S3 client used by S3Publisher.
// *s3.Client satisfies it.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Publisher writes report bodies to a bucket under a key prefix.
type S3Publisher struct {
	client PutObjectAPI
	bucket string
	prefix string
	now    func() time.Time
}

// New creates a publisher. prefix may be empty; a trailing slash is added
// when missing.
func New(client PutObjectAPI, bucket, prefix string) *S3Publisher {
	prefix = strings.TrimLeft(prefix, "/")
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &S3Publisher{
		client: client,
		bucket: bucket,
		prefix: prefix,
		now:    time.Now,
	}
}

// Bucket returns the destination bucket.
func (p *S3Publisher) Bucket() string { return p.bucket }

// Key returns the object key name is stored under.
func (p *S3Publisher) Key(name string) string {
	return p.prefix + path.Base("/"+name)
}

// Publish uploads body as name and returns the s3:// URI of the object.
func (p *S3Publisher) Publish(ctx context.Context, name, contentType string, body []byte) (string, error) {
	if p.bucket == "" {
		return "", ErrNoBucket
	}
	if base := path.Base("/" + name); base == "/" || base == "." {
		return "", ErrEmptyName
	}

	key := p.Key(name)
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(contentType),
		Metadata: map[string]string{
			"generator":    "reportdemo",
			"publish-time": p.now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload failed: %w", err)
	}

	return "s3://" + p.bucket + "/" + key, nil
}

// EnvCredentials reads static credentials from the standard AWS
// environment variables.
var EnvCredentials = aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
	id := os.Getenv("AWS_ACCESS_KEY_ID")
	secret := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if id == "" || secret == "" {
		return aws.Credentials{}, ErrNoCredentials
	}
	return aws.Credentials{
		AccessKeyID:     id,
		SecretAccessKey: secret,
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "EnvCredentials",
	}, nil
})

// NewClient creates an S3 client for region using EnvCredentials. An empty
// region falls back to AWS_REGION, then us-east-1.
func NewClient(region string) *s3.Client {
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}
	if region == "" {
		region = "us-east-1"
	}
	return s3.NewFromConfig(aws.Config{
		Region:      region,
		Credentials: aws.NewCredentialsCache(EnvCredentials),
	})
}
