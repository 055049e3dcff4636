package output

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"path"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// UploadTimeout bounds a single S3 upload
const UploadTimeout = 30 * time.Second

// S3Config holds the connection settings for an S3-compatible bucket
type S3Config struct {
	AccessKey string
	SecretKey string
	Endpoint  string // Empty for AWS itself
	Region    string
	Bucket    string
}

// S3Sink uploads the encoded image to a bucket
type S3Sink struct {
	client s3iface.S3API
	bucket string
	key    string
	format Format
	ctx    context.Context
}

// NewS3Client creates an S3 client using static credentials and path-style addressing
func NewS3Client(cfg S3Config) (*s3.S3, error) {
	awsConfig := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}
	return s3.New(sess), nil
}

// NewS3Sink creates a sink that stores the image under key. The format follows
// the key's extension.
func NewS3Sink(ctx context.Context, client s3iface.S3API, bucket, key string) (*S3Sink, error) {
	format, err := ParseFormat(path.Ext(key))
	if err != nil {
		return nil, fmt.Errorf("cannot choose format for %s: %w", key, err)
	}
	return &S3Sink{client: client, bucket: bucket, key: key, format: format, ctx: ctx}, nil
}

// WriteImage implements Sink
func (s *S3Sink) WriteImage(img image.Image) error {
	var buf bytes.Buffer
	if err := Encode(&buf, img, s.format); err != nil {
		return fmt.Errorf("failed to encode %s: %w", s.key, err)
	}

	ctx, cancel := context.WithTimeout(s.ctx, UploadTimeout)
	defer cancel()

	size := int64(buf.Len())
	_, err := s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.key),
		Body:          bytes.NewReader(buf.Bytes()),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(s.format.ContentType()),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", s.key, err)
	}

	return nil
}
