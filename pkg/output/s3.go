package output

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"mime"
	"path"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/disintegration/imaging"

	"github.com/df07/go-raycaster/pkg/config"
	"github.com/df07/go-raycaster/pkg/core"
)

// UploadTimeout bounds a single S3 upload
const UploadTimeout = 30 * time.Second

// ErrNoBucket is returned when an S3 sink is requested without a bucket
var ErrNoBucket = errors.New("no S3 bucket configured")

// S3Sink uploads encoded images to an S3-compatible bucket
type S3Sink struct {
	client s3iface.S3API
	bucket string
	prefix string
	logger core.Logger
}

// NewS3Sink creates a sink from the S3 configuration. Static credentials are
// used when an access key is set; otherwise the default AWS chain applies.
func NewS3Sink(cfg config.S3Config, logger core.Logger) (*S3Sink, error) {
	if !cfg.Enabled() {
		return nil, ErrNoBucket
	}

	awsConfig := &aws.Config{
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
	}
	if cfg.AccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}
	return newS3Sink(s3.New(sess), cfg.Bucket, cfg.Prefix, logger), nil
}

func newS3Sink(client s3iface.S3API, bucket, prefix string, logger core.Logger) *S3Sink {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &S3Sink{client: client, bucket: bucket, prefix: prefix, logger: logger}
}

// Key returns the object key a name is uploaded to
func (s *S3Sink) Key(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

// Save encodes the image and uploads it
func (s *S3Sink) Save(ctx context.Context, name string, img image.Image) error {
	format, err := imaging.FormatFromFilename(name)
	if err != nil {
		return fmt.Errorf("unsupported output format for %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format); err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	key := s.Key(name)
	size := int64(buf.Len())
	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(buf.Bytes()),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	s.logger.Printf("Uploaded %s to s3://%s (%d bytes)\n", key, s.bucket, size)
	return nil
}
