package export

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Archiver stores a copy of an exported report and returns a download URL.
type Archiver interface {
	Archive(ctx context.Context, profileID, filename string, body []byte) (string, error)
}

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type objectPresigner interface {
	PresignGetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// PresignExpiry is how long an archived report link stays valid.
const PresignExpiry = time.Hour

// S3Archiver writes reports to an S3 bucket under reports/<profile>/.
type S3Archiver struct {
	Bucket    string
	client    objectPutter
	presigner objectPresigner
}

// NewS3Archiver loads the default AWS configuration for region.
func NewS3Archiver(ctx context.Context, bucket, region string) (*S3Archiver, error) {
	opts := []func(*config.LoadOptions) error{}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config: %w", err)
	}
	client := s3.NewFromConfig(cfg)
	return &S3Archiver{Bucket: bucket, client: client, presigner: s3.NewPresignClient(client)}, nil
}

func (a *S3Archiver) Archive(ctx context.Context, profileID, filename string, body []byte) (string, error) {
	key := path.Join("reports", profileID, filename)
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload report to S3: %w", err)
	}

	req, err := a.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(PresignExpiry))
	if err != nil {
		return "", fmt.Errorf("failed to sign report URL: %w", err)
	}
	return req.URL, nil
}
