// Package certarchive keeps a JSON copy of every issued certificate in S3.
package certarchive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/skilldev/backend/cert/certevents"
	"github.com/skilldev/backend/logger"
)

type s3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

type S3Archive struct {
	client s3Client
	bucket string
	region string
}

func NewS3Archive(client s3Client, bucket, region string) *S3Archive {
	return &S3Archive{client: client, bucket: bucket, region: region}
}

func NewS3Client(ctx context.Context, region string) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return s3.NewFromConfig(cfg), nil
}

// Key is the object key a certificate record is stored under.
func Key(ev certevents.CertificateIssued) string {
	return fmt.Sprintf("certificates/%d/%s.json", ev.TraineeID, ev.CertificateCode)
}

// Store uploads the event unless the record already exists, so
// redelivered events are harmless. Returns the object URL.
func (a *S3Archive) Store(ctx context.Context, ev certevents.CertificateIssued) (string, error) {
	key := Key(ev)
	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, key)

	exists, err := a.exists(ctx, key)
	if err != nil {
		return "", err
	}
	if exists {
		logger.FromContext(ctx).Debug("certificate already archived", "key", key)
		return url, nil
	}

	content, err := json.MarshalIndent(ev, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal certificate record: %w", err)
	}

	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}
	return url, nil
}

func (a *S3Archive) exists(ctx context.Context, key string) (bool, error) {
	_, err := a.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var responseError *awshttp.ResponseError
		if errors.As(err, &responseError) && responseError.HTTPStatusCode() == http.StatusNotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to check object existence: %w", err)
	}
	return true, nil
}
