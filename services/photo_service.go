package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"skillswap_server/logger"
)

// PhotoService issues presigned S3 URLs for profile photo uploads and reads
type PhotoService struct {
	Presigner *s3.PresignClient
	Bucket    string
}

// NewPhotoService builds the S3 presign client from the ambient AWS config
func NewPhotoService(region, bucket string) *PhotoService {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		logger.Fatalf("Failed to load AWS config: %v", err)
	}
	return &PhotoService{
		Presigner: s3.NewPresignClient(s3.NewFromConfig(cfg)),
		Bucket:    bucket,
	}
}

// GenerateUploadURL returns a presigned PUT URL and the object key it targets
func (s *PhotoService) GenerateUploadURL(ctx context.Context, fileName, fileType string) (string, string, error) {
	key := fmt.Sprintf("profile-photos/%s-%s", time.Now().Format("20060102150405"), fileName)
	request, err := s.Presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", "", fmt.Errorf("failed to presign upload: %w", err)
	}
	return request.URL, key, nil
}

// GenerateReadURL returns a presigned GET URL for a stored photo
func (s *PhotoService) GenerateReadURL(ctx context.Context, key string) (string, error) {
	request, err := s.Presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", fmt.Errorf("failed to presign read: %w", err)
	}
	return request.URL, nil
}
