package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/platefull/backend/config"
)

// ImageService stores recipe photos and completion-proof photos in S3.
type ImageService struct {
	s3Config *config.S3Config
}

// NewImageService creates a new ImageService instance
func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{s3Config: s3Config}
}

var _ IImageService = (*ImageService)(nil)

// RecipeImageKey builds the object key for a recipe photo.
func RecipeImageKey(contentType string) string {
	return fmt.Sprintf("recipe-images/%s%s", uuid.New(), extensionFor(contentType))
}

// ProofImageKey builds the object key for a completion-proof photo, scoped to
// the owning user and order.
func ProofImageKey(userID, orderID uuid.UUID, contentType string) string {
	return fmt.Sprintf("proofs/%s/%s/%s%s", userID, orderID, uuid.New(), extensionFor(contentType))
}

// Upload writes image data to S3 and returns the public URL.
func (s *ImageService) Upload(ctx context.Context, data []byte, key, contentType string) (string, error) {
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key)
	log.Printf("[ImageService] uploaded %s", publicURL)
	return publicURL, nil
}

// PresignedURL returns a time-limited download URL for an object.
func (s *ImageService) PresignedURL(ctx context.Context, key string, expiration time.Duration) (string, error) {
	return s.s3Config.GeneratePresignedURL(ctx, key, expiration)
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}
