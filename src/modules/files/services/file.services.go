package files

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"path"
	"strings"
	"time"

	"cinemax/src/config"
	"cinemax/src/utils"

	"github.com/minio/minio-go/v7"
)

const posterCacheTTL = 6 * time.Hour

// FileService serves a stored poster, fronted by a Redis byte cache.
func FileService(filePath string) (io.Reader, int64, string, *utils.ServiceError) {
	objectKey := strings.TrimPrefix(filePath, "/")
	minioClient := config.MinioClient
	bucketName := config.BucketName
	cacheKey := "poster_cache:" + objectKey

	// 1. Try to get from Redis cache
	cached, err := config.RDB.Get(config.Ctx, cacheKey).Bytes()
	if err == nil && len(cached) > 0 {
		log.Printf("[CACHE HIT] %s", cacheKey)
		contentType := http.DetectContentType(cached)
		return bytes.NewReader(cached), int64(len(cached)), contentType, nil
	}
	log.Printf("[CACHE MISS] %s", cacheKey)

	// 2. Fall back to MinIO
	obj, err := minioClient.GetObject(context.Background(), bucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, "", &utils.ServiceError{
			StatusCode: http.StatusNotFound,
			Message:    fmt.Sprintf("object not found: %s", objectKey),
		}
	}
	stat, err := obj.Stat()
	if err != nil {
		return nil, 0, "", &utils.ServiceError{
			StatusCode: http.StatusNotFound,
			Message:    fmt.Sprintf("object not found: %s", objectKey),
		}
	}

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, 0, "", &utils.ServiceError{
			StatusCode: http.StatusInternalServerError,
			Message:    fmt.Sprintf("failed to read object: %s", objectKey),
		}
	}

	_ = config.RDB.Set(config.Ctx, cacheKey, data, posterCacheTTL).Err()
	return bytes.NewReader(data), int64(len(data)), stat.ContentType, nil
}

// UploadPoster stores an uploaded poster image and returns the public path
// to put on the movie row.
func UploadPoster(ctx context.Context, filename, contentType string, r io.Reader, size int64) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	objectKey := fmt.Sprintf("posters/%s%s", utils.GenerateID(), ext)

	_, err := config.MinioClient.PutObject(ctx, config.BucketName, objectKey, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to store poster: %w", err)
	}

	return "/api/v1/static/" + objectKey, nil
}

// StorePosterBytes writes already-downloaded poster bytes, used by the
// background mirror job.
func StorePosterBytes(ctx context.Context, objectKey, contentType string, data []byte) (string, error) {
	_, err := config.MinioClient.PutObject(ctx, config.BucketName, objectKey,
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("failed to store poster: %w", err)
	}
	return "/api/v1/static/" + objectKey, nil
}
