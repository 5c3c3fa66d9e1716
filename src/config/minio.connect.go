package config

import (
	"fmt"
	"log"
	"os"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var (
	MinioClient *minio.Client
	BucketName  string
)

// ConnectMinio initializes the poster object store and makes sure the
// configured bucket exists.
func ConnectMinio() *minio.Client {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	accessKey := os.Getenv("MINIO_ACCESS_KEY")
	secretKey := os.Getenv("MINIO_SECRET_KEY")
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	BucketName = os.Getenv("MINIO_BUCKET")
	if BucketName == "" {
		BucketName = "cinemax-posters"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	exists, err := client.BucketExists(Ctx, BucketName)
	if err != nil {
		log.Printf("Could not check bucket %s: %v", BucketName, err)
	} else if !exists {
		if err := client.MakeBucket(Ctx, BucketName, minio.MakeBucketOptions{}); err != nil {
			log.Printf("Could not create bucket %s: %v", BucketName, err)
		}
	}

	MinioClient = client
	fmt.Println("MinIO connected, bucket:", BucketName)
	return client
}
