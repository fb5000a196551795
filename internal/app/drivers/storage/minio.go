package storage

import (
	"context"
	"fmt"
	"log"
	"time"

	"healthease-client/internal/app/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// NewMinio connects to the object store that report files may be picked
// from and checks that the default upload bucket is reachable.
func NewMinio(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *minio.Client {
	endPoint := fmt.Sprintf("%s:%s", driverConfig.Minio.Host, driverConfig.Minio.Port)
	minioClient, err := minio.New(endPoint, &minio.Options{
		Creds:  credentials.NewStaticV4(driverConfig.Minio.Username, driverConfig.Minio.Password, ""),
		Secure: driverConfig.Minio.UseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize Minio Client: %s", err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := minioClient.BucketExists(ctx, internalConfig.Upload.DefaultBucket)
	if err != nil {
		log.Fatalf("Failed to reach minio bucket %s: %s", internalConfig.Upload.DefaultBucket, err.Error())
	}
	if !exists {
		log.Printf("Minio bucket %s does not exist, object uploads will fail", internalConfig.Upload.DefaultBucket)
	}

	log.Println("Successfully connected to minio")
	return minioClient
}
