// Command upload-model publishes a classifier artifact to the object storage
// bucket the server loads it from at startup.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/agrosense/croprec-server/internal/classifier"
	"github.com/agrosense/croprec-server/internal/config"
	storage "github.com/agrosense/croprec-server/internal/storage/minio"
)

func main() {
	artifactPath := flag.String("artifact", "crop_recommendation.json", "path to the classifier artifact file")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	ctx := context.Background()

	file, err := os.Open(*artifactPath)
	if err != nil {
		log.Fatalf("failed to open artifact file: %v", err)
	}
	defer file.Close()

	// Validate before uploading so a malformed artifact never reaches the
	// bucket the server loads from.
	if _, err := classifier.Load(file); err != nil {
		log.Fatalf("artifact is not loadable: %v", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		log.Fatalf("failed to rewind artifact file: %v", err)
	}

	minioClient, err := minio.New(cfg.Model.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Model.AccessKey, cfg.Model.SecretKey, ""),
		Secure: cfg.Model.UseSSL,
	})
	if err != nil {
		log.Fatalf("failed to create minio client: %v", err)
	}

	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Model.Bucket)
	if err != nil {
		log.Fatalf("failed to initialize storage client: %v", err)
	}

	if err := storageClient.Upload(ctx, cfg.Model.ObjectName, file); err != nil {
		log.Fatalf("failed to upload artifact: %v", err)
	}

	log.Printf("uploaded %s to bucket %s as %s", *artifactPath, cfg.Model.Bucket, cfg.Model.ObjectName)
}
