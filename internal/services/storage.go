package services

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/minio/minio-go/v7"

	"vitrine_back_end/internal/database"
)

// StorageAvailable indique si MinIO est connecté. Sinon les images
// sont écrites sur le disque local.
func StorageAvailable() bool {
	return database.MinIO != nil
}

// UploadImage pousse une image vers MinIO et renvoie son URL publique
func UploadImage(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	bucket := os.Getenv("MINIO_BUCKET")
	_, err := database.MinIO.PutObject(ctx, bucket, objectName, r, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}

	publicBase := os.Getenv("MINIO_PUBLIC_URL")
	if publicBase == "" {
		publicBase = fmt.Sprintf("http://%s", os.Getenv("MINIO_ENDPOINT"))
	}
	return fmt.Sprintf("%s/%s/%s", publicBase, bucket, objectName), nil
}
