package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"

	"github.com/minio/minio-go/v7"
)

// ImageStore stocke les images produit dans MinIO
type ImageStore struct {
	client   *minio.Client
	bucket   string
	endpoint string
}

func NewImageStore(client *minio.Client, bucket, endpoint string) *ImageStore {
	return &ImageStore{client: client, bucket: bucket, endpoint: endpoint}
}

// EnsureBucket crée le bucket s'il n'existe pas encore
func (s *ImageStore) EnsureBucket(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return err
		}
		log.Println("🪣 Bucket créé :", s.bucket)
	}
	return nil
}

// UploadProductImage envoie l'image d'un produit et retourne son URL publique
func (s *ImageStore) UploadProductImage(ctx context.Context, productID string, file *multipart.FileHeader) (string, error) {
	if s == nil || s.client == nil {
		return "", errors.New("MinIO non initialisé")
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	objectName := fmt.Sprintf("products/%s/%s", productID, file.Filename)
	_, err = s.client.PutObject(ctx, s.bucket, objectName, f, file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("http://%s/%s/%s", s.endpoint, s.bucket, objectName), nil
}
