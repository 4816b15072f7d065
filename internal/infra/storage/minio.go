package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	domain "github.com/meddoc/relay/internal/domain/documents"
)

// MinioStore implements documents.ContentStore on a MinIO/S3 bucket. MinIO has
// no server-side media transformation, so PDF uploads are converted to their
// first-page image in-process before storage.
type MinioStore struct {
	client     *minio.Client
	bucketName string
	publicBase string
}

func NewMinioStore(ctx context.Context, endpoint, region, bucket, accessKey, secretKey string, useSSL bool, publicBase string) (*MinioStore, error) {
	cli, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
		Region: region,
	})
	if err != nil {
		return nil, err
	}

	// make sure the bucket exists
	exists, err := cli.BucketExists(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := cli.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return nil, err
		}
	}

	if publicBase == "" {
		scheme := "http"
		if useSSL {
			scheme = "https"
		}
		publicBase = fmt.Sprintf("%s://%s/%s", scheme, cli.EndpointURL().Host, bucket)
	}

	return &MinioStore{client: cli, bucketName: bucket, publicBase: strings.TrimSuffix(publicBase, "/")}, nil
}

// Upload stores the payload under folder/ and returns its public URL. A .pdf
// payload is replaced by its first-page image before storage; everything else
// is stored as-is with a sniffed content type.
func (s *MinioStore) Upload(ctx context.Context, up domain.Upload) (string, error) {
	data := up.Data
	filename := up.Filename

	if IsPDF(filename) {
		img, imgType, err := FirstPageImage(data)
		if err != nil {
			return "", fmt.Errorf("convert pdf first page: %w", err)
		}
		data = img
		filename = strings.TrimSuffix(filename, path.Ext(filename)) + "." + imgType
	}

	key := ObjectKey(up.Folder, filename)
	contentType := http.DetectContentType(data)

	_, err := s.client.PutObject(ctx, s.bucketName, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}

	// public URL (bucket must allow anonymous read)
	return fmt.Sprintf("%s/%s", s.publicBase, key), nil
}

// List returns public URLs for every object under folder/.
func (s *MinioStore) List(ctx context.Context, folder string) ([]string, error) {
	urls := []string{}
	for obj := range s.client.ListObjects(ctx, s.bucketName, minio.ListObjectsOptions{
		Prefix:    folder + "/",
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		urls = append(urls, fmt.Sprintf("%s/%s", s.publicBase, obj.Key))
	}
	return urls, nil
}

// Ping checks bucket reachability, used by the health endpoint.
func (s *MinioStore) Ping(ctx context.Context) error {
	_, err := s.client.BucketExists(ctx, s.bucketName)
	return err
}

// ObjectKey builds a collision-free object key that keeps the original
// extension so stored URLs stay type-recognizable.
func ObjectKey(folder, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), ext)
}

// IsPDF reports whether the declared filename carries a .pdf extension.
func IsPDF(filename string) bool {
	return strings.EqualFold(path.Ext(filename), ".pdf")
}
