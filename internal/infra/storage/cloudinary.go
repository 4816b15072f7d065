package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	domain "github.com/meddoc/relay/internal/domain/documents"
)

// CloudinaryStore implements documents.ContentStore on Cloudinary. Conversion
// happens server-side: a .pdf upload asks Cloudinary for a jpg of page 1,
// anything else is stored with Cloudinary's own type detection.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStore(cloudName, apiKey, apiSecret string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	cld.Config.URL.Secure = true
	return &CloudinaryStore{cld: cld}, nil
}

func (s *CloudinaryStore) Upload(ctx context.Context, up domain.Upload) (string, error) {
	params := uploader.UploadParams{
		Folder:       up.Folder,
		ResourceType: "image",
	}
	if IsPDF(up.Filename) {
		// first page only, delivered as an image
		params.Format = "jpg"
		params.Transformation = "pg_1"
	}

	res, err := s.cld.Upload.Upload(ctx, bytes.NewReader(up.Data), params)
	if err != nil {
		return "", err
	}
	if res.SecureURL == "" {
		return "", fmt.Errorf("cloudinary returned no secure_url")
	}
	return res.SecureURL, nil
}

func (s *CloudinaryStore) List(ctx context.Context, folder string) ([]string, error) {
	res, err := s.cld.Admin.Assets(ctx, admin.AssetsParams{
		AssetType:    api.Image,
		DeliveryType: "upload",
		Prefix:       folder + "/",
		MaxResults:   500,
	})
	if err != nil {
		return nil, err
	}

	urls := []string{}
	for _, asset := range res.Assets {
		urls = append(urls, asset.SecureURL)
	}
	return urls, nil
}

// Ping runs a cheap Admin API call, used by the health endpoint.
func (s *CloudinaryStore) Ping(ctx context.Context) error {
	_, err := s.cld.Admin.Ping(ctx)
	return err
}
