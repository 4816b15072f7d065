package storage

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// FirstPageImage extracts the image of page 1 from a PDF. Scanned forms embed
// the whole page as one raster image, which is exactly what the vision
// backends need. Returns the image bytes and file type ("png", "jpg", ...).
func FirstPageImage(pdfData []byte) ([]byte, string, error) {
	images, err := api.ExtractImagesRaw(bytes.NewReader(pdfData), []string{"1"}, model.NewDefaultConfiguration())
	if err != nil {
		return nil, "", err
	}

	for _, pageImages := range images {
		for _, img := range pageImages {
			data, err := io.ReadAll(img)
			if err != nil {
				return nil, "", err
			}
			return data, img.FileType, nil
		}
	}
	return nil, "", fmt.Errorf("pdf page 1 contains no image")
}
