package pdfio

import (
	"bytes"
	"image"
	"io"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// FirstPageImages extracts the embedded images of page 1 and decodes them.
// These are the branding candidates the logo matcher compares against
// reference logos; undecodable images are skipped. An empty slice is an
// expected outcome for text-only statements.
func FirstPageImages(data []byte) []image.Image {
	conf := pdfmodel.NewDefaultConfiguration()

	raw, err := api.ExtractImagesRaw(bytes.NewReader(data), []string{"1"}, conf)
	if err != nil {
		return nil
	}

	var images []image.Image
	for _, pageImages := range raw {
		for _, img := range pageImages {
			decoded, err := decodeImage(img)
			if err != nil {
				continue
			}
			images = append(images, decoded)
		}
	}
	return images
}

func decodeImage(img pdfmodel.Image) (image.Image, error) {
	payload, err := io.ReadAll(img)
	if err != nil {
		return nil, err
	}
	decoded, _, err := image.Decode(bytes.NewReader(payload))
	return decoded, err
}
