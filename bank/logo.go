package bank

import (
	"image"
	"math"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// matchThreshold is the minimum normalized correlation score accepted as a
// logo match.
const matchThreshold = 0.6

// maxLogoSize caps the comparison resolution; reference logos larger than
// this are downscaled proportionally before correlation.
const maxLogoSize = 200

// ReferenceLogo is one known bank logo loaded from the logo directory.
type ReferenceLogo struct {
	Name  string
	Image image.Image
}

// LoadReferenceLogos loads every decodable image in dir as a reference
// logo, named after its file stem. A missing directory yields no logos and
// no error; logo matching is an optional capability.
func LoadReferenceLogos(dir string) []ReferenceLogo {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var logos []ReferenceLogo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		f, err := os.Open(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		logos = append(logos, ReferenceLogo{Name: name, Image: img})
	}
	return logos
}

// MatchLogo correlates a candidate image against each reference logo and
// returns the best-scoring name when its normalized correlation exceeds the
// acceptance threshold.
func MatchLogo(candidate image.Image, refs []ReferenceLogo) (string, bool) {
	candGray := grayscale(candidate)

	bestScore := 0.0
	bestName := ""
	for _, ref := range refs {
		refGray := downscale(grayscale(ref.Image), maxLogoSize)
		resized := resizeTo(candGray, refGray.Bounds().Dx(), refGray.Bounds().Dy())

		score := normalizedCorrelation(resized, refGray)
		if score > bestScore {
			bestScore = score
			bestName = ref.Name
		}
	}

	if bestScore > matchThreshold {
		return bestName, true
	}
	return "", false
}

func grayscale(src image.Image) *image.Gray {
	if g, ok := src.(*image.Gray); ok {
		return g
	}
	bounds := src.Bounds()
	dst := image.NewGray(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	return dst
}

// downscale shrinks img proportionally so neither side exceeds maxSide.
// Images already small enough are returned as-is.
func downscale(img *image.Gray, maxSide int) *image.Gray {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	if w <= maxSide && h <= maxSide {
		return img
	}

	scale := math.Min(float64(maxSide)/float64(w), float64(maxSide)/float64(h))
	return resizeTo(img, int(float64(w)*scale), int(float64(h)*scale))
}

func resizeTo(img *image.Gray, w, h int) *image.Gray {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if img.Bounds().Dx() == w && img.Bounds().Dy() == h {
		return img
	}
	dst := image.NewGray(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// normalizedCorrelation computes the zero-mean normalized cross-correlation
// of two equally sized grayscale images. 1.0 is a perfect match; values
// near zero mean no similarity.
func normalizedCorrelation(a, b *image.Gray) float64 {
	if a.Bounds().Dx() != b.Bounds().Dx() || a.Bounds().Dy() != b.Bounds().Dy() {
		return 0
	}

	n := a.Bounds().Dx() * a.Bounds().Dy()
	if n == 0 {
		return 0
	}

	var sumA, sumB float64
	forEachPixel(a, b, func(pa, pb float64) {
		sumA += pa
		sumB += pb
	})
	meanA := sumA / float64(n)
	meanB := sumB / float64(n)

	var num, denomA, denomB float64
	forEachPixel(a, b, func(pa, pb float64) {
		da := pa - meanA
		db := pb - meanB
		num += da * db
		denomA += da * da
		denomB += db * db
	})

	denom := math.Sqrt(denomA * denomB)
	if denom == 0 {
		return 0
	}
	return num / denom
}

func forEachPixel(a, b *image.Gray, fn func(pa, pb float64)) {
	w := a.Bounds().Dx()
	h := a.Bounds().Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pa := float64(a.GrayAt(a.Bounds().Min.X+x, a.Bounds().Min.Y+y).Y)
			pb := float64(b.GrayAt(b.Bounds().Min.X+x, b.Bounds().Min.Y+y).Y)
			fn(pa, pb)
		}
	}
}
