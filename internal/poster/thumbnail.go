package poster

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

// Thumbnail dimensions match a spreadsheet row of ~120 points.
const (
	ThumbnailWidth  = 90
	ThumbnailHeight = 135
)

// Thumbnail downscales a poster to fit the thumbnail box, preserving the
// aspect ratio, and re-encodes it as JPEG.
func Thumbnail(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode poster: %w", err)
	}

	thumb := imaging.Fit(img, ThumbnailWidth, ThumbnailHeight, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	return buf.Bytes(), nil
}
