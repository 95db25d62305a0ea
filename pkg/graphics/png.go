package graphics

import (
	"image"
	"image/png"
	"io"
)

// EncodePNG writes img to w as a PNG, favoring speed over size since frames
// are regenerated continuously.
func EncodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	return enc.Encode(w, img)
}
