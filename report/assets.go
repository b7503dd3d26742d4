package report

import (
	"bytes"
	"image"
	"image/png"
	"os"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/go-pdf/fpdf"
)

var signatureImageOptions = fpdf.ImageOptions{ImageType: "PNG"}

// signatureImage loads and registers the configured signature image.
// The image is fully decoded and re-encoded as PNG before registration so
// an unreadable or corrupt asset can never poison the document; failures
// report ok=false and the caller substitutes the text placeholder.
func (r *run) signatureImage() (name string, ok bool) {
	path := r.opts.SignatureImage
	if path == "" {
		return "", false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", false
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", false
	}

	r.pdf.RegisterImageOptionsReader("expert-signature", signatureImageOptions, &buf)
	if r.pdf.Err() {
		return "", false
	}
	return "expert-signature", true
}
