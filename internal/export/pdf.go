package export

import (
	"bytes"
	"image"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// encodePDF writes a single page the size of img, in points at 72 dpi, with
// the image filling it.
func encodePDF(w io.Writer, img image.Image) error {
	b := img.Bounds()
	wd, ht := float64(b.Dx()), float64(b.Dy())
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: wd, Ht: ht},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.SetCreator("snacktime", true)
	p.AddPage()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("canvas", opts, &buf)
	p.ImageOptions("canvas", 0, 0, wd, ht, false, opts, 0, "")
	return p.Output(w)
}
