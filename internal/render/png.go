package render

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// DefaultTimeout bounds one headless browser run.
const DefaultTimeout = 60 * time.Second

// Formats accepted by SVGToImage.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpg"
)

// DataURI embeds svg as a base64 data URI the browser can navigate to.
func DataURI(svg string) string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}

// SVGToImage rasterises svg in headless Chrome by screenshotting its root
// element, then writes it to w as PNG or JPEG. Chrome must be installed.
func SVGToImage(ctx context.Context, svg, format string, w io.Writer) error {
	format = strings.ToLower(format)
	if format != FormatPNG && format != FormatJPEG && format != "jpeg" {
		return fmt.Errorf("render: unsupported format %q", format)
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultTimeout)
		defer cancel()
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Headless,
		chromedp.DisableGPU,
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	bctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	var shot []byte
	tasks := chromedp.Tasks{
		chromedp.Navigate(DataURI(svg)),
		chromedp.WaitVisible(`svg`, chromedp.ByQuery),
		chromedp.Screenshot(`svg`, &shot, chromedp.ByQuery),
	}
	if err := chromedp.Run(bctx, tasks); err != nil {
		return fmt.Errorf("render: chromedp: %w", err)
	}
	return encode(shot, format, w)
}

// encode writes a PNG screenshot in the requested format.
func encode(shot []byte, format string, w io.Writer) error {
	if len(shot) == 0 {
		return fmt.Errorf("render: empty screenshot")
	}
	switch format {
	case FormatPNG:
		_, err := io.Copy(w, bytes.NewReader(shot))
		return err
	case FormatJPEG, "jpeg":
		img, err := png.Decode(bytes.NewReader(shot))
		if err != nil {
			return fmt.Errorf("render: decode screenshot: %w", err)
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
	default:
		return fmt.Errorf("render: unsupported format %q", format)
	}
}
