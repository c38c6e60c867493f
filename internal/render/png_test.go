package render

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"strings"
	"testing"
)

func samplePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestEncode(t *testing.T) {
	shot := samplePNG(t)

	var out bytes.Buffer
	if err := encode(shot, FormatPNG, &out); err != nil || !bytes.Equal(out.Bytes(), shot) {
		t.Fatalf("png passthrough: %v", err)
	}

	out.Reset()
	if err := encode(shot, FormatJPEG, &out); err != nil {
		t.Fatal(err)
	}
	if _, err := jpeg.Decode(&out); err != nil {
		t.Fatalf("jpeg output: %v", err)
	}

	if err := encode(nil, FormatPNG, io.Discard); err == nil {
		t.Fatal("empty screenshot accepted")
	}
}

func TestSVGToImageRejectsFormat(t *testing.T) {
	err := SVGToImage(context.Background(), "<svg/>", "gif", io.Discard)
	if err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Fatalf("err = %v", err)
	}
}

func TestDataURI(t *testing.T) {
	uri := DataURI("<svg/>")
	b64, ok := strings.CutPrefix(uri, "data:image/svg+xml;base64,")
	if !ok {
		t.Fatalf("uri = %s", uri)
	}
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil || string(raw) != "<svg/>" {
		t.Fatalf("decoded %q %v", raw, err)
	}
}
