package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	maxPhotoSize  = 5 * 1024 * 1024
	photoMaxWidth = 640
	photoQuality  = 80
)

var filenameRe = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(name string) string {
	name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	name = filenameRe.ReplaceAllString(name, "_")
	if name == "" {
		name = "foto"
	}
	return name
}

// SavePhoto buffers the uploaded image fully, re-encodes it as webp bounded
// to photoMaxWidth and writes it under <publicDir>/<folder> as
// "<unixMillis>-<name>.webp". Returns the path relative to publicDir.
func SavePhoto(publicDir, folder string, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > maxPhotoSize {
		return "", fmt.Errorf("image larger than %dKB", maxPhotoSize/1024)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, src); err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		// webp uploads are not covered by image.Decode's registered formats
		img, err = webp.Decode(bytes.NewReader(buf.Bytes()))
		if err != nil {
			return "", fmt.Errorf("unsupported image: %w", err)
		}
	}

	if img.Bounds().Dx() > photoMaxWidth {
		img = imaging.Resize(img, photoMaxWidth, 0, imaging.Lanczos)
	}

	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Quality: photoQuality}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	rel := filepath.Join(folder, fmt.Sprintf("%d-%s.webp", time.Now().UnixMilli(), sanitizeFilename(fileHeader.Filename)))
	abs := filepath.Join(publicDir, rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", fmt.Errorf("mkdir: %w", err)
	}
	if err := os.WriteFile(abs, out.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write photo: %w", err)
	}
	return rel, nil
}

// RemovePhoto deletes a previously stored photo; a missing file is not an
// error (the record may predate the upload dir move).
func RemovePhoto(publicDir, rel string) error {
	if strings.TrimSpace(rel) == "" {
		return nil
	}
	err := os.Remove(filepath.Join(publicDir, rel))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
