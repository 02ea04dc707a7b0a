package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// maxImageSize caps a single uploaded product image.
const maxImageSize = 5 << 20

var allowedImageExts = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// collectImageFiles gathers all files stored under the given form keys.
func collectImageFiles(form *multipart.Form, keys ...string) []*multipart.FileHeader {
	if form == nil {
		return nil
	}

	var result []*multipart.FileHeader
	for _, key := range keys {
		if headers, ok := form.File[key]; ok {
			result = append(result, headers...)
		}
	}
	return result
}

// imageContentType maps a file name to the stored content type, rejecting
// anything that is not a known image extension.
func imageContentType(fileName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	ct, ok := allowedImageExts[ext]
	if !ok {
		return "", fmt.Errorf("unsupported image type %q", ext)
	}
	return ct, nil
}

// imageObjectName builds the stored object name: a fresh uuid with the
// original extension, so uploads never collide or leak client file names.
func imageObjectName(fileName string) string {
	return uuid.New().String() + strings.ToLower(filepath.Ext(fileName))
}

func readImageFile(header *multipart.FileHeader) ([]byte, error) {
	if header.Size > maxImageSize {
		return nil, fmt.Errorf("image %q exceeds the size limit", header.Filename)
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(io.LimitReader(f, maxImageSize+1))
}
