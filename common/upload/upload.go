// Package upload is the transient store for request-scoped image uploads.
// Files are acquired here and must be released with Cleanup on every exit
// path of the request handler.
package upload

import (
	"context"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/nanoedit/nanoedit/common/config"
	"github.com/nanoedit/nanoedit/common/image"
	"github.com/nanoedit/nanoedit/common/logger"
	"github.com/nanoedit/nanoedit/common/random"
)

var (
	ErrTooManyFiles       = errors.New("too many files")
	ErrFileTooLarge       = errors.New("file too large")
	ErrUnexpectedFileType = errors.New("unexpected file type")
)

// UploadedFile is a handle to one transiently stored upload. The path is
// owned exclusively by the request that received the upload.
type UploadedFile struct {
	Path         string
	ContentType  string
	Size         int64
	OriginalName string
}

func storeDir() string {
	return filepath.Join(os.TempDir(), "nanoedit-uploads")
}

// SaveAll persists every attachment under the form field to the transient
// store. On error the already-saved handles are still returned so the caller
// can release them; validation failures short-circuit before any remote call.
func SaveAll(ctx context.Context, headers []*multipart.FileHeader) ([]*UploadedFile, error) {
	if len(headers) > config.MaxUploadFiles {
		return nil, errors.Wrapf(ErrTooManyFiles, "got %d, limit is %d", len(headers), config.MaxUploadFiles)
	}
	var saved []*UploadedFile
	for _, fh := range headers {
		if fh.Size > config.MaxUploadBytes {
			return saved, errors.Wrapf(ErrFileTooLarge, "%s is %d bytes, limit is %d", fh.Filename, fh.Size, config.MaxUploadBytes)
		}
		contentType := fh.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			return saved, errors.Wrapf(ErrUnexpectedFileType, "%s declared %q", fh.Filename, contentType)
		}
		file, err := saveOne(fh, contentType)
		if err != nil {
			return saved, err
		}
		saved = append(saved, file)
		if config.DebugEnabled {
			if width, height, err := image.GetImageSizeFromFile(file.Path); err == nil {
				logger.Debugf(ctx, "stored upload %s (%s, %dx%d, %d bytes)", file.Path, contentType, width, height, file.Size)
			}
		}
	}
	return saved, nil
}

func saveOne(fh *multipart.FileHeader, contentType string) (*UploadedFile, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, errors.Wrap(err, "open upload")
	}
	defer src.Close()
	dir := storeDir()
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create upload dir")
	}
	path := filepath.Join(dir, random.GetUUID()+filepath.Ext(fh.Filename))
	dst, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "create upload file")
	}
	written, err := io.Copy(dst, src)
	closeErr := dst.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return nil, errors.Wrap(err, "write upload file")
	}
	return &UploadedFile{
		Path:         path,
		ContentType:  contentType,
		Size:         written,
		OriginalName: fh.Filename,
	}, nil
}

// Cleanup removes every transient file. Removal failures are swallowed:
// cleanup never blocks the response and repeated calls are no-ops.
func Cleanup(files []*UploadedFile) {
	for _, file := range files {
		if file == nil {
			continue
		}
		_ = os.Remove(file.Path)
	}
}
