package file

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // registers PNG decoding
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/pemda-presensi/presensi-backend-go/internal/pkg/storage"
)

// Proof photos wider than this get scaled down before storage.
const maxProofWidth = 1024

type FileService interface {
	// UploadIzinProof stores a leave proof photo and returns its storage
	// path.
	UploadIzinProof(ctx context.Context, idPegawai int64, file io.Reader, filename string) (string, error)

	// UploadKegiatanProof stores an activity-report photo and returns its
	// storage path.
	UploadKegiatanProof(ctx context.Context, idPegawai int64, file io.Reader, filename string) (string, error)

	DeleteFile(ctx context.Context, path string) error
	GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{storage: storage}
}

func (s *fileServiceImpl) UploadIzinProof(ctx context.Context, idPegawai int64, file io.Reader, filename string) (string, error) {
	return s.uploadProof(ctx, "izin", idPegawai, file, filename)
}

func (s *fileServiceImpl) UploadKegiatanProof(ctx context.Context, idPegawai int64, file io.Reader, filename string) (string, error) {
	return s.uploadProof(ctx, "kegiatan", idPegawai, file, filename)
}

func (s *fileServiceImpl) uploadProof(ctx context.Context, dir string, idPegawai int64, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png":
	default:
		return "", fmt.Errorf("invalid file type %s, only jpg/jpeg/png allowed", ext)
	}

	processed, err := normalizeImage(file)
	if err != nil {
		return "", fmt.Errorf("failed to process image: %w", err)
	}

	path := fmt.Sprintf("%s/%d/%s.jpg", dir, idPegawai, uuid.New().String())
	storedPath, err := s.storage.Upload(ctx, processed, path, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("failed to upload %s proof: %w", dir, err)
	}
	return storedPath, nil
}

func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

func (s *fileServiceImpl) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return s.storage.GetURL(ctx, path, expiry)
}

// normalizeImage decodes the upload, scales it down when it exceeds the
// width cap, and re-encodes as JPEG.
func normalizeImage(file io.Reader) (io.Reader, error) {
	src, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := src.Bounds()
	if bounds.Dx() > maxProofWidth {
		ratio := float64(maxProofWidth) / float64(bounds.Dx())
		height := int(float64(bounds.Dy()) * ratio)
		dst := image.NewRGBA(image.Rect(0, 0, maxProofWidth, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return &buf, nil
}
