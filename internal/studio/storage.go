package studio

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"brandstudio/internal"

	"github.com/google/uuid"
)

// FileStorage defines the interface for upload storage operations
type FileStorage interface {
	Store(ctx context.Context, file multipart.File, filename string) (string, error)
	GetReader(ctx context.Context, filePath string) (io.ReadCloser, error)
	Delete(ctx context.Context, filePath string) error
	Exists(ctx context.Context, filePath string) (bool, error)
}

// LocalFileStorage implements FileStorage using the local filesystem
type LocalFileStorage struct {
	basePath  string
	chunkSize int
	logger    *internal.Logger
}

// NewLocalFileStorage creates a new local file storage instance
func NewLocalFileStorage(basePath string) *LocalFileStorage {
	if basePath == "" {
		basePath = "uploads/exports"
	}
	return &LocalFileStorage{
		basePath:  basePath,
		chunkSize: 1024 * 1024,
		logger:    internal.NewDefaultLogger(),
	}
}

// Store saves a file to the local filesystem with a unique name
func (s *LocalFileStorage) Store(ctx context.Context, file multipart.File, filename string) (string, error) {
	if err := os.MkdirAll(s.basePath, 0755); err != nil {
		return "", fmt.Errorf("failed to create storage directory: %w", err)
	}

	// Unique name prevents conflicts between same-named exports
	ext := filepath.Ext(filename)
	baseName := filename[:len(filename)-len(ext)]
	timestamp := time.Now().Format("20060102_150405")
	uniqueName := fmt.Sprintf("%s_%s_%s%s", baseName, timestamp, uuid.New().String()[:8], ext)

	filePath := filepath.Join(s.basePath, uniqueName)

	destFile, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer destFile.Close()

	buf := make([]byte, s.chunkSize)
	written, err := io.CopyBuffer(destFile, file, buf)
	if err != nil {
		os.Remove(filePath) // clean up the partial copy
		return "", fmt.Errorf("failed to copy file contents: %w", err)
	}

	s.logger.Debug("Stored %s (%d bytes)", filePath, written)
	return filePath, nil
}

// GetReader returns a reader for the stored file
func (s *LocalFileStorage) GetReader(ctx context.Context, filePath string) (io.ReadCloser, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

// Delete removes a file from storage
func (s *LocalFileStorage) Delete(ctx context.Context, filePath string) error {
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	s.logger.Debug("Deleted %s", filePath)
	return nil
}

// Exists checks whether a stored file is present
func (s *LocalFileStorage) Exists(ctx context.Context, filePath string) (bool, error) {
	_, err := os.Stat(filePath)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
