// Package storage persists identity documents. The service layer only sees
// the FileStore interface and the opaque path token it returns.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"event-booking/pkg/utils"

	"go.uber.org/zap"
)

type FileStore interface {
	// Save writes the stream to storage and returns the stored path token.
	Save(reader io.Reader, nameHint string) (string, error)
}

type localStore struct {
	config utils.UploadConfig
	log    *zap.Logger
}

func NewLocalStore(config utils.UploadConfig, log *zap.Logger) (FileStore, error) {
	if err := os.MkdirAll(config.Folder, 0755); err != nil {
		return nil, fmt.Errorf("create upload folder %s: %w", config.Folder, err)
	}

	return &localStore{
		config: config,
		log:    log.With(zap.String("storage", "local")),
	}, nil
}

// Allowed reports whether the file extension is on the configured allow-list.
func Allowed(config utils.UploadConfig, filename string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return false
	}
	ext := strings.ToLower(filename[idx+1:])
	for _, allowed := range config.AllowedTypes {
		if ext == allowed {
			return true
		}
	}
	return false
}

func (s *localStore) Save(reader io.Reader, nameHint string) (string, error) {
	if !Allowed(s.config, nameHint) {
		return "", fmt.Errorf("file type not allowed: %s", nameHint)
	}

	storedName := utils.GenerateStoredFileName("", nameHint)
	path := filepath.Join(s.config.Folder, storedName)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file %s: %w", path, err)
	}
	defer file.Close()

	// LimitReader enforces the size cap even when the declared size lies
	written, err := io.Copy(file, io.LimitReader(reader, s.config.MaxFileSize+1))
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write file %s: %w", path, err)
	}
	if written > s.config.MaxFileSize {
		os.Remove(path)
		return "", fmt.Errorf("file exceeds maximum size of %d bytes", s.config.MaxFileSize)
	}

	s.log.Info("File stored",
		zap.String("path", path),
		zap.Int64("bytes", written),
	)

	return path, nil
}
