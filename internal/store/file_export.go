package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-flashcards/internal/logger"
)

// exportFileStorage is the file-system implementation of [ExportFileStorage].
// Documents are written to a temporary file next to the destination and then
// renamed over it, so an existing export is never left half-written.
type exportFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewExportFileStorage constructs an [ExportFileStorage] rooted at dir.
// An empty dir means the current working directory.
func NewExportFileStorage(dir string, logger *logger.Logger) ExportFileStorage {
	if dir == "" {
		dir = "."
	}

	return &exportFileStorage{
		dir:    dir,
		logger: logger,
	}
}

// Save writes data to dir/name and returns the absolute path of the file.
func (s *exportFileStorage) Save(ctx context.Context, name string, data []byte) (string, error) {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		log.Err(err).Str("func", "exportFileStorage.Save").Str("dir", s.dir).Msg("failed to create export directory")
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	target := filepath.Join(s.dir, filepath.Base(name))

	randBytes := make([]byte, 8)
	if _, err := rand.Read(randBytes); err != nil {
		return "", fmt.Errorf("failed to generate temp file name: %w", err)
	}
	tempPath := target + "." + hex.EncodeToString(randBytes) + ".tmp"

	if err := writeAndRename(tempPath, target, data); err != nil {
		log.Err(err).Str("func", "exportFileStorage.Save").Str("path", target).Msg("failed to write export file")
		return "", err
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		return target, nil
	}

	log.Info().Str("func", "exportFileStorage.Save").Str("path", abs).Int("bytes", len(data)).Msg("export file written")
	return abs, nil
}

func writeAndRename(tempPath, target string, data []byte) (err error) {
	file, err := os.OpenFile(tempPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}

	// the original file is preserved on failure
	defer func() {
		if err != nil {
			file.Close()
			os.Remove(tempPath)
		}
	}()

	if _, err = file.Write(data); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	if err = file.Sync(); err != nil {
		return fmt.Errorf("failed to sync export file: %w", err)
	}
	if err = file.Close(); err != nil {
		return fmt.Errorf("failed to close export file: %w", err)
	}
	if err = os.Rename(tempPath, target); err != nil {
		return fmt.Errorf("failed to rename export file: %w", err)
	}

	return nil
}

// Load reads a document, refusing anything larger than maxSize bytes with
// [ErrFileTooLarge]. A non-positive maxSize disables the check.
func (s *exportFileStorage) Load(ctx context.Context, path string, maxSize int64) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if maxSize > 0 && info.Size() > maxSize {
		return nil, ErrFileTooLarge
	}

	reader := io.Reader(file)
	if maxSize > 0 {
		// the file may grow between Stat and Read
		reader = io.LimitReader(file, maxSize+1)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if maxSize > 0 && int64(len(data)) > maxSize {
		return nil, ErrFileTooLarge
	}

	return data, nil
}
