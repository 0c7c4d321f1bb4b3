package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
)

// localFileStorage keeps document bytes on the local filesystem under a
// root directory. Writes go through a temporary file and a rename so a
// reader never observes a partial document.
type localFileStorage struct {
	root   string
	logger *logger.Logger
}

// NewLocalFileStorage constructs a [FileStorage] rooted at dir, creating
// the directory if needed.
func NewLocalFileStorage(dir string, logger *logger.Logger) (FileStorage, error) {
	logger.Debug().Str("dir", dir).Msg("creating local file storage")

	if dir == "" {
		return nil, fmt.Errorf("%w: empty documents directory", ErrStoringFile)
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoringFile, err)
	}

	return &localFileStorage{root: dir, logger: logger}, nil
}

func (s *localFileStorage) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("%w: invalid storage key %q", ErrStoringFile, key)
	}
	return filepath.Join(s.root, key), nil
}

func (s *localFileStorage) Save(ctx context.Context, key string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target, err := s.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.root, ".upload-*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoringFile, err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(content); err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmpName, target)
	}
	if err != nil {
		_ = os.Remove(tmpName)
		logger.FromContext(ctx).Err(err).Str("func", "localFileStorage.Save").Str("key", key).Msg("failed to write document")
		return fmt.Errorf("%w: %w", ErrStoringFile, err)
	}

	return nil
}

func (s *localFileStorage) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	target, err := s.path(key)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrStoringFile, err)
	}
	return content, nil
}

func (s *localFileStorage) Remove(ctx context.Context, key string) error {
	target, err := s.path(key)
	if err != nil {
		return err
	}

	if err = os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Err(err).Str("func", "localFileStorage.Remove").Str("key", key).Msg("failed to remove document")
		return fmt.Errorf("%w: %w", ErrStoringFile, err)
	}
	return nil
}
