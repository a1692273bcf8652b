// Package credstore guarda la credencial de quotectl en un archivo del usuario.
package credstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileStore implementa session.Store sobre un archivo con permisos 0600.
type FileStore struct {
	path string
}

// NewFileStore construye el store sobre path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path ruta del archivo de credencial.
func (s *FileStore) Path() string { return s.path }

// Load devuelve la credencial guardada; "" si no existe el archivo.
func (s *FileStore) Load() (string, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("credstore: leer %s: %w", s.path, err)
	}
	return strings.TrimSpace(string(b)), nil
}

// Save reemplaza la credencial de forma atómica (temporal + rename).
func (s *FileStore) Save(token string) (err error) {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("credstore: crear %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".token-*.tmp")
	if err != nil {
		return fmt.Errorf("credstore: temporal: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()
	if err = tmp.Chmod(0o600); err != nil {
		return fmt.Errorf("credstore: permisos: %w", err)
	}
	if _, err = tmp.WriteString(token + "\n"); err != nil {
		return fmt.Errorf("credstore: escribir: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("credstore: cerrar: %w", err)
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("credstore: renombrar: %w", err)
	}
	return nil
}

// Clear borra la credencial. No falla si ya no existía.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("credstore: borrar %s: %w", s.path, err)
	}
	return nil
}
