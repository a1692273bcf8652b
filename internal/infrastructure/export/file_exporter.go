// Package export guarda el PDF de una cotización en disco.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/Cotizador-api/internal/domain/quotation"
	"github.com/jhoicas/Cotizador-api/pkg/logger"
)

// RenderFunc produce los bytes del documento.
type RenderFunc func(ctx context.Context) ([]byte, error)

// FileExporter escribe el documento en un archivo temporal del directorio destino y
// lo renombra al nombre final. Ante cualquier falla el temporal se cierra y se borra.
type FileExporter struct {
	dir string
	log *logger.Logger
}

// NewFileExporter construye el exportador sobre dir.
func NewFileExporter(dir string, log *logger.Logger) *FileExporter {
	if dir == "" {
		dir = "."
	}
	return &FileExporter{dir: dir, log: log.Component("export")}
}

// DiskName nombre en disco: el de descarga con los separadores de ruta reemplazados.
func DiskName(number string) string {
	name := quotation.ExportFilename(number)
	return strings.NewReplacer("/", "_", "\\", "_").Replace(name)
}

// Save renderiza y guarda el PDF de la cotización number. Devuelve la ruta final.
func (e *FileExporter) Save(ctx context.Context, number string, render RenderFunc) (path string, err error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("export: crear directorio %s: %w", e.dir, err)
	}

	tmp, err := os.CreateTemp(e.dir, ".quotation-*.tmp")
	if err != nil {
		return "", fmt.Errorf("export: crear temporal: %w", err)
	}
	committed := false
	defer func() {
		if committed {
			return
		}
		_ = tmp.Close()
		if rmErr := os.Remove(tmp.Name()); rmErr != nil && !os.IsNotExist(rmErr) {
			e.log.Warn().Err(rmErr).Str("tmp", tmp.Name()).Msg("export: no se pudo borrar el temporal")
		}
	}()

	data, err := render(ctx)
	if err != nil {
		return "", fmt.Errorf("export: renderizar: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := tmp.Write(data); err != nil {
		return "", fmt.Errorf("export: escribir: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return "", fmt.Errorf("export: sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("export: cerrar: %w", err)
	}

	final := filepath.Join(e.dir, DiskName(number))
	if err := os.Rename(tmp.Name(), final); err != nil {
		return "", fmt.Errorf("export: renombrar a %s: %w", final, err)
	}
	committed = true

	e.log.Info().Str("file", final).Int("bytes", len(data)).Msg("cotización exportada")
	return final, nil
}
