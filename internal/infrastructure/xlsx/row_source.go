// Package xlsx: lectura de la pestaña de usuarios desde un libro .xlsx local
// (exportación de la planilla, entornos sin acceso a Google).
package xlsx

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/schlosser-auth/internal/domain"
	"github.com/jhoicas/schlosser-auth/internal/domain/repository"
)

var _ repository.RowSource = (*RowSource)(nil)

// RowSource implementación de repository.RowSource: spreadsheetID es la ruta del libro,
// relativa a BaseDir si no es absoluta.
type RowSource struct {
	BaseDir string
}

// NewRowSource construye la fuente con el directorio base indicado ("" = directorio actual).
func NewRowSource(baseDir string) *RowSource {
	return &RowSource{BaseDir: baseDir}
}

// GetAllRows abre el libro en cada llamada: los cambios en el archivo se ven en el siguiente login.
func (s *RowSource) GetAllRows(ctx context.Context, spreadsheetID, sheetName string) ([][]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := spreadsheetID
	if !filepath.IsAbs(path) && s.BaseDir != "" {
		path = filepath.Join(s.BaseDir, path)
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: archivo no encontrado: %s", domain.ErrUserStoreUnavailable, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: abrir %s: %w", domain.ErrUserStoreUnavailable, path, err)
	}
	defer f.Close()

	raw, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: pestaña %q: %w", domain.ErrUserStoreUnavailable, sheetName, err)
	}

	rows := make([][]any, len(raw))
	for i, r := range raw {
		row := make([]any, len(r))
		for j, v := range r {
			row[j] = v
		}
		rows[i] = row
	}
	return rows, nil
}
