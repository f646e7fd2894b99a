// Package rowsource elige la implementación de repository.RowSource según SHEETS_SOURCE.
package rowsource

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/schlosser-auth/internal/domain/repository"
	"github.com/jhoicas/schlosser-auth/internal/infrastructure/sheets"
	"github.com/jhoicas/schlosser-auth/internal/infrastructure/xlsx"
	"github.com/jhoicas/schlosser-auth/pkg/config"
)

// New construye la fuente de filas configurada.
// google: credenciales de la service account desde JSON inline o desde archivo (el inline gana).
// xlsx: SPREADSHEET_ID es la ruta del libro.
func New(ctx context.Context, cfg config.SheetsConfig) (repository.RowSource, error) {
	switch cfg.Source {
	case config.SourceXLSX:
		return xlsx.NewRowSource(""), nil
	case config.SourceGoogle:
		creds, err := serviceAccount(cfg)
		if err != nil {
			return nil, err
		}
		return sheets.NewRowSource(ctx, creds)
	default:
		return nil, fmt.Errorf("fuente de planilla desconocida: %q", cfg.Source)
	}
}

func serviceAccount(cfg config.SheetsConfig) ([]byte, error) {
	if cfg.ServiceAccountJSON != "" {
		return []byte(cfg.ServiceAccountJSON), nil
	}
	if cfg.ServiceAccountFile == "" {
		return nil, fmt.Errorf("credenciales de Google no configuradas")
	}
	b, err := os.ReadFile(cfg.ServiceAccountFile)
	if err != nil {
		return nil, fmt.Errorf("leer service account: %w", err)
	}
	return b, nil
}
