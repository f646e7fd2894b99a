// Package sheets: lectura de la pestaña de usuarios vía Google Sheets API v4.
package sheets

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/jhoicas/schlosser-auth/internal/domain"
	"github.com/jhoicas/schlosser-auth/internal/domain/repository"
)

var _ repository.RowSource = (*RowSource)(nil)

// unformatted devuelve números como float64 y checkboxes como bool, no el texto mostrado
// (un teléfono con formato científico se vería "5,51E+12").
const unformatted = "UNFORMATTED_VALUE"

// RowSource implementación de repository.RowSource sobre Google Sheets.
type RowSource struct {
	srv *gsheets.Service
}

// NewRowSource autentica con una service account (JSON) con alcance de solo lectura.
// ctx debe vivir tanto como el RowSource: lo usa el cliente OAuth2 para renovar tokens.
func NewRowSource(ctx context.Context, serviceAccountJSON []byte) (*RowSource, error) {
	jwtCfg, err := google.JWTConfigFromJSON(serviceAccountJSON, gsheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("sheets: credenciales de service account: %w", err)
	}
	return NewRowSourceWithOptions(ctx, option.WithHTTPClient(jwtCfg.Client(ctx)))
}

// NewRowSourceWithOptions construye el cliente con opciones arbitrarias (endpoint de prueba, API key).
func NewRowSourceWithOptions(ctx context.Context, opts ...option.ClientOption) (*RowSource, error) {
	srv, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: crear servicio: %w", err)
	}
	return &RowSource{srv: srv}, nil
}

// GetAllRows lee todo el rango usado de la pestaña sheetName.
func (s *RowSource) GetAllRows(ctx context.Context, spreadsheetID, sheetName string) ([][]any, error) {
	resp, err := s.srv.Spreadsheets.Values.Get(spreadsheetID, quoteSheet(sheetName)).
		ValueRenderOption(unformatted).
		MajorDimension("ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: sheets %q: %w", domain.ErrUserStoreUnavailable, sheetName, err)
	}
	rows := make([][]any, len(resp.Values))
	for i, r := range resp.Values {
		rows[i] = r
	}
	return rows, nil
}

// quoteSheet arma el rango A1 de una pestaña completa: 'Nome da aba'.
func quoteSheet(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
