package repository

import "context"

// RowSource puerto de lectura de la planilla de usuarios (DIP).
// Devuelve todas las filas usadas de la pestaña, sin ancho mínimo garantizado por fila.
type RowSource interface {
	GetAllRows(ctx context.Context, spreadsheetID, sheetName string) ([][]any, error)
}
