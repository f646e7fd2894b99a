package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/schlosser-auth/internal/application/auth"
	"github.com/jhoicas/schlosser-auth/internal/domain/credential"
	"github.com/jhoicas/schlosser-auth/internal/domain/repository"
	"github.com/jhoicas/schlosser-auth/internal/infrastructure/postgres"
	"github.com/jhoicas/schlosser-auth/internal/infrastructure/rowsource"
	"github.com/jhoicas/schlosser-auth/internal/infrastructure/xlsx"
	"github.com/jhoicas/schlosser-auth/pkg/config"
)

// errLoginRejected hace que check termine con código 1 cuando el resultado no es ok.
var errLoginRejected = errors.New("login rechazado")

// sourceFlags origen de las filas: --file (libro local) o la configuración del entorno.
type sourceFlags struct {
	file  string
	sheet string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Libro .xlsx local (por defecto: SHEETS_SOURCE/SPREADSHEET_ID del entorno)")
	cmd.Flags().StringVarP(&f.sheet, "sheet", "s", "", "Pestaña (por defecto: USUARIOS_SHEET o USUARIOS)")
}

// open resuelve la fuente de filas y la pestaña a leer.
func (f *sourceFlags) open(ctx context.Context) (repository.RowSource, auth.SheetConfig, error) {
	sheet := auth.SheetConfig{SheetName: f.sheet, Timeout: 30 * time.Second}
	if f.file != "" {
		sheet.Source, sheet.SpreadsheetID = config.SourceXLSX, f.file
		if sheet.SheetName == "" {
			sheet.SheetName = "USUARIOS"
		}
		return xlsx.NewRowSource(""), sheet, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, sheet, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, sheet, err
	}
	src, err := rowsource.New(ctx, cfg.Sheets)
	if err != nil {
		return nil, sheet, err
	}
	sheet.Source, sheet.SpreadsheetID, sheet.Timeout = cfg.Sheets.Source, cfg.Sheets.SpreadsheetID, cfg.Sheets.Timeout()
	if sheet.SheetName == "" {
		sheet.SheetName = cfg.Sheets.UsuariosSheet
	}
	return src, sheet, nil
}

// rows lee todas las filas de la pestaña elegida.
func (f *sourceFlags) rows(ctx context.Context) ([][]any, error) {
	src, sheet, err := f.open(ctx)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, sheet.Timeout)
	defer cancel()
	return src.GetAllRows(ctx, sheet.SpreadsheetID, sheet.SheetName)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "sheetauth",
		Short:        "Diagnóstico de login contra la planilla USUARIOS",
		SilenceUsage: true,
	}
	root.AddCommand(newCheckCmd(), newColumnsCmd(), newHashCmd(), newAttemptsCmd())
	return root
}

func newCheckCmd() *cobra.Command {
	var (
		src             sourceFlags
		login, password string
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Autentica un login y muestra el resultado en JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := src.rows(cmd.Context())
			if err != nil {
				return err
			}
			res := credential.Authenticate(rows, login, password)
			if err := writeJSON(cmd.OutOrStdout(), res); err != nil {
				return err
			}
			if !res.OK {
				return errLoginRejected
			}
			return nil
		},
	}
	src.register(cmd)
	cmd.Flags().StringVarP(&login, "login", "l", "", "Login, nombre o teléfono")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password en texto plano")
	return cmd
}

func newColumnsCmd() *cobra.Command {
	var src sourceFlags
	cmd := &cobra.Command{
		Use:   "columns",
		Short: "Muestra el mapa de columnas resuelto desde la cabecera",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rs, sheet, err := src.open(cmd.Context())
			if err != nil {
				return err
			}
			cols, n, err := auth.NewAuthUseCase(rs, sheet).Columns(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), struct {
				Columns credential.Columns `json:"columns"`
				Rows    int                `json:"rows"`
			}{cols, n})
		},
	}
	src.register(cmd)
	return cmd
}

func newHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <password>",
		Short: "Imprime el SHA-256 hex con el que se guarda una password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), credential.HashPassword(strings.TrimSpace(args[0])))
			return err
		},
	}
}

func newAttemptsCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "attempts",
		Short: "Lista los últimos intentos de login auditados (requiere PostgreSQL)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			pool, err := postgres.NewPool(cmd.Context(), cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()

			list, err := postgres.NewLoginAttemptRepository(pool).ListRecent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), list)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Cantidad de intentos")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
