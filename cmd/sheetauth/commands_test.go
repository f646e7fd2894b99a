package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook crea un libro con una pestaña USUARIOS.
func writeWorkbook(t *testing.T, rows ...[]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", "USUARIOS"))
	for i, r := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		row := r
		require.NoError(t, f.SetSheetRow("USUARIOS", cellName, &row))
	}
	path := filepath.Join(t.TempDir(), "usuarios.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestHash(t *testing.T) {
	out, err := execute(t, "hash", " senha123 ")

	require.NoError(t, err)
	assert.Equal(t, "55a5e9e78207b4df8699d60886fa070079463547b095d1a05bc719bb4e6cd251", strings.TrimSpace(out))
}

func TestCheck_Exitoso(t *testing.T) {
	path := writeWorkbook(t,
		[]interface{}{"Nome", "Login", "Senha", "Tipo", "Ativo"},
		[]interface{}{"Ana", "ana1", "1234", "Cliente B2B", "sim"},
	)

	out, err := execute(t, "check", "--file", path, "--login", "ANA1", "--password", "1234")

	require.NoError(t, err)
	var res struct {
		OK   bool `json:"ok"`
		User struct {
			Role     string `json:"role"`
			HomePath string `json:"homePath"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.OK)
	assert.Equal(t, "cliente_b2b", res.User.Role)
	assert.Equal(t, "/cliente_b2b", res.User.HomePath)
}

func TestCheck_RechazadoTerminaConError(t *testing.T) {
	path := writeWorkbook(t,
		[]interface{}{"Nome", "Login", "Senha", "Tipo", "Ativo"},
		[]interface{}{"Ana", "ana1", "1234", "Vendedor", "não"},
	)

	out, err := execute(t, "check", "--file", path, "-l", "ana1", "-p", "1234")

	assert.ErrorIs(t, err, errLoginRejected)
	assert.Contains(t, out, `"error": "AccountInactive"`)
}

func TestColumns(t *testing.T) {
	path := writeWorkbook(t,
		[]interface{}{"Senha", "Login", "Nome Completo", "Ativo?", "Tipo", "Home"},
		[]interface{}{"x", "y"},
	)

	out, err := execute(t, "columns", "--file", path)

	require.NoError(t, err)
	var res struct {
		Columns map[string]int `json:"columns"`
		Rows    int            `json:"rows"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 2, res.Rows)
	assert.Equal(t, 0, res.Columns["password"])
	assert.Equal(t, 1, res.Columns["login"])
	assert.Equal(t, 3, res.Columns["active"])
	assert.Equal(t, 4, res.Columns["type"])
	assert.Equal(t, 5, res.Columns["home"])
}

func TestCheck_PestanaInexistente(t *testing.T) {
	path := writeWorkbook(t, []interface{}{"Nome"})

	_, err := execute(t, "check", "--file", path, "--sheet", "OTRA", "-l", "a", "-p", "b")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, errLoginRejected)
}
