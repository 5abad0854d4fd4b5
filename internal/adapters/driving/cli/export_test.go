package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calder-labs/litorg-cli/internal/core/domain"
)

func TestExportCmd_Use(t *testing.T) {
	assert.Equal(t, "export [file]", exportCmd.Use)
}

func TestExportCmd_DefaultFormatIsBibtex(t *testing.T) {
	flag := exportCmd.Flags().Lookup("format")
	require.NotNil(t, flag)
	assert.Equal(t, "bibtex", flag.DefValue)
}

func TestExportCmd_WritesBibliography(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeTestDoc(t, "see litdb:a done")
	out := filepath.Join(t.TempDir(), "refs.bib")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"export", "-o", out, path})
	defer func() {
		rootCmd.SetArgs(nil)
		exportOutput = "" // Reset flag
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Wrote 1 entries to "+out)
}

func TestExportCmd_DefaultOutputSwapsExtension(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeTestDoc(t, "see litdb:a done")
	expected := path[:len(path)-len(".org")] + ".bib"

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"export", path})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), expected)
}

func TestExportCmd_PrintsDiagnostics(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	exportService = &mockExportService{
		result: &domain.ExportResult{
			Entries: 2,
			Diagnostics: []domain.ExportDiagnostic{
				{Kind: domain.DiagnosticMissingEntry, Identifier: "b", Detail: "no bibtex entry"},
			},
		},
	}

	path := writeTestDoc(t, "see litdb:a,b done")

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs([]string{"export", "-o", filepath.Join(t.TempDir(), "refs.bib"), path})
	defer func() {
		rootCmd.SetArgs(nil)
		exportOutput = "" // Reset flag
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, errOut.String(), "missing-entry")
	assert.Contains(t, errOut.String(), "b")
	assert.Contains(t, out.String(), "Wrote 2 entries")
}

func TestExportCmd_UnsupportedFormat(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	exportService = &mockExportService{err: domain.ErrUnsupportedFormat}

	path := writeTestDoc(t, "text")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"export", "--format", "ris", path})
	defer func() {
		rootCmd.SetArgs(nil)
		exportFormat = "bibtex" // Reset flag
	}()

	err := rootCmd.Execute()

	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}
