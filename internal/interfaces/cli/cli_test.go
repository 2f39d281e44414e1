package cli_test

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ledger-api/internal/application/bookkeeping"
	"github.com/jhoicas/ledger-api/internal/infrastructure/storage"
	"github.com/jhoicas/ledger-api/internal/interfaces/cli"
	"github.com/jhoicas/ledger-api/pkg/config"
	"github.com/jhoicas/ledger-api/pkg/currency"
)

// harness cada ejecución abre el journal desde cero, como un proceso nuevo de ledgerctl.
type harness struct {
	out, err bytes.Buffer
	app      *cli.App
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.db")
	h := &harness{}
	h.app = &cli.App{
		Out:      &h.out,
		Err:      &h.err,
		Currency: currency.NewFormatter("USD"),
		Open: func(ctx context.Context) (*bookkeeping.Engine, func() error, error) {
			j, err := storage.Open(ctx, config.StorageConfig{Driver: config.StorageSQLite, SQLitePath: path}, config.DBConfig{})
			if err != nil {
				return nil, nil, err
			}
			e, err := bookkeeping.NewEngine(bookkeeping.Config{}, j.Runner, zerolog.Nop())
			if err != nil {
				return nil, nil, err
			}
			if err := e.Load(ctx); err != nil {
				return nil, nil, err
			}
			return e, j.Close, nil
		},
	}
	return h
}

func (h *harness) exec(t *testing.T, args ...string) subcommands.ExitStatus {
	t.Helper()
	h.out.Reset()
	h.err.Reset()
	fs := flag.NewFlagSet("ledgerctl", flag.ContinueOnError)
	cdr := subcommands.NewCommander(fs, "ledgerctl")
	cdr.Output = &h.out
	cdr.Error = &h.err
	cli.Register(cdr, h.app)
	require.NoError(t, fs.Parse(args))
	return cdr.Execute(context.Background())
}

func TestCLI_FlujoCompleto(t *testing.T) {
	h := newHarness(t)

	require.Equal(t, subcommands.ExitSuccess,
		h.exec(t, "register", "-barcode", "1111111111111", "-name", "Crema", "-price", "10"), h.err.String())
	assert.Contains(t, h.out.String(), "1111111111111")

	require.Equal(t, subcommands.ExitSuccess,
		h.exec(t, "add", "-date", "2024-06-01", "-kind", "incoming", "-item", "1111111111111", "-qty", "100", "-price", "10", "-cp", "Proveedor"),
		h.err.String())
	assert.Contains(t, h.out.String(), "$1,000.00")

	require.Equal(t, subcommands.ExitSuccess,
		h.exec(t, "add", "-date", "2024-06-02", "-kind", "sale_rep", "-item", "Crema", "-qty", "30", "-price", "10", "-cp", "Luis"),
		h.err.String())
	assert.Contains(t, h.out.String(), "$700.00")

	// Sobreventa rechazada
	assert.Equal(t, subcommands.ExitFailure,
		h.exec(t, "add", "-date", "2024-06-03", "-kind", "sale_piece", "-item", "Crema", "-qty", "80", "-price", "10", "-cp", "C"))
	assert.Contains(t, h.err.String(), "stock insuficiente")

	require.Equal(t, subcommands.ExitSuccess, h.exec(t, "statement"))
	out := h.out.String()
	assert.Contains(t, out, "2024-06-01")
	assert.Contains(t, out, "TOTAL (2)")
	assert.NotContains(t, out, "2024-06-03")

	require.Equal(t, subcommands.ExitSuccess, h.exec(t, "stock", "1111111111111"))
	assert.Equal(t, "Crema: 70 (good)\n", h.out.String())

	require.Equal(t, subcommands.ExitSuccess, h.exec(t, "stock"))
	assert.Contains(t, h.out.String(), "$700.00")

	require.Equal(t, subcommands.ExitSuccess, h.exec(t, "reps"))
	assert.Contains(t, h.out.String(), "Luis")
	assert.Contains(t, h.out.String(), "$300.00")
}

func TestCLI_ArgumentosInvalidos(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, subcommands.ExitUsageError, h.exec(t, "statement", "-from", "01/06/2024"))
	assert.Equal(t, subcommands.ExitUsageError, h.exec(t, "add", "-kind", "incoming", "-qty", "diez"))
	assert.Equal(t, subcommands.ExitFailure, h.exec(t, "register", "-name", "", "-price", "1"))
	assert.Contains(t, h.err.String(), "name")
}
