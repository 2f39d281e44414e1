// Package cli implementa ledgerctl: consultas y altas sobre el mismo motor que la API.
package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/jhoicas/ledger-api/internal/application/bookkeeping"
	"github.com/jhoicas/ledger-api/pkg/currency"
)

// OpenFunc abre el motor ya hidratado y devuelve su cierre.
type OpenFunc func(ctx context.Context) (*bookkeeping.Engine, func() error, error)

// App dependencias compartidas por los subcomandos.
type App struct {
	Out      io.Writer
	Err      io.Writer
	Open     OpenFunc
	Currency currency.Formatter
}

// Register registra los subcomandos en el commander.
func Register(c *subcommands.Commander, app *App) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")

	c.Register(&statementCmd{app: app}, "reports")
	c.Register(&stockCmd{app: app}, "reports")
	c.Register(&repsCmd{app: app}, "reports")

	c.Register(&addCmd{app: app}, "journal")
	c.Register(&registerCmd{app: app}, "journal")
}

// run abre el motor, ejecuta fn y cierra. Los errores se imprimen en Err.
func (a *App) run(ctx context.Context, fn func(*bookkeeping.Engine) error) subcommands.ExitStatus {
	engine, closeFn, err := a.Open(ctx)
	if err != nil {
		fmt.Fprintln(a.Err, "abrir journal:", err)
		return subcommands.ExitFailure
	}
	defer func() {
		if closeFn != nil {
			_ = closeFn()
		}
	}()
	if err := fn(engine); err != nil {
		fmt.Fprintln(a.Err, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (a *App) table() *tabwriter.Writer {
	return tabwriter.NewWriter(a.Out, 0, 0, 2, ' ', 0)
}
