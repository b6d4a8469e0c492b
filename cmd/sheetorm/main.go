// Command sheetorm inspects A1 references and reads or appends spreadsheet rows, against Google Sheets or a local
// .xlsx workbook.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.alis.build/alog"
	"google.golang.org/api/option"

	"go.alis.build/sheetorm/grid"
	"go.alis.build/sheetorm/grid/sheetsapi"
	"go.alis.build/sheetorm/grid/xlsx"
)

type rootFlags struct {
	xlsxPath      string
	spreadsheetID string
	credentials   string
	unformatted   bool
	verbose       bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	rootCmd := &cobra.Command{
		Use:   "sheetorm",
		Short: "Work with spreadsheet rows by A1 position",
		Long: `sheetorm converts A1 references and reads or appends rows of a spreadsheet,
either a Google Sheets document (--spreadsheet) or a local workbook (--xlsx).`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.verbose {
				alog.SetLevel(alog.LevelDebug)
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.xlsxPath, "xlsx", "", "Path of a local .xlsx workbook")
	pf.StringVar(&flags.spreadsheetID, "spreadsheet", "", "ID of a Google Sheets document")
	pf.StringVar(&flags.credentials, "credentials", "", "Service account JSON file (default: Application Default Credentials)")
	pf.BoolVar(&flags.unformatted, "unformatted", false, "Read raw values instead of formatted ones")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newCellCmd(),
		newRangeCmd(),
		newReadCmd(flags),
		newAppendCmd(flags),
	)
	return rootCmd
}

// backend is an opened grid service together with its persistence hooks.
type backend struct {
	handle *grid.Handle
	save   func() error
	close  func() error
}

func openBackend(ctx context.Context, flags *rootFlags) (*backend, error) {
	render := grid.FormattedValue
	if flags.unformatted {
		render = grid.UnformattedValue
	}
	noop := func() error { return nil }

	switch {
	case flags.xlsxPath != "" && flags.spreadsheetID != "":
		return nil, errors.New("--xlsx and --spreadsheet are mutually exclusive")
	case flags.xlsxPath != "":
		svc, err := xlsx.Open(flags.xlsxPath, xlsx.WithValueRenderOption(render))
		if err != nil {
			return nil, err
		}
		return &backend{handle: grid.NewHandle(svc), save: svc.Save, close: svc.Close}, nil
	case flags.spreadsheetID != "":
		var clientOpts []option.ClientOption
		if flags.credentials != "" {
			clientOpts = append(clientOpts, option.WithCredentialsFile(flags.credentials))
		}
		svc, err := sheetsapi.NewClient(ctx, flags.spreadsheetID, clientOpts,
			sheetsapi.WithValueRenderOption(render),
		)
		if err != nil {
			return nil, err
		}
		return &backend{handle: grid.NewHandle(svc), save: noop, close: noop}, nil
	default:
		return nil, fmt.Errorf("one of --xlsx or --spreadsheet is required")
	}
}
