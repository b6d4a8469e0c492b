package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"go.alis.build/sheetorm/a1"
	"go.alis.build/sheetorm/orm"
	"go.alis.build/sheetorm/rows"
)

func newCellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cell <A1|col,row>",
		Short: "Convert between an A1 cell and 0-indexed coordinates",
		Example: `  sheetorm cell AA27     # 26,26
  sheetorm cell 26,26    # AA27`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if col, row, ok := strings.Cut(args[0], ","); ok {
				c, err := strconv.ParseUint(strings.TrimSpace(col), 10, 32)
				if err != nil {
					return fmt.Errorf("invalid column %q: %w", col, err)
				}
				r, err := strconv.ParseUint(strings.TrimSpace(row), 10, 32)
				if err != nil {
					return fmt.Errorf("invalid row %q: %w", row, err)
				}
				num := a1.NumCell{Col: uint32(c), Row: uint32(r)}
				if !num.IsValid() {
					return fmt.Errorf("coordinates %s are past the end of the grid", num)
				}
				fmt.Fprintln(cmd.OutOrStdout(), num.Cell())
				return nil
			}
			cell, err := a1.ParseCell(args[0])
			if err != nil {
				return err
			}
			num := cell.Num()
			fmt.Fprintf(cmd.OutOrStdout(), "%d,%d\n", num.Col, num.Row)
			return nil
		},
	}
}

func newRangeCmd() *cobra.Command {
	var listCells bool
	cmd := &cobra.Command{
		Use:   "range <[Sheet!]A1:B2>",
		Short: "Print the canonical form, size and zero-based form of a range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var rng a1.Range
			if strings.Contains(args[0], "!") {
				sr, err := a1.ParseSheetRange(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "range: %s\n", sr)
				rng = sr.Range
			} else {
				r, err := a1.ParseRange(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "range: %s\n", r)
				rng = r
			}
			fmt.Fprintf(out, "size: %dx%d\n", rng.Width(), rng.Height())
			fmt.Fprintf(out, "zero-based: %s\n", rng.ZeroBase())
			if listCells {
				for c := range rng.Cells() {
					fmt.Fprintln(out, c)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&listCells, "cells", false, "List every cell in row-major order")
	return cmd
}

// textCodec maps a row to the text of its first width cells.
type textCodec struct {
	width int
}

func (c textCodec) Width() int { return c.width }

func (c textCodec) Decode(row rows.RawRow) ([]string, error) {
	out := make([]string, c.width)
	for i := 0; i < c.width && i < len(row); i++ {
		s, err := rows.CellText(row[i])
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i+1, err)
		}
		out[i] = s
	}
	return out, nil
}

func (c textCodec) Encode(v []string) (rows.RawRow, error) {
	if len(v) > c.width {
		return nil, fmt.Errorf("%d values do not fit in %d columns", len(v), c.width)
	}
	row := make(rows.RawRow, c.width)
	for i, s := range v {
		row[i] = s
	}
	return row, nil
}

type rowJSON struct {
	Position string   `json:"position"`
	Cells    []string `json:"cells"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newReadCmd(flags *rootFlags) *cobra.Command {
	var lenient bool
	cmd := &cobra.Command{
		Use:   "read <Sheet!A1:B2>",
		Short: "Read the rows of a range as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rng, err := a1.ParseSheetRange(args[0])
			if err != nil {
				return err
			}
			if !rng.Range.IsProper() {
				return fmt.Errorf("range %s is empty", rng)
			}
			ctx := cmd.Context()
			b, err := openBackend(ctx, flags)
			if err != nil {
				return err
			}
			defer b.close()

			repo := orm.NewRepository(b.handle, textCodec{width: int(rng.Range.Width())})
			find := repo.FindInRange
			if lenient {
				find = repo.FindInRangeLenient
			}
			entities, err := find(ctx, rng.Start(), rng.Range.Height())
			if err != nil {
				return err
			}
			out := make([]rowJSON, 0, len(entities))
			for _, e := range entities {
				out = append(out, rowJSON{Position: e.Position().String(), Cells: e.Data})
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().BoolVar(&lenient, "lenient", false, "Skip rows that cannot be read instead of failing")
	return cmd
}

func newAppendCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "append <Sheet!A1:B1> <value>...",
		Short: "Append one row to the table at a range",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rng, err := a1.ParseSheetRange(args[0])
			if err != nil {
				return err
			}
			if !rng.Range.IsProper() {
				return fmt.Errorf("range %s is empty", rng)
			}
			ctx := cmd.Context()
			b, err := openBackend(ctx, flags)
			if err != nil {
				return err
			}
			defer b.close()

			repo := orm.NewRepository(b.handle, textCodec{width: int(rng.Range.Width())})
			e, err := repo.Insert(ctx, rng.Start(), rng.Range.Height(), args[1:])
			if err != nil {
				return err
			}
			if err := b.save(); err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), rowJSON{Position: e.Position().String(), Cells: e.Data})
		},
	}
}
