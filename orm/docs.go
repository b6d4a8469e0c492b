// Copyright 2025 The Alis Build Platform. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package orm stores typed records in a spreadsheet, one record per row, addressed by position.

A [Repository] pairs a shared [grid.Handle] with a [rows.Codec] describing how a record maps to contiguous
columns. Records come back as [Entity] values that remember the sheet cell they were read from, so they can be
written back in place.

	type User struct {
		Name string
		Age  *int
	}

	users := orm.NewRepository(handle, rows.NewMapping(
		rows.Required("name", cells.String(), func(u *User) *string { return &u.Name }),
		rows.Optional("age", cells.Int[int](), func(u *User) **int { return &u.Age }),
	))

	found, err := users.FindInRange(ctx, a1.NewSheetCell("users", "A", 2), 10)
	if err != nil {
		return err
	}
	for _, u := range found {
		fmt.Println(u.Position(), u.Data.Name)
	}

# Positions

Positions are taken from the range the service reports it actually read, not from the request: the i-th returned
row sits i rows below the start of that range.

# Errors

Failures of the underlying service are wrapped in [ErrDriver]; decoding failures in [ErrParsing], which keeps the
row-level error reachable through errors.As. Deletion is not supported and always fails with [ErrUnsupported].
*/
package orm // import "go.alis.build/sheetorm/orm"
