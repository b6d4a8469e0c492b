// Copyright 2025 The Alis Build Platform. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package rows maps an ordered sequence of raw spreadsheet cells to and from a typed record.

Mapping is strictly positional: field i of a [Mapping] reads and writes column i of the row. The number of fields
is the record's width, the number of contiguous columns it occupies.

# Declaring a mapping

	type User struct {
		Name string
		Age  *int
	}

	var userRow = rows.NewMapping(
		rows.Required("name", cells.String(), func(u *User) *string { return &u.Name }),
		rows.Optional("age", cells.Int[int](), func(u *User) **int { return &u.Age }),
	)

Each field declares whether it is required or optional; nothing is inferred from the Go type.

# Absent and malformed cells

A row shorter than the mapping is common: the Sheets API drops trailing empty cells. A required field whose
column is past the end of the row fails with [ErrFieldMissing]. A required field whose cell does not parse fails
with [ErrCellDecode]. Optional fields resolve to nil in both cases.

Cells beyond the mapping's width are ignored.
*/
package rows // import "go.alis.build/sheetorm/rows"
