// Copyright 2025 The Alis Build Platform. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package xlsx implements [grid.Service] over a local Excel workbook using excelize.

It answers with the same wire types as the Google Sheets API, so a repository can run unchanged against a file on
disk or an in-memory workbook in tests:

	f := excelize.NewFile()
	defer f.Close()
	handle := grid.NewHandle(xlsx.New(f))

Reads trim trailing empty cells and rows the way Sheets does. Appends write to the first row at or below the
start of the requested range whose cells are all empty.

Changes stay in memory until [Service.Save] is called.
*/
package xlsx // import "go.alis.build/sheetorm/grid/xlsx"
