// Copyright 2025 The Alis Build Platform. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package a1 implements the A1 addressing scheme used by spreadsheets.

Columns are identified by base-26 letter codes (A, B, ..., Z, AA, AB, ...) and rows by positive integers, both
1-indexed. The package converts between these codes and 0-indexed numeric coordinates, and provides the arithmetic,
ordering and range semantics needed to compute the rectangles read from and written to a sheet.

	cell, _ := a1.ParseCell("B2")
	cell.Num()                  // a1.NumCell{Col: 1, Row: 1}
	rng, _ := a1.ParseRange("B2:D4")
	rng.ZeroBase().String()     // "A1:C3"
	sr, _ := a1.ParseSheetRange("'My Sheet'!A1:C3")
	sr.Sheet                    // "My Sheet"

Cells are ordered row first: A3 sorts after B2.
*/
package a1 // import "go.alis.build/sheetorm/a1"
