// Copyright 2025 The Alis Build Platform. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package cells converts the raw text of a single spreadsheet cell to and from typed Go values.

A [Codec] is provided for integers, unsigned integers, floats, booleans, strings, column letters, times,
google.type.Date and google.protobuf.Timestamp values, and for the spreadsheet-native date serial (a day count
since 1899-12-30 whose fraction is the time of day).

	n, err := cells.Int[int64]().Decode("42")
	t, err := cells.SerialTime().Decode("45000.5") // 2023-03-15 12:00:00 UTC

Serialization is opt-in: codecs built with [DecodeOnly] panic when Encode is called.

[Optional] wraps any codec so that values which fail to parse decode to nil instead of returning an error.
*/
package cells // import "go.alis.build/sheetorm/cells"
