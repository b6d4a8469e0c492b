// Copyright 2025 The Alis Build Platform. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package grid defines the boundary to a remote spreadsheet: the [Service] that reads, writes and appends raw rows.

The wire types are those of the Google Sheets API v4 (google.golang.org/api/sheets/v4). Two implementations are
provided: [go.alis.build/sheetorm/grid/sheetsapi] talks to Google Sheets, and [go.alis.build/sheetorm/grid/xlsx]
serves a local .xlsx workbook.

A [Handle] wraps one Service so it can be shared by several repositories and goroutines. Calls through the handle
are serialized; each call holds the lock for exactly its own duration and gives up waiting when its context is
cancelled.

	svc, err := sheetsapi.NewClient(ctx, spreadsheetID, nil)
	if err != nil {
		return err
	}
	handle := grid.NewHandle(svc)
*/
package grid // import "go.alis.build/sheetorm/grid"
