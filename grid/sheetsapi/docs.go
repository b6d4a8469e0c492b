// Copyright 2025 The Alis Build Platform. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package sheetsapi implements [grid.Service] over the Google Sheets API v4.

Reads use spreadsheets.values.batchGetByDataFilter with a single A1 data filter so the response echoes the
resolved range. Writes use spreadsheets.values.update and appends use spreadsheets.values.append, both with the
RAW input mode unless configured otherwise.

	client, err := sheetsapi.NewClient(ctx, "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		[]option.ClientOption{option.WithCredentialsFile("service-account.json")},
		sheetsapi.WithRetry(3, 200*time.Millisecond),
	)

Credentials default to Application Default Credentials when no client option supplies them.
*/
package sheetsapi // import "go.alis.build/sheetorm/grid/sheetsapi"
