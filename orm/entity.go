package orm

import (
	"fmt"

	"go.alis.build/sheetorm/a1"
)

// Entity is a record bound to the sheet cell its row starts at. The position is assigned by the [Repository]; Data
// may be read and modified freely before writing the entity back with [Repository.Update].
type Entity[T any] struct {
	position a1.SheetCell
	Data     T
}

// Position returns the cell of the record's first column.
func (e Entity[T]) Position() a1.SheetCell {
	return e.position
}

// String returns the position followed by the record.
func (e Entity[T]) String() string {
	return fmt.Sprintf("%s %+v", e.position, e.Data)
}
