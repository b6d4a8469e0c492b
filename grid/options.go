package grid

// MajorDimension is the orientation of the value arrays exchanged with the service.
type MajorDimension int

const (
	// Rows means each inner array is one row.
	Rows MajorDimension = iota
	// Columns means each inner array is one column.
	Columns
)

func (d MajorDimension) String() string {
	if d == Columns {
		return "COLUMNS"
	}
	return "ROWS"
}

// InputMode controls how written values are interpreted.
type InputMode int

const (
	// Raw stores values as given, without parsing.
	Raw InputMode = iota
	// UserEntered parses values as if typed into the UI, so "=A1" becomes a formula and "3" a number.
	UserEntered
)

func (m InputMode) String() string {
	if m == UserEntered {
		return "USER_ENTERED"
	}
	return "RAW"
}

// ValueRenderOption controls how read values are rendered.
type ValueRenderOption int

const (
	// FormattedValue renders values as displayed in the UI.
	FormattedValue ValueRenderOption = iota
	// UnformattedValue renders numbers and dates as raw numbers.
	UnformattedValue
	// Formula renders formulas instead of their results.
	Formula
)

func (o ValueRenderOption) String() string {
	switch o {
	case UnformattedValue:
		return "UNFORMATTED_VALUE"
	case Formula:
		return "FORMULA"
	default:
		return "FORMATTED_VALUE"
	}
}
