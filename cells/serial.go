package cells

import (
	"errors"
	"math"
	"time"
)

// serialEpoch is day zero of the spreadsheet date serial system.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

const (
	msPerDay = 24 * 60 * 60 * 1000

	// minSerial is 0001-01-01 and maxSerial is 10000-01-01, the first day past the supported calendar.
	minSerial = -693593
	maxSerial = 2958466
)

// ErrSerialOutOfRange is returned for date serials that are not finite or fall outside years 1 to 9999.
var ErrSerialOutOfRange = errors.New("date serial outside 0001-01-01 to 9999-12-31")

// SerialToTime converts a spreadsheet date serial to a UTC time. The integer part counts days since 1899-12-30 and
// the fraction is the time of day, rounded to the millisecond.
//
// Returns [ErrSerialOutOfRange] for NaN, infinities and serials outside years 1 to 9999.
func SerialToTime(serial float64) (time.Time, error) {
	if math.IsNaN(serial) || serial < minSerial || serial >= maxSerial {
		return time.Time{}, ErrSerialOutOfRange
	}
	ms := int64(math.Round(serial * msPerDay))
	if ms >= maxSerial*msPerDay {
		return time.Time{}, ErrSerialOutOfRange
	}
	days, frac := ms/msPerDay, ms%msPerDay
	if frac < 0 {
		days--
		frac += msPerDay
	}
	return serialEpoch.AddDate(0, 0, int(days)).Add(time.Duration(frac) * time.Millisecond), nil
}

// TimeToSerial is the inverse of [SerialToTime]. The time is converted to UTC first and truncated to the
// millisecond.
func TimeToSerial(t time.Time) float64 {
	ms := (t.Unix()-serialEpoch.Unix())*1000 + int64(t.Nanosecond()/int(time.Millisecond))
	days, frac := ms/msPerDay, ms%msPerDay
	return float64(days) + float64(frac)/msPerDay
}
