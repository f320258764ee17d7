package chrono

import "gluekit/internal/common"

var shortDays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

var longDays = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

var shortMonths = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var longMonths = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Days returns a copy of the weekday name table, Sunday first.
func Days(long bool) [7]string {
	if long {
		return longDays
	}

	return shortDays
}

// Months returns a copy of the month name table, January first.
func Months(long bool) [12]string {
	if long {
		return longMonths
	}

	return shortMonths
}

// Day returns the weekday name for index 0 (Sunday) through 6 (Saturday).
// Out-of-range indexes yield "".
func Day(index int, long bool) string {
	if !common.IsInRange(0, index, 6) {
		return ""
	}

	return Days(long)[index]
}

// Month returns the month name for index 0 (January) through 11 (December).
// Out-of-range indexes yield "".
func Month(index int, long bool) string {
	if !common.IsInRange(0, index, 11) {
		return ""
	}

	return Months(long)[index]
}
