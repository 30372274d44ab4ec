package formatter

import "fmt"

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var monthShortNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthName returns the full month name for a month index in [0,11].
func MonthName(month int) string {
	if month < 0 || month >= len(monthNames) {
		return fmt.Sprintf("M%d", month)
	}
	return monthNames[month]
}

// MonthShort returns the three-letter month name for a month index in [0,11].
func MonthShort(month int) string {
	if month < 0 || month >= len(monthShortNames) {
		return fmt.Sprintf("M%d", month)
	}
	return monthShortNames[month]
}

// QuarterLabel returns "Q1".."Q4" for a 1-based quarter.
func QuarterLabel(q int) string {
	return fmt.Sprintf("Q%d", q)
}
