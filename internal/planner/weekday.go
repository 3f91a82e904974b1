package planner

// Weekdays lists the seven weekday names the planner stores, Monday first.
var Weekdays = []string{
	"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo",
}

var dayIndex = map[string]int{
	"Lunes": 1, "Martes": 2, "Miércoles": 3, "Jueves": 4,
	"Viernes": 5, "Sábado": 6, "Domingo": 7,
}

// DayIndex returns the 1-based position of a weekday name (1=Lunes … 7=Domingo).
func DayIndex(day string) (int, bool) {
	idx, ok := dayIndex[day]
	return idx, ok
}

// ValidDay reports whether day is one of the seven weekday names.
func ValidDay(day string) bool {
	_, ok := dayIndex[day]
	return ok
}
