package extract

// Period is a coarse time window named in a message.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodAll   Period = "all"
)

// Valid reports whether p is one of the known periods.
func (p Period) Valid() bool {
	switch p {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodAll:
		return true
	}
	return false
}

// Verb selects the title-phrase patterns used to find a referenced task.
type Verb string

const (
	VerbComplete Verb = "complete"
	VerbDelete   Verb = "delete"
	VerbEdit     Verb = "edit"
)

// MinTermLength is the shortest title or search term accepted.
const MinTermLength = 2
