package view

// Mode selects how many days the grid shows.
type Mode string

const (
	ModeDay  Mode = "day"
	ModeWeek Mode = "week"
)

func (m Mode) Valid() bool {
	return m == ModeDay || m == ModeWeek
}

// DialogState tracks the edit dialog, orthogonal to the view mode.
type DialogState string

const (
	DialogClosed DialogState = "closed"
	DialogCreate DialogState = "create"
	DialogEdit   DialogState = "edit"
)

// State is a snapshot of the view controller for rendering.
type State struct {
	SelectedDate string
	Mode         Mode
	Dialog       DialogState
	EditingID    string
	VisibleDates []string
}
