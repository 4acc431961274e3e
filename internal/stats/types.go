package stats

// Summary holds the scalar counters derived from a task collection.
type Summary struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	InProgress     int     `json:"in_progress"`
	Todo           int     `json:"todo"`
	Overdue        int     `json:"overdue"`
	CompletionRate float64 `json:"completion_rate"`
}

// CategoryDatum is one slice/bar of a categorical chart.
type CategoryDatum struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// WeeklyDatum is one point of the weekly activity line chart.
type WeeklyDatum struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Chart color constants. The dashboard relies on these staying fixed.
const (
	ColorCompleted  = "#10b981"
	ColorInProgress = "#3b82f6"
	ColorTodo       = "#f59e0b"
	ColorOverdue    = "#ef4444"

	ColorUrgent = "#ef4444"
	ColorHigh   = "#f97316"
	ColorMedium = "#eab308"
	ColorLow    = "#22c55e"
)
