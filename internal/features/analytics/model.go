package analytics

// Departments is the fixed set every scorecard covers, with or
// without data.
var Departments = []string{"Vertrieb", "Auftragsabwicklung", "Lager", "Kundenservice"}

// KPIResult groups every KPI value seen across the selected reports and
// the arithmetic mean per key. Keys nobody reported are absent; keys
// reported by a subset average over that subset only.
type KPIResult struct {
	KPIData     map[string][]float64 `json:"kpiData"`
	Averages    map[string]float64   `json:"averages"`
	ReportCount int                  `json:"reportCount"`
}

type StatusCounts struct {
	Green  int `json:"green"`
	Yellow int `json:"yellow"`
	Red    int `json:"red"`
}

// DepartmentScore is a 0-100 weighted health score: green counts 100,
// yellow 50, red 0.
type DepartmentScore struct {
	Department   string       `json:"department"`
	ReportCount  int          `json:"reportCount"`
	StatusCounts StatusCounts `json:"statusCounts"`
	Score        float64      `json:"score"`
}

type PriorityCounts struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

type TaskStats struct {
	Total      int            `json:"total"`
	Todo       int            `json:"todo"`
	InProgress int            `json:"inProgress"`
	Done       int            `json:"done"`
	Overdue    int            `json:"overdue"`
	ByPriority PriorityCounts `json:"byPriority"`
}
