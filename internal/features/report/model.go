package report

import "time"

type Status string

const (
	StatusGreen  Status = "green"
	StatusYellow Status = "yellow"
	StatusRed    Status = "red"
)

// Report is one weekly status report for a department. KPI values are
// numeric by contract; non-numeric values are rejected at decode time.
type Report struct {
	ID            string             `json:"id" bson:"_id"`
	Week          string             `json:"week" bson:"week"`
	Department    string             `json:"department" bson:"department"`
	Status        Status             `json:"status" bson:"status"`
	KPIs          map[string]float64 `json:"kpis" bson:"kpis"`
	Achievements  string             `json:"achievements" bson:"achievements"`
	Challenges    string             `json:"challenges" bson:"challenges"`
	NextWeekPlans string             `json:"nextWeekPlans" bson:"next_week_plans"`
	Notes         string             `json:"notes" bson:"notes"`
	CreatedBy     string             `json:"createdBy" bson:"created_by"`
	CreatedAt     time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updated_at"`
}

// CreateRequest carries the client-settable fields of a new report.
type CreateRequest struct {
	Week          string             `json:"week"`
	Department    string             `json:"department"`
	Status        Status             `json:"status"`
	KPIs          map[string]float64 `json:"kpis"`
	Achievements  string             `json:"achievements"`
	Challenges    string             `json:"challenges"`
	NextWeekPlans string             `json:"nextWeekPlans"`
	Notes         string             `json:"notes"`
	CreatedBy     string             `json:"createdBy"`
}

// Update enumerates the fields a PUT may change. Anything else in the
// body, id and createdAt included, is silently dropped by the decoder.
type Update struct {
	Week          *string             `json:"week"`
	Department    *string             `json:"department"`
	Status        *Status             `json:"status"`
	KPIs          *map[string]float64 `json:"kpis"`
	Achievements  *string             `json:"achievements"`
	Challenges    *string             `json:"challenges"`
	NextWeekPlans *string             `json:"nextWeekPlans"`
	Notes         *string             `json:"notes"`
	CreatedBy     *string             `json:"createdBy"`
}

// Filter is an exact-match conjunction; zero values impose no constraint.
// CreatedBefore is used by the retention sweep, Limit <= 0 means unlimited.
type Filter struct {
	Department    string
	Week          string
	Status        string
	CreatedBefore *time.Time
	Limit         int
}

func (u *Update) apply(r *Report) {
	if u.Week != nil {
		r.Week = *u.Week
	}
	if u.Department != nil {
		r.Department = *u.Department
	}
	if u.Status != nil {
		r.Status = *u.Status
	}
	if u.KPIs != nil {
		r.KPIs = *u.KPIs
	}
	if u.Achievements != nil {
		r.Achievements = *u.Achievements
	}
	if u.Challenges != nil {
		r.Challenges = *u.Challenges
	}
	if u.NextWeekPlans != nil {
		r.NextWeekPlans = *u.NextWeekPlans
	}
	if u.Notes != nil {
		r.Notes = *u.Notes
	}
	if u.CreatedBy != nil {
		r.CreatedBy = *u.CreatedBy
	}
}
