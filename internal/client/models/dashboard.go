package models

// DashboardDetails carries the entity counts shown on the dashboard home
// view, as returned by GET /dashboard/details.
type DashboardDetails struct {
	Categories int `json:"categories"`
	Products   int `json:"products"`
	Bills      int `json:"bills"`
}
