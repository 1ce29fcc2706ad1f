package requests

type DashboardPeriod struct {
	From string `json:"from" validate:"omitempty,calendar_date"`
	To   string `json:"to" validate:"omitempty,calendar_date"`
}
