package models

type Clinic struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	TimeModel
}
