package models

import "time"

// Session is the request-scoped identity resolved from the bearer token.
type Session struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	ClinicID  *string   `json:"clinic_id,omitempty"`
	Plan      *string   `json:"plan,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) HasClinic() bool {
	return s != nil && s.ClinicID != nil && *s.ClinicID != ""
}

func (s *Session) HasPlan() bool {
	return s != nil && s.Plan != nil && *s.Plan != ""
}

// Clinic returns the clinic id or an empty string.
func (s *Session) Clinic() string {
	if !s.HasClinic() {
		return ""
	}
	return *s.ClinicID
}
