package queries

const (
	CreateClinicQuery = `
		INSERT INTO clinics (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		RETURNING id, name, created_at, updated_at
	`

	CreateUserClinicQuery = `
		INSERT INTO users_to_clinics (user_id, clinic_id, created_at)
		VALUES ($1, $2, $3)
	`

	// The first membership is the active clinic.
	FindClinicByUserIDQuery = `
		SELECT c.id, c.name, c.created_at, c.updated_at
		FROM clinics c
		JOIN users_to_clinics uc ON uc.clinic_id = c.id
		WHERE uc.user_id = $1
		ORDER BY uc.created_at ASC
		LIMIT 1
	`

	FindClinicByIDQuery = `
		SELECT id, name, created_at, updated_at
		FROM clinics
		WHERE id = $1
	`
)
