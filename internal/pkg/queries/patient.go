package queries

const (
	patientColumns = `
		id, clinic_id, name, email, phone_number, sex, created_at, updated_at
	`

	FindPatientsByClinicQuery = `
		SELECT` + patientColumns + `
		FROM patients
		WHERE clinic_id = $1
			AND ($2 = '' OR unaccent(lower(name)) LIKE '%' || unaccent(lower($2)) || '%')
		ORDER BY name ASC
	`

	FindPatientByIDQuery = `
		SELECT` + patientColumns + `
		FROM patients
		WHERE clinic_id = $1 AND id = $2
	`

	UpsertPatientQuery = `
		INSERT INTO patients (id, clinic_id, name, email, phone_number, sex, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			phone_number = EXCLUDED.phone_number,
			sex = EXCLUDED.sex,
			updated_at = EXCLUDED.updated_at
		WHERE patients.clinic_id = EXCLUDED.clinic_id
		RETURNING` + patientColumns

	DeletePatientQuery = `
		DELETE FROM patients
		WHERE clinic_id = $1 AND id = $2
	`
)
