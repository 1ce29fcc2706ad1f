package queries

const (
	doctorColumns = `
		id, clinic_id, name, specialty, sex, avatar_image_url, appointment_price_in_cents,
		available_from_week_day, available_to_week_day,
		available_from_time::text, available_to_time::text,
		created_at, updated_at
	`

	FindDoctorsByClinicQuery = `
		SELECT` + doctorColumns + `
		FROM doctors
		WHERE clinic_id = $1
			AND ($2 = '' OR unaccent(lower(name)) LIKE '%' || unaccent(lower($2)) || '%')
		ORDER BY name ASC
	`

	FindDoctorByIDQuery = `
		SELECT` + doctorColumns + `
		FROM doctors
		WHERE clinic_id = $1 AND id = $2
	`

	// A row owned by another clinic is left untouched and nothing is returned.
	UpsertDoctorQuery = `
		INSERT INTO doctors (
			id, clinic_id, name, specialty, sex, avatar_image_url, appointment_price_in_cents,
			available_from_week_day, available_to_week_day, available_from_time, available_to_time,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10::time, $11::time, $12, $12
		)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			specialty = EXCLUDED.specialty,
			sex = EXCLUDED.sex,
			avatar_image_url = COALESCE(EXCLUDED.avatar_image_url, doctors.avatar_image_url),
			appointment_price_in_cents = EXCLUDED.appointment_price_in_cents,
			available_from_week_day = EXCLUDED.available_from_week_day,
			available_to_week_day = EXCLUDED.available_to_week_day,
			available_from_time = EXCLUDED.available_from_time,
			available_to_time = EXCLUDED.available_to_time,
			updated_at = EXCLUDED.updated_at
		WHERE doctors.clinic_id = EXCLUDED.clinic_id
		RETURNING` + doctorColumns

	UpdateDoctorAvatarQuery = `
		UPDATE doctors
		SET avatar_image_url = $3, updated_at = $4
		WHERE clinic_id = $1 AND id = $2
		RETURNING` + doctorColumns

	DeleteDoctorQuery = `
		DELETE FROM doctors
		WHERE clinic_id = $1 AND id = $2
	`

	FindDoctorAvailabilitiesQuery = `
		SELECT id, doctor_id, from_week_day, to_week_day, from_time::text, to_time::text, created_at, updated_at
		FROM doctor_availabilities
		WHERE doctor_id = $1
		ORDER BY created_at ASC, id ASC
	`

	UpsertDoctorAvailabilityQuery = `
		INSERT INTO doctor_availabilities (
			id, doctor_id, from_week_day, to_week_day, from_time, to_time, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5::time, $6::time, $7, $7
		)
		ON CONFLICT (id) DO UPDATE SET
			from_week_day = EXCLUDED.from_week_day,
			to_week_day = EXCLUDED.to_week_day,
			from_time = EXCLUDED.from_time,
			to_time = EXCLUDED.to_time,
			updated_at = EXCLUDED.updated_at
		WHERE doctor_availabilities.doctor_id = EXCLUDED.doctor_id
		RETURNING id, doctor_id, from_week_day, to_week_day, from_time::text, to_time::text, created_at, updated_at
	`
)
