package queries

const (
	appointmentColumns = `
		id, clinic_id, patient_id, doctor_id, date, appointment_price_in_cents, created_at, updated_at
	`

	appointmentDetailSelect = `
		SELECT
			a.id, a.clinic_id, a.patient_id, a.doctor_id, a.date, a.appointment_price_in_cents,
			a.created_at, a.updated_at,
			p.id, p.name, p.email, p.phone_number, p.sex,
			d.id, d.name, d.specialty, d.avatar_image_url
		FROM appointments a
		JOIN patients p ON p.id = a.patient_id
		JOIN doctors d ON d.id = a.doctor_id
	`

	FindAppointmentsByClinicQuery = appointmentDetailSelect + `
		WHERE a.clinic_id = $1
		ORDER BY a.date DESC
	`

	FindAppointmentsByPatientQuery = appointmentDetailSelect + `
		WHERE a.clinic_id = $1 AND a.patient_id = $2
		ORDER BY a.date DESC
	`

	FindAppointmentsBetweenQuery = appointmentDetailSelect + `
		WHERE a.clinic_id = $1 AND a.date >= $2 AND a.date < $3
		ORDER BY a.date ASC
	`

	FindAppointmentByIDQuery = `
		SELECT` + appointmentColumns + `
		FROM appointments
		WHERE clinic_id = $1 AND id = $2
	`

	FindBookedTimesQuery = `
		SELECT date
		FROM appointments
		WHERE doctor_id = $1 AND date >= $2 AND date < $3
		ORDER BY date ASC
	`

	// A row owned by another clinic is left untouched and nothing is returned.
	UpsertAppointmentQuery = `
		INSERT INTO appointments (
			id, clinic_id, patient_id, doctor_id, date, appointment_price_in_cents, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $7
		)
		ON CONFLICT (id) DO UPDATE SET
			patient_id = EXCLUDED.patient_id,
			doctor_id = EXCLUDED.doctor_id,
			date = EXCLUDED.date,
			appointment_price_in_cents = EXCLUDED.appointment_price_in_cents,
			updated_at = EXCLUDED.updated_at
		WHERE appointments.clinic_id = EXCLUDED.clinic_id
		RETURNING` + appointmentColumns

	DeleteAppointmentQuery = `
		DELETE FROM appointments
		WHERE clinic_id = $1 AND id = $2
	`
)
