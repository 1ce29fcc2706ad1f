package queries

const (
	FindDashboardTotalsQuery = `
		SELECT
			COALESCE(SUM(a.appointment_price_in_cents), 0)::bigint,
			COUNT(a.id)::bigint,
			(SELECT COUNT(*) FROM patients WHERE clinic_id = $1)::bigint,
			(SELECT COUNT(*) FROM doctors WHERE clinic_id = $1)::bigint
		FROM appointments a
		WHERE a.clinic_id = $1 AND a.date >= $2 AND a.date < $3
	`

	FindDashboardTopDoctorsQuery = `
		SELECT d.id, d.name, d.specialty, d.avatar_image_url, COUNT(a.id)::bigint AS total_appointments
		FROM doctors d
		LEFT JOIN appointments a ON a.doctor_id = d.id AND a.date >= $2 AND a.date < $3
		WHERE d.clinic_id = $1
		GROUP BY d.id, d.name, d.specialty, d.avatar_image_url
		ORDER BY total_appointments DESC, d.name ASC
		LIMIT $4
	`

	FindDashboardTopSpecialtiesQuery = `
		SELECT d.specialty, COUNT(a.id)::bigint AS total_appointments
		FROM appointments a
		JOIN doctors d ON d.id = a.doctor_id
		WHERE a.clinic_id = $1 AND a.date >= $2 AND a.date < $3
		GROUP BY d.specialty
		ORDER BY total_appointments DESC, d.specialty ASC
	`

	// $4 is an IANA zone name so days follow the clinic's calendar.
	FindDashboardDailyAppointmentsQuery = `
		SELECT
			(a.date AT TIME ZONE $4)::date AS day,
			COUNT(a.id)::bigint,
			COALESCE(SUM(a.appointment_price_in_cents), 0)::bigint
		FROM appointments a
		WHERE a.clinic_id = $1 AND a.date >= $2 AND a.date < $3
		GROUP BY day
		ORDER BY day ASC
	`
)
