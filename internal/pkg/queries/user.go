package queries

const (
	CreateUserQuery = `
		INSERT INTO users (id, name, email, password, plan, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id, name, email, password, plan, created_at, updated_at
	`

	FindUserByEmailQuery = `
		SELECT id, name, email, password, plan, created_at, updated_at
		FROM users
		WHERE lower(email) = lower($1)
	`

	FindUserByIDQuery = `
		SELECT id, name, email, password, plan, created_at, updated_at
		FROM users
		WHERE id = $1
	`
)
