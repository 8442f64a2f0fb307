package store

const (
	createUser = `INSERT INTO users (id, name, email, phone, role, status, password_digest)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, name, email, phone, role, status, password_digest, created_at, last_login_at;`

	findUserByEmail = `SELECT id, name, email, phone, role, status, password_digest, created_at, last_login_at
    FROM users
    WHERE lower(email) = lower($1);`

	findUserByID = `SELECT id, name, email, phone, role, status, password_digest, created_at, last_login_at
    FROM users
    WHERE id = $1;`

	listUsers = `SELECT id, name, email, phone, role, status, password_digest, created_at, last_login_at
    FROM users
    ORDER BY created_at;`

	updateUserRole = `UPDATE users SET role = $1 WHERE id = $2;`

	updateUserStatus = `UPDATE users SET status = $1 WHERE id = $2;`

	touchLastLogin = `UPDATE users SET last_login_at = now() WHERE id = $1;`

	createMeal = `INSERT INTO meals (id, user_id, meal_date, breakfast, lunch, dinner, status)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, user_id, meal_date, breakfast, lunch, dinner, status, created_at, updated_at;`

	updateMealStatus = `UPDATE meals
    SET status = $1, updated_at = now()
    WHERE id = $2;`

	createBazarEntry = `INSERT INTO bazar_entries (id, user_id, entry_date, items, amount, status)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, user_id, entry_date, items, amount, status, created_at, updated_at;`

	updateBazarStatus = `UPDATE bazar_entries
    SET status = $1, updated_at = now()
    WHERE id = $2;`
)
