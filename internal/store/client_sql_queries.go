package store

const (
	createClientSchema = `
		CREATE TABLE IF NOT EXISTS session (
			id           INTEGER PRIMARY KEY CHECK (id = 1),
			token        TEXT NOT NULL,
			identity     TEXT NOT NULL,
			saved_at     TIMESTAMP NOT NULL
		);

		CREATE TABLE IF NOT EXISTS pending_submissions (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			kind       TEXT NOT NULL,
			payload    BLOB NOT NULL,
			attempts   INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`

	saveSession = `
		INSERT INTO session (id, token, identity, saved_at)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			token    = excluded.token,
			identity = excluded.identity,
			saved_at = excluded.saved_at;`

	loadSession = `
		SELECT token, identity, saved_at
		FROM session
		WHERE id = 1;`

	clearSession = `DELETE FROM session WHERE id = 1;`

	enqueueSubmission = `
		INSERT INTO pending_submissions (kind, payload)
		VALUES ($1, $2);`

	pendingSubmissions = `
		SELECT id, kind, payload, attempts, created_at
		FROM pending_submissions
		ORDER BY id;`

	markSubmissionAttempt = `
		UPDATE pending_submissions
		SET attempts = attempts + 1
		WHERE id = $1;`

	removeSubmission = `DELETE FROM pending_submissions WHERE id = $1;`
)
