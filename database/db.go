package database

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"ogeprepbot/models"
)

// DB handles all database operations
type DB struct {
	conn *sql.DB
}

// New creates a new database connection and initializes tables
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err = createTables(db); err != nil {
		return nil, err
	}

	return &DB{conn: db}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// createTables creates the necessary tables if they don't exist
func createTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			joined_at INTEGER NOT NULL,
			last_seen INTEGER NOT NULL,
			is_admin BOOLEAN NOT NULL DEFAULT 0,
			tasks_total INTEGER NOT NULL DEFAULT 0,
			tasks_correct INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			topic TEXT NOT NULL,
			question TEXT NOT NULL,
			answer TEXT NOT NULL,
			correct_answer TEXT NOT NULL,
			is_correct BOOLEAN NOT NULL,
			created_at INTEGER NOT NULL,
			FOREIGN KEY (user_id) REFERENCES users(user_id)
		)`,
		`CREATE TABLE IF NOT EXISTS actions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			action TEXT NOT NULL,
			details TEXT NOT NULL DEFAULT '',
			created_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_user_id ON results(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_actions_user_id ON actions(user_id)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}

// UpsertUser inserts a user on first contact or refreshes the mutable
// fields (name, last_seen, is_admin) of an existing row, so the stored
// flag follows the configured admin id. Counters and the join timestamp
// are never touched here.
func (db *DB) UpsertUser(userID int64, name string, isAdmin bool) error {
	now := time.Now().Unix()
	_, err := db.conn.Exec(`
		INSERT INTO users (user_id, name, joined_at, last_seen, is_admin)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			name = excluded.name,
			last_seen = excluded.last_seen,
			is_admin = excluded.is_admin
	`, userID, name, now, now, isAdmin)
	return err
}

// RecordResult appends one result row and bumps the user's cumulative
// counters in a single transaction. The row's timestamp is assigned here.
func (db *DB) RecordResult(res models.Result) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO results (user_id, topic, question, answer, correct_answer, is_correct, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, res.UserID, res.Topic, res.Question, res.Answer, res.CorrectAnswer, res.IsCorrect, time.Now().Unix())
	if err != nil {
		return err
	}

	correct := 0
	if res.IsCorrect {
		correct = 1
	}
	_, err = tx.Exec(`
		UPDATE users SET tasks_total = tasks_total + 1, tasks_correct = tasks_correct + ?
		WHERE user_id = ?
	`, correct, res.UserID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// GetUser returns the stored profile for a user.
func (db *DB) GetUser(userID int64) (*models.User, error) {
	var u models.User
	var joined, seen int64
	err := db.conn.QueryRow(`
		SELECT user_id, name, joined_at, last_seen, is_admin, tasks_total, tasks_correct
		FROM users WHERE user_id = ?
	`, userID).Scan(&u.ID, &u.Name, &joined, &seen, &u.IsAdmin, &u.TasksTotal, &u.TasksCorrect)
	if err != nil {
		return nil, err
	}
	u.JoinedAt = time.Unix(joined, 0)
	u.LastSeen = time.Unix(seen, 0)
	return &u, nil
}

// GetUserStats returns the user's cumulative counters and a per-topic
// breakdown of recorded results.
func (db *DB) GetUserStats(userID int64) (total, correct int, byTopic []models.TopicStat, err error) {
	err = db.conn.QueryRow(`
		SELECT tasks_total, tasks_correct FROM users WHERE user_id = ?
	`, userID).Scan(&total, &correct)
	if err == sql.ErrNoRows {
		return 0, 0, nil, nil
	}
	if err != nil {
		return 0, 0, nil, err
	}

	rows, err := db.conn.Query(`
		SELECT topic, COUNT(*), COALESCE(SUM(CASE WHEN is_correct THEN 1 ELSE 0 END), 0)
		FROM results WHERE user_id = ?
		GROUP BY topic
	`, userID)
	if err != nil {
		return 0, 0, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var ts models.TopicStat
		if err := rows.Scan(&ts.Topic, &ts.Total, &ts.Correct); err != nil {
			return 0, 0, nil, err
		}
		byTopic = append(byTopic, ts)
	}
	return total, correct, byTopic, rows.Err()
}

// GetAggregateStats returns store-wide totals and the top-N users by
// recorded task count.
func (db *DB) GetAggregateStats(topN int) (*models.AggregateStats, error) {
	stats := &models.AggregateStats{}

	if err := db.conn.QueryRow("SELECT COUNT(*) FROM users").Scan(&stats.Users); err != nil {
		return nil, err
	}
	if err := db.conn.QueryRow("SELECT COUNT(*) FROM results").Scan(&stats.Results); err != nil {
		return nil, err
	}
	if err := db.conn.QueryRow("SELECT COUNT(*) FROM actions").Scan(&stats.Actions); err != nil {
		return nil, err
	}
	if err := db.conn.QueryRow("SELECT COUNT(DISTINCT user_id) FROM results").Scan(&stats.ActiveUsers); err != nil {
		return nil, err
	}

	rows, err := db.conn.Query(`
		SELECT user_id, name, tasks_total, tasks_correct
		FROM users ORDER BY tasks_total DESC LIMIT ?
	`, topN)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.TasksTotal, &u.TasksCorrect); err != nil {
			return nil, err
		}
		stats.Top = append(stats.Top, u)
	}
	return stats, rows.Err()
}

// ListUsers returns users ordered by most recent activity.
func (db *DB) ListUsers(limit int) ([]models.User, error) {
	rows, err := db.conn.Query(`
		SELECT user_id, name, joined_at, last_seen, is_admin, tasks_total, tasks_correct
		FROM users ORDER BY last_seen DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		var joined, seen int64
		if err := rows.Scan(&u.ID, &u.Name, &joined, &seen, &u.IsAdmin, &u.TasksTotal, &u.TasksCorrect); err != nil {
			return nil, err
		}
		u.JoinedAt = time.Unix(joined, 0)
		u.LastSeen = time.Unix(seen, 0)
		users = append(users, u)
	}
	return users, rows.Err()
}

// LogAction appends one row to the action log.
func (db *DB) LogAction(userID int64, action, details string) error {
	_, err := db.conn.Exec(`
		INSERT INTO actions (user_id, action, details, created_at) VALUES (?, ?, ?, ?)
	`, userID, action, details, time.Now().Unix())
	return err
}

// RecentActions returns the newest action log entries.
func (db *DB) RecentActions(limit int) ([]models.ActionEntry, error) {
	rows, err := db.conn.Query(`
		SELECT id, user_id, action, details, created_at
		FROM actions ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.ActionEntry
	for rows.Next() {
		var e models.ActionEntry
		var created int64
		if err := rows.Scan(&e.ID, &e.UserID, &e.Action, &e.Details, &created); err != nil {
			return nil, err
		}
		e.CreatedAt = time.Unix(created, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
