package models

import "time"

// User is a row in the users table. Counters are cumulative over all
// answered questions and are only ever incremented.
type User struct {
	ID           int64
	Name         string
	JoinedAt     time.Time
	LastSeen     time.Time
	IsAdmin      bool
	TasksTotal   int
	TasksCorrect int
}

// Result is one answered question. Rows are append-only.
type Result struct {
	ID            int64
	UserID        int64
	Topic         string
	Question      string
	Answer        string
	CorrectAnswer string
	IsCorrect     bool
	CreatedAt     time.Time
}

// ActionEntry is one row of the audit trail of user-triggered events.
type ActionEntry struct {
	ID        int64
	UserID    int64
	Action    string
	Details   string
	CreatedAt time.Time
}

// TopicStat is a per-topic slice of a user's results.
type TopicStat struct {
	Topic   string
	Total   int
	Correct int
}

// AggregateStats is the administrator's view over the whole store.
type AggregateStats struct {
	Users       int
	Results     int
	Actions     int
	ActiveUsers int // users with at least one recorded result
	Top         []User
}
