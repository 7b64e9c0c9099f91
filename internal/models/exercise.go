package models

// Exercise is one logged activity entry. It always belongs to exactly one
// user and is never moved or deleted.
type Exercise struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"` // minutes
	Date        int64  `json:"date"`     // epoch milliseconds
}

// LogEntry is an exercise as rendered in a log response, with the date as a
// human-readable string.
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"` // e.g. "Mon Jan 01 2024"
}

// UserLog is a user's exercise history, optionally filtered by date range
// and truncated by a limit. Count always equals len(Log).
type UserLog struct {
	ID       string     `json:"id"`
	Username string     `json:"username"`
	Log      []LogEntry `json:"log"`
	Count    int        `json:"count"`
}

// Stats holds aggregate counts for the background activity monitor.
type Stats struct {
	Users     int `json:"users"`
	Exercises int `json:"exercises"`
}
