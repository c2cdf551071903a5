package sqlite

import (
	"database/sql"
	"time"
)

// FormatTimeForDB converts a time.Time to the unix seconds stored in the tasks table
func FormatTimeForDB(t time.Time) int64 {
	return t.Unix()
}

// FormatTimePtrForDB converts a *time.Time to unix seconds, returning nil (SQL NULL) if the pointer is nil
func FormatTimePtrForDB(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return FormatTimeForDB(*t)
}

// ParseTimeFromDB converts stored unix seconds back to a UTC time
func ParseTimeFromDB(seconds int64) time.Time {
	return time.Unix(seconds, 0).UTC()
}

// ParseNullTimeFromDB converts a nullable unix seconds column, returning nil for NULL
func ParseNullTimeFromDB(seconds sql.NullInt64) *time.Time {
	if !seconds.Valid {
		return nil
	}
	t := ParseTimeFromDB(seconds.Int64)
	return &t
}
