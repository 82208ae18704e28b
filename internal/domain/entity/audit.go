package entity

import "time"

type AuditEntry struct {
	ID        int64
	Action    string
	Detail    string
	Actor     string
	CreatedAt time.Time
}

type Feedback struct {
	ID        string
	UserID    string
	UserName  string
	Source    string
	Message   string
	CreatedAt time.Time
}
