package domain

import "time"

type ReclamationStatus string

const (
	ReclamationOpen     ReclamationStatus = "OPEN"
	ReclamationResolved ReclamationStatus = "RESOLVED"
)

// Reclamation is a complaint raised by staff and answered by the admin.
type Reclamation struct {
	ID         string
	EmployeeID string
	AuthorName string
	Message    string
	CreatedAt  time.Time
	Status     ReclamationStatus
	Replies    []ReclamationReply
}

type ReclamationReply struct {
	ID         string
	AuthorName string
	Message    string
	CreatedAt  time.Time
}
