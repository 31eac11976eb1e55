package session

import (
	"errors"
	"fmt"
)

type StartSessionDTO struct {
	Subject string `json:"subject" binding:"required"`
}

type EndSessionDTO struct {
	SessionID string `json:"sessionId" binding:"required"`
	Notes     string `json:"notes"`
}

// ListFilter narrows the session list to a single calendar day and/or an
// exact subject match.
type ListFilter struct {
	Date    string `form:"date"`
	Subject string `form:"subject"`
}

var (
	errInvalidSubject   = errors.New("invalid subject")
	errActiveExists     = errors.New("active session exists")
	errSessionNotFound  = errors.New("study session not found")
	errNoActiveToFinish = errors.New("active study session not found")
	errBadDateFilter    = errors.New("invalid date filter")
)

func errInvalidDateFilter(date string) error {
	return fmt.Errorf("%w %q, expected YYYY-MM-DD", errBadDateFilter, date)
}
