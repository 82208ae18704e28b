package domain

import "errors"

var (
	ErrNoDestination       = errors.New("no destination channel configured")
	ErrPoolExhausted       = errors.New("spotlight pool exhausted")
	ErrUnknownKind         = errors.New("unknown channel kind")
	ErrUnknownAnnouncement = errors.New("unknown announcement type")
	ErrEmptyFeedback       = errors.New("feedback message is empty")
)
