package source

import (
	"context"

	"internsift/app/job"
)

// Source produces raw candidate records for the pipeline.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]job.Candidate, error)
}

// Message is one decoded job-alert email.
type Message struct {
	Subject string
	Sender  string
	HTML    string
	URLs    []string
}

// EmailSource hides mail retrieval and decoding.
type EmailSource interface {
	Fetch(ctx context.Context) ([]Message, error)
}
