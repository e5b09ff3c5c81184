package email

import "context"

// Message is a single outbound email. HTML is optional; when empty the
// service renders one from Text.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Sender delivers one email per call.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
