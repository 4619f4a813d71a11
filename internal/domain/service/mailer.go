package service

// Mailer is the outbound email collaborator. Delivery is best-effort: the
// credential flows log a send failure and still succeed, so implementations
// must never be load-bearing for correctness.
type Mailer interface {
	// IsEnabled reports whether outbound mail is configured at all.
	IsEnabled() bool

	// Send delivers one message to one recipient.
	Send(to, subject, body string) error
}
