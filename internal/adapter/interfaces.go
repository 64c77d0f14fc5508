// Package adapter contains clients for external collaborator services.
package adapter

import "context"

// Mailer delivers outbound notification email through an external gateway.
// Implementations must be safe for concurrent use; delivery runs on
// background workers detached from any request context.
type Mailer interface {
	SendWelcomeEmail(ctx context.Context, email string) error
}
