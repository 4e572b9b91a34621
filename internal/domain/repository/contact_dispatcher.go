package repository

import "github.com/ecoleta-discovery/internal/domain"

// ContactDispatcher hands outbound contact actions to the platform.
// Both calls are fire-and-forget.
type ContactDispatcher interface {
	OpenLink(link string) error
	ComposeMail(draft domain.MailDraft) error
}
