package contact

import (
	"github.com/ecoleta-discovery/internal/domain"
	"github.com/ecoleta-discovery/internal/domain/repository"
	"go.uber.org/zap"
)

var _ repository.ContactDispatcher = (*LogDispatcher)(nil)

// LogDispatcher records outbound contact actions instead of handing them to a
// messaging app or mail composer. Used by the headless bridge.
type LogDispatcher struct {
	logger *zap.Logger
}

func NewLogDispatcher(logger *zap.Logger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) OpenLink(link string) error {
	d.logger.Info("Opening messaging link", zap.String("link", link))
	return nil
}

func (d *LogDispatcher) ComposeMail(draft domain.MailDraft) error {
	d.logger.Info("Composing mail",
		zap.String("subject", draft.Subject),
		zap.Strings("recipients", draft.Recipients))
	return nil
}
