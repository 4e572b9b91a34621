package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/ecoleta-discovery/internal/domain"
	"github.com/ecoleta-discovery/internal/domain/repository"
	"github.com/ecoleta-discovery/internal/pkg/errors"
)

const (
	WhatsappMessage = "Oi, estou testando o enviou de mensagem no whatsapp..."
	MailSubject     = "Interesse na coleta de residuos"
)

// DetailLookup loads one collection point and dispatches contact actions
// for it. Contact actions are refused until the point has loaded.
type DetailLookup struct {
	pointRepo  repository.PointRepository
	dispatcher repository.ContactDispatcher
	pointID    int64
	logger     *zap.Logger

	mu     sync.RWMutex
	detail *domain.PointDetail
}

func NewDetailLookup(
	pointRepo repository.PointRepository,
	dispatcher repository.ContactDispatcher,
	pointID int64,
	logger *zap.Logger,
) *DetailLookup {
	return &DetailLookup{
		pointRepo:  pointRepo,
		dispatcher: dispatcher,
		pointID:    pointID,
		logger:     logger.With(zap.Int64("point_id", pointID)),
	}
}

// Load fetches the point. A failed load keeps any previously loaded detail.
func (l *DetailLookup) Load(ctx context.Context) (*domain.PointDetail, error) {
	if l.pointID <= 0 {
		return nil, errors.ErrInvalidPointID
	}

	detail, err := l.pointRepo.GetPoint(ctx, l.pointID)
	if err != nil {
		l.logger.Error("Failed to load collection point", zap.Error(err))
		return nil, errors.ErrDetailUnavailable.Wrap(err)
	}

	l.mu.Lock()
	l.detail = detail
	l.mu.Unlock()

	l.logger.Debug("Collection point loaded",
		zap.String("name", detail.Point.Name),
		zap.Int("items", len(detail.Items)))

	return detail, nil
}

// Detail returns the loaded point or nil.
func (l *DetailLookup) Detail() *domain.PointDetail {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.detail
}

// ItemTitles lists the accepted items as "A, B, C".
func (l *DetailLookup) ItemTitles() string {
	detail := l.Detail()
	if detail == nil {
		return ""
	}
	titles := make([]string, 0, len(detail.Items))
	for _, item := range detail.Items {
		titles = append(titles, item.Title)
	}
	return strings.Join(titles, ", ")
}

// Address renders "city / uf".
func (l *DetailLookup) Address() string {
	detail := l.Detail()
	if detail == nil {
		return ""
	}
	return fmt.Sprintf("%s / %s", detail.Point.City, detail.Point.UF)
}

// WhatsappLink builds the messaging deep link for phone with the fixed greeting.
func WhatsappLink(phone string) string {
	return fmt.Sprintf("whatsapp://send?phone=%s&text=%s", phone, WhatsappMessage)
}

// OpenWhatsapp hands the messaging link of the loaded point to the dispatcher.
func (l *DetailLookup) OpenWhatsapp() error {
	detail := l.Detail()
	if detail == nil {
		return errors.ErrDetailNotLoaded
	}

	if err := l.dispatcher.OpenLink(WhatsappLink(detail.Point.Whatsapp)); err != nil {
		l.logger.Warn("Failed to open messaging link", zap.Error(err))
		return err
	}
	return nil
}

// ComposeMail opens a mail draft addressed to the loaded point.
func (l *DetailLookup) ComposeMail() error {
	detail := l.Detail()
	if detail == nil {
		return errors.ErrDetailNotLoaded
	}

	draft := domain.MailDraft{
		Subject:    MailSubject,
		Recipients: []string{detail.Point.Email},
	}
	if err := l.dispatcher.ComposeMail(draft); err != nil {
		l.logger.Warn("Failed to compose mail", zap.Error(err))
		return err
	}
	return nil
}
