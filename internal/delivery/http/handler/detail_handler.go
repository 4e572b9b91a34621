package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ecoleta-discovery/internal/domain/repository"
	"github.com/ecoleta-discovery/internal/pkg/errors"
	"github.com/ecoleta-discovery/internal/pkg/utils"
	"github.com/ecoleta-discovery/internal/pkg/validator"
	"github.com/ecoleta-discovery/internal/usecase"
	"github.com/ecoleta-discovery/internal/usecase/dto"
)

// DetailHandler - collection point detail and contact actions
type DetailHandler struct {
	pointRepo  repository.PointRepository
	dispatcher repository.ContactDispatcher
	logger     *zap.Logger
}

func NewDetailHandler(
	pointRepo repository.PointRepository,
	dispatcher repository.ContactDispatcher,
	logger *zap.Logger,
) *DetailHandler {
	return &DetailHandler{
		pointRepo:  pointRepo,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// GetPoint - detail of one collection point
func (h *DetailHandler) GetPoint(c *fiber.Ctx) error {
	lookup, err := h.load(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	detail := lookup.Detail()
	return utils.SendSuccess(c, dto.PointDetailResponse{
		Point:      detail.Point,
		Items:      detail.Items,
		ItemTitles: lookup.ItemTitles(),
		Address:    lookup.Address(),
	}, nil)
}

// OpenWhatsapp - hand the messaging link of a point to the dispatcher
func (h *DetailHandler) OpenWhatsapp(c *fiber.Ctx) error {
	lookup, err := h.load(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	if err := lookup.OpenWhatsapp(); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ContactResponse{
		Action: "whatsapp",
		Target: usecase.WhatsappLink(lookup.Detail().Point.Whatsapp),
	}, nil)
}

// ComposeMail - hand a mail draft for a point to the dispatcher
func (h *DetailHandler) ComposeMail(c *fiber.Ctx) error {
	lookup, err := h.load(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	if err := lookup.ComposeMail(); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ContactResponse{
		Action: "email",
		Target: lookup.Detail().Point.Email,
	}, nil)
}

func (h *DetailHandler) load(c *fiber.Ctx) (*usecase.DetailLookup, error) {
	var req dto.PointRequest
	if err := c.ParamsParser(&req); err != nil {
		return nil, errors.ErrInvalidPointID
	}
	if err := validator.Validate(&req); err != nil {
		return nil, errors.ErrInvalidPointID
	}

	lookup := usecase.NewDetailLookup(h.pointRepo, h.dispatcher, req.PointID, h.logger)
	if _, err := lookup.Load(c.UserContext()); err != nil {
		return nil, err
	}
	return lookup, nil
}
