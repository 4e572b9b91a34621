package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ecoleta-discovery/internal/domain"
	"github.com/ecoleta-discovery/internal/pkg/errors"
	"github.com/ecoleta-discovery/internal/pkg/utils"
	"github.com/ecoleta-discovery/internal/pkg/validator"
	"github.com/ecoleta-discovery/internal/usecase/dto"
)

const syncTimeout = 2 * time.Second

// DiscoverySession is the part of the discovery controller the renderer drives
type DiscoverySession interface {
	ViewModel() domain.DiscoveryViewModel
	ToggleCategory(id int64)
	RetryLocation()
	RetryCatalog()
	Sync(ctx context.Context) error
}

// DiscoveryHandler - bridge between the renderer and the discovery session
type DiscoveryHandler struct {
	session DiscoverySession
	logger  *zap.Logger
}

func NewDiscoveryHandler(session DiscoverySession, logger *zap.Logger) *DiscoveryHandler {
	return &DiscoveryHandler{
		session: session,
		logger:  logger,
	}
}

// GetViewModel - current view model snapshot
func (h *DiscoveryHandler) GetViewModel(c *fiber.Ctx) error {
	return h.respond(c, h.session.ViewModel())
}

// GetMarkers - points and device position as a GeoJSON FeatureCollection
func (h *DiscoveryHandler) GetMarkers(c *fiber.Ctx) error {
	fc := dto.NewMarkersFeatureCollection(h.session.ViewModel())
	return c.JSON(fc, "application/geo+json")
}

// ToggleCategory - flip a category chip
func (h *DiscoveryHandler) ToggleCategory(c *fiber.Ctx) error {
	var req dto.ToggleCategoryRequest
	if err := c.ParamsParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidCategoryID)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidCategoryID.WithDetails(map[string]interface{}{
			"id": c.Params("id"),
		}))
	}

	h.session.ToggleCategory(req.CategoryID)
	return h.syncAndRespond(c)
}

// RetryLocation - re-request location after a denial or failure
func (h *DiscoveryHandler) RetryLocation(c *fiber.Ctx) error {
	h.session.RetryLocation()
	return h.syncAndRespond(c)
}

// RetryCatalog - re-fetch the catalog after a failure
func (h *DiscoveryHandler) RetryCatalog(c *fiber.Ctx) error {
	h.session.RetryCatalog()
	return h.syncAndRespond(c)
}

func (h *DiscoveryHandler) syncAndRespond(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), syncTimeout)
	defer cancel()

	if err := h.session.Sync(ctx); err != nil {
		h.logger.Warn("Discovery session did not settle", zap.Error(err))
		if errors.Is(err, errors.ErrControllerStopped) {
			return utils.SendError(c, err)
		}
	}

	return h.respond(c, h.session.ViewModel())
}

func (h *DiscoveryHandler) respond(c *fiber.Ctx, vm domain.DiscoveryViewModel) error {
	return utils.SendSuccess(c, dto.NewDiscoveryResponse(vm), &utils.Meta{
		Total:     len(vm.Points),
		SessionID: vm.SessionID,
	})
}
