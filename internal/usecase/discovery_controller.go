package usecase

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ecoleta-discovery/internal/domain"
	"github.com/ecoleta-discovery/internal/domain/repository"
	"github.com/ecoleta-discovery/internal/pkg/errors"
	"github.com/ecoleta-discovery/internal/worker"
)

const defaultEventQueueSize = 64

var _ worker.Worker = (*DiscoveryController)(nil)

// DiscoveryParams are the navigation parameters of the points screen.
type DiscoveryParams struct {
	City string
	UF   string
}

type DiscoveryOptions struct {
	// FetchTimeout bounds each catalog, location and search call.
	// Zero means no bound.
	FetchTimeout time.Duration
	// EventQueueSize is the buffer of pending commands and fetch results.
	EventQueueSize int
}

// searchDeps gates the point search. A search is due when the position holds
// coordinates and either the selection changed or the position was resolved
// for the first time since the last issued search.
type searchDeps struct {
	selectionChanged bool
	locationResolved bool
}

func (d searchDeps) shouldSearch(pos domain.GeoPosition) bool {
	return pos.Resolved() && (d.selectionChanged || d.locationResolved)
}

// DiscoveryController coordinates the catalog, the device position and the
// point search into one view model.
//
// All state is owned by the loop goroutine run by Start. Public methods and
// fetch goroutines only enqueue events, so state is never mutated
// concurrently. Readers get an immutable snapshot through ViewModel.
//
// Every point search is numbered. A result is applied only when its number
// is the last one issued; results of superseded searches are dropped on
// arrival. In-flight HTTP calls are never cancelled.
type DiscoveryController struct {
	*worker.BaseWorker

	catalogRepo repository.CatalogRepository
	pointRepo   repository.PointRepository
	geoProvider repository.GeolocationProvider
	params      DiscoveryParams
	opts        DiscoveryOptions
	sessionID   string

	events   chan func()
	exited   chan struct{}
	running  atomic.Bool
	snapshot atomic.Pointer[domain.DiscoveryViewModel]

	// set once by Start before any fetch goroutine exists
	runCtx context.Context

	// loop-owned state
	initialized     bool
	categories      []domain.Category
	catalogLoading  bool
	catalogFailed   bool
	selection       domain.SelectionSet
	position        domain.GeoPosition
	locationLoading bool
	points          []domain.CollectionPoint
	deps            searchDeps
	lastSearchSeq   uint64
	pendingSearch   bool
	stats           domain.SearchStats
	lastError       *domain.ErrorView
}

// NewDiscoveryController creates a controller for one discovery session.
// Start must be running for commands to take effect.
func NewDiscoveryController(
	catalogRepo repository.CatalogRepository,
	pointRepo repository.PointRepository,
	geoProvider repository.GeolocationProvider,
	params DiscoveryParams,
	opts DiscoveryOptions,
	logger *zap.Logger,
) *DiscoveryController {
	if opts.EventQueueSize <= 0 {
		opts.EventQueueSize = defaultEventQueueSize
	}
	sessionID := uuid.NewString()

	c := &DiscoveryController{
		BaseWorker:  worker.NewBaseWorker("discovery-controller", logger.With(zap.String("session_id", sessionID))),
		catalogRepo: catalogRepo,
		pointRepo:   pointRepo,
		geoProvider: geoProvider,
		params:      params,
		opts:        opts,
		sessionID:   sessionID,
		events:      make(chan func(), opts.EventQueueSize),
		exited:      make(chan struct{}),
		position:    domain.UnknownPosition(),
	}
	c.publish()

	return c
}

// SessionID identifies this discovery session in logs and responses.
func (c *DiscoveryController) SessionID() string {
	return c.sessionID
}

// Start runs the event loop until ctx is done or Stop is called.
func (c *DiscoveryController) Start(ctx context.Context) error {
	if !c.running.CompareAndSwap(false, true) {
		return fmt.Errorf("discovery controller %s already started", c.sessionID)
	}
	defer close(c.exited)

	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	c.runCtx = loopCtx

	logger := c.Logger()
	logger.Info("Discovery session started",
		zap.String("city", c.params.City),
		zap.String("uf", c.params.UF))

	for {
		select {
		case <-c.StopChan():
			logger.Info("Discovery session stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case fn := <-c.events:
			fn()
			c.publish()
		}
	}
}

// Initialize starts the catalog fetch and the location acquisition. It
// returns immediately; results land in the view model. Only the first call
// has an effect.
func (c *DiscoveryController) Initialize() {
	c.enqueue(func() {
		if c.initialized {
			return
		}
		c.initialized = true
		c.startCatalog()
		c.startLocation()
	})
}

// ToggleCategory flips id in the selection and schedules a new search.
// Without coordinates the search waits until the position resolves.
func (c *DiscoveryController) ToggleCategory(id int64) {
	c.enqueue(func() {
		selected := c.selection.Toggle(id)
		c.points = nil
		c.deps.selectionChanged = true

		c.Logger().Debug("Category toggled",
			zap.Int64("category_id", id),
			zap.Bool("selected", selected),
			zap.Int("selection_size", c.selection.Len()))

		c.evaluateSearch()
	})
}

// RetryLocation re-runs location acquisition after a denial or failure.
func (c *DiscoveryController) RetryLocation() {
	c.enqueue(func() {
		if c.locationLoading {
			return
		}
		switch c.position.Status {
		case domain.PositionDenied, domain.PositionFailed:
			c.startLocation()
		}
	})
}

// RetryCatalog re-fetches the catalog after a failed attempt.
func (c *DiscoveryController) RetryCatalog() {
	c.enqueue(func() {
		if c.catalogLoading || !c.catalogFailed {
			return
		}
		c.startCatalog()
	})
}

// ViewModel returns the latest published snapshot. It never blocks.
func (c *DiscoveryController) ViewModel() domain.DiscoveryViewModel {
	return c.snapshot.Load().Clone()
}

// Sync waits until every event enqueued before the call has been processed.
func (c *DiscoveryController) Sync(ctx context.Context) error {
	done := make(chan struct{})

	select {
	case c.events <- func() { close(done) }:
	case <-c.exited:
		return errors.ErrControllerStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-done:
		return nil
	case <-c.exited:
		return errors.ErrControllerStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *DiscoveryController) enqueue(fn func()) {
	select {
	case c.events <- fn:
	case <-c.exited:
		c.Logger().Warn("Discovery session is not running, command dropped")
	}
}

func (c *DiscoveryController) fetchContext() (context.Context, context.CancelFunc) {
	if c.opts.FetchTimeout > 0 {
		return context.WithTimeout(c.runCtx, c.opts.FetchTimeout)
	}
	return context.WithCancel(c.runCtx)
}

func (c *DiscoveryController) startCatalog() {
	c.catalogLoading = true

	go func() {
		ctx, cancel := c.fetchContext()
		defer cancel()

		items, err := c.catalogRepo.ListItems(ctx)
		c.enqueue(func() { c.applyCatalog(items, err) })
	}()
}

func (c *DiscoveryController) applyCatalog(items []domain.Category, err error) {
	c.catalogLoading = false

	if err != nil {
		c.Logger().Error("Failed to load catalog", zap.Error(err))
		c.catalogFailed = true
		c.fail(errors.ErrCatalogUnavailable.Wrap(err))
		return
	}

	c.catalogFailed = false
	c.categories = items
	c.clearError(domain.ErrorKindCatalog)

	c.Logger().Info("Catalog loaded", zap.Int("categories", len(items)))
}

type locationResult struct {
	permission domain.PermissionStatus
	lat, lon   float64
	err        error
}

func (c *DiscoveryController) startLocation() {
	c.locationLoading = true

	go func() {
		ctx, cancel := c.fetchContext()
		defer cancel()

		res := locationResult{}
		res.permission, res.err = c.geoProvider.RequestPermission(ctx)
		if res.err == nil && res.permission == domain.PermissionGranted {
			res.lat, res.lon, res.err = c.geoProvider.CurrentPosition(ctx)
		}
		c.enqueue(func() { c.applyLocation(res) })
	}()
}

func (c *DiscoveryController) applyLocation(res locationResult) {
	c.locationLoading = false
	logger := c.Logger()

	switch {
	case res.err != nil:
		logger.Error("Failed to resolve location", zap.Error(res.err))
		c.position = domain.GeoPosition{Status: domain.PositionFailed}
		c.fail(errors.ErrLocationUnavailable.Wrap(res.err))

	case res.permission != domain.PermissionGranted:
		logger.Warn("Location permission denied")
		c.position = domain.GeoPosition{Status: domain.PositionDenied}
		c.fail(errors.ErrLocationDenied)

	default:
		first := !c.position.Resolved()
		c.position = domain.ResolvedPosition(res.lat, res.lon)
		c.clearError(domain.ErrorKindLocationDenied, domain.ErrorKindLocation)

		logger.Info("Location resolved",
			zap.Float64("lat", res.lat),
			zap.Float64("lon", res.lon))

		if first {
			c.deps.locationResolved = true
			c.evaluateSearch()
		}
	}
}

func (c *DiscoveryController) evaluateSearch() {
	if !c.deps.shouldSearch(c.position) {
		return
	}
	c.deps = searchDeps{}
	c.issueSearch()
}

func (c *DiscoveryController) issueSearch() {
	c.lastSearchSeq++
	seq := c.lastSearchSeq
	c.pendingSearch = true
	c.stats.Issued++

	search := domain.PointSearch{
		City:  c.params.City,
		UF:    c.params.UF,
		Items: c.selection.IDs(),
	}

	c.Logger().Debug("Point search issued",
		zap.Uint64("seq", seq),
		zap.Int64s("items", search.Items))

	go func() {
		ctx, cancel := c.fetchContext()
		defer cancel()

		points, err := c.pointRepo.SearchPoints(ctx, search)
		c.enqueue(func() { c.applySearch(seq, points, err) })
	}()
}

func (c *DiscoveryController) applySearch(seq uint64, points []domain.CollectionPoint, err error) {
	logger := c.Logger()

	if seq != c.lastSearchSeq {
		c.stats.Discarded++
		logger.Debug("Superseded point search result discarded",
			zap.Uint64("seq", seq),
			zap.Uint64("latest_seq", c.lastSearchSeq))
		return
	}
	c.pendingSearch = false

	if err != nil {
		c.stats.Failed++
		logger.Error("Failed to search points", zap.Uint64("seq", seq), zap.Error(err))
		c.fail(errors.ErrPointsUnavailable.Wrap(err))
		return
	}

	c.stats.Applied++
	c.points = points
	c.clearError(domain.ErrorKindPoints)

	logger.Info("Points loaded",
		zap.Uint64("seq", seq),
		zap.Int("points", len(points)))
}

// fail records err as the last error. A pending location denial stays in
// place until location is retried, other failures are only logged then.
func (c *DiscoveryController) fail(err error) {
	kind := errors.KindOf(err)
	if kind != domain.ErrorKindLocationDenied &&
		c.position.Status == domain.PositionDenied &&
		c.lastError != nil && c.lastError.Blocking {
		c.Logger().Debug("Blocking error kept", zap.String("suppressed_kind", string(kind)))
		return
	}

	message := err.Error()
	var appErr *errors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	c.lastError = &domain.ErrorView{
		Kind:     kind,
		Message:  message,
		Blocking: kind == domain.ErrorKindLocationDenied,
	}
}

// clearError drops the last error when it belongs to one of kinds.
func (c *DiscoveryController) clearError(kinds ...domain.ErrorKind) {
	if c.lastError == nil {
		return
	}
	for _, k := range kinds {
		if c.lastError.Kind == k {
			c.lastError = nil
			return
		}
	}
}

func (c *DiscoveryController) publish() {
	vm := domain.DiscoveryViewModel{
		SessionID:  c.sessionID,
		Categories: c.categories,
		Selection:  c.selection.IDs(),
		Position:   c.position,
		Points:     c.points,
		Loading: domain.LoadingFlags{
			Catalog:  c.catalogLoading,
			Location: c.locationLoading,
			Points:   c.pendingSearch,
		},
		LastError: c.lastError,
		Search:    c.stats,
	}
	vm = vm.Clone()
	if vm.Categories == nil {
		vm.Categories = []domain.Category{}
	}
	if vm.Points == nil {
		vm.Points = []domain.CollectionPoint{}
	}
	if vm.Selection == nil {
		vm.Selection = []int64{}
	}
	c.snapshot.Store(&vm)
}
