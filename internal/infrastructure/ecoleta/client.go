package ecoleta

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ecoleta-discovery/internal/config"
	"github.com/ecoleta-discovery/internal/domain"
	"github.com/ecoleta-discovery/internal/domain/repository"
	"go.uber.org/zap"
)

var (
	_ repository.CatalogRepository = (*Client)(nil)
	_ repository.PointRepository   = (*Client)(nil)
)

// Client talks to the collection point backend.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// pointsResponse is the list endpoint body; the array sits under "point".
type pointsResponse struct {
	Point []domain.CollectionPoint `json:"point"`
}

// NewClient builds a backend client. A zero FetchTimeout leaves requests
// unbounded, callers may still bound them through the context.
func NewClient(cfg *config.APIConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.FetchTimeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		logger:  logger,
	}
}

// ListItems fetches the category catalog from GET /items
func (c *Client) ListItems(ctx context.Context) ([]domain.Category, error) {
	var items []domain.Category
	if err := c.getJSON(ctx, "/items", &items); err != nil {
		return nil, err
	}

	c.logger.Debug("Catalog fetched", zap.Int("items_count", len(items)))
	return items, nil
}

// SearchPoints fetches GET /points filtered by city, uf and item IDs
func (c *Client) SearchPoints(ctx context.Context, search domain.PointSearch) ([]domain.CollectionPoint, error) {
	query := url.Values{}
	query.Set("city", search.City)
	query.Set("uf", search.UF)
	query.Set("items", JoinItemIDs(search.Items))

	var resp pointsResponse
	if err := c.getJSON(ctx, "/points?"+query.Encode(), &resp); err != nil {
		return nil, err
	}

	c.logger.Debug("Points fetched",
		zap.String("city", search.City),
		zap.String("uf", search.UF),
		zap.Int("points_count", len(resp.Point)))

	if resp.Point == nil {
		return []domain.CollectionPoint{}, nil
	}
	return resp.Point, nil
}

// GetPoint fetches GET /points/:id
func (c *Client) GetPoint(ctx context.Context, id int64) (*domain.PointDetail, error) {
	var detail domain.PointDetail
	if err := c.getJSON(ctx, "/points/"+strconv.FormatInt(id, 10), &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	endpoint := c.baseURL + path

	c.logger.Debug("Calling collection point API", zap.String("url", endpoint))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.String("url", endpoint), zap.Error(err))
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("Collection point API returned error",
			zap.String("url", endpoint),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return fmt.Errorf("collection point API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode response", zap.String("url", endpoint), zap.Error(err))
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// JoinItemIDs renders item IDs the way the items query parameter expects them.
func JoinItemIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
