package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/Paida-All/paidaall-store-backend/models"
)

// restRateLimit keeps the client well below the hosted backend's request
// quota: a full catalog fetch is a handful of windowed calls, so a modest
// sustained rate with a small burst is plenty.
var restRateLimit = rate.NewLimiter(rate.Limit(10), 5)

// RESTSource reads the products table over the hosted backend's REST
// interface (PostgREST-style query parameters: offset/limit windows and
// eq filters on indexed columns).
type RESTSource struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
}

func NewRESTSource(baseURL, apiKey string) *RESTSource {
	return &RESTSource{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
		limiter: restRateLimit,
	}
}

func (s *RESTSource) ListWindow(ctx context.Context, offset, limit int) ([]models.Product, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("order", "sort_order.asc.nullslast")
	params.Set("offset", strconv.Itoa(offset))
	params.Set("limit", strconv.Itoa(limit))

	return s.query(ctx, params)
}

func (s *RESTSource) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("slug", "eq."+slug)
	params.Set("limit", "1")

	rows, err := s.query(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (s *RESTSource) query(ctx context.Context, params url.Values) ([]models.Product, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := s.baseURL + "/rest/v1/products?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if s.apiKey != "" {
		req.Header.Set("apikey", s.apiKey)
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrSourceUnavailable, resp.StatusCode)
	}

	var rows []models.Product
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrSourceUnavailable, err)
	}
	return rows, nil
}
