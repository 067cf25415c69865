package infra

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ErrNoMatch is the single failure the geocoder exposes: an empty result set,
// a (0,0) result, a non-2xx status, a transport failure and an open circuit
// all collapse into it.
var ErrNoMatch = errors.New("geocoder: no match for address")

// Geocoder resolves a free-text address to coordinates.
type Geocoder interface {
	Resolve(ctx context.Context, direccion string) (lat, lng float64, err error)
}

// nominatimResult is one entry of the Nominatim /search response.
// Coordinates arrive as strings.
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// NominatimClient talks to a Nominatim-compatible geocoding endpoint.
// Single attempt per call, bounded timeout, circuit breaker in front so a
// dead upstream fails fast instead of stalling every client creation.
// Successful lookups are cached in redis (24h); failures are never cached.
type NominatimClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	cb         *CircuitBreaker
	cache      *redis.Client // optional, nil disables caching
}

const geocodeCacheTTL = 24 * time.Hour

func NewNominatimClient(baseURL, userAgent string, timeout time.Duration, cache *redis.Client) *NominatimClient {
	return &NominatimClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
		cb:         NewCircuitBreaker(DefaultCBConfig()),
		cache:      cache,
	}
}

// Resolve geocodes direccion. The query gets an "España" country hint when
// the address does not already carry one.
func (c *NominatimClient) Resolve(ctx context.Context, direccion string) (float64, float64, error) {
	q := strings.TrimSpace(direccion)
	if q == "" {
		return 0, 0, ErrNoMatch
	}
	if !strings.Contains(strings.ToLower(q), "españa") {
		q = q + ", España"
	}

	if lat, lng, ok := c.cacheGet(ctx, q); ok {
		return lat, lng, nil
	}

	var lat, lng float64
	var found bool
	err := c.cb.Execute(func() error {
		var execErr error
		lat, lng, found, execErr = c.search(ctx, q)
		return execErr
	})
	if err != nil {
		log.Warn().Err(err).Str("query", q).Msg("geocode lookup failed")
		return 0, 0, ErrNoMatch
	}
	if !found {
		return 0, 0, ErrNoMatch
	}

	c.cachePut(ctx, q, lat, lng)
	return lat, lng, nil
}

// search performs one upstream call. found=false with a nil error is a valid
// "no hit" answer and must not count against the circuit breaker.
func (c *NominatimClient) search(ctx context.Context, query string) (float64, float64, bool, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return 0, 0, false, fmt.Errorf("geocoder: create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, 0, false, fmt.Errorf("geocoder: unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, false, fmt.Errorf("geocoder: status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return 0, 0, false, fmt.Errorf("geocoder: decode response: %w", err)
	}
	if len(results) == 0 {
		return 0, 0, false, nil
	}

	lat, errLat := strconv.ParseFloat(results[0].Lat, 64)
	lng, errLng := strconv.ParseFloat(results[0].Lon, 64)
	if errLat != nil || errLng != nil || (lat == 0 && lng == 0) {
		return 0, 0, false, nil
	}
	return lat, lng, true, nil
}

// Cache errors are logged and ignored: the cache is an optimization, never a
// dependency.

func (c *NominatimClient) cacheGet(ctx context.Context, query string) (float64, float64, bool) {
	if c.cache == nil {
		return 0, 0, false
	}
	val, err := c.cache.Get(ctx, geocodeCacheKey(query)).Result()
	if err != nil {
		return 0, 0, false
	}
	parts := strings.SplitN(val, ",", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	lat, errLat := strconv.ParseFloat(parts[0], 64)
	lng, errLng := strconv.ParseFloat(parts[1], 64)
	if errLat != nil || errLng != nil {
		return 0, 0, false
	}
	return lat, lng, true
}

func (c *NominatimClient) cachePut(ctx context.Context, query string, lat, lng float64) {
	if c.cache == nil {
		return
	}
	val := strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lng, 'f', -1, 64)
	if err := c.cache.Set(ctx, geocodeCacheKey(query), val, geocodeCacheTTL).Err(); err != nil {
		log.Debug().Err(err).Msg("geocode cache write failed")
	}
}

func geocodeCacheKey(query string) string {
	return "geocode:" + strings.ToLower(query)
}
