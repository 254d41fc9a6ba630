package regiojet

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the public RegioJet REST API endpoint.
const DefaultBaseURL = "https://brn-ybus-pubapi.sa.cz/restapi"

const (
	// DefaultBoardLimit bounds arrival/departure board queries.
	DefaultBoardLimit = 20
	// DefaultRouteLimit bounds how many departures a route search scans.
	DefaultRouteLimit = 50
)

const userAgent = "regiojet-delays/1.0"

// Client queries the RegioJet public API. Request headers are fixed for the
// client's lifetime; the zero configuration talks to the production endpoint
// in Czech.
type Client struct {
	baseURL    string
	language   string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithLanguage sets the X-Lang header sent with every request (cs, en, de, ...).
func WithLanguage(lang string) Option {
	return func(c *Client) { c.language = lang }
}

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a RegioJet API client.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:  DefaultBaseURL,
		language: "cs",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get issues a GET against the API and decodes the JSON response into out.
// Transport failures, non-2xx statuses and malformed bodies are logged and
// returned as errors; nothing is retried.
func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	url := c.baseURL + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Lang", c.language)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("RegioJet: request failed: GET %s: %v", url, err)
		return fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("RegioJet: HTTP %d from %s: %s", resp.StatusCode, url, body)
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Printf("RegioJet: invalid JSON from %s: %v", url, err)
		return fmt.Errorf("failed to decode response from %s: %w", url, err)
	}
	return nil
}

// Arrivals returns routes arriving at a station, in API order. The limit is
// passed through verbatim; the upstream service is the one that validates it.
func (c *Client) Arrivals(ctx context.Context, stationID int64, limit int) ([]Route, error) {
	var routes []Route
	endpoint := fmt.Sprintf("/routes/%d/arrivals?limit=%d", stationID, limit)
	if err := c.get(ctx, endpoint, &routes); err != nil {
		return nil, err
	}
	return routes, nil
}

// Departures returns routes departing from a station, in API order.
func (c *Client) Departures(ctx context.Context, stationID int64, limit int) ([]Route, error) {
	var routes []Route
	endpoint := fmt.Sprintf("/routes/%d/departures?limit=%d", stationID, limit)
	if err := c.get(ctx, endpoint, &routes); err != nil {
		return nil, err
	}
	return routes, nil
}

// AllLocations returns the full country/city/station directory. The tree is
// fetched fresh on every call.
func (c *Client) AllLocations(ctx context.Context) ([]Country, error) {
	var countries []Country
	if err := c.get(ctx, "/consts/locations", &countries); err != nil {
		return nil, err
	}
	return countries, nil
}

// FindStation searches the location directory by case-insensitive substring.
// When the city name matches, every station of that city is included; stations
// of non-matching cities are tested individually against name and fullname.
func (c *Client) FindStation(ctx context.Context, term string) ([]StationMatch, error) {
	countries, err := c.AllLocations(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(term)
	var matches []StationMatch
	for _, country := range countries {
		for _, city := range country.Cities {
			if strings.Contains(strings.ToLower(city.Name), search) {
				for _, station := range city.Stations {
					matches = append(matches, newStationMatch(city, station))
				}
				continue
			}
			for _, station := range city.Stations {
				if strings.Contains(strings.ToLower(station.Name), search) ||
					strings.Contains(strings.ToLower(station.Fullname), search) {
					matches = append(matches, newStationMatch(city, station))
				}
			}
		}
	}
	return matches, nil
}

func newStationMatch(city City, station Station) StationMatch {
	address := station.Address
	if address == "" {
		address = "N/A"
	}
	return StationMatch{
		City:      city.Name,
		CityID:    city.ID,
		Station:   station.Name,
		StationID: station.ID,
		Fullname:  station.Fullname,
		Address:   address,
	}
}

// FindRoute scans departures from the origin and keeps the routes whose stop
// sequence contains the destination, flattening each into a RouteSummary.
func (c *Client) FindRoute(ctx context.Context, fromID, toID int64, limit int) ([]RouteSummary, error) {
	departures, err := c.Departures(ctx, fromID, limit)
	if err != nil {
		return nil, err
	}

	var routes []RouteSummary
	for _, route := range departures {
		if !containsStation(route.ConnectionStations, toID) {
			continue
		}

		summary := RouteSummary{
			Number:          route.Number,
			Label:           route.Label,
			Delay:           route.Delay,
			FreeSeats:       route.FreeSeatsCount,
			VehicleStandard: route.VehicleStandard,
			AllStations:     route.ConnectionStations,
		}
		// A sequence can visit the origin more than once; the last
		// occurrence wins.
		for _, stop := range route.ConnectionStations {
			if stop.StationID == fromID {
				summary.DepartureTime = stop.Departure
				summary.DeparturePlatform = stop.Platform
			}
			if stop.StationID == toID {
				summary.ArrivalTime = stop.Arrival
				summary.ArrivalPlatform = stop.Platform
			}
		}
		routes = append(routes, summary)
	}
	return routes, nil
}

// CheckDelays returns the routes between two stations, filtered to those
// delayed at least threshold minutes. A non-positive threshold disables the
// filter entirely.
func (c *Client) CheckDelays(ctx context.Context, fromID, toID int64, threshold int) ([]RouteSummary, error) {
	routes, err := c.FindRoute(ctx, fromID, toID, DefaultRouteLimit)
	if err != nil {
		return nil, err
	}

	if threshold > 0 {
		filtered := make([]RouteSummary, 0, len(routes))
		for _, route := range routes {
			if route.Delay >= threshold {
				filtered = append(filtered, route)
			}
		}
		return filtered, nil
	}
	return routes, nil
}

func containsStation(stops []ConnectionStation, id int64) bool {
	for _, stop := range stops {
		if stop.StationID == id {
			return true
		}
	}
	return false
}
