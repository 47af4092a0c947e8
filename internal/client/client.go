package client

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client is the reference HTTP consumer of the org handbook API. Every call
// carries the static key in the X-API-Key header.
type Client struct {
	http *resty.Client
}

// New creates a client for the given server.
func New(baseURL, apiKey string) *Client {
	http := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(30 * time.Second).
		SetHeader("X-API-Key", apiKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{http: http}
}

func (c *Client) do(method, path string, query map[string]string, body any) (json.RawMessage, error) {
	req := c.http.R()
	if query != nil {
		req.SetQueryParams(query)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%s %s: %s: %s", method, path, resp.Status(), strings.TrimSpace(string(resp.Body())))
	}

	return json.RawMessage(resp.Body()), nil
}

func (c *Client) GetOrganizations(skip, limit int) (json.RawMessage, error) {
	return c.do("GET", "/api/v1/organizations/", listQuery(skip, limit), nil)
}

func (c *Client) GetOrganization(id uint64) (json.RawMessage, error) {
	return c.do("GET", fmt.Sprintf("/api/v1/organizations/%d", id), nil, nil)
}

func (c *Client) CreateOrganization(data map[string]any) (json.RawMessage, error) {
	return c.do("POST", "/api/v1/organizations/", nil, data)
}

func (c *Client) UpdateOrganization(id uint64, data map[string]any) (json.RawMessage, error) {
	return c.do("PUT", fmt.Sprintf("/api/v1/organizations/%d", id), nil, data)
}

func (c *Client) DeleteOrganization(id uint64) (json.RawMessage, error) {
	return c.do("DELETE", fmt.Sprintf("/api/v1/organizations/%d", id), nil, nil)
}

func (c *Client) GetOrganizationsByBuilding(buildingID uint64) (json.RawMessage, error) {
	return c.do("GET", fmt.Sprintf("/api/v1/organizations/building/%d", buildingID), nil, nil)
}

func (c *Client) GetOrganizationsByActivity(activityID uint64) (json.RawMessage, error) {
	return c.do("GET", fmt.Sprintf("/api/v1/organizations/activity/%d", activityID), nil, nil)
}

func (c *Client) SearchOrganizationsByName(name string) (json.RawMessage, error) {
	return c.do("GET", "/api/v1/organizations/search/name", map[string]string{"name": name}, nil)
}

func (c *Client) GetOrganizationsInRadius(lat, lon, radiusKM float64) (json.RawMessage, error) {
	return c.do("GET", "/api/v1/organizations/search/radius", map[string]string{
		"lat":       formatFloat(lat),
		"lon":       formatFloat(lon),
		"radius_km": formatFloat(radiusKM),
	}, nil)
}

func (c *Client) GetOrganizationsInArea(minLat, maxLat, minLon, maxLon float64) (json.RawMessage, error) {
	return c.do("GET", "/api/v1/organizations/search/area", map[string]string{
		"min_lat": formatFloat(minLat),
		"max_lat": formatFloat(maxLat),
		"min_lon": formatFloat(minLon),
		"max_lon": formatFloat(maxLon),
	}, nil)
}

func (c *Client) GetBuildings(skip, limit int) (json.RawMessage, error) {
	return c.do("GET", "/api/v1/building/", listQuery(skip, limit), nil)
}

func (c *Client) GetBuilding(id uint64) (json.RawMessage, error) {
	return c.do("GET", fmt.Sprintf("/api/v1/building/%d", id), nil, nil)
}

func (c *Client) CreateBuilding(data map[string]any) (json.RawMessage, error) {
	return c.do("POST", "/api/v1/building/", nil, data)
}

func (c *Client) UpdateBuilding(id uint64, data map[string]any) (json.RawMessage, error) {
	return c.do("PUT", fmt.Sprintf("/api/v1/building/%d", id), nil, data)
}

func (c *Client) DeleteBuilding(id uint64) (json.RawMessage, error) {
	return c.do("DELETE", fmt.Sprintf("/api/v1/building/%d", id), nil, nil)
}

func (c *Client) GetActivities(skip, limit int) (json.RawMessage, error) {
	return c.do("GET", "/api/v1/activity/", listQuery(skip, limit), nil)
}

func (c *Client) GetActivity(id uint64) (json.RawMessage, error) {
	return c.do("GET", fmt.Sprintf("/api/v1/activity/%d", id), nil, nil)
}

func (c *Client) CreateActivity(data map[string]any) (json.RawMessage, error) {
	return c.do("POST", "/api/v1/activity/", nil, data)
}

func (c *Client) UpdateActivity(id uint64, data map[string]any) (json.RawMessage, error) {
	return c.do("PUT", fmt.Sprintf("/api/v1/activity/%d", id), nil, data)
}

func (c *Client) DeleteActivity(id uint64) (json.RawMessage, error) {
	return c.do("DELETE", fmt.Sprintf("/api/v1/activity/%d", id), nil, nil)
}

// GetActivityTree fetches one level of children, or the roots when parentID
// is nil.
func (c *Client) GetActivityTree(parentID *uint64) (json.RawMessage, error) {
	path := "/api/v1/activity/tree"
	if parentID != nil {
		path = fmt.Sprintf("%s/%d", path, *parentID)
	}
	return c.do("GET", path, nil, nil)
}

func (c *Client) HealthCheck() (json.RawMessage, error) {
	return c.do("GET", "/health", nil, nil)
}

func listQuery(skip, limit int) map[string]string {
	return map[string]string{
		"skip":  fmt.Sprintf("%d", skip),
		"limit": fmt.Sprintf("%d", limit),
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
