package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"salon-backend/internal/models"
	"salon-backend/internal/salonerr"
)

// Client is the HTTP implementation of Backend. One instance is shared by
// the coordinators and the session gate.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// NewClient creates a Backend client for the given base URL.
func NewClient(baseURL, apiKey string, logger zerolog.Logger) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		Logger: logger.With().Str("component", "remote").Logger(),
	}
}

// do issues one request and decodes the JSON response into out (if non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return salonerr.Remotef(err, "encode %s %s", method, path)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return salonerr.Remotef(err, "build %s %s", method, path)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("X-API-Key", c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Logger.Warn().Err(err).Str("path", path).Msg("backend call failed")
		return salonerr.Remotef(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.Logger.Warn().Int("status", resp.StatusCode).Str("path", path).Msg("backend rejected call")
		return salonerr.Remotef(fmt.Errorf("status %d: %s", resp.StatusCode, data), "%s %s", method, path)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return salonerr.Remotef(err, "decode %s %s", method, path)
	}
	return nil
}

// Ping checks backend reachability for the health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

// idResponse is how the backend returns newly assigned identities.
type idResponse struct {
	ID int64 `json:"id"`
}

func (c *Client) ListClients(ctx context.Context) ([]models.Client, error) {
	var out []models.Client
	if err := c.do(ctx, http.MethodGet, "/clients", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddClient(ctx context.Context, req *models.AddClientRequest) (int64, error) {
	var out idResponse
	if err := c.do(ctx, http.MethodPost, "/clients", req, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

func (c *Client) AddVisit(ctx context.Context, clientID, appointmentID int64) error {
	body := map[string]int64{"appointment_id": appointmentID}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/clients/%d/visits", clientID), body, nil)
}

func (c *Client) UpdateLoyaltyPoints(ctx context.Context, clientID, points int64) error {
	body := map[string]int64{"points": points}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/clients/%d/loyalty", clientID), body, nil)
}

func (c *Client) ListServices(ctx context.Context) ([]models.Service, error) {
	var out []models.Service
	if err := c.do(ctx, http.MethodGet, "/services", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetService(ctx context.Context, id int64) (*models.Service, error) {
	var out models.Service
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/services/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddService(ctx context.Context, req *models.AddServiceRequest) (int64, error) {
	var out idResponse
	if err := c.do(ctx, http.MethodPost, "/services", req, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

func (c *Client) SetServiceStatus(ctx context.Context, id int64, active bool) error {
	body := map[string]bool{"active": active}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/services/%d/status", id), body, nil)
}

func (c *Client) AppointmentsByStatus(ctx context.Context, status models.AppointmentStatus) ([]models.Appointment, error) {
	var out []models.Appointment
	path := "/appointments?status=" + url.QueryEscape(string(status))
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateAppointment(ctx context.Context, req *models.CreateAppointmentRequest) (int64, error) {
	var out idResponse
	if err := c.do(ctx, http.MethodPost, "/appointments", req, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	var out models.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddProduct(ctx context.Context, req *models.AddProductRequest) (int64, error) {
	var out idResponse
	if err := c.do(ctx, http.MethodPost, "/products", req, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

func (c *Client) UpdateProductQuantity(ctx context.Context, id int64, newQuantity float64) error {
	body := map[string]float64{"quantity": newQuantity}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d/quantity", id), body, nil)
}

func (c *Client) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	var out []models.Transaction
	if err := c.do(ctx, http.MethodGet, "/transactions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddTransaction(ctx context.Context, req *models.AddTransactionRequest) (int64, error) {
	var out idResponse
	if err := c.do(ctx, http.MethodPost, "/transactions", req, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

func (c *Client) UpdateTransaction(ctx context.Context, id int64, req *models.UpdateTransactionRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/transactions/%d", id), req, nil)
}

func (c *Client) DeleteTransaction(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/transactions/%d", id), nil, nil)
}

func (c *Client) MonthlyAggregates(ctx context.Context, year int) ([]models.MonthlyAggregate, error) {
	var out []models.MonthlyAggregate
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/reports/monthly?year=%d", year), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) PortfolioByTag(ctx context.Context, tag string) ([]models.PortfolioPhoto, error) {
	var out []models.PortfolioPhoto
	path := "/portfolio?tag=" + url.QueryEscape(tag)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) VerifyAdminLogin(ctx context.Context, username, password string) (bool, error) {
	body := map[string]string{"username": username, "password": password}
	var out struct {
		Valid bool `json:"valid"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/verify", body, &out); err != nil {
		return false, err
	}
	return out.Valid, nil
}

func (c *Client) IsCallerAdmin(ctx context.Context) (bool, error) {
	var out struct {
		IsAdmin bool `json:"is_admin"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/is-admin", nil, &out); err != nil {
		return false, err
	}
	return out.IsAdmin, nil
}

func (c *Client) AssignRole(ctx context.Context, subject string, role models.Role) error {
	body := map[string]string{"subject": subject, "role": string(role)}
	return c.do(ctx, http.MethodPost, "/auth/roles", body, nil)
}

func (c *Client) UpdateAdminCredentials(ctx context.Context, req *models.UpdateCredentialsRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/credentials", req, nil)
}
