// Package client provides an HTTP client for the homedoc REST API.
package client

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/homedoc/homedoc/internal/survey"
	"github.com/homedoc/homedoc/internal/tenant"
)

// Client is an HTTP client for the homedoc API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// RoomEntryInput is one named entry with its attached image refs.
type RoomEntryInput struct {
	Name   string   `json:"name"`
	Images []string `json:"images"`
}

// fragmentResponse carries the merged survey fragment between steps.
type fragmentResponse struct {
	Fragment json.RawMessage `json:"fragment"`
}

// CategoryStep submits one category screen and returns the merged
// fragment to carry forward.
func (c *Client) CategoryStep(fragment json.RawMessage, category string, count int, entries []RoomEntryInput) (json.RawMessage, error) {
	body := map[string]interface{}{
		"fragment": fragment,
		"category": category,
		"count":    count,
		"entries":  entries,
	}
	var resp fragmentResponse
	if err := c.post("/api/wizard/category", body, &resp); err != nil {
		return nil, err
	}
	return resp.Fragment, nil
}

// VerificationStep submits the three verification images.
func (c *Client) VerificationStep(fragment json.RawMessage, idImage, ownershipImage, houseImage string) (json.RawMessage, error) {
	body := map[string]interface{}{
		"fragment":        fragment,
		"id_image":        idImage,
		"ownership_image": ownershipImage,
		"house_image":     houseImage,
	}
	var resp fragmentResponse
	if err := c.post("/api/wizard/verification", body, &resp); err != nil {
		return nil, err
	}
	return resp.Fragment, nil
}

// AddressStep submits the structured address.
func (c *Client) AddressStep(fragment json.RawMessage, addr survey.Address) (json.RawMessage, error) {
	body := map[string]interface{}{
		"fragment": fragment,
		"address":  addr,
	}
	var resp fragmentResponse
	if err := c.post("/api/wizard/address", body, &resp); err != nil {
		return nil, err
	}
	return resp.Fragment, nil
}

// Commit validates and persists the aggregate, returning its key.
func (c *Client) Commit(fragment json.RawMessage) (string, error) {
	body := map[string]interface{}{"fragment": fragment}
	var resp struct {
		Key string `json:"key"`
	}
	if err := c.post("/api/wizard/commit", body, &resp); err != nil {
		return "", err
	}
	return resp.Key, nil
}

// ListSurveys returns all committed surveys.
func (c *Client) ListSurveys() ([]*survey.Stored, error) {
	var surveys []*survey.Stored
	if err := c.get("/api/surveys", &surveys); err != nil {
		return nil, err
	}
	return surveys, nil
}

// GetSurvey returns the survey under key.
func (c *Client) GetSurvey(key string) (*survey.Stored, error) {
	var st survey.Stored
	if err := c.get("/api/surveys/"+url.PathEscape(key), &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// UploadImage uploads raw image bytes and returns the durable URL.
func (c *Client) UploadImage(data []byte) (string, error) {
	body := map[string]string{"data": base64.StdEncoding.EncodeToString(data)}
	var resp struct {
		URL string `json:"url"`
	}
	if err := c.post("/api/images", body, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

// InviteTenant links a tenant to a committed survey and sends the OTP.
func (c *Client) InviteTenant(surveyKey, landlord, name, phoneNumber string) (*tenant.Info, error) {
	body := map[string]string{
		"survey_key":   surveyKey,
		"landlord":     landlord,
		"name":         name,
		"phone_number": phoneNumber,
	}
	var info tenant.Info
	if err := c.post("/api/tenants", body, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// ListTenants returns all tenant records.
func (c *Client) ListTenants() ([]*tenant.Info, error) {
	var tenants []*tenant.Info
	if err := c.get("/api/tenants", &tenants); err != nil {
		return nil, err
	}
	return tenants, nil
}

// GetTenant returns the tenant record for name.
func (c *Client) GetTenant(name string) (*tenant.Info, error) {
	var info tenant.Info
	if err := c.get("/api/tenants/"+url.PathEscape(name), &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// AddCorner appends a corner capture to the tenant's history.
func (c *Client) AddCorner(name, category, imageRef string) (*tenant.Corner, error) {
	body := map[string]string{"category": category, "image": imageRef}
	var corner tenant.Corner
	if err := c.post("/api/tenants/"+url.PathEscape(name)+"/corners", body, &corner); err != nil {
		return nil, err
	}
	return &corner, nil
}

// ReportProblem appends a problem report to the tenant's list.
func (c *Client) ReportProblem(name, imageRef, description string) (*tenant.Problem, error) {
	body := map[string]string{"image": imageRef, "description": description}
	var problem tenant.Problem
	if err := c.post("/api/tenants/"+url.PathEscape(name)+"/problems", body, &problem); err != nil {
		return nil, err
	}
	return &problem, nil
}

// VerifyOTP checks a tenant's one-time passcode.
func (c *Client) VerifyOTP(name, otp string) (*tenant.Info, error) {
	body := map[string]string{"otp": otp}
	var info tenant.Info
	if err := c.post("/api/tenants/"+url.PathEscape(name)+"/verify", body, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// get performs a GET request and decodes the response.
func (c *Client) get(path string, result interface{}) error {
	req, err := http.NewRequest("GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, result)
}

// post performs a POST request with a JSON body and decodes the response.
func (c *Client) post(path string, body interface{}, result interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequest("POST", c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, result)
}

// do executes an HTTP request and handles error responses.
func (c *Client) do(req *http.Request, result interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			fmt.Printf("warning: closing response body: %v\n", cerr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return fmt.Errorf("%s", errResp.Error)
		}
		return fmt.Errorf("server error: %s", http.StatusText(resp.StatusCode))
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
