package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// PageSize is the fixed page size used for every equipment query. The
// remote API paginates; display and export both sweep in steps of this.
const PageSize = 100

// ErrUnauthorized is returned when the CMS rejects the bearer token.
// Callers use it to trigger the session-expired policy; it must never
// be reported as an ordinary query failure.
var ErrUnauthorized = errors.New("cms: unauthorized")

// AuthError is a failed login. Message is the CMS-supplied reason when
// one was given, suitable for inline display.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return "cms: authentication failed: " + e.Message
}

// errorBody is the CMS's error envelope.
type errorBody struct {
	Error struct {
		Status  int    `json:"status"`
		Name    string `json:"name"`
		Message string `json:"message"`
	} `json:"error"`
}

// Client talks to the remote CMS. It holds no credentials; the bearer
// token is passed per call because sessions outlive any single client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the CMS at baseURL. No request timeout is
// set here; the transport's defaults apply.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// BaseURL returns the configured CMS base address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FileURL resolves a file's stored relative path against the CMS base
// address.
func (c *Client) FileURL(path string) string {
	return c.baseURL + path
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// Login authenticates against the CMS. On a non-2xx response or a
// malformed success body it returns an *AuthError; the caller may let
// the user retry.
func (c *Client) Login(ctx context.Context, identifier, password string) (*AuthResponse, error) {
	body, err := json.Marshal(loginRequest{Identifier: identifier, Password: password})
	if err != nil {
		return nil, fmt.Errorf("cms: encode login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/local", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("cms: build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cms: login request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &AuthError{Message: errorMessage(resp, "Login failed")}
	}

	var auth AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil || auth.JWT == "" {
		return nil, &AuthError{Message: "Login failed"}
	}
	return &auth, nil
}

// Offices lists all offices sorted by name ascending.
func (c *Client) Offices(ctx context.Context, token string) ([]Office, error) {
	q := url.Values{}
	q.Set("sort", "name:asc")

	var out struct {
		Data []Office `json:"data"`
	}
	if err := c.getJSON(ctx, token, "/api/offices", q, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// PageQuery narrows an equipment page fetch. Office filters by exact
// office name; Search is matched case-insensitively against code,
// employee name, device model name, OS type and device status.
type PageQuery struct {
	Page   int
	Office string
	Search string
}

// Values renders the query in the CMS's filter grammar. Every record is
// expanded with its employee, the employee's office, device type,
// device model and files.
func (pq PageQuery) Values() url.Values {
	q := url.Values{}
	q.Set("pagination[page]", strconv.Itoa(pq.Page))
	q.Set("pagination[pageSize]", strconv.Itoa(PageSize))
	q.Set("sort", "code:asc")
	for _, rel := range []string{"employee", "employee.office", "device_type", "device_model", "files"} {
		q.Add("populate", rel)
	}

	if pq.Office != "" {
		q.Set("filters[employee][office][name][$eq]", pq.Office)
	}

	if search := strings.TrimSpace(pq.Search); search != "" {
		q.Set("filters[$or][0][code][$containsi]", search)
		q.Set("filters[$or][1][employee][name][$containsi]", search)
		q.Set("filters[$or][2][device_model][name][$containsi]", search)
		q.Set("filters[$or][3][os_type][$containsi]", search)
		q.Set("filters[$or][4][device_status][$containsi]", search)
	}
	return q
}

// EquipmentPage fetches one page of equipment records, sorted by code
// ascending, with all associations populated.
func (c *Client) EquipmentPage(ctx context.Context, token string, pq PageQuery) (*EquipmentPage, error) {
	var page EquipmentPage
	if err := c.getJSON(ctx, token, "/api/equipment-inventories", pq.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// getJSON performs an authenticated GET and decodes the response. A 401
// maps to ErrUnauthorized so the session-expired policy can fire.
func (c *Client) getJSON(ctx context.Context, token, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("cms: build request for %s: %w", path, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("cms: request %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("cms: %s returned %s: %s", path, resp.Status, errorMessage(resp, "unexpected status"))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("cms: decode %s response: %w", path, err)
	}
	return nil
}

// errorMessage pulls the message out of the CMS error envelope, falling
// back to a fixed string when the body has none.
func errorMessage(resp *http.Response, fallback string) string {
	var eb errorBody
	if err := json.NewDecoder(resp.Body).Decode(&eb); err == nil && eb.Error.Message != "" {
		return eb.Error.Message
	}
	return fallback
}
