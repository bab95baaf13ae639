// Package notebook is a small client for the OneNote section of the Microsoft Graph API.
package notebook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jrsteele09/notebridge/internal/errors"
	"github.com/jrsteele09/notebridge/internal/metrics"
)

const (
	DefaultBaseURL = "https://graph.microsoft.com/v1.0/me/onenote"
	DefaultTimeout = 10 * time.Second

	// Error bodies are kept for diagnostics only.
	maxErrorBody = 4096
)

// Action is a page update action.
type Action string

const (
	ActionAppend  Action = "append"
	ActionReplace Action = "replace"
)

// Entity is a notebook, section or page resource exactly as the API returns it.
type Entity map[string]any

// UpdateStatus is returned for page updates that have no response body.
type UpdateStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type listResponse struct {
	Value []Entity `json:"value"`
}

type patchCommand struct {
	Target  string `json:"target"`
	Action  Action `json:"action"`
	Content string `json:"content"`
}

// Client calls the notebook API on behalf of one access token per call.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		timeout:    timeout,
		httpClient: httpClient,
	}
}

func (c *Client) ListNotebooks(ctx context.Context, token string) ([]Entity, error) {
	return c.list(ctx, "list_notebooks", token, "/notebooks")
}

func (c *Client) ListSections(ctx context.Context, token, notebookID string) ([]Entity, error) {
	return c.list(ctx, "list_sections", token, "/notebooks/"+url.PathEscape(notebookID)+"/sections")
}

func (c *Client) ListPages(ctx context.Context, token, sectionID string) ([]Entity, error) {
	return c.list(ctx, "list_pages", token, "/sections/"+url.PathEscape(sectionID)+"/pages")
}

func (c *Client) CreateSection(ctx context.Context, token, notebookID, displayName string) (Entity, error) {
	body, err := json.Marshal(map[string]string{"displayName": displayName})
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInternal, "[notebook CreateSection] marshal body: %v", err)
	}

	resp, err := c.do(ctx, "create_section", token, http.MethodPost, "/notebooks/"+url.PathEscape(notebookID)+"/sections",
		"application/json", "application/json", body)
	if err != nil {
		return nil, err
	}
	return decodeEntity(resp)
}

// CreatePage posts an XHTML document as a new page in the section.
func (c *Client) CreatePage(ctx context.Context, token, sectionID, xhtml string) (Entity, error) {
	resp, err := c.do(ctx, "create_page", token, http.MethodPost, "/sections/"+url.PathEscape(sectionID)+"/pages",
		"application/xhtml+xml", "application/json", []byte(xhtml))
	if err != nil {
		return nil, err
	}
	return decodeEntity(resp)
}

// PageContent returns the raw HTML of a page.
func (c *Client) PageContent(ctx context.Context, token, pageID string) (string, error) {
	resp, err := c.do(ctx, "page_content", token, http.MethodGet, "/pages/"+url.PathEscape(pageID)+"/content",
		"", "text/html", nil)
	if err != nil {
		return "", err
	}
	return string(resp.body), nil
}

// UpdatePage applies one action to the page body. A 204 response is reported as a success status.
func (c *Client) UpdatePage(ctx context.Context, token, pageID string, action Action, html string) (any, error) {
	body, err := json.Marshal([]patchCommand{{Target: "body", Action: action, Content: html}})
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInternal, "[notebook UpdatePage] marshal body: %v", err)
	}

	resp, err := c.do(ctx, "update_page", token, http.MethodPatch, "/pages/"+url.PathEscape(pageID)+"/content",
		"application/json", "application/json", body)
	if err != nil {
		return nil, err
	}

	if resp.status == http.StatusNoContent || len(bytes.TrimSpace(resp.body)) == 0 {
		return UpdateStatus{Status: "success", Message: "Page updated successfully"}, nil
	}
	var out any
	if err := json.Unmarshal(resp.body, &out); err != nil {
		return UpdateStatus{Status: "success", Message: fmt.Sprintf("Page updated with status %d", resp.status)}, nil
	}
	return out, nil
}

func (c *Client) list(ctx context.Context, operation, token, path string) ([]Entity, error) {
	resp, err := c.do(ctx, operation, token, http.MethodGet, path, "", "application/json", nil)
	if err != nil {
		return nil, err
	}

	var list listResponse
	if err := json.Unmarshal(resp.body, &list); err != nil {
		return nil, fmt.Errorf("%w: decode %s response: %v", errors.ErrUpstreamAPI, operation, err)
	}
	if list.Value == nil {
		return []Entity{}, nil
	}
	return list.Value, nil
}

type response struct {
	status int
	body   []byte
}

func (c *Client) do(ctx context.Context, operation, token, method, path, contentType, accept string, body []byte) (response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return response{}, errors.Wrapf(errors.ErrInternal, "[notebook %s] build request: %v", operation, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordNotebookRequest(operation, metrics.StatusError)
		return response{}, fmt.Errorf("%w: %s: %v", errors.ErrUpstreamAPI, operation, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RecordNotebookRequest(operation, metrics.StatusError)
		return response{}, fmt.Errorf("%w: %s: read body: %v", errors.ErrUpstreamAPI, operation, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RecordNotebookRequest(operation, metrics.StatusError)
		if len(data) > maxErrorBody {
			data = data[:maxErrorBody]
		}
		return response{}, &errors.UpstreamAPIError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	metrics.RecordNotebookRequest(operation, metrics.StatusOK)
	return response{status: resp.StatusCode, body: data}, nil
}

func decodeEntity(resp response) (Entity, error) {
	entity := Entity{}
	if len(bytes.TrimSpace(resp.body)) == 0 {
		return entity, nil
	}
	if err := json.Unmarshal(resp.body, &entity); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", errors.ErrUpstreamAPI, err)
	}
	return entity, nil
}
