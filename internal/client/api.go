package client

import (
	"bytes"
	"canvasserver/internal/dto"
	"canvasserver/internal/models"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client talks to the canvas HTTP API. The zero transport default is kept: no
// extra timeouts beyond what the caller's context imposes.
type Client struct {
	baseURL    string
	secret     string
	httpClient *http.Client
}

func NewClient(baseURL string, secret string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		secret:     secret,
		httpClient: http.DefaultClient,
	}
}

func (c *Client) Load(ctx context.Context, canvasID string) (*models.Canvas, error) {
	endpoint := c.baseURL + "/canvas?canvasId=" + url.QueryEscape(canvasID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var row dto.CanvasResponse
	if err := json.NewDecoder(resp.Body).Decode(&row); err != nil {
		return nil, err
	}

	canvas := &models.Canvas{
		CanvasID:  row.CanvasID,
		ProjectID: row.ProjectID,
		Data:      row.Data,
	}
	if row.UpdatedAt != nil {
		canvas.UpdatedAt = *row.UpdatedAt
	}

	return canvas, nil
}

func (c *Client) Save(ctx context.Context, canvasID string, projectID string, data *models.ScenePayload) error {
	body, err := json.Marshal(dto.SaveCanvasRequest{
		CanvasID:  canvasID,
		ProjectID: projectID,
		Data:      data,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/canvas", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return nil
}

func (c *Client) NewID(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/new-id", nil)
	if err != nil {
		return "", err
	}

	resp, err := c.do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out dto.NewIDResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}

	return out.CanvasID, nil
}

func (c *Client) UploadThumbnail(ctx context.Context, canvasID string, png []byte) error {
	endpoint := c.baseURL + "/canvas/thumbnail?canvasId=" + url.QueryEscape(canvasID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(png))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "image/png")

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	if c.secret != "" {
		req.Header.Set("Authorization", "Bearer "+c.secret)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("canvas api: %s %s: %s: %s",
			req.Method, req.URL.Path, resp.Status, strings.TrimSpace(string(body)))
	}

	return resp, nil
}
