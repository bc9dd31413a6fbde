// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mviklund/inkyear/models"
)

// DefaultBaseURL is the Fountain Pen Companion collected-inks endpoint.
const DefaultBaseURL = "https://www.fountainpencompanion.com/api/v1/collected_inks"

const pageSize = 100

// Client talks to the Fountain Pen Companion JSON:API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a catalog client with the default endpoint.
func NewClient(token string) *Client {
	return NewClientWithURL(token, DefaultBaseURL)
}

// NewClientWithURL creates a catalog client against a custom endpoint,
// used by tests to point at a local server.
func NewClientWithURL(token, baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// wire types for the JSON:API envelope

type inkAttributes struct {
	BrandName           string   `json:"brand_name"`
	LineName            string   `json:"line_name"`
	InkName             string   `json:"ink_name"`
	Maker               string   `json:"maker"`
	Color               string   `json:"color"`
	ClusterTags         []string `json:"cluster_tags"`
	Kind                string   `json:"kind"`
	Swabbed             bool     `json:"swabbed"`
	Used                bool     `json:"used"`
	Archived            bool     `json:"archived"`
	Private             bool     `json:"private"`
	Usage               int      `json:"usage"`
	DailyUsage          int      `json:"daily_usage"`
	LastUsedOn          string   `json:"last_used_on"`
	Comment             string   `json:"comment"`
	PrivateComment      string   `json:"private_comment"`
	SimplifiedBrandName string   `json:"simplified_brand_name"`
	SimplifiedInkName   string   `json:"simplified_ink_name"`
}

type inkResource struct {
	ID         string        `json:"id"`
	Type       string        `json:"type"`
	Attributes inkAttributes `json:"attributes"`
}

type listResponse struct {
	Data []inkResource `json:"data"`
	Meta struct {
		Pagination struct {
			TotalPages int  `json:"total_pages"`
			NextPage   *int `json:"next_page"`
		} `json:"pagination"`
	} `json:"meta"`
}

type singleResponse struct {
	Data inkResource `json:"data"`
}

// flatten lifts the nested JSON:API attributes into a flat Ink.
func flatten(r inkResource) models.Ink {
	a := r.Attributes
	return models.Ink{
		ID:                  r.ID,
		BrandName:           a.BrandName,
		LineName:            a.LineName,
		Name:                a.InkName,
		Maker:               a.Maker,
		Color:               a.Color,
		ClusterTags:         a.ClusterTags,
		Kind:                a.Kind,
		Swabbed:             a.Swabbed,
		Used:                a.Used,
		Archived:            a.Archived,
		Private:             a.Private,
		UsageCount:          a.Usage,
		DailyUsage:          a.DailyUsage,
		LastUsedOn:          a.LastUsedOn,
		Comment:             a.Comment,
		PrivateComment:      a.PrivateComment,
		SimplifiedBrandName: a.SimplifiedBrandName,
		SimplifiedInkName:   a.SimplifiedInkName,
	}
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("catalog returned %d: %s", resp.StatusCode, body)
	}
	return body, nil
}

// FetchAllInks retrieves the full collection, following pagination
// until the API reports no next page.
func (c *Client) FetchAllInks(ctx context.Context) ([]models.Ink, error) {
	var all []models.Ink
	page := 1

	for {
		u, err := url.Parse(c.baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid catalog URL: %w", err)
		}
		q := u.Query()
		q.Set("page[number]", strconv.Itoa(page))
		q.Set("page[size]", strconv.Itoa(pageSize))
		q.Set("include", "macro_cluster")
		u.RawQuery = q.Encode()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, err
		}
		body, err := c.do(req)
		if err != nil {
			return nil, err
		}

		var lr listResponse
		if err := json.Unmarshal(body, &lr); err != nil {
			return nil, fmt.Errorf("unexpected catalog response format: %w", err)
		}
		for _, r := range lr.Data {
			all = append(all, flatten(r))
		}

		p := lr.Meta.Pagination
		if p.NextPage == nil || page >= p.TotalPages {
			break
		}
		page = *p.NextPage
	}

	return all, nil
}

// FetchInk retrieves a single ink by ID.
func (c *Client) FetchInk(ctx context.Context, inkID string) (models.Ink, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+inkID, nil)
	if err != nil {
		return models.Ink{}, err
	}
	body, err := c.do(req)
	if err != nil {
		return models.Ink{}, err
	}

	var single singleResponse
	if err := json.Unmarshal(body, &single); err != nil {
		return models.Ink{}, fmt.Errorf("unexpected catalog response format: %w", err)
	}
	return flatten(single.Data), nil
}

// UpdatePrivateComment patches one ink's private_comment field, where
// swatch assignments are stored, and returns the updated ink.
func (c *Client) UpdatePrivateComment(ctx context.Context, inkID, privateComment string) (models.Ink, error) {
	payload := map[string]any{
		"data": map[string]any{
			"id":   inkID,
			"type": "collected_ink",
			"attributes": map[string]any{
				"private_comment": privateComment,
			},
		},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return models.Ink{}, fmt.Errorf("failed to encode patch payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.baseURL+"/"+inkID, bytes.NewReader(raw))
	if err != nil {
		return models.Ink{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return models.Ink{}, err
	}

	var single singleResponse
	if err := json.Unmarshal(body, &single); err != nil {
		return models.Ink{}, fmt.Errorf("unexpected catalog response format: %w", err)
	}
	return flatten(single.Data), nil
}
