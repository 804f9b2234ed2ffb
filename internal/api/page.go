package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// Page is the backend's pagination envelope.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// DecodeList unwraps a list response body that is either a bare JSON array or
// a pagination envelope. For a bare array the returned page is nil.
func DecodeList[T any](body []byte) ([]T, *Page[T], error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, nil, nil
	}

	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, nil, err
		}
		return items, nil, nil
	}

	var page Page[T]
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return nil, nil, err
	}
	return page.Results, &page, nil
}

// list fetches one list endpoint and unwraps the bare-or-envelope response.
func list[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, *Page[T], error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, query, nil, &raw); err != nil {
		return nil, nil, err
	}
	return DecodeList[T](raw)
}
