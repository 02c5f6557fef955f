package client

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/terminal-hardware/internal/http"
)

// decode parses a success body into T.
func decode[T any](resp *http.Response, what string) (*T, error) {
	var result T

	err := json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", what, err)
	}

	return &result, nil
}

// resourcePath joins a base path and an escaped id.
func resourcePath(basePath, id string, actions ...string) string {
	path := basePath + "/" + url.PathEscape(id)

	for _, action := range actions {
		path += "/" + action
	}

	return path
}
