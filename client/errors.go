// SPDX-License-Identifier: LGPL-3.0-or-later

package client

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ServiceError is a non-success response from the service. When the
// response body carries the service's structured error document its
// fields are decoded; otherwise Message holds the raw body.
type ServiceError struct {
	Method     string `json:"-"`
	Path       string `json:"-"`
	StatusCode int    `json:"-"`

	Message string `json:"message"`
	Code    string `json:"code"`
	Type    string `json:"type"`
	Link    string `json:"link"`
}

func newServiceError(method, path string, status int, body []byte) *ServiceError {
	e := &ServiceError{Method: method, Path: path, StatusCode: status}

	if err := json.Unmarshal(body, e); err != nil || e.Message == "" {
		e.Code = ""
		e.Type = ""
		e.Link = ""
		e.Message = strings.TrimSpace(string(body))
	}

	return e
}

func (e *ServiceError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s %s: status %d: %s (code %s)", e.Method, e.Path, e.StatusCode, e.Message, e.Code)
	}
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}
