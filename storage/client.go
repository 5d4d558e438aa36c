package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/Dinhh-Chan/aic-judges/logging"
	"github.com/go-resty/resty/v2"
)

// envelope is the {success, data} wrapper every backend endpoint answers with.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Detail  json.RawMessage `json:"detail"`
}

// detail returns the backend error text. FastAPI style validation details are arrays, keep them raw.
func (e *envelope) detail() string {
	d := bytes.TrimSpace(e.Detail)
	if len(d) > 0 && d[0] == '"' {
		var s string
		if err := json.Unmarshal(d, &s); err == nil {
			return s
		}
	}
	if len(d) > 0 && string(d) != "null" {
		return string(d)
	}
	return e.Message
}

type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the scoring backend REST API.
type Client struct {
	rest *resty.Client
}

func NewClient(cfg ClientConfig) *Client {
	rest := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("Accept", "application/json")
	if cfg.Timeout > 0 {
		rest.SetTimeout(cfg.Timeout)
	}
	return &Client{rest: rest}
}

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.rest.R().SetContext(ctx)
}

// execute sends the request and decodes the envelope. Non-2xx answers become *APIError.
func (c *Client) execute(req *resty.Request, method, path string) (*envelope, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		logging.Log.Errorf("BACKEND: %s %s failed: %v", method, path, err)
		return nil, err
	}

	var env envelope
	var decodeErr error
	if body := bytes.TrimSpace(resp.Body()); len(body) > 0 {
		decodeErr = json.Unmarshal(body, &env)
	} else {
		env.Success = true
	}

	if resp.IsError() || resp.StatusCode() >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode(), Method: method, Path: path}
		if decodeErr == nil {
			apiErr.Message = env.detail()
		}
		logging.Log.Warnf("BACKEND: %v", apiErr)
		return nil, apiErr
	}
	if decodeErr != nil {
		logging.Log.Errorf("BACKEND: %s %s returned undecodable body: %v", method, path, decodeErr)
		return nil, errors.Join(ErrInvalidPayload, decodeErr)
	}
	return &env, nil
}

// decodeList enforces the shape check: success flag set and data is an array.
func decodeList[T any](env *envelope, out *[]T) error {
	if !env.Success {
		return errors.Join(ErrRejected, errors.New(env.detail()))
	}
	data := bytes.TrimSpace(env.Data)
	if len(data) == 0 || data[0] != '[' {
		return ErrInvalidPayload
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Join(ErrInvalidPayload, err)
	}
	return nil
}

// decodeObject decodes an object payload. A missing or null data field leaves out untouched.
func decodeObject(env *envelope, out any) error {
	if !env.Success {
		return errors.Join(ErrRejected, errors.New(env.detail()))
	}
	data := bytes.TrimSpace(env.Data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] != '{' {
		return ErrInvalidPayload
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Join(ErrInvalidPayload, err)
	}
	return nil
}
