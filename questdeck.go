// questdeck.go
// ------------
// The questdeck package is a Go client for the QuestDeck campaign
// management API (companies, users, campaigns, characters, dice rolls).
// This file contains the Client itself: construction, request preparation,
// and the verb-level surface every resource service is built on.
//
// Key functionalities include:
// - Creating a client with NewClient() and functional Options
// - Issuing requests via Get/Post/Put/Patch/Delete or Do()
// - Paginated listing via GetPaginated/IterateAllPages/GetAll
// - Typed resource services: Companies, Users, Campaigns, Characters, DiceRolls
//
// The Client relies on a requestExecutor to handle retries, backoff and
// rate limits, ensuring consistent behavior across all endpoints.
package questdeck

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// validate checks request records before they are serialized; tags live on
// the *Create/*Update types in types.go.
var validate = validator.New()

// Client talks to one QuestDeck API deployment. It is safe for concurrent
// use; all configuration is fixed at construction time.
type Client struct {
	cfg      Config
	baseURL  string
	log      zerolog.Logger
	executor *requestExecutor

	Companies  *CompaniesService
	Users      *UsersService
	Campaigns  *CampaignsService
	Characters *CharactersService
	DiceRolls  *DiceRollsService
}

// NewClient builds a Client from the given options. A base URL is required;
// everything else has defaults (30s timeout, 3 retries, 1s base backoff,
// automatic rate-limit retries and idempotency keys).
func NewClient(opts ...Option) (*Client, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.BaseURL == "" {
		return nil, &RequestError{Err: errors.New("base URL is required")}
	}

	transport := cfg.Transport
	if transport == nil {
		transport = newNetTransport(cfg.Timeout)
	}

	c := &Client{
		cfg:     cfg,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		log:     cfg.Logger,
	}
	c.executor = &requestExecutor{
		cfg:       &c.cfg,
		transport: transport,
		log:       c.log,
		wait:      sleepContext,
	}

	c.Companies = &CompaniesService{client: c}
	c.Users = &UsersService{client: c}
	c.Campaigns = &CampaignsService{client: c}
	c.Characters = &CharactersService{client: c}
	c.DiceRolls = &DiceRollsService{client: c}
	return c, nil
}

// Do executes one request through the retry core and returns the raw
// response. Most callers want the typed verbs or the resource services.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	op, err := c.prepare(req)
	if err != nil {
		return nil, err
	}
	return c.executor.do(ctx, op)
}

// Get issues a GET and decodes the response body into out (skipped when out
// is nil).
func (c *Client) Get(ctx context.Context, path string, out any, opts ...RequestOption) error {
	return c.call(ctx, http.MethodGet, path, nil, out, opts...)
}

// Post issues a POST with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.call(ctx, http.MethodPost, path, body, out, opts...)
}

// Put issues a PUT with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.call(ctx, http.MethodPut, path, body, out, opts...)
}

// Patch issues a PATCH with a JSON body and decodes the response into out.
func (c *Client) Patch(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.call(ctx, http.MethodPatch, path, body, out, opts...)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string, opts ...RequestOption) error {
	return c.call(ctx, http.MethodDelete, path, nil, nil, opts...)
}

// Upload posts content as a multipart file upload and decodes the response
// into out.
func (c *Client) Upload(ctx context.Context, path, field, filename string, content []byte, out any, opts ...RequestOption) error {
	req := &Request{
		Method: http.MethodPost,
		Path:   path,
		File:   &FilePayload{Field: field, Name: filename, Content: content},
	}
	for _, opt := range opts {
		opt(req)
	}
	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	return c.decode(resp, out)
}

func (c *Client) call(ctx context.Context, method, path string, body, out any, opts ...RequestOption) error {
	req := &Request{Method: method, Path: path, Body: body}
	for _, opt := range opts {
		opt(req)
	}
	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	return c.decode(resp, out)
}

func (c *Client) decode(resp *Response, out any) error {
	if out == nil {
		return nil
	}
	if err := resp.Decode(out); err != nil {
		return fmt.Errorf("questdeck: decode response: %w", err)
	}
	return nil
}

// prepare turns a Request into a fully-formed operation: body serialized,
// headers merged, credential applied, idempotency key filled in. Everything
// that can fail here fails as a RequestError before the network is touched.
func (c *Client) prepare(req *Request) (*operation, error) {
	if req.Method == "" {
		return nil, &RequestError{Err: errors.New("method is required")}
	}
	if req.Path == "" {
		return nil, &RequestError{Err: errors.New("path is required")}
	}

	header := http.Header{}
	header.Set("Accept", "application/json")
	for k, v := range c.cfg.ExtraHeaders {
		header.Set(k, v)
	}
	for k, v := range req.Headers {
		header.Set(k, v)
	}

	var body []byte
	switch {
	case req.File != nil:
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		fw, err := w.CreateFormFile(req.File.Field, req.File.Name)
		if err != nil {
			return nil, &RequestError{Err: err}
		}
		if _, err := fw.Write(req.File.Content); err != nil {
			return nil, &RequestError{Err: err}
		}
		for k, vs := range req.Form {
			for _, v := range vs {
				if err := w.WriteField(k, v); err != nil {
					return nil, &RequestError{Err: err}
				}
			}
		}
		if err := w.Close(); err != nil {
			return nil, &RequestError{Err: err}
		}
		body = buf.Bytes()
		header.Set("Content-Type", w.FormDataContentType())

	case req.Form != nil:
		body = []byte(req.Form.Encode())
		header.Set("Content-Type", "application/x-www-form-urlencoded")

	case req.Body != nil:
		if err := validateBody(req.Body); err != nil {
			return nil, &RequestError{Err: err}
		}
		b, err := json.Marshal(req.Body)
		if err != nil {
			return nil, &RequestError{Err: err}
		}
		body = b
		header.Set("Content-Type", "application/json")
	}

	if c.cfg.Credential != nil && header.Get("Authorization") == "" {
		auth, err := c.cfg.Credential.AuthorizationHeader()
		if err != nil {
			return nil, &RequestError{Err: fmt.Errorf("credential: %w", err)}
		}
		header.Set("Authorization", auth)
	}

	if c.cfg.AutoIdempotencyKey && needsIdempotencyKey(req.Method) && header.Get(HeaderIdempotencyKey) == "" {
		header.Set(HeaderIdempotencyKey, newIdempotencyKey())
	}

	u := c.baseURL + req.Path
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}

	return &operation{
		method: req.Method,
		path:   req.Path,
		url:    u,
		header: header,
		body:   body,
	}, nil
}

// validateBody runs struct validation on JSON request bodies. Non-struct
// bodies (maps, slices) pass through untouched.
func validateBody(body any) error {
	v := reflect.ValueOf(body)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	if err := validate.Struct(v.Interface()); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return verrs
		}
		return err
	}
	return nil
}
