/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//nolint:revive // naming conventions follow the remote API
package petfriends

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the public PetFriends deployment.
	DefaultBaseURL = "https://petfriends.skillfactory.ru"

	headerEmail    = "email"
	headerPassword = "password"
	headerAuthKey  = "auth_key"

	fieldPhoto = "pet_photo"
)

// Client issues PetFriends API calls against a fixed base URL. It holds no
// per-session state: the API key is passed explicitly on every call.
type Client struct {
	baseURL      string
	client       *resty.Client
	validator    ResponseValidator
	logger       *zap.Logger
	endpoints    *Endpoints
	logRequests  bool
	logResponses bool
}

// ResponseValidator checks a response against the API description.
type ResponseValidator interface {
	ValidateResponse(ctx context.Context, method, path string, status int, header http.Header, body []byte) error
}

type options struct {
	validator    ResponseValidator
	httpClient   *http.Client
	timeout      time.Duration
	logger       *zap.Logger
	logRequests  bool
	logResponses bool
}

// Option customises a Client.
type Option func(*options)

// WithHTTPClient uses the given HTTP client as the transport.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithTimeout bounds each request. Zero leaves the transport default.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithResponseValidator checks every response with the given validator and
// records violations in Response.SchemaError.
func WithResponseValidator(validator ResponseValidator) Option {
	return func(o *options) {
		o.validator = validator
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRequestLogging enables per request and response body log lines.
func WithRequestLogging(requests, responses bool) Option {
	return func(o *options) {
		o.logRequests = requests
		o.logResponses = responses
	}
}

// New returns a client for the service at baseURL, or DefaultBaseURL when empty.
func New(baseURL string, opts ...Option) *Client {
	o := &options{}

	for _, opt := range opts {
		opt(o)
	}

	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	baseURL = strings.TrimSuffix(baseURL, "/")

	var client *resty.Client

	if o.httpClient != nil {
		client = resty.NewWithClient(o.httpClient)
	} else {
		client = resty.New()
	}

	// Cookies would carry one call's session into the next.
	client.SetCookieJar(nil)
	client.SetBaseURL(baseURL)

	if o.timeout > 0 {
		client.SetTimeout(o.timeout)
	}

	logger := o.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL:      baseURL,
		client:       client,
		validator:    o.validator,
		logger:       logger.With(zap.String("baseURL", baseURL)),
		endpoints:    NewEndpoints(),
		logRequests:  o.logRequests,
		logResponses: o.logResponses,
	}
}

// BaseURL returns the service root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// generateTraceID creates a new W3C trace ID so a failing request can be
// found in server logs.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	return fmt.Sprintf("00-%s-%s-01", generateTraceID(), generateSpanID())
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// result is the raw outcome of an HTTP exchange.
type result struct {
	statusCode  int
	header      http.Header
	body        []byte
	schemaError error
}

// doRequest executes a request built by configure and returns the status and
// body. Only transport faults are errors, any status is a valid outcome.
func (c *Client) doRequest(ctx context.Context, method, path string, configure func(*resty.Request)) (*result, error) {
	traceParent := createTraceParent()

	req := c.client.R().
		SetContext(ctx).
		SetHeader("Traceparent", traceParent).
		SetHeader("Tracestate", "test-automation=petfriends")

	if configure != nil {
		configure(req)
	}

	log := c.logger.With(
		zap.String("method", method),
		zap.String("path", path),
		zap.String("traceID", extractTraceID(traceParent)),
	)

	start := time.Now()
	resp, err := req.Execute(method, path)
	duration := time.Since(start)

	if err != nil {
		log.Error("http request failed", zap.Duration("duration", duration), zap.Error(err))
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	out := &result{
		statusCode: resp.StatusCode(),
		header:     resp.Header(),
		body:       resp.Body(),
	}

	if c.logRequests {
		log.Info("request complete", zap.Int("status", resp.StatusCode()), zap.Duration("duration", duration))
	} else {
		log.Debug("request complete", zap.Int("status", resp.StatusCode()), zap.Duration("duration", duration))
	}

	if c.logResponses && len(out.body) > 0 {
		log.Info("response body", zap.ByteString("body", out.body))
	}

	if c.validator != nil {
		if err := c.validator.ValidateResponse(ctx, method, path, out.statusCode, out.header, out.body); err != nil {
			log.Warn("response does not match api description", zap.Error(err))

			out.schemaError = err
		}
	}

	return out, nil
}

// photoContentType guesses the part content type from the file extension.
func photoContentType(path string) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); t != "" {
		return t
	}

	return "application/octet-stream"
}

// uploadPhoto sends a multipart request with the photo at photoPath and the
// given text fields. The file is held open for the duration of the request.
func (c *Client) uploadPhoto(ctx context.Context, path string, key APIKey, fields map[string]string, photoPath string) (*Response[PetRecord], error) {
	if photoPath == "" {
		return nil, ErrMissingPhoto
	}

	f, err := os.Open(photoPath)
	if err != nil {
		return nil, fmt.Errorf("opening photo: %w", err)
	}

	defer f.Close()

	res, err := c.doRequest(ctx, http.MethodPost, path, func(r *resty.Request) {
		r.SetHeader(headerAuthKey, string(key))

		if len(fields) > 0 {
			r.SetMultipartFormData(fields)
		}

		r.SetMultipartField(fieldPhoto, filepath.Base(photoPath), photoContentType(photoPath), f)
	})
	if err != nil {
		return nil, err
	}

	return newResponse[PetRecord](res), nil
}

// GetAPIKey exchanges credentials for an API key. Invalid credentials are
// reported by status, typically 403, not by error.
func (c *Client) GetAPIKey(ctx context.Context, credentials Credentials) (*Response[AuthResult], error) {
	res, err := c.doRequest(ctx, http.MethodGet, c.endpoints.APIKey(), func(r *resty.Request) {
		r.SetHeader(headerEmail, credentials.Email)
		r.SetHeader(headerPassword, credentials.Password)
	})
	if err != nil {
		return nil, fmt.Errorf("getting api key: %w", err)
	}

	return newResponse[AuthResult](res), nil
}

// GetListOfPets lists all pets, or only the key holder's with FilterMyPets.
func (c *Client) GetListOfPets(ctx context.Context, key APIKey, filter Filter) (*Response[PetList], error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	res, err := c.doRequest(ctx, http.MethodGet, c.endpoints.ListPets(), func(r *resty.Request) {
		r.SetHeader(headerAuthKey, string(key))
		r.SetQueryParam("filter", string(filter))
	})
	if err != nil {
		return nil, fmt.Errorf("listing pets: %w", err)
	}

	return newResponse[PetList](res), nil
}

// AddNewPet creates a pet with a photo attachment.
func (c *Client) AddNewPet(ctx context.Context, key APIKey, pet NewPet, photoPath string) (*Response[PetRecord], error) {
	resp, err := c.uploadPhoto(ctx, c.endpoints.CreatePet(), key, pet.formData(), photoPath)
	if err != nil {
		return nil, fmt.Errorf("adding pet: %w", err)
	}

	return resp, nil
}

// CreatePetSimple creates a pet without a photo.
func (c *Client) CreatePetSimple(ctx context.Context, key APIKey, pet NewPet) (*Response[PetRecord], error) {
	res, err := c.doRequest(ctx, http.MethodPost, c.endpoints.CreatePetSimple(), func(r *resty.Request) {
		r.SetHeader(headerAuthKey, string(key))
		r.SetFormData(pet.formData())
	})
	if err != nil {
		return nil, fmt.Errorf("creating pet: %w", err)
	}

	return newResponse[PetRecord](res), nil
}

// SetPhoto attaches or replaces the photo of an existing pet.
func (c *Client) SetPhoto(ctx context.Context, key APIKey, petID, photoPath string) (*Response[PetRecord], error) {
	resp, err := c.uploadPhoto(ctx, c.endpoints.SetPhoto(petID), key, nil, photoPath)
	if err != nil {
		return nil, fmt.Errorf("setting photo on pet %s: %w", petID, err)
	}

	return resp, nil
}

// UpdatePetInfo replaces the name, type and age of an existing pet.
func (c *Client) UpdatePetInfo(ctx context.Context, key APIKey, petID string, pet NewPet) (*Response[PetRecord], error) {
	res, err := c.doRequest(ctx, http.MethodPut, c.endpoints.UpdatePet(petID), func(r *resty.Request) {
		r.SetHeader(headerAuthKey, string(key))
		r.SetFormData(pet.formData())
	})
	if err != nil {
		return nil, fmt.Errorf("updating pet %s: %w", petID, err)
	}

	return newResponse[PetRecord](res), nil
}

// DeletePet removes a pet.
func (c *Client) DeletePet(ctx context.Context, key APIKey, petID string) (*Response[Empty], error) {
	res, err := c.doRequest(ctx, http.MethodDelete, c.endpoints.DeletePet(petID), func(r *resty.Request) {
		r.SetHeader(headerAuthKey, string(key))
	})
	if err != nil {
		return nil, fmt.Errorf("deleting pet %s: %w", petID, err)
	}

	return newResponse[Empty](res), nil
}
