package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/soaringjerry/ipss-selfcheck/internal/middleware"
	"github.com/soaringjerry/ipss-selfcheck/internal/models"
	"github.com/soaringjerry/ipss-selfcheck/internal/services"
)

// maxReplyBytes bounds the acknowledgment body read from the endpoint.
const maxReplyBytes = 1 << 20

// ErrMalformedReply marks a response body that is not the expected JSON acknowledgment.
var ErrMalformedReply = errors.New("malformed endpoint reply")

// EndpointClient posts questionnaire submissions as multipart forms.
type EndpointClient struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
	idGen    func() string
}

// ClientOption configures an EndpointClient.
type ClientOption func(*EndpointClient)

// WithHTTPClient replaces the underlying client. Its Transport is used as is.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *EndpointClient) { c.client = hc }
}

func WithClientLogger(l *zap.Logger) ClientOption {
	return func(c *EndpointClient) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewEndpointClient builds a client for endpoint. Without WithHTTPClient the transport chain
// adds request ids, no-cache headers, the locale and a user agent. No timeout is applied;
// callers cancel through the context.
func NewEndpointClient(endpoint, locale, userAgent string, opts ...ClientOption) *EndpointClient {
	c := &EndpointClient{
		endpoint: endpoint,
		client: &http.Client{
			Transport: middleware.Chain(http.DefaultTransport,
				middleware.RequestID,
				middleware.NoStore,
				middleware.Locale(locale),
				middleware.UserAgent(userAgent),
			),
		},
		logger: zap.NewNop(),
		idGen:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit sends fields in order and decodes the {ok,total,error} reply. The body is decoded
// whatever the HTTP status; a body that is not a JSON object is an error. A total that is not
// a whole number is dropped, so the caller falls back to its own.
func (c *EndpointClient) Submit(ctx context.Context, fields services.FieldSet) (*services.Reply, error) {
	body, contentType, err := encodeMultipart(fields)
	if err != nil {
		return nil, fmt.Errorf("encode form: %w", err)
	}

	requestID := c.idGen()
	ctx = middleware.WithRequestID(ctx, requestID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post submission: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Debug("close reply body", zap.Error(cerr))
		}
	}()

	var raw json.RawMessage
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxReplyBytes)).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w (status %d): %v", ErrMalformedReply, resp.StatusCode, err)
	}
	if len(raw) == 0 || raw[0] != '{' {
		return nil, fmt.Errorf("%w (status %d): not a JSON object", ErrMalformedReply, resp.StatusCode)
	}
	var out models.SubmitReply
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w (status %d): %v", ErrMalformedReply, resp.StatusCode, err)
	}
	c.logger.Debug("endpoint reply",
		zap.Int("status", resp.StatusCode),
		zap.Bool("ok", out.OK),
		zap.String("request_id", requestID))
	return &services.Reply{OK: out.OK, Total: out.WholeTotal(), Error: out.Error, RequestID: requestID}, nil
}

func encodeMultipart(fields services.FieldSet) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for _, f := range fields {
		if err := w.WriteField(f.Key, f.Value); err != nil {
			return nil, "", fmt.Errorf("field %s: %w", f.Key, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

var _ services.Submitter = (*EndpointClient)(nil)
