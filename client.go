// Package eway is a client for the eWAY managed payment SOAP service. It
// stores tokenized customer profiles remotely and triggers payments against
// them, normalizing every response into one success/message/payload shape.
package eway

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service endpoints. Which one a Gateway talks to is fixed at construction.
const (
	TestURL = "https://www.eway.com.au/gateway/ManagedPaymentService/test/managedCreditCardPayment.asmx"
	LiveURL = "https://www.eway.com.au/gateway/ManagedPaymentService/managedCreditCardPayment.asmx"
)

var (
	// ErrMissingCredentials is returned by New when the customer id, login
	// or password is empty.
	ErrMissingCredentials = errors.New("customer id, login and password are required")
)

// Poster performs the HTTPS POST for a serialized envelope and returns the
// raw response body. Implementations must return the body of HTTP error
// responses as well, since the service reports business faults on that path;
// only transport-level failures with no body should produce an error.
type Poster interface {
	Post(ctx context.Context, url string, headers map[string]string, body []byte) ([]byte, error)
}

// Config carries the credentials and collaborators of a Gateway.
type Config struct {
	// CustomerID, Login and Password authenticate every request. All
	// three are required.
	CustomerID string
	Login      string
	Password   string

	// Test selects the sandbox endpoint instead of the live one.
	Test bool

	// HTTPClient overrides the client used for requests. Defaults to
	// http.DefaultClient, which has no timeout.
	HTTPClient *http.Client
	// Poster overrides the transport entirely, mostly for tests.
	Poster Poster
	// Logger receives one entry per call. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Gateway is an opaque handle to the managed payment service. It holds no
// per-call state and is safe for concurrent use.
type Gateway struct {
	creds  ewayHeader
	url    string
	test   bool
	poster Poster
	log    *zap.Logger
}

// New creates a Gateway from cfg, validating the credentials.
func New(cfg Config) (*Gateway, error) {
	if cfg.CustomerID == "" || cfg.Login == "" || cfg.Password == "" {
		return nil, ErrMissingCredentials
	}

	url := LiveURL
	if cfg.Test {
		url = TestURL
	}

	poster := cfg.Poster
	if poster == nil {
		hc := cfg.HTTPClient
		if hc == nil {
			hc = http.DefaultClient
		}
		poster = &httpPoster{client: hc}
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Gateway{
		creds: ewayHeader{
			CustomerID: cfg.CustomerID,
			Username:   cfg.Login,
			Password:   cfg.Password,
		},
		url:    url,
		test:   cfg.Test,
		poster: poster,
		log:    log,
	}, nil
}

// CreateCustomer stores a new customer profile with the gateway. On success
// the managed customer id is in Params under create_customer_result.
func (g *Gateway) CreateCustomer(ctx context.Context, c Customer) (*Response, error) {
	payload, err := buildCreateCustomer(c)
	if err != nil {
		return nil, err
	}
	return g.roundTrip(ctx, actionCreateCustomer, payload)
}

// UpdateCustomer replaces the profile stored under managedCustomerID.
func (g *Gateway) UpdateCustomer(ctx context.Context, managedCustomerID string, c Customer) (*Response, error) {
	payload, err := buildUpdateCustomer(managedCustomerID, c)
	if err != nil {
		return nil, err
	}
	return g.roundTrip(ctx, actionUpdateCustomer, payload)
}

// QueryCustomer fetches the profile stored under managedCustomerID. The
// result is in Params under query_customer_result; a missing customer yields
// a failed Response, not an error.
func (g *Gateway) QueryCustomer(ctx context.Context, managedCustomerID string) (*Response, error) {
	payload, err := buildQueryCustomer(managedCustomerID)
	if err != nil {
		return nil, err
	}
	return g.roundTrip(ctx, actionQueryCustomer, payload)
}

// QueryCustomerByReference fetches the profile stored under the caller's own
// customer reference.
func (g *Gateway) QueryCustomerByReference(ctx context.Context, reference string) (*Response, error) {
	payload, err := buildQueryCustomerByReference(reference)
	if err != nil {
		return nil, err
	}
	return g.roundTrip(ctx, actionQueryCustomerByReference, payload)
}

// ProcessPayment triggers a payment against a stored customer. Approval is
// reported through Response.Success; the auth code, when granted, is in
// Response.Authorization.
func (g *Gateway) ProcessPayment(ctx context.Context, p Payment) (*Response, error) {
	payload, err := buildProcessPayment(p)
	if err != nil {
		return nil, err
	}
	return g.roundTrip(ctx, actionProcessPayment, payload)
}

// QueryPayment lists past payments for a stored customer. Repeated
// managed_transaction entries come back as a List in document order.
func (g *Gateway) QueryPayment(ctx context.Context, managedCustomerID string) (*Response, error) {
	payload, err := buildQueryPayment(managedCustomerID)
	if err != nil {
		return nil, err
	}
	return g.roundTrip(ctx, actionQueryPayment, payload)
}

// Store is a convenience wrapper over CreateCustomer that takes the card and
// a conventional billing address separately.
func (g *Gateway) Store(ctx context.Context, card Card, c Customer, billing Address) (*Response, error) {
	billing.apply(&c)
	c.Card = &card
	return g.CreateCustomer(ctx, c)
}

// Update is a convenience wrapper over UpdateCustomer in the style of Store.
func (g *Gateway) Update(ctx context.Context, managedCustomerID string, card Card, c Customer, billing Address) (*Response, error) {
	billing.apply(&c)
	c.Card = &card
	return g.UpdateCustomer(ctx, managedCustomerID, c)
}

// Purchase is a convenience wrapper over ProcessPayment taking the amount in
// cents and the managed customer id.
func (g *Gateway) Purchase(ctx context.Context, amount int, managedCustomerID string) (*Response, error) {
	return g.ProcessPayment(ctx, Payment{ManagedCustomerID: managedCustomerID, Amount: amount})
}

// roundTrip wraps the payload in an authenticated envelope, posts it, and
// normalizes and classifies whatever comes back.
func (g *Gateway) roundTrip(ctx context.Context, a action, payload any) (*Response, error) {
	env := NewEnvelope(payload)
	env.AddHeaders(g.creds)

	body, err := env.encode()
	if err != nil {
		return nil, err
	}

	requestID := uuid.New().String()
	start := time.Now()
	g.log.Debug("posting request",
		zap.String("action", a.String()),
		zap.String("request_id", requestID),
	)

	raw, err := g.poster.Post(ctx, g.url, map[string]string{
		"Content-Type": "text/xml; charset=utf-8",
		"SOAPAction":   a.soapAction(),
	}, body)
	if err != nil {
		g.log.Error("transport failure",
			zap.String("action", a.String()),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return nil, err
	}

	params, err := parseResponse(raw, a)
	if err != nil {
		return nil, err
	}

	resp := classify(params)
	resp.Test = g.test

	g.log.Info("request complete",
		zap.String("action", a.String()),
		zap.String("request_id", requestID),
		zap.Bool("success", resp.Success),
		zap.Duration("elapsed", time.Since(start)),
	)
	return resp, nil
}

// httpPoster is the default Poster. It never inspects the HTTP status code:
// the body is returned for normalization regardless.
type httpPoster struct {
	client *http.Client
}

func (p *httpPoster) Post(ctx context.Context, url string, headers map[string]string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	return io.ReadAll(resp.Body)
}
