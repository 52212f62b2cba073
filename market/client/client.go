// Package client implements the community-market client: price reads,
// listing aggregation, and order operations including the marketplace's
// confirmation escalation protocol.
package client

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-resty/resty/v2"
	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/steamkit/gomarket/market/types"
	"github.com/steamkit/gomarket/pkg/config"
	"github.com/steamkit/gomarket/pkg/logger"
	"github.com/steamkit/gomarket/pkg/ratelimit"
	"github.com/steamkit/gomarket/pkg/web"
)

// Client talks to the marketplace on behalf of one authenticated account.
//
// It performs no internal locking: the session context is immutable after
// login, but interleaved sell/buy submissions from concurrent callers can
// mismatch confirmations on the marketplace side. Callers sharing a client
// must serialize their calls.
type Client struct {
	web *web.Session
	cfg config.Config
	log *logrus.Entry

	extractor PageExtractor
	confirmer ConfirmationService

	guard     types.Guard
	sessionID string
	loggedIn  bool

	priceCache  *gocache.Cache
	readLimiter ratelimit.RateLimiter
}

// New builds a client over an authenticated transport. extractor is
// required for GetMyListings, confirmer for the confirmation escalation
// paths; passing nil disables the respective operations.
func New(session *web.Session, cfg config.Config, extractor PageExtractor, confirmer ConfirmationService) *Client {
	cfg.Normalize()

	c := &Client{
		web:       session,
		cfg:       cfg,
		log:       logger.WithComponent("market"),
		extractor: extractor,
		confirmer: confirmer,
	}
	if ttl := cfg.PriceCacheTTL.Duration; ttl > 0 {
		c.priceCache = gocache.New(ttl, 2*ttl)
	}
	if cfg.EnforceReadQuota {
		c.readLimiter = ratelimit.NewMarketReadLimiter()
	}
	return c
}

// SetLoginExecuted installs the session context produced by the login
// layer: the session identifier and the guard record. Call it exactly
// once; the context is immutable for the process lifetime.
func (c *Client) SetLoginExecuted(guard types.Guard, sessionID string) {
	c.guard = guard
	c.sessionID = sessionID
	c.loggedIn = true
}

// LoggedIn reports whether the session context has been established.
func (c *Client) LoggedIn() bool {
	return c.loggedIn
}

// requireLogin is the guard clause run by every session-requiring
// operation before any request is constructed.
func (c *Client) requireLogin() error {
	if !c.loggedIn {
		return ErrNotLoggedIn
	}
	return nil
}

// marketSessionID prefers the live session cookie over the stored session
// identifier; the cookie is what the purchase endpoint validates against.
func (c *Client) marketSessionID() string {
	if v := c.web.Cookie("sessionid"); v != "" {
		return v
	}
	return c.sessionID
}

// waitReadQuota blocks on the shared read window when quota enforcement
// is enabled, otherwise it is a no-op and the marketplace's own 429
// remains the only signal.
func (c *Client) waitReadQuota(ctx context.Context) error {
	if c.readLimiter == nil {
		return nil
	}
	return c.readLimiter.Wait(ctx)
}

// sleep waits for d or until the context ends. Used for the confirmation
// propagation delay, which must be honored even though the client is
// otherwise fully synchronous.
func (c *Client) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// decodeJSON parses a marketplace response body. The marketplace answers
// failures with JSON bodies on assorted statuses, so decoding never gates
// on the status code here; callers check status where it is contractual.
func decodeJSON(resp *resty.Response, out any) error {
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return wrapAPIError(err, "malformed marketplace response")
	}
	return nil
}
