// Package web wraps the authenticated marketplace transport: a resty
// client carrying the login layer's cookie jar. The market client performs
// every round trip through it; connection pooling, TLS, and socket-level
// retries stay inside resty.
package web

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

type Session struct {
	client  *resty.Client
	baseURL *url.URL
}

// NewSession creates a transport rooted at host. resty picks up proxy
// configuration from the usual environment variables on its own.
func NewSession(host string, timeout time.Duration) (*Session, error) {
	host = strings.TrimSuffix(host, "/")
	base, err := url.Parse(host)
	if err != nil {
		return nil, errors.Wrapf(err, "parse host %q", host)
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errors.Wrap(err, "create cookie jar")
	}

	client := resty.New().
		SetBaseURL(host).
		SetTimeout(timeout).
		SetCookieJar(jar).
		SetHeader("User-Agent", defaultUserAgent).
		SetHeader("Accept", "*/*")

	return &Session{client: client, baseURL: base}, nil
}

// RequestOptions carries the per-request pieces the marketplace cares
// about: query params, an URL-encoded form body, and custom headers
// (the anti-abuse Referer in particular).
type RequestOptions struct {
	Headers map[string]string
	Params  map[string]string
	Form    map[string]string
}

func (s *Session) newRequest(ctx context.Context, opt *RequestOptions) *resty.Request {
	r := s.client.R()
	if ctx != nil {
		r.SetContext(ctx)
	}
	if opt != nil {
		if opt.Headers != nil {
			r.SetHeaders(opt.Headers)
		}
		if opt.Params != nil {
			r.SetQueryParams(opt.Params)
		}
		if opt.Form != nil {
			r.SetFormData(opt.Form)
		}
	}
	return r
}

// Get performs an authenticated GET. The response body is returned
// unparsed: marketplace endpoints answer with JSON or raw HTML and the
// caller knows which it asked for.
func (s *Session) Get(ctx context.Context, endpoint string, opt *RequestOptions) (*resty.Response, error) {
	resp, err := s.newRequest(ctx, opt).Get(endpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s", endpoint)
	}
	return resp, nil
}

// PostForm performs an authenticated POST with an URL-encoded form body.
func (s *Session) PostForm(ctx context.Context, endpoint string, opt *RequestOptions) (*resty.Response, error) {
	resp, err := s.newRequest(ctx, opt).Post(endpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "POST %s", endpoint)
	}
	return resp, nil
}

// Cookie returns the named session cookie for the transport's host, or ""
// when absent. The login layer owns cookie establishment; this is read
// access only.
func (s *Session) Cookie(name string) string {
	jar := s.client.GetClient().Jar
	if jar == nil {
		return ""
	}
	for _, c := range jar.Cookies(s.baseURL) {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// SetCookies seeds session cookies, the hook the login layer uses after
// authenticating.
func (s *Session) SetCookies(cookies []*http.Cookie) {
	if jar := s.client.GetClient().Jar; jar != nil {
		jar.SetCookies(s.baseURL, cookies)
	}
}

// BaseURL returns the transport's root URL without a trailing slash.
func (s *Session) BaseURL() string {
	return strings.TrimSuffix(s.baseURL.String(), "/")
}
