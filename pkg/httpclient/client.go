package httpclient

import (
	"context"
	"io"
	"net"
	"net/http"
	"time"
)

var _ HTTPClient = (*httpClient)(nil)

type HTTPClient interface {
	Get(ctx context.Context, url string, headers map[string]string) (*http.Response, error)
	Post(ctx context.Context, url string, body io.Reader, headers map[string]string) (*http.Response, error)
	Do(req *http.Request) (*http.Response, error)
	Close()
}

// Factory builds a client bounded by timeout. Callers own the returned client
// and must Close it once the response has been consumed.
type Factory func(timeout time.Duration) HTTPClient

type httpClient struct {
	Client *http.Client
}

// NewHTTPClient applies timeout both to connection establishment and to the
// whole request/response exchange.
func NewHTTPClient(timeout time.Duration) HTTPClient {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: timeout,
		MaxIdleConns:        1,
		IdleConnTimeout:     timeout,
	}

	return &httpClient{Client: &http.Client{Timeout: timeout, Transport: transport}}
}

func (c *httpClient) Get(ctx context.Context, url string, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req, headers)
	return c.Client.Do(req)
}

func (c *httpClient) Post(ctx context.Context, url string, body io.Reader, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req, headers)
	return c.Client.Do(req)
}

func (c *httpClient) Do(req *http.Request) (*http.Response, error) {
	return c.Client.Do(req)
}

func (c *httpClient) Close() {
	c.Client.CloseIdleConnections()
}

func (c *httpClient) setHeaders(req *http.Request, headers map[string]string) {
	if len(headers) == 0 {
		return
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}
}
