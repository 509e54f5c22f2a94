package httpclient

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/bpmon-network/bpmon/common/errs"
	"github.com/bpmon-network/bpmon/pkg/logger"
	"github.com/cockroachdb/errors"
	"github.com/valyala/fasthttp"
)

type Config struct {
	// Enable debug mode
	Debug bool

	// Default headers
	Headers map[string]string

	// Timeout bounds every round trip, zero means no timeout.
	// A shorter context deadline takes precedence.
	Timeout time.Duration

	// MaxRedirects is the number of redirects a GET, HEAD or OPTIONS request follows.
	// Zero means DefaultMaxRedirects, a negative value disables redirects.
	MaxRedirects int
}

const DefaultMaxRedirects = 5

type Client struct {
	baseURL *url.URL
	Config
}

func New(baseURL string, config ...Config) (*Client, error) {
	parsedBaseURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "can't parse base url")
	}
	if parsedBaseURL.Scheme == "" || parsedBaseURL.Host == "" {
		return nil, errors.Wrapf(errs.InvalidArgument, "base url %q must be absolute", baseURL)
	}
	var cf Config
	if len(config) > 0 {
		cf = config[0]
	}
	if len(cf.Headers) == 0 {
		cf.Headers = make(map[string]string)
	}
	if cf.MaxRedirects == 0 {
		cf.MaxRedirects = DefaultMaxRedirects
	}
	return &Client{
		baseURL: parsedBaseURL,
		Config:  cf,
	}, nil
}

type RequestOptions struct {
	path     string
	method   string
	Body     []byte
	Query    url.Values
	Header   map[string]string
	FormData url.Values
}

type HttpResponse struct {
	URL string
	fasthttp.Response
}

// IsSuccess reports whether the response has a 2xx status.
func (r *HttpResponse) IsSuccess() bool {
	code := r.StatusCode()
	return code >= fasthttp.StatusOK && code < fasthttp.StatusMultipleChoices
}

// HeaderValue returns the value of the response header, case-insensitive.
func (r *HttpResponse) HeaderValue(key string) string {
	return string(r.Header.Peek(key))
}

// UnmarshalBody decodes a JSON body. Nodes behind proxies often send JSON
// with a missing or generic content type, so only an explicit non-JSON
// text type is rejected.
func (r *HttpResponse) UnmarshalBody(out any) error {
	body, err := r.BodyUncompressed()
	if err != nil {
		return errors.Wrapf(err, "can't uncompress body from %v", r.URL)
	}
	contentType := strings.ToLower(string(r.Header.ContentType()))
	if strings.HasPrefix(contentType, "text/html") {
		return errors.Wrapf(errs.ProtocolMismatch, "can't unmarshal html body from %s", r.URL)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(errs.ProtocolMismatch, "can't unmarshal json body from %s, %v", r.URL, err)
	}
	return nil
}

func (h *Client) request(ctx context.Context, reqOptions RequestOptions) (*HttpResponse, error) {
	start := time.Now()
	req := fasthttp.AcquireRequest()
	req.Header.SetMethod(reqOptions.method)
	for k, v := range h.Headers {
		req.Header.Set(k, v)
	}
	for k, v := range reqOptions.Header {
		req.Header.Set(k, v)
	}

	parsedUrl := h.BaseURL()
	parsedUrl.Path = path.Join(parsedUrl.Path, reqOptions.path)
	if len(reqOptions.Query) > 0 {
		parsedUrl.RawQuery = reqOptions.Query.Encode()
	}

	url := parsedUrl.String()
	req.SetRequestURI(url)
	if reqOptions.Body != nil {
		req.Header.SetContentType("application/json")
		req.SetBody(reqOptions.Body)
	} else if reqOptions.FormData != nil {
		req.Header.SetContentType("application/x-www-form-urlencoded")
		req.SetBodyString(reqOptions.FormData.Encode())
	}

	resp := fasthttp.AcquireResponse()
	startDo := time.Now()

	defer func() {
		if h.Debug {
			logger := logger.With(
				slog.String("method", reqOptions.method),
				slog.String("url", url),
				slog.Duration("duration", time.Since(start)),
				slog.Duration("latency", time.Since(startDo)),
				slog.Int("req_content_length", req.Header.ContentLength()),
				slog.Int("status_code", resp.StatusCode()),
				slog.Int("resp_content_length", len(resp.Body())),
			)
			logger.DebugContext(ctx, "Finished make request", slog.String("package", "httpclient"))
		}

		fasthttp.ReleaseResponse(resp)
		fasthttp.ReleaseRequest(req)
	}()

	if err := h.do(ctx, req, resp); err != nil {
		return nil, errors.Wrapf(errors.Mark(err, errs.TransportFailure), "url: %s", url)
	}

	// req holds the final location when redirects were followed
	httpResponse := HttpResponse{
		URL: req.URI().String(),
	}
	resp.CopyTo(&httpResponse.Response)

	return &httpResponse, nil
}

func (h *Client) do(ctx context.Context, req *fasthttp.Request, resp *fasthttp.Response) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	deadline, hasDeadline := ctx.Deadline()
	if h.Timeout > 0 {
		if byTimeout := time.Now().Add(h.Timeout); !hasDeadline || byTimeout.Before(deadline) {
			deadline, hasDeadline = byTimeout, true
		}
	}
	if h.MaxRedirects > 0 && followsRedirects(&req.Header) {
		if hasDeadline {
			timeout := time.Until(deadline)
			if timeout <= 0 {
				return errors.WithStack(fasthttp.ErrTimeout)
			}
			// applies to each hop
			req.SetTimeout(timeout)
		}
		return errors.WithStack(fasthttp.DoRedirects(req, resp, h.MaxRedirects))
	}
	if hasDeadline {
		return errors.WithStack(fasthttp.DoDeadline(req, resp, deadline))
	}
	return errors.WithStack(fasthttp.Do(req, resp))
}

// followsRedirects reports whether the request carries no body and can be
// replayed on the redirect location as is.
func followsRedirects(header *fasthttp.RequestHeader) bool {
	return header.IsGet() || header.IsHead() || header.IsOptions()
}

// BaseURL returns the cloned base URL of the client.
func (h *Client) BaseURL() *url.URL {
	u := *h.baseURL
	return &u
}

func (h *Client) Do(ctx context.Context, method, path string, reqOptions RequestOptions) (*HttpResponse, error) {
	reqOptions.path = path
	reqOptions.method = method
	return h.request(ctx, reqOptions)
}

func (h *Client) Get(ctx context.Context, path string, reqOptions RequestOptions) (*HttpResponse, error) {
	reqOptions.path = path
	reqOptions.method = fasthttp.MethodGet
	return h.request(ctx, reqOptions)
}

func (h *Client) Post(ctx context.Context, path string, reqOptions RequestOptions) (*HttpResponse, error) {
	reqOptions.path = path
	reqOptions.method = fasthttp.MethodPost
	return h.request(ctx, reqOptions)
}

// PostJSON marshals body as JSON and posts it.
func (h *Client) PostJSON(ctx context.Context, path string, body any) (*HttpResponse, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "can't marshal request body")
	}
	return h.Post(ctx, path, RequestOptions{Body: raw})
}

func (h *Client) Options(ctx context.Context, path string, reqOptions RequestOptions) (*HttpResponse, error) {
	reqOptions.path = path
	reqOptions.method = fasthttp.MethodOptions
	return h.request(ctx, reqOptions)
}
