// Package proxy implements the streaming pass-through to the upstream API.
// The proxy is a pipe, not a translator: status, content-type and body are
// relayed verbatim. Its only own fault domain is "could not reach the
// upstream at all", which synthesizes a fixed INTERNAL_ERROR shape.
package proxy

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appErrors "github.com/noah-isme/resource-hub-web/pkg/errors"
	"github.com/noah-isme/resource-hub-web/pkg/response"
)

// Observer receives upstream call metrics. Nil observers are allowed.
type Observer interface {
	ObserveUpstream(method, path string, status int, duration time.Duration)
	ProxyFault(path string)
}

// Proxy forwards browser requests to the upstream API.
type Proxy struct {
	client   *http.Client
	baseURL  string
	logger   *zap.Logger
	observer Observer
}

// New constructs a Proxy. The http.Client is shared with the typed backend
// client so both honor the same timeout and transport tuning.
func New(client *http.Client, baseURL string, logger *zap.Logger, observer Observer) *Proxy {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Proxy{client: client, baseURL: baseURL, logger: logger, observer: observer}
}

// Forward relays the inbound request to baseURL+upstreamPath.
//
//   - The inbound query string is forwarded unmodified.
//   - The request body is streamed, never buffered; the upstream enforces any
//     size ceiling, not this layer.
//   - bearer, when non-empty, is injected as an Authorization header. An empty
//     bearer forwards the request unauthenticated.
//   - The outbound request carries the inbound request's context, so a client
//     abort (navigation, superseded fetch) cancels the upstream call.
//   - Transport failure before any upstream response synthesizes HTTP 500 with
//     {"error":{"code":"INTERNAL_ERROR","message":faultMessage}}.
func (p *Proxy) Forward(c *gin.Context, method, upstreamPath, bearer, faultMessage string) {
	target := p.baseURL + upstreamPath
	if raw := c.Request.URL.RawQuery; raw != "" {
		target += "?" + raw
	}

	var body io.Reader
	if c.Request.Body != nil && method != http.MethodGet {
		body = c.Request.Body
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), method, target, body)
	if err != nil {
		p.fault(c, upstreamPath, faultMessage, err)
		return
	}

	if ct := c.GetHeader("Content-Type"); ct != "" {
		req.Header.Set("Content-Type", ct)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	start := time.Now()
	res, err := p.client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			// Client went away; nothing to answer.
			c.Abort()
			return
		}
		p.fault(c, upstreamPath, faultMessage, err)
		return
	}
	defer res.Body.Close()

	if p.observer != nil {
		p.observer.ObserveUpstream(method, upstreamPath, res.StatusCode, time.Since(start))
	}

	contentType := res.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	c.Header("Content-Type", contentType)
	response.NoStore(c)
	c.Status(res.StatusCode)

	if _, err := io.Copy(c.Writer, res.Body); err != nil {
		// Headers are already on the wire; all we can do is log.
		p.logger.Warn("proxy body relay interrupted",
			zap.String("path", upstreamPath),
			zap.Error(err),
		)
	}
}

func (p *Proxy) fault(c *gin.Context, upstreamPath, faultMessage string, err error) {
	p.logger.Error("proxy fault",
		zap.String("method", c.Request.Method),
		zap.String("path", upstreamPath),
		zap.String("upstream", p.baseURL),
		zap.Error(err),
	)
	if p.observer != nil {
		p.observer.ProxyFault(upstreamPath)
	}
	response.Error(c, appErrors.New(appErrors.ErrInternal.Code, http.StatusInternalServerError, faultMessage))
	c.Abort()
}
