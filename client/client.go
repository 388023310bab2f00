// Package client orchestrates one blocking HTTP/1.x exchange per call:
// resolve, connect, format, send, receive, parse, fold cookies, disconnect.
package client

import (
	"context"
	"log/slog"
	"strconv"

	"minihttp/message"
	"minihttp/resolve"
	"minihttp/wire"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
)

const defaultVersion = "HTTP/1.1"

type Options struct {
	// Version is the HTTP version emitted on the request line.
	// Defaults to "HTTP/1.1".
	Version string
}

// Client is a blocking HTTP/1.x client for a single target host.
//
// The cookie jar and default headers are the only state shared across calls.
// A Client is not safe for concurrent use; callers must serialize Request.
type Client struct {
	host string
	port uint16

	addr     resolve.Addr
	resolved bool

	defaultHeaders message.Headers
	jar            *Jar

	lookuper resolve.Lookuper
	logger   *slog.Logger
	clock    clock.Clock

	opts Options
}

// New builds a client targeting host:port. Nothing is resolved eagerly; the
// address is looked up on the first Request call and cached.
func New(
	host string,
	port uint16,
	lookuper resolve.Lookuper,
	logger *slog.Logger,
	clock clock.Clock,
	opts Options,
) *Client {
	if opts.Version == "" {
		opts.Version = defaultVersion
	}

	headers := message.NewHeaders(nil)
	headers.Set("host", host+":"+strconv.FormatUint(uint64(port), 10))

	return &Client{
		host:           host,
		port:           port,
		defaultHeaders: headers,
		jar:            NewJar(),
		lookuper:       lookuper,
		logger:         logger,
		clock:          clock,
		opts:           opts,
	}
}

// Jar exposes the client's cookie store.
func (c *Client) Jar() *Jar { return c.jar }

// Request performs one complete exchange. User-supplied headers and cookies
// win over client defaults and jar entries on overlapping keys. The
// connection opened for the call is released on every exit path.
func (c *Client) Request(
	ctx context.Context,
	method, path string,
	query []message.QueryParam,
	body []byte,
	contentType string,
	userHeaders message.Headers,
	userCookies message.Cookies,
) (*message.Response, error) {
	started := c.clock.Now()

	headers := userHeaders.Clone()
	headers.FillMissing(c.defaultHeaders)
	cookies := c.jar.Fill(userCookies)

	request := message.Request{
		Method:      method,
		Path:        path,
		Version:     c.opts.Version,
		Query:       query,
		Body:        body,
		ContentType: contentType,
		Headers:     headers,
		Cookies:     cookies,
	}
	wireText := request.Format()

	addr, err := c.resolveAddr(ctx)
	if err != nil {
		c.logger.Error("couldn't resolve target host", "host", c.host, "err", err)
		return nil, errors.Wrap(err, "resolving target host")
	}

	conn, err := wire.Open(ctx, addr)
	if err != nil {
		c.logger.Error("couldn't connect to HTTP server", "addr", addr.String(), "err", err)
		return nil, errors.Wrap(err, "opening connection")
	}
	defer conn.Close()

	if err := conn.SendAll(wireText); err != nil {
		c.logger.Error("couldn't send HTTP request", "err", err)
		return nil, errors.Wrap(err, "sending request")
	}

	raw, err := conn.ReceiveAll()
	if err != nil {
		c.logger.Error("couldn't receive HTTP response", "err", err)
		return nil, errors.Wrap(err, "receiving response")
	}

	response := new(message.Response)
	response.Parse(raw)

	c.logger.Debug("raw response",
		"raw", string(response.Raw),
		"took", c.clock.Since(started),
	)

	c.jar.Update(response.Cookies)

	return response, nil
}

func (c *Client) resolveAddr(ctx context.Context) (resolve.Addr, error) {
	if c.resolved {
		return c.addr, nil
	}

	addr, err := resolve.Resolve(ctx, c.lookuper, c.host, c.port)
	if err != nil {
		return resolve.Addr{}, err
	}

	c.addr, c.resolved = addr, true
	return addr, nil
}
