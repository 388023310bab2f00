// Package wire performs raw byte exchange over a single TCP session.
//
// A [Conn] lives for exactly one request/response exchange: it is opened,
// written, drained and closed. There is no keep-alive and no reuse.
package wire

import (
	"context"
	"io"
	"net"

	iolib "minihttp/lib/io"
	"minihttp/netsys"
	"minihttp/resolve"

	"github.com/pkg/errors"
)

const chunkSize = 256

// The final byte of each chunk is reserved for a terminator, so a single read
// carries at most chunkSize-1 bytes.
const chunkDataSize = chunkSize - 1

var (
	// ErrConnect means the TCP connection could not be established.
	ErrConnect = errors.New("could not connect to peer")

	// ErrSend means a write failed mid-transfer.
	ErrSend = errors.New("sending on connection failed")

	// ErrReceive means a read from the connection failed.
	ErrReceive = errors.New("receiving from connection failed")
)

// Conn is a single-shot TCP session.
type Conn struct {
	con net.Conn
}

// Open dials addr. [netsys.Startup] must have been called first.
func Open(ctx context.Context, addr resolve.Addr) (*Conn, error) {
	if !netsys.Ready() {
		return nil, netsys.ErrNotReady
	}

	var d net.Dialer
	con, err := d.DialContext(ctx, "tcp4", addr.String())
	if err != nil {
		return nil, errors.Wrapf(ErrConnect, "dialing %s: %v", addr, err)
	}

	return &Conn{con: con}, nil
}

// SendAll transmits buf entirely, looping over partial writes.
// Bytes already sent before a failure are not retracted.
func (c *Conn) SendAll(buf []byte) error {
	if _, err := iolib.WriteFull(c.con, buf); err != nil {
		return errors.Wrapf(ErrSend, "writing %d bytes: %v", len(buf), err)
	}
	return nil
}

// ReceiveAll reads fixed-size chunks until one comes back short, which is
// treated as end of stream. That covers both a graceful peer close and a final
// partial chunk. Peers that hold the connection open after a complete response
// will stall the caller indefinitely; this layer assumes close-delimited
// responses.
func (c *Conn) ReceiveAll() ([]byte, error) {
	raw := make([]byte, 0, chunkSize)
	buf := make([]byte, chunkDataSize)

	for {
		n, err := c.con.Read(buf)
		if err != nil && err != io.EOF {
			return nil, errors.Wrapf(ErrReceive, "reading response: %v", err)
		}

		raw = append(raw, buf[:n]...)

		if n < chunkDataSize {
			break
		}
	}

	return raw, nil
}

// Close releases the underlying socket. Safe to call after any failure.
func (c *Conn) Close() error { return c.con.Close() }
