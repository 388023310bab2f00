package message

import (
	"bytes"
	"strconv"
)

var crlf = []byte("\r\n")

// QueryParam is one query key/value pair. Parameters keep the order they were
// given in, unlike headers.
type QueryParam struct{ Key, Value string }

// Request is the transient value serialized into wire-format text.
// It is constructed per call and discarded after [Request.Format].
type Request struct {
	Method      string
	Path        string
	Version     string
	Query       []QueryParam
	Body        []byte
	ContentType string
	Headers     Headers
	Cookies     Cookies
}

// Format renders the request line, headers, cookie line and body into
// HTTP/1.x wire text. No validation is performed; the caller is trusted.
//
// The query string keeps a trailing '&' and the cookie line a trailing ';'.
// Both are part of the wire contract.
func (r *Request) Format() []byte {
	buf := bytes.NewBuffer(nil)

	query := ""
	if len(r.Query) > 0 {
		query = "?"
		for _, p := range r.Query {
			query += p.Key + "=" + p.Value + "&"
		}
	}

	buf.WriteString(r.Method + " " + r.Path + query + " " + r.Version)
	buf.Write(crlf)

	r.Headers.Each(func(name, value string) {
		buf.WriteString(name + ": " + value)
		buf.Write(crlf)
	})

	if r.Cookies.Len() > 0 {
		buf.WriteString("cookie: ")
		r.Cookies.Each(func(name, value string) {
			buf.WriteString(name + "=" + value + ";")
		})
		buf.Write(crlf)
	}

	if len(r.Body) > 0 {
		buf.WriteString("content-length: " + strconv.Itoa(len(r.Body)))
		buf.Write(crlf)
		buf.WriteString("content-type: " + r.ContentType)
		buf.Write(crlf)
	}

	buf.Write(crlf)

	if len(r.Body) > 0 {
		buf.Write(r.Body)
	}

	return buf.Bytes()
}
