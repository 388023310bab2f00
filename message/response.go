package message

import (
	"bytes"
	"strconv"
	"strings"
)

// Response is the structured form of one received HTTP/1.x message.
// Raw keeps the unparsed text for diagnostics.
type Response struct {
	Proto   string
	Code    uint
	Status  string
	Headers Headers
	Cookies Cookies
	Body    []byte
	Raw     []byte
}

// Reset clears every field so no residue survives between receives.
func (r *Response) Reset() { *r = Response{} }

const (
	stateStatus = iota
	stateHeaders
	stateBody
)

// Parse consumes raw response text and populates r. It never fails: malformed
// lines degrade the structured result instead of aborting the call.
func (r *Response) Parse(raw []byte) {
	r.Reset()
	r.Raw = raw
	r.Headers = NewHeaders(nil)
	r.Cookies = NewCookies(nil)

	lines := strings.Split(string(raw), "\r\n")

	state := stateStatus
	contentLength := 0
	body := bytes.NewBuffer(nil)

	for _, line := range lines {
		switch state {
		case stateStatus:
			r.parseStatusLine(line)
			state = stateHeaders
		case stateHeaders:
			if line == "" {
				state = stateBody
				break
			}
			r.applyHeaderLine(line, &contentLength)
		case stateBody:
			body.WriteString(line)
			// Splitting on CRLF ate the delimiters; put them back while the
			// body is still shorter than the announced content-length.
			if body.Len() < contentLength {
				body.Write(crlf)
			}
		}
	}

	r.Body = body.Bytes()
}

// parseStatusLine tokenizes the first line on whitespace. Only the first word
// of the reason phrase is kept ("Not Found" comes out as "Not"); this
// truncation is part of the contract.
func (r *Response) parseStatusLine(line string) {
	fields := strings.Fields(line)

	if len(fields) > 0 {
		r.Proto = fields[0]
	}
	if len(fields) > 1 {
		if code, err := strconv.ParseUint(fields[1], 10, 64); err == nil {
			r.Code = uint(code)
		}
	}
	if len(fields) > 2 {
		r.Status = fields[2]
	}
}

// applyHeaderLine splits a header line on the first colon. The value starts
// two bytes past the colon: exactly one space is assumed between colon and
// value, so a value with no leading space loses its first character.
func (r *Response) applyHeaderLine(line string, contentLength *int) {
	idx := strings.IndexByte(line, ':')
	if idx < 0 {
		return
	}

	name := strings.ToLower(line[:idx])

	value := ""
	if idx+2 <= len(line) {
		value = line[idx+2:]
	}

	if name == "set-cookie" {
		r.applySetCookie(value)
		return
	}

	r.Headers.Set(name, value)

	if name == "content-length" {
		if n, err := strconv.Atoi(value); err == nil {
			*contentLength = n
		}
	}
}

// applySetCookie extracts a single name=value pair. Everything after the
// first ';' (Path, Domain, Expires, flags) is discarded.
func (r *Response) applySetCookie(value string) {
	name, rest, found := strings.Cut(value, "=")
	if !found {
		return
	}

	if i := strings.IndexByte(rest, ';'); i >= 0 {
		rest = rest[:i]
	}

	r.Cookies.Set(name, rest)
}
