// Package message holds the HTTP/1.x request/response data model, the
// wire-format request renderer and the raw response parser.
//
// Reference:
//
// - https://datatracker.ietf.org/doc/html/rfc9110
//
// - https://datatracker.ietf.org/doc/html/rfc9112
package message
