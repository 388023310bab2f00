package message

import "strings"

// Headers maps lower-cased header names to single values.
// Keys are lower-cased on every insert and lookup.
type Headers struct{ underlying map[string]string }

func NewHeaders(initial map[string]string) Headers {
	h := Headers{underlying: make(map[string]string, len(initial))}
	for k, v := range initial {
		h.underlying[strings.ToLower(k)] = v
	}
	return h
}

func (h *Headers) Get(key string) (value string, ok bool) {
	value, ok = h.underlying[strings.ToLower(key)]
	return
}

func (h *Headers) Set(key, value string) {
	if h.underlying == nil {
		h.underlying = make(map[string]string)
	}
	h.underlying[strings.ToLower(key)] = value
}

func (h *Headers) Del(key string) { delete(h.underlying, strings.ToLower(key)) }

func (h *Headers) Len() int { return len(h.underlying) }

// Each calls fn for every header. Iteration order is not stable.
func (h *Headers) Each(fn func(name, value string)) {
	for k, v := range h.underlying {
		fn(k, v)
	}
}

func (h *Headers) Clone() Headers { return NewHeaders(h.underlying) }

// FillMissing copies every entry of defaults whose key is absent from h.
// Existing entries always win over defaults.
func (h *Headers) FillMissing(defaults Headers) {
	defaults.Each(func(name, value string) {
		if _, ok := h.Get(name); !ok {
			h.Set(name, value)
		}
	})
}

// Fields returns a copy of the underlying map.
func (h *Headers) Fields() map[string]string {
	clone := make(map[string]string, len(h.underlying))
	for k, v := range h.underlying {
		clone[k] = v
	}
	return clone
}
