package client

import "minihttp/message"

// Jar is the per-client cookie store. It only grows or overwrites; a response
// never removes entries, and nothing expires. Every stored cookie is attached
// to every subsequent request regardless of path or domain.
type Jar struct {
	cookies message.Cookies
}

func NewJar() *Jar {
	return &Jar{cookies: message.NewCookies(nil)}
}

// Fill merges user cookies with the jar: user entries win, jar entries only
// fill names absent from user. The jar itself is left untouched.
func (j *Jar) Fill(user message.Cookies) message.Cookies {
	merged := user.Clone()
	merged.FillMissing(j.cookies)
	return merged
}

// Update folds response cookies into the jar, overwriting on name collision.
// Names not present in the response are kept as they were.
func (j *Jar) Update(fromResponse message.Cookies) {
	fromResponse.Each(func(name, value string) {
		j.cookies.Set(name, value)
	})
}

func (j *Jar) Get(name string) (value string, ok bool) { return j.cookies.Get(name) }

func (j *Jar) Len() int { return j.cookies.Len() }
