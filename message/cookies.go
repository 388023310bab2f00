package message

// Cookies maps cookie names to values. Unlike [Headers], names are
// case-sensitive.
type Cookies struct{ underlying map[string]string }

func NewCookies(initial map[string]string) Cookies {
	c := Cookies{underlying: make(map[string]string, len(initial))}
	for k, v := range initial {
		c.underlying[k] = v
	}
	return c
}

func (c *Cookies) Get(name string) (value string, ok bool) {
	value, ok = c.underlying[name]
	return
}

func (c *Cookies) Set(name, value string) {
	if c.underlying == nil {
		c.underlying = make(map[string]string)
	}
	c.underlying[name] = value
}

func (c *Cookies) Del(name string) { delete(c.underlying, name) }

func (c *Cookies) Len() int { return len(c.underlying) }

// Each calls fn for every cookie. Iteration order is not stable.
func (c *Cookies) Each(fn func(name, value string)) {
	for k, v := range c.underlying {
		fn(k, v)
	}
}

func (c *Cookies) Clone() Cookies { return NewCookies(c.underlying) }

// FillMissing copies every entry of defaults whose name is absent from c.
// Existing entries always win over defaults.
func (c *Cookies) FillMissing(defaults Cookies) {
	defaults.Each(func(name, value string) {
		if _, ok := c.Get(name); !ok {
			c.Set(name, value)
		}
	})
}

// Pairs returns a copy of the underlying map.
func (c *Cookies) Pairs() map[string]string {
	clone := make(map[string]string, len(c.underlying))
	for k, v := range c.underlying {
		clone[k] = v
	}
	return clone
}
