package resolve

import (
	"context"
	"net"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type failLookuper struct{ err error }

func (f failLookuper) LookupIP(ctx context.Context, host string) ([]net.IP, error) {
	return nil, f.err
}

type ResolveTestSuite struct {
	suite.Suite
}

func TestResolveTestSuite(t *testing.T) {
	suite.Run(t, new(ResolveTestSuite))
}

func (s *ResolveTestSuite) TestResolve() {
	v4 := net.IPv4(192, 0, 2, 10)
	v4Second := net.IPv4(192, 0, 2, 11)
	v6 := net.ParseIP("2001:db8::1")

	testcases := []struct {
		desc     string
		lookuper Lookuper
		host     string
		port     uint16
		expected Addr
		wantErr  error
	}{
		{
			desc:     "single IPv4 candidate",
			lookuper: NewMapLookuper(map[string][]net.IP{"example.test": {v4}}),
			host:     "example.test",
			port:     80,
			expected: NewAddr(v4.To4(), 80),
		},
		{
			desc:     "first IPv4 candidate wins",
			lookuper: NewMapLookuper(map[string][]net.IP{"example.test": {v6, v4, v4Second}}),
			host:     "example.test",
			port:     8080,
			expected: NewAddr(v4.To4(), 8080),
		},
		{
			desc:     "only IPv6 candidates",
			lookuper: NewMapLookuper(map[string][]net.IP{"example.test": {v6}}),
			host:     "example.test",
			port:     80,
			wantErr:  ErrNoResult,
		},
		{
			desc:     "lookup failure",
			lookuper: failLookuper{err: errors.New("resolver broke")},
			host:     "example.test",
			port:     80,
			wantErr:  ErrLookup,
		},
		{
			desc:     "empty host",
			lookuper: NewMapLookuper(nil),
			host:     "",
			port:     80,
			wantErr:  ErrBadTarget,
		},
		{
			desc:     "zero port",
			lookuper: NewMapLookuper(nil),
			host:     "example.test",
			port:     0,
			wantErr:  ErrBadTarget,
		},
	}
	for _, tc := range testcases {
		s.Run(tc.desc, func() {
			addr, err := Resolve(context.Background(), tc.lookuper, tc.host, tc.port)
			if tc.wantErr != nil {
				s.ErrorIs(err, tc.wantErr)
				return
			}

			s.NoError(err)
			s.Equal(tc.expected, addr)
		})
	}
}

func (s *ResolveTestSuite) TestMapLookuper() {
	v4 := net.IPv4(198, 51, 100, 7)

	m := NewMapLookuper(nil)

	_, err := m.LookupIP(context.Background(), "example.test")
	s.Error(err)

	m.Set("example.test", []net.IP{v4})
	got, err := m.LookupIP(context.Background(), "example.test")
	s.NoError(err)
	s.Equal([]net.IP{v4}, got)

	// Setting no addresses is a no-op.
	m.Set("other.test", nil)
	_, err = m.LookupIP(context.Background(), "other.test")
	s.Error(err)

	m.Del("example.test")
	_, err = m.LookupIP(context.Background(), "example.test")
	s.Error(err)
}

func TestAddrString(t *testing.T) {
	addr := NewAddr(net.IPv4(127, 0, 0, 1).To4(), 8080)
	assert.Equal(t, "127.0.0.1:8080", addr.String())
}
