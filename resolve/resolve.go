// Package resolve turns a hostname/port pair into a connectable IPv4/TCP
// address.
package resolve

import (
	"context"
	"maps"
	"net"
	"strconv"

	"github.com/pkg/errors"
)

var (
	// ErrBadTarget means the hostname was empty or the port was out of range.
	ErrBadTarget = errors.New("target host/port is invalid")

	// ErrLookup means name resolution itself failed.
	ErrLookup = errors.New("host lookup failed")

	// ErrNoResult means resolution succeeded but yielded no IPv4 candidate.
	ErrNoResult = errors.New("no usable IPv4 candidate for host")
)

// Addr is a resolved IPv4/TCP endpoint. Immutable after creation.
type Addr struct {
	ip   net.IP
	port uint16
}

func NewAddr(ip net.IP, port uint16) Addr { return Addr{ip: ip, port: port} }

func (a Addr) IP() net.IP   { return a.ip }
func (a Addr) Port() uint16 { return a.port }

func (a Addr) String() string {
	return a.ip.String() + ":" + strconv.FormatUint(uint64(a.port), 10)
}

// Lookuper resolves a hostname into candidate addresses.
type Lookuper interface {
	LookupIP(ctx context.Context, host string) (addrs []net.IP, err error)
}

// NetLookuper queries the platform's name resolution.
type NetLookuper struct{ resolver *net.Resolver }

var _ Lookuper = (*NetLookuper)(nil)

func NewNetLookuper() *NetLookuper {
	return &NetLookuper{resolver: net.DefaultResolver}
}

func (n *NetLookuper) LookupIP(ctx context.Context, host string) ([]net.IP, error) {
	addrs, err := n.resolver.LookupIPAddr(ctx, host)
	if err != nil {
		return nil, err
	}

	ips := make([]net.IP, 0, len(addrs))
	for _, addr := range addrs {
		ips = append(ips, addr.IP)
	}

	return ips, nil
}

var errHostNotFound = errors.New("host not found")

// MapLookuper serves lookups from a fixed table.
type MapLookuper struct{ set map[string][]net.IP }

var _ Lookuper = (*MapLookuper)(nil)

func NewMapLookuper(set map[string][]net.IP) *MapLookuper {
	if set == nil {
		set = make(map[string][]net.IP)
	}
	return &MapLookuper{set: maps.Clone(set)}
}

func (m *MapLookuper) LookupIP(ctx context.Context, host string) ([]net.IP, error) {
	addrs, ok := m.set[host]
	if !ok {
		return nil, errHostNotFound
	}
	return addrs, nil
}

func (m *MapLookuper) Set(host string, addrs []net.IP) {
	if len(addrs) == 0 {
		return
	}
	m.set[host] = addrs
}

func (m *MapLookuper) Del(host string) { delete(m.set, host) }

// Resolve scans the lookup candidates for host and pairs the first IPv4 entry
// with port. Candidates without an IPv4 form are skipped.
func Resolve(ctx context.Context, l Lookuper, host string, port uint16) (Addr, error) {
	if host == "" || port == 0 {
		return Addr{}, errors.Wrapf(ErrBadTarget, "host %q, port %d", host, port)
	}

	candidates, err := l.LookupIP(ctx, host)
	if err != nil {
		return Addr{}, errors.Wrapf(ErrLookup, "looking up %q: %v", host, err)
	}

	for _, ip := range candidates {
		if v4 := ip.To4(); v4 != nil {
			return NewAddr(v4, port), nil
		}
	}

	return Addr{}, errors.Wrapf(ErrNoResult, "host %q", host)
}
