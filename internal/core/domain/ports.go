package domain

import (
	"github.com/docker/go-connections/nat"
	"go.trai.ch/zerr"
)

// PortMapping is a single host-to-container port publication.
type PortMapping struct {
	Raw       string
	HostIP    string
	Host      string
	Container string
	Proto     string
}

// ParsePortMapping parses a "host:container" publication such as "8081:8081".
// Ranges and container-only specs are rejected since the URL needs one host port.
func ParsePortMapping(raw string) (PortMapping, error) {
	mappings, err := nat.ParsePortSpec(raw)
	if err != nil {
		return PortMapping{}, zerr.With(zerr.Wrap(ErrInvalidPortMapping, err.Error()), "ports", raw)
	}
	if len(mappings) != 1 {
		return PortMapping{}, zerr.With(zerr.Wrap(ErrInvalidPortMapping, "port ranges are not supported"), "ports", raw)
	}

	m := mappings[0]
	if m.Binding.HostPort == "" {
		return PortMapping{}, zerr.With(zerr.Wrap(ErrInvalidPortMapping, "host port is required"), "ports", raw)
	}

	return PortMapping{
		Raw:       raw,
		HostIP:    m.Binding.HostIP,
		Host:      m.Binding.HostPort,
		Container: m.Port.Port(),
		Proto:     m.Port.Proto(),
	}, nil
}

// URL returns the address the published port is reachable at from the host.
func (p PortMapping) URL() string {
	return "http://localhost:" + p.Host
}
