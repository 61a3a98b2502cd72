// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package network

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/juju/errors"
)

// PortRange represents a single range of ports opened by the unit, in the
// form understood by the open-port, close-port and opened-ports hook tools.
type PortRange struct {
	FromPort int
	ToPort   int
	Protocol string
}

// NewPortRange creates a new port range and validates it.
func NewPortRange(fromPort, toPort int, protocol string) (PortRange, error) {
	p := PortRange{
		FromPort: fromPort,
		ToPort:   toPort,
		Protocol: strings.ToLower(protocol),
	}
	if err := p.Validate(); err != nil {
		return PortRange{}, errors.Trace(err)
	}
	return p, nil
}

// MustParsePortRange converts a raw port-range string into a PortRange.
// If the string is invalid, the function panics.
func MustParsePortRange(portRange string) PortRange {
	p, err := ParsePortRange(portRange)
	if err != nil {
		panic(err)
	}
	return p
}

var portRangeRE = regexp.MustCompile(`^(?:(\d+)(?:-(\d+))?/)?([a-zA-Z]+)$`)

// ParsePortRange builds a PortRange from the provided string. The string
// is one of "icmp", "<port>/<protocol>" or "<from>-<to>/<protocol>".
func ParsePortRange(inPortRange string) (PortRange, error) {
	parts := portRangeRE.FindStringSubmatch(strings.TrimSpace(inPortRange))
	if parts == nil {
		return PortRange{}, errors.NotValidf("port range %q", inPortRange)
	}
	protocol := strings.ToLower(parts[3])
	if parts[1] == "" {
		switch protocol {
		case "icmp":
			return PortRange{FromPort: -1, ToPort: -1, Protocol: protocol}, nil
		case "tcp", "udp":
			return PortRange{}, errors.NotValidf("port range %q without ports", inPortRange)
		}
		return PortRange{}, errors.NotValidf("port range %q", inPortRange)
	}
	from, err := strconv.Atoi(parts[1])
	if err != nil {
		return PortRange{}, errors.Annotatef(err, "parsing port range %q", inPortRange)
	}
	to := from
	if parts[2] != "" {
		if to, err = strconv.Atoi(parts[2]); err != nil {
			return PortRange{}, errors.Annotatef(err, "parsing port range %q", inPortRange)
		}
	}
	return NewPortRange(from, to, protocol)
}

// Validate checks if the port range is valid.
func (p PortRange) Validate() error {
	proto := strings.ToLower(p.Protocol)
	if proto != "tcp" && proto != "udp" && proto != "icmp" {
		return errors.Errorf("invalid protocol %q", proto)
	}
	if proto == "icmp" {
		if p.FromPort == p.ToPort && p.FromPort == -1 {
			return nil
		}
		return errors.Errorf(`protocol "icmp" doesn't support any ports; got "%v"`, p.FromPort)
	}
	if p.FromPort > p.ToPort {
		return errors.Errorf("invalid port range %d-%d", p.FromPort, p.ToPort)
	}
	if p.FromPort <= 0 || p.FromPort > 65535 ||
		p.ToPort <= 0 || p.ToPort > 65535 {
		return errors.Errorf("port range bounds must be between 1 and 65535, got %d-%d", p.FromPort, p.ToPort)
	}
	return nil
}

// Length returns the number of ports in the range.
// If the range is not valid, it returns 0.
func (p PortRange) Length() int {
	if err := p.Validate(); err != nil {
		return 0
	}
	if p.Protocol == "icmp" {
		return 0
	}
	return (p.ToPort - p.FromPort) + 1
}

// String returns the port range in the form accepted by open-port.
func (p PortRange) String() string {
	proto := strings.ToLower(p.Protocol)
	if proto == "icmp" {
		return proto
	}
	if p.FromPort == p.ToPort {
		return fmt.Sprintf("%d/%s", p.FromPort, proto)
	}
	return fmt.Sprintf("%d-%d/%s", p.FromPort, p.ToPort, proto)
}
