/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

// Package netif enumerates the host's IPv4 network interfaces behind a
// single data model regardless of operating system. Interfaces that carry
// no IPv4 address do not appear in results.
package netif

import (
	"fmt"
	"net"
)

//go:generate go run go.uber.org/mock/mockgen -destination=../../internal/mocks/netif.go -package=mocks github.com/device-management-toolkit/ifquery-go/pkg/netif Enumerator

// Interface is one IPv4 address assignment on a network interface. An
// interface carrying several IPv4 addresses yields several entries, and
// Linux address aliases keep their own label (for example "eth0:1") as Name.
type Interface struct {
	Name    string `json:"name"`
	Address net.IP `json:"address"`
	Netmask net.IP `json:"netmask"`
	// Broadcast is nil when the OS reports none, such as on loopback
	// or point-to-point interfaces.
	Broadcast net.IP `json:"broadcast,omitempty"`
	// Up means administratively up with carrier present.
	Up       bool `json:"up"`
	Loopback bool `json:"loopback"`
}

// IsLinkLocal reports whether the address was self-assigned from the IPv4
// link-local block 169.254.0.0/16 (RFC 3927).
func (i Interface) IsLinkLocal() bool {
	return i.Address.IsLinkLocalUnicast()
}

// String renders a compact single-line form such as "eth0 192.168.1.20/24 up".
func (i Interface) String() string {
	ones, _ := net.IPMask(i.Netmask.To4()).Size()

	state := "down"
	if i.Up {
		state = "up"
	}

	return fmt.Sprintf("%s %s/%d %s", i.Name, i.Address, ones, state)
}

// Enumerator lists the IPv4 network interfaces visible to the host OS.
type Enumerator interface {
	Interfaces() ([]Interface, error)
}

// NewEnumerator returns the enumerator backed by the native facility of the
// platform this binary was built for.
func NewEnumerator() Enumerator {
	return newEnumerator()
}

// Interfaces enumerates with the platform backend. It returns the complete
// set or an error, never a partial list. Entries appear in the order the OS
// reported them; callers must not rely on that order.
func Interfaces() ([]Interface, error) {
	return NewEnumerator().Interfaces()
}

// broadcastAddr computes the directed broadcast address ip | ^mask. Both
// arguments must be IPv4; the result is nil otherwise.
func broadcastAddr(ip, mask net.IP) net.IP {
	ip4 := ip.To4()
	mask4 := mask.To4()

	if ip4 == nil || mask4 == nil {
		return nil
	}

	bcast := make(net.IP, net.IPv4len)
	for i := range bcast {
		bcast[i] = ip4[i] | ^mask4[i]
	}

	return bcast
}
