//go:build linux
// +build linux

/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package netif

import (
	"net"

	"github.com/vishvananda/netlink"
	"golang.org/x/sys/unix"
)

// netlinkAPI is the slice of github.com/vishvananda/netlink the enumerator
// consumes, declared as an interface so tests can substitute a fake.
type netlinkAPI interface {
	LinkList() ([]netlink.Link, error)
	AddrList(link netlink.Link, family int) ([]netlink.Addr, error)
}

type liveNetlink struct{}

func (liveNetlink) LinkList() ([]netlink.Link, error) {
	return netlink.LinkList()
}

func (liveNetlink) AddrList(link netlink.Link, family int) ([]netlink.Addr, error) {
	return netlink.AddrList(link, family)
}

type linuxEnumerator struct {
	nl netlinkAPI
}

func newEnumerator() Enumerator {
	return &linuxEnumerator{nl: liveNetlink{}}
}

// Interfaces dumps the kernel's link table and IPv4 address table over
// rtnetlink and joins them by link index, one entry per address.
func (e *linuxEnumerator) Interfaces() ([]Interface, error) {
	links, err := e.nl.LinkList()
	if err != nil {
		return nil, &EnumerationError{Op: "netlink.linklist", Err: err}
	}

	addrs, err := e.nl.AddrList(nil, netlink.FAMILY_V4)
	if err != nil {
		return nil, &EnumerationError{Op: "netlink.addrlist", Err: err}
	}

	linkByIndex := make(map[int]*netlink.LinkAttrs, len(links))

	for _, link := range links {
		attrs := link.Attrs()
		linkByIndex[attrs.Index] = attrs
	}

	ifaces := make([]Interface, 0, len(addrs))

	for _, addr := range addrs {
		if addr.IPNet == nil {
			continue
		}

		// The two dumps are not atomic; drop addresses whose link
		// disappeared in between.
		attrs, ok := linkByIndex[addr.LinkIndex]
		if !ok {
			continue
		}

		ip4 := addr.IP.To4()
		if ip4 == nil {
			continue
		}

		// Aliased addresses carry their own label, e.g. "eth0:1".
		name := addr.Label
		if name == "" {
			name = attrs.Name
		}

		iface := Interface{
			Name:     name,
			Address:  ip4,
			Netmask:  net.IP(addr.Mask),
			Up:       attrs.RawFlags&unix.IFF_UP != 0 && attrs.RawFlags&unix.IFF_LOWER_UP != 0,
			Loopback: attrs.RawFlags&unix.IFF_LOOPBACK != 0,
		}

		if bcast := addr.Broadcast.To4(); bcast != nil {
			iface.Broadcast = bcast
		}

		ifaces = append(ifaces, iface)
	}

	return ifaces, nil
}
