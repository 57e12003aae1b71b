//go:build windows
// +build windows

/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package netif

import (
	"net"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	// Initial buffer size recommended by the GetAdaptersAddresses
	// documentation.
	initialAdapterBufferSize = 15000
	// The OS reports the size it needs on overflow, so one retry should
	// suffice; the cap guards against a provider that keeps asking.
	maxAdapterQueryAttempts = 3
)

type windowsEnumerator struct {
	// Syscall reached through a field so tests can fake the buffer
	// negotiation without a live IP Helper.
	getAdaptersAddresses func(family, flags uint32, reserved uintptr, adapterAddresses *windows.IpAdapterAddresses, sizePointer *uint32) error
}

func newEnumerator() Enumerator {
	return &windowsEnumerator{getAdaptersAddresses: windows.GetAdaptersAddresses}
}

// Interfaces queries the IP Helper adapter table for IPv4 unicast addresses,
// one entry per address.
func (e *windowsEnumerator) Interfaces() ([]Interface, error) {
	adapters, err := e.adapterAddresses()
	if err != nil {
		return nil, &EnumerationError{Op: "getadaptersaddresses", Err: err}
	}

	var ifaces []Interface

	for _, adapter := range adapters {
		name := windows.UTF16PtrToString(adapter.FriendlyName)
		up := adapter.OperStatus == windows.IfOperStatusUp
		loopback := adapter.IfType == windows.IF_TYPE_SOFTWARE_LOOPBACK

		for addr := adapter.FirstUnicastAddress; addr != nil; addr = addr.Next {
			ip := addr.Address.IP().To4()
			if ip == nil {
				continue
			}

			// The socket address aliases the query buffer; copy it out.
			ip4 := make(net.IP, net.IPv4len)
			copy(ip4, ip)

			iface := Interface{
				Name:     name,
				Address:  ip4,
				Netmask:  net.IP(net.CIDRMask(int(addr.OnLinkPrefixLength), 8*net.IPv4len)),
				Up:       up,
				Loopback: loopback,
			}

			if !loopback {
				iface.Broadcast = broadcastAddr(iface.Address, iface.Netmask)
			}

			ifaces = append(ifaces, iface)
		}
	}

	return ifaces, nil
}

// adapterAddresses negotiates the result buffer with the OS: offer a buffer,
// and on ERROR_BUFFER_OVERFLOW retry with the size the OS wrote back. A
// reported size that did not grow past the buffer just offered aborts rather
// than retrying forever, as does running out of attempts.
func (e *windowsEnumerator) adapterAddresses() ([]*windows.IpAdapterAddresses, error) {
	const flags = windows.GAA_FLAG_SKIP_ANYCAST | windows.GAA_FLAG_SKIP_MULTICAST | windows.GAA_FLAG_SKIP_DNS_SERVER

	l := uint32(initialAdapterBufferSize)

	for attempt := 0; attempt < maxAdapterQueryAttempts; attempt++ {
		b := make([]byte, l)

		err := e.getAdaptersAddresses(windows.AF_INET, flags, 0, (*windows.IpAdapterAddresses)(unsafe.Pointer(&b[0])), &l)
		if err == nil {
			if l == 0 {
				return nil, nil
			}

			var adapters []*windows.IpAdapterAddresses
			for aa := (*windows.IpAdapterAddresses)(unsafe.Pointer(&b[0])); aa != nil; aa = aa.Next {
				adapters = append(adapters, aa)
			}

			return adapters, nil
		}

		if errno, ok := err.(syscall.Errno); !ok || errno != windows.ERROR_BUFFER_OVERFLOW {
			return nil, err
		}

		if l <= uint32(len(b)) {
			return nil, err
		}
	}

	return nil, windows.ERROR_BUFFER_OVERFLOW
}
