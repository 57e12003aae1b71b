/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package netif

// EnumerationError reports a failed interface enumeration. Op names the
// native facility that failed ("netlink.linklist", "netlink.addrlist",
// "getadaptersaddresses") and Err carries the OS error it returned.
type EnumerationError struct {
	Op  string
	Err error
}

func (e *EnumerationError) Error() string {
	return "netif: " + e.Op + ": " + e.Err.Error()
}

func (e *EnumerationError) Unwrap() error {
	return e.Err
}
