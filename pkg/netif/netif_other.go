//go:build !linux && !windows
// +build !linux,!windows

/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package netif

import (
	"runtime"

	"github.com/pkg/errors"
)

// ErrUnsupportedPlatform is returned on platforms without a native backend.
var ErrUnsupportedPlatform = errors.New("netif: no interface enumerator for this platform")

type unsupportedEnumerator struct{}

func newEnumerator() Enumerator {
	return unsupportedEnumerator{}
}

func (unsupportedEnumerator) Interfaces() ([]Interface, error) {
	return nil, errors.Wrap(ErrUnsupportedPlatform, runtime.GOOS)
}
