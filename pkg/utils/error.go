/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/
package utils

// CustomError couples a process exit code with a stable message so that
// callers scripting against the tools can branch on either one.
type CustomError struct {
	Code    int
	Message string
	Details string
}

func (e CustomError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}

	return e.Message
}
