/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      CustomError
		expected string
	}{
		{"MessageOnly", CustomError{Code: 10, Message: "GenericFailure"}, "GenericFailure"},
		{"WithDetails", CustomError{Code: 28, Message: "IncorrectCommandLineParameters", Details: "unknown flag --bogus"}, "IncorrectCommandLineParameters: unknown flag --bogus"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestExitCodes(t *testing.T) {
	assert.Equal(t, ReturnCode(0), Success)
	assert.Equal(t, 5, HelpRequested.Code)
	assert.Equal(t, 10, GenericFailure.Code)
	assert.Equal(t, 28, IncorrectCommandLineParameters.Code)
	assert.Equal(t, 72, OSNetworkInterfacesLookupFailed.Code)
}

func TestCustomError_ValueComparable(t *testing.T) {
	err := func() error { return HelpRequested }()

	assert.Equal(t, error(HelpRequested), err)

	customErr, ok := err.(CustomError)
	assert.True(t, ok)
	assert.Equal(t, HelpRequested.Code, customErr.Code)
}
