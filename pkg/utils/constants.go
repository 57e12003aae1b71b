/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/
package utils

type ReturnCode int

var ProjectVersion string = "Development Build"

const (
	// ProjectName is the name of the executable
	ProjectName = "ifquery"

	// DefaultConfigName is the configuration file consulted when --config is not given
	DefaultConfigName = "ifquery.yaml"

	// Return Codes
	Success ReturnCode = 0
)

// Exit codes keep the Device Management Toolkit numbering.

// (1-99) General Errors

// (1-19) Basic errors outside of Device Management Toolkit
var (
	HelpRequested  = CustomError{Code: 5, Message: "flag: help requested"}
	GenericFailure = CustomError{Code: 10, Message: "GenericFailure"}
)

// (20-69) Input errors to ifquery
var (
	IncorrectCommandLineParameters = CustomError{Code: 28, Message: "IncorrectCommandLineParameters"}
)

// (70-99) Connection Errors
var (
	OSNetworkInterfacesLookupFailed = CustomError{Code: 72, Message: "OSNetworkInterfacesLookupFailed"}
)
