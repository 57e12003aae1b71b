/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/
package main

import (
	"os"

	"github.com/device-management-toolkit/ifquery-go/internal/cli"
	"github.com/device-management-toolkit/ifquery-go/pkg/utils"
	log "github.com/sirupsen/logrus"
)

func main() {
	err := cli.Execute(os.Args)
	if err != nil {
		handleErrorAndExit(err)
	}
}

func handleErrorAndExit(err error) {
	if customErr, ok := err.(utils.CustomError); ok {
		if err != utils.HelpRequested {
			log.Error(customErr.Error())
		}

		os.Exit(customErr.Code)
	} else {
		log.Error(err.Error())
		os.Exit(utils.GenericFailure.Code)
	}
}
