package commands

import (
	"github.com/device-management-toolkit/ifquery-go/internal/config"
	"github.com/device-management-toolkit/ifquery-go/pkg/netif"
)

// Context holds shared dependencies injected into commands
type Context struct {
	Enumerator netif.Enumerator
	LogLevel   string
	JsonOutput bool
	Verbose    bool
	// Config carries the optional YAML file settings, such as the
	// interface names to hide from listings.
	Config config.Config
}
