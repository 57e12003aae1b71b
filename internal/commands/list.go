/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package commands

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/device-management-toolkit/ifquery-go/internal/config"
	"github.com/device-management-toolkit/ifquery-go/pkg/netif"
	"github.com/device-management-toolkit/ifquery-go/pkg/utils"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Output format selectors for the list command
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ListCmd represents the list command with Kong CLI binding
type ListCmd struct {
	Up         bool   `help:"Show only interfaces that are up" short:"u"`
	NoLoopback bool   `help:"Exclude loopback interfaces" name:"no-loopback"`
	Name       string `help:"Show only interfaces with this name" short:"i"`
	Format     string `help:"Output format" short:"f" default:"text" enum:"text,json,yaml"`
}

// Run executes the list command
func (cmd *ListCmd) Run(ctx *Context) error {
	service := NewListService(ctx.Enumerator)
	service.config = ctx.Config

	report, err := service.GetInterfaces(cmd)
	if err != nil {
		return err
	}

	format := cmd.Format
	if ctx.JsonOutput {
		format = FormatJSON
	}

	switch format {
	case FormatJSON:
		return service.OutputJSON(report)
	case FormatYAML:
		return service.OutputYAML(report)
	default:
		return service.OutputText(report)
	}
}

// InterfaceRecord is one presentation row of a report, addresses
// preformatted as dotted quads.
type InterfaceRecord struct {
	Name      string `json:"name" yaml:"name"`
	Address   string `json:"address" yaml:"address"`
	Netmask   string `json:"netmask" yaml:"netmask"`
	Broadcast string `json:"broadcast,omitempty" yaml:"broadcast,omitempty"`
	Up        bool   `json:"up" yaml:"up"`
	Loopback  bool   `json:"loopback" yaml:"loopback"`
}

// ListReport is the envelope produced for structured output
type ListReport struct {
	ID          string            `json:"id" yaml:"id"`
	GeneratedAt string            `json:"generatedAt" yaml:"generatedAt"`
	Interfaces  []InterfaceRecord `json:"interfaces" yaml:"interfaces"`
}

// ListService provides methods for retrieving and displaying the host's
// IPv4 network interfaces
type ListService struct {
	enumerator netif.Enumerator
	config     config.Config
}

// NewListService creates a new ListService with the given enumerator
func NewListService(enumerator netif.Enumerator) *ListService {
	return &ListService{
		enumerator: enumerator,
	}
}

// GetInterfaces enumerates the host's interfaces and builds a report with
// the rows the command flags and configuration keep visible
func (s *ListService) GetInterfaces(cmd *ListCmd) (*ListReport, error) {
	ifaces, err := s.enumerator.Interfaces()
	if err != nil {
		log.Error("Failed to enumerate network interfaces: ", err)

		return nil, utils.OSNetworkInterfacesLookupFailed
	}

	report := &ListReport{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Interfaces:  make([]InterfaceRecord, 0, len(ifaces)),
	}

	for _, iface := range ifaces {
		if !s.wanted(cmd, iface) {
			continue
		}

		report.Interfaces = append(report.Interfaces, newInterfaceRecord(iface))
	}

	return report, nil
}

func (s *ListService) wanted(cmd *ListCmd, iface netif.Interface) bool {
	if cmd.Up && !iface.Up {
		return false
	}

	if cmd.NoLoopback && iface.Loopback {
		return false
	}

	if cmd.Name != "" && iface.Name != cmd.Name {
		return false
	}

	return !s.config.Excluded(iface.Name)
}

func newInterfaceRecord(iface netif.Interface) InterfaceRecord {
	record := InterfaceRecord{
		Name:     iface.Name,
		Address:  iface.Address.String(),
		Netmask:  iface.Netmask.String(),
		Up:       iface.Up,
		Loopback: iface.Loopback,
	}

	if iface.Broadcast != nil {
		record.Broadcast = iface.Broadcast.String()
	}

	return record
}

// OutputJSON outputs the report in JSON format
func (s *ListService) OutputJSON(report *ListReport) error {
	jsonBytes, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Println(string(jsonBytes))

	return nil
}

// OutputYAML outputs the report in YAML format
func (s *ListService) OutputYAML(report *ListReport) error {
	yamlBytes, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	fmt.Print(string(yamlBytes))

	return nil
}

// OutputText outputs the report in human-readable text format
func (s *ListService) OutputText(report *ListReport) error {
	for i, record := range report.Interfaces {
		if i > 0 {
			fmt.Println()
		}

		fmt.Printf("Name\t\t\t: %s\n", record.Name)
		fmt.Printf("Address\t\t\t: %s\n", record.Address)
		fmt.Printf("Netmask\t\t\t: %s\n", record.Netmask)

		if record.Broadcast != "" {
			fmt.Printf("Broadcast\t\t: %s\n", record.Broadcast)
		}

		state := "down"
		if record.Up {
			state = "up"
		}

		fmt.Printf("State\t\t\t: %s\n", state)
		fmt.Printf("Loopback\t\t: %s\n", strconv.FormatBool(record.Loopback))
	}

	return nil
}
