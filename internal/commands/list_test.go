/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package commands

import (
	"encoding/json"
	"io"
	"net"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/device-management-toolkit/ifquery-go/internal/config"
	mock "github.com/device-management-toolkit/ifquery-go/internal/mocks"
	"github.com/device-management-toolkit/ifquery-go/pkg/netif"
	"github.com/device-management-toolkit/ifquery-go/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"
)

func testInterfaces() []netif.Interface {
	return []netif.Interface{
		{
			Name:      "eth0",
			Address:   net.IPv4(192, 168, 1, 20).To4(),
			Netmask:   net.IPv4(255, 255, 255, 0).To4(),
			Broadcast: net.IPv4(192, 168, 1, 255).To4(),
			Up:        true,
		},
		{
			Name:     "lo",
			Address:  net.IPv4(127, 0, 0, 1).To4(),
			Netmask:  net.IPv4(255, 0, 0, 0).To4(),
			Up:       true,
			Loopback: true,
		},
		{
			Name:      "eth1",
			Address:   net.IPv4(10, 0, 0, 5).To4(),
			Netmask:   net.IPv4(255, 255, 0, 0).To4(),
			Broadcast: net.IPv4(10, 0, 255, 255).To4(),
		},
	}
}

func TestListCmd_Run_TextOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEnumerator := mock.NewMockEnumerator(ctrl)
	mockEnumerator.EXPECT().Interfaces().Return(testInterfaces(), nil)

	// Capture output
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	cmd := &ListCmd{Format: FormatText}
	ctx := &Context{Enumerator: mockEnumerator}

	err := cmd.Run(ctx)

	w.Close()

	out, _ := io.ReadAll(r)
	os.Stdout = oldStdout

	assert.NoError(t, err)

	outStr := string(out)

	assert.Contains(t, outStr, "Name\t\t\t: eth0")
	assert.Contains(t, outStr, "Address\t\t\t: 192.168.1.20")
	assert.Contains(t, outStr, "Netmask\t\t\t: 255.255.255.0")
	assert.Contains(t, outStr, "Broadcast\t\t: 192.168.1.255")
	assert.Contains(t, outStr, "State\t\t\t: up")
	assert.Contains(t, outStr, "State\t\t\t: down")
	assert.Contains(t, outStr, "Loopback\t\t: true")

	// Blocks are separated by blank lines, one per interface.
	blocks := strings.Split(strings.TrimSpace(outStr), "\n\n")
	assert.Len(t, blocks, 3)

	// The loopback block carries no broadcast line.
	assert.Contains(t, blocks[1], "Name\t\t\t: lo")
	assert.NotContains(t, blocks[1], "Broadcast")
}

func TestListCmd_Run_JSONOutput(t *testing.T) {
	tests := []struct {
		name string
		cmd  *ListCmd
		ctx  func(*mock.MockEnumerator) *Context
	}{
		{
			name: "via format flag",
			cmd:  &ListCmd{Format: FormatJSON},
			ctx: func(m *mock.MockEnumerator) *Context {
				return &Context{Enumerator: m}
			},
		},
		{
			name: "via global json flag",
			cmd:  &ListCmd{Format: FormatText},
			ctx: func(m *mock.MockEnumerator) *Context {
				return &Context{Enumerator: m, JsonOutput: true}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockEnumerator := mock.NewMockEnumerator(ctrl)
			mockEnumerator.EXPECT().Interfaces().Return(testInterfaces(), nil)

			oldStdout := os.Stdout
			r, w, _ := os.Pipe()
			os.Stdout = w

			err := tt.cmd.Run(tt.ctx(mockEnumerator))

			w.Close()

			out, _ := io.ReadAll(r)
			os.Stdout = oldStdout

			assert.NoError(t, err)

			var report ListReport

			require.NoError(t, json.Unmarshal(out, &report))

			_, err = uuid.Parse(report.ID)
			assert.NoError(t, err, "report id should be a valid UUID")

			_, err = time.Parse(time.RFC3339, report.GeneratedAt)
			assert.NoError(t, err, "generatedAt should be RFC 3339")

			require.Len(t, report.Interfaces, 3)
			assert.Equal(t, "eth0", report.Interfaces[0].Name)
			assert.Equal(t, "192.168.1.20", report.Interfaces[0].Address)
			assert.Equal(t, "192.168.1.255", report.Interfaces[0].Broadcast)
			assert.True(t, report.Interfaces[0].Up)

			// Loopback row has no broadcast.
			assert.Equal(t, "", report.Interfaces[1].Broadcast)
			assert.True(t, report.Interfaces[1].Loopback)
		})
	}
}

func TestListCmd_Run_YAMLOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEnumerator := mock.NewMockEnumerator(ctrl)
	mockEnumerator.EXPECT().Interfaces().Return(testInterfaces(), nil)

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	cmd := &ListCmd{Format: FormatYAML}
	ctx := &Context{Enumerator: mockEnumerator}

	err := cmd.Run(ctx)

	w.Close()

	out, _ := io.ReadAll(r)
	os.Stdout = oldStdout

	assert.NoError(t, err)

	var report ListReport

	require.NoError(t, yaml.Unmarshal(out, &report))
	assert.NotEmpty(t, report.ID)
	require.Len(t, report.Interfaces, 3)
	assert.Equal(t, "lo", report.Interfaces[1].Name)
	assert.Equal(t, "127.0.0.1", report.Interfaces[1].Address)
}

func TestListCmd_Run_Filters(t *testing.T) {
	tests := []struct {
		name          string
		cmd           *ListCmd
		exclude       []string
		expectedNames []string
	}{
		{
			name:          "up only",
			cmd:           &ListCmd{Up: true, Format: FormatJSON},
			expectedNames: []string{"eth0", "lo"},
		},
		{
			name:          "no loopback",
			cmd:           &ListCmd{NoLoopback: true, Format: FormatJSON},
			expectedNames: []string{"eth0", "eth1"},
		},
		{
			name:          "by name",
			cmd:           &ListCmd{Name: "eth1", Format: FormatJSON},
			expectedNames: []string{"eth1"},
		},
		{
			name:          "up and no loopback",
			cmd:           &ListCmd{Up: true, NoLoopback: true, Format: FormatJSON},
			expectedNames: []string{"eth0"},
		},
		{
			name:          "configured exclude list",
			cmd:           &ListCmd{Format: FormatJSON},
			exclude:       []string{"eth1", "lo"},
			expectedNames: []string{"eth0"},
		},
		{
			name:          "name not present",
			cmd:           &ListCmd{Name: "wlan0", Format: FormatJSON},
			expectedNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockEnumerator := mock.NewMockEnumerator(ctrl)
			mockEnumerator.EXPECT().Interfaces().Return(testInterfaces(), nil)

			oldStdout := os.Stdout
			r, w, _ := os.Pipe()
			os.Stdout = w

			ctx := &Context{Enumerator: mockEnumerator, Config: config.Config{Exclude: tt.exclude}}

			err := tt.cmd.Run(ctx)

			w.Close()

			out, _ := io.ReadAll(r)
			os.Stdout = oldStdout

			assert.NoError(t, err)

			var report ListReport

			require.NoError(t, json.Unmarshal(out, &report))

			names := make([]string, 0, len(report.Interfaces))
			for _, record := range report.Interfaces {
				names = append(names, record.Name)
			}

			assert.Equal(t, tt.expectedNames, names)
		})
	}
}

func TestListCmd_Run_EnumerationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEnumerator := mock.NewMockEnumerator(ctrl)
	mockEnumerator.EXPECT().Interfaces().Return(nil, &netif.EnumerationError{Op: "netlink.linklist", Err: assert.AnError})

	cmd := &ListCmd{Format: FormatText}
	ctx := &Context{Enumerator: mockEnumerator}

	err := cmd.Run(ctx)

	require.Error(t, err)
	assert.Equal(t, error(utils.OSNetworkInterfacesLookupFailed), err)
}

func TestListService_GetInterfaces_ReportIDsAreUnique(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEnumerator := mock.NewMockEnumerator(ctrl)
	mockEnumerator.EXPECT().Interfaces().Return(testInterfaces(), nil).Times(2)

	service := NewListService(mockEnumerator)

	first, err := service.GetInterfaces(&ListCmd{})
	require.NoError(t, err)

	second, err := service.GetInterfaces(&ListCmd{})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}
