// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/recipe-keeper/internal/adapter"
)

func humanizeConnectivityError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, adapter.ErrNetwork) {
		return "No network connection or the server is unavailable"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network connection or the server is unavailable"
	}

	return err.Error()
}
