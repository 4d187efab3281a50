// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3decode

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// The service documents ISO-8601 timestamps, decimal integers and
// "true"/"false" booleans for text nodes. An absent element leaves the
// field at its zero value; these helpers only run for present elements.

func parseInt(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("integer %q: %w", value, err)
	}
	return n, nil
}

func parseInt64(value string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("integer %q: %w", value, err)
	}
	return n, nil
}

func parseBool(value string) (bool, error) {
	switch strings.TrimSpace(value) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("boolean %q: want true or false", value)
}

// iso8601Formats covers the timestamp shapes the service emits: with and
// without fractional seconds.
var iso8601Formats = []string{
	"2006-01-02T15:04:05.000Z",
	time.RFC3339Nano,
	time.RFC3339,
}

func parseTime(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	for _, layout := range iso8601Formats {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("timestamp %q: not ISO-8601", value)
}

// unescapeKey reverses encoding-type=url percent-encoding on a key, prefix
// or marker. The service encodes with '+' for space.
func unescapeKey(value string) (string, error) {
	decoded, err := url.QueryUnescape(value)
	if err != nil {
		return "", fmt.Errorf("url-encoded key %q: %w", value, err)
	}
	return decoded, nil
}
