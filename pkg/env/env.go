// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

// Package env resolves CLI configuration from flags backed by S3WIRE_*
// environment variables via viper.
package env

import (
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Configuration keys, shared by flag registration and viper lookups. The
// env key replacer maps them to S3WIRE_ENDPOINT, S3WIRE_REGION and
// S3WIRE_PATH_STYLE.
const (
	KeyEndpoint  = "endpoint"
	KeyRegion    = "region"
	KeyPathStyle = "path-style"
)

const DefaultRegion = "us-east-1"

var once sync.Once

// Init binds the S3WIRE_* environment prefix and defaults. Safe to call more
// than once.
func Init() {
	once.Do(func() {
		viper.SetEnvPrefix("S3WIRE")
		viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		viper.AutomaticEnv()

		viper.SetDefault(KeyRegion, DefaultRegion)
		viper.SetDefault(KeyPathStyle, false)
	})
}
