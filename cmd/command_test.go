// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LeeDigitalWorks/s3wire/pkg/env"
)

func TestRootFlagsShareEnvKeys(t *testing.T) {
	t.Parallel()

	// Flag names and viper keys must be the same strings, or flag-precedence
	// lookups and SetDefault registrations silently talk past each other.
	for _, key := range []string{env.KeyEndpoint, env.KeyRegion, env.KeyPathStyle} {
		require.NotNil(t, rootCmd.PersistentFlags().Lookup(key), key)
	}
}

func TestFlagLoaderEnvFallback(t *testing.T) {
	t.Setenv("S3WIRE_PATH_STYLE", "true")
	t.Setenv("S3WIRE_REGION", "eu-west-2")
	env.Init()

	loader := NewFlagLoader(rootCmd)
	require.True(t, loader.Bool(env.KeyPathStyle))
	require.Equal(t, "eu-west-2", loader.String(env.KeyRegion))
}

func TestBucketFromArg(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		arg     string
		want    string
		wantErr bool
	}{
		{name: "plain bucket name", arg: "logs", want: "logs"},
		{name: "bucket arn", arg: "arn:aws:s3:::logs", want: "logs"},
		{name: "non s3 arn", arg: "arn:aws:sqs:us-east-1:123456789012:queue", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := bucketFromArg(tt.arg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
