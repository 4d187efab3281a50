// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws/arn"
	"github.com/spf13/cobra"

	"github.com/LeeDigitalWorks/s3wire/pkg/env"
	"github.com/LeeDigitalWorks/s3wire/pkg/s3client"
)

var rootCmd = &cobra.Command{
	Use:   "s3wire",
	Short: "s3wire - S3 protocol layer inspector",
	Long: `s3wire decodes S3-compatible listing responses and walks paginated
results. It issues unsigned requests, so point it at an endpoint that accepts
anonymous reads or wire your own signing transport in front of it.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var pool = s3client.NewPool(2*time.Minute, 0)

func init() {
	env.Init()
	rootCmd.PersistentFlags().String(env.KeyEndpoint, "", "Endpoint URL (or set S3WIRE_ENDPOINT)")
	rootCmd.PersistentFlags().String(env.KeyRegion, env.DefaultRegion, "Region (or set S3WIRE_REGION)")
	rootCmd.PersistentFlags().Bool(env.KeyPathStyle, false, "Use bucket-in-path addressing (or set S3WIRE_PATH_STYLE)")
}

// clientFromFlags resolves endpoint configuration with flag precedence and
// returns a pooled client for it.
func clientFromFlags(cmd *cobra.Command) (*s3client.Client, error) {
	loader := NewFlagLoader(cmd)
	endpoint := loader.String(env.KeyEndpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("no endpoint: set --endpoint or S3WIRE_ENDPOINT")
	}

	return pool.GetClient(&s3client.Config{
		Endpoint:  endpoint,
		Region:    loader.String(env.KeyRegion),
		PathStyle: loader.Bool(env.KeyPathStyle),
	})
}

// bucketFromArg accepts either a plain bucket name or a bucket ARN
// (arn:aws:s3:::bucket) and returns the bucket name.
func bucketFromArg(s string) (string, error) {
	if !arn.IsARN(s) {
		return s, nil
	}
	parsed, err := arn.Parse(s)
	if err != nil {
		return "", fmt.Errorf("parse bucket ARN: %w", err)
	}
	if parsed.Service != "s3" {
		return "", fmt.Errorf("%q is not an S3 ARN", s)
	}
	return parsed.Resource, nil
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
