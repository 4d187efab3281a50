// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/LeeDigitalWorks/s3wire/pkg/s3api"
	"github.com/LeeDigitalWorks/s3wire/pkg/s3api/s3cursor"
	"github.com/LeeDigitalWorks/s3wire/pkg/s3api/s3types"
)

var (
	lsPrefix    string
	lsDelimiter string
	lsMaxKeys   int
	lsV1        bool
)

func init() {
	lsCmd.Flags().StringVar(&lsPrefix, "prefix", "", "Limit listing to keys with this prefix")
	lsCmd.Flags().StringVar(&lsDelimiter, "delimiter", "", "Group keys by delimiter into common prefixes")
	lsCmd.Flags().IntVar(&lsMaxKeys, "max-keys", 0, "Page size (service default when 0)")
	lsCmd.Flags().BoolVar(&lsV1, "v1", false, "Use the marker-based v1 listing API")
	rootCmd.AddCommand(lsCmd)

	versionsCmd.Flags().StringVar(&lsPrefix, "prefix", "", "Limit listing to keys with this prefix")
	versionsCmd.Flags().StringVar(&lsDelimiter, "delimiter", "", "Group keys by delimiter into common prefixes")
	rootCmd.AddCommand(versionsCmd)
}

var lsCmd = &cobra.Command{
	Use:   "ls [bucket]",
	Short: "List buckets, or the objects in a bucket",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := clientFromFlags(cmd)
		if err != nil {
			return err
		}

		if len(args) == 0 {
			result, err := client.Execute(cmd.Context(), &s3api.ListBucketsRequest{})
			if err != nil {
				return err
			}
			for _, b := range result.(*s3types.ListBucketsResult).Buckets {
				fmt.Printf("%s  %s\n", b.CreationDate.Format("2006-01-02 15:04:05"), b.Name)
			}
			return nil
		}

		bucket, err := bucketFromArg(args[0])
		if err != nil {
			return err
		}
		var req s3api.Builder
		if lsV1 {
			req = &s3api.ListObjectsRequest{
				Bucket: bucket, Prefix: lsPrefix, Delimiter: lsDelimiter, MaxKeys: lsMaxKeys,
			}
		} else {
			req = &s3api.ListObjectsV2Request{
				Bucket: bucket, Prefix: lsPrefix, Delimiter: lsDelimiter, MaxKeys: lsMaxKeys,
			}
		}
		return s3cursor.Pages(cmd.Context(), client, req, func(page any) error {
			switch r := page.(type) {
			case *s3types.ListObjectsResult:
				printObjects(r.CommonPrefixes, r.Contents)
			case *s3types.ListObjectsV2Result:
				printObjects(r.CommonPrefixes, r.Contents)
			}
			return nil
		})
	},
}

var versionsCmd = &cobra.Command{
	Use:   "versions <bucket>",
	Short: "List every object version in a bucket, delete markers included",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := clientFromFlags(cmd)
		if err != nil {
			return err
		}
		bucket, err := bucketFromArg(args[0])
		if err != nil {
			return err
		}
		req := &s3api.ListVersionsRequest{Bucket: bucket, Prefix: lsPrefix, Delimiter: lsDelimiter}
		return s3cursor.Pages(cmd.Context(), client, req, func(page any) error {
			r := page.(*s3types.ListVersionsResult)
			for _, v := range r.Versions {
				marker := " "
				if v.IsDeleteMarker {
					marker = "D"
				}
				latest := " "
				if v.IsLatest {
					latest = "*"
				}
				fmt.Printf("%s%s %10s  %s  %s (%s)\n",
					marker, latest, humanize.IBytes(uint64(v.Size)),
					v.LastModified.Format("2006-01-02 15:04:05"), v.Key, v.VersionID)
			}
			return nil
		})
	},
}

func printObjects(prefixes []s3types.CommonPrefix, objects []s3types.ObjectSummary) {
	for _, p := range prefixes {
		fmt.Printf("%31s  %s\n", "PRE", p.Prefix)
	}
	for _, o := range objects {
		fmt.Printf("%s %10s  %s\n",
			o.LastModified.Format("2006-01-02 15:04:05"), humanize.IBytes(uint64(o.Size)), o.Key)
	}
}
