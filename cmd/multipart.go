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

func init() {
	uploadsCmd.Flags().String("prefix", "", "Limit listing to keys with this prefix")
	rootCmd.AddCommand(uploadsCmd)
	rootCmd.AddCommand(partsCmd)
}

var uploadsCmd = &cobra.Command{
	Use:   "uploads <bucket>",
	Short: "List in-progress multipart uploads in a bucket",
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
		prefix, _ := cmd.Flags().GetString("prefix")
		req := &s3api.ListMultipartUploadsRequest{Bucket: bucket, Prefix: prefix}
		return s3cursor.Pages(cmd.Context(), client, req, func(page any) error {
			r := page.(*s3types.ListMultipartUploadsResult)
			for _, u := range r.Uploads {
				fmt.Printf("%s  %s (upload %s, started %s)\n",
					u.Initiated.Format("2006-01-02 15:04:05"), u.Key, u.UploadID,
					humanize.Time(u.Initiated))
			}
			return nil
		})
	},
}

var partsCmd = &cobra.Command{
	Use:   "parts <bucket> <key> <upload-id>",
	Short: "List the parts uploaded so far for one multipart upload",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := clientFromFlags(cmd)
		if err != nil {
			return err
		}
		bucket, err := bucketFromArg(args[0])
		if err != nil {
			return err
		}
		req := &s3api.ListPartsRequest{Bucket: bucket, Key: args[1], UploadID: args[2]}
		var total int64
		err = s3cursor.Pages(cmd.Context(), client, req, func(page any) error {
			r := page.(*s3types.ListPartsResult)
			for _, p := range r.Parts {
				total += p.Size
				fmt.Printf("%5d  %10s  %s  %s\n",
					p.PartNumber, humanize.IBytes(uint64(p.Size)),
					p.LastModified.Format("2006-01-02 15:04:05"), p.ETag)
			}
			return nil
		})
		if err != nil {
			return err
		}
		fmt.Printf("total %s\n", humanize.IBytes(uint64(total)))
		return nil
	},
}
