// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

// Package s3types holds the decoded result records for S3 API responses.
// Results are plain data: created fresh per call by the decoder and owned by
// the caller afterwards.
package s3types

// Owner represents the owner of a bucket, object or upload.
type Owner struct {
	ID          string
	DisplayName string
}

// Initiator represents the initiator of a multipart upload.
type Initiator struct {
	ID          string
	DisplayName string
}

// CommonPrefix is a synthetic grouping key returned by delimiter-based
// listings to simulate hierarchical browsing over a flat key space.
type CommonPrefix struct {
	Prefix string
}
