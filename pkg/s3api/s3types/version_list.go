// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3types

import "time"

// VersionSummary represents one object version or delete marker in a
// ListVersions response. Within one response the service returns versions
// for a given key from most-recent to least-recent; the decoder preserves
// that order.
type VersionSummary struct {
	Key            string
	VersionID      string
	IsLatest       bool
	IsDeleteMarker bool
	LastModified   time.Time
	ETag           string
	Size           int64
	StorageClass   string
	Owner          *Owner
}

// ListVersionsResult is the decoded ListVersionsResult document.
type ListVersionsResult struct {
	Name                string
	Prefix              string
	KeyMarker           string
	VersionIDMarker     string
	NextKeyMarker       string
	NextVersionIDMarker string
	Delimiter           string
	EncodingType        string
	MaxKeys             int
	IsTruncated         bool
	Versions            []VersionSummary
	CommonPrefixes      []CommonPrefix
}
