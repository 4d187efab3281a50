// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3types

import "time"

// ObjectSummary represents one object in a listing response.
type ObjectSummary struct {
	Key          string
	LastModified time.Time
	ETag         string
	Size         int64
	StorageClass string
	Owner        *Owner
}

// ListObjectsResult is the decoded ListBucketResult for ListObjects (v1).
type ListObjectsResult struct {
	Name           string
	Prefix         string
	Marker         string
	Delimiter      string
	EncodingType   string
	MaxKeys        int
	IsTruncated    bool
	NextMarker     string
	Contents       []ObjectSummary
	CommonPrefixes []CommonPrefix
}

// ListObjectsV2Result is the decoded ListBucketResult for ListObjectsV2.
type ListObjectsV2Result struct {
	Name                  string
	Prefix                string
	Delimiter             string
	EncodingType          string
	MaxKeys               int
	KeyCount              int
	IsTruncated           bool
	ContinuationToken     string
	NextContinuationToken string
	StartAfter            string
	Contents              []ObjectSummary
	CommonPrefixes        []CommonPrefix
}
