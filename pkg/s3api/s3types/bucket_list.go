// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3types

import "time"

// Bucket represents one bucket in a ListBuckets response.
type Bucket struct {
	Name         string
	CreationDate time.Time
	Region       string
}

// ListBucketsResult is the decoded ListAllMyBucketsResult document.
type ListBucketsResult struct {
	Owner   Owner
	Buckets []Bucket
}

// BucketLocation is the decoded LocationConstraint document. The service
// reports the legacy US standard region as an empty constraint; the decoder
// normalizes that to "US".
type BucketLocation struct {
	Location string
}
