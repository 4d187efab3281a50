// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3types

import "time"

// CopyObjectResult is the decoded response for CopyObject. The service may
// return HTTP 200 with an Error document instead; the decoder surfaces that
// as a service error, never as a zero-valued result.
type CopyObjectResult struct {
	ETag         string
	LastModified time.Time
}

// CopyPartResult is the decoded response for UploadPartCopy.
type CopyPartResult struct {
	ETag         string
	LastModified time.Time
}
