// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3types

// The operations below have no output shape. Their decoders return these
// markers without reading the response body.

// SetObjectTaggingResult is the empty result for SetObjectTagging.
type SetObjectTaggingResult struct{}

// DeleteObjectTaggingResult is the empty result for DeleteObjectTagging.
type DeleteObjectTaggingResult struct{}

// AbortMultipartUploadResult is the empty result for AbortMultipartUpload.
type AbortMultipartUploadResult struct{}

// SetPublicAccessBlockResult is the empty result for SetPublicAccessBlock.
type SetPublicAccessBlockResult struct{}

// DeletePublicAccessBlockResult is the empty result for
// DeletePublicAccessBlock.
type DeletePublicAccessBlockResult struct{}
