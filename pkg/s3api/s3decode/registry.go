// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3decode

import (
	"github.com/LeeDigitalWorks/s3wire/pkg/s3api"
	"github.com/LeeDigitalWorks/s3wire/pkg/s3api/s3types"
)

func init() {
	// XML document operations.
	register(s3api.OpListBuckets, decodeListBucketsBody, func() any { return &s3types.ListBucketsResult{} })
	register(s3api.OpGetBucketLocation, decodeBucketLocationBody, func() any { return &s3types.BucketLocation{} })
	register(s3api.OpListObjects, decodeListObjectsBody, func() any { return &s3types.ListObjectsResult{} })
	register(s3api.OpListObjectsV2, decodeListObjectsV2Body, func() any { return &s3types.ListObjectsV2Result{} })
	register(s3api.OpListVersions, decodeListVersionsBody, func() any { return &s3types.ListVersionsResult{} })
	register(s3api.OpCopyObject, decodeCopyObjectBody, func() any { return &s3types.CopyObjectResult{} })
	register(s3api.OpCopyPart, decodeCopyPartBody, func() any { return &s3types.CopyPartResult{} })
	register(s3api.OpDeleteObjects, decodeDeleteObjectsBody, func() any { return &s3types.DeleteObjectsResult{} })
	register(s3api.OpGetObjectTagging, decodeObjectTaggingBody, func() any { return &s3types.GetObjectTaggingResult{} })
	register(s3api.OpGetObjectACL, decodeAccessControlPolicyBody, func() any { return &s3types.AccessControlPolicy{} })
	register(s3api.OpInitiateMultipartUpload, decodeInitiateMultipartUploadBody, func() any { return &s3types.InitiateMultipartUploadResult{} })
	register(s3api.OpCompleteMultipartUpload, decodeCompleteMultipartUploadBody, func() any { return &s3types.CompleteMultipartUploadResult{} })
	register(s3api.OpListParts, decodeListPartsBody, func() any { return &s3types.ListPartsResult{} })
	register(s3api.OpListMultipartUploads, decodeListMultipartUploadsBody, func() any { return &s3types.ListMultipartUploadsResult{} })

	// No-body operations.
	registry[s3api.OpSetObjectTagging] = emptyDecoder(func() any { return &s3types.SetObjectTaggingResult{} })
	registry[s3api.OpDeleteObjectTagging] = emptyDecoder(func() any { return &s3types.DeleteObjectTaggingResult{} })
	registry[s3api.OpAbortMultipartUpload] = emptyDecoder(func() any { return &s3types.AbortMultipartUploadResult{} })
	registry[s3api.OpSetPublicAccessBlock] = emptyDecoder(func() any { return &s3types.SetPublicAccessBlockResult{} })
	registry[s3api.OpDeletePublicAccessBlock] = emptyDecoder(func() any { return &s3types.DeletePublicAccessBlockResult{} })
}

func register(op s3api.Operation, body bodyFunc, newResult func() any) {
	registry[op] = docDecoder(op, body, newResult)
}
