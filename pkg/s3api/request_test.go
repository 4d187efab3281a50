// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LeeDigitalWorks/s3wire/pkg/s3api"
)

func TestListObjectsRequest_Build(t *testing.T) {
	t.Parallel()

	req, err := (&s3api.ListObjectsRequest{
		Bucket:    "logs",
		Prefix:    "2024/",
		Marker:    "2024/a.log",
		Delimiter: "/",
		MaxKeys:   500,
	}).Build()
	require.NoError(t, err)

	require.Equal(t, s3api.OpListObjects, req.Op)
	require.Equal(t, http.MethodGet, req.Method)
	require.Equal(t, "logs", req.Bucket)
	require.Equal(t, "2024/", req.Query.Get("prefix"))
	require.Equal(t, "2024/a.log", req.Query.Get("marker"))
	require.Equal(t, "/", req.Query.Get("delimiter"))
	require.Equal(t, "500", req.Query.Get("max-keys"))
}

func TestListObjectsRequest_ZeroMaxKeysOmitted(t *testing.T) {
	t.Parallel()

	req, err := (&s3api.ListObjectsRequest{Bucket: "logs"}).Build()
	require.NoError(t, err)
	require.False(t, req.Query.Has("max-keys"))
	require.False(t, req.Query.Has("marker"))
}

func TestListObjectsV2Request_Build(t *testing.T) {
	t.Parallel()

	req, err := (&s3api.ListObjectsV2Request{
		Bucket:            "logs",
		ContinuationToken: "tok",
		FetchOwner:        true,
	}).Build()
	require.NoError(t, err)

	require.Equal(t, "2", req.Query.Get("list-type"))
	require.Equal(t, "tok", req.Query.Get("continuation-token"))
	require.Equal(t, "true", req.Query.Get("fetch-owner"))
}

func TestListVersionsRequest_Build(t *testing.T) {
	t.Parallel()

	t.Run("markers travel together", func(t *testing.T) {
		req, err := (&s3api.ListVersionsRequest{
			Bucket:          "docs",
			KeyMarker:       "report.pdf",
			VersionIDMarker: "v2",
		}).Build()
		require.NoError(t, err)
		require.True(t, req.Query.Has("versions"))
		require.Equal(t, "report.pdf", req.Query.Get("key-marker"))
		require.Equal(t, "v2", req.Query.Get("version-id-marker"))
	})

	t.Run("version-id-marker alone is a contract violation", func(t *testing.T) {
		_, err := (&s3api.ListVersionsRequest{Bucket: "docs", VersionIDMarker: "v2"}).Build()
		require.True(t, s3api.IsContractViolation(err))
	})
}

func TestListMultipartUploadsRequest_Build(t *testing.T) {
	t.Parallel()

	t.Run("markers travel together", func(t *testing.T) {
		req, err := (&s3api.ListMultipartUploadsRequest{
			Bucket:         "backups",
			KeyMarker:      "archive.tar",
			UploadIDMarker: "u1",
		}).Build()
		require.NoError(t, err)
		require.True(t, req.Query.Has("uploads"))
		require.Equal(t, "u1", req.Query.Get("upload-id-marker"))
	})

	t.Run("upload-id-marker alone is a contract violation", func(t *testing.T) {
		_, err := (&s3api.ListMultipartUploadsRequest{Bucket: "backups", UploadIDMarker: "u1"}).Build()
		require.True(t, s3api.IsContractViolation(err))
	})
}

func TestListPartsRequest_Build(t *testing.T) {
	t.Parallel()

	t.Run("requires upload id", func(t *testing.T) {
		_, err := (&s3api.ListPartsRequest{Bucket: "backups", Key: "archive.tar"}).Build()
		require.True(t, s3api.IsContractViolation(err))
	})

	t.Run("carries upload id and markers", func(t *testing.T) {
		req, err := (&s3api.ListPartsRequest{
			Bucket:           "backups",
			Key:              "archive.tar",
			UploadID:         "u1",
			PartNumberMarker: 4,
			MaxParts:         100,
		}).Build()
		require.NoError(t, err)
		require.Equal(t, "archive.tar", req.Key)
		require.Equal(t, "u1", req.Query.Get("uploadId"))
		require.Equal(t, "4", req.Query.Get("part-number-marker"))
		require.Equal(t, "100", req.Query.Get("max-parts"))
	})
}

func TestContractViolation(t *testing.T) {
	t.Parallel()

	err := s3api.Violation(s3api.OpListVersions, "bad %s", "pairing")
	require.True(t, s3api.IsContractViolation(err))
	require.Contains(t, err.Error(), "bad pairing")
	require.Contains(t, err.Error(), s3api.OpListVersions.String())
}
