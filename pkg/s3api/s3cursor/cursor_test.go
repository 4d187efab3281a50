// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3cursor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LeeDigitalWorks/s3wire/pkg/s3api"
	"github.com/LeeDigitalWorks/s3wire/pkg/s3api/s3cursor"
	"github.com/LeeDigitalWorks/s3wire/pkg/s3api/s3types"
)

func TestNext_NotTruncated(t *testing.T) {
	t.Parallel()

	results := []any{
		&s3types.ListObjectsResult{IsTruncated: false},
		&s3types.ListObjectsV2Result{IsTruncated: false},
		&s3types.ListVersionsResult{IsTruncated: false},
		&s3types.ListMultipartUploadsResult{IsTruncated: false},
		&s3types.ListPartsResult{IsTruncated: false},
	}

	for _, res := range results {
		require.False(t, s3cursor.IsTruncated(res))
		_, err := s3cursor.Next(res)
		require.ErrorIs(t, err, s3cursor.ErrNotTruncated)
	}
}

func TestNext_Families(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result any
		want   s3cursor.Cursor
	}{
		{
			name:   "objects v1",
			result: &s3types.ListObjectsResult{IsTruncated: true, NextMarker: "m1"},
			want:   s3cursor.Cursor{Family: s3cursor.FamilyObjects, Marker: "m1"},
		},
		{
			name:   "objects v2",
			result: &s3types.ListObjectsV2Result{IsTruncated: true, NextContinuationToken: "tok"},
			want:   s3cursor.Cursor{Family: s3cursor.FamilyObjectsV2, ContinuationToken: "tok"},
		},
		{
			name: "versions carry both markers",
			result: &s3types.ListVersionsResult{
				IsTruncated:         true,
				NextKeyMarker:       "k",
				NextVersionIDMarker: "v",
			},
			want: s3cursor.Cursor{Family: s3cursor.FamilyVersions, KeyMarker: "k", VersionIDMarker: "v"},
		},
		{
			name: "uploads carry both markers",
			result: &s3types.ListMultipartUploadsResult{
				IsTruncated:        true,
				NextKeyMarker:      "k",
				NextUploadIDMarker: "u",
			},
			want: s3cursor.Cursor{Family: s3cursor.FamilyUploads, KeyMarker: "k", UploadIDMarker: "u"},
		},
		{
			name:   "parts",
			result: &s3types.ListPartsResult{IsTruncated: true, NextPartNumberMarker: 7},
			want:   s3cursor.Cursor{Family: s3cursor.FamilyParts, PartNumberMarker: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s3cursor.Next(tt.result)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("objects v1 sets marker without mutating base", func(t *testing.T) {
		base := &s3api.ListObjectsRequest{Bucket: "b", Prefix: "p/"}
		next, err := s3cursor.Apply(base, s3cursor.Cursor{Family: s3cursor.FamilyObjects, Marker: "m1"})
		require.NoError(t, err)
		require.Equal(t, "m1", next.(*s3api.ListObjectsRequest).Marker)
		require.Empty(t, base.Marker)
	})

	t.Run("objects v2 sets token and clears start-after", func(t *testing.T) {
		base := &s3api.ListObjectsV2Request{Bucket: "b", StartAfter: "s"}
		next, err := s3cursor.Apply(base, s3cursor.Cursor{Family: s3cursor.FamilyObjectsV2, ContinuationToken: "tok"})
		require.NoError(t, err)
		req := next.(*s3api.ListObjectsV2Request)
		require.Equal(t, "tok", req.ContinuationToken)
		require.Empty(t, req.StartAfter)
	})

	t.Run("versions set both markers together", func(t *testing.T) {
		base := &s3api.ListVersionsRequest{Bucket: "b"}
		next, err := s3cursor.Apply(base, s3cursor.Cursor{
			Family: s3cursor.FamilyVersions, KeyMarker: "k", VersionIDMarker: "v",
		})
		require.NoError(t, err)
		req := next.(*s3api.ListVersionsRequest)
		require.Equal(t, "k", req.KeyMarker)
		require.Equal(t, "v", req.VersionIDMarker)
	})

	t.Run("family mismatch is a contract violation", func(t *testing.T) {
		base := &s3api.ListObjectsRequest{Bucket: "b"}
		_, err := s3cursor.Apply(base, s3cursor.Cursor{Family: s3cursor.FamilyParts, PartNumberMarker: 3})
		require.True(t, s3api.IsContractViolation(err))
	})

	t.Run("parts cursor resumes a parts request", func(t *testing.T) {
		base := &s3api.ListPartsRequest{Bucket: "b", Key: "k", UploadID: "u"}
		next, err := s3cursor.Apply(base, s3cursor.Cursor{Family: s3cursor.FamilyParts, PartNumberMarker: 3})
		require.NoError(t, err)
		require.Equal(t, 3, next.(*s3api.ListPartsRequest).PartNumberMarker)
	})
}
