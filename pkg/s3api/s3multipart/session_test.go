// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3multipart_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/LeeDigitalWorks/s3wire/pkg/s3api"
	"github.com/LeeDigitalWorks/s3wire/pkg/s3api/s3multipart"
	"github.com/LeeDigitalWorks/s3wire/pkg/s3api/s3types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newSession() *s3multipart.Session {
	return s3multipart.NewSession(&s3types.InitiateMultipartUploadResult{
		Bucket:   "backups",
		Key:      "archive.tar",
		UploadID: "VXBsb2FkIElE",
	})
}

func TestValidateForCompletion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		parts   []s3multipart.Part
		want    []int
		wantErr bool
	}{
		{
			name:    "empty set",
			parts:   nil,
			wantErr: true,
		},
		{
			name: "out of order input sorts ascending",
			parts: []s3multipart.Part{
				{Number: 3, ETag: "c"},
				{Number: 1, ETag: "a"},
				{Number: 2, ETag: "b"},
			},
			want: []int{1, 2, 3},
		},
		{
			name: "duplicate with same etag collapses",
			parts: []s3multipart.Part{
				{Number: 1, ETag: "a"},
				{Number: 2, ETag: "b"},
				{Number: 1, ETag: "a"},
			},
			want: []int{1, 2},
		},
		{
			name: "duplicate with conflicting etags rejected",
			parts: []s3multipart.Part{
				{Number: 1, ETag: "a"},
				{Number: 1, ETag: "z"},
			},
			wantErr: true,
		},
		{
			name:    "part number zero out of range",
			parts:   []s3multipart.Part{{Number: 0, ETag: "a"}},
			wantErr: true,
		},
		{
			name:    "part number above limit out of range",
			parts:   []s3multipart.Part{{Number: 10001, ETag: "a"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s3multipart.ValidateForCompletion(tt.parts)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			numbers := make([]int, len(got))
			for i, p := range got {
				numbers[i] = p.Number
			}
			require.Equal(t, tt.want, numbers)
		})
	}
}

func TestValidateForCompletion_EmptyUpload(t *testing.T) {
	t.Parallel()

	_, err := s3multipart.ValidateForCompletion([]s3multipart.Part{})
	require.ErrorIs(t, err, s3multipart.ErrEmptyUpload)
}

func TestSession_CompleteOrdersParts(t *testing.T) {
	t.Parallel()

	// Parts complete out of order; the wire request must carry 1,2,3.
	s := newSession()
	require.NoError(t, s.RecordPart(1, `"p1"`, 5<<20))
	require.NoError(t, s.RecordPart(3, `"p3"`, 1<<20))
	require.NoError(t, s.RecordPart(2, `"p2"`, 5<<20))
	require.Equal(t, s3multipart.StateUploading, s.State())

	parts, err := s.Complete()
	require.NoError(t, err)
	require.Equal(t, []s3types.CompletePart{
		{PartNumber: 1, ETag: `"p1"`},
		{PartNumber: 2, ETag: `"p2"`},
		{PartNumber: 3, ETag: `"p3"`},
	}, parts)
	require.Equal(t, s3multipart.StateCompleted, s.State())
}

func TestSession_RecordPartLastWriteWins(t *testing.T) {
	t.Parallel()

	s := newSession()
	require.NoError(t, s.RecordPart(1, `"first"`, 100))
	require.NoError(t, s.RecordPart(1, `"second"`, 200))

	parts := s.Parts()
	require.Len(t, parts, 1)
	require.Equal(t, `"second"`, parts[0].ETag)
	require.Equal(t, int64(200), parts[0].Size)
}

func TestSession_CompleteEmpty(t *testing.T) {
	t.Parallel()

	s := newSession()
	_, err := s.Complete()
	require.ErrorIs(t, err, s3multipart.ErrEmptyUpload)

	// A failed validation does not terminate the session.
	require.NoError(t, s.RecordPart(1, `"p1"`, 1))
	_, err = s.Complete()
	require.NoError(t, err)
}

func TestSession_DoubleAbort(t *testing.T) {
	t.Parallel()

	s := newSession()
	require.NoError(t, s.RecordPart(1, `"p1"`, 1))
	require.NoError(t, s.Abort())
	require.Equal(t, s3multipart.StateAborted, s.State())

	err := s.Abort()
	require.True(t, s3api.IsContractViolation(err))
}

func TestSession_TerminalStatesRejectFurtherUse(t *testing.T) {
	t.Parallel()

	s := newSession()
	require.NoError(t, s.RecordPart(1, `"p1"`, 1))
	_, err := s.Complete()
	require.NoError(t, err)

	require.True(t, s3api.IsContractViolation(s.RecordPart(2, `"p2"`, 1)))
	_, err = s.Complete()
	require.True(t, s3api.IsContractViolation(err))
	require.True(t, s3api.IsContractViolation(s.Abort()))
}

func TestSession_ConcurrentRecordPart(t *testing.T) {
	t.Parallel()

	// Parallel part uploads record into one session; every part must land.
	s := newSession()
	const workers = 8
	const partsPerWorker = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < partsPerWorker; i++ {
				n := w*partsPerWorker + i + 1
				_ = s.RecordPart(n, fmt.Sprintf(`"etag-%d"`, n), 1)
			}
		}(w)
	}
	wg.Wait()

	parts, err := s.Complete()
	require.NoError(t, err)
	require.Len(t, parts, workers*partsPerWorker)
	for i, p := range parts {
		require.Equal(t, i+1, p.PartNumber)
	}
}

func TestSession_IndependentSessions(t *testing.T) {
	t.Parallel()

	a := newSession()
	b := newSession()
	require.NotEqual(t, a.ID, b.ID)

	require.NoError(t, a.Abort())
	require.NoError(t, b.RecordPart(1, `"p1"`, 1))
	require.Equal(t, s3multipart.StateAborted, a.State())
	require.Equal(t, s3multipart.StateUploading, b.State())
}
