// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3multipart

import (
	"errors"
	"fmt"
	"sort"

	"github.com/LeeDigitalWorks/s3wire/pkg/s3api/s3consts"
)

// Part describes one uploaded part as the caller observed it: the part
// number it was uploaded under, the entity tag the service returned, and
// the byte size that was sent.
type Part struct {
	Number int
	ETag   string
	Size   int64
}

// ErrEmptyUpload is returned when completion is attempted with no parts.
var ErrEmptyUpload = errors.New("s3multipart: completing an upload requires at least one part")

// ValidateForCompletion orders a caller-assembled part set for the
// completion request. The service requires ascending part number order
// regardless of upload order.
//
// Duplicate part numbers with identical entity tags collapse to one entry;
// duplicates with conflicting entity tags are rejected, since the caller
// cannot know which upload the service kept. Entity tags are not verified
// against the service here — that check happens server-side.
func ValidateForCompletion(parts []Part) ([]Part, error) {
	if len(parts) == 0 {
		return nil, ErrEmptyUpload
	}

	byNumber := make(map[int]Part, len(parts))
	for _, p := range parts {
		if p.Number < s3consts.MinPartID || p.Number > s3consts.MaxPartID {
			return nil, fmt.Errorf("s3multipart: part number %d outside valid range %d-%d",
				p.Number, s3consts.MinPartID, s3consts.MaxPartID)
		}
		if prev, ok := byNumber[p.Number]; ok && prev.ETag != p.ETag {
			return nil, fmt.Errorf("s3multipart: part number %d supplied twice with conflicting entity tags %q and %q",
				p.Number, prev.ETag, p.ETag)
		}
		byNumber[p.Number] = p
	}

	ordered := make([]Part, 0, len(byNumber))
	for _, p := range byNumber {
		ordered = append(ordered, p)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Number < ordered[j].Number })
	return ordered, nil
}
