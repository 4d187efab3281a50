// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

// Package s3multipart tracks the part set of one multipart upload across
// independent part-upload calls and validates it at completion time. The
// actual byte transfer is the transport's job; a Session only models the
// bookkeeping side effects of each call.
package s3multipart

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/LeeDigitalWorks/s3wire/pkg/logger"
	"github.com/LeeDigitalWorks/s3wire/pkg/s3api"
	"github.com/LeeDigitalWorks/s3wire/pkg/s3api/s3types"
)

// State is the lifecycle position of a Session. Completed and Aborted are
// terminal.
type State int

const (
	StateInitiated State = iota
	StateUploading
	StateCompleted
	StateAborted
)

var stateNames = map[State]string{
	StateInitiated: "initiated",
	StateUploading: "uploading",
	StateCompleted: "completed",
	StateAborted:   "aborted",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Session is the caller-held record of one in-progress multipart upload.
// RecordPart is safe for concurrent use on the same session; callers
// commonly upload parts from parallel workers. Distinct sessions share no
// state.
type Session struct {
	ID        string
	Bucket    string
	Key       string
	UploadID  string
	Initiated time.Time

	mu    sync.Mutex
	state State
	parts map[int]Part
}

// NewSession starts tracking an upload from the decoded initiate response.
func NewSession(res *s3types.InitiateMultipartUploadResult) *Session {
	s := &Session{
		ID:        uuid.New().String(),
		Bucket:    res.Bucket,
		Key:       res.Key,
		UploadID:  res.UploadID,
		Initiated: time.Now().UTC(),
		state:     StateInitiated,
		parts:     make(map[int]Part),
	}
	observeSessionStart()
	logger.Debug().
		Str("session", s.ID).
		Str("bucket", s.Bucket).
		Str("key", s.Key).
		Msg("multipart session initiated")
	return s
}

// State reports the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Parts returns a snapshot of the recorded part set in no particular order.
func (s *Session) Parts() []Part {
	s.mu.Lock()
	defer s.mu.Unlock()
	parts := make([]Part, 0, len(s.parts))
	for _, p := range s.parts {
		parts = append(parts, p)
	}
	return parts
}

// RecordPart folds one part-upload outcome into the session. Re-recording a
// part number replaces the earlier entry, matching the service's own
// re-upload semantics. Recording on a terminal session is a caller error.
func (s *Session) RecordPart(number int, etag string, size int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateCompleted || s.state == StateAborted {
		return s.violationLocked(s3api.OpCompleteMultipartUpload, "record part on %s session", s.state)
	}
	s.state = StateUploading
	s.parts[number] = Part{Number: number, ETag: etag, Size: size}
	return nil
}

// Complete validates and orders the recorded part set and marks the session
// terminal. The returned parts are ready to serialize into the completion
// request body.
func (s *Session) Complete() ([]s3types.CompletePart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateCompleted || s.state == StateAborted {
		return nil, s.violationLocked(s3api.OpCompleteMultipartUpload, "complete on %s session", s.state)
	}

	parts := make([]Part, 0, len(s.parts))
	for _, p := range s.parts {
		parts = append(parts, p)
	}
	ordered, err := ValidateForCompletion(parts)
	if err != nil {
		return nil, err
	}

	s.state = StateCompleted
	observeSessionEnd("completed")
	complete := make([]s3types.CompletePart, len(ordered))
	for i, p := range ordered {
		complete[i] = s3types.CompletePart{PartNumber: p.Number, ETag: p.ETag}
	}
	return complete, nil
}

// Abort marks the session terminal. It does not cancel part uploads already
// in flight, and service-side storage reclamation is asynchronous — the
// service documents that aborting may need to be retried after in-flight
// parts land. A second Abort on the same session is a caller error, not a
// silent success.
func (s *Session) Abort() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateCompleted:
		return s.violationLocked(s3api.OpAbortMultipartUpload, "abort on completed session")
	case StateAborted:
		return s.violationLocked(s3api.OpAbortMultipartUpload, "abort on already aborted session")
	}
	s.state = StateAborted
	observeSessionEnd("aborted")
	logger.Debug().
		Str("session", s.ID).
		Str("bucket", s.Bucket).
		Str("key", s.Key).
		Int("parts", len(s.parts)).
		Msg("multipart session aborted")
	return nil
}

func (s *Session) violationLocked(op s3api.Operation, format string, args ...any) error {
	err := s3api.Violation(op, format, args...)
	logger.Warn().
		Str("session", s.ID).
		Str("state", s.state.String()).
		Err(err).
		Msg("multipart contract violation")
	return err
}
