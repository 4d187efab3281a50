// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3api

import (
	"errors"
	"fmt"
)

// ContractViolation reports caller misuse of the API: a pagination marker
// used without its required pair, a terminal upload session re-entered, an
// empty part set submitted for completion. These are detected at
// construction time, before any wire round trip.
type ContractViolation struct {
	Op     Operation
	Reason string
}

func (e *ContractViolation) Error() string {
	return fmt.Sprintf("%s: contract violation: %s", e.Op, e.Reason)
}

// Violation builds a ContractViolation for the given operation.
func Violation(op Operation, format string, args ...any) *ContractViolation {
	return &ContractViolation{Op: op, Reason: fmt.Sprintf(format, args...)}
}

// IsContractViolation reports whether err is a caller contract violation.
func IsContractViolation(err error) bool {
	var cv *ContractViolation
	return errors.As(err, &cv)
}

// TransportError wraps a failure raised by the transport collaborator while
// issuing a request. Retry policy lives with the caller, not here.
type TransportError struct {
	Op  Operation
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
