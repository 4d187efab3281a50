// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3cursor

import (
	"context"

	"github.com/LeeDigitalWorks/s3wire/pkg/logger"
	"github.com/LeeDigitalWorks/s3wire/pkg/s3api"
	"github.com/LeeDigitalWorks/s3wire/pkg/s3api/s3decode"
)

// Pages drives a listing to completion, invoking fn once per decoded page.
//
// Truncation is evaluated locally after each page: when a page reports
// IsTruncated false no further request is issued. A non-nil error from fn
// stops iteration and is returned unchanged.
func Pages(ctx context.Context, doer s3api.Doer, base s3api.Builder, fn func(page any) error) error {
	req := base
	for page := 0; ; page++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		wire, err := req.Build()
		if err != nil {
			return err
		}
		resp, err := doer.Do(ctx, wire)
		if err != nil {
			return err
		}
		result, err := s3decode.DecodeResponse(wire.Op, resp)
		closeErr := resp.Body.Close()
		if err != nil {
			return err
		}
		if closeErr != nil {
			logger.Warn().Err(closeErr).Str("operation", wire.Op.String()).Msg("failed to close response body")
		}
		if err := fn(result); err != nil {
			return err
		}
		if !IsTruncated(result) {
			logger.Debug().Str("operation", wire.Op.String()).Int("pages", page+1).Msg("listing complete")
			return nil
		}
		cursor, err := Next(result)
		if err != nil {
			return err
		}
		req, err = Apply(req, cursor)
		if err != nil {
			return err
		}
	}
}
