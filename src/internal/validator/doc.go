// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package validator runs the per-file validation sequence over a batch of
// metadata files.
//
// A [Validator] owns one compiled schema and, when certificates are supplied,
// one signature verifier. Both are built by [New] and reused for every file.
// For each file:
//
//  1. With certificates, the file is parsed and its enveloped signature is
//     verified. A failure is recorded as [report.SignatureInvalid] and the file
//     is not schema validated. On success the verified element, not the raw
//     file, goes on to schema validation.
//  2. Without certificates, the file is validated from disk, either streamed
//     (lazy) or read fully into a pooled buffer first.
//  3. Schema violations are recorded as [report.SchemaInvalid], unreadable
//     files as [report.Error], everything else as [report.Passed].
//
// One failing file never stops the batch. Cancellation is only observed
// between files.
package validator
