// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package signature verifies the enveloped XML digital signature carried by
// federation metadata, using [goxmldsig] against a set of trusted certificates.
//
// A successful [Verifier.Verify] returns a new document holding only the element
// the signature covers. Callers must validate and consume that document rather
// than the original bytes, otherwise content wrapped around the signed element
// would slip through.
//
// [goxmldsig]: https://pkg.go.dev/github.com/russellhaering/goxmldsig
package signature
