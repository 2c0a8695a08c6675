// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package testfixtures builds the on-disk material the validator tests run against:
// a self-signed signing certificate, enveloped-signature signing with goxmldsig,
// a miniature schema set laid out under the file names of the location table,
// and small eduGAIN-style metadata documents.
//
// The schema set only declares what the fixtures use. It is not a substitute for
// the published SAML and eduGAIN schemas.
package testfixtures
