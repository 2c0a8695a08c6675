// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package schema holds the eduGAIN schema location table and compiles it into a
// single validator using the [xsd] engine.
//
// The table maps a namespace URI to the schema file that declares it. Required
// covers the core SAML 2.0, XML-DSig and XML-Enc namespaces; Optional covers the
// extension namespaces that eduGAIN metadata places under lax xs:any wildcards.
// Compile generates a driver schema that imports the root schema and every
// location, then compiles it once. The resulting [Schema] is safe for concurrent
// use.
//
// All schema files are read from an [io/fs.FS]. [Bundled] serves the schema set
// embedded in the binary; [CompileDir] reads a directory instead, for operators
// who pin their own copies of the published schemas.
//
// [xsd]: https://pkg.go.dev/github.com/jacoelho/xsd
package schema
