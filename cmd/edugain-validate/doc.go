// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// edugain-validate is a command-line tool for validating eduGAIN SAML metadata
// against the eduGAIN XML schema set and, optionally, its XML signature.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/edugain-validate/cmd/edugain-validate@latest
//
// The schema files are looked up in a schemas directory next to the
// executable, then in ./schemas.
//
// # Usage
//
//	edugain-validate [FLAGS] XML_FILE...
//
// # Flags
//
//	-v, --verbose           Increase verbosity (repeatable: warnings, info, debug)
//	-s, --skip-optional     Use the required schema set only
//	    --cert              Verify the XML signature with CERT_FILE (PEM, DER or PKCS#7)
//	    --lazy              Stream files from disk (ignored with --cert)
//	    --schemas-dir       Directory holding the schema files
//	    --root-schema       Root schema file inside the schemas directory
//	    --location          Add or redirect a non-required namespace as NAMESPACE=FILE
//	    --config            JSON or YAML config file
//	    --format            Report format: text, table or json
//
// # Exit Codes
//
// 0 when every file passed, 1 when any file failed or the setup failed,
// 130 when interrupted.
//
// # Examples
//
// Validate an aggregate:
//
//	edugain-validate edugain-v2.xml
//
// Verify the signature first:
//
//	edugain-validate --cert mds-v2.cer edugain-v2.xml
//
// Validate with the required schema set and print a markdown table:
//
//	edugain-validate -s --format table idp.xml sp.xml
package main
