// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package signature

import (
	"bytes"
	"crypto/x509"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	dsig "github.com/russellhaering/goxmldsig"
	"go.uber.org/zap"

	"github.com/H0llyW00dzZ/edugain-validate/src/internal/helper/gc"
)

// Reason classifies a verification failure.
type Reason string

const (
	// ReasonMissing means no signature references the document element.
	ReasonMissing Reason = "missing"
	// ReasonInvalid means a signature was found but did not verify.
	ReasonInvalid Reason = "invalid"
)

var (
	// ErrNoCertificates is returned by NewVerifier without trust anchors.
	ErrNoCertificates = errors.New("signature: no trusted certificates")

	// ErrMalformed marks a document that is not well-formed XML.
	ErrMalformed = errors.New("signature: malformed XML")

	// ErrEmptyDocument marks a document without a root element.
	ErrEmptyDocument = errors.New("signature: document has no root element")
)

// Error is a failed verification.
type Error struct {
	Reason Reason
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("signature %s: %v", e.Reason, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

var algorithmNames = map[string]string{
	"http://www.w3.org/2000/09/xmldsig#rsa-sha1":          "RSA-SHA1",
	"http://www.w3.org/2001/04/xmldsig-more#rsa-sha256":   "RSA-SHA256",
	"http://www.w3.org/2001/04/xmldsig-more#rsa-sha384":   "RSA-SHA384",
	"http://www.w3.org/2001/04/xmldsig-more#rsa-sha512":   "RSA-SHA512",
	"http://www.w3.org/2001/04/xmldsig-more#ecdsa-sha256": "ECDSA-SHA256",
	"http://www.w3.org/2001/04/xmldsig-more#ecdsa-sha384": "ECDSA-SHA384",
	"http://www.w3.org/2001/04/xmldsig-more#ecdsa-sha512": "ECDSA-SHA512",
}

// AlgorithmName returns a short name for a signature method URI, or the URI
// itself when it is not recognised.
func AlgorithmName(uri string) string {
	if name, ok := algorithmNames[uri]; ok {
		return name
	}
	return uri
}

// Verifier checks enveloped signatures against trusted certificates.
// It holds no per-document state and may be shared.
type Verifier struct {
	store  dsig.X509CertificateStore
	certs  []*x509.Certificate
	logger *zap.Logger
}

// NewVerifier returns a Verifier trusting certs. Several certificates support
// signing key rollover. A nil logger disables verification logging.
func NewVerifier(certs []*x509.Certificate, logger *zap.Logger) (*Verifier, error) {
	if len(certs) == 0 {
		return nil, ErrNoCertificates
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Verifier{
		store:  &dsig.MemoryX509CertificateStore{Roots: certs},
		certs:  certs,
		logger: logger,
	}, nil
}

// ParseFile reads the file at path into an element tree.
// Errors wrapping ErrMalformed mean the file was read but is not XML.
func ParseFile(path string) (*etree.Document, error) {
	doc := etree.NewDocument()
	err := gc.ReadFile(path, func(data []byte) error {
		if err := doc.ReadFromBytes(data); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrMalformed, path, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Verify validates the signature over the root element of doc and returns a
// document holding only the verified element. Failures are *Error values.
func (v *Verifier) Verify(doc *etree.Document) (*etree.Document, error) {
	root := doc.Root()
	if root == nil {
		return nil, &Error{Reason: ReasonInvalid, Err: ErrEmptyDocument}
	}

	algorithm := signatureAlgorithm(root)
	signer := v.signingCertificate(root)

	ctx := dsig.NewDefaultValidationContext(v.store)
	validated, err := ctx.Validate(root)
	if err != nil {
		reason := ReasonInvalid
		if errors.Is(err, dsig.ErrMissingSignature) {
			reason = ReasonMissing
		}
		v.logger.Debug("signature verification failed",
			zap.String("reason", string(reason)),
			zap.Error(err),
		)
		return nil, &Error{Reason: reason, Err: err}
	}

	v.logger.Info("metadata signature verified",
		zap.String("algorithm", AlgorithmName(algorithm)),
		zap.String("cert_subject", signer.Subject.String()),
		zap.Time("cert_expiry", signer.NotAfter),
	)

	out := etree.NewDocument()
	out.SetRoot(validated)
	return out, nil
}

func signatureAlgorithm(root *etree.Element) string {
	method := root.FindElement("./Signature/SignedInfo/SignatureMethod")
	if method == nil {
		return ""
	}
	return method.SelectAttrValue("Algorithm", "")
}

// signingCertificate picks the trusted certificate matching the signature's
// KeyInfo, falling back to the first trust anchor.
func (v *Verifier) signingCertificate(root *etree.Element) *x509.Certificate {
	el := root.FindElement("./Signature/KeyInfo/X509Data/X509Certificate")
	if el != nil {
		text := strings.Join(strings.Fields(el.Text()), "")
		if raw, err := base64.StdEncoding.DecodeString(text); err == nil {
			for _, cert := range v.certs {
				if bytes.Equal(cert.Raw, raw) {
					return cert
				}
			}
		}
	}
	return v.certs[0]
}
