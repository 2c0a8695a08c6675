// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package testfixtures

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/beevik/etree"
	dsig "github.com/russellhaering/goxmldsig"
)

// Signer signs metadata documents with a throwaway key pair.
type Signer struct {
	t           testing.TB
	privateKey  *rsa.PrivateKey
	certificate *x509.Certificate
}

// NewSigner creates a Signer with a freshly generated self-signed certificate.
func NewSigner(t testing.TB, commonName string) *Signer {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	template := x509.Certificate{
		SerialNumber: big.NewInt(time.Now().UnixNano()),
		Subject: pkix.Name{
			CommonName:   commonName,
			Organization: []string{"eduGAIN Test Federation"},
		},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(24 * time.Hour),
		KeyUsage:              x509.KeyUsageDigitalSignature,
		BasicConstraintsValid: true,
	}

	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("create certificate: %v", err)
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		t.Fatalf("parse certificate: %v", err)
	}

	return &Signer{t: t, privateKey: key, certificate: cert}
}

// Certificate returns the signing certificate.
func (s *Signer) Certificate() *x509.Certificate { return s.certificate }

// CertificatePEM returns the signing certificate PEM encoded.
func (s *Signer) CertificatePEM() []byte {
	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: s.certificate.Raw})
}

// WriteCertificate writes the PEM certificate into dir and returns its path.
func (s *Signer) WriteCertificate(dir, name string) string {
	s.t.Helper()
	return WriteFile(s.t, dir, name, s.CertificatePEM())
}

// Sign adds an enveloped signature over the root element of metadata.
// The signature is placed as the first child so the signed document still
// matches the fixture schemas.
func (s *Signer) Sign(metadata []byte) []byte {
	s.t.Helper()

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(metadata); err != nil {
		s.t.Fatalf("parse metadata: %v", err)
	}
	root := doc.Root()
	if root == nil {
		s.t.Fatal("metadata has no root element")
	}

	keyStore := dsig.TLSCertKeyStore(tls.Certificate{
		Certificate: [][]byte{s.certificate.Raw},
		PrivateKey:  s.privateKey,
	})
	ctx := dsig.NewDefaultSigningContext(keyStore)
	ctx.Canonicalizer = dsig.MakeC14N10ExclusiveCanonicalizerWithPrefixList("")

	signed, err := ctx.SignEnveloped(root)
	if err != nil {
		s.t.Fatalf("sign metadata: %v", err)
	}
	moveSignatureFirst(signed)

	doc.SetRoot(signed)
	out, err := doc.WriteToBytes()
	if err != nil {
		s.t.Fatalf("serialize signed metadata: %v", err)
	}
	return out
}

// moveSignatureFirst relocates the appended Signature to the first child slot.
// SignEnveloped appends the element without parenting it, so RemoveChild
// would leave it in place; it is detached by identity instead.
func moveSignatureFirst(signed *etree.Element) {
	sig := signed.FindElement("./Signature")
	if sig == nil {
		return
	}
	for i, child := range signed.Child {
		if el, ok := child.(*etree.Element); ok && el == sig {
			signed.Child = append(signed.Child[:i], signed.Child[i+1:]...)
			break
		}
	}
	signed.InsertChildAt(0, sig)
}

// WriteFile writes data to dir/name, creating parent directories, and returns the path.
func WriteFile(t testing.TB, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
