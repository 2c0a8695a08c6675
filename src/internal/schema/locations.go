// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package schema

import (
	"maps"
	"slices"
)

// DefaultRootSchema is the entry point schema of the eduGAIN schema set.
const DefaultRootSchema = "shibboleth-metadata-1.0.xsd"

// Locations maps a namespace URI to the schema file declaring it.
// File paths are slash separated and relative to the schema filesystem.
type Locations map[string]string

// Clone returns an independent copy of l.
func (l Locations) Clone() Locations {
	if l == nil {
		return Locations{}
	}
	return maps.Clone(l)
}

// Namespaces returns the namespace keys of l in sorted order.
func (l Locations) Namespaces() []string {
	return slices.Sorted(maps.Keys(l))
}

var required = Locations{
	"urn:oasis:names:tc:SAML:2.0:metadata":  "saml-schema-metadata-2.0.xsd",
	"urn:oasis:names:tc:SAML:2.0:protocol":  "saml-schema-protocol-2.0.xsd",
	"urn:oasis:names:tc:SAML:2.0:assertion": "saml-schema-assertion-2.0.xsd",
	"http://www.w3.org/2000/09/xmldsig#":    "xmldsig-core-schema.xsd",
	"http://www.w3.org/2001/04/xmlenc#":     "xenc-schema.xsd",
}

// Ref: https://wiki.geant.org/display/eduGAIN/Metadata+Aggregation+Practice+Statement
var optional = Locations{
	"http://www.w3.org/XML/1998/namespace":                                               "xml.xsd",
	"urn:oasis:names:tc:SAML:metadata:rpi":                                               "saml-metadata-rpi-v1.0-csd01.xsd",
	"urn:oasis:names:tc:SAML:profiles:SSO:idp-discovery-protocol":                        "sstc-saml-idp-discovery.xsd",
	"urn:oasis:names:tc:SAML:metadata:algsupport":                                        "sstc-saml-metadata-algsupport-cd01.xsd",
	"http://www.w3.org/2005/08/addressing":                                               "ws-addr.xsd",
	"http://docs.oasis-open.org/ws-sx/ws-securitypolicy/200702":                          "ws-securitypolicy-1.2.xsd",
	"http://docs.oasis-open.org/wsfed/authorization/200706":                              "ws-authorization.xsd",
	"http://docs.oasis-open.org/wsfed/federation/200706":                                 "ws-federation.xsd",
	"http://schemas.xmlsoap.org/ws/2004/09/mex":                                          "MetadataExchange.xsd",
	"http://docs.oasis-open.org/wss/2004/01/oasis-200401-wss-wssecurity-utility-1.0.xsd": "oasis-200401-wss-wssecurity-utility-1.0.xsd",
	"http://docs.oasis-open.org/wss/2004/01/oasis-200401-wss-wssecurity-secext-1.0.xsd":  "oasis-200401-wss-wssecurity-secext-1.0.xsd",
	"urn:oasis:names:tc:SAML:metadata:attribute":                                         "sstc-metadata-attr.xsd",
	"urn:oasis:names:tc:SAML:metadata:ui":                                                "sstc-saml-metadata-ui-v1.0.xsd",
}

// Required returns a copy of the core namespaces every eduGAIN document needs.
func Required() Locations { return required.Clone() }

// Optional returns a copy of the extension namespaces covering lax wildcards.
func Optional() Locations { return optional.Clone() }

// IsRequired reports whether namespace belongs to the required set.
func IsRequired(namespace string) bool {
	_, ok := required[namespace]
	return ok
}

// Resolve returns a fresh table: the required set, plus the optional set unless
// skipOptional is set, plus extra. Extra entries may add namespaces or redirect
// optional ones but never replace a required entry.
func Resolve(skipOptional bool, extra Locations) Locations {
	out := required.Clone()
	if !skipOptional {
		maps.Copy(out, optional)
	}
	for ns, file := range extra {
		if IsRequired(ns) {
			continue
		}
		out[ns] = file
	}
	return out
}
