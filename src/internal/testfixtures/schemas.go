// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package testfixtures

import (
	"fmt"
	"maps"
	"testing"
	"testing/fstest"
)

const xsdHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

func emptySchema(namespace string) string {
	return xsdHeader + fmt.Sprintf(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="%s" elementFormDefault="qualified"/>`, namespace) + "\n"
}

const shibbolethSchema = xsdHeader + `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
  targetNamespace="urn:mace:shibboleth:metadata:1.0"
  elementFormDefault="qualified">
  <xs:element name="Scope">
    <xs:complexType>
      <xs:simpleContent>
        <xs:extension base="xs:string">
          <xs:attribute name="regexp" type="xs:boolean" default="false"/>
        </xs:extension>
      </xs:simpleContent>
    </xs:complexType>
  </xs:element>
</xs:schema>
`

const metadataSchema = xsdHeader + `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
  xmlns:md="urn:oasis:names:tc:SAML:2.0:metadata"
  xmlns:ds="http://www.w3.org/2000/09/xmldsig#"
  targetNamespace="urn:oasis:names:tc:SAML:2.0:metadata"
  elementFormDefault="unqualified"
  attributeFormDefault="unqualified">
  <xs:import namespace="http://www.w3.org/2000/09/xmldsig#" schemaLocation="xmldsig-core-schema.xsd"/>

  <xs:element name="EntitiesDescriptor" type="md:EntitiesDescriptorType"/>
  <xs:complexType name="EntitiesDescriptorType">
    <xs:sequence>
      <xs:element ref="ds:Signature" minOccurs="0"/>
      <xs:element ref="md:Extensions" minOccurs="0"/>
      <xs:element ref="md:EntityDescriptor" maxOccurs="unbounded"/>
    </xs:sequence>
    <xs:attribute name="ID" type="xs:ID"/>
    <xs:attribute name="Name" type="xs:string"/>
    <xs:attribute name="validUntil" type="xs:dateTime"/>
  </xs:complexType>

  <xs:element name="EntityDescriptor" type="md:EntityDescriptorType"/>
  <xs:complexType name="EntityDescriptorType">
    <xs:sequence>
      <xs:element ref="ds:Signature" minOccurs="0"/>
      <xs:element ref="md:Extensions" minOccurs="0"/>
      <xs:choice maxOccurs="unbounded">
        <xs:element ref="md:IDPSSODescriptor"/>
        <xs:element ref="md:SPSSODescriptor"/>
      </xs:choice>
    </xs:sequence>
    <xs:attribute name="ID" type="xs:ID"/>
    <xs:attribute name="entityID" type="xs:anyURI" use="required"/>
    <xs:attribute name="validUntil" type="xs:dateTime"/>
  </xs:complexType>

  <xs:element name="Extensions">
    <xs:complexType>
      <xs:sequence>
        <xs:any namespace="##other" processContents="lax" maxOccurs="unbounded"/>
      </xs:sequence>
    </xs:complexType>
  </xs:element>

  <xs:complexType name="RoleDescriptorType">
    <xs:sequence>
      <xs:element ref="md:Extensions" minOccurs="0"/>
    </xs:sequence>
    <xs:attribute name="protocolSupportEnumeration" type="xs:string" use="required"/>
  </xs:complexType>
  <xs:element name="IDPSSODescriptor" type="md:RoleDescriptorType"/>
  <xs:element name="SPSSODescriptor" type="md:RoleDescriptorType"/>
</xs:schema>
`

const dsigSchema = xsdHeader + `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
  targetNamespace="http://www.w3.org/2000/09/xmldsig#"
  elementFormDefault="qualified">
  <xs:element name="Signature">
    <xs:complexType>
      <xs:sequence>
        <xs:any namespace="##any" processContents="lax" minOccurs="0" maxOccurs="unbounded"/>
      </xs:sequence>
      <xs:attribute name="Id" type="xs:ID"/>
    </xs:complexType>
  </xs:element>
</xs:schema>
`

const xmlSchema = xsdHeader + `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
  targetNamespace="http://www.w3.org/XML/1998/namespace">
  <xs:attribute name="lang" type="xs:language"/>
</xs:schema>
`

const uiSchema = xsdHeader + `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
  targetNamespace="urn:oasis:names:tc:SAML:metadata:ui"
  elementFormDefault="qualified">
  <xs:element name="UIInfo">
    <xs:complexType>
      <xs:sequence>
        <xs:element name="DisplayName" type="xs:string" maxOccurs="unbounded"/>
      </xs:sequence>
    </xs:complexType>
  </xs:element>
</xs:schema>
`

// RootSchema is the file name of the fixture root schema.
const RootSchema = "shibboleth-metadata-1.0.xsd"

var requiredSchemas = map[string]string{
	RootSchema:                      shibbolethSchema,
	"saml-schema-metadata-2.0.xsd":  metadataSchema,
	"saml-schema-protocol-2.0.xsd":  emptySchema("urn:oasis:names:tc:SAML:2.0:protocol"),
	"saml-schema-assertion-2.0.xsd": emptySchema("urn:oasis:names:tc:SAML:2.0:assertion"),
	"xmldsig-core-schema.xsd":       dsigSchema,
	"xenc-schema.xsd":               emptySchema("http://www.w3.org/2001/04/xmlenc#"),
}

var optionalSchemas = map[string]string{
	"xml.xsd":                                     xmlSchema,
	"saml-metadata-rpi-v1.0-csd01.xsd":            emptySchema("urn:oasis:names:tc:SAML:metadata:rpi"),
	"sstc-saml-idp-discovery.xsd":                 emptySchema("urn:oasis:names:tc:SAML:profiles:SSO:idp-discovery-protocol"),
	"sstc-saml-metadata-algsupport-cd01.xsd":      emptySchema("urn:oasis:names:tc:SAML:metadata:algsupport"),
	"ws-addr.xsd":                                 emptySchema("http://www.w3.org/2005/08/addressing"),
	"ws-securitypolicy-1.2.xsd":                   emptySchema("http://docs.oasis-open.org/ws-sx/ws-securitypolicy/200702"),
	"ws-authorization.xsd":                        emptySchema("http://docs.oasis-open.org/wsfed/authorization/200706"),
	"ws-federation.xsd":                           emptySchema("http://docs.oasis-open.org/wsfed/federation/200706"),
	"MetadataExchange.xsd":                        emptySchema("http://schemas.xmlsoap.org/ws/2004/09/mex"),
	"oasis-200401-wss-wssecurity-utility-1.0.xsd": emptySchema("http://docs.oasis-open.org/wss/2004/01/oasis-200401-wss-wssecurity-utility-1.0.xsd"),
	"oasis-200401-wss-wssecurity-secext-1.0.xsd":  emptySchema("http://docs.oasis-open.org/wss/2004/01/oasis-200401-wss-wssecurity-secext-1.0.xsd"),
	"sstc-metadata-attr.xsd":                      emptySchema("urn:oasis:names:tc:SAML:metadata:attribute"),
	"sstc-saml-metadata-ui-v1.0.xsd":              uiSchema,
}

// Schemas returns every fixture schema keyed by file name.
func Schemas() map[string]string {
	all := maps.Clone(requiredSchemas)
	maps.Copy(all, optionalSchemas)
	return all
}

// RequiredSchemas returns only the root schema and the core namespaces.
func RequiredSchemas() map[string]string { return maps.Clone(requiredSchemas) }

// SchemaFS returns the full fixture schema set as an in-memory filesystem.
func SchemaFS() fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, body := range Schemas() {
		fsys[name] = &fstest.MapFile{Data: []byte(body), Mode: 0o644}
	}
	return fsys
}

// WriteSchemas writes the full fixture schema set into dir.
func WriteSchemas(t testing.TB, dir string) string {
	t.Helper()
	for name, body := range Schemas() {
		WriteFile(t, dir, name, []byte(body))
	}
	return dir
}
