// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package schema

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/beevik/etree"
	"github.com/jacoelho/xsd"
	"go.uber.org/zap"
)

const (
	xsdNamespace = "http://www.w3.org/2001/XMLSchema"
	driverName   = "edugain-validate-driver.xsd"
)

var (
	// ErrNotSchema indicates a location file whose root is not xs:schema.
	ErrNotSchema = errors.New("schema: not an XML Schema document")

	// ErrNoTargetNamespace indicates a root schema without a targetNamespace.
	ErrNoTargetNamespace = errors.New("schema: root schema has no targetNamespace")

	// ErrNamespaceMismatch indicates a location file declaring a different
	// targetNamespace than its table key.
	ErrNamespaceMismatch = errors.New("schema: targetNamespace does not match location table")

	// ErrInvalidLocation indicates a table path that is not a valid relative fs path.
	ErrInvalidLocation = errors.New("schema: invalid location path")
)

// Schema is a compiled schema set ready to validate documents.
type Schema struct {
	compiled      *xsd.Schema
	root          string
	rootNamespace string
	locations     Locations
}

// Option configures Compile.
type Option func(*compileConfig)

type compileConfig struct {
	logger *zap.Logger
}

// WithLogger sets the logger used for compile diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(c *compileConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// CompileDir compiles the schema set found in dir.
func CompileDir(dir, root string, locations Locations, opts ...Option) (*Schema, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("schema: schemas directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("schema: schemas directory %s is not a directory", dir)
	}
	return Compile(os.DirFS(dir), root, locations, opts...)
}

// Compile builds one schema from root and every entry of locations, all read
// from fsys. Missing files, namespace mismatches and engine errors are returned
// as setup errors carrying the underlying diagnostic.
func Compile(fsys fs.FS, root string, locations Locations, opts ...Option) (*Schema, error) {
	cfg := compileConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	start := time.Now()
	if root == "" {
		root = DefaultRootSchema
	}
	if !fs.ValidPath(root) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLocation, root)
	}

	catalog := newCatalogFS(fsys, root, locations)

	rootNS, err := targetNamespace(catalog, root)
	if err != nil {
		return nil, err
	}
	if rootNS == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoTargetNamespace, root)
	}
	cfg.logger.Debug("root schema",
		zap.String("file", root),
		zap.String("namespace", rootNS),
	)

	for _, ns := range locations.Namespaces() {
		file := locations[ns]
		if !fs.ValidPath(file) {
			return nil, fmt.Errorf("%w: %q for %s", ErrInvalidLocation, file, ns)
		}
		got, err := targetNamespace(catalog, file)
		if err != nil {
			return nil, err
		}
		if got != ns {
			return nil, fmt.Errorf("%w: %s declares %q, expected %q", ErrNamespaceMismatch, file, got, ns)
		}
		cfg.logger.Debug("schema location",
			zap.String("namespace", ns),
			zap.String("file", file),
		)
	}

	if file, ok := locations[rootNS]; ok && file != root {
		cfg.logger.Warn("location shadowed by root schema",
			zap.String("namespace", rootNS),
			zap.String("file", file),
		)
	}

	driver, err := driverSchema(root, rootNS, locations)
	if err != nil {
		return nil, err
	}
	catalog.add(driverName, driver)

	set := xsd.NewSchemaSet().WithLoadOptions(xsd.NewLoadOptions().WithAllowMissingImportLocations(true))
	if err := set.AddFS(catalog, driverName); err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	compiled, err := set.Compile()
	if err != nil {
		return nil, fmt.Errorf("schema: compile %s: %w", root, err)
	}

	cfg.logger.Info("schema compiled",
		zap.String("root", root),
		zap.Int("locations", len(locations)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &Schema{
		compiled:      compiled,
		root:          root,
		rootNamespace: rootNS,
		locations:     locations.Clone(),
	}, nil
}

// Root returns the root schema file name.
func (s *Schema) Root() string { return s.root }

// RootNamespace returns the targetNamespace of the root schema.
func (s *Schema) RootNamespace() string { return s.rootNamespace }

// Locations returns a copy of the table the schema was compiled from.
func (s *Schema) Locations() Locations { return s.locations.Clone() }

func targetNamespace(fsys fs.FS, name string) (string, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", fmt.Errorf("schema: read %s: %w", name, err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return "", fmt.Errorf("schema: parse %s: %w", name, err)
	}
	root := doc.Root()
	if root == nil || root.Tag != "schema" || root.NamespaceURI() != xsdNamespace {
		return "", fmt.Errorf("%w: %s", ErrNotSchema, name)
	}
	return root.SelectAttrValue("targetNamespace", ""), nil
}

// driverSchema renders a no-namespace schema that imports the root schema and
// every location, giving the engine a single entry point.
func driverSchema(root, rootNS string, locations Locations) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	el := doc.CreateElement("xs:schema")
	el.CreateAttr("xmlns:xs", xsdNamespace)
	addImport(el, rootNS, root)
	for _, ns := range locations.Namespaces() {
		if ns == rootNS {
			continue
		}
		addImport(el, ns, locations[ns])
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("schema: render driver: %w", err)
	}
	return out, nil
}

func addImport(parent *etree.Element, namespace, location string) {
	imp := parent.CreateElement("xs:import")
	imp.CreateAttr("namespace", namespace)
	imp.CreateAttr("schemaLocation", location)
}
