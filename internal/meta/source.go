// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package meta

import (
	"go/ast"
	"go/parser"
	"go/token"
	"sort"
	"strings"

	"grimm.is/stackdocs/internal/errors"
)

// SourceProvider extracts object metadata from Go source files: type doc
// comments, embedded base types for classification, and exported
// configuration fields with their doc comments. Types are looked up by the
// last component of the fully-qualified name.
type SourceProvider struct {
	fset  *token.FileSet
	types map[string]*parsedType
}

type parsedType struct {
	name     string
	doc      []string
	embedded []string
	fields   []Field
}

// NewSourceProvider creates an empty source provider.
func NewSourceProvider() *SourceProvider {
	return &SourceProvider{
		fset:  token.NewFileSet(),
		types: make(map[string]*parsedType),
	}
}

// ParseDir parses all Go files in a directory and indexes struct
// definitions.
func (p *SourceProvider) ParseDir(dir string) error {
	pkgs, err := parser.ParseDir(p.fset, dir, nil, parser.ParseComments)
	if err != nil {
		return errors.Wrapf(err, errors.KindConfiguration, "failed to parse source directory %s", dir)
	}

	for name, pkg := range pkgs {
		if strings.HasSuffix(name, "_test") {
			continue
		}
		p.extractTypes(pkg)
	}
	return nil
}

func (p *SourceProvider) extractTypes(pkg *ast.Package) {
	for _, file := range pkg.Files {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}

			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				structType, ok := typeSpec.Type.(*ast.StructType)
				if !ok {
					continue
				}

				doc := genDecl.Doc
				if typeSpec.Doc != nil {
					doc = typeSpec.Doc
				}
				p.types[typeSpec.Name.Name] = parseType(typeSpec.Name.Name, structType, doc)
			}
		}
	}
}

func parseType(name string, s *ast.StructType, docGroup *ast.CommentGroup) *parsedType {
	pt := &parsedType{
		name: name,
		doc:  SplitDocText(commentText(docGroup)),
	}

	if s.Fields == nil {
		return pt
	}

	for _, field := range s.Fields.List {
		if len(field.Names) == 0 {
			pt.embedded = append(pt.embedded, baseTypeName(field.Type))
			continue
		}

		fieldName := field.Names[0].Name
		if !ast.IsExported(fieldName) {
			continue
		}

		doc := commentText(field.Doc)
		if doc == "" {
			doc = commentText(field.Comment)
		}
		pt.fields = append(pt.fields, Field{Name: fieldName, Doc: SplitDocText(doc)})
	}

	sort.Slice(pt.fields, func(i, j int) bool { return pt.fields[i].Name < pt.fields[j].Name })
	return pt
}

// commentText extracts clean text from a comment group.
func commentText(cg *ast.CommentGroup) string {
	if cg == nil {
		return ""
	}
	return strings.TrimSpace(cg.Text())
}

// baseTypeName names an embedded field's type, dropping any pointer or
// package qualifier.
func baseTypeName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return baseTypeName(t.X)
	case *ast.SelectorExpr:
		return t.Sel.Name
	default:
		return ""
	}
}

// Describe implements Provider.
func (p *SourceProvider) Describe(fqn string) (*Description, error) {
	parts := strings.Split(fqn, ".")
	typeName := parts[len(parts)-1]

	pt, ok := p.types[typeName]
	if !ok {
		return nil, errors.Errorf(errors.KindNotFound, "no source metadata for %s", fqn)
	}

	return &Description{
		FullyQualifiedName: fqn,
		Kind:               classify(pt),
		Doc:                pt.doc,
		Fields:             pt.fields,
	}, nil
}

// classify determines the topic kind from embedded base types, falling back
// to the type's own name suffix.
func classify(pt *parsedType) Kind {
	names := append([]string{}, pt.embedded...)
	names = append(names, pt.name)
	for _, name := range names {
		switch {
		case strings.HasSuffix(name, "PipelineTask"):
			return KindPipelineTask
		case strings.HasSuffix(name, "Task"):
			return KindTask
		case strings.HasSuffix(name, "Config"):
			return KindConfig
		}
	}
	return KindConfigurable
}
