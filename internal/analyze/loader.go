package analyze

import (
	"fmt"
	"go/types"
	"sort"

	"golang.org/x/tools/go/packages"

	"staging-generator/internal/schema"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Loader loads Go packages and extracts record schemas from their
// exported struct declarations.
type Loader struct {
	pkgs []*packages.Package
	set  *SchemaSet
}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{set: NewSchemaSet()}
}

// LoadPackages loads the given package patterns (e.g. "./store",
// "staging-generator/store") and returns the extracted schemas.
func (l *Loader) LoadPackages(patterns ...string) (*SchemaSet, error) {
	cfg := &packages.Config{Mode: LoadMode}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	l.pkgs = append(l.pkgs, pkgs...)
	for _, pkg := range pkgs {
		l.processPackage(pkg)
	}

	return l.set, nil
}

// Schemas returns the schemas extracted so far.
func (l *Loader) Schemas() *SchemaSet {
	return l.set
}

// processPackage extracts record schemas from a loaded package.
func (l *Loader) processPackage(pkg *packages.Package) {
	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)

		typeName, ok := obj.(*types.TypeName)
		if !ok || !typeName.Exported() {
			continue
		}

		st, ok := typeName.Type().Underlying().(*types.Struct)
		if !ok {
			continue
		}

		rec := &schema.RecordSchema{
			TypeName: name,
			PkgPath:  pkg.PkgPath,
		}

		for i := 0; i < st.NumFields(); i++ {
			field := st.Field(i)
			if !field.Exported() {
				continue
			}

			rec.Fields = append(rec.Fields, schema.FieldDescriptor{
				Name:         field.Name(),
				DeclaredType: refFor(field.Type()),
			})
		}

		l.set.Add(pkg.Types.Name(), rec)
	}
}

// ResolveType resolves a "pkgname.TypeName" reference against the
// loaded packages. Used for config-supplied types like the unit's
// error type.
func (l *Loader) ResolveType(qualified string) (schema.TypeRef, error) {
	pkgName, typeName, ok := splitQualified(qualified)
	if !ok {
		// Unqualified names are taken as builtins (e.g. "error",
		// "string") and need no import.
		return schema.TypeRef{Display: qualified}, nil
	}

	for _, pkg := range l.pkgs {
		if pkg.Types.Name() != pkgName {
			continue
		}

		if pkg.Types.Scope().Lookup(typeName) == nil {
			return schema.TypeRef{}, fmt.Errorf("type %s not found in package %s", typeName, pkg.PkgPath)
		}

		return schema.Named(pkg.PkgPath, typeName), nil
	}

	return schema.TypeRef{}, fmt.Errorf("package %s not loaded (needed for %s)", pkgName, qualified)
}

// refFor renders a go/types.Type into a qualified TypeRef, collecting
// the package paths the rendering references.
func refFor(t types.Type) schema.TypeRef {
	seen := make(map[string]struct{})

	qual := func(p *types.Package) string {
		seen[p.Path()] = struct{}{}
		return p.Name()
	}

	ref := schema.TypeRef{Display: types.TypeString(t, qual)}

	if named, ok := t.(*types.Named); ok {
		if pkg := named.Obj().Pkg(); pkg != nil {
			ref.PkgPath = pkg.Path()
		}
	}

	if len(seen) > 0 {
		ref.Imports = make([]string, 0, len(seen))
		for p := range seen {
			ref.Imports = append(ref.Imports, p)
		}

		sort.Strings(ref.Imports)
	}

	return ref
}

// splitQualified splits "store.Account" into ("store", "Account").
func splitQualified(s string) (pkgName, typeName string, ok bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '.' {
			return s[:i], s[i+1:], true
		}
	}

	return "", s, false
}
