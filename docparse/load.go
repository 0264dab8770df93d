package docparse

import (
	"fmt"
	"go/ast"
	"slices"

	"golang.org/x/tools/go/packages"

	"github.com/erraggy/declspec/oas"
)

// Option configures a Load call.
type Option func(*loadConfig)

type loadConfig struct {
	dir        string
	buildFlags []string
	tests      bool
}

// WithDir sets the directory patterns resolve from. The default is the
// process working directory.
func WithDir(dir string) Option {
	return func(cfg *loadConfig) {
		cfg.dir = dir
	}
}

// WithTests includes the package's _test.go files in the load.
func WithTests() Option {
	return func(cfg *loadConfig) {
		cfg.tests = true
	}
}

// WithBuildFlags passes extra flags to the underlying build system.
func WithBuildFlags(flags ...string) Option {
	return func(cfg *loadConfig) {
		cfg.buildFlags = append(cfg.buildFlags, flags...)
	}
}

// Package holds the doc comments of every function and method in a loaded
// package, keyed by name. Methods are keyed "Type.Method" regardless of
// whether the receiver is a pointer.
type Package struct {
	name string
	path string
	docs map[string]string
}

// Load parses the source of the package matching pattern and collects its
// function doc comments. The pattern takes any form the go command accepts,
// most usefully a relative directory like "./internal/handlers". Load is
// meant for a single package; when a wildcard matches several, the returned
// Package carries the name and path of the first and the functions of all.
func Load(pattern string, opts ...Option) (*Package, error) {
	var cfg loadConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	loadCfg := &packages.Config{
		Mode:       packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
		Dir:        cfg.dir,
		BuildFlags: cfg.buildFlags,
		Tests:      cfg.tests,
	}
	pkgs, err := packages.Load(loadCfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("docparse: loading %q: %w", pattern, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("docparse: no package matches %q", pattern)
	}
	out := &Package{docs: make(map[string]string)}
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("docparse: loading %q: %v", pattern, pkg.Errors[0])
		}
		if out.name == "" {
			out.name = pkg.Name
			out.path = pkg.PkgPath
		}
		for _, file := range pkg.Syntax {
			for _, decl := range file.Decls {
				fn, ok := decl.(*ast.FuncDecl)
				if !ok || fn.Doc == nil {
					continue
				}
				key := funcKey(fn)
				if _, seen := out.docs[key]; seen {
					continue
				}
				out.docs[key] = fn.Doc.Text()
			}
		}
	}
	return out, nil
}

// Name returns the package name.
func (p *Package) Name() string { return p.name }

// Path returns the package import path.
func (p *Package) Path() string { return p.path }

// Funcs returns the key of every documented function, sorted.
func (p *Package) Funcs() []string {
	keys := make([]string, 0, len(p.docs))
	for key := range p.docs {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// Doc returns the raw doc comment text of the named function.
func (p *Package) Doc(funcName string) (string, bool) {
	doc, ok := p.docs[funcName]
	return doc, ok
}

// Operations extracts the operations declared in the named function's doc
// comment block. Documented functions without a block return nil.
func (p *Package) Operations(funcName string) (map[string]*oas.Operation, error) {
	doc, ok := p.docs[funcName]
	if !ok {
		return nil, fmt.Errorf("docparse: package %s has no documented function %q", p.name, funcName)
	}
	return OperationsFromDoc(doc)
}

// Description returns the named function's doc text above the operations
// marker. Unknown functions return "".
func (p *Package) Description(funcName string) string {
	return DescriptionFromDoc(p.docs[funcName])
}

func funcKey(fn *ast.FuncDecl) string {
	if fn.Recv == nil || len(fn.Recv.List) == 0 {
		return fn.Name.Name
	}
	if recv := receiverName(fn.Recv.List[0].Type); recv != "" {
		return recv + "." + fn.Name.Name
	}
	return fn.Name.Name
}

// receiverName unwraps a method receiver type down to its identifier,
// stepping through pointers and type parameter lists.
func receiverName(expr ast.Expr) string {
	for {
		switch t := expr.(type) {
		case *ast.Ident:
			return t.Name
		case *ast.StarExpr:
			expr = t.X
		case *ast.IndexExpr:
			expr = t.X
		case *ast.IndexListExpr:
			expr = t.X
		case *ast.ParenExpr:
			expr = t.X
		default:
			return ""
		}
	}
}
