package architecture_test

import (
	"bufio"
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// layers lists, per package prefix, the internal packages it must not import.
// Test files are exempt since they wire real stacks together.
var layers = []struct {
	prefix string
	banned []string
}{
	{"internal/pkg/", []string{"internal/platform/", "internal/domain", "internal/data/", "internal/analytics", "internal/services", "internal/http", "internal/app"}},
	{"internal/platform/", []string{"internal/domain", "internal/data/", "internal/analytics", "internal/services", "internal/http", "internal/app"}},
	{"internal/domain", []string{"internal/data/", "internal/analytics", "internal/services", "internal/http", "internal/app", "internal/clients/"}},
	{"internal/analytics", []string{"internal/data/", "internal/services", "internal/http", "internal/app", "internal/clients/", "internal/platform/"}},
	{"internal/data/", []string{"internal/analytics", "internal/services", "internal/http", "internal/app", "internal/clients/"}},
	{"internal/services", []string{"internal/http", "internal/app"}},
	{"internal/http", []string{"internal/data/", "internal/clients/", "internal/app"}},
}

type importRef struct {
	file string
	imp  string
}

func TestImportBoundaries(t *testing.T) {
	root, modulePath := moduleRoot(t)

	var b strings.Builder
	for _, ref := range internalImports(t, root, modulePath) {
		if strings.HasSuffix(ref.file, "_test.go") {
			continue
		}
		for _, l := range layers {
			if !strings.HasPrefix(ref.file, l.prefix) {
				continue
			}
			for _, bad := range l.banned {
				if strings.HasPrefix(ref.imp, bad) {
					fmt.Fprintf(&b, "- %s imports %q (disallowed: %q)\n", ref.file, ref.imp, bad)
				}
			}
		}
	}
	if b.Len() > 0 {
		t.Fatalf("import boundary violations:\n%s", b.String())
	}
}

// External clients are constructed in internal/app and consumed by services
// through their interfaces.
func TestClientsOnlyImportedByAppAndServices(t *testing.T) {
	root, modulePath := moduleRoot(t)

	var b strings.Builder
	for _, ref := range internalImports(t, root, modulePath) {
		if !strings.HasPrefix(ref.imp, "internal/clients/") {
			continue
		}
		switch {
		case strings.HasPrefix(ref.file, "internal/clients/"),
			strings.HasPrefix(ref.file, "internal/app/"),
			strings.HasPrefix(ref.file, "internal/services/"):
			continue
		}
		fmt.Fprintf(&b, "- %s imports %q\n", ref.file, ref.imp)
	}
	if b.Len() > 0 {
		t.Fatalf("internal/clients imported outside app and services:\n%s", b.String())
	}
}

func TestAnalyticsStaysPure(t *testing.T) {
	root, _ := moduleRoot(t)
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, filepath.Join(root, "internal", "analytics"), func(fi fs.FileInfo) bool {
		return !strings.HasSuffix(fi.Name(), "_test.go")
	}, parser.ImportsOnly)
	if err != nil {
		t.Fatalf("parse analytics: %v", err)
	}
	for _, pkg := range pkgs {
		for name, f := range pkg.Files {
			for _, spec := range f.Imports {
				imp, _ := strconv.Unquote(spec.Path.Value)
				if imp == "gorm.io/gorm" || imp == "database/sql" || strings.HasPrefix(imp, "github.com/redis/") {
					t.Errorf("%s imports %q; analytics must work on already-loaded rows", filepath.Base(name), imp)
				}
			}
		}
	}
}

// internalImports returns every module-internal import under internal/, with
// both paths relative to the module root.
func internalImports(t *testing.T, root, modulePath string) []importRef {
	t.Helper()
	fset := token.NewFileSet()
	var out []importRef
	err := filepath.WalkDir(filepath.Join(root, "internal"), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			return err
		}
		for _, spec := range f.Imports {
			imp, err := strconv.Unquote(spec.Path.Value)
			if err != nil || !strings.HasPrefix(imp, modulePath+"/") {
				continue
			}
			out = append(out, importRef{file: filepath.ToSlash(rel), imp: strings.TrimPrefix(imp, modulePath+"/")})
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk internal/: %v", err)
	}
	return out
}

func moduleRoot(t *testing.T) (string, string) {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatalf("go.mod not found")
		}
		dir = parent
	}
	mp, err := readModulePath(filepath.Join(dir, "go.mod"))
	if err != nil {
		t.Fatalf("read module path: %v", err)
	}
	return dir, mp
}

func readModulePath(goModPath string) (string, error) {
	f, err := os.Open(goModPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if mp, ok := strings.CutPrefix(line, "module "); ok {
			if mp = strings.TrimSpace(mp); mp != "" {
				return mp, nil
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("module path not found in %s", goModPath)
}
