package main

import (
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Layering rules enforced here:
//   - domain and application never import adapters or platform packages;
//   - the shared kernel (janus/internal/shared) is importable from any layer;
//   - cross-context imports are forbidden, except another context's
//     domain/valueobjects (sessions reuses the directory's auth provider
//     enum rather than duplicating it).

type violation struct {
	File   string
	Line   int
	Import string
	Rule   string
}

func main() {
	violations := collectViolations("contexts")
	if len(violations) == 0 {
		fmt.Println("boundary checks passed")
		return
	}

	sort.Slice(violations, func(i, j int) bool {
		if violations[i].File == violations[j].File {
			if violations[i].Line == violations[j].Line {
				return violations[i].Import < violations[j].Import
			}
			return violations[i].Line < violations[j].Line
		}
		return violations[i].File < violations[j].File
	})

	fmt.Println("boundary violations found:")
	for _, v := range violations {
		fmt.Printf("- %s:%d imports %q (%s)\n", v.File, v.Line, v.Import, v.Rule)
	}
	os.Exit(1)
}

func collectViolations(root string) []violation {
	var violations []violation

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}

		normalized := filepath.ToSlash(path)
		parts := strings.Split(normalized, "/")
		if len(parts) < 4 || parts[0] != "contexts" {
			return nil
		}

		area := parts[1]
		contextName := parts[2]
		layer := parts[3]
		contextPrefix := fmt.Sprintf("janus/contexts/%s/%s", area, contextName)

		violations = append(violations, validateFile(path, normalized, layer, contextPrefix)...)
		return nil
	})

	return violations
}

func validateFile(path string, normalizedPath string, layer string, contextPrefix string) []violation {
	var violations []violation

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
	if err != nil {
		return append(violations, violation{
			File: normalizedPath,
			Line: 1,
			Rule: "file must parse",
		})
	}

	for _, imp := range file.Imports {
		importPath := strings.Trim(imp.Path.Value, "\"")
		line := fset.Position(imp.Pos()).Line

		if strings.HasPrefix(importPath, "janus/contexts/") && !hasPrefix(importPath, contextPrefix) {
			if !strings.HasSuffix(importPath, "/domain/valueobjects") {
				violations = append(violations, violation{
					File:   normalizedPath,
					Line:   line,
					Import: importPath,
					Rule:   "cross-context imports are limited to domain/valueobjects",
				})
			}
		}

		switch layer {
		case "domain":
			violations = append(violations, validateInnerImport(normalizedPath, line, importPath, contextPrefix, "domain")...)
		case "application":
			violations = append(violations, validateInnerImport(normalizedPath, line, importPath, contextPrefix, "application")...)
		}
	}

	return violations
}

func validateInnerImport(file string, line int, importPath string, contextPrefix string, layer string) []violation {
	var violations []violation

	if strings.Contains(importPath, "/adapters/") {
		violations = append(violations, violation{
			File:   file,
			Line:   line,
			Import: importPath,
			Rule:   layer + " must not import adapters",
		})
	}

	if strings.HasPrefix(importPath, "janus/internal/platform/") || strings.HasPrefix(importPath, "janus/internal/app/") {
		violations = append(violations, violation{
			File:   file,
			Line:   line,
			Import: importPath,
			Rule:   layer + " must not import runtime infrastructure",
		})
	}

	allowed := []string{
		contextPrefix + "/domain",
		"janus/internal/shared",
	}
	if layer == "application" {
		allowed = append(allowed,
			contextPrefix+"/application",
			contextPrefix+"/ports",
		)
	}
	if strings.HasPrefix(importPath, "janus/contexts/") && strings.HasSuffix(importPath, "/domain/valueobjects") {
		// Cross-context valueobject reuse, checked above.
		return violations
	}
	if !isStdlib(importPath) && !isAllowed(importPath, allowed) {
		violations = append(violations, violation{
			File:   file,
			Line:   line,
			Import: importPath,
			Rule:   layer + " import is outside explicit allowlist",
		})
	}

	return violations
}

func hasPrefix(path string, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

func isAllowed(importPath string, allowedPrefixes []string) bool {
	for _, p := range allowedPrefixes {
		if hasPrefix(importPath, p) {
			return true
		}
	}
	return false
}

func isStdlib(importPath string) bool {
	if strings.HasPrefix(importPath, "janus/") {
		return false
	}
	first := importPath
	if idx := strings.Index(first, "/"); idx != -1 {
		first = first[:idx]
	}
	return !strings.Contains(first, ".")
}
