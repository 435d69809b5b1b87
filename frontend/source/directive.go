/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package source

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"

	"dirpx.dev/schemaid/apis"
)

const directivePrefix = "schemaid:"

// overridesOf reads the //schemaid: directives from the doc comments of
// the declaration of obj. Directives on the TypeSpec itself take precedence
// over directives on the enclosing GenDecl.
func overridesOf(pkgs []*packages.Package, obj *types.TypeName) apis.OverrideSet {
	pos := obj.Pos()
	for _, pkg := range pkgs {
		if pkg.Types != obj.Pkg() {
			continue
		}
		for _, file := range pkg.Syntax {
			if pos < file.FileStart || pos >= file.FileEnd {
				continue
			}
			return overridesAt(file, pos)
		}
	}
	return apis.OverrideSet{}
}

func overridesAt(file *ast.File, pos token.Pos) apis.OverrideSet {
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, s := range gd.Specs {
			ts, ok := s.(*ast.TypeSpec)
			if !ok || ts.Name.Pos() != pos {
				continue
			}
			o := parseGroup(ts.Doc)
			return o.Merge(parseGroup(gd.Doc))
		}
	}
	return apis.OverrideSet{}
}

// parseGroup extracts directives from a comment group. go/ast drops
// directive-style comments from CommentGroup.Text, so the raw comment
// list is scanned instead.
func parseGroup(cg *ast.CommentGroup) apis.OverrideSet {
	if cg == nil {
		return apis.OverrideSet{}
	}
	var b strings.Builder
	for _, c := range cg.List {
		b.WriteString(c.Text)
		b.WriteByte('\n')
	}
	return ParseDirectives(b.String())
}

// ParseDirectives extracts an override set from raw doc-comment text.
// Recognized directives, one per line:
//
//	//schemaid:name CustomName
//	//schemaid:namespace custom.namespace
//	//schemaid:erased
//
// A namespace directive with no argument forces an empty namespace.
// Unknown directives and ordinary comment lines are ignored.
func ParseDirectives(doc string) apis.OverrideSet {
	var out apis.OverrideSet
	for _, line := range strings.Split(doc, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "//")
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, directivePrefix) {
			continue
		}
		verb, arg, _ := strings.Cut(strings.TrimPrefix(line, directivePrefix), " ")
		arg = strings.TrimSpace(arg)
		switch verb {
		case "name":
			if arg != "" {
				out.Name = apis.Some(arg)
			}
		case "namespace":
			out.Namespace = apis.Some(arg)
		case "erased":
			out.Erased = true
		}
	}
	return out
}
