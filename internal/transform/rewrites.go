package transform

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/modelconv/modelconv/pkg/modelconv"
)

// Rewrite is one named text substitution over a draft. Apply reports whether
// its anchor matched; an unmatched rewrite returns the text unchanged.
type Rewrite struct {
	Name  string
	Apply func(text string) (string, bool)
}

// Rewrite names, used in no-match warnings.
const (
	RewriteDefaultExport = "default-export"
	RewriteReactImport   = "react-import"
	RewriteMaterialTune  = "material-tuning"
	RewriteScenePaths    = "scene-paths"
)

const draftExport = "export function Model("

var reactDefaultImport = regexp.MustCompile(`import React from (['"])react(['"])`)

// anchorReturn is where the material tuning block is inserted.
const anchorReturn = "return ("

// MaterialTuningBlock is inserted before the component's first return.
const MaterialTuningBlock = `useMemo(() => {
        if (materials.material) {
            if (materials.material.normalMap) {
                materials.material.normalScale.set(0.5, 0.5);
            }
            materials.material.roughness = 0.5;
            materials.material.metalness = 0.8;
        }
    }, [materials]);

    `

// Pipeline returns the rewrites for one artifact in the order they must run.
func Pipeline(targetName, sourceFile string) []Rewrite {
	return []Rewrite{
		RenameDefaultExport(targetName),
		NamedReactImport(),
		InjectMaterialTuning(),
		ReplaceScenePaths(sourceFile),
	}
}

// Apply runs rewrites in order and returns the final text together with the
// names of rewrites whose anchor was absent.
func Apply(text string, rewrites []Rewrite) (string, []string) {
	var unmatched []string
	for _, rw := range rewrites {
		var ok bool
		text, ok = rw.Apply(text)
		if !ok {
			unmatched = append(unmatched, rw.Name)
		}
	}
	return text, unmatched
}

// RenameDefaultExport turns gltfjsx's `export function Model(` into the
// module's default export named after the target.
func RenameDefaultExport(targetName string) Rewrite {
	replacement := "export default function " + ComponentName(targetName) + "("
	return Rewrite{
		Name: RewriteDefaultExport,
		Apply: func(text string) (string, bool) {
			if !strings.Contains(text, draftExport) {
				return text, false
			}
			return strings.ReplaceAll(text, draftExport, replacement), true
		},
	}
}

// NamedReactImport replaces the default React import with the named imports
// the generated component uses.
func NamedReactImport() Rewrite {
	return Rewrite{
		Name: RewriteReactImport,
		Apply: func(text string) (string, bool) {
			if !reactDefaultImport.MatchString(text) {
				return text, false
			}
			return reactDefaultImport.ReplaceAllString(text, "import { JSX, useMemo } from ${1}react${2}"), true
		},
	}
}

// InjectMaterialTuning inserts MaterialTuningBlock before the first `return (`.
func InjectMaterialTuning() Rewrite {
	return Rewrite{
		Name: RewriteMaterialTune,
		Apply: func(text string) (string, bool) {
			idx := strings.Index(text, anchorReturn)
			if idx < 0 {
				return text, false
			}
			return text[:idx] + MaterialTuningBlock + text[idx:], true
		},
	}
}

// ReplaceScenePaths points every `'/scene.gltf'` and `'/scene.glb'` literal
// at the resolved source file, with forward slashes.
func ReplaceScenePaths(sourceFile string) Rewrite {
	quoted := "'" + strings.ReplaceAll(sourceFile, `\`, "/") + "'"
	literals := []string{
		"'/" + modelconv.PrimarySceneFile + "'",
		"'/" + modelconv.SecondarySceneFile + "'",
	}
	return Rewrite{
		Name: RewriteScenePaths,
		Apply: func(text string) (string, bool) {
			matched := false
			for _, lit := range literals {
				if strings.Contains(text, lit) {
					matched = true
					text = strings.ReplaceAll(text, lit, quoted)
				}
			}
			return text, matched
		},
	}
}

// ComponentName derives the exported function name for a target:
// "Car" -> "ModelCar", "Nested-Sub" -> "ModelNestedSub". Characters that
// cannot appear in an identifier split words; each word is capitalised.
func ComponentName(targetName string) string {
	var b strings.Builder
	b.WriteString("Model")

	words := strings.FieldsFunc(targetName, func(r rune) bool {
		return !isIdentRune(r)
	})
	for _, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(w[size:])
	}
	return b.String()
}

func isIdentRune(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
