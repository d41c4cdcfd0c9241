// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gitfilter

package gitfilter

import (
	"os"
	"path/filepath"
	"strings"
)

// componentKind classifies one lexical path component.
type componentKind uint8

const (
	// componentPrefix is a volume name such as "C:" or `\\host\share`.
	componentPrefix componentKind = iota
	// componentRoot is the leading separator of an absolute path.
	componentRoot
	// componentCurDir is ".".
	componentCurDir
	// componentParentDir is "..".
	componentParentDir
	// componentNormal is any other name.
	componentNormal
)

// pathComponent is one lexical path component.
type pathComponent struct {
	// text is the component source; empty for componentRoot.
	text string
	// kind is the component kind.
	kind componentKind
}

// NormalizePath returns path with every host directory separator replaced by "/".
//
// Invalid UTF-8 sequences are replaced with U+FFFD instead of being rejected.
func NormalizePath(path string) string {
	path = strings.ToValidUTF8(path, "\uFFFD")

	i := indexForeignSeparator(path)
	if i < 0 {
		return path
	}

	b := []byte(path)
	for ; i < len(b); i++ {
		if b[i] != '/' && os.IsPathSeparator(b[i]) {
			b[i] = '/'
		}
	}

	return string(b)
}

// HasTrailingSeparator reports whether the last byte of path is a host directory separator.
func HasTrailingSeparator(path string) bool {
	return path != "" && os.IsPathSeparator(path[len(path)-1])
}

// IsEmptyPath reports whether path is the zero-length path.
func IsEmptyPath(path string) bool {
	return path == ""
}

// Dedot lexically resolves "." and ".." components without touching the filesystem.
//
// ".." never climbs above a root or volume prefix, and a ".." with nothing
// left to remove is dropped. Repeated separators collapse. The result uses
// the host separator.
func Dedot(path string) string {
	return dedotComponents(splitComponents(path))
}

// DedotFrom is Dedot of path joined onto base. An absolute path ignores base.
func DedotFrom(path string, base string) string {
	if filepath.IsAbs(path) {
		return Dedot(path)
	}

	comps := splitComponents(base)
	comps = append(comps, splitComponents(path)...)
	return dedotComponents(comps)
}

// StripPrefix removes a literal byte prefix from path.
//
// Component boundaries are not respected: StripPrefix("foobar", "foo") is "bar".
func StripPrefix(path string, prefix string) (string, bool) {
	return strings.CutPrefix(path, prefix)
}

// indexForeignSeparator returns index of the first host separator other than "/", or -1.
func indexForeignSeparator(path string) int {
	for i := 0; i < len(path); i++ {
		if path[i] != '/' && os.IsPathSeparator(path[i]) {
			return i
		}
	}

	return -1
}

// splitComponents splits path into lexical components.
func splitComponents(path string) []pathComponent {
	comps := make([]pathComponent, 0, strings.Count(path, "/")+2)

	if vol := filepath.VolumeName(path); vol != "" {
		comps = append(comps, pathComponent{kind: componentPrefix, text: vol})
		path = path[len(vol):]
	}

	if path != "" && os.IsPathSeparator(path[0]) {
		comps = append(comps, pathComponent{kind: componentRoot})
	}

	start := 0
	for i := 0; i <= len(path); i++ {
		if i != len(path) && !os.IsPathSeparator(path[i]) {
			continue
		}

		if i > start {
			comps = append(comps, classifyComponent(path[start:i]))
		}

		start = i + 1
	}

	return comps
}

// classifyComponent returns component for one separator-free name.
func classifyComponent(name string) pathComponent {
	switch name {
	case ".":
		return pathComponent{kind: componentCurDir, text: name}
	case "..":
		return pathComponent{kind: componentParentDir, text: name}
	default:
		return pathComponent{kind: componentNormal, text: name}
	}
}

// dedotComponents resolves dots over an accumulator stack and renders the result.
func dedotComponents(comps []pathComponent) string {
	stack := make([]pathComponent, 0, len(comps))

	for _, c := range comps {
		switch c.kind {
		case componentPrefix:
			stack = append(stack[:0], c)
		case componentRoot:
			if onlyKinds(stack, componentPrefix) {
				stack = append(stack, c)
			} else {
				stack = append(stack[:0], c)
			}
		case componentCurDir:
		case componentParentDir:
			if !onlyKinds(stack, componentPrefix, componentRoot) {
				stack = stack[:len(stack)-1]
			}
		default:
			stack = append(stack, c)
		}
	}

	return joinComponents(stack)
}

// onlyKinds reports whether every component has one of kinds. Empty input reports true.
func onlyKinds(comps []pathComponent, kinds ...componentKind) bool {
	for _, c := range comps {
		found := false
		for _, k := range kinds {
			if c.kind == k {
				found = true
				break
			}
		}

		if !found {
			return false
		}
	}

	return true
}

// joinComponents renders components with the host separator.
func joinComponents(comps []pathComponent) string {
	var b strings.Builder
	needSep := false

	for _, c := range comps {
		switch c.kind {
		case componentPrefix:
			b.WriteString(c.text)
			// "C:" is followed directly by a name; UNC shares need a separator.
			needSep = !isDriveLetter(c.text)
		case componentRoot:
			b.WriteByte(filepath.Separator)
			needSep = false
		default:
			if needSep {
				b.WriteByte(filepath.Separator)
			}

			b.WriteString(c.text)
			needSep = true
		}
	}

	return b.String()
}

// isDriveLetter reports whether vol is a bare "X:" drive volume.
func isDriveLetter(vol string) bool {
	return len(vol) == 2 && vol[1] == ':'
}
