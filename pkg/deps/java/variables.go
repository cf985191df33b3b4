package java

import (
	"regexp"
	"strings"
)

// variable is a version defined once and referenced by name from
// dependency declarations.
type variable struct {
	value string
	// start and end are the byte offsets of value in the build script.
	start, end int
}

const quoted = `\s*=\s*(?:'([^'\n]+)'|"([^"\n]+)")`

var (
	groovyDef = regexp.MustCompile(`^\s*def\s+(\w+)` + quoted)
	kotlinVal = regexp.MustCompile(`^\s*val\s+(\w+)\s*(?::\s*String\s*)?=\s*"([^"\n]+)"`)
	extDotted = regexp.MustCompile(`^\s*(?:project\.)?ext\.(\w+)` + quoted)
	extEntry  = regexp.MustCompile(`^\s*(\w+)` + quoted)
	extStart  = regexp.MustCompile(`^\s*ext\s*\{`)
)

// extractVariables collects def, val and ext definitions with the position
// of their value. A later definition of the same name wins.
func extractVariables(content string) map[string]variable {
	vars := make(map[string]variable)
	inExt, depth := false, 0

	forEachLine(content, func(line string, offset int) {
		trimmed := strings.TrimSpace(line)
		if extStart.MatchString(trimmed) {
			inExt, depth = true, 1
			if strings.Contains(trimmed, "}") {
				inExt, depth = false, 0
			}
			return
		}
		if inExt {
			depth += strings.Count(trimmed, "{") - strings.Count(trimmed, "}")
			if depth <= 0 {
				inExt, depth = false, 0
			}
		}

		define := func(m []int, ext bool) {
			name := line[m[2]:m[3]]
			if ext && !isVersionName(name) {
				return
			}
			for g := 2; 2*g+1 < len(m); g++ {
				if m[2*g] >= 0 {
					vars[name] = variable{
						value: line[m[2*g]:m[2*g+1]],
						start: offset + m[2*g],
						end:   offset + m[2*g+1],
					}
					return
				}
			}
		}

		switch {
		case groovyDef.MatchString(line):
			define(groovyDef.FindStringSubmatchIndex(line), false)
		case kotlinVal.MatchString(line):
			define(kotlinVal.FindStringSubmatchIndex(line), false)
		case extDotted.MatchString(line):
			define(extDotted.FindStringSubmatchIndex(line), true)
		case inExt && extEntry.MatchString(line):
			define(extEntry.FindStringSubmatchIndex(line), true)
		}
	})
	return vars
}

// isVersionName filters out ext entries that configure the build rather
// than pin a version, such as sourceCompatibility or encoding.
func isVersionName(name string) bool {
	return !strings.HasPrefix(name, "source") && !strings.HasPrefix(name, "target") && name != "encoding"
}

// forEachLine calls fn for every line that is not blank or a comment,
// together with the line's byte offset in content.
func forEachLine(content string, fn func(line string, offset int)) {
	inBlock := false
	offset := 0
	for offset <= len(content) {
		end := strings.IndexByte(content[offset:], '\n')
		if end < 0 {
			end = len(content) - offset
		}
		line := content[offset : offset+end]
		trimmed := strings.TrimSpace(line)

		switch {
		case inBlock:
			if strings.Contains(trimmed, "*/") {
				inBlock = false
			}
		case strings.HasPrefix(trimmed, "/*"):
			inBlock = !strings.Contains(trimmed, "*/")
		case trimmed == "" || strings.HasPrefix(trimmed, "//"):
		default:
			fn(line, offset)
		}
		offset += end + 1
	}
}
