package deps

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/matzehuels/depup/pkg/version"
)

// JSONEntry is a string member of a dependency object in a JSON manifest.
type JSONEntry struct {
	Section string // "devDependencies"
	Name    string
	Value   string
	Start   int // offset of the opening quote of the value
	End     int // offset just past the closing quote
}

// ScanJSONSections returns the string members of the named top-level
// objects in file order, with the byte range of each value. Members with
// non-string values are skipped.
func ScanJSONSections(content string, sections ...string) ([]JSONEntry, error) {
	data := []byte(content)
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}
	if _, ok := probe.(map[string]any); !ok {
		return nil, fmt.Errorf("top-level value is not an object")
	}

	want := make(map[string]bool, len(sections))
	for _, s := range sections {
		want[s] = true
	}

	top, err := jsonMembers(data, 0)
	if err != nil {
		return nil, err
	}
	var out []JSONEntry
	for _, sec := range top {
		if !want[sec.key] || !bytes.HasPrefix(sec.raw, []byte("{")) {
			continue
		}
		inner, err := jsonMembers(sec.raw, sec.start)
		if err != nil {
			return nil, err
		}
		for _, m := range inner {
			var v string
			if json.Unmarshal(m.raw, &v) != nil {
				continue
			}
			out = append(out, JSONEntry{Section: sec.key, Name: m.key, Value: v, Start: m.start, End: m.end})
		}
	}
	return out, nil
}

// UpdateJSON rewrites the first entry named pkg whose value parse accepts.
// Only the quoted value changes.
func UpdateJSON(path, content, pkg, newVersion string, parse version.Parser, sections ...string) (string, error) {
	entries, err := ScanJSONSections(content, sections...)
	if err != nil {
		return "", ParseError("JSON", path, err)
	}
	for _, e := range entries {
		if e.Name != pkg {
			continue
		}
		spec, ok := parse(e.Value)
		if !ok {
			continue
		}
		return content[:e.Start] + strconv.Quote(FormatVersion(spec, newVersion)) + content[e.End:], nil
	}
	return "", ErrNotUpdated(path, pkg)
}

type jsonMember struct {
	key        string
	raw        json.RawMessage
	start, end int
}

// jsonMembers lists the members of the object in data. base is the offset of
// data within the whole document.
func jsonMembers(data []byte, base int) ([]jsonMember, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	var out []jsonMember
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		end := base + int(dec.InputOffset())
		out = append(out, jsonMember{key: key, raw: raw, start: end - len(raw), end: end})
	}
	return out, nil
}
