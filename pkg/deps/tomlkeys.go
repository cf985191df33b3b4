package deps

import (
	"slices"

	"github.com/BurntSushi/toml"
)

// TOMLKeys returns the names of the direct children of the table at path,
// in the order they first appear in the document. Children only implied by
// a deeper header ([a.b.c] for path a) are included. Decoding into maps
// loses that order; parsers use this to report dependencies as declared.
func TOMLKeys(md toml.MetaData, path ...string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, k := range md.Keys() {
		if len(k) <= len(path) || !slices.Equal([]string(k[:len(path)]), path) {
			continue
		}
		name := k[len(path)]
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}
