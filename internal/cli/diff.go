package cli

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/sourcegraph/go-diff/diff"

	"github.com/matzehuels/depup/pkg/pipeline"
)

// diffContext is the number of unchanged lines around each change.
const diffContext = 3

// writeDiff prints a unified diff of every manifest that changed, followed
// by a count. Paths are relative to dir.
func writeDiff(w io.Writer, dir string, res *pipeline.Result) error {
	var files []*diff.FileDiff
	for _, ch := range res.Changes {
		if ch.Before == ch.After {
			continue
		}
		name := ch.Path
		if rel, err := filepath.Rel(dir, ch.Path); err == nil {
			name = rel
		}
		name = filepath.ToSlash(name)
		files = append(files, &diff.FileDiff{
			OrigName: "a/" + name,
			NewName:  "b/" + name,
			Hunks:    hunks(ch.Before, ch.After),
		})
	}

	if len(files) > 0 {
		out, err := diff.PrintMultiFileDiff(files)
		if err != nil {
			return err
		}
		if _, err := w.Write(out); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s# %d package(s) would be updated\n", dryRunPrefix(res.Summary.DryRun), res.Summary.TotalUpdates())
	return err
}

// hunks compares before and after line by line. Manifest edits only rewrite
// version literals, so both sides normally have the same line count; when
// they do not, the whole file becomes one hunk.
func hunks(before, after string) []*diff.Hunk {
	a, b := splitLines(before), splitLines(after)
	if len(a) != len(b) {
		return []*diff.Hunk{wholeFile(a, b)}
	}

	var changed []int
	for i := range a {
		if a[i] != b[i] {
			changed = append(changed, i)
		}
	}

	var out []*diff.Hunk
	for i := 0; i < len(changed); {
		start := max(changed[i]-diffContext, 0)
		end := changed[i]
		j := i
		// Merge changes whose context windows touch.
		for j+1 < len(changed) && changed[j+1]-end <= 2*diffContext+1 {
			j++
			end = changed[j]
		}
		end = min(end+diffContext, len(a)-1)

		var body bytes.Buffer
		for k := start; k <= end; k++ {
			if a[k] == b[k] {
				body.WriteString(" " + a[k] + "\n")
				continue
			}
			body.WriteString("-" + a[k] + "\n")
			body.WriteString("+" + b[k] + "\n")
		}
		n := int32(end - start + 1)
		out = append(out, &diff.Hunk{
			OrigStartLine: int32(start + 1),
			OrigLines:     n,
			NewStartLine:  int32(start + 1),
			NewLines:      n,
			Body:          body.Bytes(),
		})
		i = j + 1
	}
	return out
}

func wholeFile(a, b []string) *diff.Hunk {
	var body bytes.Buffer
	for _, l := range a {
		body.WriteString("-" + l + "\n")
	}
	for _, l := range b {
		body.WriteString("+" + l + "\n")
	}
	return &diff.Hunk{
		OrigStartLine: 1,
		OrigLines:     int32(len(a)),
		NewStartLine:  1,
		NewLines:      int32(len(b)),
		Body:          body.Bytes(),
	}
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
