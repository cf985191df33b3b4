package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/matzehuels/depup/pkg/errors"
	"github.com/matzehuels/depup/pkg/observability"
	"github.com/matzehuels/depup/pkg/update"
)

// write applies the updates of p one by one to the evolving text and, unless
// dryRun, replaces the file. An update the writer rejects is downgraded to a
// WriteFailed skip and the rest still apply. If the file itself cannot be
// written, every applied update is downgraded too, so the summary never
// counts a version that is not on disk.
func (r *Runner) write(ctx context.Context, p *parsed, dryRun bool, res *Result) {
	change := FileChange{Path: p.manifest.Path, Before: p.content, After: p.content}
	var applied []int

	for i, u := range p.result.Results {
		if !u.IsUpdate() {
			continue
		}
		out, err := p.parser.Update(p.manifest.Path, change.After, u.Dependency.Name, u.NewVersion)
		if err != nil {
			change.Failed++
			p.result.Results[i] = update.Skip(u.Dependency, update.WriteFailed(errors.UserMessage(err)))
			res.Errors = append(res.Errors, RunError{
				Kind:    KindWrite,
				Subject: p.manifest.Path,
				Err:     errors.New(errors.GetCode(err), "Failed to update %s: %s", u.Dependency.Name, errors.UserMessage(err)),
			})
			continue
		}
		change.After = out
		change.Applied++
		applied = append(applied, i)
	}

	var err error
	if change.Applied > 0 && !dryRun {
		if err = WriteFileAtomic(change.Path, []byte(change.After)); err != nil {
			res.Errors = append(res.Errors, RunError{Kind: KindWrite, Subject: change.Path, Err: err})
			for _, i := range applied {
				p.result.Results[i] = update.Skip(p.result.Results[i].Dependency, update.WriteFailed(errors.UserMessage(err)))
			}
			change.Failed += change.Applied
			change.Applied = 0
			change.After = change.Before
		} else {
			change.Written = true
		}
	}
	observability.Update().OnWrite(ctx, change.Path, change.Applied, err)
	r.Logger.Info("wrote manifest", "path", change.Path, "applied", change.Applied, "failed", change.Failed, "dry_run", dryRun)

	res.Changes = append(res.Changes, change)
}

// WriteFileAtomic replaces path with data. The data goes to a uniquely named
// temporary file in the same directory, which is then renamed over path, so
// readers see either the old or the new content. The file mode is kept.
func WriteFileAtomic(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, mode); err != nil {
		_ = os.Remove(tmp)
		return writeError(path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return writeError(path, err)
	}
	return nil
}

func writeError(path string, err error) error {
	if os.IsPermission(err) {
		return errors.New(errors.ErrCodePermissionDenied, "permission denied: %s", path)
	}
	return errors.New(errors.ErrCodeManifestWrite, "failed to write %s: %v", path, err)
}
