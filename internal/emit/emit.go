// Package emit writes the generated .expr artifacts and detects drift
// between them and the word lists they were rendered from.
package emit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"kwset/internal/kwset"
)

// Status classifies one artifact after a run.
type Status uint8

const (
	// StatusWritten means the file was created or its content replaced.
	StatusWritten Status = iota
	// StatusUnchanged means the file already held the exact bytes; it was
	// not touched, so its mtime stays stable for build systems.
	StatusUnchanged
	// StatusOK is the check-mode sibling of StatusUnchanged.
	StatusOK
	// StatusStale means check mode found drifted content.
	StatusStale
	// StatusMissing means check mode found no file at all.
	StatusMissing
)

func (s Status) String() string {
	switch s {
	case StatusWritten:
		return "written"
	case StatusUnchanged:
		return "unchanged"
	case StatusOK:
		return "ok"
	case StatusStale:
		return "stale"
	case StatusMissing:
		return "missing"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Request describes one gen run.
type Request struct {
	// Dir receives the artifacts, one <op>.expr file per op.
	Dir string
	// Ops selects the sets to render, in output order.
	Ops []kwset.Op
	// Check switches to drift detection: nothing is written and stale or
	// missing artifacts turn into a DriftError.
	Check bool
}

// Result is the outcome for one artifact.
type Result struct {
	Op     kwset.Op
	Path   string
	Status Status
}

// DriftError reports artifacts whose on-disk content does not match what
// gen would write.
type DriftError struct {
	Paths []string
}

func (e *DriftError) Error() string {
	return fmt.Sprintf("artifacts out of date: %s (run kwset gen)", strings.Join(e.Paths, ", "))
}

// Run renders one artifact per requested op, comparing against what is
// already on disk. Files are processed concurrently; results come back in
// request order regardless. In check mode the returned error is a
// *DriftError when anything is stale or missing, and the results still
// describe every artifact so the caller can report them individually.
func Run(ctx context.Context, req Request) ([]Result, error) {
	// Индексы уникальны для каждой горутины, мьютекс не нужен.
	results := make([]Result, len(req.Ops))

	g, gctx := errgroup.WithContext(ctx)
	for i, op := range req.Ops {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			path := filepath.Join(req.Dir, op.String()+".expr")
			res, err := emitOne(path, op, req.Check)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if req.Check {
		var drifted []string
		for _, r := range results {
			if r.Status == StatusStale || r.Status == StatusMissing {
				drifted = append(drifted, r.Path)
			}
		}
		if len(drifted) > 0 {
			return results, &DriftError{Paths: drifted}
		}
	}
	return results, nil
}

func emitOne(path string, op kwset.Op, check bool) (Result, error) {
	var want bytes.Buffer
	if err := kwset.Render(&want, kwset.Compute(op), kwset.Expr); err != nil {
		return Result{}, fmt.Errorf("failed to render %v: %w", op, err)
	}

	current, err := os.ReadFile(path)
	exists := err == nil
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Result{}, fmt.Errorf("failed to read %q: %w", path, err)
	}

	res := Result{Op: op, Path: path}
	upToDate := exists && bytes.Equal(current, want.Bytes())

	if check {
		switch {
		case !exists:
			res.Status = StatusMissing
		case upToDate:
			res.Status = StatusOK
		default:
			res.Status = StatusStale
		}
		return res, nil
	}

	if upToDate {
		res.Status = StatusUnchanged
		return res, nil
	}
	if err := writeAtomic(path, want.Bytes()); err != nil {
		return Result{}, fmt.Errorf("failed to write %q: %w", path, err)
	}
	res.Status = StatusWritten
	return res, nil
}

// writeAtomic lands data under path via a temp file in the same directory,
// so readers never observe a half-written artifact.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".kwset-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	// Атомарная замена
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
