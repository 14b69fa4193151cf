// Package publish commits a rendered tree into place atomically via a
// stage-then-rename protocol.
package publish

import (
	"fmt"
	"os"
)

// Transaction owns a staging directory from Begin until Commit or Discard.
//
// The usual shape is:
//
//	txn, err := publish.Begin(generated, live, link)
//	defer txn.Discard()
//	... render into txn.Stage() ...
//	return txn.Commit()
//
// Discard after a successful Commit is a no-op, so the deferred call only
// cleans up when the pipeline bails out early.
type Transaction struct {
	stage string
	live  string
	link  string
	done  bool
}

// Begin creates a fresh uniquely-named staging directory inside
// generatedDir.
func Begin(generatedDir, liveDir, currentLink string) (*Transaction, error) {
	if err := os.MkdirAll(generatedDir, 0o755); err != nil {
		return nil, fmt.Errorf("create generated dir: %w", err)
	}

	stage, err := os.MkdirTemp(generatedDir, ".stage.")
	if err != nil {
		return nil, fmt.Errorf("create staging dir: %w", err)
	}

	return &Transaction{stage: stage, live: liveDir, link: currentLink}, nil
}

// Stage is the path callers write rendered files into.
func (t *Transaction) Stage() string {
	return t.stage
}

// Commit atomically replaces the live tree with the staged tree, then
// points the convenience symlink at it.
//
// Once Commit starts, the staging directory is off-limits to Discard: if
// the rename or a later step fails, the staged content is deliberately left
// on disk rather than deleted.
func (t *Transaction) Commit() error {
	t.done = true

	// Remove the old live tree if anything is there.
	if _, err := os.Lstat(t.live); err == nil {
		if err := RemoveAny(t.live); err != nil {
			return fmt.Errorf("remove stale live dir: %w", err)
		}
	}

	// Atomic swap: stage and live share a parent on the same filesystem.
	if err := os.Rename(t.stage, t.live); err != nil {
		return fmt.Errorf("rename stage onto live: %w", err)
	}

	if err := ForceSymlink(t.live, t.link); err != nil {
		return fmt.Errorf("update current symlink: %w", err)
	}
	return nil
}

// Discard deletes the staging directory and everything in it. Safe to call
// any number of times and after Commit.
func (t *Transaction) Discard() {
	if t.done {
		return
	}
	t.done = true
	_ = os.RemoveAll(t.stage)
}
