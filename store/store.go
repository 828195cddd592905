// Package store persists complete game snapshots as single opaque units.
// The rules engine itself does no I/O; these collaborators write and read
// the state tree it exposes.
package store

import (
	"context"

	"conquest/game"
)

// SnapshotStore saves and loads a full game snapshot as one unit. Load
// reports ok=false when no snapshot exists, leaving the caller's state
// unchanged; versioning and partial loads are out of scope.
type SnapshotStore interface {
	Save(ctx context.Context, snap game.Snapshot) error
	Load(ctx context.Context) (snap game.Snapshot, ok bool, err error)
}
