package server

import (
	"context"
	"net/http"

	nserrors "github.com/netsnap/netsnap/pkg/errors"
	"github.com/netsnap/netsnap/pkg/serializer"
	"github.com/netsnap/netsnap/pkg/snapshotter"
)

// Snapshotter captures a device state snapshot on demand.
type Snapshotter interface {
	Snapshot(ctx context.Context) (*snapshotter.Snapshot, error)
}

// handleSnapshot handles GET /v1/snapshot. Each request triggers a full
// capture run across the configured targets, bounded by the snapshot
// timeout.
func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, nserrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, nil)
		return
	}

	if s.snapshotter == nil {
		writeError(w, r, http.StatusServiceUnavailable, nserrors.ErrCodeUnavailable,
			"No snapshotter configured", false, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.config.SnapshotTimeout)
	defer cancel()

	snap, err := s.snapshotter.Snapshot(ctx)
	if err != nil {
		// the snapshot may still carry per-device detail worth returning
		writeError(w, r, http.StatusBadGateway, nserrors.ErrCodeUnavailable,
			err.Error(), true, deviceErrors(snap))
		return
	}

	serializer.RespondJSON(w, http.StatusOK, snap)
}

func deviceErrors(snap *snapshotter.Snapshot) map[string]any {
	if snap == nil {
		return nil
	}
	details := make(map[string]any)
	for _, dev := range snap.Devices {
		if dev != nil && dev.Error != "" {
			details[dev.Target] = dev.Error
		}
	}
	if len(details) == 0 {
		return nil
	}
	return details
}
