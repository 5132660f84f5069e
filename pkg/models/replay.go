package models

import (
	"time"
)

// ReplayBundleResponse is the API view of a run's replay bundle reference
type ReplayBundleResponse struct {
	RunID      string    `json:"run_id"`
	BundleHash string    `json:"bundle_hash"`
	StorageRef string    `json:"storage_ref"`
	ReplayedOK *bool     `json:"replayed_ok,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
