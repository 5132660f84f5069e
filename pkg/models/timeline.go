package models

import (
	"github.com/forgeworks/metabuild/ent"
)

// TimelineResponse contains the ordered event history of a run
type TimelineResponse struct {
	RunID  string               `json:"run_id"`
	Events []*ent.TimelineEvent `json:"events"`
}
