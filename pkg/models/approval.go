package models

// ApprovalDecisionRequest records a human decision on a pending gate
type ApprovalDecisionRequest struct {
	Decider string `json:"decider"`
	Comment string `json:"comment,omitempty"`
}
