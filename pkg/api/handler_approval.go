package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forgeworks/metabuild/ent/approvalgate"
	"github.com/forgeworks/metabuild/pkg/models"
)

func (s *Server) listApprovals(c *gin.Context) {
	gates, err := s.approvals.ListByRun(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"approvals": gates})
}

func (s *Server) approveGate(c *gin.Context) {
	s.decideGate(c, approvalgate.DecisionApproved)
}

func (s *Server) rejectGate(c *gin.Context) {
	s.decideGate(c, approvalgate.DecisionRejected)
}

// decideGate records the human decision on a gate. The compare-and-set in
// the service layer makes concurrent deciders race safely: exactly one
// wins, the rest get a conflict. The decision is also appended to the
// run's timeline so the audit trail carries any comment.
func (s *Server) decideGate(c *gin.Context, decision approvalgate.Decision) {
	gateID := c.Param("id")

	var req models.ApprovalDecisionRequest
	// Body is optional; the proxy identity backs an empty decider.
	_ = c.ShouldBindJSON(&req)
	decider := req.Decider
	if decider == "" {
		decider = extractAuthor(c)
	}

	ctx := c.Request.Context()
	gate, err := s.approvals.Decide(ctx, gateID, decision, decider)
	if err != nil {
		respondError(c, err)
		return
	}

	details := map[string]interface{}{
		"gate_id":  gate.ID,
		"decision": string(decision),
		"decider":  decider,
	}
	if req.Comment != "" {
		details["comment"] = req.Comment
	}
	if _, err := s.timeline.Append(ctx, gate.Tenant, gate.RunID, "approval.decided",
		"gate "+string(decision)+" by "+decider, "", details); err != nil {
		respondError(c, err)
		return
	}

	s.wake()
	c.JSON(http.StatusOK, gate)
}
