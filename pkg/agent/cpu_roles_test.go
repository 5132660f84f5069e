package agent

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/forgeworks/metabuild/ent/artifact"
	"github.com/forgeworks/metabuild/pkg/config"
	"github.com/forgeworks/metabuild/pkg/evaluator"
	"github.com/forgeworks/metabuild/pkg/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDiff = `--- a/internal/api/server.go
+++ b/internal/api/server.go
@@ -1,3 +1,6 @@
 package api
+func NewServer(addr string) *Server {
+	return &Server{addr: addr}
+}
--- /dev/null
+++ b/migrations/0001_init.up.sql
@@ -0,0 +1,2 @@
+CREATE TABLE urls (id TEXT PRIMARY KEY);
+-- uses ${DB_HOST} at deploy time
`

func TestDiffPaths(t *testing.T) {
	paths := DiffPaths(sampleDiff)
	assert.Equal(t, []string{"internal/api/server.go", "migrations/0001_init.up.sql"}, paths)

	assert.False(t, HasBinaryHunks(sampleDiff))
	assert.True(t, HasBinaryHunks("Binary files a/x.png and b/x.png differ"))
}

func TestSecurityComplianceAnnotates(t *testing.T) {
	sec := NewSecurityCompliance()

	in := baseInput()
	in.Artifacts[ArtifactPlan] = []byte(`{"modules":[{"name":"checkout","purpose":"payment capture"}]}`)
	in.DomainTags = []string{"payments"}

	out, err := sec.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, artifact.KindPlan, out.Kind)
	assert.NotEmpty(t, out.ApprovalDemand)

	var annotated securityAnnotations
	require.NoError(t, json.Unmarshal(out.Payload, &annotated))
	assert.True(t, annotated.ApprovalRequired)
	assert.NotEmpty(t, annotated.Annotations)
}

func TestSecurityComplianceBenignPlan(t *testing.T) {
	sec := NewSecurityCompliance()

	in := baseInput()
	in.Artifacts[ArtifactPlan] = []byte(`{"modules":[{"name":"shortener"}]}`)

	out, err := sec.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Empty(t, out.ApprovalDemand)

	// Determinism: same input, same bytes.
	again, err := sec.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, out.Payload, again.Payload)
}

func TestQAEvaluatorScoresDiff(t *testing.T) {
	harness := evaluator.NewHarness(config.DefaultEvaluatorConfig(), tools.NewLocalKernel(nil), tools.Policy{})
	qa := NewQAEvaluator(harness, config.DefaultEvaluatorConfig())

	in := baseInput()
	in.Artifacts[ArtifactDiff] = []byte(sampleDiff)
	in.Acceptance = []map[string]interface{}{
		{"kind": "contains", "field": "diff", "value": "NewServer"},
		{"kind": "file_exists", "value": "migrations/0001_init.up.sql"},
	}

	out, err := qa.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, artifact.KindEvalReport, out.Kind)

	report, err := evaluator.ParseReport(out.Payload)
	require.NoError(t, err)
	assert.True(t, report.Passed)
	assert.Equal(t, 1.0, report.Score)
}

func TestQAEvaluatorRejectsMalformedAcceptance(t *testing.T) {
	harness := evaluator.NewHarness(config.DefaultEvaluatorConfig(), nil, tools.Policy{})
	qa := NewQAEvaluator(harness, config.DefaultEvaluatorConfig())

	in := baseInput()
	in.Artifacts[ArtifactDiff] = []byte(sampleDiff)
	in.Acceptance = []map[string]interface{}{{"field": "diff"}}

	_, err := qa.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, IsInvalidInput(err))
}

func TestDevOpsBundle(t *testing.T) {
	devops := NewDevOps()

	in := baseInput()
	in.Artifacts[ArtifactDiff] = []byte(sampleDiff)

	out, err := devops.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, artifact.KindBundleZip, out.Kind)

	var bundle devopsBundle
	require.NoError(t, json.Unmarshal(out.Payload, &bundle))
	assert.Equal(t, []string{"apply migrations/0001_init.up.sql"}, bundle.MigrationPlan)
	assert.Contains(t, bundle.EnvTemplate, "DB_HOST=")
	assert.Contains(t, bundle.CIBlock, "go test")
}

func TestReviewerPRBody(t *testing.T) {
	rev := NewReviewer()

	report := &evaluator.Report{Score: 0.97, Threshold: 0.95, Passed: true}
	reportPayload, err := report.Marshal()
	require.NoError(t, err)

	in := baseInput()
	in.Artifacts[ArtifactDiff] = []byte(sampleDiff)
	in.Artifacts[ArtifactEvalReport] = reportPayload
	in.Artifacts[ArtifactPlan] = []byte(`{"plan":{},"annotations":["includes schema migration: verify reversibility"],"approval_required":false}`)

	out, err := rev.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, artifact.KindPrBody, out.Kind)

	body := string(out.Payload)
	assert.Contains(t, body, "internal/api/server.go")
	assert.Contains(t, body, "0.970")
	assert.Contains(t, body, "## Risks")
}
