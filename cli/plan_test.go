package cli

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"kubesql/parser"
)

func TestWritePlanGolden(t *testing.T) {
	plan, err := parser.Parse(
		"SELECT a, b FROM c1, c2 WHERE deployment.metadata.name = 'x' AND pod.status.phase = 'Running' OR pod.status.phase = 'Pending'")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writePlan(&buf, plan))

	g := goldie.New(t)
	g.Assert(t, "plan_chain", buf.Bytes())
}
