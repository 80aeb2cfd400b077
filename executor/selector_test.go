package executor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kubesql/executor"
	"kubesql/parser"
	"kubesql/planner"
)

func TestCompileSelectorsSingleClause(t *testing.T) {
	queries := []planner.Query{
		{Kind: "pod", Field1: "status", Field2: "phase", Op: "=", Value: "Running"},
	}

	selectors, err := executor.CompileSelectors(queries, parser.ResourcePod)
	require.NoError(t, err)
	assert.Equal(t, []string{"status.phase=Running"}, selectors)
}

func TestCompileSelectorsFiltersByKind(t *testing.T) {
	queries := []planner.Query{
		{Kind: "deployment", Field1: "metadata", Field2: "name", Op: "=", Value: "x"},
		{ChainOp: planner.ChainAnd, Kind: "pod", Field1: "status", Field2: "phase", Op: "=", Value: "Running"},
	}

	selectors, err := executor.CompileSelectors(queries, parser.ResourceDeployment)
	require.NoError(t, err)
	assert.Equal(t, []string{"metadata.name=x"}, selectors)

	selectors, err = executor.CompileSelectors(queries, parser.ResourcePod)
	require.NoError(t, err)
	assert.Equal(t, []string{"status.phase=Running"}, selectors)
}

func TestCompileSelectorsAndJoins(t *testing.T) {
	queries := []planner.Query{
		{Kind: "pod", Field1: "status", Field2: "phase", Op: "=", Value: "Running"},
		{ChainOp: planner.ChainAnd, Kind: "pod", Field1: "spec", Field2: "nodeName", Op: "=", Value: "node-1"},
	}

	selectors, err := executor.CompileSelectors(queries, parser.ResourcePod)
	require.NoError(t, err)
	assert.Equal(t, []string{"status.phase=Running,spec.nodeName=node-1"}, selectors)
}

func TestCompileSelectorsOrSplits(t *testing.T) {
	queries := []planner.Query{
		{Kind: "pod", Field1: "status", Field2: "phase", Op: "=", Value: "Running"},
		{ChainOp: planner.ChainOr, Kind: "pod", Field1: "status", Field2: "phase", Op: "=", Value: "Pending"},
	}

	selectors, err := executor.CompileSelectors(queries, parser.ResourcePod)
	require.NoError(t, err)
	assert.Equal(t, []string{"status.phase=Running", "status.phase=Pending"}, selectors)
}

func TestCompileSelectorsNotEqual(t *testing.T) {
	queries := []planner.Query{
		{Kind: "pod", Field1: "status", Field2: "phase", Op: "!=", Value: "Succeeded"},
	}

	selectors, err := executor.CompileSelectors(queries, parser.ResourcePod)
	require.NoError(t, err)
	assert.Equal(t, []string{"status.phase!=Succeeded"}, selectors)
}

func TestCompileSelectorsUnsupportedOperator(t *testing.T) {
	queries := []planner.Query{
		{Kind: "pod", Field1: "status", Field2: "phase", Op: "<", Value: "x"},
	}

	_, err := executor.CompileSelectors(queries, parser.ResourcePod)
	assert.ErrorContains(t, err, "not supported operator")
}

func TestCompileSelectorsNoMatchingKind(t *testing.T) {
	queries := []planner.Query{
		{Kind: "pod", Field1: "status", Field2: "phase", Op: "=", Value: "Running"},
	}

	selectors, err := executor.CompileSelectors(queries, parser.ResourceService)
	require.NoError(t, err)
	assert.Empty(t, selectors)
}
