package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestPlanCommand(t *testing.T) {
	out, err := execute(t, "plan", "SELECT a FROM c WHERE pod.status.phase = 'Running'")
	require.NoError(t, err)
	assert.Contains(t, out, "namespaces: a")
	assert.Contains(t, out, "contexts:   c")
	assert.Contains(t, out, "pod: status.phase=Running")
}

func TestPlanCommandRejectsWildcard(t *testing.T) {
	_, err := execute(t, "plan", "SELECT * FROM c WHERE pod.status.phase = 'Running'")
	assert.ErrorContains(t, err, "wildcard")
}

const kubeconfigYAML = `apiVersion: v1
kind: Config
current-context: prod-cluster
clusters:
- name: prod
  cluster:
    server: https://prod.example:6443
contexts:
- name: prod-cluster
  context:
    cluster: prod
    user: admin
users:
- name: admin
  user:
    token: secret
`

func TestContextsCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kubeconfig")
	require.NoError(t, os.WriteFile(path, []byte(kubeconfigYAML), 0o600))

	out, err := execute(t, "contexts", "--kubeconfig", path)
	require.NoError(t, err)
	assert.Equal(t, "prod-cluster\n", out)
}

func TestQueryCommandRejectsUnknownContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kubeconfig")
	require.NoError(t, os.WriteFile(path, []byte(kubeconfigYAML), 0o600))

	_, err := execute(t, "query", "--kubeconfig", path,
		"SELECT a FROM unknown-cluster WHERE pod.status.phase = 'Running'")
	assert.ErrorContains(t, err, "context not found")
}
