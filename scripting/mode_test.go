package scripting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseExecutionMode(t *testing.T) {
	tests := []struct {
		input    string
		expected ExecutionMode
		wantErr  bool
	}{
		{input: "ON_SINGLE_NODE", expected: OnSingleNode},
		{input: "on_selected_node", expected: OnSelectedNode},
		{input: " ExecutionMode.ON_SELECTED_NODE_RECURSIVELY ", expected: OnSelectedNodeRecursively},
		{input: "EVERYWHERE", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mode, err := ParseExecutionMode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}
}

func TestExecutionModeString(t *testing.T) {
	assert.Equal(t, "ON_SINGLE_NODE", OnSingleNode.String())
	assert.Equal(t, "ON_SELECTED_NODE", OnSelectedNode.String())
	assert.Equal(t, "ON_SELECTED_NODE_RECURSIVELY", OnSelectedNodeRecursively.String())
	assert.Equal(t, "ExecutionMode(7)", ExecutionMode(7).String())
}

func TestExecutionModeYAML(t *testing.T) {
	var modes []ExecutionMode
	require.NoError(t, yaml.Unmarshal([]byte("[ON_SELECTED_NODE, on_single_node]"), &modes))
	assert.Equal(t, []ExecutionMode{OnSelectedNode, OnSingleNode}, modes)

	out, err := yaml.Marshal(OnSelectedNodeRecursively)
	require.NoError(t, err)
	assert.Equal(t, "ON_SELECTED_NODE_RECURSIVELY\n", string(out))

	assert.Error(t, yaml.Unmarshal([]byte("[NOWHERE]"), &modes))
}
