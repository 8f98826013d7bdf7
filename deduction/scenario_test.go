package deduction

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProofScenarios(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			file, proof, err := LoadProofFile(path)
			require.NoError(t, err)
			require.NotNil(t, file.Valid, "scenario %s must state its expected outcome", file.Name)
			assert.Equal(t, *file.Valid, Check(proof))
		})
	}
}

func TestLoadProofRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "missing name",
			data: "rows:\n  - id: 1\n    formula: \"p\"\n    rule: premise\n",
		},
		{
			name: "no rows",
			data: "name: empty\n",
		},
		{
			name: "unknown field",
			data: "name: typo\nrow:\n  - id: 1\n",
		},
		{
			name: "formula without rule",
			data: "name: x\nrows:\n  - id: 1\n    formula: \"p\"\n",
		},
		{
			name: "row with neither formula nor box",
			data: "name: x\nrows:\n  - id: 1\n",
		},
		{
			name: "bad formula syntax",
			data: "name: x\nrows:\n  - id: 1\n    formula: \"p &\"\n    rule: premise\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := LoadProof([]byte(tc.data))
			require.Error(t, err)
		})
	}
}

func TestLoadProofFileMissing(t *testing.T) {
	_, _, err := LoadProofFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
