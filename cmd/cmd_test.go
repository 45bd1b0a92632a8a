package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_AcceptsAtMostOneArg(t *testing.T) {
	require.NoError(t, rootCmd.Args(rootCmd, nil))
	require.NoError(t, rootCmd.Args(rootCmd, []string{"myapp"}))
	assert.Error(t, rootCmd.Args(rootCmd, []string{"myapp", "extra"}))
}

func TestProjectName_FromArgument(t *testing.T) {
	assert.Equal(t, "myapp", projectName([]string{"  myapp  "}))
}
