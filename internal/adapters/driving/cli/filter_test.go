package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterCmd_ByAxis(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"filter", "--axis", "federated_learning_ai"})
	defer func() {
		rootCmd.SetArgs(nil)
		filterAxis = ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Studies (1):")
	assert.Contains(t, buf.String(), "Rieke, N. et al.")
}

func TestFilterCmd_YearRange(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"filter", "--year-start", "2016", "--year-end", "2023"})
	defer func() {
		rootCmd.SetArgs(nil)
		filterYearStart = 0
		filterYearEnd = 0
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Studies (1):")
	assert.Contains(t, buf.String(), "federated learning")
}

func TestFilterCmd_RejectsUnknownAxis(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"filter", "--axis", "quantum"})
	defer func() {
		rootCmd.SetArgs(nil)
		filterAxis = ""
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
}

func TestFilterCmd_NoCriteriaListsAll(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"filter"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Studies (3):")
}
