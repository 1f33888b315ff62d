// Package testutil provides shared test helpers used across integration
// and unit test packages.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	testenv "go-testenv"
)

// RepoRoot returns the absolute path to the repository root, discovered
// by walking up from this file's location. It fails the test if
// discovery fails.
func RepoRoot(t *testing.T) string {
	t.Helper()
	locator, err := testenv.NewFromCaller()
	require.NoError(t, err)
	return locator.ArtifactRoot()
}
