package testenv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMarker(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, MarkerFile), []byte("module fixture\n"), 0644))
}

func TestNewFindsNearestAncestorWithMarker(t *testing.T) {
	// Mirrors the typical layout: the build output directory sits two
	// levels below the module root, and an outer super-project root
	// carries its own marker that must not win.
	proj := t.TempDir()
	moduleA := filepath.Join(proj, "module-a")
	classes := filepath.Join(moduleA, "target", "classes")
	require.NoError(t, os.MkdirAll(classes, 0755))
	writeMarker(t, proj)
	writeMarker(t, moduleA)

	locator, err := New(classes)
	require.NoError(t, err)
	assert.Equal(t, moduleA, locator.ArtifactRoot())
}

func TestNewMarkerInStartDirItself(t *testing.T) {
	root := t.TempDir()
	writeMarker(t, root)

	locator, err := New(root)
	require.NoError(t, err)
	assert.Equal(t, root, locator.ArtifactRoot())
}

func TestNewStartIsRegularFile(t *testing.T) {
	// A packaged single file anchors the search at its containing
	// directory.
	root := t.TempDir()
	writeMarker(t, root)
	archive := filepath.Join(root, "dist", "app.tar")
	require.NoError(t, os.MkdirAll(filepath.Dir(archive), 0755))
	require.NoError(t, os.WriteFile(archive, []byte("payload"), 0644))

	locator, err := New(archive)
	require.NoError(t, err)
	assert.Equal(t, root, locator.ArtifactRoot())
}

func TestNewNoMarkerInAnyAncestor(t *testing.T) {
	start := t.TempDir()

	_, err := New(start)
	require.Error(t, err)
	assert.True(t, IsRootNotFoundError(err))
	assert.Contains(t, err.Error(), start)
}

func TestNewEmptyStart(t *testing.T) {
	_, err := New("")
	require.Error(t, err)
	assert.True(t, IsLocationResolutionError(err))
}

func TestNewFromCaller(t *testing.T) {
	locator, err := NewFromCaller()
	require.NoError(t, err)
	marker := filepath.Join(locator.ArtifactRoot(), MarkerFile)
	_, statErr := os.Stat(marker)
	assert.NoError(t, statErr)
}

func TestNewFromExecutable(t *testing.T) {
	// The test binary lives in a build cache directory, so both
	// outcomes are legitimate depending on the host layout.
	locator, err := NewFromExecutable()
	if err != nil {
		assert.True(t, IsRootNotFoundError(err) || IsLocationResolutionError(err))
		return
	}
	marker := filepath.Join(locator.ArtifactRoot(), MarkerFile)
	_, statErr := os.Stat(marker)
	assert.NoError(t, statErr)
}

func TestRelativeToArtifactZeroSegmentsIsIdentity(t *testing.T) {
	root := t.TempDir()
	writeMarker(t, root)
	locator, err := New(root)
	require.NoError(t, err)

	assert.Equal(t, locator.ArtifactRoot(), locator.RelativeToArtifact())
}

func TestRelativeToArtifactSequentialJoin(t *testing.T) {
	root := t.TempDir()
	writeMarker(t, root)
	locator, err := New(root)
	require.NoError(t, err)

	joined := locator.RelativeToArtifact("a", "b")
	stepwise := filepath.Join(locator.RelativeToArtifact("a"), "b")
	assert.Equal(t, stepwise, joined)
	assert.Equal(t, filepath.Join(root, "a", "b"), joined)
}

func TestRelativeToArtifactParent(t *testing.T) {
	proj := t.TempDir()
	moduleA := filepath.Join(proj, "module-a")
	require.NoError(t, os.MkdirAll(moduleA, 0755))
	writeMarker(t, moduleA)
	locator, err := New(moduleA)
	require.NoError(t, err)

	got, err := locator.RelativeToArtifactParent("module-b")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(proj, "module-b"), got)

	// Parent-relative derivation agrees with the free-function join.
	want := Relativize(filepath.Dir(locator.ArtifactRoot()), "module-b")
	assert.Equal(t, want, got)
}

func TestRelativeToArtifactParentAtFilesystemRoot(t *testing.T) {
	locator := &Locator{artifactRoot: string(filepath.Separator)}

	_, err := locator.RelativeToArtifactParent("anything")
	require.Error(t, err)
	assert.True(t, IsNoParentError(err))
}

func TestRelativize(t *testing.T) {
	base := filepath.Join("proj", "module-a")
	assert.Equal(t, base, Relativize(base))
	assert.Equal(t, filepath.Join(base, "src", "main"), Relativize(base, "src", "main"))
}

func TestPath(t *testing.T) {
	assert.Equal(t, filepath.Join("a", "b", "c"), Path("a", "b", "c"))
	assert.Equal(t, "a", Path("a"))
}

func TestStringRendering(t *testing.T) {
	root := t.TempDir()
	writeMarker(t, root)
	locator, err := New(root)
	require.NoError(t, err)

	assert.Equal(t, "EnvironmentLocator{moduleRoot='"+root+"'}", locator.String())
}
