// Package testenv locates a project's build root starting from the
// location of a piece of code and derives paths relative to that root.
// It is meant for test code that needs stable, working-directory
// independent paths into the repository tree, plus a few small probes
// for OS and environment details (WSL detection in particular).
package testenv

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
)

// MarkerFile is the build descriptor whose presence in a directory
// identifies the artifact root. Exactly one marker strategy is
// supported; the upward walk stops at the first ancestor containing it.
const MarkerFile = "go.mod"

// Locator resolves the artifact root once at construction and freezes
// it. All derivation methods are pure reads over the frozen root, so a
// Locator is safe to share between goroutines.
type Locator struct {
	artifactRoot string
}

// New resolves the artifact root by walking upward from the given start
// path. An explicit start path is the preferred anchor; use
// NewFromCaller or NewFromExecutable when the calling code's own
// location should anchor the search. If start names a regular file, the
// walk begins at its containing directory.
func New(start string) (*Locator, error) {
	if start == "" {
		return nil, locationResolutionError("empty start path", nil)
	}
	abs, err := filepath.Abs(start)
	if err != nil {
		return nil, locationResolutionError(start, err)
	}
	if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}
	return fromStart(abs)
}

// NewFromCaller resolves the artifact root from the source file of the
// caller, the closest Go analog to asking "where does the code invoking
// me live on disk".
func NewFromCaller() (*Locator, error) {
	_, file, _, ok := runtime.Caller(1)
	if !ok {
		return nil, locationResolutionError("caller frame unavailable", nil)
	}
	return fromStart(filepath.Dir(file))
}

// NewFromExecutable resolves the artifact root from the running binary.
// The executable is a single packaged file, so its containing directory
// is the search start point.
func NewFromExecutable() (*Locator, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, locationResolutionError("executable path unavailable", err)
	}
	if resolved, evalErr := filepath.EvalSymlinks(exe); evalErr == nil {
		exe = resolved
	}
	return fromStart(filepath.Dir(exe))
}

func fromStart(start string) (*Locator, error) {
	root, err := findArtifactRoot(start)
	if err != nil {
		return nil, err
	}
	return &Locator{artifactRoot: root}, nil
}

// findArtifactRoot walks upward from start until a directory contains
// the marker file. Reaching the filesystem root without a hit is a
// construction failure, not a fallback.
func findArtifactRoot(start string) (string, error) {
	dir := start
	for {
		marker := filepath.Join(dir, MarkerFile)
		if info, err := os.Stat(marker); err == nil && !info.IsDir() {
			log.Debug().Str("start", start).Str("root", dir).Msg("artifact root located")
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("%s: no %s in any ancestor of %s", rootNotFoundPrefix, MarkerFile, start))
		}
		dir = parent
	}
}

// ArtifactRoot returns the discovered build root.
func (l *Locator) ArtifactRoot() string {
	return l.artifactRoot
}

// RelativeToArtifact joins the given segments onto the artifact root,
// left to right. Zero segments returns the root unchanged. The result
// is purely syntactic; no existence check is performed.
func (l *Locator) RelativeToArtifact(segments ...string) string {
	return Relativize(l.artifactRoot, segments...)
}

// RelativeToArtifactParent joins the given segments onto the parent of
// the artifact root. A marker-bearing directory sitting at the
// filesystem root has no parent and yields an error.
func (l *Locator) RelativeToArtifactParent(segments ...string) (string, error) {
	parent := filepath.Dir(l.artifactRoot)
	if parent == l.artifactRoot {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("%s: %s", noParentPrefix, l.artifactRoot))
	}
	return Relativize(parent, segments...), nil
}

// Relativize joins segments onto an arbitrary base path, left to right.
// Zero segments returns base unchanged.
func Relativize(base string, segments ...string) string {
	if len(segments) == 0 {
		return base
	}
	return filepath.Join(append([]string{base}, segments...)...)
}

// Path constructs a path from string segments using the platform's
// path-joining semantics. It is not artifact-root relative.
func Path(first string, more ...string) string {
	return filepath.Join(append([]string{first}, more...)...)
}

func (l *Locator) String() string {
	return fmt.Sprintf("EnvironmentLocator{moduleRoot='%s'}", l.artifactRoot)
}
