package testenv

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Message prefixes identify the failure kind; the errbuilder code alone
// is not enough to distinguish them from other errors sharing a code.
const (
	locationResolutionPrefix = "could not resolve code location"
	rootNotFoundPrefix       = "build root not found"
	noParentPrefix           = "artifact root has no parent"
)

func locationResolutionError(detail string, cause error) error {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(fmt.Sprintf("%s: %s", locationResolutionPrefix, detail))
	if cause != nil {
		builder = builder.WithCause(cause)
	}
	return builder
}

// IsLocationResolutionError reports whether err means the on-disk
// location of the reference code could not be determined.
func IsLocationResolutionError(err error) bool {
	return errbuilder.CodeOf(err) == errbuilder.CodeInternal &&
		hasMsgPrefix(err, locationResolutionPrefix)
}

// IsRootNotFoundError reports whether err means the upward walk
// exhausted all ancestors without finding the marker file.
func IsRootNotFoundError(err error) bool {
	return errbuilder.CodeOf(err) == errbuilder.CodeNotFound &&
		hasMsgPrefix(err, rootNotFoundPrefix)
}

// IsNoParentError reports whether err means a parent-relative operation
// was invoked on an artifact root with no parent directory.
func IsNoParentError(err error) bool {
	return errbuilder.CodeOf(err) == errbuilder.CodeFailedPrecondition &&
		hasMsgPrefix(err, noParentPrefix)
}

func hasMsgPrefix(err error, prefix string) bool {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) {
		return strings.HasPrefix(builder.Msg, prefix)
	}
	return err != nil && strings.HasPrefix(err.Error(), prefix)
}
