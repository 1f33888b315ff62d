package testenv

import (
	"fmt"
	"io"
	"os"
	"runtime"
)

// Report is a point-in-time snapshot of the environment a Locator
// operates in, suitable for serialization and human inspection.
type Report struct {
	OS           string `yaml:"os"`
	WSL          bool   `yaml:"wsl"`
	ArtifactRoot string `yaml:"artifact_root"`
	UserHome     string `yaml:"user_home"`
}

// Report collects the OS name, WSL state, artifact root, and user home
// into a Report. A missing home directory is reported as empty rather
// than failing; the report is diagnostic output, not a contract.
func (l *Locator) Report() Report {
	home, err := UserHome()
	if err != nil {
		home = ""
	}
	return Report{
		OS:           runtime.GOOS,
		WSL:          IsWSL(),
		ArtifactRoot: l.artifactRoot,
		UserHome:     home,
	}
}

// Dump writes a fixed-format debug report to w: a header line, the OS
// info, the artifact root, and the user home. The format is for humans;
// stability across versions is not guaranteed.
func (l *Locator) Dump(w io.Writer) {
	report := l.Report()
	fmt.Fprintln(w, "=== go-testenv Debug Info ===")
	fmt.Fprintf(w, "OS Info: %s\n", OSInfo())
	fmt.Fprintf(w, "Artifact Root: %s\n", report.ArtifactRoot)
	fmt.Fprintf(w, "User Home: %s\n", report.UserHome)
}

// DebugDump writes the debug report to stderr.
func (l *Locator) DebugDump() {
	l.Dump(os.Stderr)
}
