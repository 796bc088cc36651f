// Package version reports the build version of the assistant bot.
// Values are injected at build time with -ldflags "-X assistantbot/internal/version.Version=...".
package version

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

// Build information set at link time.
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

const productName = "Assistant Bot"

// Info is the resolved build information.
type Info struct {
	Version     string          `json:"version"`
	Commit      string          `json:"commit"`
	BuildDate   string          `json:"buildDate"`
	CommitCount int             `json:"commitCount,omitempty"`
	GoVersion   string          `json:"goVersion"`
	Platform    string          `json:"platform"`
	SemVer      *semver.Version `json:"-"`
}

// Get parses the linked version and returns the build information.
func Get() (*Info, error) {
	sv, err := parse(Version)
	if err != nil {
		return nil, err
	}
	return &Info{
		Version:     Version,
		Commit:      GitCommit,
		BuildDate:   BuildDate,
		CommitCount: commitCount(sv),
		GoVersion:   runtime.Version(),
		Platform:    runtime.GOOS + "/" + runtime.GOARCH,
		SemVer:      sv,
	}, nil
}

// Short returns a one-line summary, e.g.
// "Assistant Bot v1.2.0, commit 1a2b3c4, built 2025-01-01".
func Short() string {
	info, err := Get()
	if err != nil {
		return fmt.Sprintf("%s v%s (invalid version)", productName, Version)
	}

	parts := []string{fmt.Sprintf("%s v%s", productName, info.Version)}
	if known(info.Commit) {
		parts = append(parts, "commit "+shortCommit(info.Commit))
	}
	if known(info.BuildDate) {
		parts = append(parts, "built "+info.BuildDate)
	}
	return strings.Join(parts, ", ")
}

// Detailed returns one "Key: value" line per field.
func Detailed() string {
	info, err := Get()
	if err != nil {
		return fmt.Sprintf("%s v%s (error: %v)", productName, Version, err)
	}

	lines := []string{
		fmt.Sprintf("%s v%s", productName, info.Version),
		"Git Commit: " + info.Commit,
		"Build Date: " + info.BuildDate,
	}
	if info.CommitCount > 0 {
		lines = append(lines, fmt.Sprintf("Commit Count: %d", info.CommitCount))
	}
	if meta := info.SemVer.Metadata(); meta != "" {
		lines = append(lines, "Build Metadata: "+meta)
	}
	lines = append(lines, "Go Version: "+info.GoVersion, "Platform: "+info.Platform)
	return strings.Join(lines, "\n")
}

// Validate reports whether the linked version is a semantic version.
func Validate() error {
	_, err := parse(Version)
	return err
}

// IsPrerelease reports whether the linked version carries a prerelease tag.
func IsPrerelease() bool {
	sv, err := parse(Version)
	return err == nil && sv.Prerelease() != ""
}

// IsDevelopment reports whether commit or build date were left unset.
func IsDevelopment() bool {
	return !known(GitCommit) || !known(BuildDate)
}

// Compare returns -1, 0 or 1 as a is older than, equal to or newer than b.
func Compare(a, b string) (int, error) {
	va, err := parse(a)
	if err != nil {
		return 0, err
	}
	vb, err := parse(b)
	if err != nil {
		return 0, err
	}
	return va.Compare(vb), nil
}

// BuildTime parses BuildDate in any of the layouts release tooling emits.
func BuildTime() (time.Time, error) {
	if !known(BuildDate) {
		return time.Time{}, fmt.Errorf("build date not available")
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", time.DateOnly} {
		if t, err := time.Parse(layout, BuildDate); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse build date %q", BuildDate)
}

func parse(v string) (*semver.Version, error) {
	sv, err := semver.NewVersion(v)
	if err != nil {
		return nil, fmt.Errorf("invalid semantic version %q: %w", v, err)
	}
	return sv, nil
}

// commitCount reads N from build metadata shaped like "N.sha".
func commitCount(sv *semver.Version) int {
	head, _, _ := strings.Cut(sv.Metadata(), ".")
	var n int
	if _, err := fmt.Sscanf(head, "%d", &n); err != nil || n < 0 {
		return 0
	}
	return n
}

func known(s string) bool {
	return s != "" && s != "unknown"
}

func shortCommit(c string) string {
	if len(c) > 7 {
		return c[:7]
	}
	return c
}
