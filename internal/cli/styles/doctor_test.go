package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/dockyard/internal/domain/build"
)

func TestDoctorReport_OK(t *testing.T) {
	report := DoctorReport{Checks: []DoctorCheck{
		{Name: "Configuration", Detail: "/tmp/config.toml"},
		{Name: "Log directory", Status: CheckWarn, Detail: "file logging disabled"},
	}}
	assert.True(t, report.OK(), "warnings do not fail the report")

	report.Checks = append(report.Checks, DoctorCheck{Name: "Layout store (sqlite)", Status: CheckFailed, Detail: "disk I/O error"})
	assert.False(t, report.OK())

	out := NewDoctorRenderer(NewTheme(nil)).Render(report)
	assert.Contains(t, out, "Needs attention")
	assert.Contains(t, out, "Layout store (sqlite)")
	assert.Contains(t, out, "disk I/O error")
}

func TestAboutRenderer(t *testing.T) {
	out := NewAboutRenderer(NewTheme(nil)).Render(AboutInfo{
		Build:       build.Info{Version: "v1.2.0", Commit: "abc123", GoVersion: "go1.25.3"},
		ConfigFile:  "/home/u/.config/dockyard/config.toml",
		Backend:     "files",
		StoragePath: "/home/u/.local/share/dockyard/layouts",
	})

	assert.Contains(t, out, "v1.2.0")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, "unknown", "missing build date")
	assert.Contains(t, out, "(files)")
	assert.Contains(t, out, build.RepoURL())
}
