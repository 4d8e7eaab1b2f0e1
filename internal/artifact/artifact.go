// Package artifact prints the diagnostic block describing the diff scan summary artifact.
package artifact

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/scan-io-git/ssd-reporter/internal/comment"
	"github.com/scan-io-git/ssd-reporter/internal/findings"
)

const banner = "================================================="

// Reporter writes the artifact report. It never fails: every problem becomes a report line.
type Reporter struct {
	out    io.Writer
	logger hclog.Logger
	path   string
	stat   func(string) (fs.FileInfo, error)
}

// New returns a Reporter writing to out about the findings file at path.
func New(out io.Writer, logger hclog.Logger, path string) *Reporter {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Reporter{out: out, logger: logger, path: path, stat: os.Stat}
}

// Report prints the artifact description for links.
func (r *Reporter) Report(links comment.Links) {
	r.println(banner)
	r.println("🎯 DIFF SCAN SUMMARY ARTIFACT")
	r.println(banner)
	r.println("📁 Artifact Name: " + links.ArtifactName())
	r.println("📄 Contains: " + filepath.Base(r.path))
	r.println("")
	r.println("🔗 Download Links:")
	r.println("   • GitHub Artifact: " + links.ArtifactsURL())
	r.println("   • SSD Portal: " + links.PortalURL())
	r.println("")

	if findings.Exists(r.path) {
		r.println("✅ Summary file created successfully")
		r.describe()
	} else {
		r.logger.Debug("findings file is absent", "path", r.path)
		r.println("❌ Summary file not found")
	}

	r.println(banner)
}

func (r *Reporter) describe() {
	info, err := r.stat(r.path)
	if err != nil {
		r.logger.Debug("stat failed", "path", r.path, "error", err)
		r.println("   Could not get file stats: " + err.Error())
		return
	}
	r.println(fmt.Sprintf("📊 File size: %.1fK", float64(info.Size())/1024))
	r.println("")
	r.println("📋 Metadata preview:")

	doc, err := findings.Load(r.path)
	if err != nil {
		r.logger.Debug("findings parse failed", "path", r.path, "error", err)
		r.println("   Could not parse JSON metadata: " + err.Error())
		return
	}

	rep := findings.Normalize(doc)
	r.println("   • Timestamp: " + rep.Timestamp)
	r.println("   • Current Branch: " + rep.CurrentBranch)
	r.println("   • Base Branch: " + rep.BaseBranch)
	r.println("   • Interrupt Condition: " + rep.InterruptCondition)
	r.println(fmt.Sprintf("   • Interrupt for Old Issues: %t", rep.InterruptForOldIssues))
	r.println(fmt.Sprintf("   • Total New Issues: %d", rep.TotalNewIssues))
	r.println(fmt.Sprintf("   • Total Existing Issues: %d", rep.TotalExistingIssues))
	r.println(fmt.Sprintf("   • Build Status: %s", rep.BuildStatus))
}

// println ignores write errors, there is nowhere left to report them.
func (r *Reporter) println(line string) {
	_, _ = fmt.Fprintln(r.out, line)
}
