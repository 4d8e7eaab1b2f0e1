// Package comment renders the pull request comment bodies posted after a diff scan.
package comment

import (
	"fmt"
	"strings"

	"github.com/scan-io-git/ssd-reporter/internal/findings"
)

// Marker identifies a results comment left by a previous run.
const Marker = "🔒 Security Scan Results"

// DefaultTopIssues is the number of ranked issues listed in the details block.
const DefaultTopIssues = 5

// HasMarker reports whether body is a results comment.
func HasMarker(body string) bool {
	return strings.Contains(body, Marker)
}

// Results renders the full results comment. topIssues below 1 falls back to DefaultTopIssues.
func Results(r findings.Report, links Links, topIssues int) string {
	if topIssues < 1 {
		topIssues = DefaultTopIssues
	}
	glyph := r.BuildStatus.Glyph()

	lines := []string{
		fmt.Sprintf("## %s - PR #%d", Marker, links.PullRequest),
		"",
		"**📊 Issue Overview:**",
		fmt.Sprintf("- **New Issues:** %d", r.TotalNewIssues),
		fmt.Sprintf("- **Existing Issues:** %d", r.TotalExistingIssues),
		"",
		"**🚨 New Issues by Severity:** " + findings.SeverityBreakdown(r.NewIssuesBySeverity),
	}
	if r.InterruptForOldIssues {
		lines = append(lines, "**⚠️ Existing Issues by Severity:** "+findings.SeverityBreakdown(r.OldIssuesBySeverity))
	}

	lines = append(lines,
		"",
		fmt.Sprintf("**Build Status:** %s **%s**", glyph, r.BuildStatus),
		"",
		"**📎 Detailed Results:**",
		"",
		fmt.Sprintf("📋 [View Workflow Run](%s)", links.RunURL()),
		"",
		fmt.Sprintf("📁 [Download Summary File](%s) (`%s`)", links.ArtifactsURL(), links.ArtifactName()),
		"",
		fmt.Sprintf("🌐 [Explore Findings in SSD Portal](%s)", links.PortalURL()),
		"",
		"---",
	)

	switch {
	case r.HasNewIssues():
		lines = append(lines, details("🔍 View Top New Issues (Click to expand)", "new", r.NewIssues, topIssues)...)
	case r.ShowsExistingIssues():
		lines = append(lines, details("⚠️ View Top Existing Issues (Click to expand)", "existing", r.ExistingIssues, topIssues)...)
	default:
		lines = append(lines, fmt.Sprintf("**%s No new security issues found!** Great job maintaining secure code.", glyph))
	}

	return strings.Join(lines, "\n")
}

func details(summary, kind string, issues []findings.Issue, limit int) []string {
	lines := []string{"<details>", "<summary>" + summary + "</summary>", ""}

	shown := issues
	if len(shown) > limit {
		shown = shown[:limit]
	}
	for i, iss := range shown {
		lines = append(lines,
			fmt.Sprintf("**%d.** **%s** | %s", i+1, iss.Severity, iss.DatasourceTool),
			fmt.Sprintf("   └── `%s`", iss.AlertTitle),
			"",
		)
	}
	if rest := len(issues) - len(shown); rest > 0 {
		lines = append(lines, fmt.Sprintf("_... and %d more %s issues. Download the summary file for complete details._", rest, kind))
	}

	return append(lines, "</details>")
}

// NoFindings renders the comment posted when the scan produced no findings file.
func NoFindings(links Links) string {
	return completed(links, "The security scan has finished running.")
}

// Fallback renders the comment posted when the findings file could not be processed.
func Fallback(links Links, err error) string {
	return completed(links, "The security scan has finished, but there was an issue processing the detailed results.") +
		"\n\n_Error details: " + errorText(err) + "_"
}

func completed(links Links, intro string) string {
	return strings.Join([]string{
		fmt.Sprintf("## 🔒 Security Scan Completed - PR #%d", links.PullRequest),
		intro,
		"**📎 Results:**",
		fmt.Sprintf("📋 [View Workflow Run](%s)", links.RunURL()),
		fmt.Sprintf("📁 [Download Artifacts](%s)", links.ArtifactsURL()),
		fmt.Sprintf("🌐 [Explore in SSD Portal](%s)", links.PortalURL()),
	}, "\n\n")
}

func errorText(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
