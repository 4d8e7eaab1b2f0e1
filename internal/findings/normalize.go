package findings

import (
	"strconv"
	"strings"
)

const (
	unknownSeverity = "UNKNOWN"
	unknownTool     = "Unknown"
	missingTitle    = "No title available"
	notAvailable    = "N/A"
)

// BuildStatus is the gate verdict of the scan.
type BuildStatus string

const (
	BuildPassing BuildStatus = "PASSING"
	BuildFailing BuildStatus = "FAILING"
	BuildUnknown BuildStatus = "UNKNOWN"
)

// Glyph returns the status marker shown next to the build status.
func (s BuildStatus) Glyph() string {
	switch s {
	case BuildPassing:
		return "✅"
	case BuildFailing:
		return "❌"
	default:
		return "⚠️"
	}
}

// Report is a Document with every default applied. Renderers read it as-is.
type Report struct {
	TotalNewIssues        int
	TotalExistingIssues   int
	NewIssuesBySeverity   SeverityCounts
	OldIssuesBySeverity   SeverityCounts
	BuildStatus           BuildStatus
	InterruptForOldIssues bool

	Timestamp          string
	CurrentBranch      string
	BaseBranch         string
	InterruptCondition string

	NewIssues      []Issue
	ExistingIssues []Issue
}

// Issue is a finding with defaults applied.
type Issue struct {
	Severity       string
	DatasourceTool string
	AlertTitle     string
}

// HasNewIssues reports whether the scan introduced issues.
func (r Report) HasNewIssues() bool {
	return len(r.NewIssues) > 0
}

// ShowsExistingIssues reports whether pre-existing issues must be surfaced.
func (r Report) ShowsExistingIssues() bool {
	return r.InterruptForOldIssues && len(r.ExistingIssues) > 0
}

// Normalize fills every optional field of doc with its default.
// A nil doc yields the report of an empty findings file.
func Normalize(doc *Document) Report {
	if doc == nil {
		doc = &Document{}
	}
	s, m, d := doc.Summary, doc.Metadata, doc.DetailedIssues

	return Report{
		TotalNewIssues:        int(s.TotalNewIssues),
		TotalExistingIssues:   int(s.TotalExistingIssues),
		NewIssuesBySeverity:   copyCounts(s.NewIssuesBySeverity),
		OldIssuesBySeverity:   copyCounts(s.OldIssuesBySeverity),
		BuildStatus:           BuildStatus(orDefault(string(s.BuildStatus), string(BuildUnknown))),
		InterruptForOldIssues: bool(m.InterruptForOldIssues),
		Timestamp:             orDefault(string(m.Timestamp), notAvailable),
		CurrentBranch:         orDefault(string(m.CurrentBranch), notAvailable),
		BaseBranch:            orDefault(string(m.BaseBranch), notAvailable),
		InterruptCondition:    orDefault(string(m.InterruptCondition), notAvailable),
		NewIssues:             normalizeIssues(d.NewIssues),
		ExistingIssues:        normalizeIssues(d.ExistingIssues),
	}
}

func normalizeIssues(records []IssueRecord) []Issue {
	out := make([]Issue, 0, len(records))
	for _, rec := range records {
		out = append(out, Issue{
			Severity:       strings.ToUpper(orDefault(string(rec.Severity), unknownSeverity)),
			DatasourceTool: orDefault(string(rec.DatasourceTool), unknownTool),
			AlertTitle:     orDefault(string(rec.AlertTitle), missingTitle),
		})
	}
	return out
}

func copyCounts(in SeverityCounts) SeverityCounts {
	out := make(SeverityCounts, len(in))
	copy(out, in)
	return out
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

// SeverityBreakdown renders positive counts as "SEVERITY: n" pairs joined by ", "
// in file order, or "None" when nothing is left.
func SeverityBreakdown(counts SeverityCounts) string {
	pairs := make([]string, 0, len(counts))
	for _, c := range counts {
		if c.Count > 0 {
			pairs = append(pairs, c.Severity+": "+strconv.Itoa(c.Count))
		}
	}
	if len(pairs) == 0 {
		return "None"
	}
	return strings.Join(pairs, ", ")
}
