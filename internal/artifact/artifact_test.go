package artifact

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scan-io-git/ssd-reporter/internal/comment"
)

var testLinks = comment.Links{
	ServerURL:   "https://github.com",
	Owner:       "acme",
	Repo:        "shop",
	RunID:       "987654",
	UploadURL:   "https://ssd.example.com",
	PullRequest: 42,
}

func writeFindings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "diff-scan-findings.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func report(r *Reporter) []string {
	var buf bytes.Buffer
	r.out = &buf
	r.Report(testLinks)
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func TestReportHeader(t *testing.T) {
	lines := report(New(nil, nil, filepath.Join(t.TempDir(), "diff-scan-findings.json")))

	assert.Equal(t, []string{
		"=================================================",
		"🎯 DIFF SCAN SUMMARY ARTIFACT",
		"=================================================",
		"📁 Artifact Name: diff-scan-summary-pr-42",
		"📄 Contains: diff-scan-findings.json",
		"",
		"🔗 Download Links:",
		"   • GitHub Artifact: https://github.com/acme/shop/actions/runs/987654#artifacts",
		"   • SSD Portal: https://ssd.example.com/ui/artifact-security/generated",
		"",
		"❌ Summary file not found",
		"=================================================",
	}, lines)
}

func TestReportWithFindings(t *testing.T) {
	content := `{"metadata":{"timestamp":"2024-05-01T10:00:00Z","currentBranch":"feature/login","baseBranch":"main","interruptCondition":"CRITICAL","interruptForOldIssues":true},"summary":{"totalNewIssues":3,"totalExistingIssues":12,"buildStatus":"FAILING"}}`
	path := writeFindings(t, content)

	lines := report(New(nil, nil, path))

	assert.Equal(t, []string{
		"✅ Summary file created successfully",
		"📊 File size: 0.2K",
		"",
		"📋 Metadata preview:",
		"   • Timestamp: 2024-05-01T10:00:00Z",
		"   • Current Branch: feature/login",
		"   • Base Branch: main",
		"   • Interrupt Condition: CRITICAL",
		"   • Interrupt for Old Issues: true",
		"   • Total New Issues: 3",
		"   • Total Existing Issues: 12",
		"   • Build Status: FAILING",
		"=================================================",
	}, lines[10:])
}

func TestReportDefaults(t *testing.T) {
	lines := report(New(nil, nil, writeFindings(t, `{}`)))

	assert.Contains(t, lines, "📊 File size: 0.0K")
	assert.Contains(t, lines, "   • Timestamp: N/A")
	assert.Contains(t, lines, "   • Current Branch: N/A")
	assert.Contains(t, lines, "   • Base Branch: N/A")
	assert.Contains(t, lines, "   • Interrupt Condition: N/A")
	assert.Contains(t, lines, "   • Interrupt for Old Issues: false")
	assert.Contains(t, lines, "   • Total New Issues: 0")
	assert.Contains(t, lines, "   • Total Existing Issues: 0")
	assert.Contains(t, lines, "   • Build Status: UNKNOWN")
}

func TestReportParseFailure(t *testing.T) {
	lines := report(New(nil, nil, writeFindings(t, "{")))

	require.Len(t, lines, 16)
	assert.Equal(t, "📋 Metadata preview:", lines[13])
	assert.True(t, strings.HasPrefix(lines[14], "   Could not parse JSON metadata: "))
	assert.Contains(t, lines[14], "unexpected end of JSON input")
	assert.Equal(t, "=================================================", lines[15])
}

func TestReportStatFailure(t *testing.T) {
	r := New(nil, nil, writeFindings(t, `{}`))
	r.stat = func(string) (fs.FileInfo, error) { return nil, errors.New("permission denied") }

	lines := report(r)

	assert.Equal(t, []string{
		"✅ Summary file created successfully",
		"   Could not get file stats: permission denied",
		"=================================================",
	}, lines[10:])
}

func TestReportWithLooselyTypedFindings(t *testing.T) {
	path := writeFindings(t, `{"metadata":{"interruptForOldIssues":"true","timestamp":1714557600},"summary":{"totalNewIssues":"2","totalExistingIssues":5.0}}`)

	lines := report(New(nil, nil, path))

	require.Len(t, lines, 23)
	assert.Equal(t, []string{
		"   • Timestamp: 1714557600",
		"   • Current Branch: N/A",
		"   • Base Branch: N/A",
		"   • Interrupt Condition: N/A",
		"   • Interrupt for Old Issues: true",
		"   • Total New Issues: 2",
		"   • Total Existing Issues: 5",
		"   • Build Status: UNKNOWN",
	}, lines[14:22])
}
