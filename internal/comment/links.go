package comment

import (
	"fmt"
	"strings"
)

// Links holds the values every comment body links to.
type Links struct {
	ServerURL   string
	Owner       string
	Repo        string
	RunID       string
	UploadURL   string
	PullRequest int
}

// RunURL is the workflow run page.
func (l Links) RunURL() string {
	return fmt.Sprintf("%s/%s/%s/actions/runs/%s", strings.TrimRight(l.ServerURL, "/"), l.Owner, l.Repo, l.RunID)
}

// ArtifactsURL is the artifacts section of the workflow run page.
func (l Links) ArtifactsURL() string {
	return l.RunURL() + "#artifacts"
}

// PortalURL is the findings exploration page of the SSD portal.
func (l Links) PortalURL() string {
	return strings.TrimRight(l.UploadURL, "/") + "/ui/artifact-security/generated"
}

// ArtifactName is the name the workflow uploads the findings summary under.
func (l Links) ArtifactName() string {
	return fmt.Sprintf("diff-scan-summary-pr-%d", l.PullRequest)
}
