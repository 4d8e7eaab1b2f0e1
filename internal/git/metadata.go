// Package git reads repository metadata from a local checkout. It is the last fallback
// when neither flags nor the CI environment identify the repository.
package git

import (
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"

	"github.com/scan-io-git/ssd-reporter/pkg/shared/vcsurl"
)

// RepositoryMetadata holds what the reporter needs to know about a local checkout.
type RepositoryMetadata struct {
	BranchName     *string
	CommitHash     *string
	RemoteURL      string
	ServerURL      string
	APIURL         string
	Owner          string
	Repository     string
	Subfolder      string
	RepoRootFolder string
}

// CollectRepositoryMetadata opens the repository containing sourceFolder and derives
// owner and repository from the origin remote.
// Branch and commit are best-effort; a missing or unparsable origin is reported as an error
// together with the partially filled metadata.
func CollectRepositoryMetadata(sourceFolder string) (*RepositoryMetadata, error) {
	if sourceFolder == "" {
		return &RepositoryMetadata{}, fmt.Errorf("source folder is not set")
	}

	if absSource, err := filepath.Abs(sourceFolder); err == nil {
		sourceFolder = absSource
	}

	md := &RepositoryMetadata{
		RepoRootFolder: filepath.Clean(sourceFolder),
	}

	repoRootFolder, err := findGitRepositoryPath(sourceFolder)
	if err != nil {
		return md, err
	}
	md.RepoRootFolder = filepath.Clean(repoRootFolder)

	repo, err := git.PlainOpen(repoRootFolder)
	if err != nil {
		return md, fmt.Errorf("failed to open repository: %w", err)
	}

	if rel, err := filepath.Rel(repoRootFolder, sourceFolder); err == nil && rel != "." {
		md.Subfolder = filepath.ToSlash(rel)
	}

	if head, err := repo.Head(); err == nil {
		if head.Name().IsBranch() {
			branchName := head.Name().Short()
			md.BranchName = &branchName
		}

		hash := head.Hash().String()
		md.CommitHash = &hash
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return md, fmt.Errorf("%w: %v", ErrNoOrigin, err)
	}
	cfg := remote.Config()
	if cfg == nil || len(cfg.URLs) == 0 {
		return md, ErrNoOrigin
	}
	md.RemoteURL = cfg.URLs[0]

	u, err := vcsurl.Parse(md.RemoteURL)
	if err != nil {
		return md, fmt.Errorf("failed to parse origin remote: %w", err)
	}
	md.Owner = u.Namespace
	md.Repository = u.Repository
	md.ServerURL = u.ServerURL()
	md.APIURL = u.APIURL()

	return md, nil
}
