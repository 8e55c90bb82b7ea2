package gallery

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/alexisbeaulieu97/vlightbox/internal/ports"
)

// GitSource is a parsed git gallery location. A "#branch" suffix selects a branch.
type GitSource struct {
	URL    string
	Branch string
}

// ParseGitSource recognises https://host/repo.git, git@host:repo, git+https://
// and file:// locations ending in .git.
func ParseGitSource(location string) (GitSource, bool) {
	loc := strings.TrimSpace(location)
	branch := ""
	if idx := strings.LastIndex(loc, "#"); idx > 0 {
		loc, branch = loc[:idx], loc[idx+1:]
	}
	loc = strings.TrimPrefix(loc, "git+")

	switch {
	case strings.HasPrefix(loc, "git@") && strings.Contains(loc, ":"):
	case strings.HasPrefix(loc, "ssh://"):
	case (strings.HasPrefix(loc, "https://") || strings.HasPrefix(loc, "http://") || strings.HasPrefix(loc, "file://")) &&
		strings.HasSuffix(strings.TrimSuffix(loc, "/"), ".git"):
	default:
		return GitSource{}, false
	}
	return GitSource{URL: loc, Branch: branch}, true
}

// IsGitSource reports whether location names a git repository.
func IsGitSource(location string) bool {
	_, ok := ParseGitSource(location)
	return ok
}

// checkoutDir is stable per URL and branch so repeated views reuse the clone.
func checkoutDir(cloneDir string, src GitSource) string {
	sum := sha256.Sum256([]byte(src.URL + "#" + src.Branch))
	name := strings.TrimSuffix(filepath.Base(strings.TrimSuffix(src.URL, "/")), ".git")
	if name == "" || name == "." || strings.ContainsAny(name, ":/") {
		name = "gallery"
	}
	return filepath.Join(cloneDir, fmt.Sprintf("%s-%s", name, hex.EncodeToString(sum[:])[:12]))
}

// Checkout clones src into cloneDir, or refreshes an existing clone of the
// same remote. A failed refresh falls back to the existing checkout.
func Checkout(ctx context.Context, src GitSource, cloneDir string, logger ports.Logger) (string, error) {
	dest := checkoutDir(cloneDir, src)

	if repo, err := git.PlainOpen(dest); err == nil {
		if remote, err := repo.Remote("origin"); err == nil && len(remote.Config().URLs) > 0 && remote.Config().URLs[0] == src.URL {
			if err := pull(ctx, repo, src); err != nil {
				logger.Warn(ctx, "gallery refresh failed, using existing checkout", "url", src.URL, "path", dest, "error", err)
			} else {
				logger.Debug(ctx, "gallery checkout refreshed", "url", src.URL, "path", dest)
			}
			return dest, nil
		}
		if err := os.RemoveAll(dest); err != nil {
			return "", fmt.Errorf("remove stale checkout: %w", err)
		}
	}

	if err := os.MkdirAll(cloneDir, 0o755); err != nil {
		return "", fmt.Errorf("create clone directory: %w", err)
	}

	opts := &git.CloneOptions{URL: src.URL}
	if !strings.HasPrefix(src.URL, "file://") {
		opts.Depth = 1
	}
	if src.Branch != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(src.Branch)
		opts.SingleBranch = true
	}

	logger.Info(ctx, "cloning gallery", "url", src.URL, "path", dest, "branch", src.Branch)
	if _, err := git.PlainCloneContext(ctx, dest, false, opts); err != nil {
		_ = os.RemoveAll(dest)
		return "", fmt.Errorf("clone %s: %w", src.URL, err)
	}
	return dest, nil
}

func pull(ctx context.Context, repo *git.Repository, src GitSource) error {
	wt, err := repo.Worktree()
	if err != nil {
		return err
	}
	opts := &git.PullOptions{RemoteName: "origin"}
	if src.Branch != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(src.Branch)
		opts.SingleBranch = true
	}
	err = wt.PullContext(ctx, opts)
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return nil
	}
	return err
}
