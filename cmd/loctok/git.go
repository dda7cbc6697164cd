package main

import (
	"fmt"
	"os"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// isGitURL reports whether the input looks like a git repository URL rather
// than a local path. http(s) URLs are handled by the web path unless they end
// in .git.
func isGitURL(input string) bool {
	return strings.HasSuffix(input, ".git") || strings.HasPrefix(input, "git@")
}

// cloneGitRepo clones the default branch of url into a temporary directory
// and returns its path. The caller removes the directory when done.
func cloneGitRepo(url string) (string, error) {
	tempDir, err := os.MkdirTemp("", "loctok-git-")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary directory: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Cloning %s...\n", url)
	_, err = git.PlainClone(tempDir, false, &git.CloneOptions{
		URL:           url,
		Progress:      os.Stderr,
		ReferenceName: plumbing.HEAD,
		SingleBranch:  true,
	})
	if err != nil {
		_ = os.RemoveAll(tempDir)
		return "", fmt.Errorf("failed to clone repository %s: %w", url, err)
	}
	return tempDir, nil
}
