// Package cmslayout refreshes the static site-layout bundle the public
// dashboard frontend serves, mirroring a GitHub branch archive into
// object storage on a schedule independent of the data endpoint.
package cmslayout

import (
	"context"
	"fmt"
	"io"
)

// ArchiveFetcher retrieves a branch's tarball from its source repository.
type ArchiveFetcher interface {
	FetchArchive(ctx context.Context, owner, repo, branch string) (io.ReadCloser, error)
}

// BlobStore persists the mirrored archive where the frontend reads it
// from.
type BlobStore interface {
	Put(ctx context.Context, key string, body io.Reader) error
}

// BranchMap resolves the environment name to the branch that should be
// mirrored for it.
var BranchMap = map[string]string{
	"PRODUCTION": "main",
	"STAGING":    "staging",
	"SANDBOX":    "sandbox",
	"DEVELOPMENT": "develop",
}

// Mirror copies the layout archive for env's branch into store under key.
func Mirror(ctx context.Context, fetcher ArchiveFetcher, store BlobStore, owner, repo, env, key string) error {
	branch, ok := BranchMap[env]
	if !ok {
		return fmt.Errorf("cmslayout: no branch mapped for environment %q", env)
	}

	archive, err := fetcher.FetchArchive(ctx, owner, repo, branch)
	if err != nil {
		return err
	}
	defer archive.Close()

	return store.Put(ctx, key, archive)
}
