package helper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneRepository(t *testing.T) {
	// 在本地创建一个带提交的仓库作为克隆源
	src := t.TempDir()
	repo, err := git.PlainInit(src, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(src, "hello.groovy"), []byte("println 'hi'"), 0644))
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("hello.groovy")
	require.NoError(t, err)
	_, err = wt.Commit("init", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com"},
	})
	require.NoError(t, err)

	dir, err := CloneRepository(src, nil)
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	_, err = os.Stat(filepath.Join(dir, "hello.groovy"))
	assert.NoError(t, err)
}

func TestCloneRepositoryInvalidURL(t *testing.T) {
	_, err := CloneRepository(filepath.Join(t.TempDir(), "missing"), nil)
	assert.Error(t, err)
}
