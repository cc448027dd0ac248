package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/translation-review/internal/annotation"
	"github.com/DjordjeVuckovic/translation-review/internal/domain"
	"github.com/DjordjeVuckovic/translation-review/internal/storage/local"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	datasetPath := filepath.Join(dir, "cells.json")
	require.NoError(t, os.WriteFile(datasetPath,
		[]byte(`[{"id":"a1","matched_standards":[{"standard_code":"MS-LS1-1"}]},{"id":"b2"}]`), 0o644))

	t.Setenv("ENV_PATH", filepath.Join(dir, "missing.env"))
	t.Setenv("REVIEW_CONFIG_PATH", "")
	t.Setenv("DATASET_PATH", datasetPath)
	t.Setenv("DATASET_NAME", "")
	t.Setenv("LOCAL_STORE_PATH", filepath.Join(dir, "local.json"))
	t.Setenv("BLOB_STORE_TYPE", "fs")
	t.Setenv("BLOB_FS_ROOT", filepath.Join(dir, "blobs"))
	t.Setenv("BLOB_CONTAINER", "")
	t.Setenv("BLOB_OBJECT_KEY", "")
	t.Setenv("SYNC_DEBOUNCE_WINDOW", "")
	t.Setenv("SYNC_STATUS_WINDOW", "")
	return dir
}

func seedLocal(t *testing.T, dir string) {
	t.Helper()
	kv, err := local.NewFileKV(filepath.Join(dir, "local.json"))
	require.NoError(t, err)
	a, err := annotation.RateTranslation(annotation.New(domain.Sample{ID: "b2"}), domain.RatingBest, fixedTime)
	require.NoError(t, err)
	require.NoError(t, local.NewStore(kv).Save(annotation.NewMap().Set("b2", a)))
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestStatus(t *testing.T) {
	dir := setupEnv(t)
	seedLocal(t, dir)

	out, err := run(t, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "dataset:     cells")
	assert.Contains(t, out, "total:       2")
	assert.Contains(t, out, "done:        1")
}

func TestExport(t *testing.T) {
	dir := setupEnv(t)
	seedLocal(t, dir)
	outDir := filepath.Join(dir, "exports")

	out, err := run(t, "export", "--out", outDir, "--format", "xlsx")
	require.NoError(t, err)

	path := strings.TrimSpace(out)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "annotated_cells_"))
	assert.Equal(t, ".xlsx", filepath.Ext(path))
	assert.FileExists(t, path)

	_, err = run(t, "export", "--format", "csv")
	assert.Error(t, err)
}

func TestPushThenPullIntoEmptyStore(t *testing.T) {
	dir := setupEnv(t)
	seedLocal(t, dir)

	out, err := run(t, "push")
	require.NoError(t, err)
	assert.Contains(t, out, "uploaded 1 annotated samples")

	// local cache lost
	require.NoError(t, os.Remove(filepath.Join(dir, "local.json")))

	out, err = run(t, "pull")
	require.NoError(t, err)
	assert.Contains(t, out, "recovered 1 annotated samples")

	out, err = run(t, "pull")
	require.NoError(t, err)
	assert.Contains(t, out, "nothing recovered, local store has 1 annotated samples")
}
