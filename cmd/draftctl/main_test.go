package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"formly.backend/internal/onboarding"
	"formly.backend/internal/questionnaire"
	"formly.backend/pkg/draftstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDraftDir(t *testing.T) {
	t.Helper()
	t.Setenv("DRAFT_BACKEND", "file")
	t.Setenv("DRAFT_DIR", t.TempDir())

	orig := loadDotenv
	loadDotenv = func(...string) error { return nil }
	t.Cleanup(func() { loadDotenv = orig })
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := run(args, &buf)
	return buf.String(), err
}

func TestRun_NoArgsShowsUsage(t *testing.T) {
	setupDraftDir(t)

	_, err := runCmd(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage: draftctl")
}

func TestRun_ShowAndClear(t *testing.T) {
	setupDraftDir(t)

	// absent drafts show as an empty record
	out, err := runCmd(t, "show", questionnaire.DraftNamespace)
	require.NoError(t, err)
	assert.Equal(t, "{}", strings.TrimSpace(out))

	out, err = runCmd(t, "clear", questionnaire.DraftNamespace)
	require.NoError(t, err)
	assert.Contains(t, out, "cleared")
}

func TestRun_ShowSeededDraft(t *testing.T) {
	setupDraftDir(t)

	dir := t.TempDir()
	t.Setenv("DRAFT_DIR", dir)

	backend, err := draftstore.NewFileBackend(dir)
	require.NoError(t, err)
	store := draftstore.New(backend)
	store.SaveJSON(context.Background(), questionnaire.DraftNamespace, questionnaire.Draft{Theme: "Sales"})

	out, err := runCmd(t, "show", questionnaire.DraftNamespace)
	require.NoError(t, err)
	assert.Contains(t, out, `"theme"`)
	assert.Contains(t, out, "Sales")
}

func TestRun_OnboardingLifecycle(t *testing.T) {
	setupDraftDir(t)

	out, err := runCmd(t, "onboarding", "status")
	require.NoError(t, err)
	assert.Equal(t, "pending", strings.TrimSpace(out))

	out, err = runCmd(t, "onboarding", "complete")
	require.NoError(t, err)
	assert.Equal(t, "completed", strings.TrimSpace(out))

	out, err = runCmd(t, "onboarding", "status")
	require.NoError(t, err)
	assert.Equal(t, "completed", strings.TrimSpace(out))
}

func TestRun_Namespaces(t *testing.T) {
	setupDraftDir(t)

	out, err := runCmd(t, "namespaces")
	require.NoError(t, err)
	assert.Contains(t, out, questionnaire.DraftNamespace)
	assert.Contains(t, out, onboarding.DraftNamespace)
}

func TestRun_UnknownCommand(t *testing.T) {
	setupDraftDir(t)

	_, err := runCmd(t, "bogus")
	require.Error(t, err)
}
