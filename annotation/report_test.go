package annotation

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lewtec/photocheck/internal/domain"
)

func TestReport(t *testing.T) {
	ctx := context.Background()
	st, root := newTestStore(t)
	writeFiles(t, filepath.Join(root, "photos"), "a.jpg", "b.jpg")
	_, err := ImportFolder(ctx, st, filepath.Join(root, "photos"), ImportOptions{})
	require.NoError(t, err)
	_, err = st.UpsertQuestion(ctx, "Left | right?", 10)
	require.NoError(t, err)

	questions, err := st.LoadQuestions(ctx)
	require.NoError(t, err)
	images, err := st.LoadImages(ctx)
	require.NoError(t, err)
	require.NoError(t, st.SaveAnswers(ctx, images[0].ID, allAnswers(questions, domain.AnswerYes)))
	require.NoError(t, st.SaveAnswers(ctx, images[1].ID, map[int64]domain.AnswerValue{questions[0].ID: domain.AnswerNo}))

	md, err := Report(ctx, st)
	require.NoError(t, err)
	text := string(md)

	assert.Contains(t, text, "- Images: 2")
	assert.Contains(t, text, "- Fully annotated: 1 (50%)")
	assert.Contains(t, text, "- Answers: 5")
	assert.Contains(t, text, "| Is the object visible? | 1 | 1 | 0 | 0 |")
	assert.Contains(t, text, "| Is a defect present? | 1 | 0 | 0 | 1 |")
	assert.Contains(t, text, `Left \| right?`)

	out, err := RenderHTML(md, "Report")
	require.NoError(t, err)
	html := string(out)
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"), html)
	assert.Contains(t, html, "<title>Report</title>")
	assert.Contains(t, html, `<main class="report">`)
	assert.Contains(t, html, "border-collapse: collapse;")
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<h1>Photo annotation report</h1>")
}

func TestRenderHTML_EscapesTitle(t *testing.T) {
	out, err := RenderHTML([]byte("# Body\n"), "<b>Mine</b>")
	require.NoError(t, err)
	html := string(out)
	assert.Contains(t, html, "<title>&lt;b&gt;Mine&lt;/b&gt;</title>")
	assert.Contains(t, html, "<h1>Body</h1>")
}

func TestReport_NoQuestions(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)
	questions, err := st.LoadQuestions(ctx)
	require.NoError(t, err)
	for _, q := range questions {
		require.NoError(t, st.DeleteQuestion(ctx, q.ID))
	}

	md, err := Report(ctx, st)
	require.NoError(t, err)
	assert.Contains(t, string(md), "No questions defined.")
	assert.Contains(t, string(md), "- Fully annotated: 0 (0%)")
}
