package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngine() *Engine {
	return New(
		[]Step{
			{Key: "theme", Label: "INICIO", DisplayOrder: 1},
			{Key: "question", Label: "DETALLES", DisplayOrder: 2},
			{Key: "questions", Label: "PREGUNTAS", DisplayOrder: 3},
			{Key: "rewards", Label: "RECOMPENSAS", DisplayOrder: 4},
		},
		map[string]int{
			"theme":     0,
			"question":  25,
			"questions": 50,
			"rewards":   90,
			"finalize":  100,
		},
	)
}

func TestCurrentFailsOpenToFirstStep(t *testing.T) {
	e := testEngine()

	assert.Equal(t, "questions", e.Current("questions").Key)
	assert.Equal(t, "theme", e.Current("").Key)
	assert.Equal(t, "theme", e.Current("no-such-step").Key)
}

func TestNextAndBackSaturate(t *testing.T) {
	e := testEngine()

	require.Equal(t, "question", e.Next("theme").Key)
	require.Equal(t, "rewards", e.Next("questions").Key)
	require.Equal(t, "rewards", e.Next("rewards").Key, "next saturates at the last step")

	require.Equal(t, "questions", e.Back("rewards").Key)
	require.Equal(t, "theme", e.Back("theme").Key, "back saturates at the first step")
	require.Equal(t, "theme", e.Next("unknown").Key)
}

func TestProgressIsATableNotARatio(t *testing.T) {
	e := testEngine()

	// rewards is the last editing step but reports 90, not 3/4.
	assert.Equal(t, 90, e.Progress("rewards"))
	assert.Equal(t, 100, e.Progress("finalize"))
	assert.Equal(t, 0, e.Progress("theme"))
	assert.Equal(t, 0, e.Progress("unknown"))
}

func TestIndexAndIsPast(t *testing.T) {
	e := testEngine()

	assert.Equal(t, 2, e.Index("questions"))
	assert.Equal(t, -1, e.Index("nope"))

	assert.True(t, e.IsPast("theme", "questions"))
	assert.False(t, e.IsPast("questions", "theme"))
	assert.False(t, e.IsPast("nope", "questions"))
}

func TestNilProgressTable(t *testing.T) {
	e := New([]Step{{Key: "intro"}, {Key: "details"}, {Key: "submit"}}, nil)
	assert.Equal(t, 0, e.Progress("details"))
}
