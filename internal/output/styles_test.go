package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusStyle_KnownStatuses(t *testing.T) {
	for _, status := range []string{
		StatusCreated,
		StatusSkipped,
		StatusOverwritten,
		StatusDeleted,
		StatusFailed,
		StatusPatched,
		StatusUnchanged,
	} {
		// Rendering must round-trip the text regardless of terminal support.
		rendered := StatusStyle(status).Render(status)
		assert.Contains(t, rendered, status)
	}
}

func TestFormatOutcomeLine_Alignment(t *testing.T) {
	short := FormatOutcomeLine("app/index.tsx", StatusCreated)
	long := FormatOutcomeLine(strings.Repeat("x", 60), StatusSkipped)

	assert.Contains(t, short, "app/index.tsx")
	assert.Contains(t, short, StatusCreated)

	// Long paths still get at least two spaces before the status.
	assert.Contains(t, long, strings.Repeat("x", 60)+"  "+StatusSkipped)
}

func TestFormatCheckmark(t *testing.T) {
	line := FormatCheckmark("Scaffolding complete")
	assert.Contains(t, line, "✔")
	assert.Contains(t, line, "Scaffolding complete")
}
