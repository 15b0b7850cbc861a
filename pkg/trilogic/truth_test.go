package trilogic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthNot(t *testing.T) {
	assert.Equal(t, True, False.Not())
	assert.Equal(t, False, True.Not())
	assert.Equal(t, Unknown, Unknown.Not(), "Unknown is a fixpoint of negation")
}

func TestTruthString(t *testing.T) {
	assert.Equal(t, "true", True.String())
	assert.Equal(t, "false", False.String())
	assert.Equal(t, "unknown", Unknown.String())
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "conflict", Conflict.String())
	assert.Equal(t, "progress", Progress.String())
	assert.Equal(t, "no change", NoChange.String())
}
