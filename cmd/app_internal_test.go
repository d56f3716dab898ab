package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitAt(t *testing.T) {
	t.Parallel()

	expression, at, err := splitAt("x^2 @ 3")
	require.NoError(t, err)
	assert.Equal(t, "x^2", expression)
	require.NotNil(t, at)
	assert.Equal(t, 3.0, *at)

	expression, at, err = splitAt("1+2")
	require.NoError(t, err)
	assert.Equal(t, "1+2", expression)
	assert.Nil(t, at)

	expression, at, err = splitAt("x @ -1.5e2")
	require.NoError(t, err)
	assert.Equal(t, "x", expression)
	assert.Equal(t, -150.0, *at)

	_, _, err = splitAt("x @ y")
	assert.ErrorIs(t, err, errInvalidArgument)
}

func TestRunLine(t *testing.T) {
	t.Parallel()

	app := NewCalcApp()
	assert.NoError(t, app.runLine(""))
	assert.ErrorIs(t, app.runLine("@"), errInvalidArgument)
}
