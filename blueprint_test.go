package luminary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBlueprint() *Blueprint {
	b := NewBlueprint("sesame")
	b.now = func() time.Time { return time.UnixMilli(1750000000000) }
	return b
}

func TestBlueprint_accessGate(t *testing.T) {
	b := testBlueprint()

	assert.False(t, b.Unlocked())
	_, err := b.Data()
	assert.ErrorIs(t, err, ErrLocked)
	assert.ErrorIs(t, b.StartEdit(), ErrLocked)

	assert.False(t, b.Unlock("wrong"))
	assert.False(t, b.Unlocked(), "a failed attempt must not open the gate")

	assert.True(t, b.Unlock("sesame"))
	_, err = b.Data()
	assert.NoError(t, err)

	b.Lock()
	assert.False(t, b.Unlocked())
}

func TestBlueprint_editCountGate(t *testing.T) {
	b := testBlueprint()
	require.True(t, b.Unlock("sesame"))

	// spend all three edits
	for i := 1; i <= MaxEdits; i++ {
		require.NoError(t, b.StartEdit())
		require.NoError(t, b.SetDraft("revision"))
		data, err := b.Save()
		require.NoError(t, err)
		assert.Equal(t, i, data.EditCount)
		assert.Equal(t, int64(1750000000000), data.LastEdited)
	}

	// a fourth attempt to enter editing is refused, count stays at 3
	err := b.StartEdit()
	assert.ErrorIs(t, err, ErrEditsExhausted)
	data, err := b.Data()
	require.NoError(t, err)
	assert.Equal(t, MaxEdits, data.EditCount)
	assert.Equal(t, 0, b.RemainingEdits())
}

func TestBlueprint_cancelDiscardsDraft(t *testing.T) {
	b := testBlueprint()
	require.True(t, b.Unlock("sesame"))

	require.NoError(t, b.StartEdit())
	require.NoError(t, b.SetDraft("unsaved keystrokes"))
	require.NoError(t, b.Cancel())

	data, err := b.Data()
	require.NoError(t, err)
	assert.Equal(t, defaultBlueprintContent, data.Content, "cancel must restore the last persisted content")
	assert.Equal(t, 0, data.EditCount, "cancel never consumes an edit")
	assert.False(t, b.Editing())

	// save or cancel outside of edit mode are refused
	_, err = b.Save()
	assert.ErrorIs(t, err, ErrNotEditing)
	assert.ErrorIs(t, b.Cancel(), ErrNotEditing)
	assert.ErrorIs(t, b.SetDraft("x"), ErrNotEditing)
}

func TestBlueprint_legacyMigration(t *testing.T) {
	b := testBlueprint()
	legacy := `{"vision":"calm","coreValues":"honesty","fiveYearGoal":"a garden","lastEdited":123,"editCount":2}`
	require.NoError(t, b.UnmarshalJSON([]byte(legacy)))

	require.True(t, b.Unlock("sesame"))
	data, err := b.Data()
	require.NoError(t, err)
	assert.Equal(t, "MY VISION\ncalm\n\nCORE VALUES\nhonesty\n\n5 YEAR HORIZON\na garden", data.Content)
	assert.Equal(t, 2, data.EditCount)
	assert.Equal(t, int64(123), data.LastEdited)
}

func TestBlueprint_jsonRoundTrip(t *testing.T) {
	b := testBlueprint()
	require.True(t, b.Unlock("sesame"))
	require.NoError(t, b.StartEdit())
	require.NoError(t, b.SetDraft("my manifesto"))
	_, err := b.Save()
	require.NoError(t, err)

	encoded, err := b.MarshalJSON()
	require.NoError(t, err)

	reloaded := testBlueprint()
	require.NoError(t, reloaded.UnmarshalJSON(encoded))
	require.True(t, reloaded.Unlock("sesame"))
	data, err := reloaded.Data()
	require.NoError(t, err)
	assert.Equal(t, "my manifesto", data.Content)
	assert.Equal(t, 1, data.EditCount)
}
