package questionnaire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCustomAmountInput(t *testing.T) {
	valid := []string{"", "5", "0.1", "0.", ".5", "1000", "999.99"}
	for _, raw := range valid {
		assert.True(t, ValidCustomAmountInput(raw), "input %q", raw)
	}

	invalid := []string{"1.234", "abc", "1,5", "-5", "1.2.3", " 5"}
	for _, raw := range invalid {
		assert.False(t, ValidCustomAmountInput(raw), "input %q", raw)
	}
}

func TestParseCustomAmount(t *testing.T) {
	v, ok := ParseCustomAmount("12.5")
	assert.True(t, ok)
	assert.Equal(t, 12.5, v)

	_, ok = ParseCustomAmount("")
	assert.False(t, ok)

	_, ok = ParseCustomAmount(".")
	assert.False(t, ok)

	_, ok = ParseCustomAmount("abc")
	assert.False(t, ok)
}

func TestValidateReward(t *testing.T) {
	assert.Empty(t, ValidateReward(RewardPreset5, ""))
	assert.Empty(t, ValidateReward(RewardPreset10, ""))
	assert.Empty(t, ValidateReward(RewardPreset15, ""))

	assert.Equal(t, "Selecciona una recompensa", ValidateReward("", ""))
	assert.Equal(t, "Selecciona una recompensa", ValidateReward("20", ""))

	assert.Empty(t, ValidateReward(RewardPresetCustom, "0.1"))
	assert.Empty(t, ValidateReward(RewardPresetCustom, "1000"))
	assert.Equal(t, "Ingresa un monto válido", ValidateReward(RewardPresetCustom, ""))
	assert.Equal(t, "Ingresa un monto válido", ValidateReward(RewardPresetCustom, "abc"))
	assert.Equal(t, "El monto mínimo es 0.1 XLM", ValidateReward(RewardPresetCustom, "0.09"))
	assert.Equal(t, "El monto máximo es 1000 XLM", ValidateReward(RewardPresetCustom, "1000.01"))
}

func TestRewardAmount(t *testing.T) {
	v, ok := RewardAmount(RewardPreset5, "")
	assert.True(t, ok)
	assert.Equal(t, 5.0, v)

	v, ok = RewardAmount(RewardPresetCustom, "42.25")
	assert.True(t, ok)
	assert.Equal(t, 42.25, v)

	_, ok = RewardAmount(RewardPresetCustom, "0.01")
	assert.False(t, ok)

	_, ok = RewardAmount("", "")
	assert.False(t, ok)
}
