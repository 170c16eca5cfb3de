package questionnaire

import (
	"regexp"
	"strconv"
)

// Reward presets. The three fixed presets carry their XLM amount in the
// value; "custom" takes the amount from free input.
const (
	RewardPreset5      = "5"
	RewardPreset10     = "10"
	RewardPreset15     = "15"
	RewardPresetCustom = "custom"
)

// Custom amount bounds in XLM.
const (
	MinReward = 0.1
	MaxReward = 1000
)

// customAmountPattern admits digits, an optional decimal point, and at most
// two decimals while the value is being typed, so intermediate states like
// "0." pass.
var customAmountPattern = regexp.MustCompile(`^\d*\.?\d{0,2}$`)

// ValidCustomAmountInput reports whether raw is acceptable as in-progress
// custom amount input.
func ValidCustomAmountInput(raw string) bool {
	return customAmountPattern.MatchString(raw)
}

// ParseCustomAmount parses a completed custom amount entry. It returns false
// for malformed input; range checking is ValidateReward's job.
func ParseCustomAmount(raw string) (float64, bool) {
	if raw == "" || !customAmountPattern.MatchString(raw) {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ValidateReward checks the rewards step. preset is the selected preset key
// and customRaw the custom amount input, only consulted for the custom
// preset. It returns "" when valid.
func ValidateReward(preset, customRaw string) string {
	switch preset {
	case RewardPreset5, RewardPreset10, RewardPreset15:
		return ""
	case RewardPresetCustom:
		v, ok := ParseCustomAmount(customRaw)
		if !ok {
			return "Ingresa un monto válido"
		}
		if v < MinReward {
			return "El monto mínimo es 0.1 XLM"
		}
		if v > MaxReward {
			return "El monto máximo es 1000 XLM"
		}
		return ""
	default:
		return "Selecciona una recompensa"
	}
}

// RewardAmount resolves the effective XLM amount for a valid rewards step.
func RewardAmount(preset, customRaw string) (float64, bool) {
	switch preset {
	case RewardPreset5:
		return 5, true
	case RewardPreset10:
		return 10, true
	case RewardPreset15:
		return 15, true
	case RewardPresetCustom:
		v, ok := ParseCustomAmount(customRaw)
		if !ok || v < MinReward || v > MaxReward {
			return 0, false
		}
		return v, true
	default:
		return 0, false
	}
}
