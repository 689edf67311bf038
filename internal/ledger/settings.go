package ledger

import (
	"fmt"
	"math"
	"strings"

	"boekhouder/pkg/models"
)

// Setting keys recognized on the settings sheet
const (
	KeyManualCorrection = "handmatige_correctie"
)

// ParseSettings builds typed settings from raw key/value pairs. Keys are matched
// case-insensitively; unknown keys are ignored and missing keys keep their defaults.
func ParseSettings(values map[string]string) (models.Settings, error) {
	var settings models.Settings

	for key, raw := range values {
		switch strings.ToLower(strings.TrimSpace(key)) {
		case KeyManualCorrection, "manual_correction":
			v, err := ParseAmount(raw)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return models.Settings{}, fmt.Errorf("%w: %s=%q", ErrInvalidSetting, key, raw)
			}
			settings.ManualCorrection = v
		}
	}

	return settings, nil
}
