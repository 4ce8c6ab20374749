package models

// SavingMode selects how setting a new target treats existing state.
type SavingMode string

// The labels are stored verbatim in data.json. The original application
// wrote Chinese labels, so they are kept for on-disk compatibility.
const (
	// ModeAccumulate keeps balance and history when the target changes.
	ModeAccumulate SavingMode = "累积存钱模式"
	// ModePerTarget starts a fresh record every time the target changes.
	ModePerTarget SavingMode = "单目标存钱模式"
)

// ParseSavingMode maps a stored label to a mode. Unknown labels fall back
// to ModeAccumulate, consistent with the defaults-on-load policy.
func ParseSavingMode(s string) SavingMode {
	if s == string(ModePerTarget) {
		return ModePerTarget
	}
	return ModeAccumulate
}

// Valid reports whether m is one of the two known modes.
func (m SavingMode) Valid() bool {
	return m == ModeAccumulate || m == ModePerTarget
}
