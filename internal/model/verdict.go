package model

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// Verdict is what a player has been marked as in the playerlist
type Verdict string

const (
	VerdictPlayer     Verdict = "Player"
	VerdictBot        Verdict = "Bot"
	VerdictSuspicious Verdict = "Suspicious"
	VerdictCheater    Verdict = "Cheater"
	VerdictTrusted    Verdict = "Trusted"
)

// Verdicts returns every verdict, neutral first
func Verdicts() []Verdict {
	return []Verdict{
		VerdictPlayer,
		VerdictBot,
		VerdictSuspicious,
		VerdictCheater,
		VerdictTrusted,
	}
}

// ParseVerdict matches a case name exactly
func ParseVerdict(s string) (Verdict, error) {
	for _, v := range Verdicts() {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidVerdict, s)
}

// IsValid reports whether v is one of the known verdicts
func (v Verdict) IsValid() bool {
	_, err := ParseVerdict(string(v))
	return err == nil
}

func (v Verdict) String() string {
	return string(v)
}

func (v Verdict) MarshalText() ([]byte, error) {
	if !v.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVerdict, string(v))
	}
	return []byte(v), nil
}

func (v *Verdict) UnmarshalText(text []byte) error {
	parsed, err := ParseVerdict(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// UnmarshalJSON rejects null so a verdict is never left half-decoded
func (v *Verdict) UnmarshalJSON(data []byte) error {
	if isNullJSON(data) {
		return fmt.Errorf("%w: null", ErrInvalidVerdict)
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidVerdict, bytes.TrimSpace(data))
	}
	return v.UnmarshalText([]byte(s))
}
