package model

import (
	"fmt"
	"strconv"
	"strings"
)

// SteamID uniquely identifies a player. It is stored as the 64-bit form and
// used as the record map key.
type SteamID uint64

// Individual account in the public universe
const steamID64Base uint64 = 0x0110000100000000

// ParseSteamID accepts either a SteamID64 ("76561197960287930") or the
// Steam3 form reported by the game console ("[U:1:22202]").
func ParseSteamID(s string) (SteamID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidSteamID)
	}

	if strings.HasPrefix(s, "[") {
		return parseSteam3(s)
	}

	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSteamID, s)
	}
	return SteamID(id), nil
}

func parseSteam3(s string) (SteamID, error) {
	inner, ok := strings.CutPrefix(s, "[U:1:")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSteamID, s)
	}
	inner, ok = strings.CutSuffix(inner, "]")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSteamID, s)
	}

	account, err := strconv.ParseUint(inner, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSteamID, s)
	}
	return SteamID(steamID64Base + account), nil
}

// AccountID returns the lower 32 bits of the id
func (id SteamID) AccountID() uint32 {
	return uint32(uint64(id) & 0xFFFFFFFF)
}

// Steam3 formats the id as "[U:1:<account>]"
func (id SteamID) Steam3() string {
	return fmt.Sprintf("[U:1:%d]", id.AccountID())
}

func (id SteamID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}
