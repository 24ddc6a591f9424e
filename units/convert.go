package units

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
)

// OctasDecimals is the minor-unit resolution of the ledger currency:
// 1 APT = 10^8 octas.
const OctasDecimals = 8

var octasPerAPT = uint256.NewInt(100_000_000)

// ToOctas converts a human decimal APT string into octas using exact integer
// arithmetic. Fractional digits beyond the 8th are truncated silently, so
// "0.000000001" converts to 0. Negative or non-numeric input is rejected.
func ToOctas(v string) (*uint256.Int, error) {
	s := strings.TrimSpace(v)
	if s == "" {
		return nil, fmt.Errorf("units: empty amount")
	}
	if strings.HasPrefix(s, "-") {
		return nil, fmt.Errorf("units: negative amount %q", v)
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if strings.Contains(frac, ".") {
		return nil, fmt.Errorf("units: malformed amount %q", v)
	}

	// Right-pad, then truncate the fraction to exactly 8 digits.
	fracPadded := (frac + "00000000")[:OctasDecimals]

	wholeInt, err := uint256.FromDecimal(whole)
	if err != nil {
		return nil, fmt.Errorf("units: malformed amount %q: %w", v, err)
	}
	fracInt, err := strconv.ParseUint(fracPadded, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("units: malformed amount %q: %w", v, err)
	}

	out := new(uint256.Int)
	if _, overflow := out.MulOverflow(wholeInt, octasPerAPT); overflow {
		return nil, fmt.Errorf("units: amount %q too large", v)
	}
	if _, overflow := out.AddOverflow(out, uint256.NewInt(fracInt)); overflow {
		return nil, fmt.Errorf("units: amount %q too large", v)
	}
	return out, nil
}

// FromOctas renders an octas amount as a decimal APT string with trailing
// fractional zeros removed.
func FromOctas(v *uint256.Int) string {
	if v == nil {
		return "0"
	}
	whole := new(uint256.Int)
	frac := new(uint256.Int)
	whole.DivMod(v, octasPerAPT, frac)
	if frac.IsZero() {
		return whole.Dec()
	}
	fracStr := frac.Dec()
	if pad := OctasDecimals - len(fracStr); pad > 0 {
		fracStr = strings.Repeat("0", pad) + fracStr
	}
	fracStr = strings.TrimRight(fracStr, "0")
	return whole.Dec() + "." + fracStr
}

// ParseQuantity parses a whole-unit quantity string (tons) into an exact
// integer. Decimal fractions are not valid quantities.
func ParseQuantity(v string) (*uint256.Int, error) {
	s := strings.TrimSpace(v)
	if s == "" {
		return nil, fmt.Errorf("units: empty quantity")
	}
	qty, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("units: malformed quantity %q: %w", v, err)
	}
	return qty, nil
}
