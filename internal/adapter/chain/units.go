package chain

import (
	"fmt"
	"math/big"
	"strings"
)

// tokenDecimals is the fixed-point scale of both on-chain tokens.
const tokenDecimals = 18

var unitScale = new(big.Int).Exp(big.NewInt(10), big.NewInt(tokenDecimals), nil)

// toBaseUnits converts a non-negative decimal string ("123.45") to 18-decimal
// base units. Rejects empty, negative, malformed, and over-precise inputs.
func toBaseUnits(amount string) (*big.Int, error) {
	s := strings.TrimSpace(amount)
	if s == "" {
		return nil, fmt.Errorf("amount is empty")
	}
	if strings.HasPrefix(s, "-") {
		return nil, fmt.Errorf("amount must not be negative: %s", amount)
	}
	if strings.HasPrefix(s, "+") {
		s = s[1:]
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > tokenDecimals {
		return nil, fmt.Errorf("amount %s exceeds %d decimal places", amount, tokenDecimals)
	}

	digits := whole + frac + strings.Repeat("0", tokenDecimals-len(frac))
	v, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("malformed amount: %s", amount)
	}
	return v, nil
}

// fromBaseUnits renders 18-decimal base units as a decimal string with
// trailing fraction zeros trimmed ("1500000000000000000" -> "1.5").
func fromBaseUnits(v *big.Int) string {
	q, r := new(big.Int).QuoRem(v, unitScale, new(big.Int))
	if r.Sign() == 0 {
		return q.String()
	}
	frac := fmt.Sprintf("%018s", r.String())
	frac = strings.TrimRight(frac, "0")
	return q.String() + "." + frac
}
