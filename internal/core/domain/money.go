package domain

import (
	"fmt"
	"math/big"
)

// maxMoneyBits caps money values at 256 bits. Multiplications that exceed the
// cap fail explicitly instead of being truncated.
const maxMoneyBits = 256

// FeeBpsDenominator converts basis points to a fraction (10000 = 100%).
const FeeBpsDenominator = 10000

// ParseMoney parses a non-negative decimal string into a money amount.
func ParseMoney(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount %q", s)
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("amount %q is negative", s)
	}
	if v.BitLen() > maxMoneyBits {
		return nil, fmt.Errorf("amount %q exceeds %d bits", s, maxMoneyBits)
	}
	return v, nil
}

// CheckedTotalPrice computes creditsAmount * pricePerCredit, failing when the
// product exceeds the supported money range.
func CheckedTotalPrice(creditsAmount int64, pricePerCredit *big.Int) (*big.Int, error) {
	if creditsAmount <= 0 {
		return nil, fmt.Errorf("credits amount must be positive, got %d", creditsAmount)
	}
	total := new(big.Int).Mul(big.NewInt(creditsAmount), pricePerCredit)
	if total.BitLen() > maxMoneyBits {
		return nil, fmt.Errorf("total price exceeds %d bits", maxMoneyBits)
	}
	return total, nil
}

// SplitFee splits totalPrice into platform fee and seller proceeds.
// fee = floor(totalPrice * feeBps / 10000); fee + proceeds == totalPrice.
func SplitFee(totalPrice *big.Int, feeBps int64) (fee, proceeds *big.Int) {
	fee = new(big.Int).Mul(totalPrice, big.NewInt(feeBps))
	fee.Div(fee, big.NewInt(FeeBpsDenominator))
	proceeds = new(big.Int).Sub(totalPrice, fee)
	return fee, proceeds
}

// mulDivFloor computes floor(a * b / div) with a 128-bit intermediate product,
// failing when the result does not fit in int64.
func mulDivFloor(a, b, div int64) (int64, error) {
	if a < 0 || b < 0 || div <= 0 {
		return 0, fmt.Errorf("invalid operands %d * %d / %d", a, b, div)
	}
	r := new(big.Int).Mul(big.NewInt(a), big.NewInt(b))
	r.Div(r, big.NewInt(div))
	if !r.IsInt64() {
		return 0, fmt.Errorf("result of %d * %d / %d overflows int64", a, b, div)
	}
	return r.Int64(), nil
}
