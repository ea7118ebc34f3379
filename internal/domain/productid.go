package domain

import "unicode/utf16"

// DeriveProductID computes the numeric product key for a product name.
// It folds the name's UTF-16 code units with acc = (acc << 5) - acc + unit,
// wrapping at 32-bit signed integer boundaries on every step, and returns
// the absolute value. This reproduces the hash the storefront web client
// has always used for its product keys, so names hash to the same rows
// regardless of which side wrote them.
//
// The empty string derives to 0. The function is deterministic but not
// collision-free; the product name is stored alongside the key so rows
// remain attributable.
func DeriveProductID(name string) int64 {
	var acc int32
	for _, unit := range utf16.Encode([]rune(name)) {
		acc = (acc << 5) - acc + int32(unit)
	}
	if acc < 0 {
		return -int64(acc)
	}
	return int64(acc)
}
