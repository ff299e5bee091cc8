package utils

import (
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var txHashPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// IsValidAddress reports whether s is a well-formed EVM address
func IsValidAddress(s string) bool {
	return common.IsHexAddress(s)
}

// NormalizeAddress lowercases an address for use as a ledger key.
// Every address is normalized at each boundary, reads included.
func NormalizeAddress(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsValidTxHash reports whether s looks like a 32-byte transaction hash
func IsValidTxHash(s string) bool {
	return txHashPattern.MatchString(s)
}

// ChecksumAddress returns the EIP-55 checksummed form, for display only
func ChecksumAddress(s string) string {
	if !common.IsHexAddress(s) {
		return s
	}
	return common.HexToAddress(s).Hex()
}
