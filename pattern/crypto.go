package pattern

import "regexp"

// Crypto wallet shapes. Shape-only checks: no base58/bech32 checksum
// validation, matching the precision the product needs for blocking.
var (
	// btcLegacyPattern matches P2PKH/P2SH addresses: 1 or 3 followed by
	// 25-34 base58 characters (no 0, O, I, l).
	btcLegacyPattern = regexp.MustCompile(`\b[13][1-9A-HJ-NP-Za-km-z]{25,34}\b`)

	// btcBech32Pattern matches native segwit addresses.
	btcBech32Pattern = regexp.MustCompile(`\bbc1[a-z0-9]{25,59}\b`)

	// ethPattern matches Ethereum addresses: 0x plus 40 hex characters.
	ethPattern = regexp.MustCompile(`\b0x[0-9a-fA-F]{40}\b`)

	// trcPattern matches TRON TRC20 addresses: T plus 33 base58 characters.
	trcPattern = regexp.MustCompile(`\bT[1-9A-HJ-NP-Za-km-z]{33}\b`)
)

// FindCryptoAddresses returns every crypto-wallet-shaped substring in
// text, in scan order: BTC legacy, BTC Bech32, ETH, TRC20.
func FindCryptoAddresses(text string) []string {
	var matches []string
	for _, p := range []*regexp.Regexp{btcLegacyPattern, btcBech32Pattern, ethPattern, trcPattern} {
		matches = append(matches, p.FindAllString(text, -1)...)
	}
	return matches
}
