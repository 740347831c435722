package contentfilter

import (
	"strings"

	"github.com/carnote/contentfilter/dict"
	"github.com/carnote/contentfilter/normalize"
	"github.com/carnote/contentfilter/pattern"
)

// ScamDetector finds sensitive identifiers that indicate payment fraud:
// national IDs, credit cards, crypto wallets, and bank accounts. Identifier
// checks validate checksums where one exists, so a random digit run is
// never misreported as a card or ID.
type ScamDetector struct {
	// Words is the dictionary snapshot for this call.
	Words *dict.Snapshot

	// IncludeKeywordDensity enables the scam keyword-density check (three
	// or more distinct hits). Wired but shipped disabled, same reasoning
	// as the harassment list.
	IncludeKeywordDensity bool
}

// Name returns the detector name.
func (ScamDetector) Name() string { return "scam" }

// Detect scans for scam identifiers in priority order: national ID, credit
// card, crypto wallet, bank account, keyword density.
func (d ScamDetector) Detect(original, normalized string) ViolationList {
	var violations ViolationList

	for _, cand := range pattern.FindTaiwanIDCandidates(normalized) {
		if pattern.IsValidTaiwanID(cand) {
			violations = append(violations, NewViolation(KindNationalID, SeverityHigh, cand))
		}
	}

	digitRuns := normalize.ExtractNumberSequences(original)

	cardRuns := make(map[string]struct{})
	for _, run := range digitRuns {
		if pattern.IsValidCreditCard(run) {
			cardRuns[run] = struct{}{}
			violations = append(violations, NewViolation(KindCreditCard, SeverityHigh, run))
		}
	}

	violations = append(violations, d.detectCrypto(original)...)
	violations = append(violations, d.detectBankAccount(normalized, digitRuns, cardRuns)...)

	if d.IncludeKeywordDensity {
		violations = append(violations, d.detectKeywordDensity(normalized)...)
	}

	return violations
}

// detectCrypto scans the original text and a case-preserving normalized
// variant. Full normalization lowercases, which destroys the base58
// capitalization BTC and TRON addresses depend on.
func (d ScamDetector) detectCrypto(original string) ViolationList {
	var violations ViolationList
	seen := make(map[string]struct{})

	caseKept := normalize.Normalize(original, normalize.Options{
		RemoveWhitespace: true,
		RemoveSeparators: true,
		ReplaceChars:     true,
	})

	for _, text := range []string{original, caseKept} {
		for _, addr := range pattern.FindCryptoAddresses(text) {
			if _, dup := seen[addr]; dup {
				continue
			}
			seen[addr] = struct{}{}
			violations = append(violations, NewViolation(KindCryptoWallet, SeverityHigh, addr))
		}
	}

	return violations
}

// detectBankAccount flags 10-16 digit runs, but only when a money-related
// keyword appears somewhere in the text. Bare long digit runs are too
// common (order numbers, dates) to flag without contextual corroboration.
func (d ScamDetector) detectBankAccount(normalized string, digitRuns []string, cardRuns map[string]struct{}) ViolationList {
	moneyContext := false
	for _, kw := range d.Words.MoneyKeywords() {
		if strings.Contains(normalized, kw) {
			moneyContext = true
			break
		}
	}
	if !moneyContext {
		return nil
	}

	var violations ViolationList
	for _, run := range digitRuns {
		if len(run) < 10 || len(run) > 16 {
			continue
		}
		if pattern.IsRepeatedDigitRun(run) {
			continue
		}
		// Already reported as a credit card.
		if _, isCard := cardRuns[run]; isCard {
			continue
		}
		violations = append(violations, NewViolation(KindBankAccount, SeverityHigh, run))
	}
	return violations
}

// detectKeywordDensity fires only on three or more distinct scam keywords;
// individually the words are too common to act on.
func (d ScamDetector) detectKeywordDensity(normalized string) ViolationList {
	var hits []string
	for _, kw := range d.Words.ScamKeywords() {
		if strings.Contains(normalized, kw) {
			hits = append(hits, kw)
		}
	}
	if len(hits) < 3 {
		return nil
	}
	return ViolationList{NewViolation(KindScamKeyword, SeverityMedium, strings.Join(hits, "、"))}
}
