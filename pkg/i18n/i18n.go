// Package i18n resolves calculator message keys to localized strings. The
// calculator core emits classification keys, never literal text; callers pick
// a Bundle for the user's language and resolve keys through it.
package i18n

import "golang.org/x/text/language"

var supported = []language.Tag{
	language.English, // first entry is the fallback
	language.Ukrainian,
}

var matcher = language.NewMatcher(supported)

var translations = map[language.Tag]map[string]string{
	language.English: {
		"title":           "Crypto Loan Calculator",
		"loanPositions":   "Loan Positions",
		"interestRates":   "Interest Rates",
		"results":         "Results",
		"initialDebt":     "Initial Debt",
		"totalInterest":   "Total Interest",
		"monthlyInterest": "Monthly Interest",
		"finalDebt":       "Final Debt",
		"effectiveRate":   "Effective Rate",
		"totalCollateral": "Total Collateral",
		"priceScenarios":  "Price Scenarios",
		"requiredBtc":     "Required BTC",
		"remainingBtc":    "Remaining BTC",
		"ofCollateral":    "of collateral",
		"loanDuration":    "Loan duration",
		"monthsLeft":      "left",
		"specifyRates":    "Please specify interest rates for the entire loan duration",
		"adjustedRates":   "Interest rates have been adjusted for the new loan duration",
	},
	language.Ukrainian: {
		"title":           "Калькулятор Крипто Позик",
		"loanPositions":   "Позиції позики",
		"interestRates":   "Процентні ставки",
		"results":         "Результати",
		"initialDebt":     "Початковий борг",
		"totalInterest":   "Загальні відсотки",
		"monthlyInterest": "Щомісячні відсотки",
		"finalDebt":       "Кінцевий борг",
		"effectiveRate":   "Ефективна ставка",
		"totalCollateral": "Загальна застава",
		"priceScenarios":  "Цінові сценарії",
		"requiredBtc":     "Необхідно BTC",
		"remainingBtc":    "Залишок BTC",
		"ofCollateral":    "від застави",
		"loanDuration":    "Тривалість позики",
		"monthsLeft":      "залишилось",
		"specifyRates":    "Будь ласка, вкажіть процентні ставки на весь термін позики",
		"adjustedRates":   "Процентні ставки було скориговано для нової тривалості позики",
	},
}

// Bundle resolves message keys for one matched language.
type Bundle struct {
	tag language.Tag
}

// ForTags returns the bundle best matching the given BCP-47 tags or
// Accept-Language header values. Unknown or empty input falls back to English.
func ForTags(tags ...string) Bundle {
	_, index := language.MatchStrings(matcher, tags...)
	return Bundle{tag: supported[index]}
}

// Tag returns the language tag the bundle resolved to.
func (b Bundle) Tag() language.Tag {
	return b.tag
}

// T resolves a message key, falling back to English and finally to the key
// itself so a missing translation is visible rather than silent.
func (b Bundle) T(key string) string {
	if msg, ok := translations[b.tag][key]; ok {
		return msg
	}
	if msg, ok := translations[language.English][key]; ok {
		return msg
	}
	return key
}
