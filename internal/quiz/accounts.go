package quiz

// Ledger account names used across the question catalogs. Display names,
// not codes; the marking engine compares them verbatim (trimmed).
const (
	AccBank          = "Bank"
	AccCapital       = "Capital"
	AccDrawings      = "Drawings"
	AccSales         = "Sales"
	AccPurchases     = "Purchases"
	AccRent          = "Rent expense"
	AccWages         = "Wages expense"
	AccUtilities     = "Utilities expense"
	AccEquipment     = "Equipment"
	AccReceivables   = "Trade receivables"
	AccPayables      = "Trade payables"
	AccSalesReturns  = "Sales returns"
	AccPurchReturns  = "Purchase returns"
	AccVATInput      = "VAT input"
	AccVATOutput     = "VAT output"
	AccDiscReceived  = "Discount received"
	AccDiscAllowed   = "Discount allowed"
	AccDepreciation  = "Depreciation expense"
	AccAccumDep      = "Accumulated depreciation"
	AccBadDebt       = "Bad debt expense"
	AccDoubtfulDebts = "Allowance for doubtful debts"
	AccAccruals      = "Accruals"
	AccPrepayments   = "Prepayments"
	AccSuspense      = "Suspense"
)

var baseAccounts = []string{
	AccBank, AccCapital, AccDrawings, AccSales, AccPurchases,
	AccRent, AccWages, AccUtilities, AccEquipment,
	AccReceivables, AccPayables,
	AccSalesReturns, AccPurchReturns,
}

var vatAccounts = []string{AccVATInput, AccVATOutput}

var discountAccounts = []string{AccDiscAllowed, AccDiscReceived}

var adjustmentAccounts = []string{
	AccAccruals, AccPrepayments, AccDepreciation, AccAccumDep,
	AccBadDebt, AccDoubtfulDebts,
}

// accountCatalog maps each tier to the account names unlocked for it.
// The sets grow monotonically: every tier includes all earlier tiers'
// accounts, so round options never shrink as difficulty rises.
var accountCatalog = map[Tier][]string{
	TierFoundations: baseAccounts,
	TierCredit:      baseAccounts,
	TierVAT: concat(baseAccounts, vatAccounts, discountAccounts,
		[]string{AccDepreciation, AccAccumDep}),
	TierAdjustments: concat(baseAccounts, vatAccounts, discountAccounts, adjustmentAccounts),
	TierCorrections: concat(baseAccounts, vatAccounts, discountAccounts, adjustmentAccounts,
		[]string{AccSuspense}),
}

// AccountOptions returns the ordered account names available for a round,
// for populating the entry builder's account picker.
func AccountOptions(roundNo int) []string {
	options := accountCatalog[TierFor(roundNo)]
	out := make([]string, len(options))
	copy(out, options)
	return out
}

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
