package quiz

import (
	"github.com/abhisek/ledgerdrill/internal/journal"
)

// Tier is a difficulty band. Each tier owns a fixed catalog of transaction
// templates and an amount range.
type Tier int

const (
	TierFoundations Tier = iota // cash transactions, capital, expenses
	TierCredit                  // credit trading and returns
	TierVAT                     // VAT splits, depreciation, discounts
	TierAdjustments             // accruals, prepayments, bad debts, drawings
	TierCorrections             // error correction, suspense, settlement discounts
)

// MaxRound is the highest round number the catalog is tuned for. Higher
// rounds are legal and stay on the top tier.
const MaxRound = 20

func (t Tier) String() string {
	switch t {
	case TierFoundations:
		return "Foundations"
	case TierCredit:
		return "Credit"
	case TierVAT:
		return "VAT"
	case TierAdjustments:
		return "Adjustments"
	case TierCorrections:
		return "Corrections"
	}
	return "Unknown"
}

// TierFor maps a round number (1..20) to its difficulty tier.
func TierFor(roundNo int) Tier {
	switch {
	case roundNo <= 4:
		return TierFoundations
	case roundNo <= 8:
		return TierCredit
	case roundNo <= 12:
		return TierVAT
	case roundNo <= 16:
		return TierAdjustments
	default:
		return TierCorrections
	}
}

// VATRate is the percentage applied by VAT templates.
const VATRate = 20

// SplitVAT derives the tax split for a net amount. The VAT portion is
// integer-truncated, never rounded, so net + vat always equals gross.
func SplitVAT(net int64) (n, vat, gross int64) {
	vat = net * VATRate / 100
	return net, vat, net + vat
}

// SettlementDiscount is the discount granted on early settlement:
// a tenth of the amount (truncating), floored at 50.
func SettlementDiscount(amount int64) int64 {
	d := amount / 10
	if d < 50 {
		return 50
	}
	return d
}

// Template is one scenario type: a prompt pattern and a builder that
// materializes the expected postings for a drawn amount. Builders must
// produce balanced entries by construction; that invariant is enforced by
// tests, not checked at runtime.
type Template struct {
	// Prompt contains {x} for the amount and, where relevant, {d} for
	// the settlement discount.
	Prompt string

	Build func(x int64) []journal.Posting
}

// amountRange is the tier's monetary draw range, stepped.
type amountRange struct {
	lo, hi, step int64
}

var tierAmounts = map[Tier]amountRange{
	TierFoundations: {200, 3000, 100},
	TierCredit:      {300, 6000, 100},
	TierVAT:         {500, 10000, 100},
	TierAdjustments: {200, 8000, 100},
	TierCorrections: {500, 12000, 100},
}

var tierTemplates = map[Tier][]Template{
	TierFoundations: {
		{
			Prompt: "Owner introduced funds into the business £{x}.",
			Build: func(x int64) []journal.Posting {
				return []journal.Posting{
					journal.P(AccBank, journal.Debit, x, "Owner"),
					journal.P(AccCapital, journal.Credit, x, "Owner"),
				}
			},
		},
		{
			Prompt: "Paid rent from bank £{x}.",
			Build: func(x int64) []journal.Posting {
				return []journal.Posting{
					journal.P(AccRent, journal.Debit, x, "Rent"),
					journal.P(AccBank, journal.Credit, x, "Rent"),
				}
			},
		},
		{
			Prompt: "Paid wages from bank £{x}.",
			Build: func(x int64) []journal.Posting {
				return []journal.Posting{
					journal.P(AccWages, journal.Debit, x, "Wages"),
					journal.P(AccBank, journal.Credit, x, "Wages"),
				}
			},
		},
		{
			Prompt: "Bought equipment and paid immediately by bank £{x}.",
			Build: func(x int64) []journal.Posting {
				return []journal.Posting{
					journal.P(AccEquipment, journal.Debit, x, "Equip"),
					journal.P(AccBank, journal.Credit, x, "Equip"),
				}
			},
		},
		{
			Prompt: "Made a sale and received the money in bank £{x}.",
			Build: func(x int64) []journal.Posting {
				return []journal.Posting{
					journal.P(AccBank, journal.Debit, x, "Sale"),
					journal.P(AccSales, journal.Credit, x, "Sale"),
				}
			},
		},
	},
	TierCredit: {
		{
			Prompt: "Sold goods on credit £{x}.",
			Build: func(x int64) []journal.Posting {
				return []journal.Posting{
					journal.P(AccReceivables, journal.Debit, x, "Cr sale"),
					journal.P(AccSales, journal.Credit, x, "Cr sale"),
				}
			},
		},
		{
			Prompt: "Bought goods on credit £{x}.",
			Build: func(x int64) []journal.Posting {
				return []journal.Posting{
					journal.P(AccPurchases, journal.Debit, x, "Cr pur"),
					journal.P(AccPayables, journal.Credit, x, "Cr pur"),
				}
			},
		},
		{
			Prompt: "Customer returned goods worth £{x}.",
			Build: func(x int64) []journal.Posting {
				return []journal.Posting{
					journal.P(AccSalesReturns, journal.Debit, x, "Return"),
					journal.P(AccReceivables, journal.Credit, x, "Return"),
				}
			},
		},
		{
			Prompt: "Returned goods to supplier worth £{x}.",
			Build: func(x int64) []journal.Posting {
				return []journal.Posting{
					journal.P(AccPayables, journal.Debit, x, "Return"),
					journal.P(AccPurchReturns, journal.Credit, x, "Return"),
				}
			},
		},
		{
			Prompt: "Received money from a customer into bank £{x}.",
			Build: func(x int64) []journal.Posting {
				return []journal.Posting{
					journal.P(AccBank, journal.Debit, x, "Receipt"),
					journal.P(AccReceivables, journal.Credit, x, "Receipt"),
				}
			},
		},
		{
			Prompt: "Paid a supplier from bank £{x}.",
			Build: func(x int64) []journal.Posting {
				return []journal.Posting{
					journal.P(AccPayables, journal.Debit, x, "Pay"),
					journal.P(AccBank, journal.Credit, x, "Pay"),
				}
			},
		},
	},
	TierVAT: {
		{
			Prompt: "Bought utilities, net £{x} plus VAT 20%, paid by bank.",
			Build: func(x int64) []journal.Posting {
				net, vat, gross := SplitVAT(x)
				return []journal.Posting{
					journal.P(AccUtilities, journal.Debit, net, "Net"),
					journal.P(AccVATInput, journal.Debit, vat, "VAT"),
					journal.P(AccBank, journal.Credit, gross, "Pay"),
				}
			},
		},
		{
			Prompt: "Made a credit sale, net £{x} plus VAT 20%.",
			Build: func(x int64) []journal.Posting {
				net, vat, gross := SplitVAT(x)
				return []journal.Posting{
					journal.P(AccReceivables, journal.Debit, gross, "Gross"),
					journal.P(AccSales, journal.Credit, net, "Net"),
					journal.P(AccVATOutput, journal.Credit, vat, "VAT"),
				}
			},
		},
		{
			Prompt: "Bought goods on credit, net £{x} plus VAT 20%.",
			Build: func(x int64) []journal.Posting {
				net, vat, gross := SplitVAT(x)
				return []journal.Posting{
					journal.P(AccPurchases, journal.Debit, net, "Net"),
					journal.P(AccVATInput, journal.Debit, vat, "VAT"),
					journal.P(AccPayables, journal.Credit, gross, "Gross"),
				}
			},
		},
		{
			Prompt: "Record depreciation for the period £{x}.",
			Build: func(x int64) []journal.Posting {
				return []journal.Posting{
					journal.P(AccDepreciation, journal.Debit, x, "Dep"),
					journal.P(AccAccumDep, journal.Credit, x, "Dep"),
				}
			},
		},
		{
			Prompt: "Allowed a customer discount £{x}.",
			Build: func(x int64) []journal.Posting {
				return []journal.Posting{
					journal.P(AccDiscAllowed, journal.Debit, x, "Disc"),
					journal.P(AccReceivables, journal.Credit, x, "Disc"),
				}
			},
		},
		{
			Prompt: "Received a supplier discount £{x}.",
			Build: func(x int64) []journal.Posting {
				return []journal.Posting{
					journal.P(AccPayables, journal.Debit, x, "Disc"),
					journal.P(AccDiscReceived, journal.Credit, x, "Disc"),
				}
			},
		},
	},
	TierAdjustments: {
		{
			Prompt: "At period end, rent of £{x} is owing (accrual).",
			Build: func(x int64) []journal.Posting {
				return []journal.Posting{
					journal.P(AccRent, journal.Debit, x, "Accr"),
					journal.P(AccAccruals, journal.Credit, x, "Accr"),
				}
			},
		},
		{
			Prompt: "At period end, utilities of £{x} were paid in advance (prepayment).",
			Build: func(x int64) []journal.Posting {
				return []journal.Posting{
					journal.P(AccPrepayments, journal.Debit, x, "Prep"),
					journal.P(AccUtilities, journal.Credit, x, "Prep"),
				}
			},
		},
		{
			Prompt: "Write off an irrecoverable debt £{x}.",
			Build: func(x int64) []journal.Posting {
				return []journal.Posting{
					journal.P(AccBadDebt, journal.Debit, x, "Bad"),
					journal.P(AccReceivables, journal.Credit, x, "Bad"),
				}
			},
		},
		{
			Prompt: "Create an allowance for doubtful debts £{x}.",
			Build: func(x int64) []journal.Posting {
				return []journal.Posting{
					journal.P(AccBadDebt, journal.Debit, x, "Allow"),
					journal.P(AccDoubtfulDebts, journal.Credit, x, "Allow"),
				}
			},
		},
		{
			Prompt: "Owner took drawings £{x} from bank.",
			Build: func(x int64) []journal.Posting {
				return []journal.Posting{
					journal.P(AccDrawings, journal.Debit, x, "Draw"),
					journal.P(AccBank, journal.Credit, x, "Draw"),
				}
			},
		},
	},
	TierCorrections: {
		{
			Prompt: "Correct this error: equipment £{x} was wrongly debited to purchases.",
			Build: func(x int64) []journal.Posting {
				return []journal.Posting{
					journal.P(AccEquipment, journal.Debit, x, "Corr"),
					journal.P(AccPurchases, journal.Credit, x, "Corr"),
				}
			},
		},
		{
			Prompt: "A one sided error: bank was credited £{x} but the debit entry was missing. Use suspense.",
			Build: func(x int64) []journal.Posting {
				return []journal.Posting{
					journal.P(AccSuspense, journal.Debit, x, "Miss"),
					journal.P(AccBank, journal.Credit, x, "Miss"),
				}
			},
		},
		{
			Prompt: "Clear suspense: the missing debit was rent expense £{x}.",
			Build: func(x int64) []journal.Posting {
				return []journal.Posting{
					journal.P(AccRent, journal.Debit, x, "Clear"),
					journal.P(AccSuspense, journal.Credit, x, "Clear"),
				}
			},
		},
		{
			Prompt: "Customer pays £{x} and we allow a discount of £{d}.",
			Build: func(x int64) []journal.Posting {
				d := SettlementDiscount(x)
				return []journal.Posting{
					journal.P(AccBank, journal.Debit, x, "Settle"),
					journal.P(AccDiscAllowed, journal.Debit, d, "Settle"),
					journal.P(AccReceivables, journal.Credit, x+d, "Settle"),
				}
			},
		},
		{
			Prompt: "We pay a supplier £{x} and receive a discount of £{d}.",
			Build: func(x int64) []journal.Posting {
				d := SettlementDiscount(x)
				return []journal.Posting{
					journal.P(AccPayables, journal.Debit, x+d, "Settle"),
					journal.P(AccBank, journal.Credit, x, "Settle"),
					journal.P(AccDiscReceived, journal.Credit, d, "Settle"),
				}
			},
		},
	},
}

// Templates returns the template catalog for a tier.
func Templates(tier Tier) []Template {
	return tierTemplates[tier]
}
