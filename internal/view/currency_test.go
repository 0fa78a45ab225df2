package view_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/grantify/grant-management/internal/view"
)

var _ = Describe("FormatCurrency", func() {
	It("should render two decimals with thousands separators", func() {
		Expect(view.FormatCurrency(decimal.NewFromFloat(1234567.891))).To(Equal("1,234,567.89"))
	})

	It("should pad whole amounts to two decimals", func() {
		Expect(view.FormatCurrency(decimal.NewFromInt(2000))).To(Equal("2,000.00"))
	})

	It("should round half-up", func() {
		Expect(view.FormatCurrency(decimal.NewFromFloat(10.005))).To(Equal("10.01"))
	})

	It("should render small amounts without separators", func() {
		Expect(view.FormatCurrency(decimal.NewFromFloat(599.41))).To(Equal("599.41"))
	})
})

var _ = Describe("RemainingBalance", func() {
	spent := func(d decimal.Decimal) decimal.Decimal { return d }

	It("should subtract the summed expenses from the approved amount", func() {
		approved := decimal.NewFromInt(1000)
		expenses := []decimal.Decimal{decimal.NewFromFloat(400.59)}

		balance, ok := view.RemainingBalance(&approved, expenses, spent)

		Expect(ok).To(BeTrue())
		Expect(balance.String()).To(Equal("599.41"))
	})

	It("should sum multiple expense rows", func() {
		approved := decimal.NewFromInt(5000)
		expenses := []decimal.Decimal{
			decimal.NewFromFloat(1200.50),
			decimal.NewFromFloat(799.50),
			decimal.NewFromInt(1000),
		}

		balance, ok := view.RemainingBalance(&approved, expenses, spent)

		Expect(ok).To(BeTrue())
		Expect(balance.String()).To(Equal("2000"))
	})

	It("should be undefined for an empty expense list", func() {
		approved := decimal.NewFromInt(1000)

		_, ok := view.RemainingBalance(&approved, []decimal.Decimal{}, spent)

		Expect(ok).To(BeFalse())
	})

	It("should be undefined when no amount was approved", func() {
		expenses := []decimal.Decimal{decimal.NewFromFloat(400.59)}

		_, ok := view.RemainingBalance(nil, expenses, spent)

		Expect(ok).To(BeFalse())
	})

	It("should allow the balance to go negative", func() {
		approved := decimal.NewFromInt(100)
		expenses := []decimal.Decimal{decimal.NewFromFloat(150.25)}

		balance, ok := view.RemainingBalance(&approved, expenses, spent)

		Expect(ok).To(BeTrue())
		Expect(balance.String()).To(Equal("-50.25"))
	})
})
