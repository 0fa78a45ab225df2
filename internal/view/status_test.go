package view_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/grantify/grant-management/internal/view"
)

var _ = Describe("ClassifyStatus", func() {
	Context("with the known status values", func() {
		It("should map Approved to the green pairing", func() {
			badge := view.ClassifyStatus("Approved")

			Expect(badge.Known).To(BeTrue())
			Expect(badge.TextColor).To(Equal("green-800"))
			Expect(badge.BgColor).To(Equal("green-100"))
			Expect(badge.Tooltip).To(ContainSubstring("approved"))
		})

		It("should map Declined to the red pairing", func() {
			badge := view.ClassifyStatus("Declined")

			Expect(badge.TextColor).To(Equal("red-700"))
			Expect(badge.BgColor).To(Equal("red-200"))
		})

		It("should map Missed Deadline to the yellow pairing", func() {
			badge := view.ClassifyStatus("Missed Deadline")

			Expect(badge.TextColor).To(Equal("yellow-800"))
			Expect(badge.BgColor).To(Equal("yellow-100"))
			Expect(badge.Tooltip).To(ContainSubstring("close date"))
		})

		It("should map Pending to the blue pairing", func() {
			badge := view.ClassifyStatus("Pending")

			Expect(badge.TextColor).To(Equal("blue-700"))
			Expect(badge.BgColor).To(Equal("blue-100"))
		})

		It("should map Incomplete to the cyan pairing", func() {
			badge := view.ClassifyStatus("Incomplete")

			Expect(badge.TextColor).To(Equal("cyan-900"))
			Expect(badge.BgColor).To(Equal("cyan-200"))
		})

		It("should map Inactive to the gray pairing", func() {
			badge := view.ClassifyStatus("Inactive")

			Expect(badge.TextColor).To(Equal("gray-800"))
			Expect(badge.BgColor).To(Equal("gray-300"))
		})

		It("should carry a tooltip for every known status", func() {
			for _, status := range view.KnownStatuses {
				Expect(view.ClassifyStatus(status).Tooltip).ToNot(BeEmpty())
			}
		})
	})

	Context("with an unrecognized status string", func() {
		It("should render the raw label with no color pairing and no tooltip", func() {
			badge := view.ClassifyStatus("Withdrawn")

			Expect(badge.Known).To(BeFalse())
			Expect(badge.Label).To(Equal("Withdrawn"))
			Expect(badge.TextColor).To(BeEmpty())
			Expect(badge.BgColor).To(BeEmpty())
			Expect(badge.Tooltip).To(BeEmpty())
		})

		It("should not classify the empty string", func() {
			Expect(view.IsKnownStatus("")).To(BeFalse())
		})
	})
})
