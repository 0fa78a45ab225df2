package view_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/grantify/grant-management/internal/view"
)

var _ = Describe("Paginate", func() {
	items := func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = i + 1
		}
		return out
	}

	Context("with a collection that fills several pages", func() {
		It("should compute the full page range", func() {
			page := view.Paginate(items(23), 1, 5)

			Expect(page.Range).To(Equal([]int{1, 2, 3, 4, 5}))
			Expect(page.Number).To(Equal(1))
		})

		It("should return a full slice for every page except the last", func() {
			for p := 1; p <= 4; p++ {
				page := view.Paginate(items(23), p, 5)
				Expect(page.Slice).To(HaveLen(5))
			}
		})

		It("should return the remainder on the last page", func() {
			page := view.Paginate(items(23), 5, 5)

			Expect(page.Slice).To(Equal([]int{21, 22, 23}))
		})

		It("should keep a full last page when the size divides evenly", func() {
			page := view.Paginate(items(20), 4, 5)

			Expect(page.Range).To(HaveLen(4))
			Expect(page.Slice).To(HaveLen(5))
		})
	})

	Context("when the last page empties out", func() {
		It("should decrement the page by exactly one", func() {
			// 11 items put one entry on page 3; deleting it leaves 10
			page := view.Paginate(items(10), 3, 5)

			Expect(page.Number).To(Equal(2))
			Expect(page.Slice).To(Equal([]int{6, 7, 8, 9, 10}))
		})

		It("should walk back to the last populated page after a bulk removal", func() {
			page := view.Paginate(items(4), 9, 5)

			Expect(page.Number).To(Equal(1))
			Expect(page.Slice).To(Equal([]int{1, 2, 3, 4}))
		})
	})

	Context("with an empty collection", func() {
		It("should return an empty range and slice and preserve the page", func() {
			page := view.Paginate([]int{}, 4, 5)

			Expect(page.Range).To(BeEmpty())
			Expect(page.Slice).To(BeEmpty())
			Expect(page.Number).To(Equal(4))
		})
	})

	Context("with degenerate arguments", func() {
		It("should treat page numbers below one as page one", func() {
			page := view.Paginate(items(3), 0, 5)

			Expect(page.Number).To(Equal(1))
			Expect(page.Slice).To(Equal([]int{1, 2, 3}))
		})

		It("should not panic on a non-positive page size", func() {
			page := view.Paginate(items(3), 1, 0)

			Expect(page.Slice).To(Equal([]int{1}))
			Expect(page.Range).To(Equal([]int{1, 2, 3}))
		})
	})
})
