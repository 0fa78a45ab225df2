package view_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/grantify/grant-management/internal/view"
)

var _ = Describe("WithinDeadlineWindow", func() {
	now := time.Date(2022, time.March, 15, 12, 0, 0, 0, time.UTC)

	It("should include a close date three days out with a seven day range", func() {
		closeDate := now.Add(3 * 24 * time.Hour)

		Expect(view.WithinDeadlineWindow(closeDate, 7, now)).To(BeTrue())
	})

	It("should exclude a close date ten days out with a seven day range", func() {
		closeDate := now.Add(10 * 24 * time.Hour)

		Expect(view.WithinDeadlineWindow(closeDate, 7, now)).To(BeFalse())
	})

	It("should exclude past close dates regardless of distance", func() {
		Expect(view.WithinDeadlineWindow(now.Add(-time.Hour), 7, now)).To(BeFalse())
		Expect(view.WithinDeadlineWindow(now.Add(-30*24*time.Hour), 365, now)).To(BeFalse())
	})

	It("should exclude a close date equal to now", func() {
		Expect(view.WithinDeadlineWindow(now, 7, now)).To(BeFalse())
	})

	It("should include same-day deadlines regardless of the day range", func() {
		closeDate := now.Add(5 * time.Hour)

		Expect(view.WithinDeadlineWindow(closeDate, 0, now)).To(BeTrue())
	})

	It("should include a close date exactly at the range boundary", func() {
		closeDate := now.Add(7 * 24 * time.Hour)

		Expect(view.WithinDeadlineWindow(closeDate, 7, now)).To(BeTrue())
	})
})
