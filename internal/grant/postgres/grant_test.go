package postgres

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/grantify/grant-management/internal/grant"
)

func TestGrantRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "GrantRepository Suite")
}

var _ = Describe("GrantRepository", func() {
	var (
		db   *gorm.DB
		repo grant.Repository
	)

	newGrant := func(id, name string, closeDate time.Time) *grant.Grant {
		return &grant.Grant{
			ID:              id,
			GrantName:       name,
			Status:          "Pending",
			OpenDate:        closeDate.AddDate(0, -3, 0),
			CloseDate:       closeDate,
			AmountRequested: decimal.NewFromInt(10000),
		}
	}

	BeforeEach(func() {
		var err error

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&grant.Grant{})
		Expect(err).NotTo(HaveOccurred())

		repo = NewGrantRepository(db)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		err = sqlDB.Close()
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Create and GetByID", func() {
		It("should round-trip a grant with optional fields", func() {
			approved := decimal.NewFromFloat(7500.50)
			agency := "Dept. of Education"
			g := newGrant("g-1", "Library Renovation", time.Date(2022, time.June, 1, 0, 0, 0, 0, time.UTC))
			g.AmountApproved = &approved
			g.SponsoringAgency = &agency

			Expect(repo.Create(g)).To(Succeed())

			retrieved, err := repo.GetByID("g-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(retrieved.GrantName).To(Equal("Library Renovation"))
			Expect(retrieved.AmountApproved).NotTo(BeNil())
			Expect(retrieved.AmountApproved.Equal(approved)).To(BeTrue())
			Expect(*retrieved.SponsoringAgency).To(Equal("Dept. of Education"))
		})

		It("should return ErrGrantNotFound for a missing id", func() {
			_, err := repo.GetByID("g-404")
			Expect(err).To(Equal(grant.ErrGrantNotFound))
		})
	})

	Describe("GetAll", func() {
		It("should order rows by close date ascending", func() {
			Expect(repo.Create(newGrant("g-late", "Late", time.Date(2022, time.September, 1, 0, 0, 0, 0, time.UTC)))).To(Succeed())
			Expect(repo.Create(newGrant("g-early", "Early", time.Date(2022, time.April, 1, 0, 0, 0, 0, time.UTC)))).To(Succeed())
			Expect(repo.Create(newGrant("g-mid", "Mid", time.Date(2022, time.June, 1, 0, 0, 0, 0, time.UTC)))).To(Succeed())

			grants, err := repo.GetAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(grants).To(HaveLen(3))
			Expect(grants[0].GrantName).To(Equal("Early"))
			Expect(grants[1].GrantName).To(Equal("Mid"))
			Expect(grants[2].GrantName).To(Equal("Late"))
		})
	})

	Describe("Search", func() {
		BeforeEach(func() {
			Expect(repo.Create(newGrant("g-1", "Library Renovation", time.Date(2022, time.June, 1, 0, 0, 0, 0, time.UTC)))).To(Succeed())
			Expect(repo.Create(newGrant("g-2", "STEM Laboratory", time.Date(2022, time.July, 1, 0, 0, 0, 0, time.UTC)))).To(Succeed())
			Expect(repo.Create(newGrant("g-3", "Sports Field", time.Date(2022, time.August, 1, 0, 0, 0, 0, time.UTC)))).To(Succeed())
		})

		It("should match substrings case-insensitively", func() {
			grants, err := repo.Search("labor")
			Expect(err).NotTo(HaveOccurred())
			Expect(grants).To(HaveLen(1))
			Expect(grants[0].GrantName).To(Equal("STEM Laboratory"))
		})

		It("should return an empty result for no matches", func() {
			grants, err := repo.Search("nonexistent")
			Expect(err).NotTo(HaveOccurred())
			Expect(grants).To(BeEmpty())
		})
	})

	Describe("Update", func() {
		It("should persist changed fields", func() {
			g := newGrant("g-1", "Original", time.Date(2022, time.June, 1, 0, 0, 0, 0, time.UTC))
			Expect(repo.Create(g)).To(Succeed())

			g.GrantName = "Renamed"
			g.Status = "Approved"
			Expect(repo.Update(g)).To(Succeed())

			retrieved, err := repo.GetByID("g-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(retrieved.GrantName).To(Equal("Renamed"))
			Expect(retrieved.Status).To(Equal("Approved"))
		})
	})

	Describe("Delete", func() {
		It("should remove the row", func() {
			Expect(repo.Create(newGrant("g-1", "Doomed", time.Date(2022, time.June, 1, 0, 0, 0, 0, time.UTC)))).To(Succeed())

			Expect(repo.Delete("g-1")).To(Succeed())

			_, err := repo.GetByID("g-1")
			Expect(err).To(Equal(grant.ErrGrantNotFound))
		})
	})
})
