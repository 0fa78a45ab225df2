package expense_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/grantify/grant-management/internal/expense"
	"github.com/grantify/grant-management/internal/grant"
)

func TestExpenseService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Expense Service Suite")
}

type mockRepository struct {
	expenses    map[string]*expense.Expense
	returnError error
	deleted     []string
}

func newMockRepository() *mockRepository {
	return &mockRepository{expenses: make(map[string]*expense.Expense)}
}

func (m *mockRepository) add(e *expense.Expense) {
	m.expenses[e.ID] = e
}

func (m *mockRepository) GetByGrant(grantID string) ([]expense.Expense, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	var matched []expense.Expense
	for _, e := range m.expenses {
		if e.GrantID == grantID {
			matched = append(matched, *e)
		}
	}
	return matched, nil
}

func (m *mockRepository) GetByID(id string) (*expense.Expense, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	e, ok := m.expenses[id]
	if !ok {
		return nil, expense.ErrExpenseNotFound
	}
	return e, nil
}

func (m *mockRepository) Create(e *expense.Expense) error {
	if m.returnError != nil {
		return m.returnError
	}
	m.add(e)
	return nil
}

func (m *mockRepository) Delete(id string) error {
	if m.returnError != nil {
		return m.returnError
	}
	delete(m.expenses, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type mockGrantGetter struct {
	grants map[string]*grant.Grant
}

func (m *mockGrantGetter) GetByID(id string) (*grant.Grant, error) {
	g, ok := m.grants[id]
	if !ok {
		return nil, grant.ErrGrantNotFound
	}
	return g, nil
}

func dec(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

var _ = Describe("Expense Service", func() {
	var (
		repo   *mockRepository
		grants *mockGrantGetter
		svc    *expense.Service
	)

	BeforeEach(func() {
		repo = newMockRepository()
		grants = &mockGrantGetter{grants: map[string]*grant.Grant{
			"grant-1": {
				ID:              "grant-1",
				GrantName:       "Library Renovation",
				Status:          "Approved",
				CloseDate:       time.Date(2022, time.June, 1, 0, 0, 0, 0, time.UTC),
				AmountRequested: decimal.NewFromInt(1500),
				AmountApproved:  dec("1000"),
			},
			"grant-2": {
				ID:              "grant-2",
				GrantName:       "Pending Grant",
				Status:          "Pending",
				CloseDate:       time.Date(2022, time.August, 1, 0, 0, 0, 0, time.UTC),
				AmountRequested: decimal.NewFromInt(500),
			},
		}}
		svc = expense.NewService(repo, grants, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	})

	Describe("ViewByGrant", func() {
		It("should embed the grant with its status badge", func() {
			result, err := svc.ViewByGrant("grant-1", expense.FilterParams{})

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Grant.GrantName).To(Equal("Library Renovation"))
			Expect(result.Grant.StatusBadge.Known).To(BeTrue())
		})

		It("should return 404 semantics for a missing grant", func() {
			_, err := svc.ViewByGrant("grant-404", expense.FilterParams{})
			Expect(err).To(Equal(grant.ErrGrantNotFound))
		})

		It("should report the remaining balance when it is defined", func() {
			repo.add(&expense.Expense{ID: "e-1", GrantID: "grant-1", Name: "Books", AmountSpent: dec("400.59"), Date: "03/2022"})

			result, err := svc.ViewByGrant("grant-1", expense.FilterParams{})

			Expect(err).NotTo(HaveOccurred())
			Expect(result.RemainingBalance).NotTo(BeNil())
			Expect(*result.RemainingBalance).To(Equal("599.41"))
		})

		It("should omit the balance when the grant has no expenses", func() {
			result, err := svc.ViewByGrant("grant-1", expense.FilterParams{})

			Expect(err).NotTo(HaveOccurred())
			Expect(result.RemainingBalance).To(BeNil())
		})

		It("should omit the balance when no amount was approved", func() {
			repo.add(&expense.Expense{ID: "e-1", GrantID: "grant-2", Name: "Books", AmountSpent: dec("100"), Date: "03/2022"})

			result, err := svc.ViewByGrant("grant-2", expense.FilterParams{})

			Expect(err).NotTo(HaveOccurred())
			Expect(result.RemainingBalance).To(BeNil())
		})

		It("should count a missing amountSpent as zero in the balance", func() {
			repo.add(&expense.Expense{ID: "e-1", GrantID: "grant-1", Name: "Books", Date: "03/2022"})
			repo.add(&expense.Expense{ID: "e-2", GrantID: "grant-1", Name: "Shelving", AmountSpent: dec("250"), Date: "04/2022"})

			result, err := svc.ViewByGrant("grant-1", expense.FilterParams{})

			Expect(err).NotTo(HaveOccurred())
			Expect(*result.RemainingBalance).To(Equal("750.00"))
		})

		It("should compute the balance over all expenses even when filtered", func() {
			repo.add(&expense.Expense{ID: "e-1", GrantID: "grant-1", Name: "Books", AmountSpent: dec("400"), Date: "03/2022"})
			repo.add(&expense.Expense{ID: "e-2", GrantID: "grant-1", Name: "Shelving", AmountSpent: dec("100"), Date: "04/2022"})

			result, err := svc.ViewByGrant("grant-1", expense.FilterParams{Month: 3})

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Expenses).To(HaveLen(1))
			Expect(*result.RemainingBalance).To(Equal("500.00"))
		})
	})

	Describe("Filter", func() {
		expenses := []expense.Expense{
			{ID: "e-1", Name: "Books", Date: "03/2022"},
			{ID: "e-2", Name: "Bookshelves", Date: "04/2022"},
			{ID: "e-3", Name: "Travel", Date: "03/2021"},
			{ID: "e-4", Name: "Catering", Date: "bad-date"},
		}

		It("should match name substrings case-insensitively", func() {
			matched := expense.Filter(expenses, expense.FilterParams{Name: "book"})

			Expect(matched).To(HaveLen(2))
		})

		It("should match month and year independently", func() {
			byMonth := expense.Filter(expenses, expense.FilterParams{Month: 3})
			Expect(byMonth).To(HaveLen(2))

			byYear := expense.Filter(expenses, expense.FilterParams{Year: 2022})
			Expect(byYear).To(HaveLen(2))

			byBoth := expense.Filter(expenses, expense.FilterParams{Month: 3, Year: 2022})
			Expect(byBoth).To(HaveLen(1))
			Expect(byBoth[0].ID).To(Equal("e-1"))
		})

		It("should never match rows with malformed dates on a period filter", func() {
			matched := expense.Filter(expenses, expense.FilterParams{Year: 2022})
			for _, e := range matched {
				Expect(e.ID).NotTo(Equal("e-4"))
			}
		})

		It("should combine name and period filters", func() {
			matched := expense.Filter(expenses, expense.FilterParams{Name: "book", Month: 4})

			Expect(matched).To(HaveLen(1))
			Expect(matched[0].Name).To(Equal("Bookshelves"))
		})
	})

	Describe("Create", func() {
		It("should persist a valid expense against an existing grant", func() {
			e, err := svc.Create("grant-1", expense.CreateExpenseDTO{
				Name:        "Books",
				AmountSpent: dec("120.50"),
				Date:        "03/2022",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(e.ID).NotTo(BeEmpty())
			Expect(e.GrantID).To(Equal("grant-1"))
		})

		It("should refuse an expense for a missing grant", func() {
			_, err := svc.Create("grant-404", expense.CreateExpenseDTO{
				Name: "Books",
				Date: "03/2022",
			})

			Expect(err).To(Equal(grant.ErrGrantNotFound))
		})

		It("should reject a malformed date", func() {
			_, err := svc.Create("grant-1", expense.CreateExpenseDTO{
				Name: "Books",
				Date: "2022-03-01",
			})

			Expect(err).To(BeAssignableToTypeOf(expense.ValidationError{}))
		})

		It("should reject a month outside 01-12", func() {
			_, err := svc.Create("grant-1", expense.CreateExpenseDTO{
				Name: "Books",
				Date: "13/2022",
			})

			Expect(err).To(BeAssignableToTypeOf(expense.ValidationError{}))
		})
	})

	Describe("Remove", func() {
		It("should delete an expense belonging to the grant", func() {
			repo.add(&expense.Expense{ID: "e-1", GrantID: "grant-1", Name: "Books", Date: "03/2022"})

			e, err := svc.Remove("grant-1", "e-1")

			Expect(err).NotTo(HaveOccurred())
			Expect(e.ID).To(Equal("e-1"))
			Expect(repo.deleted).To(Equal([]string{"e-1"}))
		})

		It("should refuse to delete an expense owned by another grant", func() {
			repo.add(&expense.Expense{ID: "e-1", GrantID: "grant-2", Name: "Books", Date: "03/2022"})

			_, err := svc.Remove("grant-1", "e-1")

			Expect(err).To(Equal(expense.ErrExpenseNotFound))
			Expect(repo.deleted).To(BeEmpty())
		})

		It("should report not found for a missing expense", func() {
			_, err := svc.Remove("grant-1", "e-404")
			Expect(err).To(Equal(expense.ErrExpenseNotFound))
		})

		It("should not report success when the delete fails", func() {
			repo.add(&expense.Expense{ID: "e-1", GrantID: "grant-1", Name: "Books", Date: "03/2022"})

			repoErr := errors.New("connection reset")
			failingSvc := expense.NewService(&failingDeleteRepo{inner: repo, err: repoErr}, grants,
				slog.New(slog.NewTextHandler(os.Stderr, nil)))

			_, err := failingSvc.Remove("grant-1", "e-1")
			Expect(err).To(Equal(repoErr))
		})
	})
})

type failingDeleteRepo struct {
	inner *mockRepository
	err   error
}

func (f *failingDeleteRepo) GetByGrant(grantID string) ([]expense.Expense, error) {
	return f.inner.GetByGrant(grantID)
}

func (f *failingDeleteRepo) GetByID(id string) (*expense.Expense, error) {
	return f.inner.GetByID(id)
}

func (f *failingDeleteRepo) Create(e *expense.Expense) error {
	return f.inner.Create(e)
}

func (f *failingDeleteRepo) Delete(id string) error {
	return f.err
}
