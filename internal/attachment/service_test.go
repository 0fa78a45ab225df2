package attachment_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/grantify/grant-management/internal/attachment"
	"github.com/grantify/grant-management/internal/grant"
)

func TestAttachmentService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Attachment Service Suite")
}

type mockRepository struct {
	attachments map[string][]attachment.Attachment
	returnError error
}

func (m *mockRepository) GetByGrant(grantID string) ([]attachment.Attachment, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	return m.attachments[grantID], nil
}

func (m *mockRepository) Create(a *attachment.Attachment) error {
	if m.returnError != nil {
		return m.returnError
	}
	m.attachments[a.GrantID] = append(m.attachments[a.GrantID], *a)
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

var _ = Describe("Attachment Service", func() {
	var (
		repo   *mockRepository
		grants *mockGrantGetter
		svc    *attachment.Service
	)

	BeforeEach(func() {
		repo = &mockRepository{attachments: make(map[string][]attachment.Attachment)}
		grants = &mockGrantGetter{grants: map[string]*grant.Grant{
			"grant-1": {
				ID:              "grant-1",
				GrantName:       "Library Renovation",
				Status:          "Approved",
				CloseDate:       time.Date(2022, time.June, 1, 0, 0, 0, 0, time.UTC),
				AmountRequested: decimal.NewFromInt(1500),
			},
		}}
		svc = attachment.NewService(repo, grants, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	})

	Describe("ListByGrant", func() {
		It("should return an empty slice for a grant with no attachments", func() {
			attachments, err := svc.ListByGrant("grant-1")

			Expect(err).NotTo(HaveOccurred())
			Expect(attachments).To(BeEmpty())
			Expect(attachments).NotTo(BeNil())
		})

		It("should fail for a missing grant", func() {
			_, err := svc.ListByGrant("grant-404")
			Expect(err).To(Equal(grant.ErrGrantNotFound))
		})
	})

	Describe("Create", func() {
		It("should store a valid link", func() {
			a, err := svc.Create("grant-1", attachment.CreateAttachmentDTO{
				Name: "Award Letter",
				Link: "https://files.example.edu/award-letter.pdf",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(a.ID).NotTo(BeEmpty())

			attachments, err := svc.ListByGrant("grant-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(attachments).To(HaveLen(1))
			Expect(attachments[0].Name).To(Equal("Award Letter"))
		})

		It("should reject a relative link", func() {
			_, err := svc.Create("grant-1", attachment.CreateAttachmentDTO{
				Name: "Award Letter",
				Link: "/files/award-letter.pdf",
			})

			Expect(err).To(BeAssignableToTypeOf(attachment.ValidationError{}))
		})

		It("should reject a missing name", func() {
			_, err := svc.Create("grant-1", attachment.CreateAttachmentDTO{
				Link: "https://files.example.edu/award-letter.pdf",
			})

			Expect(err).To(BeAssignableToTypeOf(attachment.ValidationError{}))
		})

		It("should refuse attachments for a missing grant", func() {
			_, err := svc.Create("grant-404", attachment.CreateAttachmentDTO{
				Name: "Award Letter",
				Link: "https://files.example.edu/award-letter.pdf",
			})

			Expect(err).To(Equal(grant.ErrGrantNotFound))
		})
	})
})
