package auth

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/grantify/grant-management/internal/permission"
)

var _ = Describe("Session.CanAccess", func() {
	catalog := []permission.Permission{
		{ID: 1, DisplayName: permission.CapAddGrant},
		{ID: 2, DisplayName: permission.CapViewGrant},
		{ID: 3, DisplayName: permission.CapEditGrant},
		{ID: 4, DisplayName: permission.CapDeleteGrant},
		{ID: 5, DisplayName: permission.CapEditPermissions},
	}

	It("should allow a capability the user holds an association for", func() {
		session := &Session{
			UserID:  "user-1",
			Catalog: catalog,
			Associations: []permission.UserPermissionAssociation{
				{ID: "a-1", UserID: "user-1", PermissionTypeID: 2},
			},
		}

		Expect(session.CanAccess(permission.CapViewGrant)).To(BeTrue())
		Expect(session.CanAccess(permission.CapEditGrant)).To(BeFalse())
	})

	It("should deny everything when the user has no associations", func() {
		session := &Session{UserID: "user-1", Catalog: catalog}

		Expect(session.CanAccess(permission.CapViewGrant)).To(BeFalse())
		Expect(session.CanAccess(permission.CapEditPermissions)).To(BeFalse())
	})

	It("should deny when the catalog is empty even if associations exist", func() {
		session := &Session{
			UserID: "user-1",
			Associations: []permission.UserPermissionAssociation{
				{ID: "a-1", UserID: "user-1", PermissionTypeID: 2},
			},
		}

		Expect(session.CanAccess(permission.CapViewGrant)).To(BeFalse())
	})

	It("should deny an association pointing at a catalog entry that no longer exists", func() {
		session := &Session{
			UserID:  "user-1",
			Catalog: catalog,
			Associations: []permission.UserPermissionAssociation{
				{ID: "a-1", UserID: "user-1", PermissionTypeID: 99},
			},
		}

		Expect(session.CanAccess(permission.CapViewGrant)).To(BeFalse())
	})

	It("should deny unknown capability names", func() {
		session := &Session{
			UserID:  "user-1",
			Catalog: catalog,
			Associations: []permission.UserPermissionAssociation{
				{ID: "a-1", UserID: "user-1", PermissionTypeID: 2},
			},
		}

		Expect(session.CanAccess("manageBudget")).To(BeFalse())
		Expect(session.CanAccess("")).To(BeFalse())
	})

	It("should deny everything on a nil session", func() {
		var session *Session

		Expect(session.CanAccess(permission.CapViewGrant)).To(BeFalse())
	})

	It("should match on display name, not permission id position", func() {
		shuffled := []permission.Permission{
			{ID: 7, DisplayName: permission.CapViewGrant},
			{ID: 2, DisplayName: permission.CapDeleteGrant},
		}
		session := &Session{
			UserID:  "user-1",
			Catalog: shuffled,
			Associations: []permission.UserPermissionAssociation{
				{ID: "a-1", UserID: "user-1", PermissionTypeID: 2},
			},
		}

		Expect(session.CanAccess(permission.CapDeleteGrant)).To(BeTrue())
		Expect(session.CanAccess(permission.CapViewGrant)).To(BeFalse())
	})
})

var _ = Describe("Session.Capabilities", func() {
	It("should list held capabilities in catalog order", func() {
		session := &Session{
			UserID: "user-1",
			Catalog: []permission.Permission{
				{ID: 1, DisplayName: permission.CapAddGrant},
				{ID: 2, DisplayName: permission.CapViewGrant},
				{ID: 3, DisplayName: permission.CapEditGrant},
			},
			Associations: []permission.UserPermissionAssociation{
				{ID: "a-1", UserID: "user-1", PermissionTypeID: 3},
				{ID: "a-2", UserID: "user-1", PermissionTypeID: 1},
			},
		}

		Expect(session.Capabilities()).To(Equal([]string{
			permission.CapAddGrant,
			permission.CapEditGrant,
		}))
	})

	It("should return an empty slice, not nil, when nothing is held", func() {
		session := &Session{UserID: "user-1"}

		Expect(session.Capabilities()).To(BeEmpty())
		Expect(session.Capabilities()).NotTo(BeNil())
	})
})

var _ = Describe("Session context helpers", func() {
	It("should round-trip a session through the context", func() {
		session := &Session{UserID: "user-1", Email: "dev@example.edu"}
		ctx := ContextWithSession(context.Background(), session)

		got, ok := SessionFromContext(ctx)
		Expect(ok).To(BeTrue())
		Expect(got.UserID).To(Equal("user-1"))
	})

	It("should report absence on a bare context", func() {
		_, ok := SessionFromContext(context.Background())
		Expect(ok).To(BeFalse())
	})
})
