package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/sportsfed/fedsite/internal/config"
	"github.com/sportsfed/fedsite/internal/models"
	"github.com/sportsfed/fedsite/internal/utils"
)

type AdminServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *AdminService
	ctx     context.Context
}

func (s *AdminServiceTestSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.service = NewAdminService(s.db)
	s.ctx = context.Background()
}

func (s *AdminServiceTestSuite) TestCreateAdminNormalizesEmail() {
	admin, err := s.service.CreateAdmin(s.ctx, &CreateAdminRequest{
		Name:     ptr("  Editor  "),
		Email:    ptr(" Editor@Federation.ORG "),
		Password: ptr("long-enough"),
	})
	s.Require().NoError(err)
	s.Equal("editor@federation.org", admin.Email)
	s.Equal("Editor", admin.Name)
	s.Equal(models.RoleAdmin, admin.Role)
	s.NotEqual("long-enough", admin.PasswordHash)
	s.NoError(admin.CheckPassword("long-enough"))

	_, err = s.service.CreateAdmin(s.ctx, &CreateAdminRequest{
		Name:     ptr("Copy"),
		Email:    ptr("EDITOR@federation.org"),
		Password: ptr("long-enough"),
	})
	s.ErrorIs(err, ErrConflict)
}

func (s *AdminServiceTestSuite) TestDeleteSelfIsRefused() {
	super := createAdmin(s.T(), s.db, "root@fed.org", models.RoleSuperAdmin, false)

	err := s.service.DeleteAdmin(s.ctx, super.ID, super.ID)
	s.ErrorIs(err, ErrSelfDelete)
}

func (s *AdminServiceTestSuite) TestDeleteMissingAdmin() {
	super := createAdmin(s.T(), s.db, "root@fed.org", models.RoleSuperAdmin, false)

	err := s.service.DeleteAdmin(s.ctx, super.ID+10, super.ID)
	s.ErrorIs(err, ErrNotFound)
}

func (s *AdminServiceTestSuite) TestDeleteProtectedAdmin() {
	protected := createAdmin(s.T(), s.db, "root@fed.org", models.RoleSuperAdmin, true)
	other := createAdmin(s.T(), s.db, "second@fed.org", models.RoleSuperAdmin, false)

	err := s.service.DeleteAdmin(s.ctx, protected.ID, other.ID)
	s.ErrorIs(err, ErrProtectedAdmin)
}

func (s *AdminServiceTestSuite) TestDeleteLastSuperAdmin() {
	super := createAdmin(s.T(), s.db, "root@fed.org", models.RoleSuperAdmin, false)
	editor := createAdmin(s.T(), s.db, "editor@fed.org", models.RoleAdmin, false)

	err := s.service.DeleteAdmin(s.ctx, super.ID, editor.ID)
	s.ErrorIs(err, ErrLastSuperAdmin)

	s.NoError(s.service.DeleteAdmin(s.ctx, editor.ID, super.ID))
	_, err = s.service.GetAdmin(s.ctx, editor.ID)
	s.ErrorIs(err, ErrNotFound)
}

func (s *AdminServiceTestSuite) TestDeleteSuperAdminWhenAnotherRemains() {
	first := createAdmin(s.T(), s.db, "first@fed.org", models.RoleSuperAdmin, false)
	second := createAdmin(s.T(), s.db, "second@fed.org", models.RoleSuperAdmin, false)

	s.NoError(s.service.DeleteAdmin(s.ctx, second.ID, first.ID))
}

func (s *AdminServiceTestSuite) TestDemoteLastSuperAdmin() {
	super := createAdmin(s.T(), s.db, "root@fed.org", models.RoleSuperAdmin, false)

	_, err := s.service.UpdateAdmin(s.ctx, super.ID, &UpdateAdminRequest{Role: ptr("admin")})
	s.ErrorIs(err, ErrLastSuperAdmin)

	createAdmin(s.T(), s.db, "second@fed.org", models.RoleSuperAdmin, false)
	updated, err := s.service.UpdateAdmin(s.ctx, super.ID, &UpdateAdminRequest{Role: ptr("admin")})
	s.Require().NoError(err)
	s.Equal(models.RoleAdmin, updated.Role)
}

func (s *AdminServiceTestSuite) TestUpdateAdminFields() {
	editor := createAdmin(s.T(), s.db, "editor@fed.org", models.RoleAdmin, false)
	createAdmin(s.T(), s.db, "taken@fed.org", models.RoleAdmin, false)

	_, err := s.service.UpdateAdmin(s.ctx, editor.ID, &UpdateAdminRequest{Email: ptr("Taken@fed.org")})
	s.ErrorIs(err, ErrConflict)

	updated, err := s.service.UpdateAdmin(s.ctx, editor.ID, &UpdateAdminRequest{
		Name:     ptr("Chief Editor"),
		Password: ptr("another-password"),
	})
	s.Require().NoError(err)
	s.Equal("Chief Editor", updated.Name)
	s.Equal("editor@fed.org", updated.Email)
	s.NoError(updated.CheckPassword("another-password"))

	_, err = s.service.UpdateAdmin(s.ctx, editor.ID+100, &UpdateAdminRequest{Name: ptr("Ghost")})
	s.ErrorIs(err, ErrNotFound)
}

func (s *AdminServiceTestSuite) TestEnsureBootstrapAdmin() {
	cfg := config.BootstrapConfig{Name: "Root", Email: "Root@Fed.org", Password: "bootstrap-pass"}

	admin, err := s.service.EnsureBootstrapAdmin(s.ctx, cfg)
	s.Require().NoError(err)
	s.Equal("root@fed.org", admin.Email)
	s.True(admin.Protected)
	s.Equal(models.RoleSuperAdmin, admin.Role)

	again, err := s.service.EnsureBootstrapAdmin(s.ctx, cfg)
	s.Require().NoError(err)
	s.Equal(admin.ID, again.ID)

	admins, err := s.service.ListAdmins(s.ctx)
	s.Require().NoError(err)
	s.Len(admins, 1)
}

func (s *AdminServiceTestSuite) TestEnsureBootstrapAdminPromotesExistingAccount() {
	existing := createAdmin(s.T(), s.db, "root@fed.org", models.RoleAdmin, false)

	admin, err := s.service.EnsureBootstrapAdmin(s.ctx, config.BootstrapConfig{
		Name: "Root", Email: "root@fed.org", Password: "ignored-password",
	})
	s.Require().NoError(err)
	s.Equal(existing.ID, admin.ID)

	stored, err := s.service.GetAdmin(s.ctx, existing.ID)
	s.Require().NoError(err)
	s.True(stored.Protected)
	s.Equal(models.RoleSuperAdmin, stored.Role)
	s.NoError(stored.CheckPassword("correct-horse"), "password is only set on creation")
}

func (s *AdminServiceTestSuite) TestEnsureBootstrapAdminWithoutCredentials() {
	admin, err := s.service.EnsureBootstrapAdmin(s.ctx, config.BootstrapConfig{Name: "Super Admin"})
	s.ErrorIs(err, ErrNoBootstrapAdmin)
	s.Nil(admin)

	admins, err := s.service.ListAdmins(s.ctx)
	s.Require().NoError(err)
	s.Empty(admins)
}

func (s *AdminServiceTestSuite) TestEnsureBootstrapAdminRequiresProtectedSuperAdmin() {
	createAdmin(s.T(), s.db, "super@fed.org", models.RoleSuperAdmin, false)
	createAdmin(s.T(), s.db, "guarded@fed.org", models.RoleAdmin, true)

	_, err := s.service.EnsureBootstrapAdmin(s.ctx, config.BootstrapConfig{})
	s.ErrorIs(err, ErrNoBootstrapAdmin)

	root := createAdmin(s.T(), s.db, "root@fed.org", models.RoleSuperAdmin, true)
	admin, err := s.service.EnsureBootstrapAdmin(s.ctx, config.BootstrapConfig{})
	s.Require().NoError(err)
	s.Equal(root.ID, admin.ID)
}

func (s *AdminServiceTestSuite) TestAuditLogs() {
	super := createAdmin(s.T(), s.db, "root@fed.org", models.RoleSuperAdmin, false)
	editor := createAdmin(s.T(), s.db, "editor@fed.org", models.RoleAdmin, false)

	for i, adminID := range []uint{super.ID, editor.ID, editor.ID} {
		id := adminID
		s.Require().NoError(s.service.RecordAudit(s.ctx, &models.AuditLog{
			AdminID:      &id,
			Action:       "POST /api/news",
			ResourceType: "news",
			Status:       201 + i,
		}))
	}

	logs, total, err := s.service.ListAuditLogs(s.ctx, AuditLogFilter{
		PaginationParams: utils.PaginationParams{Page: 1, Limit: 10},
	})
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Require().Len(logs, 3)
	s.Equal(203, logs[0].Status)

	logs, total, err = s.service.ListAuditLogs(s.ctx, AuditLogFilter{
		PaginationParams: utils.PaginationParams{Page: 1, Limit: 10},
		AdminID:          &editor.ID,
	})
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Len(logs, 2)
}

func TestAdminServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AdminServiceTestSuite))
}

func TestWrapAdminErrorKeepsSentinels(t *testing.T) {
	assert.Nil(t, wrapAdminError("op", 1, nil))
	assert.ErrorIs(t, wrapAdminError("op", 1, ErrLastSuperAdmin), ErrLastSuperAdmin)
	require.Error(t, wrapAdminError("op", 1, assert.AnError))
}
