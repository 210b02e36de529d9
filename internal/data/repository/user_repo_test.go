package repository

import (
	"strings"
	"testing"

	"bakerist/internal/data/entity"

	"github.com/google/uuid"
)

func TestCheckRoleKnownValues(t *testing.T) {
	for _, role := range []entity.UserRole{entity.RoleCustomer, entity.RoleAdmin} {
		user := &entity.User{
			Base: entity.Base{ID: uuid.New()},
			Role: role,
		}
		if err := checkRole(user); err != nil {
			t.Errorf("checkRole(%s): %v", role, err)
		}
	}
}

func TestCheckRoleRejectsUnknownValue(t *testing.T) {
	for _, role := range []entity.UserRole{"", "superuser", "Admin", "CUSTOMER"} {
		user := &entity.User{
			Base: entity.Base{ID: uuid.New()},
			Role: role,
		}
		err := checkRole(user)
		if err == nil {
			t.Errorf("checkRole(%q) accepted an unknown role", role)
			continue
		}
		if !strings.Contains(err.Error(), "unknown role") {
			t.Errorf("checkRole(%q) err = %v", role, err)
		}
	}
}
