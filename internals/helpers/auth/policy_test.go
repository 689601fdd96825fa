package helperAuth_test

import (
	"testing"

	"github.com/google/uuid"

	"ggem_backend/internals/constants"
	helperAuth "ggem_backend/internals/helpers/auth"
)

func TestIsAdminEquivalent(t *testing.T) {
	if !helperAuth.IsAdminEquivalent(constants.RoleAdmin) {
		t.Error("admin deve ser admin-equivalente")
	}
	if !helperAuth.IsAdminEquivalent(constants.RoleEncarregado) {
		t.Error("encarregado deve ser admin-equivalente")
	}
	if helperAuth.IsAdminEquivalent(constants.RoleInstrutor) {
		t.Error("instrutor não é admin-equivalente")
	}
	if helperAuth.IsAdminEquivalent("") {
		t.Error("role vazia não é admin-equivalente")
	}
	if helperAuth.IsAdminEquivalent("superuser") {
		t.Error("role desconhecida não é admin-equivalente")
	}
}

func TestIsOwner(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	if !helperAuth.IsOwner(a, a) {
		t.Error("mesmo user deve ser dono")
	}
	if helperAuth.IsOwner(a, b) {
		t.Error("users diferentes não são donos")
	}
	if helperAuth.IsOwner(uuid.Nil, uuid.Nil) {
		t.Error("uuid.Nil nunca é dono, nem de uuid.Nil")
	}
	if helperAuth.IsOwner(uuid.Nil, a) {
		t.Error("uuid.Nil nunca é dono")
	}
	if helperAuth.IsOwner(a, uuid.Nil) {
		t.Error("recurso sem dono não pertence a ninguém")
	}
}
