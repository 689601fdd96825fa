package service_test

import (
	"testing"

	"ggem_backend/internals/constants"
	"ggem_backend/internals/features/academy/instructors/service"
)

func TestAvaliarMudancaRole(t *testing.T) {
	cases := []struct {
		nome      string
		atual     string
		novo      string
		erroQuero error
	}{
		{"instrutor para admin", constants.RoleInstrutor, constants.RoleAdmin, nil},
		{"admin para instrutor", constants.RoleAdmin, constants.RoleInstrutor, nil},
		{"instrutor permanece instrutor", constants.RoleInstrutor, constants.RoleInstrutor, nil},
		{"encarregado permanece encarregado", constants.RoleEncarregado, constants.RoleEncarregado, nil},
		{"encarregado rebaixado", constants.RoleEncarregado, constants.RoleInstrutor, service.ErrEncarregadoImutavel},
		{"encarregado virando admin", constants.RoleEncarregado, constants.RoleAdmin, service.ErrEncarregadoImutavel},
		{"instrutor promovido a encarregado", constants.RoleInstrutor, constants.RoleEncarregado, service.ErrEncarregadoUnico},
		{"admin promovido a encarregado", constants.RoleAdmin, constants.RoleEncarregado, service.ErrEncarregadoUnico},
	}
	for _, tc := range cases {
		t.Run(tc.nome, func(t *testing.T) {
			err := service.AvaliarMudancaRole(tc.atual, tc.novo)
			if err != tc.erroQuero {
				t.Fatalf("AvaliarMudancaRole(%q, %q) = %v, quero %v", tc.atual, tc.novo, err, tc.erroQuero)
			}
		})
	}
}

func TestAvaliarDesativacao(t *testing.T) {
	if err := service.AvaliarDesativacao(constants.RoleEncarregado, false); err != service.ErrEncarregadoDesativacao {
		t.Fatalf("desativar encarregado: quero ErrEncarregadoDesativacao, veio %v", err)
	}
	if err := service.AvaliarDesativacao(constants.RoleEncarregado, true); err != nil {
		t.Fatalf("manter encarregado ativo: quero nil, veio %v", err)
	}
	if err := service.AvaliarDesativacao(constants.RoleInstrutor, false); err != nil {
		t.Fatalf("desativar instrutor: quero nil, veio %v", err)
	}
	if err := service.AvaliarDesativacao(constants.RoleAdmin, false); err != nil {
		t.Fatalf("desativar admin: quero nil, veio %v", err)
	}
}

func TestAvaliarPromocaoAdmin(t *testing.T) {
	cases := []struct {
		nome         string
		atual        string
		novo         string
		adminsAtivos int
		queroErro   bool
	}{
		{"promoção abaixo do teto", constants.RoleInstrutor, constants.RoleAdmin, 2, false},
		{"promoção no teto", constants.RoleInstrutor, constants.RoleAdmin, constants.MaxAdminsAtivos, true},
		{"promoção acima do teto", constants.RoleInstrutor, constants.RoleAdmin, constants.MaxAdminsAtivos + 2, true},
		{"admin permanece admin mesmo acima do teto", constants.RoleAdmin, constants.RoleAdmin, 5, false},
		{"mudança que não envolve admin", constants.RoleInstrutor, constants.RoleInstrutor, 5, false},
	}
	for _, tc := range cases {
		t.Run(tc.nome, func(t *testing.T) {
			err := service.AvaliarPromocaoAdmin(tc.atual, tc.novo, tc.adminsAtivos)
			if tc.queroErro && err != service.ErrLimiteAdmins {
				t.Fatalf("quero ErrLimiteAdmins, veio %v", err)
			}
			if !tc.queroErro && err != nil {
				t.Fatalf("quero nil, veio %v", err)
			}
		})
	}
}

func TestAvaliarExclusao(t *testing.T) {
	cases := []struct {
		nome         string
		alunosAtivos int64
		historico    int64
		quero        service.ModoExclusao
	}{
		{"com alunos ativos bloqueia", 1, 0, service.ExclusaoBloqueada},
		{"alunos ativos dominam o histórico", 2, 10, service.ExclusaoBloqueada},
		{"sem alunos com histórico vira soft", 0, 5, service.ExclusaoSoft},
		{"sem alunos e sem histórico vira hard", 0, 0, service.ExclusaoHard},
	}
	for _, tc := range cases {
		t.Run(tc.nome, func(t *testing.T) {
			if got := service.AvaliarExclusao(tc.alunosAtivos, tc.historico); got != tc.quero {
				t.Fatalf("AvaliarExclusao(%d, %d) = %v, quero %v", tc.alunosAtivos, tc.historico, got, tc.quero)
			}
		})
	}
}

func TestModoExclusaoString(t *testing.T) {
	if service.ExclusaoSoft.String() != "soft" {
		t.Errorf("ExclusaoSoft.String() = %q", service.ExclusaoSoft.String())
	}
	if service.ExclusaoHard.String() != "hard" {
		t.Errorf("ExclusaoHard.String() = %q", service.ExclusaoHard.String())
	}
	if service.ExclusaoBloqueada.String() != "bloqueada" {
		t.Errorf("ExclusaoBloqueada.String() = %q", service.ExclusaoBloqueada.String())
	}
}
