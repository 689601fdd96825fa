package service

import (
	"errors"
	"fmt"

	"ggem_backend/internals/constants"
)

// Regras de ciclo de vida de instrutor/usuário. Funções puras: recebem o
// estado atual e a mutação pedida, devolvem a decisão. Quem faz I/O é o
// controller, sempre depois de todas as regras passarem (fail fast).

var (
	// O encarregado é definido apenas no cadastro inicial: não entra nem sai
	// do papel por atualização.
	ErrEncarregadoImutavel = errors.New("O papel de encarregado não pode ser alterado")
	ErrEncarregadoUnico    = errors.New("Só pode existir um encarregado; o papel não é atribuído por promoção")

	ErrEncarregadoDesativacao = errors.New("O encarregado não pode ser desativado")

	ErrLimiteAdmins = fmt.Errorf("Limite máximo de %d secretários ativos atingido", constants.MaxAdminsAtivos)
)

// AvaliarMudancaRole valida a transição de papel pedida.
// nil = permitida; erro = negada com o motivo.
func AvaliarMudancaRole(roleAtual, roleNovo string) error {
	switch {
	case roleAtual == constants.RoleEncarregado && roleNovo != constants.RoleEncarregado:
		return ErrEncarregadoImutavel
	case roleNovo == constants.RoleEncarregado && roleAtual != constants.RoleEncarregado:
		return ErrEncarregadoUnico
	default:
		// instrutor <-> admin são livremente intercambiáveis por esta regra
		// (o teto de admins é avaliado à parte).
		return nil
	}
}

// AvaliarDesativacao valida a troca do flag ativo.
func AvaliarDesativacao(roleAtual string, ativoNovo bool) error {
	if roleAtual == constants.RoleEncarregado && !ativoNovo {
		return ErrEncarregadoDesativacao
	}
	return nil
}

// AvaliarPromocaoAdmin aplica o teto de admins ativos. A contagem vem do
// chamador (uma query de COUNT); aqui não há I/O. Promover quem já é admin
// nunca é barrado pelo teto.
func AvaliarPromocaoAdmin(roleAtual, roleNovo string, adminsAtivos int) error {
	if roleNovo == constants.RoleAdmin && roleAtual != constants.RoleAdmin && adminsAtivos >= constants.MaxAdminsAtivos {
		return ErrLimiteAdmins
	}
	return nil
}

// ModoExclusao: o que fazer com o pedido de exclusão de um instrutor.
type ModoExclusao int

const (
	// ExclusaoBloqueada: ainda há alunos ativos; o chamador devolve as
	// contagens e aborta.
	ExclusaoBloqueada ModoExclusao = iota
	// ExclusaoSoft: há histórico (aulas, presenças, avaliações ou qualquer
	// referência de aluno); apenas desativa o user.
	ExclusaoSoft
	// ExclusaoHard: sem alunos e sem histórico; apaga o user (cascata
	// remove o instrutor).
	ExclusaoHard
)

func (m ModoExclusao) String() string {
	switch m {
	case ExclusaoBloqueada:
		return "bloqueada"
	case ExclusaoSoft:
		return "soft"
	case ExclusaoHard:
		return "hard"
	default:
		return "desconhecida"
	}
}

// AvaliarExclusao decide o destino da exclusão a partir das contagens.
func AvaliarExclusao(alunosAtivos, historico int64) ModoExclusao {
	if alunosAtivos > 0 {
		return ExclusaoBloqueada
	}
	if historico > 0 {
		return ExclusaoSoft
	}
	return ExclusaoHard
}
