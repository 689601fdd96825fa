package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ggem_backend/internals/constants"
)

// ContagemAlunos separa principais e secundários para o payload de
// exclusão bloqueada.
type ContagemAlunos struct {
	Principais  int64 `json:"alunos_principais"`
	Secundarios int64 `json:"alunos_secundarios"`
}

func (c ContagemAlunos) Total() int64 {
	return c.Principais + c.Secundarios
}

// ContarAlunosAtivos conta os alunos ativos vinculados ao instrutor.
func ContarAlunosAtivos(db *gorm.DB, instrutorID uuid.UUID) (ContagemAlunos, error) {
	var out ContagemAlunos
	if err := db.Table("alunos").
		Where("aluno_instrutor_principal_id = ? AND aluno_ativo = ?", instrutorID, true).
		Count(&out.Principais).Error; err != nil {
		return out, err
	}
	if err := db.Table("alunos").
		Where("aluno_instrutor_secundario_id = ? AND aluno_ativo = ?", instrutorID, true).
		Count(&out.Secundarios).Error; err != nil {
		return out, err
	}
	return out, nil
}

// ContarHistorico agrega em uma única query tudo que caracteriza histórico
// do instrutor: aulas, presenças dessas aulas, avaliações e qualquer
// referência de aluno (ativo ou não).
func ContarHistorico(db *gorm.DB, instrutorID uuid.UUID) (int64, error) {
	var total int64
	err := db.Raw(`
		SELECT
			  (SELECT COUNT(*) FROM aulas_coletivas WHERE aula_instrutor_id = @id)
			+ (SELECT COUNT(*) FROM presencas p
			     JOIN aulas_coletivas a ON a.aula_id = p.presenca_aula_id
			    WHERE a.aula_instrutor_id = @id)
			+ (SELECT COUNT(*) FROM avaliacoes WHERE avaliacao_instrutor_id = @id)
			+ (SELECT COUNT(*) FROM alunos
			    WHERE aluno_instrutor_principal_id = @id
			       OR aluno_instrutor_secundario_id = @id)
	`, map[string]interface{}{"id": instrutorID}).Scan(&total).Error
	return total, err
}

// ContarAdminsAtivos conta os secretários ativos (para o teto de promoção).
func ContarAdminsAtivos(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Table("users").
		Where("role = ? AND is_active = ?", constants.RoleAdmin, true).
		Count(&total).Error
	return total, err
}
