package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	curriculumModel "ggem_backend/internals/features/academy/curriculum/model"
	evaluationModel "ggem_backend/internals/features/academy/evaluations/model"
	sessionModel "ggem_backend/internals/features/academy/sessions/model"
	studentModel "ggem_backend/internals/features/academy/students/model"
	theoryModel "ggem_backend/internals/features/academy/theory/model"
)

/* ===============================
   Ficha de acompanhamento do aluno
   (presenças + avaliações agrupadas por fase + programa mínimo)
=================================*/

type PresencaFicha struct {
	AulaData      time.Time `json:"aula_data"`
	Congregacao   string    `json:"congregacao"`
	Presente      bool      `json:"presente"`
	Justificativa *string   `json:"justificativa,omitempty"`
}

type AvaliacaoFicha struct {
	Conteudo   string    `json:"conteudo"`
	Resultado  string    `json:"resultado"`
	Data       time.Time `json:"data"`
	Observacao *string   `json:"observacao,omitempty"`
}

// FaseFicha agrupa as avaliações do aluno por fase teórica.
// FaseNumero 0 representa avaliações sem fase associada.
type FaseFicha struct {
	FaseNumero int              `json:"fase_numero"`
	FaseNome   string           `json:"fase_nome"`
	Avaliacoes []AvaliacaoFicha `json:"avaliacoes"`
}

type ItemProgramaFicha struct {
	TipoConteudo string `json:"tipo_conteudo"`
	Descricao    string `json:"descricao"`
	Obrigatorio  bool   `json:"obrigatorio"`
	Concluido    bool   `json:"concluido"`
}

type FichaAluno struct {
	AlunoID            uuid.UUID `json:"aluno_id"`
	AlunoNome          string    `json:"aluno_nome"`
	Instrumento        string    `json:"instrumento"`
	Nivel              string    `json:"nivel"`
	Congregacao        string    `json:"congregacao"`
	InstrutorPrincipal string    `json:"instrutor_principal"`

	TotalAulas     int             `json:"total_aulas"`
	TotalPresencas int             `json:"total_presencas"`
	Presencas      []PresencaFicha `json:"presencas"`

	Fases []FaseFicha `json:"fases"`

	ProgramaMinimo []ItemProgramaFicha `json:"programa_minimo"`

	GeradaEm time.Time `json:"gerada_em"`
}

// MontarFicha agrega todos os dados de acompanhamento de um aluno.
// Retorna gorm.ErrRecordNotFound quando o aluno não existe.
func MontarFicha(ctx context.Context, db *gorm.DB, alunoID uuid.UUID) (*FichaAluno, error) {
	var aluno studentModel.AlunoModel
	if err := db.WithContext(ctx).
		Preload("Instrumento").
		Preload("InstrutorPrincipal").
		Preload("InstrutorPrincipal.User").
		First(&aluno, "aluno_id = ?", alunoID).Error; err != nil {
		return nil, err
	}

	ficha := &FichaAluno{
		AlunoID:     aluno.AlunoID,
		AlunoNome:   aluno.AlunoNome,
		Nivel:       aluno.AlunoNivel,
		Congregacao: aluno.AlunoCongregacao,
		GeradaEm:    time.Now(),
	}
	if aluno.Instrumento != nil {
		ficha.Instrumento = aluno.Instrumento.InstrumentoNome
	}
	if aluno.InstrutorPrincipal != nil && aluno.InstrutorPrincipal.User != nil {
		ficha.InstrutorPrincipal = aluno.InstrutorPrincipal.User.UserName
	}

	if err := montarPresencas(ctx, db, ficha); err != nil {
		return nil, err
	}
	if err := montarFases(ctx, db, ficha); err != nil {
		return nil, err
	}
	if err := montarProgramaMinimo(ctx, db, &aluno, ficha); err != nil {
		return nil, err
	}
	return ficha, nil
}

func montarPresencas(ctx context.Context, db *gorm.DB, ficha *FichaAluno) error {
	var presencas []sessionModel.PresencaModel
	if err := db.WithContext(ctx).
		Where("presenca_aluno_id = ?", ficha.AlunoID).
		Find(&presencas).Error; err != nil {
		return err
	}
	if len(presencas) == 0 {
		return nil
	}

	aulaIDs := make([]uuid.UUID, 0, len(presencas))
	for _, p := range presencas {
		aulaIDs = append(aulaIDs, p.PresencaAulaID)
	}
	var aulas []sessionModel.AulaColetivaModel
	if err := db.WithContext(ctx).
		Where("aula_id IN ?", aulaIDs).
		Order("aula_data ASC").
		Find(&aulas).Error; err != nil {
		return err
	}
	porAula := make(map[uuid.UUID]sessionModel.PresencaModel, len(presencas))
	for _, p := range presencas {
		porAula[p.PresencaAulaID] = p
	}

	for _, aula := range aulas {
		p := porAula[aula.AulaID]
		ficha.Presencas = append(ficha.Presencas, PresencaFicha{
			AulaData:      aula.AulaData,
			Congregacao:   aula.AulaCongregacao,
			Presente:      p.PresencaPresente,
			Justificativa: p.PresencaJustificativa,
		})
		ficha.TotalAulas++
		if p.PresencaPresente {
			ficha.TotalPresencas++
		}
	}
	return nil
}

func montarFases(ctx context.Context, db *gorm.DB, ficha *FichaAluno) error {
	var avaliacoes []evaluationModel.AvaliacaoModel
	if err := db.WithContext(ctx).
		Where("avaliacao_aluno_id = ?", ficha.AlunoID).
		Order("avaliacao_data ASC").
		Find(&avaliacoes).Error; err != nil {
		return err
	}

	var fases []theoryModel.FaseTeoricaModel
	if err := db.WithContext(ctx).
		Order("fase_numero ASC").
		Find(&fases).Error; err != nil {
		return err
	}
	fasePorID := make(map[uuid.UUID]theoryModel.FaseTeoricaModel, len(fases))
	for _, f := range fases {
		fasePorID[f.FaseID] = f
	}

	grupos := map[int]*FaseFicha{}
	ordem := []int{}
	for _, av := range avaliacoes {
		numero := 0
		nome := "Sem fase"
		if av.AvaliacaoFaseID != nil {
			if f, ok := fasePorID[*av.AvaliacaoFaseID]; ok {
				numero = f.FaseNumero
				nome = f.FaseNome
			}
		}
		grupo, ok := grupos[numero]
		if !ok {
			grupo = &FaseFicha{FaseNumero: numero, FaseNome: nome}
			grupos[numero] = grupo
			ordem = append(ordem, numero)
		}
		grupo.Avaliacoes = append(grupo.Avaliacoes, AvaliacaoFicha{
			Conteudo:   av.AvaliacaoConteudo,
			Resultado:  av.AvaliacaoResultado,
			Data:       av.AvaliacaoData,
			Observacao: av.AvaliacaoObservacao,
		})
	}
	for _, numero := range ordem {
		ficha.Fases = append(ficha.Fases, *grupos[numero])
	}
	return nil
}

func montarProgramaMinimo(ctx context.Context, db *gorm.DB, aluno *studentModel.AlunoModel, ficha *FichaAluno) error {
	var programa curriculumModel.ProgramaMinimoModel
	err := db.WithContext(ctx).
		Preload("Itens", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("item_programa_ordem ASC")
		}).
		Where("programa_minimo_instrumento_id = ? AND programa_minimo_nivel = ?",
			aluno.AlunoInstrumentoID, aluno.AlunoNivel).
		First(&programa).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil // nível sem programa mínimo cadastrado
		}
		return err
	}

	aprovados := map[string]bool{}
	for _, fase := range ficha.Fases {
		for _, av := range fase.Avaliacoes {
			if av.Resultado == evaluationModel.ResultadoAprovado {
				aprovados[av.Conteudo] = true
			}
		}
	}

	for _, item := range programa.Itens {
		concluido := aprovados[item.ItemProgramaDescricao]
		if !concluido && item.ItemProgramaDescricaoAlternativa != nil {
			concluido = aprovados[*item.ItemProgramaDescricaoAlternativa]
		}
		ficha.ProgramaMinimo = append(ficha.ProgramaMinimo, ItemProgramaFicha{
			TipoConteudo: item.ItemProgramaTipoConteudo,
			Descricao:    item.ItemProgramaDescricao,
			Obrigatorio:  item.ItemProgramaObrigatorio,
			Concluido:    concluido,
		})
	}
	return nil
}
