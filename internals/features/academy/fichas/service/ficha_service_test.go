package service_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ggem_backend/internals/constants"
	database "ggem_backend/internals/databases"
	curriculumService "ggem_backend/internals/features/academy/curriculum/service"
	evaluationModel "ggem_backend/internals/features/academy/evaluations/model"
	"ggem_backend/internals/features/academy/fichas/service"
	instructorModel "ggem_backend/internals/features/academy/instructors/model"
	instrumentModel "ggem_backend/internals/features/academy/instruments/model"
	sessionModel "ggem_backend/internals/features/academy/sessions/model"
	studentModel "ggem_backend/internals/features/academy/students/model"
	theoryModel "ggem_backend/internals/features/academy/theory/model"
	userModel "ggem_backend/internals/features/users/user/model"
)

type cenario struct {
	db        *gorm.DB
	aluno     *studentModel.AlunoModel
	instrutor *instructorModel.InstrutorModel
	fase      *theoryModel.FaseTeoricaModel
}

func montarCenario(t *testing.T) *cenario {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("abrindo sqlite em memória: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrando schema: %v", err)
	}

	user := userModel.UserModel{
		UserName: "Irmão José",
		Email:    "jose@ggem.test",
		Password: "hash",
		Role:     constants.RoleInstrutor,
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatal(err)
	}
	instrutor := instructorModel.InstrutorModel{
		InstrutorUserID:      user.ID,
		InstrutorCongregacao: "Central",
	}
	if err := db.Create(&instrutor).Error; err != nil {
		t.Fatal(err)
	}

	violino := instrumentModel.InstrumentoModel{
		InstrumentoNome:      "Violino",
		InstrumentoCategoria: instrumentModel.CategoriaCordas,
	}
	if err := db.Create(&violino).Error; err != nil {
		t.Fatal(err)
	}

	aluno := studentModel.AlunoModel{
		AlunoNome:                 "Maria",
		AlunoInstrumentoID:        violino.InstrumentoID,
		AlunoNivel:                studentModel.NivelRJM,
		AlunoCongregacao:          "Central",
		AlunoInstrutorPrincipalID: instrutor.InstrutorID,
		AlunoAtivo:                true,
	}
	if err := db.Create(&aluno).Error; err != nil {
		t.Fatal(err)
	}

	fase := theoryModel.FaseTeoricaModel{FaseNumero: 1, FaseNome: "Fase 1"}
	if err := db.Create(&fase).Error; err != nil {
		t.Fatal(err)
	}

	return &cenario{db: db, aluno: &aluno, instrutor: &instrutor, fase: &fase}
}

func TestMontarFichaAgregaTudo(t *testing.T) {
	c := montarCenario(t)
	ctx := context.Background()

	// duas aulas, presença em uma
	for i, presente := range []bool{true, false} {
		aula := sessionModel.AulaColetivaModel{
			AulaInstrutorID: c.instrutor.InstrutorID,
			AulaData:        time.Now().AddDate(0, 0, -7*(i+1)),
			AulaCongregacao: "Central",
		}
		if err := c.db.Create(&aula).Error; err != nil {
			t.Fatal(err)
		}
		presenca := sessionModel.PresencaModel{
			PresencaAulaID:   aula.AulaID,
			PresencaAlunoID:  c.aluno.AlunoID,
			PresencaPresente: presente,
		}
		if err := c.db.Create(&presenca).Error; err != nil {
			t.Fatal(err)
		}
	}

	// avaliações: uma na fase, uma solta
	avaliacoes := []evaluationModel.AvaliacaoModel{
		{
			AvaliacaoAlunoID:     c.aluno.AlunoID,
			AvaliacaoInstrutorID: c.instrutor.InstrutorID,
			AvaliacaoFaseID:      &c.fase.FaseID,
			AvaliacaoConteudo:    "Laoureux vol. 1 completo",
			AvaliacaoResultado:   evaluationModel.ResultadoAprovado,
			AvaliacaoData:        time.Now().AddDate(0, 0, -3),
		},
		{
			AvaliacaoAlunoID:     c.aluno.AlunoID,
			AvaliacaoInstrutorID: c.instrutor.InstrutorID,
			AvaliacaoConteudo:    "Leitura rítmica",
			AvaliacaoResultado:   evaluationModel.ResultadoReprovado,
			AvaliacaoData:        time.Now().AddDate(0, 0, -1),
		},
	}
	for i := range avaliacoes {
		if err := c.db.Create(&avaliacoes[i]).Error; err != nil {
			t.Fatal(err)
		}
	}

	if _, err := curriculumService.SeedProgramasMinimosCompleto(ctx, c.db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	ficha, err := service.MontarFicha(ctx, c.db, c.aluno.AlunoID)
	if err != nil {
		t.Fatalf("montando ficha: %v", err)
	}

	if ficha.AlunoNome != "Maria" || ficha.Instrumento != "Violino" {
		t.Fatalf("cabeçalho errado: %q / %q", ficha.AlunoNome, ficha.Instrumento)
	}
	if ficha.InstrutorPrincipal != "Irmão José" {
		t.Errorf("instrutor = %q", ficha.InstrutorPrincipal)
	}
	if ficha.TotalAulas != 2 || ficha.TotalPresencas != 1 {
		t.Errorf("presenças = %d/%d, quero 1/2", ficha.TotalPresencas, ficha.TotalAulas)
	}
	if len(ficha.Fases) != 2 {
		t.Fatalf("grupos de fase = %d, quero 2 (fase 1 + sem fase)", len(ficha.Fases))
	}
	if len(ficha.ProgramaMinimo) == 0 {
		t.Fatal("programa mínimo do violino/rjm deveria entrar na ficha")
	}

	// o método aprovado deve aparecer concluído; o resto não
	concluido := false
	for _, item := range ficha.ProgramaMinimo {
		if item.Descricao == "Laoureux vol. 1 completo" && item.Concluido {
			concluido = true
		}
	}
	if !concluido {
		t.Error("item aprovado deveria constar como concluído")
	}
}

func TestMontarFichaAlunoInexistente(t *testing.T) {
	c := montarCenario(t)
	if _, err := service.MontarFicha(context.Background(), c.db, uuid.New()); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("quero ErrRecordNotFound, veio %v", err)
	}
}

func TestGerarPDF(t *testing.T) {
	c := montarCenario(t)

	ficha, err := service.MontarFicha(context.Background(), c.db, c.aluno.AlunoID)
	if err != nil {
		t.Fatal(err)
	}

	pdfBytes, err := service.GerarPDF(ficha)
	if err != nil {
		t.Fatalf("gerando PDF: %v", err)
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Fatalf("saída não parece PDF (primeiros bytes: %q)", pdfBytes[:8])
	}
}
