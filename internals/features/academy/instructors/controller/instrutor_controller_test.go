package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ggem_backend/internals/constants"
	database "ggem_backend/internals/databases"
	evaluationModel "ggem_backend/internals/features/academy/evaluations/model"
	instructorModel "ggem_backend/internals/features/academy/instructors/model"
	instructorRoute "ggem_backend/internals/features/academy/instructors/route"
	instrumentModel "ggem_backend/internals/features/academy/instruments/model"
	sessionModel "ggem_backend/internals/features/academy/sessions/model"
	studentModel "ggem_backend/internals/features/academy/students/model"
	userModel "ggem_backend/internals/features/users/user/model"
)

func montarApp(t *testing.T) (*fiber.App, *gorm.DB) {
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

	app := fiber.New()
	// simula o AuthMiddleware: grava as claims de um secretário nos Locals
	admin := app.Group("/api/a", func(c *fiber.Ctx) error {
		c.Locals("user_id", uuid.New().String())
		c.Locals("user_role", constants.RoleAdmin)
		c.Locals("user_name", "secretaria")
		return c.Next()
	})
	instructorRoute.InstrutorAdminRoutes(admin, db)
	return app, db
}

func criarInstrutor(t *testing.T, db *gorm.DB, nome, role string) (*userModel.UserModel, *instructorModel.InstrutorModel) {
	t.Helper()
	user := userModel.UserModel{
		UserName: nome,
		Email:    strings.ToLower(nome) + "@ggem.test",
		Password: "hash-irrelevante",
		Role:     role,
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("criando user %s: %v", nome, err)
	}
	instrutor := instructorModel.InstrutorModel{
		InstrutorUserID:      user.ID,
		InstrutorCongregacao: "Central",
	}
	if err := db.Create(&instrutor).Error; err != nil {
		t.Fatalf("criando instrutor %s: %v", nome, err)
	}
	return &user, &instrutor
}

func fazer(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	var parsed map[string]any
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &parsed); err != nil {
			t.Fatalf("%s %s: resposta não é JSON: %s", method, path, raw)
		}
	}
	return resp, parsed
}

func TestDeleteInstrutorSemVinculosEHard(t *testing.T) {
	app, db := montarApp(t)
	user, instrutor := criarInstrutor(t, db, "Limpo", constants.RoleInstrutor)

	resp, body := fazer(t, app, http.MethodDelete, "/api/a/instrutores/"+instrutor.InstrutorID.String(), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, quero 200 (%v)", resp.StatusCode, body)
	}
	data := body["data"].(map[string]any)
	if data["tipo"] != "hard" {
		t.Fatalf("tipo = %v, quero hard", data["tipo"])
	}

	var users int64
	if err := db.Model(&userModel.UserModel{}).Where("id = ?", user.ID).Count(&users).Error; err != nil {
		t.Fatal(err)
	}
	if users != 0 {
		t.Fatal("hard delete deveria remover o user")
	}
	var instrutores int64
	if err := db.Model(&instructorModel.InstrutorModel{}).
		Where("instrutor_id = ?", instrutor.InstrutorID).Count(&instrutores).Error; err != nil {
		t.Fatal(err)
	}
	if instrutores != 0 {
		t.Fatal("hard delete deveria remover o instrutor")
	}
}

func TestDeleteInstrutorComHistoricoESoft(t *testing.T) {
	app, db := montarApp(t)
	user, instrutor := criarInstrutor(t, db, "Veterano", constants.RoleInstrutor)

	aula := sessionModel.AulaColetivaModel{
		AulaInstrutorID: instrutor.InstrutorID,
		AulaData:        time.Now().AddDate(0, -1, 0),
		AulaCongregacao: "Central",
	}
	if err := db.Create(&aula).Error; err != nil {
		t.Fatal(err)
	}

	resp, body := fazer(t, app, http.MethodDelete, "/api/a/instrutores/"+instrutor.InstrutorID.String(), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, quero 200 (%v)", resp.StatusCode, body)
	}
	data := body["data"].(map[string]any)
	if data["tipo"] != "soft" {
		t.Fatalf("tipo = %v, quero soft", data["tipo"])
	}

	var atual userModel.UserModel
	if err := db.First(&atual, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("soft delete não pode remover o user: %v", err)
	}
	if atual.IsActive {
		t.Fatal("soft delete deveria desativar o user")
	}
}

func TestDeleteInstrutorComAvaliacoesESoft(t *testing.T) {
	app, db := montarApp(t)
	user, instrutor := criarInstrutor(t, db, "Avaliador", constants.RoleInstrutor)
	_, outro := criarInstrutor(t, db, "Colega", constants.RoleInstrutor)

	violino := instrumentModel.InstrumentoModel{
		InstrumentoNome:      "Violino",
		InstrumentoCategoria: instrumentModel.CategoriaCordas,
	}
	if err := db.Create(&violino).Error; err != nil {
		t.Fatal(err)
	}
	// aluno de outro instrutor: gera histórico de avaliação sem vínculo ativo
	aluno := studentModel.AlunoModel{
		AlunoNome:                 "Aluno C",
		AlunoInstrumentoID:        violino.InstrumentoID,
		AlunoNivel:                studentModel.NivelRJM,
		AlunoCongregacao:          "Central",
		AlunoInstrutorPrincipalID: outro.InstrutorID,
		AlunoAtivo:                true,
	}
	if err := db.Create(&aluno).Error; err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		av := evaluationModel.AvaliacaoModel{
			AvaliacaoAlunoID:     aluno.AlunoID,
			AvaliacaoInstrutorID: instrutor.InstrutorID,
			AvaliacaoConteudo:    fmt.Sprintf("Lição %d", i+1),
			AvaliacaoResultado:   evaluationModel.ResultadoAprovado,
			AvaliacaoData:        time.Now().AddDate(0, 0, -i),
		}
		if err := db.Create(&av).Error; err != nil {
			t.Fatal(err)
		}
	}

	resp, body := fazer(t, app, http.MethodDelete, "/api/a/instrutores/"+instrutor.InstrutorID.String(), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, quero 200 (%v)", resp.StatusCode, body)
	}
	data := body["data"].(map[string]any)
	if data["tipo"] != "soft" {
		t.Fatalf("tipo = %v, quero soft", data["tipo"])
	}

	var atual userModel.UserModel
	if err := db.First(&atual, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("avaliações contam como histórico, o user fica: %v", err)
	}
	if atual.IsActive {
		t.Fatal("soft delete deveria desativar o user")
	}
}

func TestDeleteInstrutorComAlunoAtivoBloqueia(t *testing.T) {
	app, db := montarApp(t)
	_, instrutor := criarInstrutor(t, db, "Ocupado", constants.RoleInstrutor)
	_, outro := criarInstrutor(t, db, "Outro", constants.RoleInstrutor)

	violino := instrumentModel.InstrumentoModel{
		InstrumentoNome:      "Violino",
		InstrumentoCategoria: instrumentModel.CategoriaCordas,
	}
	if err := db.Create(&violino).Error; err != nil {
		t.Fatal(err)
	}

	principal := studentModel.AlunoModel{
		AlunoNome:                 "Aluno A",
		AlunoInstrumentoID:        violino.InstrumentoID,
		AlunoNivel:                studentModel.NivelRJM,
		AlunoCongregacao:          "Central",
		AlunoInstrutorPrincipalID: instrutor.InstrutorID,
		AlunoAtivo:                true,
	}
	if err := db.Create(&principal).Error; err != nil {
		t.Fatal(err)
	}
	secundario := studentModel.AlunoModel{
		AlunoNome:                  "Aluno B",
		AlunoInstrumentoID:         violino.InstrumentoID,
		AlunoNivel:                 studentModel.NivelRJM,
		AlunoCongregacao:           "Central",
		AlunoInstrutorPrincipalID:  outro.InstrutorID,
		AlunoInstrutorSecundarioID: &instrutor.InstrutorID,
		AlunoAtivo:                 true,
	}
	if err := db.Create(&secundario).Error; err != nil {
		t.Fatal(err)
	}

	resp, body := fazer(t, app, http.MethodDelete, "/api/a/instrutores/"+instrutor.InstrutorID.String(), nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, quero 400 (%v)", resp.StatusCode, body)
	}
	data := body["data"].(map[string]any)
	if data["alunos_principais"].(float64) != 1 {
		t.Errorf("alunos_principais = %v, quero 1", data["alunos_principais"])
	}
	if data["alunos_secundarios"].(float64) != 1 {
		t.Errorf("alunos_secundarios = %v, quero 1", data["alunos_secundarios"])
	}

	// nada foi apagado nem desativado
	var instrutores int64
	if err := db.Model(&instructorModel.InstrutorModel{}).
		Where("instrutor_id = ?", instrutor.InstrutorID).Count(&instrutores).Error; err != nil {
		t.Fatal(err)
	}
	if instrutores != 1 {
		t.Fatal("exclusão bloqueada não pode remover o instrutor")
	}
}

func TestUpdatePromocaoAdminRespeitaTeto(t *testing.T) {
	app, db := montarApp(t)

	for i := 0; i < constants.MaxAdminsAtivos; i++ {
		criarInstrutor(t, db, fmt.Sprintf("Secretario%d", i), constants.RoleAdmin)
	}
	_, candidato := criarInstrutor(t, db, "Candidato", constants.RoleInstrutor)

	role := constants.RoleAdmin
	resp, body := fazer(t, app, http.MethodPut,
		"/api/a/instrutores/"+candidato.InstrutorID.String(),
		map[string]any{"role": role})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, quero 400 (%v)", resp.StatusCode, body)
	}
	if msg, _ := body["message"].(string); !strings.Contains(msg, "Limite máximo") {
		t.Fatalf("mensagem inesperada: %q", msg)
	}

	// desativando um secretário a promoção passa a caber no teto
	var primeiro userModel.UserModel
	if err := db.First(&primeiro, "user_name = ?", "Secretario0").Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Model(&primeiro).Update("is_active", false).Error; err != nil {
		t.Fatal(err)
	}

	resp, body = fazer(t, app, http.MethodPut,
		"/api/a/instrutores/"+candidato.InstrutorID.String(),
		map[string]any{"role": role})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, quero 200 (%v)", resp.StatusCode, body)
	}
}

func TestUpdateEncarregadoNaoMudaDePapel(t *testing.T) {
	app, db := montarApp(t)
	_, encarregado := criarInstrutor(t, db, "Encarregado", constants.RoleEncarregado)

	resp, body := fazer(t, app, http.MethodPut,
		"/api/a/instrutores/"+encarregado.InstrutorID.String(),
		map[string]any{"role": constants.RoleInstrutor})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, quero 403 (%v)", resp.StatusCode, body)
	}

	resp, body = fazer(t, app, http.MethodPut,
		"/api/a/instrutores/"+encarregado.InstrutorID.String(),
		map[string]any{"ativo": false})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("desativar encarregado: status = %d, quero 403 (%v)", resp.StatusCode, body)
	}
}

func TestUpdateDesativacaoComAlunoAtivoBloqueia(t *testing.T) {
	app, db := montarApp(t)
	_, instrutor := criarInstrutor(t, db, "ComAluno", constants.RoleInstrutor)

	flauta := instrumentModel.InstrumentoModel{
		InstrumentoNome:      "Flauta",
		InstrumentoCategoria: instrumentModel.CategoriaMadeiras,
	}
	if err := db.Create(&flauta).Error; err != nil {
		t.Fatal(err)
	}
	aluno := studentModel.AlunoModel{
		AlunoNome:                 "Aluno C",
		AlunoInstrumentoID:        flauta.InstrumentoID,
		AlunoNivel:                studentModel.NivelPreparatorio,
		AlunoCongregacao:          "Central",
		AlunoInstrutorPrincipalID: instrutor.InstrutorID,
		AlunoAtivo:                true,
	}
	if err := db.Create(&aluno).Error; err != nil {
		t.Fatal(err)
	}

	resp, body := fazer(t, app, http.MethodPut,
		"/api/a/instrutores/"+instrutor.InstrutorID.String(),
		map[string]any{"ativo": false})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, quero 400 (%v)", resp.StatusCode, body)
	}

	// aluno inativo deixa de contar
	if err := db.Model(&aluno).Update("aluno_ativo", false).Error; err != nil {
		t.Fatal(err)
	}
	resp, body = fazer(t, app, http.MethodPut,
		"/api/a/instrutores/"+instrutor.InstrutorID.String(),
		map[string]any{"ativo": false})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, quero 200 (%v)", resp.StatusCode, body)
	}
}
