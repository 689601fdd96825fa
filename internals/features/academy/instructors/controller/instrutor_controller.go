package controller

import (
	"encoding/json"
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	dto "ggem_backend/internals/features/academy/instructors/dto"
	instructorModel "ggem_backend/internals/features/academy/instructors/model"
	"ggem_backend/internals/features/academy/instructors/service"
	userModel "ggem_backend/internals/features/users/user/model"
	helper "ggem_backend/internals/helpers"
)

type InstrutorController struct {
	DB *gorm.DB
}

func NewInstrutorController(db *gorm.DB) *InstrutorController {
	return &InstrutorController{DB: db}
}

var validate = validator.New()

func (ctl *InstrutorController) carregar(c *fiber.Ctx) (*instructorModel.InstrutorModel, *userModel.UserModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, nil, helper.JsonError(c, fiber.StatusBadRequest, "ID de instrutor inválido")
	}

	var instrutor instructorModel.InstrutorModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("instrutor_id = ?", id).
		First(&instrutor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, helper.JsonError(c, fiber.StatusNotFound, "Instrutor não encontrado")
		}
		return nil, nil, helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar instrutor")
	}

	var user userModel.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("id = ?", instrutor.InstrutorUserID).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, helper.JsonError(c, fiber.StatusNotFound, "Usuário do instrutor não encontrado")
		}
		return nil, nil, helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar usuário do instrutor")
	}
	return &instrutor, &user, nil
}

/* ===============================
   LIST
   GET /api/a/instrutores?congregacao=&ativo=&page=&per_page=
=================================*/

func (ctl *InstrutorController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).
		Table("instrutores").
		Joins("JOIN users ON users.id = instrutores.instrutor_user_id")

	if cong := strings.TrimSpace(c.Query("congregacao")); cong != "" {
		q = q.Where("LOWER(instrutor_congregacao) = LOWER(?)", cong)
	}
	if ativo := strings.TrimSpace(c.Query("ativo")); ativo != "" {
		q = q.Where("users.is_active = ?", ativo == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar instrutores")
	}

	var rows []instructorModel.InstrutorModel
	if err := q.Select("instrutores.*").
		Order("instrutor_created_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar instrutores")
	}

	out := make([]dto.InstrutorResponse, 0, len(rows))
	for i := range rows {
		var user userModel.UserModel
		if err := ctl.DB.WithContext(c.Context()).
			Where("id = ?", rows[i].InstrutorUserID).
			First(&user).Error; err != nil {
			continue
		}
		out = append(out, dto.ToInstrutorResponse(&rows[i], &user))
	}

	return helper.JsonList(c, "", out, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

/* ===============================
   DETAIL
   GET /api/a/instrutores/:id
=================================*/

func (ctl *InstrutorController) GetByID(c *fiber.Ctx) error {
	instrutor, user, err := ctl.carregar(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", dto.ToInstrutorResponse(instrutor, user))
}

/* ===============================
   UPDATE
   PUT /api/a/instrutores/:id
   Regras (avaliadas ANTES de qualquer escrita):
   - encarregado não muda de papel, nem é atribuído por promoção;
   - encarregado não é desativado;
   - teto de secretários ativos na promoção a admin;
   - instrutor com aluno ativo não é desativado.
=================================*/

func (ctl *InstrutorController) Update(c *fiber.Ctx) error {
	instrutor, user, err := ctl.carregar(c)
	if err != nil {
		return err
	}

	var req dto.UpdateInstrutorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// ---- regras de papel ----
	if req.Role != nil && *req.Role != user.Role {
		if err := service.AvaliarMudancaRole(user.Role, *req.Role); err != nil {
			return helper.JsonError(c, fiber.StatusForbidden, err.Error())
		}
		admins, cerr := service.ContarAdminsAtivos(ctl.DB.WithContext(c.Context()))
		if cerr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar secretários ativos")
		}
		if err := service.AvaliarPromocaoAdmin(user.Role, *req.Role, int(admins)); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	// ---- regras de desativação ----
	if req.Ativo != nil && *req.Ativo != user.IsActive {
		if err := service.AvaliarDesativacao(user.Role, *req.Ativo); err != nil {
			return helper.JsonError(c, fiber.StatusForbidden, err.Error())
		}
		if !*req.Ativo {
			alunos, cerr := service.ContarAlunosAtivos(ctl.DB.WithContext(c.Context()), instrutor.InstrutorID)
			if cerr != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar alunos do instrutor")
			}
			if alunos.Total() > 0 {
				return helper.JsonErrorWithData(c, fiber.StatusBadRequest,
					"Reatribua os alunos ativos antes de desativar o instrutor",
					dto.ExclusaoBloqueadaResponse{
						AlunosPrincipais:  alunos.Principais,
						AlunosSecundarios: alunos.Secundarios,
					})
			}
		}
	}

	// ---- aplicar (user + instrutor, uma transação) ----
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		userUpdates := map[string]interface{}{}
		if req.Nome != nil {
			userUpdates["user_name"] = strings.TrimSpace(*req.Nome)
		}
		if req.Role != nil {
			userUpdates["role"] = *req.Role
		}
		if req.Ativo != nil {
			userUpdates["is_active"] = *req.Ativo
		}
		if len(userUpdates) > 0 {
			if err := tx.Model(&userModel.UserModel{}).
				Where("id = ?", user.ID).
				Updates(userUpdates).Error; err != nil {
				return err
			}
		}

		instrutorUpdates := map[string]interface{}{}
		if req.Telefone != nil {
			instrutorUpdates["instrutor_telefone"] = req.Telefone
		}
		if req.Congregacao != nil {
			instrutorUpdates["instrutor_congregacao"] = strings.TrimSpace(*req.Congregacao)
		}
		if req.Instrumentos != nil {
			raw, err := json.Marshal(*req.Instrumentos)
			if err != nil {
				return err
			}
			instrutorUpdates["instrutor_instrumentos"] = datatypes.JSON(raw)
		}
		if len(instrutorUpdates) > 0 {
			if err := tx.Model(&instructorModel.InstrutorModel{}).
				Where("instrutor_id = ?", instrutor.InstrutorID).
				Updates(instrutorUpdates).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Println("[ERROR] update instrutor:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar instrutor")
	}

	// recarrega o estado final
	if err := ctl.DB.WithContext(c.Context()).First(instrutor, "instrutor_id = ?", instrutor.InstrutorID).Error; err == nil {
		_ = ctl.DB.WithContext(c.Context()).First(user, "id = ?", user.ID).Error
	}
	return helper.JsonUpdated(c, "Instrutor atualizado", dto.ToInstrutorResponse(instrutor, user))
}

/* ===============================
   DELETE
   DELETE /api/a/instrutores/:id
   Decisão (service.AvaliarExclusao):
   - aluno ativo       -> 400 com as contagens;
   - histórico         -> soft delete (desativa o user);
   - sem nada          -> hard delete (apaga o user; cascata remove o instrutor).
=================================*/

func (ctl *InstrutorController) Delete(c *fiber.Ctx) error {
	instrutor, user, err := ctl.carregar(c)
	if err != nil {
		return err
	}

	db := ctl.DB.WithContext(c.Context())

	alunos, err := service.ContarAlunosAtivos(db, instrutor.InstrutorID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar alunos do instrutor")
	}
	historico, err := service.ContarHistorico(db, instrutor.InstrutorID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao consultar histórico do instrutor")
	}

	switch service.AvaliarExclusao(alunos.Total(), historico) {
	case service.ExclusaoBloqueada:
		return helper.JsonErrorWithData(c, fiber.StatusBadRequest,
			"Instrutor possui alunos ativos; reatribua-os antes de excluir",
			dto.ExclusaoBloqueadaResponse{
				AlunosPrincipais:  alunos.Principais,
				AlunosSecundarios: alunos.Secundarios,
			})

	case service.ExclusaoSoft:
		if err := db.Model(&userModel.UserModel{}).
			Where("id = ?", user.ID).
			Update("is_active", false).Error; err != nil {
			log.Println("[ERROR] soft delete instrutor:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao desativar instrutor")
		}
		return helper.JsonDeleted(c, "Instrutor desativado (histórico preservado)", dto.ExclusaoResponse{Tipo: "soft"})

	default: // ExclusaoHard
		err := db.Transaction(func(tx *gorm.DB) error {
			// remove o instrutor explicitamente; não depende da cascata do DDL
			if err := tx.Where("instrutor_id = ?", instrutor.InstrutorID).
				Delete(&instructorModel.InstrutorModel{}).Error; err != nil {
				return err
			}
			return tx.Where("id = ?", user.ID).Delete(&userModel.UserModel{}).Error
		})
		if err != nil {
			log.Println("[ERROR] hard delete instrutor:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao excluir instrutor")
		}
		return helper.JsonDeleted(c, "Instrutor excluído", dto.ExclusaoResponse{Tipo: "hard"})
	}
}
