package service

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	curriculumModel "ggem_backend/internals/features/academy/curriculum/model"
	instrumentModel "ggem_backend/internals/features/academy/instruments/model"
)

// Reconciliação do programa mínimo: apaga tudo e recria a partir do
// catálogo em código. Reexecutar produz o mesmo estado final (os ids mudam).

// carregarInstrumentos monta o lookup nome→id (case-insensitive) e cria na
// hora os instrumentos do catálogo que ainda não existem.
func carregarInstrumentos(tx *gorm.DB, catalogo []EntradaCatalogo) (map[string]uuid.UUID, error) {
	var existentes []instrumentModel.InstrumentoModel
	if err := tx.Find(&existentes).Error; err != nil {
		return nil, err
	}

	lookup := make(map[string]uuid.UUID, len(existentes))
	for _, ins := range existentes {
		lookup[strings.ToLower(ins.InstrumentoNome)] = ins.InstrumentoID
	}

	for _, e := range catalogo {
		key := strings.ToLower(e.Instrumento)
		if _, ok := lookup[key]; ok {
			continue
		}
		novo := instrumentModel.InstrumentoModel{
			InstrumentoNome:      e.Instrumento,
			InstrumentoCategoria: e.Categoria,
		}
		if err := tx.Create(&novo).Error; err != nil {
			return nil, err
		}
		log.Printf("[INFO] Instrumento %q criado pelo seed", e.Instrumento)
		lookup[key] = novo.InstrumentoID
	}
	return lookup, nil
}

func wipe(tx *gorm.DB) error {
	if err := tx.Where("1 = 1").Delete(&curriculumModel.ItemProgramaModel{}).Error; err != nil {
		return err
	}
	return tx.Where("1 = 1").Delete(&curriculumModel.ProgramaMinimoModel{}).Error
}

func criarPrograma(tx *gorm.DB, instrumentoID uuid.UUID, nivel string, itens []ItemCatalogo) error {
	programa := curriculumModel.ProgramaMinimoModel{
		ProgramaMinimoInstrumentoID: instrumentoID,
		ProgramaMinimoNivel:         nivel,
	}
	programa.Itens = make([]curriculumModel.ItemProgramaModel, 0, len(itens))
	for i, item := range itens {
		var alt *string
		if item.DescricaoAlternativa != "" {
			a := item.DescricaoAlternativa
			alt = &a
		}
		programa.Itens = append(programa.Itens, curriculumModel.ItemProgramaModel{
			ItemProgramaTipoConteudo:         item.Tipo,
			ItemProgramaDescricao:            item.Descricao,
			ItemProgramaDescricaoAlternativa: alt,
			ItemProgramaObrigatorio:          item.Obrigatorio,
			ItemProgramaOrdem:                i + 1,
		})
	}
	// um único Create insere o programa e os itens filhos
	return tx.Create(&programa).Error
}

// SeedProgramasMinimos: variante simples (modo script). Só os itens
// específicos do catálogo, sequencial, aborta no primeiro erro.
func SeedProgramasMinimos(ctx context.Context, db *gorm.DB) (int, error) {
	tx := db.WithContext(ctx)

	if err := wipe(tx); err != nil {
		return 0, err
	}
	catalogo := CatalogoProgramaMinimo()
	lookup, err := carregarInstrumentos(tx, catalogo)
	if err != nil {
		return 0, err
	}

	criados := 0
	for _, e := range catalogo {
		id := lookup[strings.ToLower(e.Instrumento)]
		if err := criarPrograma(tx, id, e.Nivel, e.Itens); err != nil {
			return criados, err
		}
		criados++
	}
	return criados, nil
}

// SeedProgramasMinimosCompleto: variante rica (endpoint admin). Mescla os
// itens comuns por nível (com a exceção do hinário do violino) e roda a
// reconciliação inteira em uma transação.
func SeedProgramasMinimosCompleto(ctx context.Context, db *gorm.DB) (int, error) {
	criados := 0
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := wipe(tx); err != nil {
			return err
		}
		catalogo := CatalogoProgramaMinimo()
		lookup, err := carregarInstrumentos(tx, catalogo)
		if err != nil {
			return err
		}
		for _, e := range catalogo {
			id := lookup[strings.ToLower(e.Instrumento)]
			if err := criarPrograma(tx, id, e.Nivel, MontarItens(e)); err != nil {
				return err
			}
			criados++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return criados, nil
}
