package service_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	database "ggem_backend/internals/databases"
	curriculumModel "ggem_backend/internals/features/academy/curriculum/model"
	"ggem_backend/internals/features/academy/curriculum/service"
	instrumentModel "ggem_backend/internals/features/academy/instruments/model"
)

func abrirBanco(t *testing.T) *gorm.DB {
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
	return db
}

func TestSeedCriaCatalogoCompleto(t *testing.T) {
	db := abrirBanco(t)

	criados, err := service.SeedProgramasMinimosCompleto(context.Background(), db)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	catalogo := service.CatalogoProgramaMinimo()
	if criados != len(catalogo) {
		t.Fatalf("criados = %d, quero %d (uma linha por entrada do catálogo)", criados, len(catalogo))
	}

	var programas int64
	if err := db.Model(&curriculumModel.ProgramaMinimoModel{}).Count(&programas).Error; err != nil {
		t.Fatal(err)
	}
	if programas != int64(len(catalogo)) {
		t.Fatalf("programas na tabela = %d, quero %d", programas, len(catalogo))
	}
}

func TestSeedCriaInstrumentosFaltantes(t *testing.T) {
	db := abrirBanco(t)

	// só um instrumento pré-existente; o resto o seed deve criar
	pre := instrumentModel.InstrumentoModel{
		InstrumentoNome:      "violino", // caixa diferente do catálogo de propósito
		InstrumentoCategoria: instrumentModel.CategoriaCordas,
	}
	if err := db.Create(&pre).Error; err != nil {
		t.Fatal(err)
	}

	if _, err := service.SeedProgramasMinimosCompleto(context.Background(), db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// o lookup é case-insensitive: não pode ter criado um segundo violino
	var violinos int64
	if err := db.Model(&instrumentModel.InstrumentoModel{}).
		Where("LOWER(instrumento_nome) = ?", "violino").
		Count(&violinos).Error; err != nil {
		t.Fatal(err)
	}
	if violinos != 1 {
		t.Fatalf("violinos = %d, quero 1 (lookup case-insensitive)", violinos)
	}

	var programasViolino int64
	if err := db.Model(&curriculumModel.ProgramaMinimoModel{}).
		Where("programa_minimo_instrumento_id = ?", pre.InstrumentoID).
		Count(&programasViolino).Error; err != nil {
		t.Fatal(err)
	}
	if programasViolino == 0 {
		t.Fatal("os programas de violino deveriam apontar para o instrumento pré-existente")
	}
}

func TestSeedIdempotente(t *testing.T) {
	db := abrirBanco(t)
	ctx := context.Background()

	primeiro, err := service.SeedProgramasMinimosCompleto(ctx, db)
	if err != nil {
		t.Fatalf("primeira execução: %v", err)
	}
	segundo, err := service.SeedProgramasMinimosCompleto(ctx, db)
	if err != nil {
		t.Fatalf("segunda execução: %v", err)
	}
	if primeiro != segundo {
		t.Fatalf("execuções divergem: %d vs %d", primeiro, segundo)
	}

	var programas, itens int64
	if err := db.Model(&curriculumModel.ProgramaMinimoModel{}).Count(&programas).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Model(&curriculumModel.ItemProgramaModel{}).Count(&itens).Error; err != nil {
		t.Fatal(err)
	}
	if programas != int64(segundo) {
		t.Fatalf("reexecutar não pode acumular: %d programas para %d entradas", programas, segundo)
	}
	if itens == 0 {
		t.Fatal("itens não foram recriados")
	}
}

func TestMontarItensExcecaoViolino(t *testing.T) {
	catalogo := service.CatalogoProgramaMinimo()

	contaHinarios := func(itens []service.ItemCatalogo) int {
		n := 0
		for _, item := range itens {
			if item.Tipo == curriculumModel.TipoConteudoHinario {
				n++
			}
		}
		return n
	}

	for _, entrada := range catalogo {
		itens := service.MontarItens(entrada)
		hinarios := contaHinarios(itens)
		if strings.EqualFold(entrada.Instrumento, "Violino") {
			// só o hinário próprio (com arcadas), nunca o comum duplicado
			if hinarios != 1 {
				t.Errorf("%s/%s: %d hinários, quero exatamente 1", entrada.Instrumento, entrada.Nivel, hinarios)
			}
		} else if hinarios > 1 {
			t.Errorf("%s/%s: %d hinários, quero no máximo 1", entrada.Instrumento, entrada.Nivel, hinarios)
		}
	}
}

func TestSeedOrdenaItens(t *testing.T) {
	db := abrirBanco(t)

	if _, err := service.SeedProgramasMinimosCompleto(context.Background(), db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var programas []curriculumModel.ProgramaMinimoModel
	if err := db.Preload("Itens", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("item_programa_ordem ASC")
	}).Find(&programas).Error; err != nil {
		t.Fatal(err)
	}
	for _, p := range programas {
		for i, item := range p.Itens {
			if item.ItemProgramaOrdem != i+1 {
				t.Fatalf("programa %s: item %d com ordem %d", p.ProgramaMinimoID, i, item.ItemProgramaOrdem)
			}
		}
	}
}
