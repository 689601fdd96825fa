package service

import (
	"strings"

	curriculumModel "ggem_backend/internals/features/academy/curriculum/model"
	instrumentModel "ggem_backend/internals/features/academy/instruments/model"
	studentModel "ggem_backend/internals/features/academy/students/model"
)

// Catálogo estático do programa mínimo. É a fonte de verdade: o seeder
// apaga e recria as tabelas a partir daqui.

type ItemCatalogo struct {
	Tipo                 string
	Descricao            string
	DescricaoAlternativa string // vazio = sem alternativa
	Obrigatorio          bool
}

type EntradaCatalogo struct {
	Instrumento string
	Categoria   string // usada ao criar o instrumento que ainda não exista
	Nivel       string
	Itens       []ItemCatalogo
}

// itensComuns: requisitos de teoria/hinário/solfejo idênticos para quase
// todos os instrumentos, variando só por nível.
func itensComuns(nivel string) []ItemCatalogo {
	switch nivel {
	case studentModel.NivelRJM:
		return []ItemCatalogo{
			{Tipo: curriculumModel.TipoConteudoTeoria, Descricao: "MTS — módulos 1 a 3 concluídos", Obrigatorio: true},
			{Tipo: curriculumModel.TipoConteudoHinario, Descricao: "20 hinos do Hinário 5", DescricaoAlternativa: "15 hinos com acompanhamento", Obrigatorio: true},
			{Tipo: curriculumModel.TipoConteudoSolfejo, Descricao: "Solfejo dos hinos estudados", Obrigatorio: false},
		}
	case studentModel.NivelCultoOficial:
		return []ItemCatalogo{
			{Tipo: curriculumModel.TipoConteudoTeoria, Descricao: "MTS — módulos 1 a 5 concluídos", Obrigatorio: true},
			{Tipo: curriculumModel.TipoConteudoHinario, Descricao: "50 hinos do Hinário 5", DescricaoAlternativa: "40 hinos com acompanhamento", Obrigatorio: true},
			{Tipo: curriculumModel.TipoConteudoSolfejo, Descricao: "Solfejo à primeira vista (nível intermediário)", Obrigatorio: true},
		}
	case studentModel.NivelOficializado:
		return []ItemCatalogo{
			{Tipo: curriculumModel.TipoConteudoTeoria, Descricao: "MTS completo", Obrigatorio: true},
			{Tipo: curriculumModel.TipoConteudoHinario, Descricao: "Hinário 5 completo", Obrigatorio: true},
			{Tipo: curriculumModel.TipoConteudoSolfejo, Descricao: "Solfejo à primeira vista (nível avançado)", Obrigatorio: true},
		}
	default:
		return nil
	}
}

// ehViolino: o catálogo do violino já traz requisito próprio de hinário
// (com arcadas marcadas); o item comum de hinário é filtrado para ele.
func ehViolino(instrumento string) bool {
	return strings.EqualFold(instrumento, "violino")
}

// MontarItens devolve os itens da entrada mesclados com os comuns do nível,
// aplicando a exceção do violino para não duplicar o hinário.
func MontarItens(e EntradaCatalogo) []ItemCatalogo {
	comuns := itensComuns(e.Nivel)
	out := make([]ItemCatalogo, 0, len(comuns)+len(e.Itens))
	for _, item := range comuns {
		if item.Tipo == curriculumModel.TipoConteudoHinario && ehViolino(e.Instrumento) {
			continue
		}
		out = append(out, item)
	}
	out = append(out, e.Itens...)
	return out
}

// CatalogoProgramaMinimo: entradas por (instrumento, nível).
func CatalogoProgramaMinimo() []EntradaCatalogo {
	return []EntradaCatalogo{
		// ---------- cordas ----------
		{
			Instrumento: "Violino", Categoria: instrumentModel.CategoriaCordas, Nivel: studentModel.NivelRJM,
			Itens: []ItemCatalogo{
				{Tipo: curriculumModel.TipoConteudoMetodo, Descricao: "Laoureux vol. 1 completo", Obrigatorio: true},
				{Tipo: curriculumModel.TipoConteudoEscala, Descricao: "Escalas maiores em 1ª posição", Obrigatorio: true},
				{Tipo: curriculumModel.TipoConteudoHinario, Descricao: "20 hinos do Hinário 5 com arcadas marcadas", Obrigatorio: true},
			},
		},
		{
			Instrumento: "Violino", Categoria: instrumentModel.CategoriaCordas, Nivel: studentModel.NivelCultoOficial,
			Itens: []ItemCatalogo{
				{Tipo: curriculumModel.TipoConteudoMetodo, Descricao: "Laoureux vol. 2 completo", DescricaoAlternativa: "Schmoll vol. 2 e 3", Obrigatorio: true},
				{Tipo: curriculumModel.TipoConteudoEscala, Descricao: "Escalas em 3 oitavas até 3ª posição", Obrigatorio: true},
				{Tipo: curriculumModel.TipoConteudoHinario, Descricao: "50 hinos do Hinário 5 com arcadas marcadas", Obrigatorio: true},
			},
		},
		{
			Instrumento: "Viola", Categoria: instrumentModel.CategoriaCordas, Nivel: studentModel.NivelRJM,
			Itens: []ItemCatalogo{
				{Tipo: curriculumModel.TipoConteudoMetodo, Descricao: "Berta Volmer vol. 1 completo", Obrigatorio: true},
				{Tipo: curriculumModel.TipoConteudoEscala, Descricao: "Escalas maiores em 1ª posição", Obrigatorio: true},
			},
		},
		{
			Instrumento: "Violoncelo", Categoria: instrumentModel.CategoriaCordas, Nivel: studentModel.NivelRJM,
			Itens: []ItemCatalogo{
				{Tipo: curriculumModel.TipoConteudoMetodo, Descricao: "Dotzauer vol. 1 — lições 1 a 30", Obrigatorio: true},
				{Tipo: curriculumModel.TipoConteudoEscala, Descricao: "Escalas maiores em 1ª posição", Obrigatorio: true},
			},
		},
		// ---------- madeiras ----------
		{
			Instrumento: "Flauta", Categoria: instrumentModel.CategoriaMadeiras, Nivel: studentModel.NivelRJM,
			Itens: []ItemCatalogo{
				{Tipo: curriculumModel.TipoConteudoMetodo, Descricao: "Taffanel & Gaubert — exercícios diários 1 a 4", Obrigatorio: true},
				{Tipo: curriculumModel.TipoConteudoEscala, Descricao: "Escalas maiores até 2 sustenidos/bemóis", Obrigatorio: true},
			},
		},
		{
			Instrumento: "Clarinete", Categoria: instrumentModel.CategoriaMadeiras, Nivel: studentModel.NivelRJM,
			Itens: []ItemCatalogo{
				{Tipo: curriculumModel.TipoConteudoMetodo, Descricao: "Klosé — método completo parte 1", Obrigatorio: true},
				{Tipo: curriculumModel.TipoConteudoEscala, Descricao: "Escalas maiores até 2 sustenidos/bemóis", Obrigatorio: true},
			},
		},
		{
			Instrumento: "Saxofone Alto", Categoria: instrumentModel.CategoriaMadeiras, Nivel: studentModel.NivelCultoOficial,
			Itens: []ItemCatalogo{
				{Tipo: curriculumModel.TipoConteudoMetodo, Descricao: "Klosé — 25 exercícios diários", DescricaoAlternativa: "Guy Lacour — 50 estudos fáceis, caderno 1", Obrigatorio: true},
				{Tipo: curriculumModel.TipoConteudoEscala, Descricao: "Escalas maiores e menores até 4 acidentes", Obrigatorio: true},
			},
		},
		// ---------- metais ----------
		{
			Instrumento: "Trompete", Categoria: instrumentModel.CategoriaMetais, Nivel: studentModel.NivelRJM,
			Itens: []ItemCatalogo{
				{Tipo: curriculumModel.TipoConteudoMetodo, Descricao: "Arban — estudos iniciais (1ª parte)", Obrigatorio: true},
				{Tipo: curriculumModel.TipoConteudoEscala, Descricao: "Escalas maiores até 2 sustenidos/bemóis", Obrigatorio: true},
			},
		},
		{
			Instrumento: "Trombone", Categoria: instrumentModel.CategoriaMetais, Nivel: studentModel.NivelCultoOficial,
			Itens: []ItemCatalogo{
				{Tipo: curriculumModel.TipoConteudoMetodo, Descricao: "Bordogni — vocalises 1 a 20", Obrigatorio: true},
				{Tipo: curriculumModel.TipoConteudoEscala, Descricao: "Escalas maiores e menores até 4 acidentes", Obrigatorio: true},
			},
		},
		{
			Instrumento: "Tuba", Categoria: instrumentModel.CategoriaMetais, Nivel: studentModel.NivelOficializado,
			Itens: []ItemCatalogo{
				{Tipo: curriculumModel.TipoConteudoMetodo, Descricao: "Bordogni/Rochut — 43 estudos", Obrigatorio: true},
				{Tipo: curriculumModel.TipoConteudoEscala, Descricao: "Todas as escalas maiores e menores", Obrigatorio: true},
			},
		},
		// ---------- teclas ----------
		{
			Instrumento: "Órgão", Categoria: instrumentModel.CategoriaTeclas, Nivel: studentModel.NivelOficializado,
			Itens: []ItemCatalogo{
				{Tipo: curriculumModel.TipoConteudoMetodo, Descricao: "Método de órgão — registração e pedaleira", Obrigatorio: true},
				{Tipo: curriculumModel.TipoConteudoEscala, Descricao: "Escalas e cadências em todos os tons", Obrigatorio: true},
			},
		},
	}
}
