package service

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

/* ===============================
   Render da ficha em PDF (A4, retrato)
=================================*/

const (
	pdfMargin     = 15.0
	pdfLineH      = 6.0
	pdfSectionGap = 4.0
)

// GerarPDF renderiza a ficha de acompanhamento como PDF.
func GerarPDF(ficha *FichaAluno) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("") // acentos pt-BR (cp1252)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	// Cabeçalho
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr("GGEM — Ficha de Acompanhamento"), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, tr("Gerada em "+ficha.GeradaEm.Format("02/01/2006 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(pdfSectionGap)

	// Dados do aluno
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, pdfLineH, tr("Aluno"), "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	linhaDupla(pdf, tr, "Nome", ficha.AlunoNome, "Congregação", ficha.Congregacao)
	linhaDupla(pdf, tr, "Instrumento", ficha.Instrumento, "Nível", ficha.Nivel)
	linhaDupla(pdf, tr, "Instrutor", ficha.InstrutorPrincipal, "Presenças",
		fmt.Sprintf("%d de %d aulas", ficha.TotalPresencas, ficha.TotalAulas))
	pdf.Ln(pdfSectionGap)

	secaoPresencas(pdf, tr, ficha)
	secaoFases(pdf, tr, ficha)
	secaoProgramaMinimo(pdf, tr, ficha)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render da ficha: %w", err)
	}
	return buf.Bytes(), nil
}

func linhaDupla(pdf *gofpdf.Fpdf, tr func(string) string, l1, v1, l2, v2 string) {
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(28, pdfLineH, tr(l1+":"), "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(62, pdfLineH, tr(v1), "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(28, pdfLineH, tr(l2+":"), "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, pdfLineH, tr(v2), "", 1, "L", false, 0, "")
}

func secaoPresencas(pdf *gofpdf.Fpdf, tr func(string) string, ficha *FichaAluno) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, pdfLineH, tr("Presenças"), "B", 1, "L", false, 0, "")
	if len(ficha.Presencas) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(0, pdfLineH, tr("Nenhuma aula registrada."), "", 1, "L", false, 0, "")
		pdf.Ln(pdfSectionGap)
		return
	}

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(30, pdfLineH, tr("Data"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(70, pdfLineH, tr("Congregação"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, pdfLineH, tr("Presente"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(0, pdfLineH, tr("Justificativa"), "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, p := range ficha.Presencas {
		presente := "Sim"
		if !p.Presente {
			presente = tr("Não")
		}
		justificativa := ""
		if p.Justificativa != nil {
			justificativa = *p.Justificativa
		}
		pdf.CellFormat(30, pdfLineH, p.AulaData.Format("02/01/2006"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(70, pdfLineH, tr(p.Congregacao), "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, pdfLineH, presente, "1", 0, "C", false, 0, "")
		pdf.CellFormat(0, pdfLineH, tr(justificativa), "1", 1, "L", false, 0, "")
	}
	pdf.Ln(pdfSectionGap)
}

func secaoFases(pdf *gofpdf.Fpdf, tr func(string) string, ficha *FichaAluno) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, pdfLineH, tr("Avaliações por fase"), "B", 1, "L", false, 0, "")
	if len(ficha.Fases) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(0, pdfLineH, tr("Nenhuma avaliação registrada."), "", 1, "L", false, 0, "")
		pdf.Ln(pdfSectionGap)
		return
	}

	for _, fase := range ficha.Fases {
		pdf.SetFont("Arial", "B", 10)
		titulo := fase.FaseNome
		if fase.FaseNumero > 0 {
			titulo = fmt.Sprintf("Fase %d — %s", fase.FaseNumero, fase.FaseNome)
		}
		pdf.CellFormat(0, pdfLineH, tr(titulo), "", 1, "L", false, 0, "")

		pdf.SetFont("Arial", "", 9)
		for _, av := range fase.Avaliacoes {
			resultado := "Aprovado"
			if av.Resultado != "aprovado" {
				resultado = "Reprovado"
			}
			linha := fmt.Sprintf("%s  —  %s  (%s)",
				av.Data.Format("02/01/2006"), av.Conteudo, resultado)
			pdf.CellFormat(0, 5, tr("  • "+linha), "", 1, "L", false, 0, "")
		}
	}
	pdf.Ln(pdfSectionGap)
}

func secaoProgramaMinimo(pdf *gofpdf.Fpdf, tr func(string) string, ficha *FichaAluno) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, pdfLineH, tr("Programa mínimo ("+ficha.Nivel+")"), "B", 1, "L", false, 0, "")
	if len(ficha.ProgramaMinimo) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(0, pdfLineH, tr("Sem programa mínimo cadastrado para este nível."), "", 1, "L", false, 0, "")
		return
	}

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(30, pdfLineH, tr("Tipo"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(110, pdfLineH, tr("Conteúdo"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(0, pdfLineH, tr("Concluído"), "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, item := range ficha.ProgramaMinimo {
		concluido := ""
		if item.Concluido {
			concluido = "X"
		}
		descricao := item.Descricao
		if !item.Obrigatorio {
			descricao += " (opcional)"
		}
		pdf.CellFormat(30, pdfLineH, tr(item.TipoConteudo), "1", 0, "C", false, 0, "")
		pdf.CellFormat(110, pdfLineH, tr(descricao), "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, pdfLineH, concluido, "1", 1, "C", false, 0, "")
	}
}
