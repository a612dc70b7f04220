package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/elneves81/estagios-dashboard-go/internal/domain/entity"
	"github.com/elneves81/estagios-dashboard-go/internal/domain/pivot"
	"github.com/elneves81/estagios-dashboard-go/internal/domain/repository"
	"github.com/gocarina/gocsv"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// bomUTF8 abre os CSVs de registros brutos para que o Excel em pt-BR
// reconheça a codificação.
var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// --- Relatório pivot ---

// ExportPivotToCSV grava a grade no formato da exportação original do
// relatório interativo: vírgula como delimitador, todos os campos entre
// aspas, sem BOM.
func (r *ExportRepositoryImpl) ExportPivotToCSV(result *pivot.Result, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(outputFilename, []byte(pivot.ExportCsv(result)+"\n"), 0644); err != nil {
		return "", fmt.Errorf("error writing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportPivotToJSON(result *pivot.Result, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(pivotParaJSON(result)); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// pivotJSON é a projeção serializável da grade: os acumuladores viram os
// valores escalares finais, na mesma ordem do CSV.
type pivotJSON struct {
	Headers []string            `json:"headers"`
	Rows    []map[string]string `json:"rows"`
}

func pivotParaJSON(result *pivot.Result) pivotJSON {
	out := pivotJSON{Headers: []string{"Linhas"}}
	for _, ck := range result.ColKeys {
		for _, vh := range result.ValueHeaders {
			out.Headers = append(out.Headers, ck+" - "+vh.Title)
		}
	}
	for _, rk := range result.RowKeys {
		rotulo := rk
		if rotulo == "" {
			rotulo = pivot.RotuloVazio
		}
		row := map[string]string{"Linhas": rotulo}
		for _, ck := range result.ColKeys {
			cell := result.Celula(rk, ck)
			for _, vh := range result.ValueHeaders {
				valor := ""
				if v, ok := result.Escalar(cell, vh); ok {
					valor = strconv.FormatFloat(v, 'f', -1, 64)
				}
				row[ck+" - "+vh.Title] = valor
			}
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

func (r *ExportRepositoryImpl) ExportPivotToPDF(result *pivot.Result, titulo, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	if titulo == "" {
		titulo = "Relatório Interativo de Vagas"
	}
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("  %s", titulo)), "", 1, "L", true, 0, "")
	pdf.Ln(6)

	headers := []string{"Linhas"}
	for _, ck := range result.ColKeys {
		for _, vh := range result.ValueHeaders {
			headers = append(headers, ck+" - "+vh.Title)
		}
	}

	pageWidth, _ := pdf.GetPageSize()
	usable := pageWidth - 20
	colWidth := usable / float64(len(headers))
	if colWidth < 18 {
		colWidth = 18
	}

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
	for _, h := range headers {
		pdf.CellFormat(colWidth, 8, tr(truncar(h, 28)), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, rk := range result.RowKeys {
		rotulo := rk
		if rotulo == "" {
			rotulo = pivot.RotuloVazio
		}
		pdf.CellFormat(colWidth, 7, tr(truncar(rotulo, 28)), "1", 0, "L", false, 0, "")
		for _, ck := range result.ColKeys {
			cell := result.Celula(rk, ck)
			for _, vh := range result.ValueHeaders {
				valor := ""
				if v, ok := result.Escalar(cell, vh); ok {
					valor = strconv.FormatFloat(v, 'f', -1, 64)
				}
				pdf.CellFormat(colWidth, 7, tr(valor), "1", 0, "R", false, 0, "")
			}
		}
		pdf.Ln(-1)
	}

	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Gerado pelo Estágios Dashboard (Go) | %s", time.Now().Format("2006-01-02"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error creating PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Registros brutos de vagas ---

// ExportVagasToCSV grava os registros no formato do CSV servido pela API:
// ponto e vírgula como delimitador, CRLF e BOM UTF-8, para abrir direto no
// Excel das unidades.
func (r *ExportRepositoryImpl) ExportVagasToCSV(vagas []*entity.Vaga, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(bomUTF8); err != nil {
		return "", fmt.Errorf("error writing CSV BOM: %w", err)
	}

	if err := gocsv.MarshalCSV(&vagas, escritorPontoEVirgula(file)); err != nil {
		return "", fmt.Errorf("error writing CSV data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportVagasToJSON(vagas []*entity.Vaga, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(vagas); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Resumo por unidade ---

func (r *ExportRepositoryImpl) ExportResumoToCSV(resumo *entity.ResumoVagas, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(bomUTF8); err != nil {
		return "", fmt.Errorf("error writing CSV BOM: %w", err)
	}

	if err := gocsv.MarshalCSV(&resumo.Items, escritorPontoEVirgula(file)); err != nil {
		return "", fmt.Errorf("error writing CSV data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportResumoToJSON(resumo *entity.ResumoVagas, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(resumo.Items); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// escritorPontoEVirgula configura o escritor CSV no dialeto do Excel pt-BR:
// ponto e vírgula como separador e fins de linha CRLF.
func escritorPontoEVirgula(f *os.File) *csv.Writer {
	w := csv.NewWriter(f)
	w.Comma = ';'
	w.UseCRLF = true
	return w
}

func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

func truncar(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
