package ingesting

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Formatos aceitos para a coluna de data, testados nesta ordem. O
// primeiro formato que interpretar todas as linhas do arquivo vence.
var acceptedDateFormats = []string{
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
}

var requiredColumns = []string{"date", "product name", "price", "quantity"}

type csvRow struct {
	RawDate     string
	ProductName string
	Price       decimal.Decimal
	Quantity    int
}

type parsedRow struct {
	Date        time.Time
	ProductName string
	Price       decimal.Decimal
	Quantity    int
}

// parseSalesCSV lê e valida o arquivo por inteiro antes de qualquer
// gravação; qualquer linha inválida rejeita o arquivo todo.
func parseSalesCSV(file io.Reader) ([]parsedRow, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o cabeçalho: %w", err)
	}

	columnIndex := make(map[string]int, len(header))
	for i, name := range header {
		columnIndex[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, required := range requiredColumns {
		if _, ok := columnIndex[required]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumns, required)
		}
	}

	rows := make([]csvRow, 0)
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("erro ao ler a linha %d: %w", line, err)
		}

		rawDate := strings.TrimSpace(record[columnIndex["date"]])
		productName := strings.TrimSpace(record[columnIndex["product name"]])
		rawPrice := strings.TrimSpace(record[columnIndex["price"]])
		rawQuantity := strings.TrimSpace(record[columnIndex["quantity"]])

		if rawDate == "" || productName == "" {
			return nil, fmt.Errorf("linha %d: data e nome do produto são obrigatórios", line)
		}

		price, err := parsePrice(rawPrice)
		if err != nil {
			return nil, fmt.Errorf("linha %d: preço inválido %q", line, rawPrice)
		}

		quantity, err := strconv.Atoi(rawQuantity)
		if err != nil || quantity <= 0 {
			return nil, fmt.Errorf("linha %d: quantidade inválida %q", line, rawQuantity)
		}

		rows = append(rows, csvRow{
			RawDate:     rawDate,
			ProductName: productName,
			Price:       price,
			Quantity:    quantity,
		})
	}

	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	return resolveDates(rows)
}

// resolveDates escolhe um único formato de data para o arquivo inteiro,
// evitando misturar interpretações dia/mês dentro do mesmo upload.
func resolveDates(rows []csvRow) ([]parsedRow, error) {
	for _, format := range acceptedDateFormats {
		parsed := make([]parsedRow, 0, len(rows))
		ok := true

		for _, row := range rows {
			date, err := time.Parse(format, row.RawDate)
			if err != nil {
				ok = false
				break
			}
			parsed = append(parsed, parsedRow{
				Date:        date,
				ProductName: row.ProductName,
				Price:       row.Price,
				Quantity:    row.Quantity,
			})
		}

		if ok {
			return parsed, nil
		}
	}

	return nil, fmt.Errorf("formato de data não reconhecido no arquivo (exemplo: %q)", rows[0].RawDate)
}

func parsePrice(raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimPrefix(raw, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	return decimal.NewFromString(cleaned)
}
