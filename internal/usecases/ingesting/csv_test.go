package ingesting

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseSalesCSV(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		wantErr  string
		validate func(t *testing.T, rows []parsedRow)
	}{
		{
			name: "Arquivo válido com formato ISO - deve interpretar todas as linhas",
			file: "Date,Product Name,Price,Quantity\n" +
				"2024-05-01,Flat White,4.50,3\n" +
				"2024-05-02,Long Black,4.00,2\n",
			validate: func(t *testing.T, rows []parsedRow) {
				assert.Len(t, rows, 2)
				assert.Equal(t, "Flat White", rows[0].ProductName)
				assert.True(t, rows[0].Price.Equal(decimal.RequireFromString("4.50")))
				assert.Equal(t, 3, rows[0].Quantity)
				assert.Equal(t, "2024-05-01", rows[0].Date.Format("2006-01-02"))
			},
		},
		{
			name: "Colunas fora de ordem e com espaços - deve localizar pelo nome",
			file: " Quantity , Price , Product Name , Date \n" +
				"2, $1,250.00 ,Espresso Machine,2024-05-01\n",
			validate: func(t *testing.T, rows []parsedRow) {
				assert.Len(t, rows, 1)
				assert.Equal(t, "Espresso Machine", rows[0].ProductName)
				assert.True(t, rows[0].Price.Equal(decimal.RequireFromString("1250.00")))
				assert.Equal(t, 2, rows[0].Quantity)
			},
		},
		{
			name: "Data ambígua - o formato americano vence por ser testado antes",
			file: "Date,Product Name,Price,Quantity\n" +
				"03/04/2024,Muffin,5.00,1\n",
			validate: func(t *testing.T, rows []parsedRow) {
				// 03/04 pode ser 4 de março ou 3 de abril; a ordem dos
				// formatos resolve para março.
				assert.Equal(t, "2024-03-04", rows[0].Date.Format("2006-01-02"))
			},
		},
		{
			name: "Linha com dia acima de 12 - o arquivo inteiro muda para dia/mês",
			file: "Date,Product Name,Price,Quantity\n" +
				"03/04/2024,Muffin,5.00,1\n" +
				"25/04/2024,Muffin,5.00,2\n",
			validate: func(t *testing.T, rows []parsedRow) {
				assert.Equal(t, "2024-04-03", rows[0].Date.Format("2006-01-02"))
				assert.Equal(t, "2024-04-25", rows[1].Date.Format("2006-01-02"))
			},
		},
		{
			name:    "Arquivo vazio - deve ser rejeitado",
			file:    "",
			wantErr: ErrEmptyFile.Error(),
		},
		{
			name:    "Apenas cabeçalho - deve ser rejeitado",
			file:    "Date,Product Name,Price,Quantity\n",
			wantErr: ErrEmptyFile.Error(),
		},
		{
			name: "Coluna obrigatória ausente - deve ser rejeitado",
			file: "Date,Product,Price,Quantity\n" +
				"2024-05-01,Flat White,4.50,3\n",
			wantErr: "colunas obrigatórias",
		},
		{
			name: "Quantidade zero - deve rejeitar o arquivo todo",
			file: "Date,Product Name,Price,Quantity\n" +
				"2024-05-01,Flat White,4.50,3\n" +
				"2024-05-02,Long Black,4.00,0\n",
			wantErr: "quantidade inválida",
		},
		{
			name: "Preço não numérico - deve rejeitar o arquivo todo",
			file: "Date,Product Name,Price,Quantity\n" +
				"2024-05-01,Flat White,abc,3\n",
			wantErr: "preço inválido",
		},
		{
			name: "Data em formato desconhecido - deve rejeitar o arquivo todo",
			file: "Date,Product Name,Price,Quantity\n" +
				"2024-05-01,Flat White,4.50,3\n" +
				"May 2nd,Long Black,4.00,2\n",
			wantErr: "formato de data não reconhecido",
		},
		{
			name: "Nome do produto vazio - deve ser rejeitado",
			file: "Date,Product Name,Price,Quantity\n" +
				"2024-05-01,,4.50,3\n",
			wantErr: "obrigatórios",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := parseSalesCSV(strings.NewReader(tt.file))

			if tt.wantErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			assert.NoError(t, err)
			tt.validate(t, rows)
		})
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"4.50", "4.5"},
		{"$4.50", "4.5"},
		{"$1,250.00", "1250"},
		{"0", "0"},
	}

	for _, tt := range tests {
		price, err := parsePrice(tt.raw)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, price.String())
	}
}
