package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ai-marketer-api/internal/usecases/account"
	"github.com/vfg2006/ai-marketer-api/internal/usecases/ingesting"
	"github.com/vfg2006/ai-marketer-api/pkg/apiErrors"
	"github.com/vfg2006/ai-marketer-api/pkg/utils"
)

// maxUploadBytes limita o tamanho do CSV de vendas aceito.
const maxUploadBytes = 10 << 20

type ConnectSquareRequest struct {
	Code string `json:"code" validate:"required"`
}

// UploadSales recebe um CSV de vendas via multipart form (campo "file")
func UploadSales(ingestor ingesting.Ingestor, businesses account.BusinessManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := businessFromRequest(r, businesses)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Negócio não encontrado para o usuário", nil)
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Arquivo ausente ou grande demais", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo de arquivo \"file\" é obrigatório", nil)
			return
		}
		defer file.Close()

		batch, err := ingestor.UploadSalesFile(r.Context(), business.ID, header.Filename, file)
		if err != nil {
			handleIngestError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, batch)
	}
}

func ListSales(ingestor ingesting.Ingestor, businesses account.BusinessManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := businessFromRequest(r, businesses)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Negócio não encontrado para o usuário", nil)
			return
		}

		endDate := time.Now()
		startDate := endDate.AddDate(0, 0, -30)

		if raw := r.URL.Query().Get("start_date"); raw != "" {
			parsed, err := utils.ParseDate(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date inválida, use YYYY-MM-DD", nil)
				return
			}
			startDate = *parsed
		}
		if raw := r.URL.Query().Get("end_date"); raw != "" {
			parsed, err := utils.ParseDate(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date inválida, use YYYY-MM-DD", nil)
				return
			}
			endDate = *parsed
		}

		records, err := ingestor.ListSales(business.ID, startDate, endDate)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar vendas", nil)
			return
		}

		writeJSON(w, http.StatusOK, records)
	}
}

func ListUploadBatches(ingestor ingesting.Ingestor, businesses account.BusinessManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := businessFromRequest(r, businesses)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Negócio não encontrado para o usuário", nil)
			return
		}

		batches, err := ingestor.ListBatches(business.ID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar uploads", nil)
			return
		}

		writeJSON(w, http.StatusOK, batches)
	}
}

// RefreshSales dispara uma sincronização imediata com a Square
func RefreshSales(ingestor ingesting.Ingestor, businesses account.BusinessManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := businessFromRequest(r, businesses)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Negócio não encontrado para o usuário", nil)
			return
		}

		result, err := ingestor.SyncSquare(r.Context(), business.ID)
		if err != nil {
			handleIngestError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func ConnectSquare(ingestor ingesting.Ingestor, businesses account.BusinessManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := businessFromRequest(r, businesses)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Negócio não encontrado para o usuário", nil)
			return
		}

		var req ConnectSquareRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		if err := validate.Struct(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Código de autorização é obrigatório", nil)
			return
		}

		if err := ingestor.ConnectSquare(business.ID, req.Code); err != nil {
			handleIngestError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

func DisconnectSquare(ingestor ingesting.Ingestor, businesses account.BusinessManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := businessFromRequest(r, businesses)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Negócio não encontrado para o usuário", nil)
			return
		}

		if err := ingestor.DisconnectSquare(r.Context(), business.ID); err != nil {
			handleIngestError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

func handleIngestError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	switch {
	case errors.Is(err, ingesting.ErrBusinessNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Negócio não encontrado", nil)

	case errors.Is(err, ingesting.ErrUnsupportedFileType),
		errors.Is(err, ingesting.ErrMissingColumns),
		errors.Is(err, ingesting.ErrEmptyFile):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, ingesting.ErrSquareNotConnected),
		errors.Is(err, ingesting.ErrSquareAlreadyLinked):
		apiErrors.WriteError(w, apiErrors.ErrConflict, err.Error(), nil)

	// Linhas inválidas e formatos de data não reconhecidos chegam como
	// erros simples do parser.
	case strings.Contains(err.Error(), "linha "),
		strings.Contains(err.Error(), "formato de data"):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar vendas", nil)
	}
}
