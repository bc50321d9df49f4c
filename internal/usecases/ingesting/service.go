package ingesting

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ai-marketer-api/infrastructure/integrator/square"
	squaredomain "github.com/vfg2006/ai-marketer-api/infrastructure/integrator/square/domain"
	"github.com/vfg2006/ai-marketer-api/infrastructure/repository"
	"github.com/vfg2006/ai-marketer-api/internal/config"
	"github.com/vfg2006/ai-marketer-api/internal/domain"
	"github.com/vfg2006/ai-marketer-api/pkg/utils"
)

// defaultSyncWindowDays limita a primeira sincronização de um negócio
// recém conectado à Square.
const defaultSyncWindowDays = 30

type SyncResult struct {
	Orders         int        `json:"orders"`
	RecordsCreated int        `json:"records_created"`
	RecordsUpdated int        `json:"records_updated"`
	SyncedUntil    *time.Time `json:"synced_until"`
}

type Ingestor interface {
	UploadSalesFile(ctx context.Context, businessID, filename string, file io.Reader) (*domain.UploadBatch, error)
	SyncSquare(ctx context.Context, businessID string) (*SyncResult, error)
	ConnectSquare(businessID, authorizationCode string) error
	DisconnectSquare(ctx context.Context, businessID string) error
	ListSales(businessID string, startDate, endDate time.Time) ([]*domain.SalesRecord, error)
	ListBatches(businessID string) ([]*domain.UploadBatch, error)
}

type Service struct {
	businessRepo repository.BusinessRepository
	salesRepo    repository.SalesRecordRepository
	batchRepo    repository.UploadBatchRepository
	squareSvc    square.SquareIntegrator
	cfg          *config.Config
}

func NewService(
	businessRepo repository.BusinessRepository,
	salesRepo repository.SalesRecordRepository,
	batchRepo repository.UploadBatchRepository,
	squareSvc square.SquareIntegrator,
	cfg *config.Config,
) Ingestor {
	return &Service{
		businessRepo: businessRepo,
		salesRepo:    salesRepo,
		batchRepo:    batchRepo,
		squareSvc:    squareSvc,
		cfg:          cfg,
	}
}

// UploadSalesFile processa um CSV de vendas. O registro do lote é
// gravado antes da validação do conteúdo e permanece mesmo quando o
// arquivo é rejeitado, preservando o histórico de tentativas.
func (s *Service) UploadSalesFile(ctx context.Context, businessID, filename string, file io.Reader) (*domain.UploadBatch, error) {
	business, err := s.businessRepo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}

	extension := strings.ToLower(filepath.Ext(filename))
	if extension != ".csv" {
		return nil, ErrUnsupportedFileType
	}

	batchID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	batch := &domain.UploadBatch{
		ID:          batchID,
		BusinessID:  businessID,
		Filename:    filename,
		FileType:    extension,
		Processed:   true,
		ProcessedAt: &now,
	}

	batch, err = s.batchRepo.Create(batch)
	if err != nil {
		return nil, fmt.Errorf("erro ao registrar o lote de upload: %w", err)
	}

	rows, err := parseSalesCSV(file)
	if err != nil {
		logrus.WithField("batch_id", batch.ID).WithError(err).Warn("Arquivo de vendas rejeitado")
		return nil, err
	}

	grouped := make(map[domain.MergeKey]*domain.SalesRecord)
	for _, row := range rows {
		name := row.ProductName
		price := row.Price
		revenue := row.Price.Mul(decimal.NewFromInt(int64(row.Quantity)))

		record := &domain.SalesRecord{
			BusinessID:   businessID,
			Date:         row.Date,
			Revenue:      revenue,
			UnitsSold:    row.Quantity,
			ProductName:  &name,
			ProductPrice: &price,
			Source:       domain.SalesSourceUpload,
			BatchID:      &batch.ID,
		}

		accumulate(grouped, record)
	}

	created, updated, err := s.merge(ctx, businessID, domain.SalesSourceUpload, grouped)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"batch_id": batch.ID,
		"created":  created,
		"updated":  updated,
	}).Info("Upload de vendas processado")

	return batch, nil
}

// SyncSquare importa pedidos da Square desde o último checkpoint. O
// checkpoint só avança depois que a transação de merge é confirmada;
// uma falha deixa a janela intacta para a próxima tentativa.
func (s *Service) SyncSquare(ctx context.Context, businessID string) (*SyncResult, error) {
	business, err := s.businessRepo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}
	if !business.SquareConnected() {
		return nil, ErrSquareNotConnected
	}

	now := time.Now()
	startAt := now.AddDate(0, 0, -defaultSyncWindowDays)
	if business.LastSquareSyncAt != nil {
		startAt = *business.LastSquareSyncAt
	}

	orders, err := s.squareSvc.GetOrders(*business.SquareAccessToken, startAt, now)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar pedidos da Square: %w", err)
	}

	location, err := time.LoadLocation(s.cfg.App.BusinessTimezone)
	if err != nil {
		return nil, fmt.Errorf("fuso horário inválido %q: %w", s.cfg.App.BusinessTimezone, err)
	}

	grouped := make(map[domain.MergeKey]*domain.SalesRecord)
	for _, order := range orders {
		s.collectOrderItems(grouped, businessID, order, location)
	}

	created, updated, err := s.merge(ctx, businessID, domain.SalesSourcePOSSync, grouped)
	if err != nil {
		return nil, err
	}

	if err := s.businessRepo.SetLastSquareSyncAt(businessID, &now); err != nil {
		return nil, fmt.Errorf("erro ao avançar o checkpoint de sincronização: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"business_id": businessID,
		"orders":      len(orders),
		"created":     created,
		"updated":     updated,
	}).Info("Sincronização com a Square concluída")

	return &SyncResult{
		Orders:         len(orders),
		RecordsCreated: created,
		RecordsUpdated: updated,
		SyncedUntil:    &now,
	}, nil
}

// collectOrderItems converte os itens do pedido em registros diários.
// A data do registro é a data de calendário no fuso do negócio, não em
// UTC; itens sem receita positiva são ignorados.
func (s *Service) collectOrderItems(
	grouped map[domain.MergeKey]*domain.SalesRecord,
	businessID string,
	order squaredomain.Order,
	location *time.Location,
) {
	orderDate := order.CreatedAt.In(location)
	date := time.Date(orderDate.Year(), orderDate.Month(), orderDate.Day(), 0, 0, 0, 0, time.UTC)

	for _, item := range order.LineItems {
		quantity, err := strconv.Atoi(item.Quantity)
		if err != nil || quantity <= 0 {
			logrus.WithFields(logrus.Fields{
				"order_id": order.ID,
				"item":     item.Name,
			}).Warn("Item com quantidade inválida ignorado")
			continue
		}

		var price decimal.Decimal
		if item.BasePriceMoney != nil {
			price = decimal.NewFromInt(item.BasePriceMoney.Amount).Div(decimal.NewFromInt(100))
		}

		// Receita pelo preço base do item; o total do pedido carrega
		// impostos e descontos e distorceria o registro.
		revenue := price.Mul(decimal.NewFromInt(int64(quantity)))
		if !revenue.IsPositive() {
			continue
		}

		name := item.Name
		itemPrice := price
		accumulate(grouped, &domain.SalesRecord{
			BusinessID:   businessID,
			Date:         date,
			Revenue:      revenue,
			UnitsSold:    quantity,
			ProductName:  &name,
			ProductPrice: &itemPrice,
			Source:       domain.SalesSourcePOSSync,
		})
	}
}

func (s *Service) ConnectSquare(businessID, authorizationCode string) error {
	business, err := s.businessRepo.GetByID(businessID)
	if err != nil {
		return err
	}
	if business == nil {
		return ErrBusinessNotFound
	}
	if business.SquareConnected() {
		return ErrSquareAlreadyLinked
	}

	token, err := s.squareSvc.Connect(authorizationCode)
	if err != nil {
		return fmt.Errorf("erro ao trocar o código de autorização: %w", err)
	}

	return s.businessRepo.SetSquareToken(businessID, &token.AccessToken)
}

// DisconnectSquare revoga o token e remove os registros importados do
// POS; os uploads manuais são preservados.
func (s *Service) DisconnectSquare(ctx context.Context, businessID string) error {
	business, err := s.businessRepo.GetByID(businessID)
	if err != nil {
		return err
	}
	if business == nil {
		return ErrBusinessNotFound
	}
	if !business.SquareConnected() {
		return ErrSquareNotConnected
	}

	if err := s.squareSvc.Disconnect(*business.SquareAccessToken); err != nil {
		logrus.WithField("business_id", businessID).WithError(err).Warn("Erro ao revogar token na Square, desconectando mesmo assim")
	}

	deleted, err := s.salesRepo.DeleteBySource(businessID, domain.SalesSourcePOSSync)
	if err != nil {
		return fmt.Errorf("erro ao remover registros do POS: %w", err)
	}

	if err := s.businessRepo.SetSquareToken(businessID, nil); err != nil {
		return err
	}
	if err := s.businessRepo.SetLastSquareSyncAt(businessID, nil); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"business_id": businessID,
		"deleted":     deleted,
	}).Info("Negócio desconectado da Square")

	return nil
}

func (s *Service) ListSales(businessID string, startDate, endDate time.Time) ([]*domain.SalesRecord, error) {
	return s.salesRepo.ListByWindow(businessID, startDate, endDate)
}

func (s *Service) ListBatches(businessID string) ([]*domain.UploadBatch, error) {
	return s.batchRepo.ListByBusiness(businessID)
}

// accumulate soma o registro ao grupo da mesma chave natural.
func accumulate(grouped map[domain.MergeKey]*domain.SalesRecord, record *domain.SalesRecord) {
	key := record.Key()
	if existing, ok := grouped[key]; ok {
		existing.UnitsSold += record.UnitsSold
		existing.Revenue = existing.Revenue.Add(record.Revenue)
		return
	}
	grouped[key] = record
}

// merge aplica o agrupamento sobre o que já existe no banco: chave
// conhecida acumula, chave nova cria. Tudo em uma transação.
func (s *Service) merge(
	ctx context.Context,
	businessID string,
	source domain.SalesSource,
	grouped map[domain.MergeKey]*domain.SalesRecord,
) (created, updated int, err error) {
	if len(grouped) == 0 {
		return 0, 0, nil
	}

	dates := make([]time.Time, 0, len(grouped))
	names := make([]string, 0, len(grouped))
	seenDates := make(map[string]bool)
	seenNames := make(map[string]bool)
	for _, record := range grouped {
		if day := record.Date.Format(time.DateOnly); !seenDates[day] {
			seenDates[day] = true
			dates = append(dates, record.Date)
		}
		if record.ProductName != nil && !seenNames[*record.ProductName] {
			seenNames[*record.ProductName] = true
			names = append(names, *record.ProductName)
		}
	}

	existing, err := s.salesRepo.GetForMerge(businessID, source, dates, names)
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao buscar registros existentes: %w", err)
	}

	toCreate := make([]*domain.SalesRecord, 0)
	toUpdate := make([]*domain.SalesRecord, 0)
	for key, record := range grouped {
		if match, ok := existing[key]; ok {
			match.UnitsSold += record.UnitsSold
			match.Revenue = match.Revenue.Add(record.Revenue)
			toUpdate = append(toUpdate, match)
			continue
		}
		toCreate = append(toCreate, record)
	}

	if err := s.salesRepo.MergeRecords(ctx, toCreate, toUpdate); err != nil {
		return 0, 0, fmt.Errorf("erro ao gravar registros de venda: %w", err)
	}

	return len(toCreate), len(toUpdate), nil
}
