package ingesting

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ai-marketer-api/infrastructure/integrator/square"
	squaredomain "github.com/vfg2006/ai-marketer-api/infrastructure/integrator/square/domain"
	squaremocks "github.com/vfg2006/ai-marketer-api/infrastructure/integrator/square/mocks"
	"github.com/vfg2006/ai-marketer-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ai-marketer-api/internal/config"
	"github.com/vfg2006/ai-marketer-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.App{BusinessTimezone: "UTC"},
	}
}

func connectedBusiness(id string) *domain.Business {
	token := "sq-token"
	return &domain.Business{
		ID:                id,
		Name:              "Cafeteria do Porto",
		SquareAccessToken: &token,
	}
}

func TestService_UploadSalesFile(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		filename string
		file     string
		setup    func(businessRepo *mocks.MockBusinessRepository, salesRepo *mocks.MockSalesRecordRepository, batchRepo *mocks.MockUploadBatchRepository)
		wantErr  error
	}{
		{
			name:     "Linhas da mesma chave natural - deve acumular em um único registro",
			filename: "vendas.csv",
			file: "Date,Product Name,Price,Quantity\n" +
				"2024-05-01,Flat White,4.50,2\n" +
				"2024-05-01,Flat White,4.50,3\n",
			setup: func(businessRepo *mocks.MockBusinessRepository, salesRepo *mocks.MockSalesRecordRepository, batchRepo *mocks.MockUploadBatchRepository) {
				businessRepo.EXPECT().GetByID("BIZ001").Return(connectedBusiness("BIZ001"), nil)
				batchRepo.EXPECT().Create(gomock.Any()).
					DoAndReturn(func(batch *domain.UploadBatch) (*domain.UploadBatch, error) {
						return batch, nil
					})
				salesRepo.EXPECT().GetForMerge("BIZ001", domain.SalesSourceUpload, gomock.Any(), gomock.Any()).
					Return(map[domain.MergeKey]*domain.SalesRecord{}, nil)
				salesRepo.EXPECT().MergeRecords(ctx, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, toCreate, toUpdate []*domain.SalesRecord) error {
						assert.Len(t, toCreate, 1)
						assert.Empty(t, toUpdate)
						assert.Equal(t, 5, toCreate[0].UnitsSold)
						assert.True(t, toCreate[0].Revenue.Equal(decimal.RequireFromString("22.50")))
						return nil
					})
			},
		},
		{
			name:     "Reenvio do mesmo arquivo - deve somar sobre o registro existente",
			filename: "vendas.csv",
			file: "Date,Product Name,Price,Quantity\n" +
				"2024-05-01,Flat White,4.50,2\n",
			setup: func(businessRepo *mocks.MockBusinessRepository, salesRepo *mocks.MockSalesRecordRepository, batchRepo *mocks.MockUploadBatchRepository) {
				businessRepo.EXPECT().GetByID("BIZ001").Return(connectedBusiness("BIZ001"), nil)
				batchRepo.EXPECT().Create(gomock.Any()).
					DoAndReturn(func(batch *domain.UploadBatch) (*domain.UploadBatch, error) {
						return batch, nil
					})

				name := "Flat White"
				price := decimal.RequireFromString("4.50")
				existing := &domain.SalesRecord{
					ID:           42,
					BusinessID:   "BIZ001",
					Date:         time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
					Revenue:      decimal.RequireFromString("9.00"),
					UnitsSold:    2,
					ProductName:  &name,
					ProductPrice: &price,
					Source:       domain.SalesSourceUpload,
				}
				salesRepo.EXPECT().GetForMerge("BIZ001", domain.SalesSourceUpload, gomock.Any(), gomock.Any()).
					Return(map[domain.MergeKey]*domain.SalesRecord{existing.Key(): existing}, nil)
				salesRepo.EXPECT().MergeRecords(ctx, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, toCreate, toUpdate []*domain.SalesRecord) error {
						assert.Empty(t, toCreate)
						assert.Len(t, toUpdate, 1)
						assert.Equal(t, 4, toUpdate[0].UnitsSold)
						assert.True(t, toUpdate[0].Revenue.Equal(decimal.RequireFromString("18.00")))
						return nil
					})
			},
		},
		{
			name:     "Arquivo inválido - o lote é registrado mesmo com a rejeição",
			filename: "vendas.csv",
			file: "Date,Product Name,Price,Quantity\n" +
				"2024-05-01,Flat White,4.50,zero\n",
			setup: func(businessRepo *mocks.MockBusinessRepository, salesRepo *mocks.MockSalesRecordRepository, batchRepo *mocks.MockUploadBatchRepository) {
				businessRepo.EXPECT().GetByID("BIZ001").Return(connectedBusiness("BIZ001"), nil)
				batchRepo.EXPECT().Create(gomock.Any()).
					DoAndReturn(func(batch *domain.UploadBatch) (*domain.UploadBatch, error) {
						return batch, nil
					})
				// Nenhuma gravação de vendas acontece.
			},
			wantErr: errAnyValidation,
		},
		{
			name:     "Extensão não suportada - deve recusar antes de registrar o lote",
			filename: "vendas.xlsx",
			file:     "qualquer coisa",
			setup: func(businessRepo *mocks.MockBusinessRepository, salesRepo *mocks.MockSalesRecordRepository, batchRepo *mocks.MockUploadBatchRepository) {
				businessRepo.EXPECT().GetByID("BIZ001").Return(connectedBusiness("BIZ001"), nil)
			},
			wantErr: ErrUnsupportedFileType,
		},
		{
			name:     "Negócio inexistente - deve recusar o upload",
			filename: "vendas.csv",
			file:     "Date,Product Name,Price,Quantity\n",
			setup: func(businessRepo *mocks.MockBusinessRepository, salesRepo *mocks.MockSalesRecordRepository, batchRepo *mocks.MockUploadBatchRepository) {
				businessRepo.EXPECT().GetByID("BIZ001").Return(nil, nil)
			},
			wantErr: ErrBusinessNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			businessRepo := mocks.NewMockBusinessRepository(ctrl)
			salesRepo := mocks.NewMockSalesRecordRepository(ctrl)
			batchRepo := mocks.NewMockUploadBatchRepository(ctrl)

			tt.setup(businessRepo, salesRepo, batchRepo)

			service := NewService(businessRepo, salesRepo, batchRepo, nil, testConfig())
			batch, err := service.UploadSalesFile(ctx, "BIZ001", tt.filename, strings.NewReader(tt.file))

			if tt.wantErr != nil {
				assert.Error(t, err)
				if tt.wantErr != errAnyValidation {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, batch)
			assert.Equal(t, "BIZ001", batch.BusinessID)
			assert.True(t, batch.Processed)
		})
	}
}

// errAnyValidation marca os casos em que basta a rejeição, sem casar o
// erro exato de validação do conteúdo.
var errAnyValidation = assert.AnError

func TestService_SyncSquare(t *testing.T) {
	ctx := context.Background()
	businessID := "BIZ001"

	money := func(amount int64) *squaredomain.Money {
		return &squaredomain.Money{Amount: amount, Currency: "AUD"}
	}

	t.Run("Pedidos do POS - deve converter centavos e acumular por dia", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		businessRepo := mocks.NewMockBusinessRepository(ctrl)
		salesRepo := mocks.NewMockSalesRecordRepository(ctrl)
		batchRepo := mocks.NewMockUploadBatchRepository(ctrl)
		squareSvc := squaremocks.NewMockSquareIntegrator(ctrl)

		businessRepo.EXPECT().GetByID(businessID).Return(connectedBusiness(businessID), nil)
		squareSvc.EXPECT().GetOrders("sq-token", gomock.Any(), gomock.Any()).
			Return([]squaredomain.Order{
				{
					ID:        "ORD1",
					CreatedAt: time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC),
					LineItems: []squaredomain.OrderLineItem{
						{Name: "Flat White", Quantity: "1", BasePriceMoney: money(500)},
					},
				},
				{
					ID:        "ORD2",
					CreatedAt: time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC),
					LineItems: []squaredomain.OrderLineItem{
						{Name: "Flat White", Quantity: "1", BasePriceMoney: money(500)},
					},
				},
			}, nil)
		salesRepo.EXPECT().GetForMerge(businessID, domain.SalesSourcePOSSync, gomock.Any(), gomock.Any()).
			Return(map[domain.MergeKey]*domain.SalesRecord{}, nil)
		salesRepo.EXPECT().MergeRecords(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, toCreate, toUpdate []*domain.SalesRecord) error {
				assert.Len(t, toCreate, 1)
				assert.Equal(t, 2, toCreate[0].UnitsSold)
				assert.True(t, toCreate[0].Revenue.Equal(decimal.RequireFromString("10.00")))
				assert.Equal(t, domain.SalesSourcePOSSync, toCreate[0].Source)
				return nil
			})
		businessRepo.EXPECT().SetLastSquareSyncAt(businessID, gomock.Any()).Return(nil)

		service := NewService(businessRepo, salesRepo, batchRepo, squareSvc, testConfig())
		result, err := service.SyncSquare(ctx, businessID)

		assert.NoError(t, err)
		assert.Equal(t, 2, result.Orders)
		assert.Equal(t, 1, result.RecordsCreated)
		assert.Equal(t, 0, result.RecordsUpdated)
		assert.NotNil(t, result.SyncedUntil)
	})

	t.Run("Total do item com imposto - receita segue o preço base", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		businessRepo := mocks.NewMockBusinessRepository(ctrl)
		salesRepo := mocks.NewMockSalesRecordRepository(ctrl)
		batchRepo := mocks.NewMockUploadBatchRepository(ctrl)
		squareSvc := squaremocks.NewMockSquareIntegrator(ctrl)

		businessRepo.EXPECT().GetByID(businessID).Return(connectedBusiness(businessID), nil)
		squareSvc.EXPECT().GetOrders("sq-token", gomock.Any(), gomock.Any()).
			Return([]squaredomain.Order{
				{
					ID:        "ORD1",
					CreatedAt: time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC),
					LineItems: []squaredomain.OrderLineItem{
						// total_money traz R$ 11,00 com imposto; a
						// receita fica em 2 × R$ 5,00.
						{Name: "Flat White", Quantity: "2", BasePriceMoney: money(500), TotalMoney: money(1100)},
					},
				},
			}, nil)
		salesRepo.EXPECT().GetForMerge(businessID, domain.SalesSourcePOSSync, gomock.Any(), gomock.Any()).
			Return(map[domain.MergeKey]*domain.SalesRecord{}, nil)
		salesRepo.EXPECT().MergeRecords(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, toCreate, toUpdate []*domain.SalesRecord) error {
				assert.Len(t, toCreate, 1)
				assert.True(t, toCreate[0].Revenue.Equal(decimal.RequireFromString("10.00")))
				return nil
			})
		businessRepo.EXPECT().SetLastSquareSyncAt(businessID, gomock.Any()).Return(nil)

		service := NewService(businessRepo, salesRepo, batchRepo, squareSvc, testConfig())
		_, err := service.SyncSquare(ctx, businessID)

		assert.NoError(t, err)
	})

	t.Run("Itens sem receita positiva - devem ser ignorados", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		businessRepo := mocks.NewMockBusinessRepository(ctrl)
		salesRepo := mocks.NewMockSalesRecordRepository(ctrl)
		batchRepo := mocks.NewMockUploadBatchRepository(ctrl)
		squareSvc := squaremocks.NewMockSquareIntegrator(ctrl)

		businessRepo.EXPECT().GetByID(businessID).Return(connectedBusiness(businessID), nil)
		squareSvc.EXPECT().GetOrders("sq-token", gomock.Any(), gomock.Any()).
			Return([]squaredomain.Order{
				{
					ID:        "ORD1",
					CreatedAt: time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC),
					LineItems: []squaredomain.OrderLineItem{
						{Name: "Brinde", Quantity: "1", BasePriceMoney: money(0)},
						{Name: "Quebrado", Quantity: "abc", BasePriceMoney: money(500)},
					},
				},
			}, nil)
		// Sem registros válidos, nada é gravado; o checkpoint avança.
		businessRepo.EXPECT().SetLastSquareSyncAt(businessID, gomock.Any()).Return(nil)

		service := NewService(businessRepo, salesRepo, batchRepo, squareSvc, testConfig())
		result, err := service.SyncSquare(ctx, businessID)

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Orders)
		assert.Equal(t, 0, result.RecordsCreated)
	})

	t.Run("Janela desde o último checkpoint - deve usar last_square_sync_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		businessRepo := mocks.NewMockBusinessRepository(ctrl)
		salesRepo := mocks.NewMockSalesRecordRepository(ctrl)
		batchRepo := mocks.NewMockUploadBatchRepository(ctrl)
		squareSvc := squaremocks.NewMockSquareIntegrator(ctrl)

		lastSync := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		business := connectedBusiness(businessID)
		business.LastSquareSyncAt = &lastSync

		businessRepo.EXPECT().GetByID(businessID).Return(business, nil)
		squareSvc.EXPECT().GetOrders("sq-token", lastSync, gomock.Any()).
			Return([]squaredomain.Order{}, nil)
		businessRepo.EXPECT().SetLastSquareSyncAt(businessID, gomock.Any()).Return(nil)

		service := NewService(businessRepo, salesRepo, batchRepo, squareSvc, testConfig())
		_, err := service.SyncSquare(ctx, businessID)

		assert.NoError(t, err)
	})

	t.Run("Comerciante sem location - erro e o checkpoint não avança", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		businessRepo := mocks.NewMockBusinessRepository(ctrl)
		squareSvc := squaremocks.NewMockSquareIntegrator(ctrl)

		businessRepo.EXPECT().GetByID(businessID).Return(connectedBusiness(businessID), nil)
		squareSvc.EXPECT().GetOrders("sq-token", gomock.Any(), gomock.Any()).
			Return(nil, square.ErrNoLocations)
		// SetLastSquareSyncAt não é chamado.

		service := NewService(businessRepo, nil, nil, squareSvc, testConfig())
		_, err := service.SyncSquare(ctx, businessID)

		assert.ErrorIs(t, err, square.ErrNoLocations)
	})

	t.Run("Falha na gravação - o checkpoint não avança", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		businessRepo := mocks.NewMockBusinessRepository(ctrl)
		salesRepo := mocks.NewMockSalesRecordRepository(ctrl)
		batchRepo := mocks.NewMockUploadBatchRepository(ctrl)
		squareSvc := squaremocks.NewMockSquareIntegrator(ctrl)

		businessRepo.EXPECT().GetByID(businessID).Return(connectedBusiness(businessID), nil)
		squareSvc.EXPECT().GetOrders("sq-token", gomock.Any(), gomock.Any()).
			Return([]squaredomain.Order{
				{
					ID:        "ORD1",
					CreatedAt: time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC),
					LineItems: []squaredomain.OrderLineItem{
						{Name: "Flat White", Quantity: "1", BasePriceMoney: money(500)},
					},
				},
			}, nil)
		salesRepo.EXPECT().GetForMerge(businessID, domain.SalesSourcePOSSync, gomock.Any(), gomock.Any()).
			Return(nil, assert.AnError)
		// SetLastSquareSyncAt não é chamado.

		service := NewService(businessRepo, salesRepo, batchRepo, squareSvc, testConfig())
		_, err := service.SyncSquare(ctx, businessID)

		assert.Error(t, err)
	})

	t.Run("Negócio sem Square - deve recusar a sincronização", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		businessRepo := mocks.NewMockBusinessRepository(ctrl)
		businessRepo.EXPECT().GetByID(businessID).Return(&domain.Business{ID: businessID}, nil)

		service := NewService(businessRepo, nil, nil, nil, testConfig())
		_, err := service.SyncSquare(ctx, businessID)

		assert.ErrorIs(t, err, ErrSquareNotConnected)
	})
}

func TestService_DisconnectSquare(t *testing.T) {
	ctx := context.Background()
	businessID := "BIZ001"

	t.Run("Desconexão - remove dados do POS e limpa token e checkpoint", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		businessRepo := mocks.NewMockBusinessRepository(ctrl)
		salesRepo := mocks.NewMockSalesRecordRepository(ctrl)
		squareSvc := squaremocks.NewMockSquareIntegrator(ctrl)

		businessRepo.EXPECT().GetByID(businessID).Return(connectedBusiness(businessID), nil)
		squareSvc.EXPECT().Disconnect("sq-token").Return(nil)
		salesRepo.EXPECT().DeleteBySource(businessID, domain.SalesSourcePOSSync).Return(int64(12), nil)
		businessRepo.EXPECT().SetSquareToken(businessID, nil).Return(nil)
		businessRepo.EXPECT().SetLastSquareSyncAt(businessID, nil).Return(nil)

		service := NewService(businessRepo, salesRepo, nil, squareSvc, testConfig())
		assert.NoError(t, service.DisconnectSquare(ctx, businessID))
	})

	t.Run("Falha na revogação remota - desconecta localmente mesmo assim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		businessRepo := mocks.NewMockBusinessRepository(ctrl)
		salesRepo := mocks.NewMockSalesRecordRepository(ctrl)
		squareSvc := squaremocks.NewMockSquareIntegrator(ctrl)

		businessRepo.EXPECT().GetByID(businessID).Return(connectedBusiness(businessID), nil)
		squareSvc.EXPECT().Disconnect("sq-token").Return(assert.AnError)
		salesRepo.EXPECT().DeleteBySource(businessID, domain.SalesSourcePOSSync).Return(int64(0), nil)
		businessRepo.EXPECT().SetSquareToken(businessID, nil).Return(nil)
		businessRepo.EXPECT().SetLastSquareSyncAt(businessID, nil).Return(nil)

		service := NewService(businessRepo, salesRepo, nil, squareSvc, testConfig())
		assert.NoError(t, service.DisconnectSquare(ctx, businessID))
	})
}

func TestService_ConnectSquare(t *testing.T) {
	businessID := "BIZ001"

	t.Run("Negócio já conectado - deve recusar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		businessRepo := mocks.NewMockBusinessRepository(ctrl)
		businessRepo.EXPECT().GetByID(businessID).Return(connectedBusiness(businessID), nil)

		service := NewService(businessRepo, nil, nil, nil, testConfig())
		assert.ErrorIs(t, service.ConnectSquare(businessID, "code"), ErrSquareAlreadyLinked)
	})

	t.Run("Troca do código de autorização - deve guardar o access token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		businessRepo := mocks.NewMockBusinessRepository(ctrl)
		squareSvc := squaremocks.NewMockSquareIntegrator(ctrl)

		businessRepo.EXPECT().GetByID(businessID).Return(&domain.Business{ID: businessID}, nil)
		squareSvc.EXPECT().Connect("code").Return(&squaredomain.TokenResponse{AccessToken: "novo-token"}, nil)
		businessRepo.EXPECT().SetSquareToken(businessID, gomock.Any()).
			DoAndReturn(func(_ string, token *string) error {
				assert.Equal(t, "novo-token", *token)
				return nil
			})

		service := NewService(businessRepo, nil, nil, squareSvc, testConfig())
		assert.NoError(t, service.ConnectSquare(businessID, "code"))
	})
}
