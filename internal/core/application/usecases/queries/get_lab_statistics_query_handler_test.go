package queries_test

import (
	"context"
	"testing"
	"time"

	"pharmorders/internal/core/application/usecases/queries"
	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/core/domain/model/lab"
	"pharmorders/internal/core/domain/model/order"
	"pharmorders/internal/core/domain/services"
	"pharmorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository is a testify mock for ports.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if orders, ok := args.Get(0).([]*order.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetByLab(ctx context.Context, labID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, labID)
	if orders, ok := args.Get(0).([]*order.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetByPharmacy(ctx context.Context, pharmacyID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, pharmacyID)
	if orders, ok := args.Get(0).([]*order.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetByLabAndPharmacy(
	ctx context.Context, labID, pharmacyID kernel.UUID,
) ([]*order.Order, error) {
	args := m.Called(ctx, labID, pharmacyID)
	if orders, ok := args.Get(0).([]*order.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if orders, ok := args.Get(0).([]*order.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLabRepository is a testify mock for ports.LabRepository.
type MockLabRepository struct {
	mock.Mock
}

func (m *MockLabRepository) Add(ctx context.Context, aggregate *lab.Lab) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockLabRepository) Update(ctx context.Context, aggregate *lab.Lab) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockLabRepository) Get(ctx context.Context, id kernel.UUID) (*lab.Lab, error) {
	args := m.Called(ctx, id)
	if l, ok := args.Get(0).(*lab.Lab); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLabRepository) GetAll(ctx context.Context) ([]*lab.Lab, error) {
	args := m.Called(ctx)
	if labs, ok := args.Get(0).([]*lab.Lab); ok {
		return labs, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockPharmacyNameResolver is a testify mock for ports.PharmacyNameResolver.
type MockPharmacyNameResolver struct {
	mock.Mock
}

func (m *MockPharmacyNameResolver) ResolveName(ctx context.Context, pharmacyID kernel.UUID) string {
	args := m.Called(ctx, pharmacyID)
	return args.String(0)
}

// restoreStatOrder rebuilds a pending order with the given counts for
// statistics tests. Items are synthesized to match the counts.
func restoreStatOrder(
	t *testing.T,
	labID, pharmacyID kernel.UUID,
	createdAt time.Time,
	references, boxes int,
) *order.Order {
	t.Helper()

	items := make([]order.LineItem, 0, references)
	remaining := boxes
	for i := range references {
		quantity := 1
		if i == references-1 {
			quantity = remaining
		}
		remaining -= quantity

		code := "12345678901" + string(rune('0'+i%10)) + string(rune('0'+i/10%10))
		item, err := order.NewLineItem(code, quantity)
		require.NoError(t, err)
		items = append(items, item)
	}

	o, err := order.RestoreOrder(order.RestoreOrderParams{
		ID:              kernel.NewUUID(),
		LabID:           labID,
		PharmacyID:      pharmacyID,
		FileName:        "commande.csv",
		CreatedAt:       createdAt,
		RawContent:      "",
		Items:           items,
		ReferencesCount: references,
		BoxesCount:      boxes,
		Status:          order.Pending,
	})
	require.NoError(t, err)
	return o
}

func TestGetLabStatisticsQueryHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()

	labID := kernel.NewUUID()
	pharmacyA := kernel.NewUUID()
	pharmacyB := kernel.NewUUID()

	first := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	last := time.Date(2026, 3, 10, 17, 30, 0, 0, time.UTC)

	orders := []*order.Order{
		restoreStatOrder(t, labID, pharmacyA, last, 2, 7),
		restoreStatOrder(t, labID, pharmacyA, first.Add(24*time.Hour), 1, 3),
		restoreStatOrder(t, labID, pharmacyB, first, 3, 4),
	}

	testLab, err := lab.NewLab(labID, "Biogaran")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	labRepo := new(MockLabRepository)
	resolver := new(MockPharmacyNameResolver)

	orderRepo.On("GetByLab", ctx, labID).Return(orders, nil).Once()
	labRepo.On("Get", ctx, labID).Return(testLab, nil).Once()
	resolver.On("ResolveName", ctx, pharmacyA).Return("Pharmacie A")
	resolver.On("ResolveName", ctx, pharmacyB).Return("Pharmacie B")

	handler := queries.NewGetLabStatisticsQueryHandler(orderRepo, labRepo, resolver)

	query, err := queries.NewGetLabStatisticsQuery(labID)
	require.NoError(t, err)

	result, err := handler.Handle(ctx, query)
	require.NoError(t, err)

	assert.Equal(t, labID, result.LabID)
	assert.Equal(t, "Biogaran", result.LabName)
	assert.Equal(t, 3, result.OrderCount)
	assert.Equal(t, 6, result.TotalReferences)
	assert.Equal(t, 14, result.TotalBoxes)
	assert.Equal(t, 2, result.PharmacyCount)

	require.NotNil(t, result.FirstOrderDate)
	require.NotNil(t, result.LastOrderDate)
	assert.True(t, first.Equal(*result.FirstOrderDate))
	assert.True(t, last.Equal(*result.LastOrderDate))

	require.Len(t, result.Pharmacies, 2)
	assert.Equal(t, "Pharmacie A", result.Pharmacies[0].PharmacyName)
	assert.Equal(t, 2, result.Pharmacies[0].OrderCount)
	assert.Equal(t, "Pharmacie B", result.Pharmacies[1].PharmacyName)
	assert.Equal(t, 1, result.Pharmacies[1].OrderCount)

	orderRepo.AssertExpectations(t)
	labRepo.AssertExpectations(t)
	resolver.AssertExpectations(t)
}

func TestGetLabStatisticsQueryHandler_Handle_UnknownLab_UsesPlaceholderName(t *testing.T) {
	ctx := context.Background()
	labID := kernel.NewUUID()

	orderRepo := new(MockOrderRepository)
	labRepo := new(MockLabRepository)
	resolver := new(MockPharmacyNameResolver)

	orderRepo.On("GetByLab", ctx, labID).Return([]*order.Order{}, nil).Once()
	labRepo.On("Get", ctx, labID).
		Return(nil, errs.NewObjectNotFoundError("labId", labID.String())).Once()

	handler := queries.NewGetLabStatisticsQueryHandler(orderRepo, labRepo, resolver)

	query, err := queries.NewGetLabStatisticsQuery(labID)
	require.NoError(t, err)

	result, err := handler.Handle(ctx, query)
	require.NoError(t, err)

	assert.Equal(t, services.PlaceholderLabName(labID), result.LabName)
	assert.Equal(t, 0, result.OrderCount)
	assert.Nil(t, result.FirstOrderDate)
	assert.Nil(t, result.LastOrderDate)
	assert.Empty(t, result.Pharmacies)

	orderRepo.AssertExpectations(t)
	labRepo.AssertExpectations(t)
}

func TestGetLabStatisticsQueryHandler_Handle_InvalidQuery_ReturnsError(t *testing.T) {
	handler := queries.NewGetLabStatisticsQueryHandler(
		new(MockOrderRepository), new(MockLabRepository), new(MockPharmacyNameResolver),
	)

	_, err := handler.Handle(context.Background(), queries.GetLabStatisticsQuery{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be created via NewGetLabStatisticsQuery constructor")
}

func TestGetAllLabsStatisticsQueryHandler_Handle_GroupsByLabAndSortsByName(t *testing.T) {
	ctx := context.Background()

	labA := kernel.NewUUID()
	labB := kernel.NewUUID()
	pharmacyID := kernel.NewUUID()

	now := time.Now()
	orders := []*order.Order{
		restoreStatOrder(t, labA, pharmacyID, now, 1, 2),
		restoreStatOrder(t, labB, pharmacyID, now, 2, 5),
		restoreStatOrder(t, labB, pharmacyID, now.Add(-time.Hour), 1, 1),
	}

	zentivaLab, err := lab.NewLab(labA, "Zentiva")
	require.NoError(t, err)
	arrowLab, err := lab.NewLab(labB, "Arrow")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	labRepo := new(MockLabRepository)
	resolver := new(MockPharmacyNameResolver)

	orderRepo.On("GetAll", ctx).Return(orders, nil).Once()
	labRepo.On("GetAll", ctx).Return([]*lab.Lab{zentivaLab, arrowLab}, nil).Once()
	resolver.On("ResolveName", ctx, pharmacyID).Return("Pharmacie A")

	handler := queries.NewGetAllLabsStatisticsQueryHandler(orderRepo, labRepo, resolver)

	result, err := handler.Handle(ctx, queries.NewGetAllLabsStatisticsQuery())
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.Equal(t, "Arrow", result[0].LabName)
	assert.Equal(t, 2, result[0].OrderCount)
	assert.Equal(t, 6, result[0].TotalBoxes)
	assert.Equal(t, "Zentiva", result[1].LabName)
	assert.Equal(t, 1, result[1].OrderCount)

	orderRepo.AssertExpectations(t)
	labRepo.AssertExpectations(t)
}

func TestGetAllLabsStatisticsQueryHandler_Handle_UnknownLab_UsesPlaceholderName(t *testing.T) {
	ctx := context.Background()

	labID := kernel.NewUUID()
	pharmacyID := kernel.NewUUID()

	orders := []*order.Order{
		restoreStatOrder(t, labID, pharmacyID, time.Now(), 1, 1),
	}

	orderRepo := new(MockOrderRepository)
	labRepo := new(MockLabRepository)
	resolver := new(MockPharmacyNameResolver)

	orderRepo.On("GetAll", ctx).Return(orders, nil).Once()
	labRepo.On("GetAll", ctx).Return([]*lab.Lab{}, nil).Once()
	resolver.On("ResolveName", ctx, pharmacyID).Return("Pharmacie A")

	handler := queries.NewGetAllLabsStatisticsQueryHandler(orderRepo, labRepo, resolver)

	result, err := handler.Handle(ctx, queries.NewGetAllLabsStatisticsQuery())
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, services.PlaceholderLabName(labID), result[0].LabName)

	orderRepo.AssertExpectations(t)
	labRepo.AssertExpectations(t)
}
