package commands_test

import (
	"context"

	"pharmorders/internal/core/application/usecases/commands"
	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/core/domain/model/lab"
	"pharmorders/internal/core/domain/model/order"
	"pharmorders/internal/core/domain/model/pharmacy"
	"pharmorders/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
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

type MockPharmacyRepository struct{ mock.Mock }

func (m *MockPharmacyRepository) Add(ctx context.Context, p *pharmacy.Pharmacy) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPharmacyRepository) Update(ctx context.Context, p *pharmacy.Pharmacy) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPharmacyRepository) Get(ctx context.Context, id kernel.UUID) (*pharmacy.Pharmacy, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*pharmacy.Pharmacy); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPharmacyRepository) GetAll(ctx context.Context) ([]*pharmacy.Pharmacy, error) {
	args := m.Called(ctx)
	if pharmacies, ok := args.Get(0).([]*pharmacy.Pharmacy); ok {
		return pharmacies, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockLabRepository struct{ mock.Mock }

func (m *MockLabRepository) Add(ctx context.Context, l *lab.Lab) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLabRepository) Update(ctx context.Context, l *lab.Lab) error {
	args := m.Called(ctx, l)
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

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) PharmacyRepository() ports.PharmacyRepository {
	args := m.Called()
	return args.Get(0).(ports.PharmacyRepository)
}

func (m *MockUoW) LabRepository() ports.LabRepository {
	args := m.Called()
	return args.Get(0).(ports.LabRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPharmacyUoWFactory struct{ mock.Mock }

func (m *MockPharmacyUoWFactory) Create() commands.PharmacyUoW {
	args := m.Called()
	return args.Get(0).(commands.PharmacyUoW)
}

type MockLabUoWFactory struct{ mock.Mock }

func (m *MockLabUoWFactory) Create() commands.LabUoW {
	args := m.Called()
	return args.Get(0).(commands.LabUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyOrderCreated(ctx context.Context, n ports.OrderCreatedNotification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
