package commands_test

import (
	"context"
	"errors"
	"time"

	"gescom/internal/core/application/usecases/commands"
	"gescom/internal/core/domain/model/article"
	"gescom/internal/core/domain/model/client"
	"gescom/internal/core/domain/model/delivery"
	"gescom/internal/core/domain/model/kernel"
	"gescom/internal/core/domain/model/order"
	"gescom/internal/core/domain/model/position"
	"gescom/internal/core/domain/model/staff"
	"gescom/internal/core/ports"

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

func (m *MockOrderRepository) Get(ctx context.Context, number int64) (*order.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllReady(_ context.Context) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) GetAllCancelledUnarchived(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetByOrder(ctx context.Context, orderNumber int64) (*delivery.Delivery, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) CountActive(
	ctx context.Context, date time.Time, carrierID int64, postalCode int,
) (int64, error) {
	args := m.Called(ctx, date, carrierID, postalCode)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDeliveryRepository) Delete(_ context.Context, _ kernel.UUID) error {
	return errors.New("not implemented in mock")
}

type MockArticleRepository struct{ mock.Mock }

func (m *MockArticleRepository) Add(ctx context.Context, a *article.Article) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockArticleRepository) Update(_ context.Context, _ *article.Article) error { return nil }

func (m *MockArticleRepository) Get(_ context.Context, _ kernel.UUID) (*article.Article, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockArticleRepository) GetByReference(_ context.Context, _ string) (*article.Article, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockArticleRepository) Delete(_ context.Context, _ kernel.UUID) error {
	return errors.New("not implemented in mock")
}

type MockClientRepository struct{ mock.Mock }

func (m *MockClientRepository) Add(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) Update(_ context.Context, _ *client.Client) error { return nil }

func (m *MockClientRepository) Get(ctx context.Context, no int64) (*client.Client, error) {
	args := m.Called(ctx, no)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

func (m *MockClientRepository) Delete(_ context.Context, _ int64) error {
	return errors.New("not implemented in mock")
}

type MockStaffRepository struct{ mock.Mock }

func (m *MockStaffRepository) Add(ctx context.Context, s *staff.Staff) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStaffRepository) Update(_ context.Context, _ *staff.Staff) error { return nil }

func (m *MockStaffRepository) Get(ctx context.Context, id int64) (*staff.Staff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Staff), args.Error(1)
}

func (m *MockStaffRepository) GetByLogin(ctx context.Context, login string) (*staff.Staff, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Staff), args.Error(1)
}

func (m *MockStaffRepository) CountByPositionCode(ctx context.Context, code string) (int64, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStaffRepository) Delete(_ context.Context, _ int64) error {
	return errors.New("not implemented in mock")
}

type MockPositionRepository struct{ mock.Mock }

func (m *MockPositionRepository) Add(ctx context.Context, p *position.Position) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPositionRepository) Update(_ context.Context, _ *position.Position) error { return nil }

func (m *MockPositionRepository) Get(ctx context.Context, id kernel.UUID) (*position.Position, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*position.Position), args.Error(1)
}

func (m *MockPositionRepository) GetByCode(ctx context.Context, code string) (*position.Position, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*position.Position), args.Error(1)
}

func (m *MockPositionRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) AddCancelledOrder(ctx context.Context, record ports.CancelledOrderRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockHistoryRepository) IsArchived(_ context.Context, _ int64) (bool, error) {
	return false, errors.New("not implemented in mock")
}

type MockSessionStore struct{ mock.Mock }

func (m *MockSessionStore) Save(ctx context.Context, session ports.Session, ttl time.Duration) error {
	args := m.Called(ctx, session, ttl)
	return args.Error(0)
}

func (m *MockSessionStore) Get(_ context.Context, _ string) (ports.Session, error) {
	return ports.Session{}, errors.New("not implemented in mock")
}

func (m *MockSessionStore) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// mockTx embeds the transaction lifecycle shared by all unit-of-work mocks.
type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockOrderUoW struct{ mockTx }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) ClientRepository() ports.ClientRepository {
	args := m.Called()
	return args.Get(0).(ports.ClientRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockScheduleUoW struct{ mockTx }

func (m *MockScheduleUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockScheduleUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockScheduleUoW) ClientRepository() ports.ClientRepository {
	args := m.Called()
	return args.Get(0).(ports.ClientRepository)
}

func (m *MockScheduleUoW) StaffRepository() ports.StaffRepository {
	args := m.Called()
	return args.Get(0).(ports.StaffRepository)
}

func (m *MockScheduleUoW) PositionRepository() ports.PositionRepository {
	args := m.Called()
	return args.Get(0).(ports.PositionRepository)
}

type MockScheduleUoWFactory struct{ mock.Mock }

func (m *MockScheduleUoWFactory) Create() commands.ScheduleUoW {
	args := m.Called()
	return args.Get(0).(commands.ScheduleUoW)
}

type MockDeliveryUoW struct{ mockTx }

func (m *MockDeliveryUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockArticleUoW struct{ mockTx }

func (m *MockArticleUoW) ArticleRepository() ports.ArticleRepository {
	args := m.Called()
	return args.Get(0).(ports.ArticleRepository)
}

type MockArticleUoWFactory struct{ mock.Mock }

func (m *MockArticleUoWFactory) Create() commands.ArticleUoW {
	args := m.Called()
	return args.Get(0).(commands.ArticleUoW)
}

type MockClientUoW struct{ mockTx }

func (m *MockClientUoW) ClientRepository() ports.ClientRepository {
	args := m.Called()
	return args.Get(0).(ports.ClientRepository)
}

type MockClientUoWFactory struct{ mock.Mock }

func (m *MockClientUoWFactory) Create() commands.ClientUoW {
	args := m.Called()
	return args.Get(0).(commands.ClientUoW)
}

type MockStaffUoW struct{ mockTx }

func (m *MockStaffUoW) StaffRepository() ports.StaffRepository {
	args := m.Called()
	return args.Get(0).(ports.StaffRepository)
}

func (m *MockStaffUoW) PositionRepository() ports.PositionRepository {
	args := m.Called()
	return args.Get(0).(ports.PositionRepository)
}

type MockStaffUoWFactory struct{ mock.Mock }

func (m *MockStaffUoWFactory) Create() commands.StaffUoW {
	args := m.Called()
	return args.Get(0).(commands.StaffUoW)
}

type MockPositionUoW struct{ mockTx }

func (m *MockPositionUoW) PositionRepository() ports.PositionRepository {
	args := m.Called()
	return args.Get(0).(ports.PositionRepository)
}

type MockPositionUoWFactory struct{ mock.Mock }

func (m *MockPositionUoWFactory) Create() commands.PositionUoW {
	args := m.Called()
	return args.Get(0).(commands.PositionUoW)
}

type MockDeletePositionUoW struct{ mockTx }

func (m *MockDeletePositionUoW) PositionRepository() ports.PositionRepository {
	args := m.Called()
	return args.Get(0).(ports.PositionRepository)
}

func (m *MockDeletePositionUoW) StaffRepository() ports.StaffRepository {
	args := m.Called()
	return args.Get(0).(ports.StaffRepository)
}

type MockDeletePositionUoWFactory struct{ mock.Mock }

func (m *MockDeletePositionUoWFactory) Create() commands.DeletePositionUoW {
	args := m.Called()
	return args.Get(0).(commands.DeletePositionUoW)
}

type MockArchiveUoW struct{ mockTx }

func (m *MockArchiveUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockArchiveUoW) ClientRepository() ports.ClientRepository {
	args := m.Called()
	return args.Get(0).(ports.ClientRepository)
}

func (m *MockArchiveUoW) HistoryRepository() ports.HistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.HistoryRepository)
}

type MockArchiveUoWFactory struct{ mock.Mock }

func (m *MockArchiveUoWFactory) Create() commands.ArchiveUoW {
	args := m.Called()
	return args.Get(0).(commands.ArchiveUoW)
}
