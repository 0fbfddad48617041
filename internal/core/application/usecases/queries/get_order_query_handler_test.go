package queries_test

import (
	"context"
	"testing"
	"time"

	"pharmorders/internal/adapters/out/postgres/orderrepo"
	"pharmorders/internal/adapters/out/postgres/pharmacyrepo"
	"pharmorders/internal/core/application/usecases/queries"
	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/core/domain/model/order"
	"pharmorders/internal/core/domain/model/pharmacy"
	"pharmorders/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.GetOrderQueryHandler
	orderRepo    *orderrepo.GormOrderRepository
	pharmacyRepo *pharmacyrepo.GormPharmacyRepository
	testPharmacy *pharmacy.Pharmacy
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &pharmacyrepo.PharmacyDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.pharmacyRepo = pharmacyrepo.NewGormPharmacyRepository(db, &mockAggregateTracker{})

	suite.testPharmacy, err = pharmacy.NewPharmacy(
		kernel.NewUUID(), "Pharmacie Centrale", "centrale@example.com", "",
	)
	suite.Require().NoError(err)
	err = suite.pharmacyRepo.Add(ctx, suite.testPharmacy)
	suite.Require().NoError(err)
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ExistingOrder_ReturnsDetailWithItems() {
	ctx := context.Background()

	item1, err := order.NewLineItem("1234567890123", 5)
	suite.Require().NoError(err)
	item2, err := order.NewLineItem("3456789012345", 2)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), suite.testPharmacy.ID(),
		"commande.csv", "1234567890123;5\n3456789012345;2\n",
		[]order.LineItem{item1, item2}, 2, 7,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, o))

	query, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)

	detail, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(o.ID(), detail.ID)
	suite.Equal("Pharmacie Centrale", detail.PharmacyName)
	suite.Equal("commande.csv", detail.FileName)
	suite.Equal("1234567890123;5\n3456789012345;2\n", detail.RawContent)
	suite.Equal("pending", detail.Status)
	suite.Equal(2, detail.ReferencesCount)
	suite.Equal(7, detail.BoxesCount)

	suite.Require().Len(detail.Items, 2)
	suite.Equal("1234567890123", detail.Items[0].Code)
	suite.Equal(5, detail.Items[0].Quantity)
	suite.Equal("3456789012345", detail.Items[1].Code)
	suite.Equal(2, detail.Items[1].Quantity)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ReviewedOrder_ReturnsLifecycleFields() {
	ctx := context.Background()

	item, err := order.NewLineItem("1234567890123", 5)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), suite.testPharmacy.ID(),
		"commande.csv", "1234567890123;5\n",
		[]order.LineItem{item}, 1, 5,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(o.Review(order.DecisionApproved, "alice", "stock confirmed"))

	expected := time.Now().Add(48 * time.Hour).Truncate(time.Second)
	suite.Require().NoError(o.ScheduleDelivery(expected))
	suite.Require().NoError(suite.orderRepo.Add(ctx, o))

	query, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)

	detail, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal("awaiting_delivery", detail.Status)
	suite.Require().NotNil(detail.ReviewedAt)
	suite.Equal("alice", detail.ReviewedBy)
	suite.Equal("stock confirmed", detail.ReviewNote)
	suite.Require().NotNil(detail.ExpectedDeliveryDate)
	suite.True(expected.Equal(*detail.ExpectedDeliveryDate))
	suite.Nil(detail.DeliveredAt)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_NonExistentOrder_ReturnsNotFoundError() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderQuery constructor")
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
