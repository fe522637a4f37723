package queries_test

import (
	"context"
	"testing"
	"time"

	"ordertracking/internal/adapters/out/postgres/customerrepo"
	"ordertracking/internal/adapters/out/postgres/orderrepo"
	"ordertracking/internal/adapters/out/postgres/pgtest"
	"ordertracking/internal/adapters/out/postgres/productrepo"
	"ordertracking/internal/core/application/usecases/queries"
	"ordertracking/internal/core/domain/model/customer"
	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/core/domain/model/product"
	"ordertracking/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type QueriesIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database

	customers *customerrepo.GormCustomerRepository
	products  *productrepo.GormProductRepository
	orders    *orderrepo.GormOrderRepository

	alice  *customer.Customer
	widget *product.Product
	gadget *product.Product
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	suite.customers = customerrepo.NewGormCustomerRepository(database.DB)
	suite.products = productrepo.NewGormProductRepository(database.DB)
	suite.orders = orderrepo.NewGormOrderRepository(database.DB)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.database.Truncate())

	alice, err := customer.NewCustomer("Alice Johnson", "alice@corp.com", "", time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.customers.Add(ctx, alice))
	suite.alice = alice

	suite.widget = suite.addProduct("Widget", "SKU-001", "9.99")
	suite.gadget = suite.addProduct("Gadget", "SKU-002", "19.99")
}

func (suite *QueriesIntegrationTestSuite) addProduct(name, sku, price string) *product.Product {
	p, err := product.NewProduct(name, sku, kernel.MustMoney(price), time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.products.Add(context.Background(), p))
	return p
}

func (suite *QueriesIntegrationTestSuite) addOrder(createdAt time.Time, lines map[*product.Product]int) *order.Order {
	items := make([]*order.Item, 0, len(lines))
	for _, p := range []*product.Product{suite.widget, suite.gadget} {
		quantity, ok := lines[p]
		if !ok {
			continue
		}
		item, err := order.NewItem(p.ID(), quantity, p.Price())
		suite.Require().NoError(err)
		items = append(items, item)
	}

	o, err := order.NewOrder(suite.alice.ID(), items, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.Add(context.Background(), o))
	return o
}

func (suite *QueriesIntegrationTestSuite) TestGetOrderDetails() {
	ctx := context.Background()
	o := suite.addOrder(time.Now(), map[*product.Product]int{suite.widget: 2, suite.gadget: 1})

	query, err := queries.NewGetOrderDetailsQuery(o.ID())
	suite.Require().NoError(err)

	details, err := queries.NewGetOrderDetailsQueryHandler(suite.database.DB).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(o.ID(), details.ID)
	suite.Equal("Alice Johnson", details.CustomerName)
	suite.Equal(order.Pending, details.Status)
	suite.Equal("39.97", details.Total.String())
	suite.Require().Len(details.Items, 2)
	suite.Equal("Widget", details.Items[0].ProductName)
	suite.Equal("SKU-001", details.Items[0].SKU)
	suite.Equal(2, details.Items[0].Quantity)
	suite.Equal("19.98", details.Items[0].LineTotal.String())
	suite.Equal("19.99", details.Items[1].LineTotal.String())
}

func (suite *QueriesIntegrationTestSuite) TestGetOrderDetails_KeepsSnapshotPrice() {
	ctx := context.Background()
	o := suite.addOrder(time.Now(), map[*product.Product]int{suite.widget: 2})

	suite.widget.ChangePrice(kernel.MustMoney("15.00"))
	suite.Require().NoError(suite.products.UpdatePrice(ctx, suite.widget))

	query, err := queries.NewGetOrderDetailsQuery(o.ID())
	suite.Require().NoError(err)

	details, err := queries.NewGetOrderDetailsQueryHandler(suite.database.DB).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("9.99", details.Items[0].UnitPrice.String())
	suite.Equal("19.98", details.Total.String())
}

func (suite *QueriesIntegrationTestSuite) TestGetOrderDetails_NotFound() {
	query, err := queries.NewGetOrderDetailsQuery(kernel.ID{})
	suite.Require().Error(err)

	id, err := kernel.NewID(999)
	suite.Require().NoError(err)
	query, err = queries.NewGetOrderDetailsQuery(id)
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderDetailsQueryHandler(suite.database.DB).Handle(context.Background(), query)
	suite.Equal(errs.KindNotFound, errs.KindOf(err))
}

func (suite *QueriesIntegrationTestSuite) TestGetOrderDetails_TamperedTotal() {
	ctx := context.Background()
	o := suite.addOrder(time.Now(), map[*product.Product]int{suite.widget: 1})
	suite.Require().NoError(suite.database.DB.Exec("UPDATE orders SET total = 1.00 WHERE id = ?", o.ID().Int64()).Error)

	query, err := queries.NewGetOrderDetailsQuery(o.ID())
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderDetailsQueryHandler(suite.database.DB).Handle(ctx, query)
	suite.Equal(errs.KindStoreCorruption, errs.KindOf(err))
}

func (suite *QueriesIntegrationTestSuite) TestGetOrderDetails_ConcurrentDeleteSeesOneSnapshot() {
	ctx := context.Background()
	o := suite.addOrder(time.Now(), map[*product.Product]int{suite.widget: 2, suite.gadget: 1})

	query, err := queries.NewGetOrderDetailsQuery(o.ID())
	suite.Require().NoError(err)

	deleted := false
	handler := queries.NewGetOrderDetailsQueryHandlerWithHook(suite.database.DB, func() {
		// Runs on another pooled connection and commits before the items are read.
		suite.Require().NoError(suite.database.DB.Exec("DELETE FROM orders WHERE id = ?", o.ID().Int64()).Error)
		deleted = true
	})

	details, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.True(deleted)
	suite.Equal("39.97", details.Total.String())
	suite.Len(details.Items, 2)

	_, err = queries.NewGetOrderDetailsQueryHandler(suite.database.DB).Handle(ctx, query)
	suite.Equal(errs.KindNotFound, errs.KindOf(err))
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_NewestFirst() {
	ctx := context.Background()
	now := time.Now()
	older := suite.addOrder(now.Add(-2*time.Hour), map[*product.Product]int{suite.widget: 1})
	newer := suite.addOrder(now, map[*product.Product]int{suite.widget: 2, suite.gadget: 1})

	query, err := queries.NewListOrdersQuery(0, order.Unknown)
	suite.Require().NoError(err)
	suite.Equal(queries.DefaultListOrdersLimit, query.Limit())

	summaries, err := queries.NewListOrdersQueryHandler(suite.database.DB).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(summaries, 2)
	suite.Equal(newer.ID(), summaries[0].ID)
	suite.Equal(older.ID(), summaries[1].ID)
	suite.Equal("Alice Johnson", summaries[0].CustomerName)
	suite.Equal(2, summaries[0].ItemCount)
	suite.Equal("39.97", summaries[0].Total.String())
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_LimitAndStatusFilter() {
	ctx := context.Background()
	now := time.Now()
	for i := range 3 {
		suite.addOrder(now.Add(time.Duration(i)*time.Minute), map[*product.Product]int{suite.widget: 1})
	}
	confirmed := suite.addOrder(now.Add(-time.Hour), map[*product.Product]int{suite.gadget: 1})
	suite.Require().NoError(
		confirmed.TransitionTo(order.Confirmed, order.NewTransitionTable(order.DefaultCancellationPolicy()), now),
	)
	suite.Require().NoError(suite.orders.UpdateStatus(ctx, confirmed))

	handler := queries.NewListOrdersQueryHandler(suite.database.DB)

	limited, err := queries.NewListOrdersQuery(2, order.Unknown)
	suite.Require().NoError(err)
	summaries, err := handler.Handle(ctx, limited)
	suite.Require().NoError(err)
	suite.Len(summaries, 2)

	onlyConfirmed, err := queries.NewListOrdersQuery(0, order.Confirmed)
	suite.Require().NoError(err)
	summaries, err = handler.Handle(ctx, onlyConfirmed)
	suite.Require().NoError(err)
	suite.Require().Len(summaries, 1)
	suite.Equal(confirmed.ID(), summaries[0].ID)
	suite.Equal(order.Confirmed, summaries[0].Status)
}

func (suite *QueriesIntegrationTestSuite) TestListProducts() {
	products, err := queries.NewListProductsQueryHandler(suite.database.DB).
		Handle(context.Background(), queries.NewListProductsQuery())
	suite.Require().NoError(err)
	suite.Require().Len(products, 2)
	suite.Equal("SKU-001", products[0].SKU)
	suite.Equal("9.99", products[0].Price.String())
	suite.Equal("Gadget", products[1].Name)
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test: requires docker")
	}
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
