package commands_test

import (
	"errors"
	"testing"

	"ordertracking/internal/core/application/usecases/commands"
	"ordertracking/internal/core/domain/model/customer"
	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/product"
	"ordertracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomerCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateCustomerCommand("  Alice Johnson ", "Alice@Corp.com", " +1 (555) 010-0200 ")
	require.NoError(t, err)
	assert.Equal(t, "Alice Johnson", cmd.Name())
	assert.Equal(t, "+1 (555) 010-0200", cmd.Phone())

	customers := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customers).Once(),
		customers.On("Add", ctx, mock.AnythingOfType("*customer.Customer")).
			Run(func(args mock.Arguments) {
				c := args.Get(1).(*customer.Customer)
				assert.Equal(t, "alice@corp.com", c.Email())
				assert.Equal(t, "+1 (555) 010-0200", c.Phone())
				_ = c.AssignID(mustID(t, 3))
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCustomerCommandHandler(factory)
	id, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, mustID(t, 3), id)
	uow.AssertExpectations(t)
	customers.AssertExpectations(t)
}

func TestCreateCustomerCommandHandler_Handle_InvalidEmail(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateCustomerCommand("Bob", "not-an-email", "")
	require.NoError(t, err)

	factory := new(MockCustomerUoWFactory)
	h := commands.NewCreateCustomerCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	factory.AssertNotCalled(t, "Create")
}

func TestNewCreateCustomerCommand_NameRequired(t *testing.T) {
	_, err := commands.NewCreateCustomerCommand("   ", "", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateProductCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateProductCommand("Widget", "sku-001", kernel.MustMoney("9.99"))
	require.NoError(t, err)

	products := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(products).Once(),
		products.On("Add", ctx, mock.AnythingOfType("*product.Product")).
			Run(func(args mock.Arguments) {
				p := args.Get(1).(*product.Product)
				assert.Equal(t, "SKU-001", p.SKU())
				_ = p.AssignID(mustID(t, 11))
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	id, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, mustID(t, 11), id)
	uow.AssertExpectations(t)
}

func TestCreateProductCommandHandler_Handle_DuplicateSKU(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateProductCommand("Widget", "SKU-001", kernel.MustMoney("9.99"))
	require.NoError(t, err)

	products := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(products).Once(),
		products.On("Add", ctx, mock.Anything).Return(errs.NewValueIsInvalidError("sku")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestNewCreateProductCommand_RequiredFields(t *testing.T) {
	_, err := commands.NewCreateProductCommand("", "", kernel.MustMoney("1.00"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "sku")
}

func TestUpdateProductPriceCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateProductPriceCommand(mustID(t, 10), kernel.MustMoney("12.50"))
	require.NoError(t, err)

	p := mustProduct(t, 10, "SKU-001", "9.99")
	products := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(products).Once(),
		products.On("Get", ctx, mustID(t, 10)).Return(p, nil).Once(),
		products.On("UpdatePrice", ctx, p).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateProductPriceCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, "12.50", p.Price().String())
	products.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteProductCommandHandler_Handle_Referenced(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteProductCommand(mustID(t, 10))
	require.NoError(t, err)

	products := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(products).Once(),
		products.On("Delete", ctx, mustID(t, 10)).
			Return(errs.NewReferentialIntegrityError("product", int64(10))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	assert.Equal(t, errs.KindReferentialIntegrity, errs.KindOf(err))
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

func TestDeleteProductCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteProductCommand(mustID(t, 10))
	require.NoError(t, err)

	products := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(products).Once(),
		products.On("Delete", ctx, mustID(t, 10)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteProductCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteOrderCommand(mustID(t, 5))
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Delete", ctx, mustID(t, 5)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}

func TestDeleteCommands_InvalidID(t *testing.T) {
	_, err := commands.NewDeleteOrderCommand(kernel.ID{})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewDeleteProductCommand(kernel.ID{})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewUpdateProductPriceCommand(kernel.ID{}, kernel.MustMoney("1.00"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestSeedDemoDataCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	customers := new(MockCustomerRepository)
	products := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customers).Once(),
		customers.On("AddIfAbsent", ctx, mock.Anything).Return(true, nil).Once(),
		customers.On("AddIfAbsent", ctx, mock.Anything).Return(false, nil).Once(),
		uow.On("ProductRepository").Return(products).Once(),
		products.On("AddIfAbsent", ctx, mock.Anything).Return(false, nil).Times(5),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSeedDemoDataCommandHandler(factory)
	result, err := h.Handle(ctx)
	require.NoError(t, err)
	assert.Equal(t, commands.SeedDemoDataResult{CustomersCreated: 1, ProductsCreated: 0}, result)
	customers.AssertExpectations(t)
	products.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSeedDemoDataCommandHandler_Handle_StoreError(t *testing.T) {
	ctx := t.Context()

	customers := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customers).Once(),
		customers.On("AddIfAbsent", ctx, mock.Anything).Return(false, errors.New("connection reset")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSeedDemoDataCommandHandler(factory)
	_, err := h.Handle(ctx)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", ctx)
}
