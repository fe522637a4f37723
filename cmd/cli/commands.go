package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"ordertracking/internal/adapters/out/postgres"
	"ordertracking/internal/core/application/usecases/commands"
	"ordertracking/internal/core/application/usecases/queries"
	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/pkg/errs"
)

const timeLayout = "2006-01-02 15:04"

func runMigrate(_ context.Context, a *cli, args []string) error {
	fs := a.flags()
	down := fs.Bool("down", false, "revert all migrations instead of applying them")
	if err := a.parse(fs, args); err != nil {
		return err
	}

	if *down {
		if err := postgres.RollbackMigrations(a.config.DSN()); err != nil {
			return errs.NewStoreCorruptionError("roll back migrations", err)
		}
		a.printf("Schema reverted.\n")
		return nil
	}

	if err := postgres.RunMigrations(a.config.DSN()); err != nil {
		return errs.NewStoreCorruptionError("apply migrations", err)
	}
	a.printf("Schema is up to date.\n")
	return nil
}

func runSeed(ctx context.Context, a *cli, args []string) error {
	if err := a.parse(a.flags(), args); err != nil {
		return err
	}
	root, err := a.app()
	if err != nil {
		return err
	}

	result, err := root.CreateSeedDemoDataCommandHandler().Handle(ctx)
	if err != nil {
		return err
	}

	a.printf("Seeded %d customers and %d products.\n", result.CustomersCreated, result.ProductsCreated)
	return nil
}

func runAddCustomer(ctx context.Context, a *cli, args []string) error {
	fs := a.flags()
	name := fs.String("name", "", "customer name")
	email := fs.String("email", "", "customer email (optional)")
	phone := fs.String("phone", "", "customer phone (optional)")
	if err := a.parse(fs, args); err != nil {
		return err
	}

	cmd, err := commands.NewCreateCustomerCommand(*name, *email, *phone)
	if err != nil {
		return err
	}
	root, err := a.app()
	if err != nil {
		return err
	}

	id, err := root.CreateCreateCustomerCommandHandler().Handle(ctx, cmd)
	if err != nil {
		return err
	}

	a.printf("Created customer %s.\n", id)
	return nil
}

func runAddProduct(ctx context.Context, a *cli, args []string) error {
	fs := a.flags()
	name := fs.String("name", "", "product name")
	sku := fs.String("sku", "", "unique stock keeping unit")
	rawPrice := fs.String("price", "", "unit price, e.g. 9.99")
	if err := a.parse(fs, args); err != nil {
		return err
	}

	price, err := kernel.MoneyFromString(*rawPrice)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCreateProductCommand(*name, *sku, price)
	if err != nil {
		return err
	}
	root, err := a.app()
	if err != nil {
		return err
	}

	id, err := root.CreateCreateProductCommandHandler().Handle(ctx, cmd)
	if err != nil {
		return err
	}

	a.printf("Created product %s.\n", id)
	return nil
}

func runListProducts(ctx context.Context, a *cli, args []string) error {
	if err := a.parse(a.flags(), args); err != nil {
		return err
	}
	root, err := a.app()
	if err != nil {
		return err
	}

	products, err := root.CreateListProductsQueryHandler().Handle(ctx, queries.NewListProductsQuery())
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tSKU\tNAME\tPRICE")
	for _, p := range products {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.SKU, p.Name, p.Price.Display())
	}
	return tw.Flush()
}

func runSetPrice(ctx context.Context, a *cli, args []string) error {
	fs := a.flags()
	rawID := fs.String("product", "", "product id")
	rawPrice := fs.String("price", "", "new unit price")
	if err := a.parse(fs, args); err != nil {
		return err
	}

	id, err := idFlag("product", *rawID)
	if err != nil {
		return err
	}
	price, err := kernel.MoneyFromString(*rawPrice)
	if err != nil {
		return err
	}
	cmd, err := commands.NewUpdateProductPriceCommand(id, price)
	if err != nil {
		return err
	}
	root, err := a.app()
	if err != nil {
		return err
	}

	if err = root.CreateUpdateProductPriceCommandHandler().Handle(ctx, cmd); err != nil {
		return err
	}

	a.printf("Product %s now costs %s.\n", id, price.Display())
	return nil
}

func runDeleteProduct(ctx context.Context, a *cli, args []string) error {
	fs := a.flags()
	rawID := fs.String("product", "", "product id")
	if err := a.parse(fs, args); err != nil {
		return err
	}

	id, err := idFlag("product", *rawID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteProductCommand(id)
	if err != nil {
		return err
	}
	root, err := a.app()
	if err != nil {
		return err
	}

	if err = root.CreateDeleteProductCommandHandler().Handle(ctx, cmd); err != nil {
		return err
	}

	a.printf("Deleted product %s.\n", id)
	return nil
}

func runCreateOrder(ctx context.Context, a *cli, args []string) error {
	fs := a.flags()
	rawCustomer := fs.String("customer", "", "customer id")
	var items itemList
	fs.Var(&items, "item", "PRODUCT:QTY, repeatable")
	if err := a.parse(fs, args); err != nil {
		return err
	}

	customerID, err := idFlag("customer", *rawCustomer)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCreateOrderCommand(customerID, items)
	if err != nil {
		return err
	}
	root, err := a.app()
	if err != nil {
		return err
	}

	id, err := root.CreateCreateOrderCommandHandler().Handle(ctx, cmd)
	if err != nil {
		return err
	}

	a.announceOrder(ctx, id, a.showOrder)
	return nil
}

// announceOrder prints the id of a committed order before its details. A failed
// read is only a warning: the order exists and must not be created again.
func (a *cli) announceOrder(ctx context.Context, id kernel.ID, show func(context.Context, kernel.ID) error) {
	a.printf("Created order %s.\n\n", id)

	if err := show(ctx, id); err != nil {
		a.logger.WarnContext(ctx, "Created order could not be displayed", "order_id", id.String(), "error", err)
		_, _ = fmt.Fprintf(a.stderr, "warning: order %s was created but could not be displayed: %v\n", id, err)
	}
}

func runListOrders(ctx context.Context, a *cli, args []string) error {
	fs := a.flags()
	limit := fs.Int("limit", queries.DefaultListOrdersLimit, "maximum number of orders")
	rawStatus := fs.String("status", "", "only orders in this status")
	if err := a.parse(fs, args); err != nil {
		return err
	}

	status := order.Unknown
	if *rawStatus != "" {
		parsed, err := order.ParseStatus(*rawStatus)
		if err != nil {
			return err
		}
		status = parsed
	}
	query, err := queries.NewListOrdersQuery(*limit, status)
	if err != nil {
		return err
	}
	root, err := a.app()
	if err != nil {
		return err
	}

	summaries, err := root.CreateListOrdersQueryHandler().Handle(ctx, query)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tCUSTOMER\tSTATUS\tITEMS\tTOTAL\tCREATED")
	for _, s := range summaries {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
			s.ID, s.CustomerName, s.Status, s.ItemCount, s.Total.Display(), s.CreatedAt.Local().Format(timeLayout))
	}
	return tw.Flush()
}

func runShowOrder(ctx context.Context, a *cli, args []string) error {
	fs := a.flags()
	rawID := fs.String("order", "", "order id")
	if err := a.parse(fs, args); err != nil {
		return err
	}

	id, err := idFlag("order", *rawID)
	if err != nil {
		return err
	}
	return a.showOrder(ctx, id)
}

func (a *cli) showOrder(ctx context.Context, id kernel.ID) error {
	query, err := queries.NewGetOrderDetailsQuery(id)
	if err != nil {
		return err
	}
	root, err := a.app()
	if err != nil {
		return err
	}

	details, err := root.CreateGetOrderDetailsQueryHandler().Handle(ctx, query)
	if err != nil {
		return err
	}

	a.printf("Order %s for %s\n", details.ID, details.CustomerName)
	a.printf("Status:  %s\n", details.Status)
	a.printf("Created: %s\n\n", details.CreatedAt.Local().Format(timeLayout))

	tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	_, _ = fmt.Fprintln(tw, "PRODUCT\tSKU\tQTY\tUNIT PRICE\tLINE TOTAL\t")
	for _, item := range details.Items {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t\n",
			item.ProductName, item.SKU, item.Quantity, item.UnitPrice.Display(), item.LineTotal.Display())
	}
	_, _ = fmt.Fprintf(tw, "\t\t\tTOTAL\t%s\t\n", details.Total.Display())
	return tw.Flush()
}

func runTransition(ctx context.Context, a *cli, args []string) error {
	fs := a.flags()
	rawID := fs.String("order", "", "order id")
	rawStatus := fs.String("status", "", "target status: confirmed, shipped or cancelled")
	if err := a.parse(fs, args); err != nil {
		return err
	}

	id, err := idFlag("order", *rawID)
	if err != nil {
		return err
	}
	target, err := order.ParseStatus(*rawStatus)
	if err != nil {
		return err
	}
	cmd, err := commands.NewTransitionOrderStatusCommand(id, target)
	if err != nil {
		return err
	}
	root, err := a.app()
	if err != nil {
		return err
	}

	result, err := root.CreateTransitionOrderStatusCommandHandler().Handle(ctx, cmd)
	if err != nil {
		return err
	}

	a.printf("Order %s: %s -> %s\n", result.OrderID, result.From, result.To)
	return nil
}

func runDeleteOrder(ctx context.Context, a *cli, args []string) error {
	fs := a.flags()
	rawID := fs.String("order", "", "order id")
	if err := a.parse(fs, args); err != nil {
		return err
	}

	id, err := idFlag("order", *rawID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return err
	}
	root, err := a.app()
	if err != nil {
		return err
	}

	if err = root.CreateDeleteOrderCommandHandler().Handle(ctx, cmd); err != nil {
		return err
	}

	a.printf("Deleted order %s.\n", id)
	return nil
}

func runExpirePending(ctx context.Context, a *cli, args []string) error {
	fs := a.flags()
	olderThan := fs.Duration("older-than", 0, "cancel pending orders created longer ago than this, e.g. 24h")
	if err := a.parse(fs, args); err != nil {
		return err
	}

	if *olderThan <= 0 {
		return errs.NewValueIsRequiredError("older-than")
	}
	cmd, err := commands.NewExpirePendingOrdersCommand(time.Now().Add(-*olderThan), commands.DefaultExpireBatchSize)
	if err != nil {
		return err
	}
	root, err := a.app()
	if err != nil {
		return err
	}

	result, err := root.CreateExpirePendingOrdersCommandHandler().Handle(ctx, cmd)
	if err != nil {
		return err
	}

	a.printf("Cancelled %d pending orders, skipped %d.\n", len(result.Cancelled), result.Skipped)
	return nil
}
