package main

import (
	"fmt"
	"strings"

	"github.com/parcel-desk/internal/console"
	"github.com/parcel-desk/internal/constants"
	"github.com/parcel-desk/internal/provider"

	"github.com/urfave/cli/v2"
)

func (d *desk) commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "list",
			Usage: "print one page of deliveries",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "sort",
					Usage: "sort key: date, name or status (default: storage order)",
				},
				&cli.IntFlag{
					Name:  "page",
					Usage: "page number starting at 1",
					Value: 1,
				},
			},
			Action: d.withContainer(listAction),
		},
		{
			Name:   "count",
			Usage:  "print the number of deliveries",
			Action: d.withContainer(countAction),
		},
		{
			Name:      "search",
			Usage:     "case-insensitive search over every field",
			ArgsUsage: "TERM",
			Action:    d.withContainer(searchAction),
		},
		{
			Name:      "show",
			Usage:     "print the receipt of an order",
			ArgsUsage: "ORDER_ID",
			Action:    d.withContainer(showAction),
		},
		{
			Name:      "delete",
			Usage:     "delete every delivery with the order id",
			ArgsUsage: "ORDER_ID",
			Action:    d.withContainer(deleteAction),
		},
		{
			Name:   "export",
			Usage:  "copy the table into the snapshot database",
			Action: d.withContainer(exportAction),
		},
	}
}

// withContainer 为子命令构建依赖并统一转换错误提示
func (d *desk) withContainer(action func(*cli.Context, *provider.Container) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		container := provider.NewContainer(d.cfg)
		defer container.Close()

		if err := action(c, container); err != nil {
			return cli.Exit(console.ErrorMessage(err), 1)
		}
		return nil
	}
}

func requireArg(c *cli.Context, name string) (string, error) {
	value := strings.TrimSpace(c.Args().First())
	if value == "" {
		return "", fmt.Errorf("missing %s argument", name)
	}
	return value, nil
}

func listAction(c *cli.Context, container *provider.Container) error {
	sortKey := strings.ToLower(strings.TrimSpace(c.String("sort")))
	switch sortKey {
	case constants.SortByNone, constants.SortByDate, constants.SortByName, constants.SortByStatus:
	default:
		return fmt.Errorf("unknown sort key %q", sortKey)
	}

	svc := container.DeliveryService
	result, err := svc.List(sortKey)
	if err != nil {
		return err
	}
	out := c.App.Writer
	console.WarnSkipped(out, result.Skipped)
	if len(result.Deliveries) == 0 {
		fmt.Fprintln(out, "No data available.")
		return nil
	}
	page := svc.Page(result.Deliveries, c.Int("page"))
	fmt.Fprintf(out, "--- All Delivery Records (Page %d/%d) ---\n", page.Page, page.TotalPages)
	rows := make([][]string, 0, len(page.Items))
	for _, delivery := range page.Items {
		rows = append(rows, delivery.ToRow())
	}
	console.RenderTable(out, constants.TableHeader, rows)
	return nil
}

func countAction(c *cli.Context, container *provider.Container) error {
	result, err := container.DeliveryService.Tally()
	if err != nil {
		return err
	}
	console.WarnSkipped(c.App.Writer, result.Skipped)
	fmt.Fprintf(c.App.Writer, "Total Deliveries: %d\n", result.Total)
	return nil
}

func searchAction(c *cli.Context, container *provider.Container) error {
	term, err := requireArg(c, "TERM")
	if err != nil {
		return err
	}
	result, err := container.DeliveryService.Search(term)
	if err != nil {
		return err
	}
	console.WarnSkipped(c.App.Writer, result.Skipped)
	if len(result.Matches) == 0 {
		fmt.Fprintln(c.App.Writer, "No matching records found.")
		return nil
	}
	rows := make([][]string, 0, len(result.Matches))
	for _, delivery := range result.Matches {
		rows = append(rows, delivery.ToRow())
	}
	console.RenderTable(c.App.Writer, constants.TableHeader, rows)
	return nil
}

func showAction(c *cli.Context, container *provider.Container) error {
	orderID, err := requireArg(c, "ORDER_ID")
	if err != nil {
		return err
	}
	receipt, err := container.DeliveryService.Receipt(orderID)
	if receipt != nil {
		console.WarnSkipped(c.App.Writer, receipt.Skipped)
	}
	if err != nil {
		return err
	}
	console.RenderReceipt(c.App.Writer, receipt.Lines)
	return nil
}

func deleteAction(c *cli.Context, container *provider.Container) error {
	orderID, err := requireArg(c, "ORDER_ID")
	if err != nil {
		return err
	}
	result, err := container.DeliveryService.Delete(orderID)
	if result != nil {
		console.WarnSkipped(c.App.Writer, result.Skipped)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Record with Order ID %s deleted successfully.\n", orderID)
	return nil
}

func exportAction(c *cli.Context, container *provider.Container) error {
	exported, err := container.SnapshotService.Export(c.Context)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Exported %d deliveries to the %s snapshot database.\n", exported, container.Config.Snapshot.Driver)
	return nil
}
