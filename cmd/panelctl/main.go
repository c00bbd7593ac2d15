// Command panelctl is the operator's terminal view of the order store.
//
// Usage:
//
//	panelctl orders [-search text] [-status Pending]
//	panelctl stats
//	panelctl catalog
//	panelctl seed -file catalog.yaml
//
// Connection settings come from the same environment (and .env) as the
// server.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"orderpanel/cmd"
	"orderpanel/internal/adapters/out/sqlstore"
	"orderpanel/internal/core/application/usecases/queries"

	"github.com/labstack/gommon/log"
	"github.com/olekukonko/tablewriter"
	"gorm.io/gorm"
)

const usage = `usage: panelctl <command> [flags]

commands:
  orders   list orders, newest first (-search, -status)
  stats    order totals
  catalog  catalog items by category
  seed     insert catalog items from a YAML file (-file)
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	gormDB, err := sqlstore.Open(ctx, config.Database())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = run(ctx, gormDB, os.Args[1], os.Args[2:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, db *gorm.DB, command string, args []string, out io.Writer) error {
	switch command {
	case "orders":
		return listOrders(ctx, db, args, out)
	case "stats":
		return showStats(ctx, db, out)
	case "catalog":
		return listCatalog(ctx, db, out)
	case "seed":
		return seed(ctx, db, args, out)
	default:
		return fmt.Errorf("unknown command %q\n\n%s", command, usage)
	}
}

func listOrders(ctx context.Context, db *gorm.DB, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("orders", flag.ContinueOnError)
	search := fs.String("search", "", "substring of customer name, Roblox username or order id")
	status := fs.String("status", "", "exact status (Pending, Processing, Done, Cancelled)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	query, err := queries.NewListOrdersQuery(*search, *status)
	if err != nil {
		return err
	}
	views, err := queries.NewListOrdersQueryHandler(db).Handle(ctx, query)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(out)
	table.Header("ID", "Customer", "Roblox", "Item", "Price", "Payment", "Status", "Created")
	for _, v := range views {
		if err = table.Append([]string{
			strconv.FormatInt(v.ID, 10),
			v.CustomerName,
			v.RobloxUser,
			v.ItemName,
			strconv.FormatInt(v.Price, 10),
			string(v.PaymentMethod),
			string(v.Status),
			v.CreatedAt.Format(time.DateTime),
		}); err != nil {
			return err
		}
	}
	return table.Render()
}

func showStats(ctx context.Context, db *gorm.DB, out io.Writer) error {
	stats, err := queries.NewGetOrderStatsQueryHandler(db).Handle(ctx, queries.NewGetOrderStatsQuery())
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(out)
	table.Header("Total", "Revenue", "Active")
	if err = table.Append([]string{
		strconv.FormatInt(stats.Total, 10),
		strconv.FormatInt(stats.Revenue, 10),
		strconv.FormatInt(stats.Active, 10),
	}); err != nil {
		return err
	}
	return table.Render()
}

func listCatalog(ctx context.Context, db *gorm.DB, out io.Writer) error {
	items, err := queries.NewListCatalogItemsQueryHandler(db).Handle(ctx, queries.NewListCatalogItemsQuery())
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(out)
	table.Header("ID", "Category", "Name", "Price", "Description")
	for _, group := range queries.GroupByCategory(items) {
		for _, item := range group.Items {
			if err = table.Append([]string{
				strconv.FormatInt(item.ID, 10),
				string(group.Category),
				item.Name,
				strconv.FormatInt(item.Price, 10),
				item.Description,
			}); err != nil {
				return err
			}
		}
	}
	return table.Render()
}

func seed(ctx context.Context, db *gorm.DB, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	file := fs.String("file", "", "YAML file with an items list")
	onlyIfEmpty := fs.Bool("only-if-empty", false, "skip when the catalog already has items")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("seed: -file is required")
	}

	f, err := os.Open(*file)
	if err != nil {
		return err
	}
	defer f.Close()

	items, err := ReadSeedFile(f)
	if err != nil {
		return fmt.Errorf("%s: %w", *file, err)
	}

	n, err := sqlstore.SeedCatalog(ctx, db, items, *onlyIfEmpty)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "inserted %d catalog items\n", n)
	return err
}
