// Command orders-report prints the most recent ledger entries, newest last.
// Handy for checking what the assistant actually recorded.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/novalabs/nova-agent-backend/internal/orders"
	"github.com/novalabs/nova-agent-backend/pkg/config"
	"github.com/novalabs/nova-agent-backend/pkg/logger"
)

func main() {
	limit := flag.Int("limit", 0, "number of orders to print (0 = all)")
	flag.Parse()

	logg := logger.New(logger.Options{ServiceName: "orders-report"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	ledger, err := orders.NewLedger(cfg.Storage.OrdersPath, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to open order ledger", err)
		os.Exit(1)
	}

	all, err := ledger.Load(context.Background())
	if err != nil {
		logg.Error(context.Background(), "failed to read order ledger", err)
		os.Exit(1)
	}
	if *limit > 0 && len(all) > *limit {
		all = all[len(all)-*limit:]
	}

	if len(all) == 0 {
		fmt.Println("no orders recorded")
		return
	}
	for _, order := range all {
		fmt.Printf("%s  %-10s %8s %s  %s (%d items)\n",
			order.Timestamp, order.Customer, order.Total, order.Currency, order.OrderID, len(order.Items))
	}
}
