package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/minutesfolio/internal/admin"
	"github.com/dmitrijs2005/minutesfolio/internal/flagx"
	"github.com/dmitrijs2005/minutesfolio/internal/server/config"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/repomanager"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	args := flagx.Positional(os.Args[1:])
	if len(args) == 0 || args[0] == "help" {
		_ = admin.NewApp(cfg, nil, nil, os.Stdin, os.Stdout).Run(ctx, []string{"help"})
		return
	}

	db, err := repomanager.OpenDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer db.Close()

	app := admin.NewApp(cfg, db, repomanager.NewPostgresRepositoryManager(), os.Stdin, os.Stdout)
	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		db.Close()
		os.Exit(1)
	}

}
