package main

import (
	"NatureNet/config"
	"NatureNet/internal/importer"
	"NatureNet/pkg/database"
	"NatureNet/pkg/log"
	"NatureNet/pkg/server"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "NatureNet content api",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   fmt.Sprintf("configs/config.%s.yaml", env),
				Usage:   "config file path",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					cfg, err := loadConfig(ctx)
					if err != nil {
						return err
					}
					appProvider, err := InitServer(cfg)
					if err != nil {
						return err
					}
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update tables",
				Action: func(ctx *cli.Context) error {
					cfg, err := loadConfig(ctx)
					if err != nil {
						return err
					}
					db, err := database.NewDB(cfg)
					if err != nil {
						return err
					}
					return database.Migrate(db)
				},
			},
			{
				Name:  "import",
				Usage: "bulk import sites, accounts, contexts, notes and feedbacks from an xlsx workbook",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "xlsx workbook, defaults to importer.file"},
					&cli.BoolFlag{Name: "deployment", Usage: "only sites and contexts plus a default account"},
					&cli.BoolFlag{Name: "reset", Usage: "drop and re-create tables first"},
				},
				Action: runImport,
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("api-server failed", zap.Error(err))
	}
}

func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(ctx.String("config"))
	if err != nil {
		return nil, err
	}
	log.SetDebug(cfg.Debug())
	return cfg, nil
}

func runImport(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	file := cfg.Importer.File
	if ctx.IsSet("file") {
		file = ctx.String("file")
	}
	if file == "" {
		return fmt.Errorf("no workbook given, use --file or importer.file")
	}
	deployment := cfg.Importer.Deployment || ctx.Bool("deployment")
	reset := cfg.Importer.Reset || ctx.Bool("reset")

	db, err := database.NewDB(cfg)
	if err != nil {
		return err
	}
	if reset {
		err = database.Reset(db)
	} else {
		err = database.Migrate(db)
	}
	if err != nil {
		return err
	}

	im := &importer.Importer{DB: db, Deployment: deployment}
	stats, err := im.RunFile(ctx.Context, file)
	if err != nil {
		return err
	}
	log.L.Info("workbook imported", zap.String("file", file), zap.Any("stats", stats))
	return nil
}
