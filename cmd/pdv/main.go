package main

import (
	"fmt"
	"os"

	"nextpdv/internal/config"
	"nextpdv/internal/logger"
	"nextpdv/internal/pdvclient"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

type env struct {
	cfg    *config.Config
	log    *zap.Logger
	client *pdvclient.Client
}

func main() {
	e := &env{}

	app := &cli.App{
		Name:  "pdv",
		Usage: "cliente de terminal do PDV",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "api", Usage: "URL do backend (padrão PDV_API_URL)"},
			&cli.StringFlag{Name: "token", Usage: "token JWT quando a autenticação está habilitada", EnvVars: []string{"PDV_API_TOKEN"}},
		},
		Before: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, err := logger.New(false, "warn")
			if err != nil {
				return err
			}
			baseURL := cfg.APIURL
			if v := c.String("api"); v != "" {
				baseURL = v
			}
			e.cfg = cfg
			e.log = log
			e.client = pdvclient.New(baseURL,
				pdvclient.WithTimeout(cfg.APITimeout),
				pdvclient.WithToken(c.String("token")),
			)
			return nil
		},
		After: func(*cli.Context) error {
			if e.log != nil {
				_ = e.log.Sync()
			}
			return nil
		},
		Commands: []*cli.Command{
			dashboardCommand(e),
			criticalCommand(e),
			sellCommand(e),
			ordersCommand(e),
			importStockCommand(e),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "erro:", err)
		os.Exit(1)
	}
}
