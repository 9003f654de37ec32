// Command migrate applies migrations/*.sql to the configured database with Atlas.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"spotlight-ledger/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
)

type migrateConfig struct {
	DB       config.DBConfig
	DevURL   string `envconfig:"MIGRATE_DEV_URL" default:"docker://postgres/16/dev"`
	Dir      string `envconfig:"MIGRATE_DIR" default:"file://migrations"`
	AtlasBin string `envconfig:"ATLAS_BIN" default:"atlas"`
}

func main() {
	dryRun := flag.Bool("dry-run", false, "print the planned changes without applying them")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	var cfg migrateConfig
	if err := envconfig.Process("", &cfg); err != nil {
		logger.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", cfg.AtlasBin)
	if err != nil {
		logger.Error("atlasクライアントの初期化に失敗しました", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         cfg.DB.BuildDSN(),
		To:          cfg.Dir,
		DevURL:      cfg.DevURL,
		DryRun:      *dryRun,
		AutoApprove: !*dryRun,
	})
	if err != nil {
		logger.Error("マイグレーションに失敗しました", "error", err)
		os.Exit(1)
	}

	logger.Info("マイグレーションが完了しました",
		"applied", len(res.Changes.Applied),
		"pending", len(res.Changes.Pending),
		"dry_run", *dryRun)
}
