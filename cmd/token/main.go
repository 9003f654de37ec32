// Command token issues a bearer token for an existing account. Accounts are
// provisioned by an operator; there is no login endpoint.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"spotlight-ledger/internal/domain/account"
	"spotlight-ledger/internal/pkg/config"
	"spotlight-ledger/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	accountFlag := flag.String("account", "", "account id (uuid)")
	roleFlag := flag.String("role", account.RoleUser.String(), "user or admin")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var cfg config.JWTConfig
	if err := envconfig.Process("", &cfg); err != nil {
		logger.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}

	accountID, err := uuid.Parse(*accountFlag)
	if err != nil {
		logger.Error("-account にはUUIDを指定してください", "value", *accountFlag)
		os.Exit(2)
	}
	role, err := account.NewRole(*roleFlag)
	if err != nil {
		logger.Error("-role が不正です", "value", *roleFlag, "error", err)
		os.Exit(2)
	}

	token, err := jwt.NewService(cfg.Secret, cfg.Duration).GenerateToken(accountID, role)
	if err != nil {
		logger.Error("トークンの発行に失敗しました", "error", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
