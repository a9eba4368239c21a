package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/NascimentoLucas/GroceryAPI/config"
	"github.com/NascimentoLucas/GroceryAPI/routes"
	"github.com/NascimentoLucas/GroceryAPI/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := utils.InitLogger(cfg.LogLevel); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	config.InitDB(cfg)

	r := routes.SetupRouter(config.DB, cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	utils.Logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		utils.Logger.Fatal("server exited", zap.Error(err))
	}
}
