package main

import (
	"log"

	"github.com/SillyCatLover68/NourishNine-Web-App/config"
	"github.com/SillyCatLover68/NourishNine-Web-App/logger"
	"github.com/SillyCatLover68/NourishNine-Web-App/routes"
	"github.com/SillyCatLover68/NourishNine-Web-App/services"
)

func main() {
	config.LoadEnv()

	lg, err := logger.New(config.GetEnv("APP_ENV", "dev"))
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer lg.Sync()

	config.InitDB()

	hub := services.NewProgressHub()
	r := routes.SetupRouter(lg, hub)

	addr := ":" + config.GetEnv("PORT", "4000")
	lg.Info("gateway listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		lg.Fatal("server exited", "error", err)
	}
}
