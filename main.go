package main

import (
	"fmt"
	"log"

	"github.com/CarlosTarrino98/Gestor-de-negocio/configs"
	"github.com/CarlosTarrino98/Gestor-de-negocio/routes"
	"github.com/CarlosTarrino98/Gestor-de-negocio/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		log.Fatalf("db connection failed: %v", err)
	}
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// Pizarra de pedidos en tiempo real
	board := ws.NewBoardHub()
	go board.Run()

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, cfg, board)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("servidor escuchando en", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
