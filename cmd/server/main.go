package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"routing-demo/internal/config"
	"routing-demo/internal/dataset"
	"routing-demo/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	gin.SetMode(cfg.GinMode)
	data := dataset.NewWithOptions(dataset.Options{QueryDelay: cfg.QueryDelay})

	router := server.NewRouter(server.Deps{Config: cfg, Data: data})
	log.Printf("listening on %s", fmt.Sprintf(":%d", cfg.Port))
	log.Fatal(server.Run(cfg, router))
}
