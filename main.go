package main

import (
	"github.com/shoply/server/config"
	"github.com/shoply/server/routes"
	"github.com/shoply/server/store"
	"github.com/shoply/server/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	// All state is held in process memory; a restart starts from scratch.
	users := store.NewUserStore()
	posts := store.NewPostStore()

	r := routes.SetupRouter(users, posts)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
