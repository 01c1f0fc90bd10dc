package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"myovai/config"
	"myovai/controllers"
	"myovai/helpers"
	"myovai/push"
	"myovai/routes"
	"myovai/scheduler"
	"myovai/services"
)

func main() {

	log.Println("Starting application...")

	cfg := config.Load()
	config.ConnectDB(cfg)
	helpers.SetJWTKey(cfg.JWTSecret)

	controllers.InitCycleSessions(
		services.NewSessionManager(services.NewMongoCycleRepository()),
	)

	// Daily reminder job
	sched := &scheduler.Service{Sender: push.NewClient(cfg.PushEndpoint)}
	c := sched.Start()
	defer c.Stop()

	r := gin.Default()
	api := r.Group("/api")
	routes.SetupRoutes(api)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
