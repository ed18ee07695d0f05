package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/woodora/woodora-api/controllers"
	"github.com/woodora/woodora-api/events"
	"github.com/woodora/woodora-api/initializers"
	"github.com/woodora/woodora-api/middlewares"
	"github.com/woodora/woodora-api/routes"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
}

func main() {
	bus, err := events.NewBus(events.LoadConfig())
	if err != nil {
		log.Println("RabbitMQ unavailable, order events disabled:", err)
		bus = nil
	} else {
		if err := bus.SetupQueues(); err != nil {
			log.Fatalf("Failed to setup RabbitMQ queues: %v", err)
		}
		go bus.StartOrderConsumer()
	}
	defer bus.Close()
	controllers.SetEventBus(bus)

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4200", "https://www.woodora.store"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	server.Use(middlewares.PrometheusMiddleware())
	server.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server)
	routes.CatalogRoutes(server)
	routes.CartRoutes(server)
	routes.CheckoutRoutes(server)
	routes.OrderRoutes(server)
	routes.MessageRoutes(server)

	server.Run()
}
