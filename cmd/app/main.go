package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/NourAlnujoom/Asfar-tourism-assistant/cmd/fx/chatfx"
	"github.com/NourAlnujoom/Asfar-tourism-assistant/cmd/fx/dbfx"
	"github.com/NourAlnujoom/Asfar-tourism-assistant/cmd/fx/sitesfx"
	"github.com/NourAlnujoom/Asfar-tourism-assistant/internal/api/controllers"
	"github.com/NourAlnujoom/Asfar-tourism-assistant/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		dbfx.Module,
		sitesfx.Module,
		chatfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "5000"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	chatController *controllers.ChatController,
	sitesController *controllers.SitesController,
	pagesController *controllers.PagesController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.LoadHTMLGlob("web/templates/*.html")

	RegisterRoutes(r, chatController, sitesController, pagesController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	chatController *controllers.ChatController,
	sitesController *controllers.SitesController,
	pagesController *controllers.PagesController) {

	r.GET("/", pagesController.Index)
	r.GET("/chatbot", pagesController.Chatbot)
	r.GET("/audio-guide", pagesController.AudioGuide)
	r.GET("/help", pagesController.Help)

	r.POST("/chat", chatController.Chat)

	api := r.Group("/api")
	api.GET("/sites", sitesController.GetSites)
	api.POST("/sites", sitesController.AddSite)
	api.PUT("/sites/:id", sitesController.UpdateSite)
	api.DELETE("/sites/:id", sitesController.DeleteSite)
	api.POST("/sensor-readings", sitesController.AddSensorReading)
}
