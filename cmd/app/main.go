package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"rehla/cmd/fx/account_fx"
	"rehla/cmd/fx/ai_fx"
	"rehla/cmd/fx/booking_fx"
	"rehla/cmd/fx/catalog_fx"
	"rehla/cmd/fx/db_fx"
	"rehla/cmd/fx/itinerary_fx"
	"rehla/cmd/fx/program_fx"
	"rehla/internal/api/controllers"
	"rehla/internal/infra"
	"rehla/pkg/middleware"
	"rehla/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		ai_fx.Module,
		catalog_fx.Module,
		itinerary_fx.Module,
		booking_fx.Module,
		program_fx.Module,
		account_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB, aiClient utils.AIClientInterface) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
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
			if err := aiClient.Close(); err != nil {
				log.Printf("Error closing AI client: %v", err)
			}
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	itineraryController *controllers.ItineraryController,
	placeController *controllers.PlaceController,
	attractionController *controllers.AttractionController,
	bookingController *controllers.BookingController,
	programController *controllers.ProgramController,
	accountController *controllers.AccountController,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	api := r.Group("/api")
	itineraryController.RegisterRoutes(api)
	placeController.RegisterRoutes(api)
	attractionController.RegisterRoutes(api)
	bookingController.RegisterRoutes(api)
	programController.RegisterRoutes(api)
	accountController.RegisterRoutes(api)

	return r
}
