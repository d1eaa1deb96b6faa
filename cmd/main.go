package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"roam-backend/internal/domain/repository"
	"roam-backend/internal/domain/service"
	"roam-backend/internal/handler"
	"roam-backend/internal/infrastructure/database"
	fsinfra "roam-backend/internal/infrastructure/firestore"
	repoImpl "roam-backend/internal/repository"
	"roam-backend/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	ctx := context.Background()
	router := gin.Default()

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "roam-backend"})
	})

	// The crawl cache is optional; without a Firestore project the engine
	// still runs, generated crawls just aren't re-fetchable by id.
	var cacheRepo repository.CrawlCacheRepository
	if projectID := os.Getenv("GOOGLE_CLOUD_PROJECT"); projectID != "" {
		fsClient, err := fsinfra.NewFirestoreClient(ctx, projectID)
		if err != nil {
			log.Printf("crawl cache disabled: %v", err)
		} else {
			defer fsClient.Close()
			cacheRepo = repoImpl.NewFirestoreCrawlCacheRepository(fsClient)
		}
	} else {
		log.Println("GOOGLE_CLOUD_PROJECT not set, crawl cache disabled")
	}

	crawlHandler := handler.NewCrawlHandler(usecase.NewCrawlUseCase(service.NewRouteBuilder(), cacheRepo))
	router.POST("/generate-crawl", crawlHandler.PostGenerateCrawl)
	router.POST("/generate-theme", crawlHandler.PostGenerateTheme)
	router.GET("/themes", crawlHandler.GetThemes)
	router.GET("/crawls/:id", crawlHandler.GetCrawl)

	if os.Getenv("SUPABASE_URL") != "" && os.Getenv("SUPABASE_ANON_KEY") != "" {
		supabaseClient, err := database.NewSupabaseClient()
		if err != nil {
			log.Fatalf("failed to initialize supabase client: %v", err)
		}
		if err := supabaseClient.HealthCheck(); err != nil {
			log.Fatalf("supabase health check failed: %v", err)
		}

		favoritesHandler := handler.NewFavoritesHandler(
			usecase.NewFavoritesUseCase(repoImpl.NewSupabaseFavoritesRepository(supabaseClient)))
		router.POST("/favorites", favoritesHandler.PostFavorite)
		router.GET("/favorites", favoritesHandler.GetFavorites)
		router.DELETE("/favorites/:venueId", favoritesHandler.DeleteFavorite)

		savedRoutesHandler := handler.NewSavedRoutesHandler(
			usecase.NewSavedRoutesUseCase(repoImpl.NewSupabaseRoutesRepository(supabaseClient)))
		router.POST("/routes", savedRoutesHandler.PostRoute)
		router.GET("/routes", savedRoutesHandler.GetRoutes)
		router.GET("/routes/:slug", savedRoutesHandler.GetRoute)
		router.DELETE("/routes/:slug", savedRoutesHandler.DeleteRoute)
	} else {
		log.Println("SUPABASE_URL / SUPABASE_ANON_KEY not set, favorites and saved routes disabled")
	}

	if os.Getenv("SUPABASE_DB_PASSWORD") != "" {
		pgClient, err := database.NewPostgreSQLClientWithRetry(3, 2*time.Second)
		if err != nil {
			log.Printf("venue store disabled: %v", err)
		} else {
			defer pgClient.Close()
			venuesHandler := handler.NewVenuesHandler(
				usecase.NewVenuesUseCase(repoImpl.NewPostgresVenuesRepository(pgClient)))
			router.GET("/venues", venuesHandler.GetVenues)
		}
	} else {
		log.Println("SUPABASE_DB_PASSWORD not set, venue store disabled")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("roam-backend listening on :%s", port)
	log.Fatal(router.Run(":" + port))
}
