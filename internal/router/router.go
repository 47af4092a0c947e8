package router

import (
	"github.com/gin-gonic/gin"
	"github.com/orghandbook/orghandbook-api/internal/handlers"
	"github.com/orghandbook/orghandbook-api/internal/middleware"
	"github.com/orghandbook/orghandbook-api/internal/repository"
	"gorm.io/gorm"
)

// New builds the full route surface: the unauthenticated health endpoint
// and the /api/v1 group guarded by the static API key.
func New(db *gorm.DB, apiKeyHeader, apiKey string) *gin.Engine {
	orgHandler := handlers.NewOrganizationHandler(repository.NewOrganizationRepository(db))
	buildingHandler := handlers.NewBuildingHandler(repository.NewBuildingRepository(db))
	activityHandler := handlers.NewActivityHandler(repository.NewActivityRepository(db))

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/health", handlers.Health)

	api := r.Group("/api/v1")
	api.Use(middleware.RequireAPIKey(apiKeyHeader, apiKey))
	{
		orgs := api.Group("/organizations")
		{
			orgs.GET("/", orgHandler.List)
			orgs.POST("/", orgHandler.Create)
			orgs.GET("/:id", orgHandler.Get)
			orgs.PUT("/:id", orgHandler.Update)
			orgs.DELETE("/:id", orgHandler.Delete)
			orgs.GET("/building/:building_id", orgHandler.ByBuilding)
			orgs.GET("/activity/:activity_id", orgHandler.ByActivity)
			orgs.GET("/search/name", orgHandler.SearchByName)
			orgs.GET("/search/radius", orgHandler.SearchRadius)
			orgs.GET("/search/area", orgHandler.SearchArea)
		}

		buildings := api.Group("/building")
		{
			buildings.GET("/", buildingHandler.List)
			buildings.POST("/", buildingHandler.Create)
			buildings.GET("/:id", buildingHandler.Get)
			buildings.PUT("/:id", buildingHandler.Update)
			buildings.DELETE("/:id", buildingHandler.Delete)
		}

		activities := api.Group("/activity")
		{
			activities.GET("/", activityHandler.List)
			activities.POST("/", activityHandler.Create)
			activities.GET("/tree", activityHandler.Tree)
			activities.GET("/tree/:parent_id", activityHandler.Tree)
			activities.GET("/:id", activityHandler.Get)
			activities.PUT("/:id", activityHandler.Update)
			activities.DELETE("/:id", activityHandler.Delete)
		}
	}

	return r
}
