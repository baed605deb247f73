package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/acadops/courseslot-backend/internal/config"
	"github.com/acadops/courseslot-backend/internal/handler"
	"github.com/acadops/courseslot-backend/internal/middleware"
	"github.com/acadops/courseslot-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Catalog    *handler.CatalogHandler
	Import     *handler.ImportHandler
	Allocation *handler.AllocationHandler
	Entry      *handler.EntryHandler
	Deletion   *handler.DeletionHandler
}

// SetupRouter configures the Gin engine with all routes. The route paths are
// the wire format the admin UI has always used, flat legacy naming included.
func SetupRouter(handlers *Handlers, cfg *config.Config, limiter *middleware.RateLimiter) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// ─── Catalog reads ─────────────────────────────────────────────────
	router.GET("/courses", handlers.Catalog.GetCourses)
	router.GET("/faculties", handlers.Catalog.GetFaculties)
	router.GET("/full-table", handlers.Catalog.GetFullTable)
	router.GET("/allocated-courses", handlers.Catalog.GetAllocatedCourses)
	router.GET("/faculty", handlers.Catalog.GetFaculty)
	router.GET("/each-course-allocation", handlers.Catalog.GetEachCourseAllocation)

	// ─── Imports and data entry ────────────────────────────────────────
	api := router.Group("/api")
	{
		// Bulk imports are the heaviest writes, so only they sit behind
		// the rate limiter.
		imports := api.Group("")
		if limiter != nil {
			imports.Use(limiter.Middleware())
		}
		imports.POST("/process-csv", handlers.Import.ProcessCourseCSV)
		imports.POST("/process-Facultycsv", handlers.Import.ProcessFacultyCSV)
		api.POST("/singleDataEntryCourse", handlers.Entry.CreateCourse)
		api.POST("/singleDataEntryFaculty", handlers.Entry.SaveFaculty)
		api.POST("/allocate-slot", handlers.Allocation.AllocateSlot)
	}

	// ─── Reversal and deletion ─────────────────────────────────────────
	router.POST("/delete-course", handlers.Allocation.Deallocate)
	router.POST("/delete-course-individual", handlers.Allocation.Deallocate)
	router.POST("/delete-grouped-faculties", handlers.Deletion.DeleteGroupedFaculties)
	router.POST("/delete-grouped-courses", handlers.Deletion.DeleteGroupedCourses)

	return router
}
