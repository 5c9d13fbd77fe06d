package routes

import (
	"solarvizyon/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAnalyses  = "/analyses"
	PathLeads     = "/leads"
	PathLocations = "/locations"
)

func addSolarRoutes(rg *gin.RouterGroup, analysisHandler *handlers.AnalysisHandler, leadHandler *handlers.LeadHandler, catalogHandler *handlers.CatalogHandler) {
	analyses := rg.Group(PathAnalyses)
	{
		analyses.POST("", analysisHandler.CreateAnalysis)
	}

	leads := rg.Group(PathLeads)
	{
		leads.POST("", leadHandler.CreateLead)
	}

	rg.GET(PathLocations, catalogHandler.ListLocations)
}
