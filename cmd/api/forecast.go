package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tour-weather/internal/pipeline"
	_ "tour-weather/internal/types" // imported for swagger type definitions
)

// GetTourForecastInput defines the query parameters for the tour forecast endpoint
type GetTourForecastInput struct {
	Name     string `form:"name"`     // Tour name, the primary text field
	Schedule string `form:"schedule"` // Tour schedule, the secondary text field
	Multi    bool   `form:"multi"`    // Resolve several cities instead of only the first
	Lang     string `form:"lang"`     // Language code for weather descriptions
}

// TourCitiesResponse represents the extraction-only response
type TourCitiesResponse struct {
	Primary string   `json:"primary,omitempty"` // First matched city key
	Cities  []string `json:"cities"`            // All matched city keys, in match order
}

// handleGetTourForecast godoc
// @Summary Get daily forecasts for a tour
// @Description Extract the cities mentioned in a tour's name and schedule, geocode them, and return one daily weather summary list per city
// @Tags tour
// @Produce json
// @Param name query string false "Tour name" example(Tour Đà Nẵng - Bà Nà Hills 3N2Đ)
// @Param schedule query string false "Tour schedule text"
// @Param multi query boolean false "Resolve up to the configured city cap instead of only the first city"
// @Param lang query string false "Language code for weather descriptions" example(vi)
// @Success 200 {array} types.TourCityForecast
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /tour/forecast [get]
func (app *App) handleGetTourForecast(c *gin.Context) {
	var input GetTourForecastInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := pipeline.Input{
		Name:     input.Name,
		Schedule: input.Schedule,
		Multi:    input.Multi,
		Lang:     input.Lang,
	}
	if in.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name or schedule is required"})
		return
	}

	results, err := app.pipeline.TourForecasts(c.Request.Context(), in)
	if err != nil {
		// The raw upstream error stays in the logs; consumers get one
		// generic message.
		app.logger.Error("tour forecast pipeline failed",
			"name", input.Name,
			"error", err,
		)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load tour weather"})
		return
	}

	c.JSON(http.StatusOK, results)
}

// handleGetTourCities godoc
// @Summary Extract the cities mentioned in tour text
// @Description Run only the place-extraction step and return the matched city keys
// @Tags tour
// @Produce json
// @Param name query string false "Tour name" example(Hội An về đêm)
// @Param schedule query string false "Tour schedule text"
// @Success 200 {object} TourCitiesResponse
// @Failure 400 {object} map[string]string
// @Router /tour/cities [get]
func (app *App) handleGetTourCities(c *gin.Context) {
	var input GetTourForecastInput

	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := app.extractor.Extract(input.Name)
	if len(res.All) == 0 {
		res = app.extractor.Extract(input.Schedule)
	}

	cities := make([]string, 0, len(res.All))
	for _, key := range res.All {
		cities = append(cities, string(key))
	}

	c.JSON(http.StatusOK, TourCitiesResponse{
		Primary: string(res.Primary),
		Cities:  cities,
	})
}
