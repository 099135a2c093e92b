package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KAVYA-29-ai/ecommerce/internal/handlers"
	"github.com/KAVYA-29-ai/ecommerce/internal/models"
)

// allowedMethods is the fixed method policy of the /predict endpoint.
const allowedMethods = "POST, OPTIONS"

// Setup builds the gin engine with the CORS and method policy applied to
// every response.
func Setup(predict *handlers.PredictHandler) *gin.Engine {
	r := gin.Default()
	r.Use(corsHeaders())
	r.HandleMethodNotAllowed = true
	r.NoMethod(methodNotAllowed)
	r.NoRoute(notFound)

	r.POST("/predict", predict.Predict)
	r.OPTIONS("/predict", preflight)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "prediction-gateway",
		})
	})

	return r
}

// corsHeaders attaches the fixed header set to every response, including
// errors and 405s.
func corsHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Header("Access-Control-Allow-Methods", allowedMethods)
		c.Header("Content-Type", "application/json")
		c.Next()
	}
}

func preflight(c *gin.Context) {
	c.Status(http.StatusOK)
}

func methodNotAllowed(c *gin.Context) {
	c.Header("Allow", allowedMethods)
	perr := models.NewError(models.CodeMethodNotAllowed, http.StatusMethodNotAllowed,
		"method not allowed, use "+allowedMethods)
	c.JSON(perr.Status, perr.Envelope())
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.ErrorEnvelope{Error: "not found"})
}
