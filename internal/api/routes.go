package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/models"
)

const OpenAPIPath = "/apidocs.json"

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/validate").
			To(handler.Validate).
			Doc("Validate an input syntactically, then semantically with the LLM").
			Metadata(restfulspec.KeyOpenAPITags, []string{"validate"}).
			Reads(models.ValidationRequest{}).
			Writes(models.ValidationResult{}).
			Returns(200, "OK", models.ValidationResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(429, "Model Quota Exceeded", middleware.ErrorResponse{}).
			Returns(502, "Upstream Failure", middleware.ErrorResponse{}).
			Returns(503, "Semantic Validation Not Configured", middleware.ErrorResponse{}).
			Returns(504, "Upstream Timeout", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/validate/syntax").
			To(handler.ValidateSyntax).
			Doc("Run only the local syntax rules").
			Metadata(restfulspec.KeyOpenAPITags, []string{"validate"}).
			Reads(models.ValidationRequest{}).
			Writes(models.ValidationResult{}).
			Returns(200, "OK", models.ValidationResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/models").
			To(handler.Models).
			Doc("List selectable models").
			Metadata(restfulspec.KeyOpenAPITags, []string{"catalog"}).
			Writes([]models.ModelInfo{}).
			Returns(200, "OK", []models.ModelInfo{}))

	ws.
		Route(ws.GET("/categories").
			To(handler.Categories).
			Doc("List categories and the labels that select them").
			Metadata(restfulspec.KeyOpenAPITags, []string{"catalog"}).
			Writes([]CategoryInfo{}).
			Returns(200, "OK", []CategoryInfo{}))

	container.Add(ws)
}

// RegisterOpenAPI serves the OpenAPI document for every web service already in container.
func RegisterOpenAPI(container *restful.Container) {
	container.Add(restfulspec.NewOpenAPIService(restfulspec.Config{
		WebServices: container.RegisteredWebServices(),
		APIPath:     OpenAPIPath,
	}))
}
