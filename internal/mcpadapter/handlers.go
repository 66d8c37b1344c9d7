package mcpadapter

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/category"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/models"
)

// Validator is the part of the executor the tools need.
type Validator interface {
	Execute(ctx context.Context, req models.ValidationRequest) models.ValidationResult
	ExecuteSyntax(req models.ValidationRequest) models.ValidationResult
}

// ValidateInput is the MCP tool input schema (matches HTTP API field names).
type ValidateInput struct {
	RequestID string `json:"request_id,omitempty" jsonschema:"optional caller supplied identifier"`
	Input     string `json:"input" jsonschema:"the user input to validate"`
	InputType string `json:"input_type" jsonschema:"free text label such as email, nomor hp or nama lengkap"`
	Model     string `json:"model,omitempty" jsonschema:"gemini-flash, gemini-flash-lite, gemini-flash-latest, gemma or 0-3"`
}

type ListModelsInput struct{}

type ModelList struct {
	Models []models.ModelInfo `json:"models"`
}

type ListCategoriesInput struct{}

type CategoryList struct {
	Categories []CategoryInfo `json:"categories"`
}

type CategoryInfo struct {
	Name   string   `json:"name"`
	Labels []string `json:"labels"`
}

// NewValidateHandler returns a tool handler running both stages.
// Pass the returned function to mcp.AddTool.
func NewValidateHandler(v Validator) func(context.Context, *mcp.CallToolRequest, ValidateInput) (*mcp.CallToolResult, models.ValidationResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ValidateInput) (*mcp.CallToolResult, models.ValidationResult, error) {
		request, err := toRequest(input)
		if err != nil {
			return nil, models.ValidationResult{}, err
		}

		result := v.Execute(ctx, request)
		if result.Failed() {
			return nil, result, fmt.Errorf("%s: %s", result.ErrorKind, result.Error)
		}
		return nil, result, nil
	}
}

// NewCheckSyntaxHandler returns a tool handler running only the local rules.
func NewCheckSyntaxHandler(v Validator) func(context.Context, *mcp.CallToolRequest, ValidateInput) (*mcp.CallToolResult, models.ValidationResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ValidateInput) (*mcp.CallToolResult, models.ValidationResult, error) {
		request, err := toRequest(input)
		if err != nil {
			return nil, models.ValidationResult{}, err
		}
		return nil, v.ExecuteSyntax(request), nil
	}
}

func ListModels(ctx context.Context, req *mcp.CallToolRequest, _ ListModelsInput) (*mcp.CallToolResult, ModelList, error) {
	return nil, ModelList{Models: models.ModelChoices()}, nil
}

func ListCategories(ctx context.Context, req *mcp.CallToolRequest, _ ListCategoriesInput) (*mcp.CallToolResult, CategoryList, error) {
	all := category.All()
	out := CategoryList{Categories: make([]CategoryInfo, 0, len(all))}
	for _, c := range all {
		out.Categories = append(out.Categories, CategoryInfo{Name: c.String(), Labels: category.Labels(c)})
	}
	return nil, out, nil
}

func toRequest(input ValidateInput) (models.ValidationRequest, error) {
	request := models.ValidationRequest{
		RequestID: input.RequestID,
		Input:     input.Input,
		InputType: input.InputType,
	}
	if input.Model != "" {
		model, err := models.ParseModelChoice(input.Model)
		if err != nil {
			return request, err
		}
		request.Model = &model
	}
	return request, nil
}
