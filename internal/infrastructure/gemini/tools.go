package gemini

import (
	"github.com/google/generative-ai-go/genai"
	"github.com/waqashussainziarana-ux/woogenius/internal/domain/entity"
)

// toolDeclarations returns the four functions the model may call, declared
// with the schema every generation request carries.
func toolDeclarations() []*genai.Tool {
	return []*genai.Tool{{
		FunctionDeclarations: []*genai.FunctionDeclaration{
			{
				Name:        entity.ToolNameSearchProducts,
				Description: "Search for products by name or category to see details and stock levels.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"query": {
							Type:        genai.TypeString,
							Description: `The search term (e.g., "headphones", "laptop", "wireless mouse").`,
						},
					},
					Required: []string{"query"},
				},
			},
			{
				Name:        entity.ToolNameCheckInventory,
				Description: "Get precise stock quantity for a specific SKU.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"sku": {
							Type:        genai.TypeString,
							Description: "The exact product SKU.",
						},
					},
					Required: []string{"sku"},
				},
			},
			{
				Name:        entity.ToolNameAddToCart,
				Description: "Add a product to the user shopping cart.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"sku": {
							Type:        genai.TypeString,
							Description: "The SKU of the product to add.",
						},
						"quantity": {
							Type:        genai.TypeNumber,
							Description: "The number of items to add. Default is 1.",
						},
					},
					Required: []string{"sku", "quantity"},
				},
			},
			{
				Name:        entity.ToolNameInitiateCheckout,
				Description: "Generate a checkout link for the customer when they are ready to buy.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"ready": {
							Type:        genai.TypeString,
							Description: "User confirmation to proceed to checkout (e.g., 'yes').",
						},
					},
					Required: []string{"ready"},
				},
			},
		},
	}}
}
