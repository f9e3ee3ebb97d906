package entity

import "fmt"

// ToolKind enumerates the operations the model may request.
type ToolKind int

const (
	ToolSearchProducts ToolKind = iota
	ToolCheckInventory
	ToolAddToCart
	ToolInitiateCheckout
)

// Tool names as declared to the model.
const (
	ToolNameSearchProducts   = "search_products"
	ToolNameCheckInventory   = "check_inventory"
	ToolNameAddToCart        = "add_to_cart"
	ToolNameInitiateCheckout = "initiate_checkout"
)

// ToolCall is a closed variant over the four supported operations, so the
// dispatcher can match it exhaustively instead of switching on a raw name
// string with untyped arguments.
type ToolCall struct {
	Kind     ToolKind
	Query    string // search_products
	SKU      string // check_inventory, add_to_cart
	Quantity int    // add_to_cart
	Ready    string // initiate_checkout
}

// ToolResult is the JSON-serializable payload handed back to the model.
// Failures are carried under the "error" key, never as Go errors.
type ToolResult map[string]any

// Plain converts the payload to bare map[string]any and []any values all
// the way down. The model API's struct encoder rejects named map types and
// typed slices, so anything embedded in a function response must pass
// through here first.
func (r ToolResult) Plain() map[string]any {
	return plainMap(r)
}

func plainMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = plainValue(v)
	}
	return out
}

func plainValue(v any) any {
	switch v := v.(type) {
	case ToolResult:
		return plainMap(v)
	case map[string]any:
		return plainMap(v)
	case []map[string]any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = plainMap(e)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = plainValue(e)
		}
		return out
	default:
		return v
	}
}

// ParseToolCall converts a raw function-call request (name + loosely typed
// arguments, as the model API delivers them) into a ToolCall.
func ParseToolCall(name string, args map[string]any) (ToolCall, error) {
	switch name {
	case ToolNameSearchProducts:
		return ToolCall{Kind: ToolSearchProducts, Query: argString(args, "query")}, nil
	case ToolNameCheckInventory:
		return ToolCall{Kind: ToolCheckInventory, SKU: argString(args, "sku")}, nil
	case ToolNameAddToCart:
		return ToolCall{
			Kind:     ToolAddToCart,
			SKU:      argString(args, "sku"),
			Quantity: argInt(args, "quantity"),
		}, nil
	case ToolNameInitiateCheckout:
		return ToolCall{Kind: ToolInitiateCheckout, Ready: argString(args, "ready")}, nil
	default:
		return ToolCall{}, fmt.Errorf("unknown tool: %s", name)
	}
}

func argString(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func argInt(args map[string]any, key string) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}
