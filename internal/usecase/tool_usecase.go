package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/waqashussainziarana-ux/woogenius/internal/domain/entity"
	"github.com/waqashussainziarana-ux/woogenius/internal/domain/repository"
)

type toolUseCase struct {
	catalogRepo  repository.CatalogRepository
	cartRepo     repository.CartRepository
	checkoutRepo repository.CheckoutRepository
}

// NewToolDispatcher maps model-requested tool calls onto the stores.
func NewToolDispatcher(
	catalogRepo repository.CatalogRepository,
	cartRepo repository.CartRepository,
	checkoutRepo repository.CheckoutRepository,
) repository.ToolDispatcher {
	return &toolUseCase{
		catalogRepo:  catalogRepo,
		cartRepo:     cartRepo,
		checkoutRepo: checkoutRepo,
	}
}

// Dispatch executes one tool call. It never lets a failure escape: every
// outcome is a well-formed payload the orchestration loop can hand back to
// the model.
func (u *toolUseCase) Dispatch(ctx context.Context, call entity.ToolCall) (result entity.ToolResult) {
	defer func() {
		if r := recover(); r != nil {
			result = entity.ToolResult{"error": fmt.Sprintf("internal error: %v", r)}
		}
	}()

	switch call.Kind {
	case entity.ToolSearchProducts:
		return u.searchProducts(ctx, call.Query)
	case entity.ToolCheckInventory:
		return u.checkInventory(ctx, call.SKU)
	case entity.ToolAddToCart:
		return u.addToCart(ctx, call.SKU, call.Quantity)
	case entity.ToolInitiateCheckout:
		return u.initiateCheckout(ctx)
	default:
		return entity.ToolResult{"error": "Unknown tool"}
	}
}

// searchProducts returns sku/name/stock/price for every match. No match is
// an empty list, not an error.
func (u *toolUseCase) searchProducts(ctx context.Context, query string) entity.ToolResult {
	results, err := u.catalogRepo.Search(ctx, query)
	if err != nil {
		return entity.ToolResult{"error": err.Error()}
	}

	products := make([]map[string]any, 0, len(results))
	for _, p := range results {
		products = append(products, map[string]any{
			"sku":   p.SKU,
			"name":  p.Name,
			"stock": p.Stock, // crucial for the model to know
			"price": p.Price,
		})
	}
	return entity.ToolResult{"products": products}
}

func (u *toolUseCase) checkInventory(ctx context.Context, sku string) entity.ToolResult {
	product, err := u.catalogRepo.GetBySKU(ctx, sku)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return entity.ToolResult{"error": "Product not found"}
		}
		return entity.ToolResult{"error": err.Error()}
	}

	status := "Out of Stock"
	if product.InStock() {
		status = "In Stock"
	}
	return entity.ToolResult{
		"sku":            product.SKU,
		"stock_quantity": product.Stock,
		"status":         status,
	}
}

// addToCart checks stock and mutates the cart as one logical step:
// insufficient stock short-circuits before any cart mutation.
func (u *toolUseCase) addToCart(ctx context.Context, sku string, quantity int) entity.ToolResult {
	if quantity <= 0 {
		quantity = 1 // declared default in the tool schema
	}

	product, err := u.catalogRepo.GetBySKU(ctx, sku)
	if err != nil {
		return entity.ToolResult{"error": "Invalid SKU"}
	}
	if product.Stock < quantity {
		return entity.ToolResult{"error": fmt.Sprintf("Insufficient stock. Only %d available.", product.Stock)}
	}

	cart, err := u.cartRepo.AddToCart(ctx, *product, quantity)
	if err != nil {
		return entity.ToolResult{"error": err.Error()}
	}

	log.Printf("🛒 Added %d x %s to cart (total $%.2f)", quantity, sku, cart.Total)
	return entity.ToolResult{
		"success":    true,
		"cart_total": cart.Total,
		"message":    "Item added to cart.",
	}
}

func (u *toolUseCase) initiateCheckout(ctx context.Context) entity.ToolResult {
	url, err := u.checkoutRepo.CheckoutURL(ctx)
	if err != nil {
		return entity.ToolResult{"error": err.Error()}
	}
	return entity.ToolResult{
		"checkout_url": url,
		"message":      "Checkout link generated.",
	}
}
