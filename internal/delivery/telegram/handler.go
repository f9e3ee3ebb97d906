package telegram

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/waqashussainziarana-ux/woogenius/internal/domain/entity"
	"github.com/waqashussainziarana-ux/woogenius/internal/domain/repository"
	"github.com/waqashussainziarana-ux/woogenius/internal/usecase"
)

// welcomeText greets a new chat. It lives only in the UI transcript and is
// never part of the history sent to the model.
const welcomeText = `👋 Welcome to WooGenius, your electronics store assistant!

Ask me about products, stock, or your cart. Commands:
/products — list the catalog
/cart — show your cart
/stats — inventory summary
/reset — restore the demo catalog
/clear — forget our conversation

Send a .csv or .xlsx inventory export to update the catalog.`

// BotHandler is the Telegram delivery surface.
type BotHandler struct {
	bot         *tgbotapi.BotAPI
	chatUC      usecase.ChatUseCase
	inventoryUC usecase.InventoryUseCase
	catalogRepo repository.CatalogRepository
	cartRepo    repository.CartRepository
}

// NewBotHandler creates the bot and wires it to the use cases.
func NewBotHandler(
	token string,
	chatUC usecase.ChatUseCase,
	inventoryUC usecase.InventoryUseCase,
	catalogRepo repository.CatalogRepository,
	cartRepo repository.CartRepository,
) (*BotHandler, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &BotHandler{
		bot:         bot,
		chatUC:      chatUC,
		inventoryUC: inventoryUC,
		catalogRepo: catalogRepo,
		cartRepo:    cartRepo,
	}, nil
}

// Start runs the update loop until ctx is cancelled.
func (h *BotHandler) Start(ctx context.Context) error {
	log.Printf("🤖 Bot started: @%s", h.bot.Self.UserName)

	// Observers stay consistent with agent-driven cart mutations.
	unsubscribe := h.cartRepo.Subscribe(func(cart entity.Cart) {
		log.Printf("🛒 Cart updated: %d items, total $%.2f", len(cart.Items), cart.Total)
	})
	defer unsubscribe()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			h.bot.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			h.handleMessage(ctx, update.Message)
		}
	}
}

func (h *BotHandler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	switch {
	case message.Document != nil:
		h.handleDocument(ctx, message)
	case message.IsCommand():
		h.handleCommand(ctx, message)
	case strings.TrimSpace(message.Text) != "":
		h.handleText(ctx, message)
	}
}

func (h *BotHandler) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	switch message.Command() {
	case "start", "help":
		h.sendMessage(chatID, welcomeText)
	case "products":
		h.sendProductList(ctx, chatID)
	case "cart":
		h.sendCart(ctx, chatID)
	case "stats":
		h.sendStats(ctx, chatID)
	case "reset":
		if err := h.inventoryUC.Reset(ctx); err != nil {
			h.sendMessage(chatID, "Could not reset the catalog.")
			return
		}
		h.sendMessage(chatID, "✅ Catalog restored to the demo seed set.")
	case "clear":
		if err := h.chatUC.ClearHistory(ctx, sessionID(chatID)); err != nil {
			h.sendMessage(chatID, "Could not clear the conversation.")
			return
		}
		h.sendMessage(chatID, "🧹 Conversation cleared.")
	default:
		h.sendMessage(chatID, "Unknown command. Try /help.")
	}
}

func (h *BotHandler) handleText(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	h.sendTyping(chatID)

	reply, err := h.chatUC.ProcessMessage(ctx, sessionID(chatID), message.Text)
	if err != nil {
		log.Printf("⚠️ Failed to process message: %v", err)
		h.sendMessage(chatID, "Something went wrong. Please try again.")
		return
	}
	h.sendMessage(chatID, reply)
}

// handleDocument ingests an uploaded inventory export.
func (h *BotHandler) handleDocument(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	doc := message.Document

	data, err := h.downloadFile(doc.FileID)
	if err != nil {
		log.Printf("⚠️ Failed to download %s: %v", doc.FileName, err)
		h.sendMessage(chatID, "Could not download the file. Please try again.")
		return
	}

	var count int
	switch strings.ToLower(filepath.Ext(doc.FileName)) {
	case ".csv", ".txt":
		count, err = h.inventoryUC.ProcessUpload(ctx, string(data))
	case ".xlsx":
		count, err = h.inventoryUC.ProcessSheetUpload(ctx, data, doc.FileName)
	default:
		h.sendMessage(chatID, "Unsupported file type. Send a .csv or .xlsx export.")
		return
	}
	if err != nil {
		log.Printf("⚠️ Failed to process %s: %v", doc.FileName, err)
		h.sendMessage(chatID, "Could not process the file: "+err.Error())
		return
	}

	h.sendMessage(chatID, fmt.Sprintf("✅ Processed %d rows from %s.", count, doc.FileName))
}

func (h *BotHandler) sendProductList(ctx context.Context, chatID int64) {
	products, err := h.catalogRepo.GetAll(ctx)
	if err != nil {
		h.sendMessage(chatID, "Could not load the catalog.")
		return
	}
	if len(products) == 0 {
		h.sendMessage(chatID, "The catalog is empty.")
		return
	}

	var sb strings.Builder
	sb.WriteString("🏬 Catalog:\n")
	for _, p := range products {
		sb.WriteString(fmt.Sprintf("\n• %s (%s) — $%.2f", p.Name, p.SKU, p.Price))
		if p.InStock() {
			sb.WriteString(fmt.Sprintf(", %d in stock", p.Stock))
		} else {
			sb.WriteString(", out of stock")
		}
	}
	h.sendMessage(chatID, sb.String())
}

func (h *BotHandler) sendCart(ctx context.Context, chatID int64) {
	cart, err := h.cartRepo.GetCart(ctx)
	if err != nil {
		h.sendMessage(chatID, "Could not load the cart.")
		return
	}
	if len(cart.Items) == 0 {
		h.sendMessage(chatID, "🛒 Your cart is empty.")
		return
	}

	var sb strings.Builder
	sb.WriteString("🛒 Your cart:\n")
	for _, item := range cart.Items {
		sb.WriteString(fmt.Sprintf("\n• %d x %s — $%.2f", item.Quantity, item.Name, item.Price*float64(item.Quantity)))
	}
	sb.WriteString(fmt.Sprintf("\n\nTotal: $%.2f", cart.Total))
	h.sendMessage(chatID, sb.String())
}

func (h *BotHandler) sendStats(ctx context.Context, chatID int64) {
	stats, err := h.inventoryUC.Stats(ctx)
	if err != nil {
		h.sendMessage(chatID, "Could not load inventory stats.")
		return
	}
	h.sendMessage(chatID, fmt.Sprintf(
		"📊 Inventory:\nProducts: %d\nTotal stock: %d\nLow stock: %d\nCategories: %d",
		stats.TotalProducts, stats.TotalStock, stats.LowStockCount, stats.Categories))
}

func (h *BotHandler) downloadFile(fileID string) ([]byte, error) {
	url, err := h.bot.GetFileDirectURL(fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to get file URL: %w", err)
	}

	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func (h *BotHandler) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("⚠️ Failed to send message: %v", err)
	}
}

func (h *BotHandler) sendTyping(chatID int64) {
	action := tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)
	if _, err := h.bot.Request(action); err != nil {
		log.Printf("⚠️ Failed to send chat action: %v", err)
	}
}

func sessionID(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}
