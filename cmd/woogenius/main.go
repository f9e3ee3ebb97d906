package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/waqashussainziarana-ux/woogenius/config"
	"github.com/waqashussainziarana-ux/woogenius/internal/delivery/telegram"
	"github.com/waqashussainziarana-ux/woogenius/internal/infrastructure/gemini"
	"github.com/waqashussainziarana-ux/woogenius/internal/infrastructure/parser"
	"github.com/waqashussainziarana-ux/woogenius/internal/infrastructure/storage"
	"github.com/waqashussainziarana-ux/woogenius/internal/infrastructure/woocommerce"
	"github.com/waqashussainziarana-ux/woogenius/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}
	if cfg.GeminiAPIKey == "" {
		log.Printf("⚠️ GEMINI_API_KEY is not set; the assistant will reply with a configuration error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalogRepo := storage.NewMemoryCatalogRepository(storage.DefaultSeed(), cfg.CatalogLatency)
	cartRepo := storage.NewMemoryCartRepository()

	chatRepo, err := storage.NewSQLiteChatRepository(cfg.ChatDBPath, cfg.MaxContextSize)
	if err != nil {
		log.Fatalf("❌ Failed to open chat store: %v", err)
	}

	checkoutRepo := woocommerce.NewClient(cfg.CheckoutBaseURL)
	dispatcher := usecase.NewToolDispatcher(catalogRepo, cartRepo, checkoutRepo)

	aiRepo, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, dispatcher, nil)
	if err != nil {
		log.Fatalf("❌ Failed to create Gemini client: %v", err)
	}
	defer aiRepo.Close()

	chatUC := usecase.NewChatUseCase(aiRepo, chatRepo, cfg.MaxContextSize)
	inventoryUC := usecase.NewInventoryUseCase(catalogRepo, parser.NewExcelSheetParser())

	handler, err := telegram.NewBotHandler(cfg.TelegramToken, chatUC, inventoryUC, catalogRepo, cartRepo)
	if err != nil {
		log.Fatalf("❌ Failed to create bot: %v", err)
	}

	if err := handler.Start(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("❌ Bot stopped: %v", err)
	}
	log.Printf("👋 Shutting down")
}
