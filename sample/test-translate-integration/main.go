package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/albenaa/albenaa-api/internal/infra/integration/translate"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	if os.Getenv("TRANSLATE_URL") == "" {
		log.Fatal("❌ TRANSLATE_URL must be set in .env")
	}

	client := translate.NewClient(os.Getenv("TRANSLATE_URL"), os.Getenv("TRANSLATE_API_KEY"))

	text := "Turnkey villa construction with full municipality approvals"
	fmt.Println("🔄 Translating sample text en -> ar...")
	fmt.Printf("   Input: %s\n\n", text)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	out, err := client.Translate(ctx, text, "en", "ar")
	if err != nil {
		log.Fatalf("❌ Translate failed: %v", err)
	}

	fmt.Printf("✅ Result: %s\n", out)
}
