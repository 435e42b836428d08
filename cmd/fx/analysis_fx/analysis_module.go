package analysis_fx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"pathfinders/internal/models/response_models"
	"pathfinders/internal/services"
	"pathfinders/pkg/utils"
)

var Module = fx.Provide(
	provideCompletionClient, provideAnalysisService, provideChatService)

// provideCompletionClient builds the AI backend from env. A missing API key
// is a supported mode: analysis serves the deterministic fallback and chat
// reports unavailable.
func provideCompletionClient() utils.CompletionClientInterface {
	provider := os.Getenv("AI_PROVIDER")

	apiKey := os.Getenv("OPENAI_API_KEY")
	if provider == "gemini" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		log.Printf("No AI credential configured, running with fallback analysis")
		return nil
	}

	client, err := utils.NewCompletionClient(provider, apiKey, os.Getenv("AI_MODEL"))
	if err != nil {
		log.Printf("AI client init failed, running with fallback analysis: %v", err)
		return nil
	}
	return client
}

func provideAnalysisService(client utils.CompletionClientInterface) services.AnalysisServiceInterface {
	variant := response_models.AnalysisVariant(os.Getenv("QUIZ_RESULT_VARIANT"))
	return services.NewAnalysisService(client, variant)
}

func provideChatService(client utils.CompletionClientInterface) services.ChatServiceInterface {
	return services.NewChatService(client)
}
