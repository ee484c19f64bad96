package llm_fx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"tripnote/internal/services"
	"tripnote/pkg/logger"
)

var Module = fx.Provide(
	provideLLMBackend, provideLLMClient)

// provideLLMBackend selects the model backend from LLM_PROVIDER. Gemini is
// the default; set LLM_PROVIDER=openai to switch.
func provideLLMBackend() services.LLMBackend {
	if os.Getenv("LLM_PROVIDER") == "openai" {
		return services.NewOpenAIBackend(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_MODEL"))
	}

	backend, err := services.NewGeminiBackend(os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
	if err != nil {
		log.Fatalf("Failed to create Gemini backend: %v", err)
	}
	return backend
}

func provideLLMClient(backend services.LLMBackend, log logger.Logger) services.LLMClientInterface {
	return services.NewTravelPlanClient(backend, log)
}
