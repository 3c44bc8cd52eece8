package assistant_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"fjordcruice/internal/api/controllers"
	"fjordcruice/internal/repositories"
	"fjordcruice/internal/services"
	"fjordcruice/pkg/utils"
)

var Module = fx.Provide(
	ProvideChatClient,
	ProvideAssistantService,
	ProvideAssistantController)

// ChatConfig holds configuration for text-generation clients
type ChatConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideChatClient creates a chat client based on environment variables.
// Provider "off" (the default without keys) disables the remote provider
// and leaves the assistant on its deterministic fallback.
func ProvideChatClient() (utils.ChatClientInterface, error) {
	config := getChatConfig()
	if config.Provider == "off" {
		log.Println("AI provider disabled, assistant will use fallback answers")
		return nil, nil
	}

	log.Printf("Initializing %s chat client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "openai":
		return utils.NewOpenAIChatClient(config.APIKey, config.Model), nil
	case "gemini":
		client, err := utils.NewGeminiChatClient(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai', 'gemini' or 'off'", config.Provider)
	}
}

func ProvideAssistantService(
	tourRepo repositories.TourRepositoryInterface,
	chatClient utils.ChatClientInterface,
) services.AssistantServiceInterface {
	return services.NewAssistantService(tourRepo, chatClient)
}

func ProvideAssistantController(
	assistantService services.AssistantServiceInterface,
) *controllers.AssistantController {
	return controllers.NewAssistantController(assistantService)
}

// getChatConfig reads configuration from environment variables
func getChatConfig() ChatConfig {
	provider := utils.GetEnvWithDefault("AI_PROVIDER", "off")

	var apiKey, model string
	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = utils.GetEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = utils.GetEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return ChatConfig{
		Provider: strings.ToLower(provider),
		APIKey:   apiKey,
		Model:    model,
	}
}
