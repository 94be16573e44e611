package chatfx

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"github.com/NourAlnujoom/Asfar-tourism-assistant/internal/api/controllers"
	"github.com/NourAlnujoom/Asfar-tourism-assistant/internal/repositories"
	"github.com/NourAlnujoom/Asfar-tourism-assistant/internal/services"
	"github.com/NourAlnujoom/Asfar-tourism-assistant/pkg/utils"
)

var Module = fx.Provide(
	ProvideTextGenerator,
	ProvideGeocoder,
	ProvideRouteProvider,
	ProvideWeatherProvider,
	ProvideCrowdPredictor,
	ProvideDetourSelector,
	ProvideAdvisor,
	ProvideIntentExtractor,
	ProvideChatService,
	ProvideChatController)

// LLMConfig holds configuration for text-generation clients.
type LLMConfig struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
}

// ProvideTextGenerator creates a text-generation client based on environment
// variables. OPENAI_BASE_URL allows pointing at any OpenAI-compatible
// endpoint, including locally hosted models.
func ProvideTextGenerator() (utils.TextGenerator, error) {
	config := getLLMConfig()

	log.Printf("Initializing %s text-generation client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "openai":
		return utils.NewOpenAITextGenerator(config.APIKey, config.BaseURL, config.Model), nil
	case "gemini":
		client, err := utils.NewGeminiTextGenerator(context.Background(), config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s. Use 'openai' or 'gemini'", config.Provider)
	}
}

func ProvideGeocoder() (services.Geocoder, error) {
	cachePath := getEnvWithDefault("LOCATION_CACHE_PATH", "location_cache.json")
	cache, err := services.NewFileCoordinateCache(cachePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open coordinate cache %s: %w", cachePath, err)
	}

	apiKey := os.Getenv("GOOGLE_MAPS_API")
	if apiKey == "" {
		log.Fatal("GOOGLE_MAPS_API is required")
	}

	return services.NewCachingGeocoder(services.NewGoogleGeocoder(apiKey), cache), nil
}

func ProvideRouteProvider() services.RouteProvider {
	apiKey := os.Getenv("GOOGLE_MAPS_API")
	if apiKey == "" {
		log.Fatal("GOOGLE_MAPS_API is required")
	}
	return services.NewGoogleDirections(apiKey)
}

func ProvideWeatherProvider(geocoder services.Geocoder) services.WeatherProvider {
	return services.NewOpenMeteoProvider(geocoder)
}

func ProvideCrowdPredictor(sensors repositories.SensorRepository) (services.CrowdPredictor, error) {
	modelPath := getEnvWithDefault("MODEL_PATH", "artifacts/linear_regression.json")
	scalerPath := getEnvWithDefault("SCALER_PATH", "artifacts/scaler.json")

	model, err := services.LoadLinearModel(modelPath)
	if err != nil {
		return nil, err
	}
	scaler, err := services.LoadScaler(scalerPath)
	if err != nil {
		return nil, err
	}

	return services.NewCrowdService(model, scaler, sensors), nil
}

func ProvideDetourSelector(geocoder services.Geocoder, routes services.RouteProvider) services.DetourSelector {
	return services.NewDetourService(geocoder, routes)
}

func ProvideAdvisor(
	weather services.WeatherProvider,
	crowd services.CrowdPredictor,
	sites repositories.SiteRepository,
) services.SchedulingAdvisor {
	return services.NewAdvisorService(weather, crowd, sites)
}

func ProvideIntentExtractor(llm utils.TextGenerator) services.IntentExtractor {
	return services.NewIntentService(llm)
}

func ProvideChatService(
	sites repositories.SiteRepository,
	intents services.IntentExtractor,
	crowd services.CrowdPredictor,
	weather services.WeatherProvider,
	detours services.DetourSelector,
	advisor services.SchedulingAdvisor,
	llm utils.TextGenerator,
) services.ChatServiceInterface {
	return services.NewChatService(sites, intents, crowd, weather, detours, advisor, llm)
}

func ProvideChatController(chatService services.ChatServiceInterface) *controllers.ChatController {
	return controllers.NewChatController(chatService)
}

func getLLMConfig() LLMConfig {
	provider := getEnvWithDefault("LLM_PROVIDER", "openai")

	var apiKey, baseURL, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		baseURL = os.Getenv("OPENAI_BASE_URL")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" && baseURL == "" {
			log.Fatal("OPENAI_API_KEY is required when using the OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using the Gemini provider")
		}
	}

	return LLMConfig{
		Provider: provider,
		APIKey:   apiKey,
		BaseURL:  baseURL,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
