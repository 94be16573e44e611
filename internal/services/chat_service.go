package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/NourAlnujoom/Asfar-tourism-assistant/internal/repositories"
	"github.com/NourAlnujoom/Asfar-tourism-assistant/pkg/utils"
)

// detailsPrompt re-asks for the three fields the pipeline cannot run without.
const detailsPrompt = "Please enter the place you plan to visit, your intended time, and your current location in one message."

type ChatServiceInterface interface {
	HandleMessage(ctx context.Context, message string) (string, error)
}

// ChatService runs one user message through the whole pipeline: intent
// extraction, crowd prediction, weather, detour selection, scheduling advice,
// and final prose synthesis. Calls are sequential and blocking; each external
// client carries its own timeout.
type ChatService struct {
	sites   repositories.SiteRepository
	intents IntentExtractor
	crowd   CrowdPredictor
	weather WeatherProvider
	detours DetourSelector
	advisor SchedulingAdvisor
	llm     utils.TextGenerator
}

func NewChatService(
	sites repositories.SiteRepository,
	intents IntentExtractor,
	crowd CrowdPredictor,
	weather WeatherProvider,
	detours DetourSelector,
	advisor SchedulingAdvisor,
	llm utils.TextGenerator,
) ChatServiceInterface {
	return &ChatService{
		sites:   sites,
		intents: intents,
		crowd:   crowd,
		weather: weather,
		detours: detours,
		advisor: advisor,
		llm:     llm,
	}
}

func (s *ChatService) HandleMessage(ctx context.Context, message string) (string, error) {
	message = strings.ToLower(strings.TrimSpace(message))

	offTopic, err := s.intents.IsOffTopic(ctx, message)
	if err != nil {
		return "", err
	}
	if offTopic {
		reply, err := s.llm.Generate(ctx, ChatSystemPrompt, BuildCasualTalkPrompt(message))
		if err != nil {
			return "", fmt.Errorf("%w: %v", utils.ErrAssistantFailure, err)
		}
		return strings.TrimSpace(reply), nil
	}

	origin, err := s.intents.ExtractField(ctx, "current location", message)
	if err != nil {
		return "", err
	}
	timeRaw, err := s.intents.ExtractField(ctx, "visit time", message)
	if err != nil {
		return "", err
	}
	if timeRaw == "" {
		return detailsPrompt, nil
	}
	clock, err := utils.ParseClockTime(timeRaw)
	if err != nil {
		return "", fmt.Errorf("visit time: %w", err)
	}
	destination, err := s.intents.ExtractField(ctx, "destination", message)
	if err != nil {
		return "", err
	}
	if destination == "" || origin == "" {
		return detailsPrompt, nil
	}

	visitAt := utils.CombineToday(clock)
	log.Printf("chat: destination=%q origin=%q visit=%s", destination, origin, visitAt.Format("15:04"))

	// A visit time outside the sensor history is fatal for the request.
	crowdLevel, err := s.crowd.Predict(ctx, destination, visitAt)
	if err != nil {
		return "", err
	}

	sample, err := s.weather.SampleAt(ctx, destination, visitAt)
	if err != nil {
		return "", err
	}
	if sample == nil {
		return fmt.Sprintf("I couldn't fetch the weather for %s. Please check the site name.", destination), nil
	}

	detour, err := s.selectDetour(ctx, origin, destination)
	if err != nil {
		// Detour selection is best-effort: the reply simply omits it.
		log.Printf("chat: detour selection failed: %v", err)
		detour = ""
	}

	advice, err := s.advisor.Advise(ctx, destination, visitAt, crowdLevel, *sample, detour)
	if err != nil {
		return "", err
	}

	reply, err := s.llm.Generate(ctx, ChatSystemPrompt, BuildAdvicePrompt(advice))
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrAssistantFailure, err)
	}
	return strings.TrimSpace(reply), nil
}

func (s *ChatService) selectDetour(ctx context.Context, origin, destination string) (string, error) {
	sites, err := s.sites.ListAll(ctx)
	if err != nil {
		return "", utils.ErrDatabaseError
	}

	candidates := make([]string, 0, len(sites))
	for _, site := range sites {
		candidates = append(candidates, site.SiteName)
	}

	return s.detours.SelectDetour(ctx, origin, candidates, destination)
}
