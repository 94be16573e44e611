package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/NourAlnujoom/Asfar-tourism-assistant/pkg/utils"
)

// absenceSentinel is the literal token the extraction prompt asks the model
// to answer with when a field is missing.
const absenceSentinel = "None"

// IntentExtractor pulls structured trip fields out of free text and decides
// whether a message is in scope at all. Both capabilities are single-shot
// best-effort calls; a failed model call is fatal for the request.
type IntentExtractor interface {
	IsOffTopic(ctx context.Context, message string) (bool, error)
	ExtractField(ctx context.Context, field, message string) (string, error)
}

type intentService struct {
	llm utils.TextGenerator
}

func NewIntentService(llm utils.TextGenerator) IntentExtractor {
	return &intentService{llm: llm}
}

func (s *intentService) IsOffTopic(ctx context.Context, message string) (bool, error) {
	prompt := fmt.Sprintf(`You are a strict tourism assistant focused on planning visits to places in Jordan.
Decide if the following user message contains concrete information about at least one of:
- the user's current location,
- their planned time of visit,
- or their desired destination in Jordan.

If the message does NOT contain any of these, answer "Yes" (it is off-topic).
If the message DOES contain at least one of these, answer "No" (it is on-topic).

User message: "%s"

Answer with "Yes" or "No" only.`, message)

	reply, err := s.llm.Generate(ctx, ChatSystemPrompt, prompt)
	if err != nil {
		log.Printf("off-topic check failed: %v", err)
		return false, fmt.Errorf("%w: %v", utils.ErrAssistantFailure, err)
	}
	return strings.EqualFold(strings.TrimSpace(reply), "yes"), nil
}

// ExtractField returns the empty string when the model answers with the
// absence sentinel. No schema validation beyond that literal match.
func (s *intentService) ExtractField(ctx context.Context, field, message string) (string, error) {
	prompt := fmt.Sprintf(`You are an information extractor. I will give you a sentence and your job is to extract information from that sentence.
"%s" What is the user's %s?
Just answer with the %s alone with no explanation. If not specified, say "%s".`,
		message, field, field, absenceSentinel)

	reply, err := s.llm.Generate(ctx, ChatSystemPrompt, prompt)
	if err != nil {
		log.Printf("extraction of %q failed: %v", field, err)
		return "", fmt.Errorf("%w: %v", utils.ErrAssistantFailure, err)
	}
	if strings.Contains(reply, absenceSentinel) {
		return "", nil
	}
	return strings.TrimSpace(reply), nil
}
