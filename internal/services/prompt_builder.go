package services

import (
	"fmt"
	"strings"

	"github.com/NourAlnujoom/Asfar-tourism-assistant/pkg/utils"
)

// ChatSystemPrompt is the role every text-generation call runs under.
const ChatSystemPrompt = "You are a helpful assistant."

const assistantGreeting = `Hello! I'm your Jordan travel assistant. Please enter the place you plan to visit, your intended time, and your current location. I'll help you find the best time to go and suggest other interesting stops along the way.`

// closingCourtesy must end every reply that includes a detour.
const closingCourtesy = "Have a wonderful time exploring Jordan. You are most welcome!"

var weatherCodeDescriptions = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Light drizzle",
	61: "Light rain",
	63: "Moderate rain",
	65: "Heavy rain",
	71: "Light snow",
	95: "Thunderstorm",
}

func describeWeatherCode(code int) string {
	if desc, ok := weatherCodeDescriptions[code]; ok {
		return desc
	}
	return "unavailable"
}

// BuildAdvicePrompt renders a scheduling decision into the instruction handed
// to the text-generation model. Times are restated on a 12-hour clock and the
// calendar date is never mentioned.
func BuildAdvicePrompt(a *VisitAdvice) string {
	var b strings.Builder

	b.WriteString(`You are a helpful tourism assistant for visitors to Jordan. You previously said:
"` + assistantGreeting + `"
Now, the user has provided all the required information.
Do not talk too much, be professional.
Thank them for sharing these details, and proceed to offer personalized advice based on their input.
`)

	fmt.Fprintf(&b, "\nAt %s, the temperature at %s is expected to be %.1f°C, which is considered %s.",
		utils.Format12Hour(a.RequestedAt), a.Site, a.Weather.Temperature, a.Assessment.Narrative)

	switch {
	case a.SkipToday:
		fmt.Fprintf(&b, "\nDue to unfavorable weather conditions, it is not advisable to visit %s today.", a.Site)

	case a.AlternateSlot != nil:
		fmt.Fprintf(&b,
			"\nInstead, I recommend visiting %s at %s, when weather conditions are expected to be more suitable. The weather at that time is described as: %s.",
			a.Site, utils.Format12Hour(a.AlternateSlot.Time), describeWeatherCode(a.AlternateSlot.Code))
		if a.CrowdCaveat {
			fmt.Fprintf(&b,
				" However, please note that %s is expected to be very crowded at that time. If you prefer a less crowded experience, you may wish to postpone your visit.",
				a.Site)
		}

	default:
		fmt.Fprintf(&b, "\nThe weather is generally suitable for visiting. Conditions are described as: %s.",
			describeWeatherCode(a.Weather.Code))

		if a.CrowdLevel == CrowdHigh {
			fmt.Fprintf(&b, "\nHowever, %s is expected to be very crowded at %s.",
				a.Site, utils.Format12Hour(a.RequestedAt))
			if a.BetterTime != nil {
				fmt.Fprintf(&b, "\nTo avoid large crowds, I suggest visiting %s at %s instead.",
					a.Site, utils.Format12Hour(*a.BetterTime))
			} else {
				b.WriteString("\nUnfortunately, it seems there is no less crowded time slot before closing hours.")
			}
		}
	}

	if a.Detour != nil {
		fmt.Fprintf(&b,
			"\nAs an additional recommendation, you may consider visiting %s, a nearby destination known for %s. It is categorized under '%s' and could enrich your journey.",
			a.Detour.Name, strings.ToLower(a.Detour.Description), strings.ToLower(a.Detour.Category))
		fmt.Fprintf(&b,
			"\nNotes: 1. Write times in AM/PM format and do not mention the date at all. 2. Let this sentence be at the end of your answer: %s",
			closingCourtesy)
	}

	return strings.TrimSpace(b.String())
}

// BuildCasualTalkPrompt handles messages with no usable trip details: the
// model chats back lightly and restates what information it needs.
func BuildCasualTalkPrompt(message string) string {
	return fmt.Sprintf(`You are a helpful tourism assistant for visitors to Jordan. You previously said:
"%s"
The user said: "%s"
Looks like the user is not providing any trip information and is talking about something else.
Respond in a friendly, casual way. You are a chatbot assisting tourists in Jordan, so keep the reply short and light,
and remind them to provide the information needed to find the best time to go and suggest other interesting stops along the way.`,
		assistantGreeting, message)
}
