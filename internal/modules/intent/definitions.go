package intent

// Definition describes one supported intent for the extraction prompt and
// for per-intent validation. The set is a closed enumeration.
type Definition struct {
	Intent      Intent
	Description string
	Required    []string
	Examples    []string
}

var definitions = []Definition{
	{
		Intent:      IntentFlightSearch,
		Description: "The user wants to find flights between two places on specific dates.",
		Required:    []string{"departure", "destination", "outboundDate"},
		Examples: []string{
			"Find flights from NYC to Paris on 2030-06-01",
			"I need a round trip Tokyo to London leaving March 3rd, back March 10th, business class",
		},
	},
	{
		Intent:      IntentHotelSearch,
		Description: "The user wants accommodation in a city for a date range.",
		Required:    []string{"destination", "checkInDate", "checkOutDate"},
		Examples: []string{
			"Find me a hotel in Barcelona from 2030-07-01 to 2030-07-05",
			"Where can two adults stay in Rome next weekend?",
		},
	},
	{
		Intent:      IntentPlaceSearch,
		Description: "The user wants restaurants, attractions, or other points of interest.",
		Required:    []string{"query"},
		Examples: []string{
			"Best ramen places in Tokyo",
			"What should I see in Lisbon?",
		},
	},
	{
		Intent:      IntentTripPlanning,
		Description: "The user describes a multi-destination journey needing flights, hotels, and activities across several stops.",
		Required:    []string{"destinations"},
		Examples: []string{
			"Plan a trip from SFO to Las Vegas with a stop at the Grand Canyon",
			"Two weeks through Madrid, Barcelona and Lisbon in September",
		},
	},
	{
		Intent:      IntentGeneralQuestion,
		Description: "Anything else: travel advice, visa questions, small talk, or unclear requests.",
		Required:    nil,
		Examples: []string{
			"Do I need a visa for Japan?",
			"What's the best time of year to visit Iceland?",
		},
	},
}

// Definitions returns the fixed intent catalogue in prompt order.
func Definitions() []Definition {
	return definitions
}

// Lookup returns the definition for an intent.
func Lookup(in Intent) (Definition, bool) {
	for _, d := range definitions {
		if d.Intent == in {
			return d, true
		}
	}
	return Definition{}, false
}
