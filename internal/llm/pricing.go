package llm

// Per-million-token prices in USD for the models this service
// configures, taken from models.dev. Enough for a rough cost figure in
// the request log; models missing from the table simply log no cost.
type tokenPrice struct {
	input  float64
	output float64
}

var tokenPrices = map[string]tokenPrice{
	"claude-sonnet-4-20250514":  {3, 15},
	"claude-haiku-4-5-20251001": {1, 5},
	"gpt-4o":                    {2.5, 10},
	"gpt-4o-mini":               {0.15, 0.6},
	"gemini-2.0-flash":          {0.1, 0.4},
	"gemini-2.0-flash-lite":     {0.075, 0.3},
}

// estimateCost returns the USD cost of a request, or false when the
// model has no table entry.
func estimateCost(modelID string, u Usage) (float64, bool) {
	p, ok := tokenPrices[modelID]
	if !ok {
		return 0, false
	}
	return float64(u.InputTokens)*p.input/1e6 + float64(u.OutputTokens)*p.output/1e6, true
}
