// Package assistant answers free-text wellness questions from a fixed
// keyword rule table. First matching rule wins; unmatched messages get a
// generic fallback.
package assistant

import (
	"strings"

	"github.com/rs/zerolog"
)

// Rule maps trigger keywords to a canned reply.
type Rule struct {
	Keywords []string
	Reply    string
}

// DefaultFallback is returned when no rule matches.
const DefaultFallback = "I can help with questions about diet, exercise, protein, hydration and sleep. Try asking about one of those."

// DefaultRules is the built-in rule table, checked in order.
func DefaultRules() []Rule {
	return []Rule{
		{
			Keywords: []string{"protein"},
			Reply:    "Good protein sources include dal, paneer, eggs, chicken, fish and Greek yogurt. Spread intake across your meals.",
		},
		{
			Keywords: []string{"water", "hydrat"},
			Reply:    "Aim for 2 to 3 litres of water a day, more on training days or in hot weather.",
		},
		{
			Keywords: []string{"sleep", "tired", "fatigue"},
			Reply:    "Recovery matters as much as training. Target 7 to 9 hours of sleep on a consistent schedule.",
		},
		{
			Keywords: []string{"weight loss", "lose weight", "fat loss"},
			Reply:    "Sustainable weight loss comes from a modest calorie deficit plus regular activity, not crash dieting.",
		},
		{
			Keywords: []string{"muscle", "gain weight", "bulk"},
			Reply:    "To build muscle, eat a small calorie surplus, train strength 3 to 5 days a week, and keep protein high.",
		},
		{
			Keywords: []string{"cardio", "running", "walking"},
			Reply:    "Cardio supports heart health and calorie burn. Start with 20 to 30 minutes at a pace where you can still talk.",
		},
		{
			Keywords: []string{"sugar", "diabet"},
			Reply:    "Prefer whole foods over refined sugar. If you have a medical condition, follow your doctor's dietary guidance first.",
		},
		{
			Keywords: []string{"motivat"},
			Reply:    "Small consistent steps beat big bursts. Pick one habit you can repeat every day this week.",
		},
		{
			Keywords: []string{"hello", "hi ", "hey"},
			Reply:    "Hello! Ask me anything about food, training or recovery.",
		},
	}
}

// Responder matches messages against a rule table.
type Responder struct {
	rules    []Rule
	fallback string
	logger   zerolog.Logger
}

// ResponderConfig holds configuration for creating a Responder.
type ResponderConfig struct {
	// Rules overrides the built-in table when non-empty.
	Rules []Rule

	// Fallback overrides DefaultFallback when non-empty.
	Fallback string

	// Logger for responder operations.
	Logger zerolog.Logger
}

// NewResponder creates a responder.
func NewResponder(cfg ResponderConfig) *Responder {
	rules := cfg.Rules
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	fallback := cfg.Fallback
	if fallback == "" {
		fallback = DefaultFallback
	}
	return &Responder{
		rules:    rules,
		fallback: fallback,
		logger:   cfg.Logger.With().Str("component", "assistant").Logger(),
	}
}

// Reply returns the canned answer for the first rule whose keyword is a
// case-insensitive substring of the message, or the fallback.
func (r *Responder) Reply(message string) string {
	msg := strings.ToLower(strings.TrimSpace(message))
	if msg == "" {
		return r.fallback
	}

	for _, rule := range r.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(msg, strings.ToLower(kw)) {
				return rule.Reply
			}
		}
	}

	r.logger.Debug().Msg("assistant fallback reply")
	return r.fallback
}
