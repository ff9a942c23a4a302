package assistant_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/vitaplan/vitaplan/internal/assistant"
)

func newResponder() *assistant.Responder {
	return assistant.NewResponder(assistant.ResponderConfig{Logger: zerolog.Nop()})
}

func TestReply_KeywordMatching(t *testing.T) {
	r := newResponder()

	tests := []struct {
		name     string
		message  string
		contains string
	}{
		{name: "protein question", message: "How much PROTEIN do I need?", contains: "protein sources"},
		{name: "hydration stem match", message: "tips for staying hydrated", contains: "litres of water"},
		{name: "weight loss phrase", message: "best plan to lose weight fast", contains: "calorie deficit"},
		{name: "condition guidance", message: "is sugar bad for diabetics", contains: "doctor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, r.Reply(tt.message), tt.contains)
		})
	}
}

func TestReply_FirstMatchingRuleWins(t *testing.T) {
	r := assistant.NewResponder(assistant.ResponderConfig{
		Rules: []assistant.Rule{
			{Keywords: []string{"water"}, Reply: "first"},
			{Keywords: []string{"water"}, Reply: "second"},
		},
		Logger: zerolog.Nop(),
	})

	assert.Equal(t, "first", r.Reply("water please"))
}

func TestReply_Fallback(t *testing.T) {
	r := newResponder()

	assert.Equal(t, assistant.DefaultFallback, r.Reply("what is the meaning of life"))
	assert.Equal(t, assistant.DefaultFallback, r.Reply("   "))
}

func TestReply_CustomFallback(t *testing.T) {
	r := assistant.NewResponder(assistant.ResponderConfig{
		Fallback: "ask me about food",
		Logger:   zerolog.Nop(),
	})

	assert.Equal(t, "ask me about food", r.Reply("unrelated"))
}
