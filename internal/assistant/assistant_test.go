package assistant

import (
	"math/rand"
	"testing"
)

func TestReplyKeywordBranches(t *testing.T) {
	responder := New(rand.New(rand.NewSource(1)))

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "russian child keyword",
			message: "Можете посоветовать игры для детей?",
			want:    childResponse,
		},
		{
			name:    "russian child keyword in oblique case",
			message: "Чем заняться с детьми дома?",
			want:    childResponse,
		},
		{
			name:    "russian child keyword declined singular",
			message: "Как помочь ребенку с уроками?",
			want:    childResponse,
		},
		{
			name:    "kazakh child keyword",
			message: "Қалай балаларға ойын ұсынар едіңіз?",
			want:    childResponse,
		},
		{
			name:    "child keyword is case insensitive",
			message: "ДЕТИ не слушаются, что делать?",
			want:    childResponse,
		},
		{
			name:    "russian food keyword",
			message: "Что лучше готовить на ужин?",
			want:    foodResponse,
		},
		{
			name:    "kazakh food keyword",
			message: "Қандай тамақ пайдалы?",
			want:    foodResponse,
		},
		{
			name:    "child keyword wins over food",
			message: "Что готовить для детей?",
			want:    childResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := responder.Reply(tt.message); got != tt.want {
				t.Errorf("Reply(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestReplyFallbackIsFromGenericPool(t *testing.T) {
	responder := New(rand.New(rand.NewSource(42)))

	pool := make(map[string]bool, len(genericResponses))
	for _, response := range genericResponses {
		pool[response] = true
	}

	for i := 0; i < 20; i++ {
		got := responder.Reply("Расскажи что-нибудь")
		if !pool[got] {
			t.Fatalf("Reply() = %q, not in the generic pool", got)
		}
	}
}

func TestReplyFallbackDeterministicWithSeed(t *testing.T) {
	first := New(rand.New(rand.NewSource(7))).Reply("привет")
	second := New(rand.New(rand.NewSource(7))).Reply("привет")
	if first != second {
		t.Errorf("same seed produced %q and %q", first, second)
	}
}
