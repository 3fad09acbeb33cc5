// Package assistant generates the canned replies of the family AI helper.
// Replies come from substring keyword matching over the user's message, with
// a small pool of generic answers as fallback. There is no model inference.
package assistant

import (
	"math/rand"
	"strings"
	"time"
)

// Keyword groups are checked against the lowercased message. Terms cover
// Russian and Kazakh, the two languages the app's audience writes in.
// Russian nouns decline, so the child terms are stems: "дет" covers
// дети/детей/детьми, "ребенк" covers the oblique cases of ребенок, and
// "бала" covers балалар and its suffixed forms.
var (
	childKeywords = []string{"дет", "ребенок", "ребёнок", "ребенк", "ребёнк", "сын", "дочь", "бала"}
	foodKeywords  = []string{"еда", "готовить", "кухня", "тамақ", "асхана", "рецепт"}
)

const (
	childResponse = "Работа с детьми - это очень важная тема. Нужно уделять детям много времени, разговаривать с ними, играть. Важно поддерживать их интересы и помогать развиваться."
	foodResponse  = "Семейная готовка - это проявление любви и заботы. Рекомендую изучать традиционные рецепты. Привлекайте детей к приготовлению пищи."
)

// genericResponses is the fallback pool; one is drawn uniformly at random
// when no keyword matches.
var genericResponses = []string{
	"Это очень интересный вопрос! Я постараюсь вам помочь.",
	"Консультирование по семейным вопросам - моя специальность.",
	"Могу рассказать много полезного о работе с детьми.",
	"У меня есть рекомендации по организации домашнего хозяйства.",
	"Можете спросить о семейных традициях и праздниках.",
}

// Responder picks canned replies for user messages.
type Responder struct {
	rng *rand.Rand
}

// New creates a responder. A nil rng gets a time-seeded source; tests pass
// a fixed seed for deterministic fallback selection.
func New(rng *rand.Rand) *Responder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Responder{rng: rng}
}

// Reply returns the canned response for a user message.
func (r *Responder) Reply(message string) string {
	lowered := strings.ToLower(message)

	for _, keyword := range childKeywords {
		if strings.Contains(lowered, keyword) {
			return childResponse
		}
	}
	for _, keyword := range foodKeywords {
		if strings.Contains(lowered, keyword) {
			return foodResponse
		}
	}

	return genericResponses[r.rng.Intn(len(genericResponses))]
}
