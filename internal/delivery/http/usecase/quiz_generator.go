package usecase

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/delivery/http/entity"
)

// ErrEmptyLessonContent is returned when a lesson has no vocabulary and no
// phrases. The caller must not create a quiz session in that case.
var ErrEmptyLessonContent = errors.New("lesson has no vocabulary or phrases to quiz on")

const distractorsPerQuestion = 3

// QuizGenerator derives quiz questions from lesson content. Option order and
// distractor choice are randomized per call through rnd, so the same lesson
// yields a differently shuffled quiz each time. Tests inject a seeded source.
type QuizGenerator struct {
	rnd *rand.Rand
}

func NewQuizGenerator(rnd *rand.Rand) *QuizGenerator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &QuizGenerator{rnd: rnd}
}

// Generate builds one question per vocabulary item and one per phrase of the
// target lesson. The catalog is used only to source multiple-choice
// distractors; sibling lessons never contribute questions of their own.
func (g *QuizGenerator) Generate(lesson entity.LessonDetail, catalog []entity.LessonDetail) ([]entity.QuizQuestion, error) {
	if len(lesson.Vocabulary) == 0 && len(lesson.Phrases) == 0 {
		return nil, ErrEmptyLessonContent
	}

	meanings, words := buildDistractorPools(lesson, catalog)

	questions := make([]entity.QuizQuestion, 0, len(lesson.Vocabulary)+len(lesson.Phrases))
	seq := 0
	nextID := func() string {
		seq++
		return fmt.Sprintf("q%d", seq)
	}

	for i, v := range lesson.Vocabulary {
		// Every third item becomes a true/false check; the rest alternate
		// between word->meaning and meaning->word multiple choice.
		id := nextID()
		var q entity.QuizQuestion
		switch {
		case i%3 == 2:
			q = g.trueFalseQuestion(id, v, meanings)
		case i%2 == 0:
			q = g.choiceQuestion(id,
				fmt.Sprintf("What does %q mean?", v.Word),
				v.Meaning, meanings,
				fmt.Sprintf("%q means %q.", v.Word, v.Meaning))
		default:
			q = g.choiceQuestion(id,
				fmt.Sprintf("Which English word means %q?", v.Meaning),
				v.Word, words,
				fmt.Sprintf("%q means %q.", v.Word, v.Meaning))
		}
		if q.ID == "" {
			// Not enough distinct options in the whole catalog: degrade to
			// true/false instead of failing generation.
			q = g.trueFalseQuestion(id, v, meanings)
		}
		questions = append(questions, q)
	}

	for _, p := range lesson.Phrases {
		id := nextID()
		explanation := fmt.Sprintf("The phrase %q means %q.", p.Text, p.Meaning)

		if blanked, ok := blankOut(p.Example, p.Text); ok {
			questions = append(questions, fillBlankQuestion(id,
				"Fill in the blank: "+blanked, p.Text, explanation))
			continue
		}

		q := g.choiceQuestion(id,
			fmt.Sprintf("What does the phrase %q mean?", p.Text),
			p.Meaning, meanings, explanation)
		if q.ID == "" {
			// Same degradation policy as vocabulary, but phrases fall back to
			// free text entry.
			q = fillBlankQuestion(id,
				fmt.Sprintf("Type the English phrase that means %q.", p.Meaning),
				p.Text, explanation)
		}
		questions = append(questions, q)
	}

	return questions, nil
}

// choiceQuestion builds a multiple-choice question with 3 distractors drawn
// from pool. Returns the zero value when the pool cannot supply enough
// distinct distractors; the caller degrades the question type instead.
func (g *QuizGenerator) choiceQuestion(id, prompt, correct string, pool distractorPool, explanation string) entity.QuizQuestion {
	distractors := g.pickDistractors(pool, correct, distractorsPerQuestion)
	if len(distractors) < distractorsPerQuestion {
		return entity.QuizQuestion{}
	}

	options := append(distractors, correct)
	g.rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return entity.QuizQuestion{
		ID:          id,
		Type:        entity.QuestionMultipleChoice,
		Prompt:      prompt,
		Options:     options,
		Answers:     []string{correct},
		Points:      entity.PointsChoice,
		Explanation: explanation,
	}
}

// trueFalseQuestion asserts a word/meaning pairing that is deliberately wrong
// about half the time, pulling the wrong meaning from the distractor pool.
func (g *QuizGenerator) trueFalseQuestion(id string, v entity.VocabularyItem, meanings distractorPool) entity.QuizQuestion {
	shown := v.Meaning
	answer := "True"
	if g.rnd.Intn(2) == 1 {
		if wrong := g.pickDistractors(meanings, v.Meaning, 1); len(wrong) == 1 {
			shown = wrong[0]
			answer = "False"
		}
	}

	return entity.QuizQuestion{
		ID:          id,
		Type:        entity.QuestionTrueFalse,
		Prompt:      fmt.Sprintf("True or false: %q means %q.", v.Word, shown),
		Options:     []string{"True", "False"},
		Answers:     []string{answer},
		Points:      entity.PointsChoice,
		Explanation: fmt.Sprintf("%q means %q.", v.Word, v.Meaning),
	}
}

func fillBlankQuestion(id, prompt, answer, explanation string) entity.QuizQuestion {
	answers := []string{answer}
	if trimmed := strings.TrimRight(answer, ".!?"); trimmed != answer {
		answers = append(answers, trimmed)
	}

	return entity.QuizQuestion{
		ID:          id,
		Type:        entity.QuestionFillBlank,
		Prompt:      prompt,
		Answers:     answers,
		Points:      entity.PointsFillBlank,
		Explanation: explanation,
	}
}

// distractorPool separates the target lesson's own items from the rest of the
// catalog so selection can prefer in-lesson distractors.
type distractorPool struct {
	lesson  []string
	catalog []string
}

// pickDistractors selects up to n entries that differ from correct and from
// each other under trimmed, case-insensitive comparison. Same-lesson entries
// are exhausted first; the catalog only tops up the shortfall.
func (g *QuizGenerator) pickDistractors(pool distractorPool, correct string, n int) []string {
	seen := map[string]bool{normalizeAnswer(correct): true}

	take := func(candidates []string, want int) []string {
		distinct := make([]string, 0, len(candidates))
		for _, c := range candidates {
			key := normalizeAnswer(c)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			distinct = append(distinct, c)
		}

		g.rnd.Shuffle(len(distinct), func(i, j int) {
			distinct[i], distinct[j] = distinct[j], distinct[i]
		})

		if len(distinct) > want {
			distinct = distinct[:want]
		}
		return distinct
	}

	picked := take(pool.lesson, n)
	if len(picked) < n {
		picked = append(picked, take(pool.catalog, n-len(picked))...)
	}
	return picked
}

// buildDistractorPools collects meanings and words, split by whether they come
// from the target lesson or its siblings.
func buildDistractorPools(lesson entity.LessonDetail, catalog []entity.LessonDetail) (meanings, words distractorPool) {
	collect := func(l entity.LessonDetail) (ms, ws []string) {
		for _, v := range l.Vocabulary {
			ms = append(ms, v.Meaning)
			ws = append(ws, v.Word)
		}
		for _, p := range l.Phrases {
			ms = append(ms, p.Meaning)
		}
		return ms, ws
	}

	meanings.lesson, words.lesson = collect(lesson)
	for _, l := range catalog {
		if l.Slug == lesson.Slug {
			continue
		}
		ms, ws := collect(l)
		meanings.catalog = append(meanings.catalog, ms...)
		words.catalog = append(words.catalog, ws...)
	}
	return meanings, words
}

// blankOut replaces the first case-insensitive occurrence of phrase inside
// example with a blank. Reports false when the phrase does not occur.
func blankOut(example, phrase string) (string, bool) {
	if example == "" || phrase == "" {
		return "", false
	}
	idx := strings.Index(strings.ToLower(example), strings.ToLower(phrase))
	if idx < 0 {
		return "", false
	}
	return example[:idx] + "______" + example[idx+len(phrase):], true
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
