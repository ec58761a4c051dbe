package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rbradwell/language-learning/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCategory inserts a category with a unique name.
func SeedCategory(t *testing.T, pool *pgxpool.Pool) domain.Category {
	t.Helper()

	c := domain.Category{ID: uuid.New(), Name: "category-" + uniqueSuffix()}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO categories (id, name, position) VALUES ($1, $2, $3)`,
		c.ID, c.Name, c.Position,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}
	return c
}

// SeedTrail inserts a trail inside the category.
func SeedTrail(t *testing.T, pool *pgxpool.Pool, categoryID uuid.UUID) domain.Trail {
	t.Helper()

	tr := domain.Trail{ID: uuid.New(), CategoryID: categoryID, Name: "trail-" + uniqueSuffix()}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO trails (id, category_id, name, position) VALUES ($1, $2, $3, $4)`,
		tr.ID, tr.CategoryID, tr.Name, tr.Position,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTrail: %v", err)
	}
	return tr
}

// SeedTrailStep inserts a step with the given number and passing score.
func SeedTrailStep(t *testing.T, pool *pgxpool.Pool, trailID uuid.UUID, stepNumber, passingScore int) domain.TrailStep {
	t.Helper()

	s := domain.TrailStep{
		ID:           uuid.New(),
		TrailID:      trailID,
		Name:         "step-" + uniqueSuffix(),
		Type:         "vocabulary",
		StepNumber:   stepNumber,
		PassingScore: passingScore,
		TimeLimit:    300,
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO trail_steps (id, trail_id, name, type, step_number, passing_score, time_limit)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.TrailID, s.Name, s.Type, s.StepNumber, s.PassingScore, s.TimeLimit,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTrailStep: %v", err)
	}
	return s
}

// SeedVocabulary inserts a vocabulary item.
func SeedVocabulary(t *testing.T, pool *pgxpool.Pool, categoryID uuid.UUID, native, target string, difficulty int) domain.Vocabulary {
	t.Helper()

	v := domain.Vocabulary{
		ID:            uuid.New(),
		CategoryID:    categoryID,
		NativeWord:    native,
		TargetWord:    target,
		Pronunciation: "",
		Difficulty:    difficulty,
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO vocabularies (id, category_id, native_word, target_word, pronunciation, difficulty)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		v.ID, v.CategoryID, v.NativeWord, v.TargetWord, v.Pronunciation, v.Difficulty,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVocabulary: %v", err)
	}
	return v
}

// SeedSentence inserts a sentence referencing the given vocabulary ids.
func SeedSentence(t *testing.T, pool *pgxpool.Pool, categoryID uuid.UUID, native, target string, vocabularyIDs []uuid.UUID, difficulty int) domain.Sentence {
	t.Helper()

	s := domain.Sentence{
		ID:             uuid.New(),
		CategoryID:     categoryID,
		NativeText:     native,
		TargetText:     target,
		VocabularyIDs:  vocabularyIDs,
		Difficulty:     difficulty,
		SentenceLength: len([]rune(target)),
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO sentences (id, category_id, native_text, target_text, vocabulary_ids, difficulty, sentence_length)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.CategoryID, s.NativeText, s.TargetText, s.VocabularyIDs, s.Difficulty, s.SentenceLength,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSentence: %v", err)
	}
	return s
}

// SeedExercise inserts an exercise definition as-is.
func SeedExercise(t *testing.T, pool *pgxpool.Pool, def domain.ExerciseDefinition) domain.ExerciseDefinition {
	t.Helper()

	if def.ID == uuid.Nil {
		def.ID = uuid.New()
	}
	vocab := def.VocabularyIDs
	if vocab == nil {
		vocab = []uuid.UUID{}
	}
	sentences := def.SentenceIDs
	if sentences == nil {
		sentences = []uuid.UUID{}
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO exercises (id, kind, trail_step_id, instructions, vocabulary_ids, sentence_ids, missing_word_count)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		def.ID, string(def.Kind), def.TrailStepID, def.Instructions, vocab, sentences, def.MissingWordCount,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedExercise: %v", err)
	}
	return def
}

// Fixture is a small catalog: one category, one trail with two steps, five
// vocabulary items and one vocabulary_matching exercise on step one.
type Fixture struct {
	Category   domain.Category
	Trail      domain.Trail
	Step1      domain.TrailStep
	Step2      domain.TrailStep
	Vocabulary []domain.Vocabulary
	Exercise   domain.ExerciseDefinition
}

// SeedFixture seeds a Fixture.
func SeedFixture(t *testing.T, pool *pgxpool.Pool) Fixture {
	t.Helper()

	f := Fixture{}
	f.Category = SeedCategory(t, pool)
	f.Trail = SeedTrail(t, pool, f.Category.ID)
	f.Step1 = SeedTrailStep(t, pool, f.Trail.ID, 1, 70)
	f.Step2 = SeedTrailStep(t, pool, f.Trail.ID, 2, 75)

	words := [][2]string{{"I", "我"}, {"like", "喜欢"}, {"eat", "吃"}, {"apple", "苹果"}, {"water", "水"}}
	ids := make([]uuid.UUID, 0, len(words))
	for i, w := range words {
		v := SeedVocabulary(t, pool, f.Category.ID, w[0], w[1], 1+i%3)
		f.Vocabulary = append(f.Vocabulary, v)
		ids = append(ids, v.ID)
	}

	f.Exercise = SeedExercise(t, pool, domain.NewVocabularyExercise(uuid.New(), f.Step1.ID, "Match the words", ids))
	return f
}
