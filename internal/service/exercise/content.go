package exercise

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/rbradwell/language-learning/internal/domain"
)

// buildContent loads the rendering payload for a new session and returns the
// vocabulary ids to link to it.
func (s *Service) buildContent(ctx context.Context, def domain.ExerciseDefinition) (Content, []uuid.UUID, error) {
	if def.Kind.UsesSentences() {
		return s.sentenceContent(ctx, def)
	}
	return s.vocabularyContent(ctx, def)
}

// vocabularyContent fetches the exercise words and, when there are too few
// to form one correct option plus distractorCount wrong ones, tops the pool up
// with other words from the same category.
func (s *Service) vocabularyContent(ctx context.Context, def domain.ExerciseDefinition) (Content, []uuid.UUID, error) {
	words, err := s.vocabulary.GetByIDs(ctx, def.VocabularyIDs)
	if err != nil {
		return Content{}, nil, fmt.Errorf("get exercise vocabulary: %w", err)
	}

	minOptions := s.distractorCount + 1
	if len(words) > 0 && len(words) < minOptions {
		included := lo.Map(words, func(v domain.Vocabulary, _ int) uuid.UUID { return v.ID })
		extra, err := s.vocabulary.ListBackfill(ctx, words[0].CategoryID, included, minOptions-len(words))
		if err != nil {
			return Content{}, nil, fmt.Errorf("backfill vocabulary: %w", err)
		}
		words = append(words, extra...)
		sortVocabulary(words)
	}

	content := Content{
		Instructions: def.Instructions,
		Vocabulary:   words,
	}
	return content, lo.Map(words, func(v domain.Vocabulary, _ int) uuid.UUID { return v.ID }), nil
}

// sentenceContent fetches the exercise sentences and every word they use,
// the latter in first-seen order across the sentences.
func (s *Service) sentenceContent(ctx context.Context, def domain.ExerciseDefinition) (Content, []uuid.UUID, error) {
	sentences, err := s.sentences.GetByIDs(ctx, def.SentenceIDs)
	if err != nil {
		return Content{}, nil, fmt.Errorf("get exercise sentences: %w", err)
	}

	var ids []uuid.UUID
	for _, sn := range sentences {
		ids = append(ids, sn.VocabularyIDs...)
	}
	ids = lo.Uniq(ids)

	words, err := s.wordsInOrder(ctx, ids)
	if err != nil {
		return Content{}, nil, err
	}

	content := Content{
		Instructions:     def.Instructions,
		Sentences:        sentences,
		Vocabulary:       words,
		MissingWordCount: def.MissingWordCount,
	}
	return content, lo.Map(words, func(v domain.Vocabulary, _ int) uuid.UUID { return v.ID }), nil
}

// sessionContent re-fetches the payload of an existing session. Vocabulary
// sessions render the word pool linked at creation so backfilled words stay
// the same; sessions without links are rebuilt from the exercise.
func (s *Service) sessionContent(ctx context.Context, sessionID uuid.UUID, def domain.ExerciseDefinition) (Content, error) {
	if !def.Kind.UsesSentences() {
		linked, err := s.sessions.ListVocabularyIDs(ctx, sessionID)
		if err != nil {
			return Content{}, fmt.Errorf("list session vocabulary: %w", err)
		}
		if len(linked) > 0 {
			words, err := s.vocabulary.GetByIDs(ctx, linked)
			if err != nil {
				return Content{}, fmt.Errorf("get session vocabulary: %w", err)
			}
			return Content{Instructions: def.Instructions, Vocabulary: words}, nil
		}
	}

	content, _, err := s.buildContent(ctx, def)
	return content, err
}

// wordsInOrder fetches vocabulary and returns it in the order of ids,
// skipping ids that no longer exist.
func (s *Service) wordsInOrder(ctx context.Context, ids []uuid.UUID) ([]domain.Vocabulary, error) {
	if len(ids) == 0 {
		return []domain.Vocabulary{}, nil
	}

	fetched, err := s.vocabulary.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get sentence vocabulary: %w", err)
	}

	byID := lo.KeyBy(fetched, func(v domain.Vocabulary) uuid.UUID { return v.ID })
	return lo.FilterMap(ids, func(id uuid.UUID, _ int) (domain.Vocabulary, bool) {
		v, ok := byID[id]
		return v, ok
	}), nil
}

// sortVocabulary orders words by (difficulty, id), the order the store
// returns them in.
func sortVocabulary(words []domain.Vocabulary) {
	slices.SortStableFunc(words, func(a, b domain.Vocabulary) int {
		if c := cmp.Compare(a.Difficulty, b.Difficulty); c != 0 {
			return c
		}
		return bytes.Compare(a.ID[:], b.ID[:])
	})
}
