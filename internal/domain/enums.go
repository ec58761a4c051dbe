package domain

// ExerciseKind discriminates the three exercise variants.
type ExerciseKind string

const (
	ExerciseKindVocabularyMatching ExerciseKind = "vocabulary_matching"
	ExerciseKindSentenceCompletion ExerciseKind = "sentence_completion"
	ExerciseKindFillBlanks         ExerciseKind = "fill_blanks"
)

func (k ExerciseKind) String() string { return string(k) }

func (k ExerciseKind) IsValid() bool {
	switch k {
	case ExerciseKindVocabularyMatching, ExerciseKindSentenceCompletion, ExerciseKindFillBlanks:
		return true
	}
	return false
}

// UsesSentences reports whether the kind is built from sentences rather than
// a plain vocabulary list.
func (k ExerciseKind) UsesSentences() bool {
	return k == ExerciseKindSentenceCompletion || k == ExerciseKindFillBlanks
}

// SessionStatus is the lifecycle state of an exercise session.
type SessionStatus string

const (
	SessionStatusInProgress SessionStatus = "in_progress"
	SessionStatusCompleted  SessionStatus = "completed"
	SessionStatusAbandoned  SessionStatus = "abandoned"
)

func (s SessionStatus) String() string { return string(s) }

func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionStatusInProgress, SessionStatusCompleted, SessionStatusAbandoned:
		return true
	}
	return false
}

// ExerciseDirection selects which side of a vocabulary pair the user answers with.
type ExerciseDirection string

const (
	DirectionNativeToTarget ExerciseDirection = "native_to_target"
	DirectionTargetToNative ExerciseDirection = "target_to_native"
)

func (d ExerciseDirection) String() string { return string(d) }

func (d ExerciseDirection) IsValid() bool {
	switch d {
	case DirectionNativeToTarget, DirectionTargetToNative:
		return true
	}
	return false
}

// OrDefault returns native_to_target for an empty direction.
func (d ExerciseDirection) OrDefault() ExerciseDirection {
	if d == "" {
		return DirectionNativeToTarget
	}
	return d
}
