package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// LeverageTag is one job-search action recorded for a week.
type LeverageTag string

const (
	LeverageApplicationSent LeverageTag = "Job application sent"
	LeveragePortfolio       LeverageTag = "Portfolio updated"
	LeverageCaseStudy       LeverageTag = "Case study updated"
	LeverageRecruiter       LeverageTag = "Recruiter outreach"
	LeverageInterviewPrep   LeverageTag = "Interview prep"
	LeverageInterview       LeverageTag = "Interview completed"
	LeverageOffer           LeverageTag = "Offer discussion"
	LeverageNone            LeverageTag = "No progress this week"
)

// LeverageOptions lists every leverage tag in display order, sentinel last.
var LeverageOptions = []LeverageTag{
	LeverageApplicationSent,
	LeveragePortfolio,
	LeverageCaseStudy,
	LeverageRecruiter,
	LeverageInterviewPrep,
	LeverageInterview,
	LeverageOffer,
	LeverageNone,
}

func (LeverageTag) sentinel() LeverageTag { return LeverageNone }

// DecisionTag is one decision-ownership observation for a week.
type DecisionTag string

const (
	DecisionLedProduct   DecisionTag = "Led product decision"
	DecisionFeedback     DecisionTag = "Turned feedback into decision"
	DecisionTradeOffs    DecisionTag = "Documented trade-offs"
	DecisionStakeholders DecisionTag = "Aligned stakeholders"
	DecisionObserved     DecisionTag = "Observed but did not lead"
	DecisionNone         DecisionTag = "No decision ownership"
)

// DecisionOptions lists every decision tag in display order, sentinel last.
var DecisionOptions = []DecisionTag{
	DecisionLedProduct,
	DecisionFeedback,
	DecisionTradeOffs,
	DecisionStakeholders,
	DecisionObserved,
	DecisionNone,
}

func (DecisionTag) sentinel() DecisionTag { return DecisionNone }

// FrontendTag is one piece of build output for a week.
type FrontendTag string

const (
	FrontendNewFeature FrontendTag = "Coded new feature"
	FrontendImproved   FrontendTag = "Improved existing code"
	FrontendRefactored FrontendTag = "Refactored code"
	FrontendBasics     FrontendTag = "Practiced basics"
	FrontendDebugged   FrontendTag = "Debugged issues"
	FrontendNone       FrontendTag = "No frontend work"
)

// FrontendOptions lists every frontend tag in display order, sentinel last.
var FrontendOptions = []FrontendTag{
	FrontendNewFeature,
	FrontendImproved,
	FrontendRefactored,
	FrontendBasics,
	FrontendDebugged,
	FrontendNone,
}

func (FrontendTag) sentinel() FrontendTag { return FrontendNone }

// tag is satisfied by the closed tag vocabularies above. Each knows its own
// "nothing happened" sentinel.
type tag[T any] interface {
	~string
	sentinel() T
}

// TagSet holds either nothing, the explicit "none recorded" marker, or an
// ordered set of real tags. The marker and real tags never coexist.
type TagSet[T tag[T]] struct {
	none bool
	tags []T
}

// NewTagSet builds a set from raw tags. Duplicates collapse to their first
// occurrence. If the sentinel appears anywhere the result is the none marker.
func NewTagSet[T tag[T]](tags ...T) TagSet[T] {
	var zero T
	none := zero.sentinel()

	var s TagSet[T]
	seen := make(map[T]struct{}, len(tags))
	for _, t := range tags {
		if t == "" {
			continue
		}
		if t == none {
			return TagSet[T]{none: true}
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		s.tags = append(s.tags, t)
	}
	return s
}

// NoneRecorded returns the explicit "no progress" marker.
func NoneRecorded[T tag[T]]() TagSet[T] {
	return TagSet[T]{none: true}
}

// IsEmpty reports whether nothing at all was answered.
func (s TagSet[T]) IsEmpty() bool { return !s.none && len(s.tags) == 0 }

// IsNone reports whether the none marker was recorded.
func (s TagSet[T]) IsNone() bool { return s.none }

// HasProgress reports whether at least one real tag is present.
func (s TagSet[T]) HasProgress() bool { return len(s.tags) > 0 }

// Count is the number of real tags.
func (s TagSet[T]) Count() int { return len(s.tags) }

// Tags returns a copy of the real tags in insertion order.
func (s TagSet[T]) Tags() []T {
	out := make([]T, len(s.tags))
	copy(out, s.tags)
	return out
}

// Contains reports whether t is selected. The sentinel is selected exactly
// when the none marker is set.
func (s TagSet[T]) Contains(t T) bool {
	var zero T
	if t == zero.sentinel() {
		return s.none
	}
	for _, have := range s.tags {
		if have == t {
			return true
		}
	}
	return false
}

// Selected returns what a picker should show as checked, including the
// sentinel when the none marker is set.
func (s TagSet[T]) Selected() []T {
	if s.none {
		var zero T
		return []T{zero.sentinel()}
	}
	return s.Tags()
}

// Toggle flips one tag. Picking the sentinel clears real tags; picking a real
// tag clears the sentinel.
func (s TagSet[T]) Toggle(t T) TagSet[T] {
	var zero T
	if t == zero.sentinel() {
		if s.none {
			return TagSet[T]{}
		}
		return TagSet[T]{none: true}
	}
	if s.Contains(t) {
		var kept []T
		for _, have := range s.tags {
			if have != t {
				kept = append(kept, have)
			}
		}
		return TagSet[T]{tags: kept}
	}
	return TagSet[T]{tags: append(s.Tags(), t)}
}

// MarshalJSON encodes the set as a string array, the none marker as a
// single-element array holding the sentinel.
func (s TagSet[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Selected())
}

// UnmarshalJSON accepts an array, a bare string, or null.
func (s *TagSet[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = TagSet[T]{}
		return nil
	}
	if data[0] == '"' {
		var one string
		if err := json.Unmarshal(data, &one); err != nil {
			return fmt.Errorf("decode tag: %w", err)
		}
		*s = NewTagSet(T(one))
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("decode tag set: %w", err)
	}
	tags := make([]T, len(many))
	for i, v := range many {
		tags[i] = T(v)
	}
	*s = NewTagSet(tags...)
	return nil
}
