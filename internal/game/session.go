// Package game implements a single round of the guessing game: a hidden
// target country and the ordered guesses made against it.
package game

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tatianab/worldle/internal/directory"
	"github.com/tatianab/worldle/internal/geo"
	"github.com/tatianab/worldle/internal/models"
)

var (
	ErrUnknownCountry = errors.New("unknown country")
	ErrDuplicateGuess = errors.New("country already guessed")
	ErrSessionOver    = errors.New("session is over")
	ErrEmptyDirectory = errors.New("directory has no countries")
)

// UnknownCountryError rejects input that names no country. Suggestion holds
// a close display name when one exists.
type UnknownCountryError struct {
	Input      string
	Suggestion string
}

func (e *UnknownCountryError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown country %q (did you mean %s?)", e.Input, e.Suggestion)
	}
	return fmt.Sprintf("unknown country %q", e.Input)
}

func (e *UnknownCountryError) Is(target error) bool {
	return target == ErrUnknownCountry
}

// State is the round's outcome so far.
type State int

const (
	InProgress State = iota
	Won
	Abandoned
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "IN_PROGRESS"
	case Won:
		return "WON"
	case Abandoned:
		return "ABANDONED"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Terminal reports whether no more guesses are accepted.
func (s State) Terminal() bool {
	return s == Won || s == Abandoned
}

// Rand picks the target. *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Result describes one recorded guess relative to the target.
type Result struct {
	Code       string
	Name       string
	DistanceKm float64
	Bearing    float64
	Direction  geo.Direction
	State      State // session state when the result was produced
}

// Session is one round. It is not safe for concurrent use.
type Session struct {
	id      string
	dir     *directory.Directory
	target  models.Country
	guesses []string
	state   State
}

// Start begins a round with a target drawn uniformly from dir.
func Start(dir *directory.Directory, rng Rand) (*Session, error) {
	codes := dir.AllCodes()
	if len(codes) == 0 {
		return nil, ErrEmptyDirectory
	}
	return NewWithTarget(dir, codes[rng.IntN(len(codes))])
}

// NewWithTarget begins a round with a known target.
func NewWithTarget(dir *directory.Directory, code string) (*Session, error) {
	target, ok := dir.Get(code)
	if !ok {
		return nil, fmt.Errorf("target %q: %w", code, ErrUnknownCountry)
	}
	s := &Session{id: uuid.NewString(), dir: dir, target: target, state: InProgress}
	log.Debug().Str("round", s.id).Str("target", target.Code).Str("name", target.Name).Msg("secret country selected")
	return s, nil
}

// SubmitGuess resolves text to a country and records it as a guess.
// Rejected guesses leave the session unchanged.
func (s *Session) SubmitGuess(text string) (Result, error) {
	if s.state.Terminal() {
		return Result{State: s.state}, ErrSessionOver
	}

	code, ok := s.dir.ResolveName(text)
	if !ok {
		err := &UnknownCountryError{Input: text}
		if name, ok := s.dir.Nearest(text); ok {
			err.Suggestion = name
		}
		return Result{State: s.state}, err
	}
	if s.Guessed(code) {
		country, _ := s.dir.Get(code)
		return Result{State: s.state}, fmt.Errorf("%s: %w", country.Name, ErrDuplicateGuess)
	}

	s.guesses = append(s.guesses, code)
	if code == s.target.Code {
		s.state = Won
		log.Debug().Str("round", s.id).Int("tries", len(s.guesses)).Msg("target found")
	}
	return s.result(code, s.state), nil
}

// GiveUp abandons the round.
func (s *Session) GiveUp() error {
	if s.state.Terminal() {
		return ErrSessionOver
	}
	s.state = Abandoned
	log.Debug().Str("round", s.id).Int("tries", len(s.guesses)).Msg("session abandoned")
	return nil
}

// ID identifies the round in logs.
func (s *Session) ID() string {
	return s.id
}

// State returns the current outcome.
func (s *Session) State() State {
	return s.state
}

// Target returns the hidden country.
func (s *Session) Target() models.Country {
	return s.target
}

// Tries returns the number of recorded guesses.
func (s *Session) Tries() int {
	return len(s.guesses)
}

// Guessed reports whether code was already guessed this round.
func (s *Session) Guessed(code string) bool {
	c, ok := s.dir.Get(code)
	return ok && slices.Contains(s.guesses, c.Code)
}

// Guesses returns every recorded guess in the order it was made, each as
// it was reported when submitted.
func (s *Session) Guesses() []Result {
	out := make([]Result, len(s.guesses))
	for i, code := range s.guesses {
		state := InProgress
		if code == s.target.Code {
			state = Won
		}
		out[i] = s.result(code, state)
	}
	return out
}

func (s *Session) result(code string, state State) Result {
	country, _ := s.dir.Get(code)
	m := geo.Measure(country.Point(), s.target.Point())
	return Result{
		Code:       country.Code,
		Name:       country.Name,
		DistanceKm: m.DistanceKm,
		Bearing:    m.Bearing,
		Direction:  m.Direction,
		State:      state,
	}
}
