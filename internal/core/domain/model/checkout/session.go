package checkout

import (
	"errors"
	"strings"
	"time"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"
)

var (
	// ErrSessionIsNotConstructed is returned when using an improperly
	// initialized Session.
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")

	// ErrSessionIsComplete is returned when submitting a step to a session
	// that has already collected everything. The caller should commit (or
	// abandon) instead.
	ErrSessionIsComplete = errors.New("checkout session is already complete")
)

// promoSkipWord is what a customer answers to decline the promo question.
const promoSkipWord = "NON"

// Step names the stage a checkout session is waiting on. The HTTP layer
// echoes it back so the client knows what to ask the customer next.
type Step string

const (
	StepAddress  Step = "address"
	StepCity     Step = "city"
	StepDistance Step = "distance"
	StepPromo    Step = "promo"
	StepReady    Step = "ready"
)

// State is the closed set of checkout stages. Each stage carries exactly
// the answers collected so far, so an impossible combination (a city
// without an address, say) cannot be represented at all.
//
// The set is sealed: only the types in this package implement it.
type State interface {
	// Step names the stage for transport layers.
	Step() Step

	isState()
}

// AwaitingAddress is the initial stage: nothing collected yet.
type AwaitingAddress struct{}

// AwaitingCity holds the address and waits for the city.
type AwaitingCity struct {
	Address string
}

// AwaitingDistance holds address and city and waits for the distance.
type AwaitingDistance struct {
	Address string
	City    string
}

// AwaitingPromo holds everything but the promo answer.
type AwaitingPromo struct {
	Address  string
	City     string
	Distance kernel.Distance
}

// Ready is the terminal stage: all answers collected, the session can be
// priced and committed. PromoCode is "" when the customer declined.
type Ready struct {
	Address   string
	City      string
	Distance  kernel.Distance
	PromoCode string
}

func (AwaitingAddress) Step() Step  { return StepAddress }
func (AwaitingCity) Step() Step     { return StepCity }
func (AwaitingDistance) Step() Step { return StepDistance }
func (AwaitingPromo) Step() Step    { return StepPromo }
func (Ready) Step() Step            { return StepReady }

func (AwaitingAddress) isState()  {}
func (AwaitingCity) isState()     {}
func (AwaitingDistance) isState() {}
func (AwaitingPromo) isState()    {}
func (Ready) isState()            {}

// Session is one customer's in-flight checkout conversation. It collects
// the delivery answers step by step and ends in the Ready state, from which
// the commit handler prices and persists the order.
//
// Sessions live in memory only. Starting a new checkout replaces any
// existing session for the customer, and sessions untouched for longer
// than the configured TTL get swept.
type Session struct {
	// customerID identifies the customer going through checkout
	customerID kernel.UUID
	// state is the current stage with the answers collected so far
	state State
	// startedAt is when the checkout began
	startedAt time.Time
	// updatedAt is when the last answer arrived, for TTL sweeping
	updatedAt time.Time
	// isConstructed ensures the session was created via NewSession
	isConstructed bool
}

// NewSession starts a checkout conversation at the address stage.
//
// Parameters:
//   - customerID: Identifier of the customer checking out (must be valid UUID)
//   - startedAt: Conversation start time (must be non-zero)
//
// Returns:
//   - *Session: The created session waiting for an address
//   - error: Validation error if any parameter is invalid
func NewSession(customerID kernel.UUID, startedAt time.Time) (*Session, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	if startedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("startedAt")
	}

	return &Session{
		customerID:    customerID,
		state:         AwaitingAddress{},
		startedAt:     startedAt,
		updatedAt:     startedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Session instance was properly constructed.
func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}

	return nil
}

// CustomerID returns the checking-out customer's identifier.
func (s *Session) CustomerID() kernel.UUID {
	return s.customerID
}

// State returns the current stage with the answers collected so far.
func (s *Session) State() State {
	return s.state
}

// StartedAt returns when the checkout began.
func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

// UpdatedAt returns when the last answer arrived.
func (s *Session) UpdatedAt() time.Time {
	return s.updatedAt
}

// Submit feeds the customer's answer for the current stage and advances
// the session.
//
// Stage rules:
//   - address, city: non-blank free text
//   - distance: a number in kilometers; decimal comma accepted
//   - promo: any text, with "" and "non" (case-insensitive) meaning no promo
//
// Parameters:
//   - input: The customer's raw answer
//   - now: Submission time, recorded for TTL sweeping
//
// Returns:
//   - error: Validation error if the answer does not fit the current stage,
//     or ErrSessionIsComplete if the session is already in the Ready state
func (s *Session) Submit(input string, now time.Time) error {
	if err := s.Validate(); err != nil {
		return err
	}

	next, err := advance(s.state, input)
	if err != nil {
		return err
	}

	s.state = next
	if !now.IsZero() {
		s.updatedAt = now
	}
	return nil
}

// advance computes the next state for an answer. It is the whole transition
// table of the checkout conversation.
func advance(state State, input string) (State, error) {
	input = strings.TrimSpace(input)

	switch st := state.(type) {
	case AwaitingAddress:
		if input == "" {
			return nil, errs.NewValueIsRequiredError("address")
		}
		return AwaitingCity{Address: input}, nil

	case AwaitingCity:
		if input == "" {
			return nil, errs.NewValueIsRequiredError("city")
		}
		return AwaitingDistance{Address: st.Address, City: input}, nil

	case AwaitingDistance:
		distance, err := kernel.ParseDistance(input)
		if err != nil {
			return nil, err
		}
		return AwaitingPromo{Address: st.Address, City: st.City, Distance: distance}, nil

	case AwaitingPromo:
		promo := strings.ToUpper(input)
		if promo == promoSkipWord {
			promo = ""
		}
		return Ready{
			Address:   st.Address,
			City:      st.City,
			Distance:  st.Distance,
			PromoCode: promo,
		}, nil

	case Ready:
		return nil, ErrSessionIsComplete

	default:
		return nil, errs.NewValueIsInvalidError("state")
	}
}
