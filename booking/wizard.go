// Package booking implements the booking wizard (Service, Details, Contact,
// Confirm), its server-side sessions, the success screen and the bookings
// list.
package booking

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"net/url"

	"chefreel/models"
)

type Step int

const (
	StepService Step = iota + 1
	StepDetails
	StepContact
	StepConfirm
)

type StepInfo struct {
	ID          Step   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

var Steps = []StepInfo{
	{StepService, "Service", "Choose your experience"},
	{StepDetails, "Details", "Date, time & location"},
	{StepContact, "Contact", "Your information"},
	{StepConfirm, "Confirm", "Review & book"},
}

func (s Step) String() string {
	if s < StepService || s > StepConfirm {
		return fmt.Sprintf("Step(%d)", int(s))
	}
	return Steps[s-1].Title
}

var (
	ErrStepIncomplete = errors.New("booking: current step is incomplete")
	ErrFinalStep      = errors.New("booking: already on the final step")
	ErrUnknownService = errors.New("booking: unknown service")
	ErrWrongStep      = errors.New("booking: not allowed on the current step")
	ErrNoServices     = errors.New("booking: chef offers no bookable services")
)

// Policy decides how strictly the Details and Contact steps are checked.
type Policy int

const (
	// PolicyLax only requires the fields to be present.
	PolicyLax Policy = iota
	// PolicyStrict also requires guests within the service bounds and a
	// parseable email address.
	PolicyStrict
)

func (p Policy) String() string {
	if p == PolicyStrict {
		return "strict"
	}
	return "lax"
}

type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Details is the payload of the Details step.
type Details struct {
	Date            string `json:"date"`
	Time            string `json:"time"`
	Guests          int    `json:"guests"`
	Location        string `json:"location"`
	SpecialRequests string `json:"specialRequests"`
}

// Draft accumulates the booking across steps. Going back never clears it.
type Draft struct {
	Service *models.Service `json:"service"`
	Details
	Contact Contact `json:"contact"`
}

func NewDraft() Draft {
	return Draft{Details: Details{Guests: 2}}
}

type Confirmation struct {
	ChefID   string `json:"chefId"`
	Redirect string `json:"redirect"`
	Total    int    `json:"total"`
	Draft    Draft  `json:"draft"`
}

// Wizard is the linear four-step booking flow for one chef. It is not safe
// for concurrent use.
type Wizard struct {
	chef   models.Chef
	policy Policy
	step   Step
	draft  Draft
}

func NewWizard(chef models.Chef, policy Policy) (*Wizard, error) {
	if len(chef.Services) == 0 {
		return nil, fmt.Errorf("chef %q: %w", chef.ID, ErrNoServices)
	}
	return &Wizard{
		chef:   chef,
		policy: policy,
		step:   StepService,
		draft:  NewDraft(),
	}, nil
}

func (w *Wizard) Chef() models.Chef { return w.chef }
func (w *Wizard) Step() Step        { return w.step }
func (w *Wizard) Policy() Policy    { return w.policy }

// Draft returns a copy of the accumulated draft.
func (w *Wizard) Draft() Draft {
	d := w.draft
	if d.Service != nil {
		s := *d.Service
		d.Service = &s
	}
	return d
}

// CanAdvance reports whether the current step's required fields are filled.
func (w *Wizard) CanAdvance() bool {
	return w.stepComplete(w.step)
}

func (w *Wizard) stepComplete(s Step) bool {
	d := w.draft
	switch s {
	case StepService:
		return d.Service != nil
	case StepDetails:
		if d.Date == "" || d.Time == "" || d.Location == "" || d.Guests <= 0 {
			return false
		}
		return w.policy == PolicyLax || w.guestsInRange()
	case StepContact:
		if d.Contact.Name == "" || d.Contact.Email == "" || d.Contact.Phone == "" {
			return false
		}
		return w.policy == PolicyLax || validEmail(d.Contact.Email)
	case StepConfirm:
		return true
	}
	return false
}

// Next moves forward one step when the current step is complete.
func (w *Wizard) Next() error {
	if w.step == StepConfirm {
		return ErrFinalStep
	}
	if !w.CanAdvance() {
		return fmt.Errorf("%s: %w", w.step, ErrStepIncomplete)
	}
	w.step++
	return nil
}

// Back moves back one step. On the first step it reports true: the user
// leaves the wizard.
func (w *Wizard) Back() (exited bool) {
	if w.step == StepService {
		return true
	}
	w.step--
	return false
}

// SelectService picks a service and moves straight to Details.
func (w *Wizard) SelectService(id string) error {
	if w.step != StepService {
		return fmt.Errorf("select service on %s: %w", w.step, ErrWrongStep)
	}
	svc, ok := w.chef.Service(id)
	if !ok {
		return fmt.Errorf("service %q: %w", id, ErrUnknownService)
	}
	w.draft.Service = &svc
	w.step = StepDetails
	return nil
}

// SetDetails replaces the Details fields. Guests are stored as given, even
// outside the service bounds; see Warnings.
func (w *Wizard) SetDetails(d Details) error {
	if w.step != StepDetails {
		return fmt.Errorf("set details on %s: %w", w.step, ErrWrongStep)
	}
	w.draft.Details = d
	return nil
}

func (w *Wizard) SetContact(c Contact) error {
	if w.step != StepContact {
		return fmt.Errorf("set contact on %s: %w", w.step, ErrWrongStep)
	}
	w.draft.Contact = c
	return nil
}

// TotalPrice is price per person times guests, or 0 with no service.
func (w *Wizard) TotalPrice() int {
	if w.draft.Service == nil {
		return 0
	}
	return w.draft.Service.Price * w.draft.Guests
}

// Warnings lists draft problems the lax policy lets through.
func (w *Wizard) Warnings() []string {
	out := []string{}
	if w.draft.Service != nil && w.draft.Guests > 0 && !w.guestsInRange() {
		out = append(out, fmt.Sprintf("guests must be between %d and %d for %s",
			w.draft.Service.MinGuests, w.draft.Service.MaxGuests, w.draft.Service.Name))
	}
	if e := w.draft.Contact.Email; e != "" && !validEmail(e) {
		out = append(out, fmt.Sprintf("%q is not a valid email address", e))
	}
	return out
}

// Confirm finishes the flow. Nothing is persisted: the result only carries
// the redirect to the success screen.
func (w *Wizard) Confirm() (Confirmation, error) {
	if w.step != StepConfirm {
		return Confirmation{}, fmt.Errorf("confirm on %s: %w", w.step, ErrWrongStep)
	}
	for s := StepService; s < StepConfirm; s++ {
		if !w.stepComplete(s) {
			return Confirmation{}, fmt.Errorf("%s: %w", s, ErrStepIncomplete)
		}
	}
	return Confirmation{
		ChefID:   w.chef.ID,
		Redirect: "/booking-success?chef=" + url.QueryEscape(w.chef.ID),
		Total:    w.TotalPrice(),
		Draft:    w.Draft(),
	}, nil
}

func (w *Wizard) guestsInRange() bool {
	s := w.draft.Service
	return s != nil && w.draft.Guests >= s.MinGuests && w.draft.Guests <= s.MaxGuests
}

func validEmail(addr string) bool {
	_, err := mail.ParseAddress(addr)
	return err == nil
}

type wizardState struct {
	Chef   models.Chef `json:"chef"`
	Policy Policy      `json:"policy"`
	Step   Step        `json:"step"`
	Draft  Draft       `json:"draft"`
}

func (w *Wizard) MarshalJSON() ([]byte, error) {
	return json.Marshal(wizardState{Chef: w.chef, Policy: w.policy, Step: w.step, Draft: w.draft})
}

func (w *Wizard) UnmarshalJSON(b []byte) error {
	var st wizardState
	if err := json.Unmarshal(b, &st); err != nil {
		return err
	}
	if st.Step < StepService || st.Step > StepConfirm {
		return fmt.Errorf("booking: stored wizard has invalid step %d", st.Step)
	}
	*w = Wizard{chef: st.Chef, policy: st.Policy, step: st.Step, draft: st.Draft}
	return nil
}
