package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/looplab/fsm"
	"go.uber.org/zap"

	"github.com/soaringjerry/ipss-selfcheck/internal/utils"
)

const (
	eventSubmit  = "submit"
	eventSucceed = "succeed"
	eventFail    = "fail"
)

// FormController owns the questionnaire state: identity, answers, quality of life, consent and
// the submission lifecycle. It is safe for concurrent use; observers registered with Subscribe
// are called after every mutation, outside the lock.
type FormController struct {
	mu             sync.Mutex
	identity       Identity
	answers        AnswerSet
	qol            *int
	consent        bool
	lifecycle      *fsm.FSM
	message        string
	errText        string
	submittedTotal *int

	submitter Submitter
	journal   AttemptRecorder
	location  Location
	locale    string
	logger    *zap.Logger
	now       func() time.Time
	idGen     func() string

	obsMu     sync.Mutex
	observers map[int]func(Snapshot)
	nextObs   int
}

// Option configures a FormController.
type Option func(*FormController)

// WithLocation sets the page location read by every submit.
func WithLocation(loc Location) Option { return func(c *FormController) { c.location = loc } }

// WithJournal records every terminal submit outcome.
func WithJournal(j AttemptRecorder) Option { return func(c *FormController) { c.journal = j } }

// WithLocale selects the message catalog.
func WithLocale(locale string) Option { return func(c *FormController) { c.locale = locale } }

// WithLogger sets the structured logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *FormController) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewFormController constructs an empty form bound to submitter.
func NewFormController(submitter Submitter, opts ...Option) *FormController {
	c := &FormController{
		answers:   AnswerSet{},
		submitter: submitter,
		location:  StaticLocation(""),
		locale:    "en",
		logger:    zap.NewNop(),
		now:       func() time.Time { return time.Now().UTC() },
		idGen:     uuid.NewString,
		observers: map[int]func(Snapshot){},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.lifecycle = fsm.NewFSM(
		string(StateIdle),
		fsm.Events{
			{Name: eventSubmit, Src: []string{string(StateIdle), string(StateSucceeded), string(StateFailed)}, Dst: string(StatePending)},
			{Name: eventSucceed, Src: []string{string(StatePending)}, Dst: string(StateSucceeded)},
			{Name: eventFail, Src: []string{string(StatePending)}, Dst: string(StateFailed)},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				c.logger.Debug("submission state", zap.String("from", e.Src), zap.String("to", e.Dst))
			},
		},
	)
	return c
}

// SetAnswer records value for the question key, replacing any earlier answer.
func (c *FormController) SetAnswer(key string, value int) error {
	if !IsQuestionKey(key) {
		return NewInvalidError(fmt.Sprintf("unknown question %q", key))
	}
	if !ValidSeverity(value) {
		return NewInvalidError(fmt.Sprintf("answer for %s must be between %d and %d", key, MinSeverity, MaxSeverity))
	}
	c.mutate(func() { c.answers[key] = value })
	return nil
}

// SetIdentity stores raw text for a contact field; validation happens in CanSubmit.
func (c *FormController) SetIdentity(field IdentityField, value string) error {
	switch field {
	case FieldName:
		c.mutate(func() { c.identity.Name = value })
	case FieldEmail:
		c.mutate(func() { c.identity.Email = value })
	default:
		return NewInvalidError(fmt.Sprintf("unknown identity field %q", field))
	}
	return nil
}

// SetName stores the raw name.
func (c *FormController) SetName(name string) { _ = c.SetIdentity(FieldName, name) }

// SetEmail stores the raw email address.
func (c *FormController) SetEmail(email string) { _ = c.SetIdentity(FieldEmail, email) }

// SetConsent records the consent checkbox.
func (c *FormController) SetConsent(v bool) {
	c.mutate(func() { c.consent = v })
}

// SetQualityOfLife stores v as given. Values outside 0..6 are kept and submitted;
// QualityOfLifeAdvisory reports them.
func (c *FormController) SetQualityOfLife(v int) {
	c.mutate(func() { c.qol = &v })
}

// ClearQualityOfLife removes the value so qol is left out of the payload.
func (c *FormController) ClearQualityOfLife() {
	c.mutate(func() { c.qol = nil })
}

// SetLocation replaces the page location provider.
func (c *FormController) SetLocation(loc Location) {
	c.mutate(func() { c.location = loc })
}

// QualityOfLifeAdvisory is true when a quality-of-life value is set outside 0..6.
func (c *FormController) QualityOfLifeAdvisory() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.qolAdvisoryLocked()
}

// Total is the running sum of the current answers.
func (c *FormController) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Total(c.answers)
}

// CanSubmit reports whether every gate passes and no submission is pending.
func (c *FormController) CanSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.canSubmitLocked()
}

// State returns the current submission lifecycle state.
func (c *FormController) State() SubmissionState {
	return SubmissionState(c.lifecycle.Current())
}

// Snapshot copies the state and derived values.
func (c *FormController) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Subscribe registers fn to run after every state change. The returned func unregisters it.
func (c *FormController) Subscribe(fn func(Snapshot)) (cancel func()) {
	c.obsMu.Lock()
	id := c.nextObs
	c.nextObs++
	c.observers[id] = fn
	c.obsMu.Unlock()
	return func() {
		c.obsMu.Lock()
		delete(c.observers, id)
		c.obsMu.Unlock()
	}
}

// Submit sends the form when CanSubmit allows it. A blocked form returns an ErrorBlocked
// error without touching state. Otherwise the controller enters Pending, captures the payload
// (including attribution read from the location right now), waits for the endpoint and
// settles into Succeeded or Failed. Rejections and network failures are returned as
// ErrorRejected / ErrorNetwork errors alongside the Result; the form stays retryable.
func (c *FormController) Submit(ctx context.Context) (Result, error) {
	c.mu.Lock()
	if !c.canSubmitLocked() {
		c.mu.Unlock()
		return Result{State: c.State()}, NewBlockedError(utils.T(c.locale, utils.MsgSubmitHint))
	}
	c.message, c.errText = "", ""
	if err := c.lifecycle.Event(context.Background(), eventSubmit); err != nil {
		c.mu.Unlock()
		return Result{State: c.State()}, fmt.Errorf("enter pending: %w", err)
	}
	fields := BuildFields(c.identity, c.answers, c.qol, CaptureAttribution(c.location.Href()))
	localTotal := Total(c.answers)
	firstName := FirstName(c.identity.Name)
	email := trimmed(c.identity.Email)
	locale := c.locale
	c.mu.Unlock()
	c.notify()

	res := Result{State: StateFailed, Total: localTotal, Message: utils.T(locale, utils.MsgNetworkError)}
	var resErr error
	defer func() { c.settle(ctx, res, email) }()

	reply, err := c.submitter.Submit(ctx, fields)
	switch {
	case err != nil || reply == nil:
		resErr = NewNetworkError(res.Message, err)
		c.logger.Warn("submission failed", zap.String("outcome", string(ErrorNetwork)), zap.Error(err))
	case reply.OK:
		total := localTotal
		if reply.Total != nil {
			total = *reply.Total
		}
		res = Result{
			State:     StateSucceeded,
			Total:     total,
			Message:   utils.Tf(locale, utils.MsgGreeting, firstName, total),
			RequestID: reply.RequestID,
		}
		c.logger.Info("submission accepted",
			zap.Int("total", total),
			zap.String("tier", string(TierFor(total))),
			zap.String("request_id", reply.RequestID))
	default:
		msg := strings.TrimSpace(reply.Error)
		if msg == "" {
			msg = utils.T(locale, utils.MsgSubmitFailed)
		}
		res = Result{State: StateFailed, Total: localTotal, Message: msg, RequestID: reply.RequestID}
		resErr = NewRejectedError(msg)
		c.logger.Warn("submission rejected",
			zap.String("outcome", string(ErrorRejected)),
			zap.String("request_id", reply.RequestID))
	}
	return res, resErr
}

// settle releases Pending exactly once per submit, whatever path the call took.
func (c *FormController) settle(ctx context.Context, res Result, email string) {
	c.mu.Lock()
	event := eventFail
	if res.State == StateSucceeded {
		event = eventSucceed
		total := res.Total
		c.submittedTotal = &total
		c.message = res.Message
	} else {
		c.errText = res.Message
	}
	if err := c.lifecycle.Event(context.Background(), event); err != nil {
		c.logger.Error("leave pending", zap.Error(err))
		c.lifecycle.SetState(string(res.State))
	}
	c.mu.Unlock()
	c.notify()
	c.record(ctx, res, email)
}

func (c *FormController) record(ctx context.Context, res Result, email string) {
	if c.journal == nil {
		return
	}
	total := res.Total
	a := Attempt{
		ID:        c.idGen(),
		At:        c.now(),
		State:     res.State,
		Total:     total,
		Tier:      TierFor(total),
		Email:     email,
		Message:   res.Message,
		RequestID: res.RequestID,
	}
	if err := c.journal.RecordAttempt(context.WithoutCancel(ctx), a); err != nil {
		c.logger.Warn("journal attempt", zap.String("attempt_id", a.ID), zap.Error(err))
	}
}

func (c *FormController) mutate(fn func()) {
	c.mu.Lock()
	fn()
	c.mu.Unlock()
	c.notify()
}

func (c *FormController) notify() {
	snap := c.Snapshot()
	c.obsMu.Lock()
	fns := make([]func(Snapshot), 0, len(c.observers))
	for _, fn := range c.observers {
		fns = append(fns, fn)
	}
	c.obsMu.Unlock()
	for _, fn := range fns {
		fn(snap)
	}
}

func (c *FormController) canSubmitLocked() bool {
	return ValidName(c.identity.Name) &&
		ValidEmail(c.identity.Email) &&
		c.consent &&
		c.answers.Complete() &&
		!c.lifecycle.Is(string(StatePending))
}

func (c *FormController) qolAdvisoryLocked() bool {
	return c.qol != nil && !QualityOfLifeInRange(*c.qol)
}

func (c *FormController) snapshotLocked() Snapshot {
	total := Total(c.answers)
	snap := Snapshot{
		Identity:    c.identity,
		Answers:     c.answers.Clone(),
		Consent:     c.consent,
		State:       SubmissionState(c.lifecycle.Current()),
		Message:     c.message,
		Error:       c.errText,
		Total:       total,
		Tier:        TierFor(total),
		Complete:    c.answers.Complete(),
		CanSubmit:   c.canSubmitLocked(),
		QoLAdvisory: c.qolAdvisoryLocked(),
		Locale:      c.locale,
	}
	if c.qol != nil {
		v := *c.qol
		snap.QualityOfLife = &v
	}
	if c.submittedTotal != nil {
		v := *c.submittedTotal
		snap.SubmittedTotal = &v
	}
	return snap
}
