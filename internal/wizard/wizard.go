package wizard

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/m04kA/SMC-PadelBooking/internal/domain"
	"github.com/m04kA/SMC-PadelBooking/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-PadelBooking/pkg/types"
)

const (
	fallbackIDPrefix     = "BK"
	fallbackIDSpace      = 1000000 // шесть цифр
	bookingFailedMessage = "Error saving booking. Please try again."
)

// Wizard трехшаговый мастер бронирования: детали, оплата, квитанция
// Безопасен для использования из нескольких горутин
type Wizard struct {
	mu         sync.Mutex
	state      State
	draft      domain.BookingDraft
	receipt    *Receipt
	lastErr    error
	submitting bool

	sessions SessionProvider
	creator  BookingCreator
	logger   Logger

	now       func() time.Time
	randomInt func(n int) int
}

// New создает мастер в шаге Details
// Имя, email и телефон заполняются из текущей сессии, если она есть
func New(sessions SessionProvider, creator BookingCreator, logger Logger) *Wizard {
	w := &Wizard{
		state:     StateDetails,
		sessions:  sessions,
		creator:   creator,
		logger:    logger,
		now:       time.Now,
		randomInt: rand.Intn,
	}
	w.draft = domain.NewBookingDraft(w.currentProfile())
	return w
}

// State возвращает текущий шаг
func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Draft возвращает копию черновика
func (w *Wizard) Draft() domain.BookingDraft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

// Receipt возвращает квитанцию; nil до успешной отправки
func (w *Wizard) Receipt() *Receipt {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.receipt == nil {
		return nil
	}
	receipt := *w.receipt
	return &receipt
}

// LastError последняя ошибка перехода; сбрасывается при успешном переходе
func (w *Wizard) LastError() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}

// Submitting сообщает, выполняется ли сейчас создание бронирования
func (w *Wizard) Submitting() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.submitting
}

// SetName sets customer name
func (w *Wizard) SetName(name string) error {
	return w.editDetails(func(d *domain.BookingDraft) error {
		d.Name = name
		return nil
	})
}

// SetEmail sets customer email
func (w *Wizard) SetEmail(email string) error {
	return w.editDetails(func(d *domain.BookingDraft) error {
		d.Email = email
		return nil
	})
}

// SetPhone sets customer phone
func (w *Wizard) SetPhone(phone string) error {
	return w.editDetails(func(d *domain.BookingDraft) error {
		d.Phone = phone
		return nil
	})
}

// SetCourt выбирает площадку из каталога; пустое имя сбрасывает выбор
func (w *Wizard) SetCourt(name string) error {
	return w.editDetails(func(d *domain.BookingDraft) error {
		if name == "" {
			d.Court = ""
			return nil
		}
		court, ok := domain.FindCourt(name)
		if !ok {
			return &FieldError{Field: domain.FieldCourt, Value: name}
		}
		d.Court = court.Name
		return nil
	})
}

// SetDate выбирает дату; нулевое время сбрасывает выбор, прошедшие даты отклоняются
// При смене даты выбранное время начала сбрасывается
func (w *Wizard) SetDate(date time.Time) error {
	return w.editDetails(func(d *domain.BookingDraft) error {
		var day time.Time
		if !date.IsZero() {
			day = truncateToDay(date)
			if day.Before(truncateToDay(w.now())) {
				return &FieldError{Field: domain.FieldDate, Value: date.Format(domain.DateFormat)}
			}
		}
		if !day.Equal(d.Date) {
			d.StartTime = ""
		}
		d.Date = day
		return nil
	})
}

// SetStartTime выбирает время начала из почасовых слотов; пустое значение сбрасывает выбор
func (w *Wizard) SetStartTime(start types.TimeString) error {
	return w.editDetails(func(d *domain.BookingDraft) error {
		if start.IsZero() {
			d.StartTime = ""
			return nil
		}
		if !domain.IsHourlySlot(start) {
			return &FieldError{Field: domain.FieldStartTime, Value: start.String()}
		}
		d.StartTime = start
		return nil
	})
}

// SetDuration sets duration in hours, 1..4
func (w *Wizard) SetDuration(hours int) error {
	return w.editDetails(func(d *domain.BookingDraft) error {
		if !domain.IsValidDuration(hours) {
			return &FieldError{Field: domain.FieldDuration, Value: fmt.Sprintf("%d", hours)}
		}
		d.DurationHours = hours
		return nil
	})
}

// SetPaymentMethod выбирает способ оплаты; пустая строка сбрасывает выбор
func (w *Wizard) SetPaymentMethod(method string) error {
	return w.edit(func(d *domain.BookingDraft) error {
		if method == "" {
			d.PaymentMethod = ""
			return nil
		}
		parsed, err := domain.ParsePaymentMethod(method)
		if err != nil {
			return &FieldError{Field: domain.FieldPaymentMethod, Value: method}
		}
		d.PaymentMethod = parsed
		return nil
	}, StateDetails, StatePayment)
}

// AvailableTimes returns hourly start times for the date, empty when no date is chosen
// Существующие бронирования не учитываются
func (w *Wizard) AvailableTimes(date time.Time) []types.TimeString {
	if date.IsZero() {
		return []types.TimeString{}
	}
	return domain.HourlySlots()
}

// EndTime время окончания по текущему черновику
func (w *Wizard) EndTime() types.TimeString {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft.EndTime()
}

// Price стоимость по текущему черновику
func (w *Wizard) Price() domain.Price {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft.Price()
}

// Next переход Details -> Payment
func (w *Wizard) Next() Result {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateDetails {
		return w.fail(fmt.Errorf("%w: next from %s", ErrInvalidTransition, w.state), "")
	}

	if missing := w.draft.MissingDetails(); len(missing) > 0 {
		w.logger.Warn("Next: missing fields=%v", missing)
		return w.fail(&MissingFieldsError{Fields: missing}, "")
	}

	if !w.authenticated() {
		w.logger.Warn("Next: no session, redirect=%s", LoginRedirect)
		return w.fail(ErrLoginRequired, LoginRedirect)
	}

	return w.move(StatePayment)
}

// Back переход Payment -> Details, черновик сохраняется
func (w *Wizard) Back() Result {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StatePayment {
		return w.fail(fmt.Errorf("%w: back from %s", ErrInvalidTransition, w.state), "")
	}
	if w.submitting {
		return w.fail(ErrSubmitInProgress, "")
	}

	return w.move(StateDetails)
}

// Submit переход Payment -> Receipt
// Выполняет ровно один запрос создания бронирования; мьютекс на время запроса отпущен
func (w *Wizard) Submit(ctx context.Context) Result {
	w.mu.Lock()

	if w.state != StatePayment {
		defer w.mu.Unlock()
		return w.fail(fmt.Errorf("%w: submit from %s", ErrInvalidTransition, w.state), "")
	}
	if w.submitting {
		defer w.mu.Unlock()
		return w.fail(ErrSubmitInProgress, "")
	}
	if missing := w.draft.MissingDetails(); len(missing) > 0 {
		defer w.mu.Unlock()
		return w.fail(&MissingFieldsError{Fields: missing}, "")
	}
	if w.draft.PaymentMethod == "" {
		defer w.mu.Unlock()
		return w.fail(ErrPaymentMethodRequired, "")
	}

	w.submitting = true
	draft := w.draft
	w.mu.Unlock()

	req := &bookingapi.CreateBookingRequest{
		Name:      draft.Name,
		Email:     draft.Email,
		Phone:     draft.Phone,
		CourtName: draft.Court,
		Date:      draft.Date.Format(domain.DateFormat),
		Time:      draft.StartTime.String(),
		Duration:  draft.DurationHours,
	}
	w.logger.Info("Submit: court=%s, date=%s, time=%s, duration=%d, payment=%s",
		req.CourtName, req.Date, req.Time, req.Duration, draft.PaymentMethod)

	booking, err := w.creator.CreateBooking(ctx, req)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.submitting = false

	if err != nil {
		w.logger.Warn("Submit: create booking failed: %v", err)
		return w.fail(newBookingFailedError(err), "")
	}

	w.receipt = w.buildReceipt(draft, booking)
	w.logger.Info("Submit: booking created id=%s", w.receipt.BookingID)
	return w.move(StateReceipt)
}

// BookAgain переход Receipt -> Details с очисткой выбора
// Данные клиента сохраняются, только если сессия все еще активна
func (w *Wizard) BookAgain() Result {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateReceipt {
		return w.fail(fmt.Errorf("%w: book again from %s", ErrInvalidTransition, w.state), "")
	}

	w.draft.ResetSelection()
	if !w.authenticated() {
		w.draft.ClearCustomer()
	}
	w.receipt = nil

	return w.move(StateDetails)
}

// editDetails поля первого шага меняются только в Details
func (w *Wizard) editDetails(apply func(d *domain.BookingDraft) error) error {
	return w.edit(apply, StateDetails)
}

func (w *Wizard) edit(apply func(d *domain.BookingDraft) error, allowed ...State) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.submitting {
		return ErrSubmitInProgress
	}
	for _, state := range allowed {
		if w.state == state {
			return apply(&w.draft)
		}
	}
	return fmt.Errorf("%w: edit in %s", ErrInvalidTransition, w.state)
}

// move и fail вызываются под мьютексом
func (w *Wizard) move(to State) Result {
	from := w.state
	w.state = to
	w.lastErr = nil
	return Result{From: from, To: to}
}

func (w *Wizard) fail(err error, redirect string) Result {
	w.lastErr = err
	return Result{From: w.state, To: w.state, Redirect: redirect, Err: err}
}

func (w *Wizard) authenticated() bool {
	if w.sessions == nil {
		return false
	}
	return w.sessions.Current().IsAuthenticated()
}

func (w *Wizard) currentProfile() *domain.UserProfile {
	if w.sessions == nil {
		return nil
	}
	session := w.sessions.Current()
	if !session.IsAuthenticated() {
		return nil
	}
	return session.User
}

func (w *Wizard) buildReceipt(draft domain.BookingDraft, booking *bookingapi.Booking) *Receipt {
	receipt := &Receipt{
		Name:          draft.Name,
		Email:         draft.Email,
		Phone:         draft.Phone,
		Court:         draft.Court,
		Date:          draft.Date,
		StartTime:     draft.StartTime,
		EndTime:       draft.EndTime(),
		DurationHours: draft.DurationHours,
		PaymentMethod: draft.PaymentMethod,
		Price:         draft.Price(),
	}

	if booking != nil {
		receipt.BookingID = booking.ID
		receipt.BookingDate = booking.Date
	}
	if receipt.BookingID == "" {
		receipt.BookingID = fmt.Sprintf("%s%06d", fallbackIDPrefix, w.randomInt(fallbackIDSpace))
	}
	if receipt.BookingDate == "" {
		receipt.BookingDate = w.now().Format(domain.DateFormat)
	}
	return receipt
}

func newBookingFailedError(err error) *BookingFailedError {
	message := bookingFailedMessage
	var apiErr *bookingapi.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		message = apiErr.Message
	}
	return &BookingFailedError{Message: message, Cause: err}
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
