package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-PadelBooking/internal/domain"
	"github.com/m04kA/SMC-PadelBooking/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-PadelBooking/internal/wizard"
	"github.com/m04kA/SMC-PadelBooking/pkg/types"
)

var errQuit = errors.New("padelctl: quit")

// accountClient операции с учетной записью на сервере
type accountClient interface {
	CheckUser(ctx context.Context, email, phone string) (bool, error)
	Login(ctx context.Context, emailOrPhone, password string) (*domain.Session, error)
	Signup(ctx context.Context, req *bookingapi.SignupRequest) (*domain.Session, error)
}

// sessionStore хранилище сессии, общее с мастером
type sessionStore interface {
	Current() *domain.Session
	Save(s *domain.Session) error
	Clear() error
}

// app интерактивная оболочка над мастером бронирования
type app struct {
	in       *bufio.Scanner
	out      io.Writer
	wiz      *wizard.Wizard
	accounts accountClient
	sessions sessionStore
	now      func() time.Time
}

func newApp(in io.Reader, out io.Writer, wiz *wizard.Wizard, accounts accountClient, sessions sessionStore) *app {
	return &app{
		in:       bufio.NewScanner(in),
		out:      out,
		wiz:      wiz,
		accounts: accounts,
		sessions: sessions,
		now:      time.Now,
	}
}

// run ведет пользователя по шагам мастера до выхода или конца ввода
func (a *app) run(ctx context.Context) error {
	a.printf("PADEL court booking\n")
	if s := a.sessions.Current(); s.IsAuthenticated() {
		a.printf("Logged in as %s\n", s.User.Name)
	}

	for {
		if ctx.Err() != nil {
			return nil
		}

		var err error
		switch a.wiz.State() {
		case wizard.StateDetails:
			err = a.details(ctx)
		case wizard.StatePayment:
			err = a.payment(ctx)
		case wizard.StateReceipt:
			err = a.receipt()
		}

		if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (a *app) details(ctx context.Context) error {
	a.printf("\nStep 1 of 3: booking details\n")
	draft := a.wiz.Draft()

	if err := a.askUntil("Name", draft.Name, a.wiz.SetName); err != nil {
		return err
	}
	if err := a.askUntil("Email", draft.Email, a.wiz.SetEmail); err != nil {
		return err
	}
	if err := a.askUntil("Phone", draft.Phone, a.wiz.SetPhone); err != nil {
		return err
	}
	if err := a.chooseCourt(draft.Court); err != nil {
		return err
	}
	if err := a.chooseDate(draft.Date); err != nil {
		return err
	}
	if err := a.chooseTime(); err != nil {
		return err
	}
	if err := a.chooseDuration(); err != nil {
		return err
	}

	a.printSummary()

	result := a.wiz.Next()
	if errors.Is(result.Err, wizard.ErrLoginRequired) {
		a.printf("Please login first to continue to payment.\n")
		ok, err := a.authenticate(ctx)
		if err != nil || !ok {
			return err
		}
		result = a.wiz.Next()
	}
	return a.report(result)
}

func (a *app) payment(ctx context.Context) error {
	a.printf("\nStep 2 of 3: payment\n")
	for i, m := range domain.PaymentMethods {
		a.printf("  %d) %s\n", i+1, m.Label())
	}
	a.printf("  b) Back to details\n")

	choice, err := a.ask("Payment method", string(a.wiz.Draft().PaymentMethod))
	if err != nil {
		return err
	}
	if strings.EqualFold(choice, "b") {
		return a.report(a.wiz.Back())
	}

	if err := a.wiz.SetPaymentMethod(paymentChoice(choice)); err != nil {
		if errors.Is(err, wizard.ErrInvalidField) {
			a.printf("Unknown payment method %q\n", choice)
			return nil
		}
		return err
	}

	a.printf("Submitting booking...\n")
	return a.report(a.wiz.Submit(ctx))
}

func (a *app) receipt() error {
	r := a.wiz.Receipt()
	if r == nil {
		return errors.New("padelctl: receipt step without receipt")
	}

	a.printf("\nStep 3 of 3: booking confirmed!\n")
	a.printf("Booking ID:   %s\n", r.BookingID)
	a.printf("Booked on:    %s\n", r.BookingDate)
	a.printf("Name:         %s\n", r.Name)
	a.printf("Email:        %s\n", r.Email)
	a.printf("Phone:        %s\n", r.Phone)
	a.printf("Court:        %s\n", r.Court)
	a.printf("Date:         %s\n", r.Date.Format(domain.DateFormat))
	a.printf("Time:         %s - %s (%d hour(s))\n", r.StartTime, r.EndTime, r.DurationHours)
	a.printf("Payment:      %s\n", r.PaymentMethod.Label())
	a.printf("Base amount:  Rs. %d\n", r.Price.Base)
	a.printf("Tax (%d%%):    Rs. %d\n", domain.TaxRatePercent, r.Price.Tax)
	a.printf("Total:        Rs. %d\n", r.Price.Total)

	answer, err := a.ask("Book again? (y/n)", "n")
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") {
		return errQuit
	}
	return a.report(a.wiz.BookAgain())
}

// authenticate предлагает вход или регистрацию в зависимости от того,
// известен ли серверу email/телефон из черновика
func (a *app) authenticate(ctx context.Context) (bool, error) {
	draft := a.wiz.Draft()

	exists, err := a.accounts.CheckUser(ctx, draft.Email, draft.Phone)
	if err != nil {
		a.printf("Could not check account: %v\n", err)
		return false, nil
	}

	var s *domain.Session
	if exists {
		a.printf("Account found, please login.\n")
		login, err := a.ask("Email or phone", draft.Email)
		if err != nil {
			return false, err
		}
		password, err := a.ask("Password", "")
		if err != nil {
			return false, err
		}
		s, err = a.accounts.Login(ctx, login, password)
		if err != nil {
			a.printf("Login failed: %v\n", err)
			return false, nil
		}
	} else {
		a.printf("No account found, please signup.\n")
		password, err := a.ask("Password", "")
		if err != nil {
			return false, err
		}
		confirm, err := a.ask("Confirm password", "")
		if err != nil {
			return false, err
		}
		s, err = a.accounts.Signup(ctx, &bookingapi.SignupRequest{
			Name:            draft.Name,
			Email:           draft.Email,
			Phone:           draft.Phone,
			Password:        password,
			ConfirmPassword: confirm,
		})
		if err != nil {
			a.printf("Signup failed: %v\n", err)
			return false, nil
		}
	}

	if err := a.sessions.Save(s); err != nil {
		return false, fmt.Errorf("save session: %w", err)
	}
	a.printf("Welcome, %s!\n", s.User.Name)
	return true, nil
}

func (a *app) chooseCourt(current string) error {
	courts := domain.BookableCourts()
	for i, c := range courts {
		a.printf("  %d) %s - %s (%s)\n", i+1, c.Name, c.Description, c.DisplayPrice)
	}
	return a.askUntil("Court", current, func(v string) error {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= len(courts) {
			v = courts[n-1].Name
		}
		return a.wiz.SetCourt(v)
	})
}

func (a *app) chooseDate(current time.Time) error {
	def := ""
	if !current.IsZero() {
		def = current.Format(domain.DateFormat)
	}
	return a.askUntil("Date (YYYY-MM-DD, today, tomorrow)", def, func(v string) error {
		switch strings.ToLower(v) {
		case "":
			return a.wiz.SetDate(time.Time{})
		case "today":
			return a.wiz.SetDate(a.now())
		case "tomorrow":
			return a.wiz.SetDate(a.now().AddDate(0, 0, 1))
		}
		date, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return wizard.ErrInvalidField
		}
		return a.wiz.SetDate(date)
	})
}

func (a *app) chooseTime() error {
	draft := a.wiz.Draft()
	slots := a.wiz.AvailableTimes(draft.Date)
	if len(slots) == 0 {
		return nil
	}

	labels := make([]string, 0, len(slots))
	for i, slot := range slots {
		labels = append(labels, fmt.Sprintf("%d) %s", i+1, slot))
	}
	a.printf("  %s\n", strings.Join(labels, "  "))

	return a.askUntil("Start time", draft.StartTime.String(), func(v string) error {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= len(slots) {
			return a.wiz.SetStartTime(slots[n-1])
		}
		return a.wiz.SetStartTime(types.TimeString(v))
	})
}

func (a *app) chooseDuration() error {
	current := strconv.Itoa(a.wiz.Draft().DurationHours)
	return a.askUntil("Duration in hours (1-4)", current, func(v string) error {
		hours, err := strconv.Atoi(v)
		if err != nil {
			return wizard.ErrInvalidField
		}
		return a.wiz.SetDuration(hours)
	})
}

func (a *app) printSummary() {
	draft := a.wiz.Draft()
	if draft.StartTime.IsZero() {
		return
	}
	price := a.wiz.Price()
	a.printf("%s - %s, %d hour(s), total Rs. %d (incl. tax Rs. %d)\n",
		draft.StartTime, a.wiz.EndTime(), draft.DurationHours, price.Total, price.Tax)
}

// report печатает ошибку перехода; прерывают работу только неожиданные ошибки
func (a *app) report(result wizard.Result) error {
	if result.Err == nil {
		return nil
	}

	var missing *wizard.MissingFieldsError
	switch {
	case errors.As(result.Err, &missing):
		a.printf("Please fill all booking details: %s\n", strings.Join(missing.Fields, ", "))
	case errors.Is(result.Err, wizard.ErrLoginRequired):
		a.printf("Please login first to continue to payment.\n")
	case errors.Is(result.Err, wizard.ErrPaymentMethodRequired):
		a.printf("Please select a payment method.\n")
	case errors.Is(result.Err, wizard.ErrBookingFailed):
		a.printf("Booking failed: %s\n", result.Err.Error())
	default:
		return result.Err
	}
	return nil
}

// askUntil повторяет вопрос, пока apply отклоняет значение как ErrInvalidField
func (a *app) askUntil(label, def string, apply func(string) error) error {
	for {
		v, err := a.ask(label, def)
		if err != nil {
			return err
		}
		err = apply(v)
		if err == nil {
			return nil
		}
		if !errors.Is(err, wizard.ErrInvalidField) {
			return err
		}
		a.printf("Invalid value %q, try again.\n", v)
	}
}

// ask читает строку; пустой ввод означает значение по умолчанию
func (a *app) ask(label, def string) (string, error) {
	if def != "" {
		a.printf("%s [%s]: ", label, def)
	} else {
		a.printf("%s: ", label)
	}

	if !a.in.Scan() {
		if err := a.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	v := strings.TrimSpace(a.in.Text())
	if v == "" {
		return def, nil
	}
	return v, nil
}

func (a *app) printf(format string, v ...interface{}) {
	fmt.Fprintf(a.out, format, v...)
}

func paymentChoice(choice string) string {
	if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(domain.PaymentMethods) {
		return string(domain.PaymentMethods[n-1])
	}
	return choice
}
