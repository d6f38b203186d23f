package booking

import (
	"errors"
	"regexp"
	"strings"

	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

var ErrReceiverIsNotConstructed = errors.New("Receiver must be created via NewReceiver")

var (
	pinCodePattern = regexp.MustCompile(`^\d{6}$`)
	mobilePattern  = regexp.MustCompile(`^\d{10}$`)
)

// Receiver is the addressee of a parcel. Its fields are opaque strings checked
// for shape only.
type Receiver struct {
	name    string
	address string
	pinCode string
	mobile  string
	guard   guard.ConstructorGuard
}

func NewReceiver(name, address, pinCode, mobile string) (Receiver, error) {
	r := Receiver{
		name:    strings.TrimSpace(name),
		address: strings.TrimSpace(address),
		pinCode: strings.TrimSpace(pinCode),
		mobile:  strings.TrimSpace(mobile),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireText("receiverName", r.name),
		requireText("receiverAddress", r.address),
		matchPattern("receiverPin", r.pinCode, pinCodePattern, "must be 6 digits"),
		matchPattern("receiverMobile", r.mobile, mobilePattern, "must be 10 digits"),
	); err != nil {
		return Receiver{}, err
	}
	return r, nil
}

func (r Receiver) Name() string    { return r.name }
func (r Receiver) Address() string { return r.address }
func (r Receiver) PinCode() string { return r.pinCode }
func (r Receiver) Mobile() string  { return r.mobile }

func (r Receiver) Validate() error {
	return r.guard.Validate(ErrReceiverIsNotConstructed)
}

func requireText(param, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}

func matchPattern(param, value string, pattern *regexp.Regexp, rule string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	if !pattern.MatchString(value) {
		return errs.NewValueIsInvalidErrorWithCause(param, errors.New(rule))
	}
	return nil
}
