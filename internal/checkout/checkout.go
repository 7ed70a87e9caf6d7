package checkout

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/haeun/go-diary-store/internal/cart"
	"github.com/haeun/go-diary-store/internal/models"
	"github.com/haeun/go-diary-store/internal/pricing"
)

// Validation failures, one per rule, surfaced one at a time in form
// order. All are recoverable: the attempt stays in the filling state.
var (
	ErrNameRequired    = errors.New("please enter your name")
	ErrInvalidEmail    = errors.New("please enter a valid email address")
	ErrPhoneRequired   = errors.New("please enter your phone number")
	ErrAddressRequired = errors.New("please look up your postal code to fill in the address")
	ErrDetailRequired  = errors.New("please enter your detailed address")
	ErrTermsRequired   = errors.New("please agree to the purchase terms and privacy policy")

	ErrEmptyCart = errors.New("cart is empty")
)

type State string

const (
	StateFilling   State = "filling"
	StateSubmitted State = "submitted"
)

// Controller runs a single checkout attempt over a cart. Submitted is
// terminal; a new attempt needs a fresh controller and a non-empty cart.
type Controller struct {
	cart    *cart.Store
	form    models.ShippingInfo
	agreed  bool
	state   State
}

func NewController(c *cart.Store) *Controller {
	return &Controller{cart: c, state: StateFilling}
}

func (c *Controller) SetForm(form models.ShippingInfo) {
	c.form = form
}

func (c *Controller) AgreeToTerms(agreed bool) {
	c.agreed = agreed
}

func (c *Controller) State() State {
	return c.state
}

// Validate checks the shipping form sequentially and returns the first
// failure. Email validation is deliberately weak: non-empty plus an "@".
// Postal code and street address are populated together by an external
// address lookup, so they are checked as a pair.
func (c *Controller) Validate() error {
	if strings.TrimSpace(c.form.Name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(c.form.Email) == "" || !strings.Contains(c.form.Email, "@") {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(c.form.Phone) == "" {
		return ErrPhoneRequired
	}
	if strings.TrimSpace(c.form.ZipCode) == "" || strings.TrimSpace(c.form.Address) == "" {
		return ErrAddressRequired
	}
	if strings.TrimSpace(c.form.DetailAddress) == "" {
		return ErrDetailRequired
	}
	if !c.agreed {
		return ErrTermsRequired
	}
	return nil
}

// Submit validates the form, snapshots the final total, clears the cart,
// and returns the ephemeral order. On validation failure the cart is
// untouched and no order number is produced.
func (c *Controller) Submit() (models.Order, error) {
	if err := c.Validate(); err != nil {
		return models.Order{}, err
	}

	items := c.cart.Items()
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	order := models.Order{
		Number:      generateOrderNumber(),
		TotalAmount: pricing.FinalTotal(items),
		Email:       c.form.Email,
	}

	c.cart.Clear()
	c.state = StateSubmitted
	return order, nil
}

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// generateOrderNumber builds a best-effort unique display token:
// ORDER-<epoch millis>-<7 uppercase base36 chars>. Not collision-free
// and not validated against any backend.
func generateOrderNumber() string {
	suffix := make([]byte, 7)
	for i := range suffix {
		suffix[i] = base36[rand.Intn(len(base36))]
	}
	return fmt.Sprintf("ORDER-%d-%s", time.Now().UnixMilli(), suffix)
}
