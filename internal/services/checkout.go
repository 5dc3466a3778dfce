package service

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/go-playground/validator/v10"
	"github.com/josumamgar-gif/App-Aqualan/internal/api/middleware"
	"github.com/josumamgar-gif/App-Aqualan/internal/errors"
	"github.com/josumamgar-gif/App-Aqualan/internal/metrics"
	"github.com/josumamgar-gif/App-Aqualan/internal/models"
	"github.com/josumamgar-gif/App-Aqualan/pkg/backend"
)

const (
	MsgNameRequired    = "Por favor introduce tu nombre"
	MsgEmailInvalid    = "Por favor introduce un email válido"
	MsgPhoneRequired   = "Por favor introduce tu teléfono"
	MsgCityRequired    = "Por favor introduce tu ciudad"
	MsgZoneRequired    = "Por favor selecciona tu zona de entrega"
	MsgAddressRequired = "Por favor introduce tu dirección de entrega"
	MsgCartEmpty       = "Tu carrito está vacío"
	MsgOrderFailed     = "No se pudo procesar el pedido. Inténtalo de nuevo."
	MsgOrderNetwork    = "Error de conexión. Inténtalo de nuevo."
	MsgSubmitInFlight  = "Ya estamos enviando tu pedido"
)

// CheckoutService drives Browsing -> FormEntry -> Submitting -> Success|Failed.
// At most one submission is in flight at a time.
type CheckoutService interface {
	DeliveryMode() models.DeliveryMode
	Status() models.CheckoutStatus
	Begin(ctx context.Context) (models.CheckoutStatus, error)
	Submit(ctx context.Context, form models.CheckoutForm) (*models.CheckoutResult, error)
	Reset() models.CheckoutStatus
}

type checkoutService struct {
	cart     CartService
	history  OrderHistoryService
	api      OrderAPI
	notifier Notifier
	validate *validator.Validate
	mode     models.DeliveryMode

	inFlight atomic.Bool

	mu     sync.Mutex
	status models.CheckoutStatus
}

func NewCheckoutService(
	cart CartService,
	history OrderHistoryService,
	api OrderAPI,
	notifier Notifier,
	validate *validator.Validate,
	mode models.DeliveryMode,
) CheckoutService {
	if notifier == nil {
		notifier = NewNoopNotifier()
	}
	return &checkoutService{
		cart:     cart,
		history:  history,
		api:      api,
		notifier: notifier,
		validate: validate,
		mode:     mode,
		status:   models.CheckoutStatus{State: models.CheckoutBrowsing},
	}
}

func (s *checkoutService) DeliveryMode() models.DeliveryMode {
	return s.mode
}

func (s *checkoutService) Status() models.CheckoutStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := s.status
	status.DeliveryMode = s.mode
	return status
}

func (s *checkoutService) setStatus(state models.CheckoutState, lastError string, order *models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = models.CheckoutStatus{State: state, LastError: lastError, LastOrder: order}
}

func (s *checkoutService) Begin(ctx context.Context) (models.CheckoutStatus, error) {

	if s.inFlight.Load() {
		return s.Status(), errors.SubmitInProgressError(MsgSubmitInFlight)
	}

	if s.cart.Summary(ctx).Lines == 0 {
		return s.Status(), errors.ValidationError(MsgCartEmpty)
	}

	s.setStatus(models.CheckoutFormEntry, "", nil)

	return s.Status(), nil
}

func (s *checkoutService) Reset() models.CheckoutStatus {
	s.setStatus(models.CheckoutBrowsing, "", nil)
	return s.Status()
}

type fieldCheck struct {
	value   string
	tag     string
	message string
}

// validateForm checks fields in the order the form shows them and reports
// only the first problem.
func (s *checkoutService) validateForm(form models.CheckoutForm) *errors.AppError {

	delivery := fieldCheck{form.City, "required", MsgCityRequired}
	if s.mode == models.DeliveryModeZone {
		delivery = fieldCheck{form.Zone, "required", MsgZoneRequired}
	}

	checks := []fieldCheck{
		{form.Name, "required", MsgNameRequired},
		{form.Email, "required,contains=@", MsgEmailInvalid},
		{form.Phone, "required", MsgPhoneRequired},
		delivery,
		{form.Address, "required", MsgAddressRequired},
	}

	for _, c := range checks {
		if err := s.validate.Var(c.value, c.tag); err != nil {
			return errors.ValidationError(c.message).WithError(err)
		}
	}

	return nil
}

func (s *checkoutService) buildRequest(form models.CheckoutForm, cart models.Cart) *models.CreateOrderRequest {

	req := &models.CreateOrderRequest{
		CustomerName:    form.Name,
		CustomerEmail:   form.Email,
		CustomerPhone:   form.Phone,
		DeliveryAddress: sanitizeText(form.Address),
		Items:           cart.Items,
		Notes:           sanitizeText(form.Notes),
	}

	if s.mode == models.DeliveryModeZone {
		req.DeliveryZone = form.Zone
	} else {
		req.DeliveryCity = form.City
	}

	return req
}

// Submit validates locally, sends exactly one order and, on success, records
// it, empties the cart and notifies the customer. Local failures issue no
// network call and leave the cart untouched.
func (s *checkoutService) Submit(ctx context.Context, form models.CheckoutForm) (*models.CheckoutResult, error) {

	logger := middleware.LoggerFromContext(ctx)

	if !s.inFlight.CompareAndSwap(false, true) {
		metrics.IncCheckout(metrics.CheckoutInProgress)
		return nil, errors.SubmitInProgressError(MsgSubmitInFlight)
	}
	defer s.inFlight.Store(false)

	form = form.Trimmed()

	reject := func(err *errors.AppError) (*models.CheckoutResult, error) {
		metrics.IncCheckout(metrics.CheckoutRejected)
		s.setStatus(models.CheckoutFormEntry, err.Message, nil)
		return nil, err
	}

	if appErr := s.validateForm(form); appErr != nil {
		return reject(appErr)
	}

	cart := s.cart.Snapshot(ctx)
	if cart.IsEmpty() {
		return reject(errors.ValidationError(MsgCartEmpty))
	}

	if !s.api.HasBackend() {
		return reject(errors.BackendNotConfiguredError(backend.MsgBackendNotConfigured))
	}

	s.setStatus(models.CheckoutSubmitting, "", nil)

	order, err := s.api.CreateOrder(ctx, s.buildRequest(form, cart))
	if err != nil {
		message := MsgOrderFailed
		if errors.HasCode(err, errors.ErrCodeNetwork) {
			message = MsgOrderNetwork
		}

		metrics.IncCheckout(metrics.CheckoutFailed)
		s.setStatus(models.CheckoutFailed, message, nil)
		logger.Error("Order submission failed", slog.Any("error", err))

		return nil, withMessage(err, message)
	}

	placed := order.Snapshot()
	if placed.Total == nil {
		if summary := cart.Summary(); summary.Priced {
			total := summary.Total
			placed.Total = &total
		}
	}

	if err := s.history.Record(ctx, placed); err != nil {
		logger.Warn("Order placed but not recorded locally", slog.String("orderId", placed.ID), slog.Any("error", err))
	}

	if err := s.cart.Settle(ctx, cart); err != nil {
		logger.Warn("Order placed but the cart could not be cleared", slog.String("orderId", placed.ID), slog.Any("error", err))
	}

	message := placed.DeliveryMessage()

	if err := s.notifier.OrderPlaced(ctx, placed, message); err != nil {
		logger.Warn("Order confirmation email failed", slog.String("orderId", placed.ID), slog.Any("error", err))
	}

	metrics.IncCheckout(metrics.CheckoutSucceeded)
	s.setStatus(models.CheckoutSuccess, "", &placed)

	logger.Info("Order placed", slog.String("orderId", placed.ID), slog.Int("lines", len(placed.Items)))

	return &models.CheckoutResult{Order: placed, DeliveryMessage: message}, nil
}
