package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/josumamgar-gif/App-Aqualan/internal/api/middleware"
	"github.com/josumamgar-gif/App-Aqualan/internal/errors"
	"github.com/josumamgar-gif/App-Aqualan/internal/models"
	repository "github.com/josumamgar-gif/App-Aqualan/internal/repositories"
)

const msgOrderNotFound = "Pedido no encontrado"

// OrderHistoryService lists past orders. The local variant keeps them on the
// device and groups them by month; the remote variant asks the backend by
// email and never records anything itself.
type OrderHistoryService interface {
	Mode() models.HistoryMode
	Record(ctx context.Context, order models.Order) error
	List(ctx context.Context) ([]models.Order, error)
	Groups(ctx context.Context) ([]models.OrderGroup, error)
	ByEmail(ctx context.Context, email string) ([]models.Order, error)
	Get(ctx context.Context, id string) (*models.Order, error)
}

type localHistoryService struct {
	repo repository.OrderHistoryRepository
	loc  *time.Location
}

func NewLocalHistoryService(repo repository.OrderHistoryRepository, loc *time.Location) OrderHistoryService {
	if loc == nil {
		loc = time.UTC
	}
	return &localHistoryService{repo: repo, loc: loc}
}

func (s *localHistoryService) Mode() models.HistoryMode {
	return models.HistoryModeLocal
}

func (s *localHistoryService) Record(ctx context.Context, order models.Order) error {

	if err := s.repo.Prepend(ctx, order); err != nil {
		middleware.LoggerFromContext(ctx).Error("Failed to record order locally", slog.String("orderId", order.ID), slog.Any("error", err))
		return errors.StorageError("No se pudo guardar el pedido en el historial").WithError(err)
	}

	return nil
}

// List treats an unreadable history as empty.
func (s *localHistoryService) List(ctx context.Context) ([]models.Order, error) {

	orders, err := s.repo.List(ctx)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Local order history is unreadable", slog.Any("error", err))
		return []models.Order{}, nil
	}

	return orders, nil
}

func (s *localHistoryService) Groups(ctx context.Context) ([]models.OrderGroup, error) {

	orders, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	return models.GroupOrdersByMonth(orders, s.loc), nil
}

func (s *localHistoryService) ByEmail(context.Context, string) ([]models.Order, error) {
	return nil, errors.BadRequestError("Orders are kept on this device; list them without an email")
}

func (s *localHistoryService) Get(ctx context.Context, id string) (*models.Order, error) {

	orders, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		if o.ID == id {
			found := o.Snapshot()
			return &found, nil
		}
	}

	return nil, errors.NotFoundError(msgOrderNotFound)
}

type remoteHistoryService struct {
	api      OrderAPI
	validate *validator.Validate
}

func NewRemoteHistoryService(api OrderAPI, validate *validator.Validate) OrderHistoryService {
	return &remoteHistoryService{api: api, validate: validate}
}

func (s *remoteHistoryService) Mode() models.HistoryMode {
	return models.HistoryModeRemote
}

// Record is a no-op: the backend already owns the order.
func (s *remoteHistoryService) Record(context.Context, models.Order) error {
	return nil
}

func (s *remoteHistoryService) List(context.Context) ([]models.Order, error) {
	return nil, errors.BadRequestError("An email is required to look up orders")
}

func (s *remoteHistoryService) Groups(context.Context) ([]models.OrderGroup, error) {
	return nil, errors.BadRequestError("An email is required to look up orders")
}

func (s *remoteHistoryService) ByEmail(ctx context.Context, email string) ([]models.Order, error) {

	email = strings.TrimSpace(email)
	if err := s.validate.Var(email, "required,email"); err != nil {
		return nil, errors.ValidationError("Por favor introduce un email válido").WithError(err)
	}

	orders, err := s.api.ListOrders(ctx, email)
	if err != nil {
		return nil, backendError(err, "Failed to fetch orders")
	}

	if orders == nil {
		orders = []models.Order{}
	}

	return orders, nil
}

func (s *remoteHistoryService) Get(ctx context.Context, id string) (*models.Order, error) {

	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.BadRequestError("Order ID is required")
	}

	order, err := s.api.GetOrder(ctx, id)
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeNotFound) {
			return nil, errors.NotFoundError(msgOrderNotFound).WithError(err)
		}
		return nil, backendError(err, "Failed to fetch order")
	}

	return order, nil
}
