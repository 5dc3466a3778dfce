package service_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	appErrors "github.com/josumamgar-gif/App-Aqualan/internal/errors"
	"github.com/josumamgar-gif/App-Aqualan/internal/models"
	service "github.com/josumamgar-gif/App-Aqualan/internal/services"
	"github.com/josumamgar-gif/App-Aqualan/internal/services/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validOffer() models.OfferRequest {
	return models.OfferRequest{
		Empresa:       " Talleres Urola ",
		Nombre:        "Mikel",
		Telefono:      "943000000",
		Email:         "mikel@urola.eus",
		Ubicacion:     "gipuzkoa",
		OtraProvincia: "ignored",
		Ciudad:        "Azpeitia",
		Productos:     []string{"botellones", "dispensador", "botellones"},
		Mensaje:       "<script>x</script>Somos 40 personas",
	}
}

func TestOfferSubmit(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Sends Normalized Request", func(t *testing.T) {
		// Arrange
		api := new(mocks.Backend)
		offers := service.NewOfferService(api, validator.New())

		api.On("HasBackend").Return(true)
		api.On("SubmitOfferRequest", mock.Anything, mock.MatchedBy(func(req *models.OfferRequest) bool {
			return req.Empresa == "Talleres Urola" &&
				req.OtraProvincia == "" &&
				len(req.Productos) == 2 &&
				req.Mensaje == "Somos 40 personas"
		})).Return(nil).Once()

		// Act
		err := offers.Submit(ctx, validOffer())

		// Assert
		require.NoError(t, err)
		api.AssertExpectations(t)
	})

	validationCases := []struct {
		name    string
		mutate  func(r *models.OfferRequest)
		message string
	}{
		{"Failure - Missing Empresa", func(r *models.OfferRequest) { r.Empresa = " " }, service.MsgOfferRequiredFields},
		{"Failure - Missing Ubicacion", func(r *models.OfferRequest) { r.Ubicacion = "" }, service.MsgOfferRequiredFields},
		{"Failure - Otra Without Province", func(r *models.OfferRequest) { r.Ubicacion = models.ProvinceOther; r.OtraProvincia = "" }, service.MsgOfferProvince},
		{"Failure - No Products", func(r *models.OfferRequest) { r.Productos = nil }, service.MsgOfferProducts},
		{"Failure - Unknown Product", func(r *models.OfferRequest) { r.Productos = []string{"agua-con-gas"} }, service.MsgOfferInvalidOption},
		{"Failure - Required Fields Reported First", func(r *models.OfferRequest) { r.Ciudad = ""; r.Productos = nil }, service.MsgOfferRequiredFields},
	}

	for _, tc := range validationCases {
		t.Run(tc.name, func(t *testing.T) {
			api := new(mocks.Backend)
			offers := service.NewOfferService(api, validator.New())

			req := validOffer()
			tc.mutate(&req)

			err := offers.Submit(ctx, req)

			appErr, ok := appErrors.IsAppError(err)
			require.True(t, ok)
			assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
			assert.Equal(t, tc.message, appErr.Message)
			api.AssertNotCalled(t, "SubmitOfferRequest", mock.Anything, mock.Anything)
		})
	}

	errorCases := []struct {
		name     string
		upstream error
		message  string
	}{
		{"Failure - Route Missing", appErrors.NotFoundError("Recurso no encontrado"), service.MsgOfferRouteMissing},
		{"Failure - Server Detail", appErrors.UpstreamError(422, "x").WithDetail("email no válido"), "email no válido"},
		{"Failure - Server Without Detail", appErrors.UpstreamError(500, "x"), service.MsgOfferFailed},
		{"Failure - Network", appErrors.NetworkError("offline"), service.MsgOfferNetwork},
		{"Failure - Unexpected", assert.AnError, service.MsgOfferUnexpected},
	}

	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			api := new(mocks.Backend)
			offers := service.NewOfferService(api, validator.New())
			api.On("HasBackend").Return(true)
			api.On("SubmitOfferRequest", mock.Anything, mock.Anything).Return(tc.upstream).Once()

			err := offers.Submit(ctx, validOffer())

			appErr, ok := appErrors.IsAppError(err)
			require.True(t, ok)
			assert.Equal(t, tc.message, appErr.Message)
		})
	}

	t.Run("Failure - Backend Not Configured", func(t *testing.T) {
		api := new(mocks.Backend)
		offers := service.NewOfferService(api, validator.New())
		api.On("HasBackend").Return(false)

		err := offers.Submit(ctx, validOffer())

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeBackendNotConfigured))
	})
}

func TestOfferOptions(t *testing.T) {
	offers := service.NewOfferService(new(mocks.Backend), validator.New())

	options := offers.Options()

	assert.Len(t, options.Provinces, len(models.Provinces))
	assert.Len(t, options.Products, len(models.OfferProducts))
}
