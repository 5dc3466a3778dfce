package models_test

import (
	"testing"

	"github.com/josumamgar-gif/App-Aqualan/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestFilterProducts(t *testing.T) {
	products := []models.Product{
		{ID: "1", Name: "Botellón 19L San Andrés", Description: "Agua mineral natural"},
		{ID: "2", Name: "Ecobox 5L Alzola", Description: "Formato bag in box"},
		{ID: "3", Name: "Cafetera de Cápsulas Roja", Description: "Perfecta para oficinas"},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "Empty Query Keeps All", query: "", want: []string{"1", "2", "3"}},
		{name: "Whitespace Query Keeps All", query: "   ", want: []string{"1", "2", "3"}},
		{name: "Name Match Is Case Insensitive", query: "ECOBOX", want: []string{"2"}},
		{name: "Description Match", query: "oficinas", want: []string{"3"}},
		{name: "No Match", query: "zumo", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := models.FilterProducts(products, tt.query)

			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestOfferRequestNormalized(t *testing.T) {
	req := models.OfferRequest{
		Empresa:       "  Aqualan SL ",
		Nombre:        " Ane ",
		Ubicacion:     "bizkaia",
		OtraProvincia: "Burgos",
		Productos:     []string{"ecobox", " ecobox", "cafe", ""},
		Mensaje:       "   ",
	}

	out := req.Normalized()

	assert.Equal(t, "Aqualan SL", out.Empresa)
	assert.Equal(t, "Ane", out.Nombre)
	assert.Empty(t, out.OtraProvincia)
	assert.Equal(t, []string{"ecobox", "cafe"}, out.Productos)
	assert.Empty(t, out.Mensaje)

	req.Ubicacion = models.ProvinceOther
	assert.Equal(t, "Burgos", req.Normalized().OtraProvincia)
}
