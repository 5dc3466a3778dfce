package models

import "strings"

const ProvinceOther = "otra"

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var Provinces = []Option{
	{Value: "bizkaia", Label: "Bizkaia"},
	{Value: "gipuzkoa", Label: "Gipuzkoa"},
	{Value: "alava", Label: "Álava"},
	{Value: "cantabria", Label: "Cantabria"},
	{Value: "navarra", Label: "Navarra"},
	{Value: ProvinceOther, Label: "Otra"},
}

var OfferProducts = []Option{
	{Value: "botellones", Label: "Botellones 19L/11L"},
	{Value: "ecobox", Label: "Ecobox (15L/5L)"},
	{Value: "botellines", Label: "Botellines"},
	{Value: "dispensador", Label: "Dispensador Frío/Caliente"},
	{Value: "fuentes-red", Label: "Fuente de Red"},
	{Value: "cafe", Label: "Café en Cápsulas"},
	{Value: "vasos", Label: "Vasos Compostables"},
}

type OfferOptions struct {
	Provinces []Option `json:"provinces"`
	Products  []Option `json:"products"`
}

// OfferRequest is the B2B quote form.
type OfferRequest struct {
	Empresa       string   `json:"empresa" validate:"required"`
	Nombre        string   `json:"nombre" validate:"required"`
	Telefono      string   `json:"telefono" validate:"required"`
	Email         string   `json:"email" validate:"required"`
	Ubicacion     string   `json:"ubicacion" validate:"required,oneof=bizkaia gipuzkoa alava cantabria navarra otra"`
	OtraProvincia string   `json:"otra_provincia,omitempty" validate:"required_if=Ubicacion otra"`
	Ciudad        string   `json:"ciudad" validate:"required"`
	Productos     []string `json:"productos" validate:"required,min=1,dive,oneof=botellones ecobox botellines dispensador fuentes-red cafe vasos"`
	Mensaje       string   `json:"mensaje,omitempty"`
}

// Normalized trims every field, drops otra_provincia unless the location is
// "otra" and removes duplicate products.
func (r OfferRequest) Normalized() OfferRequest {
	out := OfferRequest{
		Empresa:   strings.TrimSpace(r.Empresa),
		Nombre:    strings.TrimSpace(r.Nombre),
		Telefono:  strings.TrimSpace(r.Telefono),
		Email:     strings.TrimSpace(r.Email),
		Ubicacion: strings.TrimSpace(r.Ubicacion),
		Ciudad:    strings.TrimSpace(r.Ciudad),
		Mensaje:   strings.TrimSpace(r.Mensaje),
	}

	if out.Ubicacion == ProvinceOther {
		out.OtraProvincia = strings.TrimSpace(r.OtraProvincia)
	}

	seen := make(map[string]bool, len(r.Productos))
	out.Productos = make([]string, 0, len(r.Productos))
	for _, p := range r.Productos {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out.Productos = append(out.Productos, p)
	}

	return out
}
