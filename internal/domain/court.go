package domain

import "strings"

// Court represents a court from the fixed catalog
type Court struct {
	Name         string
	Description  string
	DisplayPrice string // Цена с витрины, на расчет стоимости не влияет
	Bookable     bool   // Доступен для выбора в мастере бронирования
}

// Courts фиксированный каталог площадок
var Courts = []Court{
	{Name: "Court A", Description: "Main indoor court", DisplayPrice: "Rs 1000", Bookable: true},
	{Name: "Court B", Description: "Outdoor court with floodlights", DisplayPrice: "Rs 1000", Bookable: true},
	{Name: "Skyline Padel Arena", Description: "Rooftop court with international-grade turf", DisplayPrice: "Rs 1500"},
	{Name: "Elite Padel Court", Description: "Indoor temperature-controlled court", DisplayPrice: "Rs 2500"},
	{Name: "Padel Paradise", Description: "Family-friendly recreational court", DisplayPrice: "Rs 800"},
	{Name: "Grand Arena", Description: "High-capacity tournament court", DisplayPrice: "Rs 1000"},
	{Name: "Ocean View Court", Description: "Shoreline court with glass fencing", DisplayPrice: "Rs 1200"},
	{Name: "City Sports Hub", Description: "City center court open till midnight", DisplayPrice: "$22/hour"},
}

// FindCourt ищет площадку по имени без учета регистра и крайних пробелов
func FindCourt(name string) (Court, bool) {
	name = strings.TrimSpace(name)
	for _, c := range Courts {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Court{}, false
}

// BookableCourts возвращает площадки, доступные в мастере бронирования
func BookableCourts() []Court {
	result := make([]Court, 0, len(Courts))
	for _, c := range Courts {
		if c.Bookable {
			result = append(result, c)
		}
	}
	return result
}
