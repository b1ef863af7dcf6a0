package config

import (
	"github.com/Paida-All/paidaall-store-backend/models"
)

// ═══════════════════════════════════════════════════════════
// Site Configuration
// ═══════════════════════════════════════════════════════════
// Company, contact and content data for the storefront. Static by design:
// the informational pages have no dynamic logic.

type SiteConfig struct {
	Company  CompanyInfo  `json:"company"`
	Contacts ContactInfo  `json:"contacts"`
	Delivery DeliveryInfo `json:"delivery"`
}

type CompanyInfo struct {
	Name        string `json:"name"`
	Slogan      string `json:"slogan"`
	Description string `json:"description"`
	City        string `json:"city"`
}

type ContactInfo struct {
	Phone        string `json:"phone"`
	PhoneRaw     string `json:"phone_raw"`
	WhatsApp     string `json:"whatsapp"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	WorkingHours string `json:"working_hours"`
}

type DeliveryInfo struct {
	FreeDeliveryFrom float64 `json:"free_delivery_from"`
	Currency         string  `json:"currency"`
	DeliveryTime     string  `json:"delivery_time"`
	DeliveryZone     string  `json:"delivery_zone"`
}

var Site = SiteConfig{
	Company: CompanyInfo{
		Name:        "Paida All",
		Slogan:      "Оптовые поставки",
		Description: "Оптовые поставки товаров в Караганде. Работаем с физическими и юридическими лицами.",
		City:        "Караганда",
	},
	Contacts: ContactInfo{
		Phone:        "+7 (778) 085-54-78",
		PhoneRaw:     "+77780855478",
		WhatsApp:     "77780855478",
		Email:        "info@paidaall.kz",
		Address:      "г. Караганда",
		WorkingHours: "Без выходных 9:00-21:00",
	},
	Delivery: DeliveryInfo{
		FreeDeliveryFrom: 50000,
		Currency:         "₸",
		DeliveryTime:     "1-2 рабочих дня",
		DeliveryZone:     "Караганда и пригороды",
	},
}

// Pages holds the static informational pages keyed by URL slug.
var Pages = map[string]models.PageContent{
	"delivery": {
		Slug:  "delivery",
		Title: "Доставка",
		Sections: []models.PageSection{
			{Heading: "Зона доставки", Body: []string{
				"Доставляем по Караганде и пригородам.",
				"Срок доставки: 1-2 рабочих дня.",
			}},
			{Heading: "Стоимость", Body: []string{
				"Бесплатная доставка при заказе от 50 000 ₸.",
				"Стоимость доставки мелких заказов уточняйте у менеджера.",
			}},
		},
	},
	"payment": {
		Slug:  "payment",
		Title: "Оплата",
		Sections: []models.PageSection{
			{Heading: "Способы оплаты", Body: []string{
				"Наличными при получении.",
				"Переводом на Kaspi.",
				"Безналичный расчёт для юридических лиц.",
			}},
		},
	},
	"about": {
		Slug:  "about",
		Title: "О компании",
		Sections: []models.PageSection{
			{Body: []string{
				"Paida All — оптовые поставки товаров в Караганде.",
				"Работаем с физическими и юридическими лицами.",
				"Более 2000 наименований товаров в каталоге.",
			}},
		},
	},
	"contacts": {
		Slug:  "contacts",
		Title: "Контакты",
		Sections: []models.PageSection{
			{Body: []string{
				"Телефон: +7 (778) 085-54-78",
				"Email: info@paidaall.kz",
				"Адрес: г. Караганда",
				"Режим работы: без выходных 9:00-21:00",
			}},
		},
	},
}
