package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"companyapi/internal/service"
)

// Services bundles the use cases exposed over HTTP.
type Services struct {
	Company service.CompanyService
	Country service.CountryService
	Contact service.ContactService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db *sql.DB, svcs Services) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")

	api.Get("/company", ListCompanies(svcs.Company))
	api.Post("/company", CreateCompany(svcs.Company))
	api.Get("/company/:id", GetCompany(svcs.Company))
	api.Put("/company/:id", UpdateCompany(svcs.Company))
	api.Delete("/company/:id", DeleteCompany(svcs.Company))

	api.Get("/country", ListCountries(svcs.Country))
	api.Post("/country", CreateCountry(svcs.Country))
	api.Get("/country/:id", GetCountry(svcs.Country))
	api.Put("/country/:id", UpdateCountry(svcs.Country))
	api.Delete("/country/:id", DeleteCountry(svcs.Country))

	// Static segments must be registered ahead of /contact/:id.
	api.Get("/contact", ListContacts(svcs.Contact))
	api.Get("/contact/paged", ListContactsPaged(svcs.Contact))
	api.Get("/contact/details", ListContactsWithDetails(svcs.Contact))
	api.Get("/contact/filter", FilterContacts(svcs.Contact))
	api.Post("/contact", CreateContact(svcs.Contact))
	api.Get("/contact/:id", GetContact(svcs.Contact))
	api.Put("/contact/:id", UpdateContact(svcs.Contact))
	api.Delete("/contact/:id", DeleteContact(svcs.Contact))
}
