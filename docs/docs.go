// Package docs holds the generated OpenAPI specification served by the
// swagger UI route. Regenerate with: swag init -g cmd/server/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user",
                "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}
            }
        },
        "/api/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/create-payment-intent": {
            "post": {
                "tags": ["payments"],
                "summary": "Create a one-time payment intent",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/create-subscription": {
            "post": {
                "tags": ["payments"],
                "summary": "Create a subscription plan and setup intent",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/stripe/create-customer": {
            "post": {
                "tags": ["payments"],
                "summary": "Create a processor customer",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/stripe/create-subscription": {
            "post": {
                "tags": ["payments"],
                "summary": "Subscribe a customer to a price",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/webhook": {
            "post": {
                "tags": ["webhooks"],
                "summary": "Receive a payment processor notification",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/check-domain": {
            "post": {
                "tags": ["domains"],
                "summary": "Check domain availability on both registrars",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/create-domain-payment": {
            "post": {
                "tags": ["domains"],
                "summary": "Start a domain purchase",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/namecom/check": {
            "post": {
                "tags": ["domains"],
                "summary": "Check domain availability on Name.com",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/namecom/register": {
            "post": {
                "tags": ["domains"],
                "summary": "Register a domain via Name.com",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/site/create": {
            "post": {
                "tags": ["sites"],
                "summary": "Create a site from an HTML document",
                "responses": {"201": {"description": "Created"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/site/publish": {
            "post": {
                "tags": ["sites"],
                "summary": "Publish a created site",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/admin/orders": {
            "get": {
                "tags": ["admin"],
                "summary": "List all orders",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Site Builder API",
	Description:      "Website-builder and domain-reseller backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
