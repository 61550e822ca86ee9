// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/events": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Events"], "summary": "List my events", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Events"], "summary": "Create an event", "responses": {"201": {"description": "Created"}}}
        },
        "/events/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Events"], "summary": "Get an event", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["Events"], "summary": "Update an event", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Events"], "summary": "Delete an event", "responses": {"200": {"description": "OK"}}}
        },
        "/events/{id}/guests": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Guests"], "summary": "List guests", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Guests"], "summary": "Add a guest", "responses": {"201": {"description": "Created"}}}
        },
        "/events/{id}/guests/summary": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Guests"], "summary": "Guest list summary", "responses": {"200": {"description": "OK"}}}
        },
        "/events/{id}/guests/export": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["Guests"], "summary": "Export guests as CSV", "responses": {"200": {"description": "OK"}, "503": {"description": "Object storage not configured"}}}
        },
        "/events/{id}/guests/{guestId}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Guests"], "summary": "Get a guest", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["Guests"], "summary": "Update a guest", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Guests"], "summary": "Remove a guest", "responses": {"200": {"description": "OK"}}}
        },
        "/events/{id}/guests/selection": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["Bulk"], "summary": "Bulk actions bar state", "responses": {"200": {"description": "OK"}}}
        },
        "/events/{id}/guests/bulk/dialogs": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["Bulk"], "summary": "Open a bulk action dialog", "responses": {"201": {"description": "Created"}}}
        },
        "/events/{id}/guests/bulk/dialogs/{snapshotId}/confirm": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["Bulk"], "summary": "Confirm a bulk action dialog", "responses": {"200": {"description": "OK"}, "404": {"description": "Dialog expired or already closed"}}}
        },
        "/events/{id}/guests/bulk/dialogs/{snapshotId}": {
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Bulk"], "summary": "Cancel a bulk action dialog", "responses": {"200": {"description": "OK"}}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Event Planner API",
	Description:      "Guest list management with bulk actions for event organizers",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
