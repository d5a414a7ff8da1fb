// Package docs registers the swagger document served under /swagger.
// Regenerate with: swag init -g cmd/server/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.HealthResponse"}}}
            }
        },
        "/users/{account}/repos": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Repositories"],
                "summary": "List an account's original repositories",
                "parameters": [
                    {"type": "string", "description": "GitHub account name", "name": "account", "in": "path", "required": true},
                    {"type": "string", "description": "Case-insensitive text matched against name or description", "name": "search", "in": "query"},
                    {"minimum": 1, "type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RepositoryListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/dashboard/sessions": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Open a dashboard session",
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CreateSessionResponse"}}}
            }
        },
        "/dashboard/sessions/{id}": {
            "get": {
                "security": [{"SessionAuth": []}],
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Get the current view of a session",
                "parameters": [{"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DashboardViewResponse"}}}
            },
            "delete": {
                "security": [{"SessionAuth": []}],
                "tags": ["Dashboard"],
                "summary": "Close a session",
                "parameters": [{"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/dashboard/sessions/{id}/account": {
            "post": {
                "security": [{"SessionAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Submit an account name",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true},
                    {"description": "Account", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SubmitAccountRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DashboardViewResponse"}}}
            }
        },
        "/dashboard/sessions/{id}/search": {
            "put": {
                "security": [{"SessionAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Change the filter text",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true},
                    {"description": "Search text", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SetSearchRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DashboardViewResponse"}}}
            }
        },
        "/dashboard/sessions/{id}/next": {
            "post": {
                "security": [{"SessionAuth": []}],
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Go to the next page",
                "parameters": [{"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DashboardViewResponse"}}}
            }
        },
        "/dashboard/sessions/{id}/prev": {
            "post": {
                "security": [{"SessionAuth": []}],
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Go to the previous page",
                "parameters": [{"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DashboardViewResponse"}}}
            }
        },
        "/dashboard/sessions/{id}/stream": {
            "get": {
                "produces": ["text/event-stream"],
                "tags": ["Dashboard"],
                "summary": "Stream session views",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Session token (if not in header)", "name": "token", "in": "query"}
                ],
                "responses": {"200": {"description": "SSE stream", "schema": {"type": "string"}}}
            }
        },
        "/sidebar": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Sidebar"],
                "summary": "Get weather and a random dog image",
                "parameters": [
                    {"type": "number", "description": "Latitude", "name": "latitude", "in": "query"},
                    {"type": "number", "description": "Longitude", "name": "longitude", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SidebarResponse"}}}
            }
        },
        "/sidebar/image": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Sidebar"],
                "summary": "Fetch a new random dog image",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ImageResponse"}}}
            }
        },
        "/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["History"],
                "summary": "List recent fetches",
                "parameters": [{"type": "integer", "default": 20, "description": "Maximum number of records", "name": "limit", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.FetchHistoryResponse"}}}
            }
        }
    },
    "definitions": {
        "dto.RepositoryResponse": {"type": "object", "properties": {
            "id": {"type": "integer"}, "name": {"type": "string"}, "description": {"type": "string"},
            "fork": {"type": "boolean"}, "stars": {"type": "integer"}, "forks": {"type": "integer"},
            "language": {"type": "string"}, "language_color": {"type": "string"},
            "html_url": {"type": "string"}, "updated_at": {"type": "string"}
        }},
        "dto.PaginationResponse": {"type": "object", "properties": {
            "page": {"type": "integer"}, "page_size": {"type": "integer"},
            "total": {"type": "integer"}, "total_pages": {"type": "integer"}
        }},
        "dto.RepositoryListResponse": {"type": "object", "properties": {
            "account": {"type": "string"}, "search": {"type": "string"},
            "total_original": {"type": "integer"}, "notice": {"type": "string"},
            "repositories": {"type": "array", "items": {"$ref": "#/definitions/dto.RepositoryResponse"}},
            "pagination": {"$ref": "#/definitions/dto.PaginationResponse"}
        }},
        "dto.DashboardViewResponse": {"type": "object", "properties": {
            "session_id": {"type": "string"}, "account": {"type": "string"}, "search": {"type": "string"},
            "page": {"type": "integer"}, "page_count": {"type": "integer"}, "page_size": {"type": "integer"},
            "loading": {"type": "boolean"}, "error": {"type": "string"}, "error_code": {"type": "string"},
            "notice": {"type": "string"}, "total_original": {"type": "integer"}, "total_filtered": {"type": "integer"},
            "has_prev": {"type": "boolean"}, "has_next": {"type": "boolean"},
            "repositories": {"type": "array", "items": {"$ref": "#/definitions/dto.RepositoryResponse"}}
        }},
        "dto.CreateSessionResponse": {"type": "object", "properties": {
            "session_id": {"type": "string"}, "token": {"type": "string"},
            "view": {"$ref": "#/definitions/dto.DashboardViewResponse"}
        }},
        "dto.SubmitAccountRequest": {"type": "object", "properties": {"account": {"type": "string"}}},
        "dto.SetSearchRequest": {"type": "object", "properties": {"search": {"type": "string"}}},
        "dto.WeatherResponse": {"type": "object", "properties": {
            "temperature": {"type": "number"}, "windspeed": {"type": "number"}, "winddirection": {"type": "number"}
        }},
        "dto.ImageResponse": {"type": "object", "properties": {"url": {"type": "string"}, "fallback": {"type": "boolean"}}},
        "dto.SidebarResponse": {"type": "object", "properties": {
            "latitude": {"type": "number"}, "longitude": {"type": "number"},
            "weather": {"$ref": "#/definitions/dto.WeatherResponse"},
            "image": {"$ref": "#/definitions/dto.ImageResponse"}
        }},
        "dto.FetchRecordResponse": {"type": "object", "properties": {
            "id": {"type": "string"}, "account": {"type": "string"}, "outcome": {"type": "string"},
            "error_code": {"type": "string"}, "message": {"type": "string"},
            "fetched_count": {"type": "integer"}, "original_count": {"type": "integer"}, "fetched_at": {"type": "string"}
        }},
        "dto.FetchHistoryResponse": {"type": "object", "properties": {
            "records": {"type": "array", "items": {"$ref": "#/definitions/dto.FetchRecordResponse"}}
        }},
        "handlers.ErrorResponse": {"type": "object", "properties": {
            "error": {"type": "string"}, "message": {"type": "string"}, "details": {"type": "string"}
        }},
        "handlers.HealthResponse": {"type": "object", "properties": {
            "status": {"type": "string"}, "message": {"type": "string"},
            "sessions": {"type": "integer"}, "history": {"type": "string"}
        }}
    },
    "securityDefinitions": {
        "SessionAuth": {
            "description": "Session token returned by POST /dashboard/sessions",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "repodash API",
	Description:      "Original-repository dashboard for GitHub accounts, with weather and image sidebar",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
