// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with `swag init -g cmd/api/main.go`.
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
        "/health": {"get": {"tags": ["health"], "summary": "Health check", "responses": {"200": {"description": "OK"}}}},
        "/auth/user": {"get": {"tags": ["auth"], "summary": "Current user", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/cv/generate": {"post": {"tags": ["cv"], "summary": "Generate a CV", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "500": {"description": "Internal Server Error"}}}},
        "/cv/{userId}": {"get": {"tags": ["cv"], "summary": "List a user's CVs", "parameters": [{"type": "string", "name": "userId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/cv/item/{id}": {"get": {"tags": ["cv"], "summary": "Get a CV", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/cv/item/{id}/regenerate": {"post": {"tags": ["cv"], "summary": "Regenerate a CV document", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/interview/start": {"post": {"tags": ["interview"], "summary": "Start a mock interview", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/interview/{sessionId}": {"get": {"tags": ["interview"], "summary": "Get an interview session", "parameters": [{"type": "integer", "name": "sessionId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/interview/{sessionId}/answer": {"post": {"tags": ["interview"], "summary": "Answer an interview question", "parameters": [{"type": "integer", "name": "sessionId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}}},
        "/interview/user/{userId}": {"get": {"tags": ["interview"], "summary": "List a user's interview sessions", "parameters": [{"type": "string", "name": "userId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/chat/start": {"post": {"tags": ["chat"], "summary": "Start a career chat", "responses": {"200": {"description": "OK"}}}},
        "/chat/{sessionId}": {"get": {"tags": ["chat"], "summary": "Get a chat session", "parameters": [{"type": "integer", "name": "sessionId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/chat/{sessionId}/message": {"post": {"tags": ["chat"], "summary": "Send a chat message", "parameters": [{"type": "integer", "name": "sessionId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}},
        "/chat/user/{userId}": {"get": {"tags": ["chat"], "summary": "List a user's chat sessions", "parameters": [{"type": "string", "name": "userId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "JobReady AI API",
	Description:      "CV generation, mock interviews and career advice backed by a completion gateway.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
