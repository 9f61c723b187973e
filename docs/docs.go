// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/portal/main.go -o docs
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
        "/articles": {
            "get": {
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "List articles",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.listArticlesResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/admin/articles": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "Create an article",
                "parameters": [
                    {"description": "Article", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createArticleRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.createArticleResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/admin/articles/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["articles"],
                "summary": "Delete an article",
                "parameters": [
                    {"type": "integer", "description": "Article id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.meResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/auth/signup": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign up",
                "parameters": [
                    {"description": "Signup form", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.signupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.signupResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/auth/signup/check": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Check signup fields",
                "parameters": [
                    {"description": "Email and password to check", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.signupCheckRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.signupCheckResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/wellness/bmi": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["wellness"],
                "summary": "Compute body mass index",
                "parameters": [
                    {"description": "Height in cm and weight in kg", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.bmiRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.bmiResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/wellness/obesity": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["wellness"],
                "summary": "Classify obesity level",
                "parameters": [
                    {"description": "Questionnaire", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.obesityRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.obesityResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Account": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string", "enum": ["user", "admin"]}
            }
        },
        "domain.Article": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "integer"},
                "image_url": {"type": "string"},
                "link": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "domain.PasswordRules": {
            "type": "object",
            "properties": {
                "has_digit": {"type": "boolean"},
                "has_lower": {"type": "boolean"},
                "has_upper": {"type": "boolean"},
                "only_alphanumeric": {"type": "boolean"}
            }
        },
        "handler.bmiRequest": {
            "type": "object",
            "required": ["height_cm", "weight_kg"],
            "properties": {
                "height_cm": {"type": "number"},
                "weight_kg": {"type": "number"}
            }
        },
        "handler.bmiResponse": {
            "type": "object",
            "properties": {"bmi": {"type": "number"}}
        },
        "handler.createArticleRequest": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "image_url": {"type": "string"},
                "link": {"type": "string"},
                "title": {"type": "string", "maxLength": 255}
            }
        },
        "handler.createArticleResponse": {
            "type": "object",
            "properties": {"id": {"type": "integer"}}
        },
        "handler.errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handler.listArticlesResponse": {
            "type": "object",
            "properties": {
                "articles": {"type": "array", "items": {"$ref": "#/definitions/domain.Article"}},
                "count": {"type": "integer"}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "handler.loginResponse": {
            "type": "object",
            "properties": {
                "account": {"$ref": "#/definitions/domain.Account"},
                "expires_at": {"type": "string"},
                "token": {"type": "string"}
            }
        },
        "handler.meResponse": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "expires_at": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "handler.obesityRequest": {
            "type": "object",
            "required": ["age", "alcohol", "gender", "height_m", "snacking", "transport", "weight_kg"],
            "properties": {
                "activity_days": {"type": "integer", "maximum": 7, "minimum": 0},
                "age": {"type": "integer"},
                "alcohol": {"type": "string", "enum": ["Never", "Sometimes", "Frequently", "Always"]},
                "family_history": {"type": "boolean"},
                "gender": {"type": "string", "enum": ["Male", "Female"]},
                "height_m": {"type": "number"},
                "high_caloric": {"type": "boolean"},
                "main_meals": {"type": "integer", "maximum": 10, "minimum": 0},
                "monitors_calories": {"type": "boolean"},
                "smokes": {"type": "boolean"},
                "snacking": {"type": "string", "enum": ["No", "Sometimes", "Frequently", "Always"]},
                "tech_hours": {"type": "integer", "maximum": 24, "minimum": 0},
                "transport": {"type": "string"},
                "vegetables": {"type": "integer", "maximum": 10, "minimum": 0},
                "water_liters": {"type": "number", "maximum": 10, "minimum": 0},
                "weight_kg": {"type": "number"}
            }
        },
        "handler.obesityResponse": {
            "type": "object",
            "properties": {
                "bmi": {"type": "number"},
                "class": {"type": "integer"},
                "label": {"type": "string"}
            }
        },
        "handler.signupCheckRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.signupCheckResponse": {
            "type": "object",
            "properties": {
                "email_accepted": {"type": "boolean"},
                "message": {"type": "string"},
                "password": {"$ref": "#/definitions/domain.PasswordRules"},
                "valid": {"type": "boolean"}
            }
        },
        "handler.signupRequest": {
            "type": "object",
            "properties": {
                "confirm_password": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "handler.signupResponse": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "role": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
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
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Wellness Portal API",
	Description:      "Accounts, sessions, health articles and wellness tools.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
