package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Resource Hub Web Gateway",
        "description": "Session-bridging front-end gateway for the resource sharing platform",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Session creation and destruction"},
        {"name": "Proxy", "description": "Same-origin relay to the upstream API"},
        {"name": "Levels", "description": "Department-dependent level ladder"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate and establish a session cookie",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Session established"},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "429": {"description": "Too many attempts", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Destroy the session",
                "responses": {
                    "204": {"description": "Session cleared"}
                }
            }
        },
        "/api/v1/auth/me": {
            "get": {
                "tags": ["Proxy"],
                "summary": "Current user profile (proxied)",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "No valid session upstream"}
                }
            }
        },
        "/api/v1/departments": {
            "get": {
                "tags": ["Proxy"],
                "summary": "List departments (proxied)",
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Proxy fault", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/v1/departments/{slug}": {
            "get": {
                "tags": ["Proxy"],
                "summary": "Fetch one department (proxied)",
                "parameters": [
                    {"name": "slug", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Unknown department"}
                }
            }
        },
        "/api/v1/resources": {
            "get": {
                "tags": ["Proxy"],
                "summary": "List and filter resources (proxied)",
                "parameters": [
                    {"name": "department", "in": "query", "type": "string"},
                    {"name": "category", "in": "query", "type": "string"},
                    {"name": "level", "in": "query", "type": "string"},
                    {"name": "sort", "in": "query", "type": "string", "enum": ["recent", "popular"]},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Proxy"],
                "summary": "Upload a resource (contributors only, proxied)",
                "consumes": ["multipart/form-data"],
                "responses": {
                    "201": {"description": "Created"},
                    "401": {"description": "Session token missing", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "403": {"description": "Not a contributor", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/v1/resources/{id}/download": {
            "post": {
                "tags": ["Proxy"],
                "summary": "Mint a download URL (proxied)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/levels": {
            "get": {
                "tags": ["Levels"],
                "summary": "Allowed level ladder for a department",
                "parameters": [
                    {"name": "department", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6},
                "accessKey": {"type": "string"}
            }
        },
        "ErrorBody": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "message": {"type": "string"}
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Resource Hub Web Gateway",
	Description:      "Session-bridging front-end gateway for the resource sharing platform",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
