// Package docs registers the OpenAPI document served under /swagger/*.
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
        "/cliente": {
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["clients"],
                "summary": "Create a client",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.clientRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.clientMutationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/clientes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["clients"],
                "summary": "List active clients",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.clientView"}}}
                }
            }
        },
        "/cliente/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["clients"],
                "summary": "Get a client",
                "parameters": [{"type": "string", "description": "Client ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.clientView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["clients"],
                "summary": "Update a client",
                "parameters": [
                    {"type": "string", "description": "Client ID", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.clientRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.clientMutationResponse"}},
                    "405": {"description": "Method Not Allowed", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["clients"],
                "summary": "Soft-delete a client",
                "parameters": [{"type": "string", "description": "Client ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/case": {
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["cases"],
                "summary": "Create a case file",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.caseFileRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.caseFileCreatedResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/cases": {
            "get": {
                "produces": ["application/json"],
                "tags": ["cases"],
                "summary": "List case files",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.caseFileView"}}}}
            }
        },
        "/cases/client/{clientId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["cases"],
                "summary": "List case files of a client",
                "parameters": [{"type": "string", "description": "Client ID", "name": "clientId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.caseFileSummary"}}}}
            }
        },
        "/case/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["cases"],
                "summary": "Get a case file",
                "parameters": [{"type": "string", "description": "Case file ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.caseFileView"}}}
            },
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["cases"],
                "summary": "Update a case file",
                "parameters": [
                    {"type": "string", "description": "Case file ID", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.caseFileRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["cases"],
                "summary": "Delete a case file",
                "parameters": [{"type": "string", "description": "Case file ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}}}
            }
        },
        "/case/{id}/documents": {
            "get": {
                "produces": ["application/json"],
                "tags": ["cases"],
                "summary": "List case file documents",
                "parameters": [{"type": "string", "description": "Case file ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.storedFileView"}}}}
            }
        },
        "/other": {
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["others"],
                "summary": "Create an other document",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.otherDocumentRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.otherDocumentCreatedResponse"}}}
            }
        },
        "/others": {
            "get": {
                "produces": ["application/json"],
                "tags": ["others"],
                "summary": "List other documents",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.otherDocumentView"}}}}
            }
        },
        "/other/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["others"],
                "summary": "Get an other document",
                "parameters": [{"type": "string", "description": "Document ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.otherDocumentView"}}}
            },
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["others"],
                "summary": "Update an other document",
                "parameters": [
                    {"type": "string", "description": "Document ID", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.otherDocumentRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["others"],
                "summary": "Delete an other document",
                "parameters": [{"type": "string", "description": "Document ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}}}
            }
        },
        "/other/{id}/documents": {
            "get": {
                "produces": ["application/json"],
                "tags": ["others"],
                "summary": "List other document files",
                "parameters": [{"type": "string", "description": "Document ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.storedFileView"}}}}
            }
        },
        "/usuarios": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.userView"}}}}
            }
        },
        "/usuario": {
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create a user",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createUserRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.userCreatedResponse"}}}
            }
        },
        "/usuario/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get a user",
                "parameters": [{"type": "string", "description": "User ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userView"}}}
            },
            "put": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Update a user",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateUserRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userUpdatedResponse"}}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Soft-delete a user",
                "parameters": [{"type": "string", "description": "User ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}}}
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Login",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handler.clientRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"}, "email": {"type": "string"}, "phone": {"type": "string"},
                "dateAdded": {"type": "string"}, "_method": {"type": "string"}
            }
        },
        "handler.clientView": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "name": {"type": "string"}, "email": {"type": "string"},
                "phone": {"type": "string"}, "dateAdded": {"type": "string"}, "active": {"type": "boolean"}
            }
        },
        "handler.clientMutationResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}, "id": {"type": "string"},
                "data": {"$ref": "#/definitions/handler.clientView"}
            }
        },
        "handler.messageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "id": {"type": "string"}}
        },
        "handler.caseFileRequest": {
            "type": "object",
            "properties": {
                "clientId": {"type": "string"}, "title": {"type": "string"}, "subject": {"type": "string"},
                "date": {"type": "string"}, "place": {"type": "string"}, "court": {"type": "string"},
                "description": {"type": "string"}, "_method": {"type": "string"}
            }
        },
        "handler.caseFileView": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "clientId": {"type": "string"}, "title": {"type": "string"},
                "subject": {"type": "string"}, "date": {"type": "string"}, "place": {"type": "string"},
                "court": {"type": "string"}, "description": {"type": "string"},
                "documents": {"type": "array", "items": {"type": "string"}},
                "googleDriveFolderId": {"type": "string"}, "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}
            }
        },
        "handler.caseFileSummary": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "title": {"type": "string"}}
        },
        "handler.caseFileCreatedResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "id": {"type": "string"}, "driveIds": {"type": "string"}}
        },
        "handler.storedFileView": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "name": {"type": "string"},
                "mimeType": {"type": "string"}, "size": {"type": "integer"}
            }
        },
        "handler.otherDocumentRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"}, "type": {"type": "string"}, "description": {"type": "string"},
                "author": {"type": "string"}, "tags": {"type": "array", "items": {"type": "string"}},
                "source": {"type": "string"}, "jurisdiction": {"type": "string"}, "court": {"type": "string"},
                "caseNumber": {"type": "string"}, "year": {"type": "string"}, "notes": {"type": "string"},
                "date": {"type": "string"}, "_method": {"type": "string"}
            }
        },
        "handler.otherDocumentView": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "title": {"type": "string"}, "type": {"type": "string"},
                "description": {"type": "string"}, "author": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "source": {"type": "string"}, "jurisdiction": {"type": "string"}, "court": {"type": "string"},
                "caseNumber": {"type": "string"}, "year": {"type": "string"}, "notes": {"type": "string"},
                "dateAdded": {"type": "string"}, "documents": {"type": "array", "items": {"type": "string"}},
                "googleDriveFolderId": {"type": "string"}, "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}
            }
        },
        "handler.otherDocumentCreatedResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}, "id": {"type": "string"},
                "otherFile": {"$ref": "#/definitions/handler.otherDocumentView"},
                "googleDriveFolderId": {"type": "string"}
            }
        },
        "handler.createUserRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"}, "role": {"type": "string"}, "avatar": {"type": "string"},
                "phone": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string"}
            }
        },
        "handler.updateUserRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"}, "role": {"type": "string"}, "avatar": {"type": "string"},
                "phone": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string"}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "handler.userView": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "name": {"type": "string"}, "role": {"type": "string"},
                "avatar": {"type": "string"}, "phone": {"type": "string"}, "email": {"type": "string"},
                "deleted": {"type": "boolean"}
            }
        },
        "handler.userCreatedResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}, "idUsuario": {"type": "string"},
                "usuario": {"$ref": "#/definitions/handler.userView"}
            }
        },
        "handler.userUpdatedResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "usuario": {"$ref": "#/definitions/handler.userView"}}
        },
        "handler.loginResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}, "user": {"$ref": "#/definitions/handler.userView"},
                "token": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Legal Records API",
	Description:      "Clients, case files, other documents and users of the legal practice.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
