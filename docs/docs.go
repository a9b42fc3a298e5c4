// Package docs holds the swagger specification served at /swagger.
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
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Type \"Bearer\" followed by a space and JWT token."
        }
    },
    "paths": {
        "/register": {
            "post": {
                "tags": ["Auth"],
                "summary": "Register a new user (admin-password gated)",
                "responses": {
                    "201": {"description": "Created"},
                    "403": {"description": "Invalid admin password"},
                    "409": {"description": "User already exists"}
                }
            }
        },
        "/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Log in and receive a JWT",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Invalid email or password"}
                }
            }
        },
        "/tasks": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tasks"],
                "summary": "List the caller's tasks ordered by due date then start time",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tasks"],
                "summary": "Create a task",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Title is required"}
                }
            }
        },
        "/tasks/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tasks"],
                "summary": "Get a task by id",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Task not found"}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tasks"],
                "summary": "Replace every field of a task",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Title is required"},
                    "404": {"description": "Task not found"}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tasks"],
                "summary": "Delete a task",
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Task not found"}}
            }
        },
        "/tasks/{id}/status": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tasks"],
                "summary": "Change only a task's status",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Task not found"}}
            }
        },
        "/tasks/{id}/instructions": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tasks"],
                "summary": "Generate and persist instructions for a task",
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Generation failed"},
                    "503": {"description": "Generation not configured"}
                }
            }
        },
        "/views/today": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Views"],
                "summary": "Tasks due today split into doing, overdue and completed",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/views/week": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Views"],
                "summary": "Tasks due in the current Mon-Sun week",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/views/month": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Views"],
                "summary": "Tasks due in the current calendar month",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Day Planner API",
	Description:      "API for managing date-scoped personal tasks.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
