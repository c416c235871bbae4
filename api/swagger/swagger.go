package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Schedule of Classes API",
        "description": "Simple API to get schedule of classes from Rutgers University",
        "version": "0.1.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Schedule Generator", "description": "Course schedule lookup"}
    ],
    "paths": {
        "/schedules": {
            "get": {
                "tags": ["Schedule Generator"],
                "summary": "Retrieve schedule of classes",
                "parameters": [
                    {"name": "year", "in": "query", "required": true, "type": "string"},
                    {"name": "term", "in": "query", "required": true, "type": "string", "enum": ["Spring", "Summer", "Fall", "Winter"]},
                    {"name": "campus", "in": "query", "required": true, "type": "string", "enum": ["Newark", "New Brunswick", "Camden"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Schedule"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    },
    "definitions": {
        "Schedule": {
            "type": "object",
            "properties": {
                "response": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/Course"}
                }
            }
        },
        "Course": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "department": {"type": "string"},
                "courseCode": {"type": "string"},
                "credits": {"type": "string"},
                "sections": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/Section"}
                }
            }
        },
        "Section": {
            "type": "object",
            "properties": {
                "section": {"type": "string"},
                "instructor": {"type": "string"},
                "status": {"type": "string", "enum": ["Open", "Closed"]},
                "meetings": {
                    "type": "array",
                    "items": {"type": "string"}
                }
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ErrorEnvelope": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/APIError"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
