// Package docs registra la documentación OpenAPI que sirve /swagger/*.
// Se mantiene a mano junto con las anotaciones @Router de los handlers;
// TestSwaggerDoc_CoversRoutes (internal/router) falla si una ruta queda sin documentar.
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
        "/health": {
            "get": {
                "produces": [
                    "text/plain"
                ],
                "tags": [
                    "system"
                ],
                "summary": "Liveness",
                "responses": {
                    "200": {
                        "description": "ok",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/pets": {
            "get": {
                "description": "Lista las mascotas con las favoritas primero (orden estable).",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pets"
                ],
                "summary": "Listar mascotas",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/pets.petResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "description": "Registra una mascota nueva. Se crea con isFavorite=false y un id nuevo.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pets"
                ],
                "summary": "Agregar mascota",
                "parameters": [
                    {
                        "description": "Datos de la mascota; age >= 0",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/pets.createPetRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/pets.petResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / invalid input",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/pets/{petID}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pets"
                ],
                "summary": "Obtener mascota",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la mascota",
                        "name": "petID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/pets.petResponse"
                        }
                    },
                    "400": {
                        "description": "invalid pet id",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "pet not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/pets/{petID}/favorite": {
            "post": {
                "description": "Invierte el flag isFavorite de la mascota.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pets"
                ],
                "summary": "Marcar / desmarcar favorita",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la mascota",
                        "name": "petID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/pets.petResponse"
                        }
                    },
                    "400": {
                        "description": "invalid pet id",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "pet not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/pets/{petID}/health": {
            "get": {
                "description": "Devuelve el último registro (null si no hay) y el historial, el día más reciente primero.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Salud de una mascota",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la mascota",
                        "name": "petID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/health.petHealthResponse"
                        }
                    },
                    "400": {
                        "description": "invalid pet id",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "pet not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "post": {
                "description": "Guarda el estado de salud del día para la mascota. Si ya había un registro hoy, se reemplaza conservando su id.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Registrar estado de salud de hoy",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la mascota",
                        "name": "petID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Estado, temperatura (°C), peso (kg) y notas",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/health.upsertHealthRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/health.healthRecordResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / invalid input",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "pet not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/appointments": {
            "get": {
                "description": "Lista las citas en orden cronológico con el nombre de la mascota. Permite filtrar por tipos, mascota, rango de días y texto.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "appointments"
                ],
                "summary": "Listar citas",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Máximo de citas a devolver (1-200). Por defecto 50",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Lista CSV de tipos (ej: vaccination,grooming)",
                        "name": "types",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Solo citas de esta mascota",
                        "name": "pet_id",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Día mínimo (YYYY-MM-DD, inclusive)",
                        "name": "from",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Día máximo (YYYY-MM-DD, inclusive)",
                        "name": "to",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Texto de búsqueda libre en notas",
                        "name": "q",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/appointments.appointmentResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Parámetros de filtro inválidos",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "post": {
                "description": "Agenda una cita para una mascota existente. type acepta también los valores legacy (veteriner, asi, bakim, egzersiz).",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "appointments"
                ],
                "summary": "Crear cita",
                "parameters": [
                    {
                        "description": "Datos de la cita",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/appointments.appointmentRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/appointments.appointmentResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / invalid input",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "pet not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/appointments/{appointmentID}": {
            "put": {
                "description": "Reemplaza los campos de la cita conservando su id.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "appointments"
                ],
                "summary": "Editar cita",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la cita",
                        "name": "appointmentID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Datos de la cita",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/appointments.appointmentRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/appointments.appointmentResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / invalid input",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "appointment not found / pet not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "delete": {
                "description": "Borra la cita. Con un id desconocido no hace nada (la UI puede tener estado viejo).",
                "tags": [
                    "appointments"
                ],
                "summary": "Borrar cita",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la cita",
                        "name": "appointmentID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "invalid appointment id",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/dashboard": {
            "get": {
                "description": "Cantidad de mascotas, favoritas, citas y próximas citas, y el estado de salud general (gana el peor estado entre los últimos registros de cada mascota). La etiqueta se traduce según ` + "`" + `lang` + "`" + ` o Accept-Language (en, tr).",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "dashboard"
                ],
                "summary": "Resumen del dashboard",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Idioma de las etiquetas (en, tr)",
                        "name": "lang",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Idioma preferido",
                        "name": "Accept-Language",
                        "in": "header"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dashboard.summaryResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "pets.createPetRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "breed": {
                    "type": "string"
                },
                "age": {
                    "type": "integer"
                },
                "imageUrl": {
                    "type": "string"
                }
            }
        },
        "pets.petResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "breed": {
                    "type": "string"
                },
                "age": {
                    "type": "integer"
                },
                "imageUrl": {
                    "type": "string"
                },
                "isFavorite": {
                    "type": "boolean"
                }
            }
        },
        "appointments.appointmentRequest": {
            "type": "object",
            "properties": {
                "petId": {
                    "type": "integer"
                },
                "date": {
                    "type": "string",
                    "description": "YYYY-MM-DD"
                },
                "time": {
                    "type": "string",
                    "description": "HH:MM"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "veterinary-checkup",
                        "vaccination",
                        "grooming",
                        "exercise"
                    ]
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "appointments.appointmentResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "petId": {
                    "type": "integer"
                },
                "petName": {
                    "type": "string"
                },
                "petMissing": {
                    "type": "boolean"
                },
                "date": {
                    "type": "string"
                },
                "time": {
                    "type": "string"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "veterinary-checkup",
                        "vaccination",
                        "grooming",
                        "exercise"
                    ]
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "health.upsertHealthRequest": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string",
                    "description": "opcional, default checkup"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "healthy",
                        "sick",
                        "recovering",
                        "critical"
                    ]
                },
                "temperature": {
                    "type": "number"
                },
                "weight": {
                    "type": "number"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "health.healthRecordResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "petId": {
                    "type": "integer"
                },
                "date": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "healthy",
                        "sick",
                        "recovering",
                        "critical"
                    ]
                },
                "temperature": {
                    "type": "number"
                },
                "weight": {
                    "type": "number"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "health.petHealthResponse": {
            "type": "object",
            "properties": {
                "latest": {
                    "$ref": "#/definitions/health.healthRecordResponse"
                },
                "history": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/health.healthRecordResponse"
                    }
                }
            }
        },
        "dashboard.summaryResponse": {
            "type": "object",
            "properties": {
                "pets": {
                    "type": "integer"
                },
                "favorites": {
                    "type": "integer"
                },
                "appointments": {
                    "type": "integer"
                },
                "upcoming": {
                    "type": "integer"
                },
                "overallHealth": {
                    "type": "string",
                    "enum": [
                        "NoData",
                        "Good",
                        "Recovering",
                        "Attention",
                        "Critical"
                    ]
                },
                "overallLabel": {
                    "type": "string"
                },
                "overallTone": {
                    "type": "string"
                },
                "lang": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pet Care Dashboard API",
	Description:      "API local del dashboard de cuidado de mascotas: mascotas, citas y registros de salud.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
