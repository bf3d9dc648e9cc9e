// Package swagger registers the OpenAPI document served at /swagger/*.
// Keep it in sync with the handler annotations (swag init -g cmd/start.go -o docs/swagger).
package swagger

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
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "in": "header", "name": "X-API-Key"}
    },
    "security": [{"ApiKeyAuth": []}],
    "paths": {
        "/loadout/plan": {
            "post": {
                "description": "Reconstruct the concrete artifact set for a target loadout and list the steps to wear it.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["loadout"],
                "summary": "Plan Loadout",
                "parameters": [
                    {"description": "Target and backup", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.PlanRequest"}}
                ],
                "responses": {
                    "200": {"description": "Plan", "schema": {"$ref": "#/definitions/models.PlanResponse"}},
                    "400": {"description": "Invalid Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Backup Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/loadout/earnings": {
            "post": {
                "description": "Compute the virtual earnings multiplier of an artifact set on a farm.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["loadout"],
                "summary": "Score Loadout",
                "parameters": [
                    {"description": "Set and farm", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.EarningsRequest"}}
                ],
                "responses": {
                    "200": {"description": "Score", "schema": {"$ref": "#/definitions/models.EarningsResponse"}},
                    "400": {"description": "Invalid Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/loadout/strategies": {
            "get": {
                "description": "List the prestige strategies the earnings model understands.",
                "produces": ["application/json"],
                "tags": ["loadout"],
                "summary": "List Strategies",
                "responses": {
                    "200": {"description": "Strategies", "schema": {"$ref": "#/definitions/models.StrategiesResponse"}}
                }
            }
        },
        "/integrity": {
            "get": {
                "description": "Performs every integrity check (Structure, Catalog, Server).",
                "produces": ["application/json"],
                "tags": ["integrity"],
                "summary": "Run All Integrity Checks",
                "responses": {
                    "200": {"description": "Combined Report", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/integrity/structure": {
            "get": {
                "description": "Checks that the catalog and backup folders exist in the storage bucket. Optionally creates missing folders.",
                "produces": ["application/json"],
                "tags": ["integrity"],
                "summary": "Check Structure",
                "parameters": [
                    {"type": "boolean", "description": "Fix missing folders", "name": "fix", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Structure Report", "schema": {"type": "object", "additionalProperties": true}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/integrity/catalog": {
            "get": {
                "description": "Loads the catalog (through the cache) and reports item counts and unusable entries.",
                "produces": ["application/json"],
                "tags": ["integrity"],
                "summary": "Check Catalog",
                "responses": {
                    "200": {"description": "Catalog Report", "schema": {"$ref": "#/definitions/checks.CatalogReport"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/integrity/catalog/refresh": {
            "post": {
                "description": "Drops the cached catalog, reloads it from its source and reports on it.",
                "produces": ["application/json"],
                "tags": ["integrity"],
                "summary": "Refresh Catalog",
                "responses": {
                    "200": {"description": "Catalog Report", "schema": {"$ref": "#/definitions/checks.CatalogReport"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/integrity/server": {
            "get": {
                "description": "Checks that the artifact_catalog table has every column the planner reads.",
                "produces": ["application/json"],
                "tags": ["integrity"],
                "summary": "Check Server Schema",
                "responses": {
                    "200": {"description": "Server Check Report", "schema": {"$ref": "#/definitions/checks.ServerReport"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "No Database", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "checks.CatalogReport": {
            "type": "object",
            "properties": {
                "items": {"type": "integer"},
                "artifacts": {"type": "integer"},
                "stones": {"type": "integer"},
                "problems": {"type": "array", "items": {"type": "string"}},
                "status": {"type": "string"}
            }
        },
        "checks.TableReport": {
            "type": "object",
            "properties": {
                "missing_columns": {"type": "array", "items": {"type": "string"}},
                "status": {"type": "string"}
            }
        },
        "checks.ServerReport": {
            "type": "object",
            "properties": {
                "matched": {"type": "boolean"},
                "tables": {"type": "object", "additionalProperties": {"$ref": "#/definitions/checks.TableReport"}},
                "errors": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.ArtifactDoc": {
            "type": "object",
            "properties": {
                "host": {"type": "string"},
                "stones": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.TargetDoc": {
            "type": "object",
            "properties": {
                "artifacts": {"type": "array", "items": {"type": "string"}},
                "stones": {"type": "array", "items": {"type": "string"}}
            }
        },
        "effects.Snapshot": {
            "type": "object",
            "properties": {
                "earning_bonus": {"type": "number"},
                "max_running_chicken_bonus": {"type": "number"}
            }
        },
        "earnings.Modifiers": {
            "type": "object",
            "properties": {
                "away_earnings": {"type": "number"}
            }
        },
        "models.Backup": {
            "type": "object",
            "properties": {
                "equipped": {"type": "array", "items": {"$ref": "#/definitions/models.ArtifactDoc"}},
                "inventory": {"type": "array", "items": {"$ref": "#/definitions/models.ArtifactDoc"}},
                "farm": {"$ref": "#/definitions/effects.Snapshot"}
            }
        },
        "models.PlanRequest": {
            "type": "object",
            "properties": {
                "target": {"$ref": "#/definitions/models.TargetDoc"},
                "backup": {"$ref": "#/definitions/models.Backup"},
                "backup_id": {"type": "string"},
                "strategy": {"type": "string"},
                "modifiers": {"$ref": "#/definitions/earnings.Modifiers"}
            }
        },
        "reconcile.Action": {
            "type": "object",
            "properties": {
                "type": {"type": "string", "enum": ["keep", "equip", "assemble", "unequip"]},
                "slot": {"type": "integer"},
                "artifact": {"type": "string"},
                "stones": {"type": "array", "items": {"type": "string"}},
                "reason": {"type": "string"}
            }
        },
        "reconcile.PlanEntry": {
            "type": "object",
            "properties": {
                "slot": {"type": "integer"},
                "artifact": {"type": "object"},
                "status": {"type": "string", "enum": ["missing_constituents", "awaiting_assembly", "assembled", "equipped"]}
            }
        },
        "reconcile.PlanSummary": {
            "type": "object",
            "properties": {
                "total_artifacts": {"type": "integer"},
                "equipped": {"type": "integer"},
                "assembled": {"type": "integer"},
                "awaiting_assembly": {"type": "integer"},
                "unequipped": {"type": "integer"},
                "stones_to_slot": {"type": "integer"}
            }
        },
        "reconcile.Plan": {
            "type": "object",
            "properties": {
                "entries": {"type": "array", "items": {"$ref": "#/definitions/reconcile.PlanEntry"}},
                "actions": {"type": "array", "items": {"$ref": "#/definitions/reconcile.Action"}},
                "summary": {"$ref": "#/definitions/reconcile.PlanSummary"}
            }
        },
        "models.PlanResponse": {
            "type": "object",
            "properties": {
                "set": {"type": "array", "items": {"$ref": "#/definitions/models.ArtifactDoc"}},
                "plan": {"$ref": "#/definitions/reconcile.Plan"},
                "strategy": {"type": "string"},
                "earnings_multiplier": {"type": "number"}
            }
        },
        "models.EarningsRequest": {
            "type": "object",
            "properties": {
                "set": {"type": "array", "items": {"$ref": "#/definitions/models.ArtifactDoc"}},
                "farm": {"$ref": "#/definitions/effects.Snapshot"},
                "strategy": {"type": "string"},
                "modifiers": {"$ref": "#/definitions/earnings.Modifiers"}
            }
        },
        "models.EarningsResponse": {
            "type": "object",
            "properties": {
                "strategy": {"type": "string"},
                "earnings_multiplier": {"type": "number"}
            }
        },
        "models.StrategiesResponse": {
            "type": "object",
            "properties": {
                "default": {"type": "string"},
                "strategies": {"type": "array", "items": {"type": "string"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Artifact Planner API",
	Description:      "Plans artifact loadouts from a player's backup and scores them.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
