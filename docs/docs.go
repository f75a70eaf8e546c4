// Package docs registers the OpenAPI document served under /swagger/.
// Regenerate with `swag init -g cmd/app/main.go` after changing handler annotations.
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
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"}
    },
    "security": [{"ApiKeyAuth": []}],
    "paths": {
        "/round": {
            "get": {"tags": ["round"], "summary": "Get round state", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/round.Snapshot"}}}}
        },
        "/round/bets": {
            "post": {"tags": ["round"], "summary": "Place a bet", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"description": "Bet", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.PlaceBetRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AcceptedResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "402": {"description": "Payment Required", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.AcceptedResponse"}}}},
            "delete": {"tags": ["round"], "summary": "Clear bets", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AcceptedResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.AcceptedResponse"}}}}
        },
        "/round/bets/undo": {
            "post": {"tags": ["round"], "summary": "Undo last bet", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AcceptedResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.AcceptedResponse"}}}}
        },
        "/round/skip": {
            "post": {"tags": ["round"], "summary": "Skip countdown", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AcceptedResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.AcceptedResponse"}}}}
        },
        "/round/pause": {
            "post": {"tags": ["round"], "summary": "Pause", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AcceptedResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.AcceptedResponse"}}}}
        },
        "/round/resume": {
            "post": {"tags": ["round"], "summary": "Resume", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AcceptedResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.AcceptedResponse"}}}}
        },
        "/round/forced": {
            "post": {"tags": ["round"], "summary": "Force the next outcome", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"description": "Overrides", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.ForcedOutcomeRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AcceptedResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.AcceptedResponse"}}}}
        },
        "/round/bonus/choice": {
            "post": {"tags": ["round"], "summary": "Choose for the running bonus", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"description": "Choice", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.BonusChoiceRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AcceptedResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.AcceptedResponse"}}}}
        },
        "/rounds": {
            "get": {"tags": ["rounds"], "summary": "List rounds", "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "description": "Maximum rounds (default 50, max 1000)", "name": "limit", "in": "query"},
                    {"type": "string", "description": "RFC3339 lower bound", "name": "since", "in": "query"},
                    {"type": "string", "description": "RFC3339 upper bound", "name": "until", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.RoundListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}}}
        },
        "/rounds/export": {
            "get": {"tags": ["rounds"], "summary": "Export rounds", "produces": ["text/plain"],
                "parameters": [
                    {"type": "integer", "description": "Maximum rounds", "name": "limit", "in": "query"},
                    {"type": "string", "description": "RFC3339 lower bound", "name": "since", "in": "query"},
                    {"type": "string", "description": "RFC3339 upper bound", "name": "until", "in": "query"}],
                "responses": {"200": {"description": "JSON lines", "schema": {"type": "string"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}}}
        },
        "/rounds/{id}": {
            "get": {"tags": ["rounds"], "summary": "Get round", "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "Round ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.RoundRecord"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}}}
        },
        "/rounds/{id}/replay": {
            "get": {"tags": ["rounds"], "summary": "Replay round", "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "Round ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ReplayResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}}}
        },
        "/simulate": {
            "post": {"tags": ["simulate"], "summary": "Simulate rounds", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"description": "Simulation parameters", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.SimulateRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}}}
        },
        "/events": {
            "get": {"tags": ["events"], "summary": "Live round events", "description": "Server-sent events. Filter with ?types=round.phase,round.completed", "produces": ["text/event-stream"],
                "responses": {"200": {"description": "Event stream"}}}
        }
    },
    "definitions": {
        "handler.AcceptedResponse": {"type": "object", "properties": {"accepted": {"type": "boolean"}, "message": {"type": "string"}}},
        "handler.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "handler.PlaceBetRequest": {"type": "object", "properties": {"label": {"type": "string"}, "amount": {"type": "integer"}}},
        "handler.ForcedOutcomeRequest": {"type": "object", "properties": {"segment_label": {"type": "string"}, "top_slot_left": {"type": "string"}, "top_slot_right": {"type": "integer"}}},
        "handler.BonusChoiceRequest": {"type": "object", "properties": {"side": {"type": "string"}, "cell": {"type": "integer"}, "flapper": {"type": "string"}}},
        "handler.SimulateRequest": {"type": "object", "properties": {"rounds": {"type": "integer"}, "seed": {"type": "integer"}, "bets": {"type": "object", "additionalProperties": {"type": "integer"}}}},
        "handler.RoundListResponse": {"type": "object", "properties": {"count": {"type": "integer"}, "rounds": {"type": "array", "items": {"$ref": "#/definitions/domain.RoundRecord"}}}},
        "handler.ReplayResponse": {"type": "object", "properties": {"round_id": {"type": "string"}, "match": {"type": "boolean"}, "record": {"$ref": "#/definitions/domain.RoundRecord"}}},
        "round.Snapshot": {"type": "object", "properties": {"round_id": {"type": "string"}, "phase": {"type": "string"}, "paused": {"type": "boolean"}, "countdown": {"type": "integer"}, "balance": {"type": "integer"}, "held": {"type": "integer"}, "available": {"type": "integer"}, "total_bet": {"type": "integer"}}},
        "domain.RoundRecord": {"type": "object", "properties": {"round_id": {"type": "string"}, "timestamp": {"type": "string"}, "total_bet": {"type": "integer"}, "is_bonus": {"type": "boolean"}, "bonus_winnings": {"type": "integer"}, "round_winnings": {"type": "integer"}, "net_result": {"type": "integer"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "WheelShow API",
	Description:      "Round engine control, round history and replay, and offline simulation for the wheel show.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
