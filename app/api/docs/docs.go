// Package docs holds the swagger document served under /swagger,
// regenerate it with `swag init -g app/api/main.go -o app/api/docs`.
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
				"tags": [
					"health"
				],
				"summary": "Health check",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/auth/signingMsgTemplate": {
			"get": {
				"tags": [
					"auth"
				],
				"summary": "Signing message template",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/listings": {
			"get": {
				"tags": [
					"listings"
				],
				"summary": "Browse listings",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"name": "seller",
						"in": "query",
						"required": false,
						"type": "string"
					},
					{
						"name": "mint",
						"in": "query",
						"required": false,
						"type": "string"
					},
					{
						"name": "status",
						"in": "query",
						"required": false,
						"type": "string"
					},
					{
						"name": "offset",
						"in": "query",
						"required": false,
						"type": "integer"
					},
					{
						"name": "limit",
						"in": "query",
						"required": false,
						"type": "integer"
					},
					{
						"name": "sortBy",
						"in": "query",
						"required": false,
						"type": "string"
					},
					{
						"name": "sortDir",
						"in": "query",
						"required": false,
						"type": "integer"
					}
				]
			},
			"post": {
				"tags": [
					"listings"
				],
				"summary": "List an NFT",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"name": "params",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"security": [
					{
						"SignerAuth": []
					}
				]
			}
		},
		"/listings/derive": {
			"get": {
				"tags": [
					"listings"
				],
				"summary": "Derive listing addresses",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"name": "seller",
						"in": "query",
						"required": true,
						"type": "string"
					},
					{
						"name": "mint",
						"in": "query",
						"required": true,
						"type": "string"
					}
				]
			}
		},
		"/listings/{address}": {
			"get": {
				"tags": [
					"listings"
				],
				"summary": "Get a listing",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"name": "address",
						"in": "path",
						"required": true,
						"type": "string"
					}
				]
			}
		},
		"/listings/{address}/activities": {
			"get": {
				"tags": [
					"listings"
				],
				"summary": "Listing activities",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"name": "address",
						"in": "path",
						"required": true,
						"type": "string"
					}
				]
			}
		},
		"/listings/{address}/buy": {
			"post": {
				"tags": [
					"listings"
				],
				"summary": "Buy a listed NFT",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"name": "address",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"name": "params",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"security": [
					{
						"SignerAuth": []
					}
				]
			}
		},
		"/listings/{address}/cancel": {
			"post": {
				"tags": [
					"listings"
				],
				"summary": "Cancel a listing",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"name": "address",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"name": "params",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"security": [
					{
						"SignerAuth": []
					}
				]
			}
		},
		"/mints": {
			"post": {
				"tags": [
					"tokens"
				],
				"summary": "Create a mint",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"name": "params",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"security": [
					{
						"SignerAuth": []
					}
				]
			}
		},
		"/mints/{address}": {
			"get": {
				"tags": [
					"tokens"
				],
				"summary": "Get a mint",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"name": "address",
						"in": "path",
						"required": true,
						"type": "string"
					}
				]
			}
		},
		"/token-accounts/{address}": {
			"get": {
				"tags": [
					"tokens"
				],
				"summary": "Get a token account",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"name": "address",
						"in": "path",
						"required": true,
						"type": "string"
					}
				]
			}
		},
		"/accounts/{owner}/tokens": {
			"get": {
				"tags": [
					"tokens"
				],
				"summary": "Get holdings",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"name": "owner",
						"in": "path",
						"required": true,
						"type": "string"
					}
				]
			}
		},
		"/wallets/{address}": {
			"get": {
				"tags": [
					"wallets"
				],
				"summary": "Get wallet balance",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"name": "address",
						"in": "path",
						"required": true,
						"type": "string"
					}
				]
			}
		},
		"/wallets/{address}/airdrop": {
			"post": {
				"tags": [
					"wallets"
				],
				"summary": "Airdrop SOL",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"name": "address",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"name": "params",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				]
			}
		}
	},
	"securityDefinitions": {
		"SignerAuth": {
			"description": "signed requests also carry X-Timestamp and X-Signature, see #/auth/get_auth_signingMsgTemplate",
			"type": "apiKey",
			"name": "X-Signer",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "NFT Escrow API",
	Description:      "Escrow based NFT marketplace on a simulated Solana ledger.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
