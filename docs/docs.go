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
        "/cart": {
            "get": {
                "tags": [
                    "Cart"
                ],
                "summary": "Get the cart",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            },
            "delete": {
                "tags": [
                    "Cart"
                ],
                "summary": "Empty the cart",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "500": {
                        "description": "Error"
                    }
                }
            }
        },
        "/cart/items": {
            "post": {
                "tags": [
                    "Cart"
                ],
                "summary": "Add a product to the cart",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Error"
                    },
                    "404": {
                        "description": "Error"
                    },
                    "500": {
                        "description": "Error"
                    }
                },
                "parameters": [
                    {
                        "name": "item",
                        "in": "body",
                        "required": true,
                        "description": "Product to add",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/cart/items/{id}": {
            "patch": {
                "tags": [
                    "Cart"
                ],
                "summary": "Change a line quantity",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Error"
                    },
                    "404": {
                        "description": "Error"
                    },
                    "500": {
                        "description": "Error"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Product ID",
                        "type": "string"
                    },
                    {
                        "name": "change",
                        "in": "body",
                        "required": true,
                        "description": "Quantity delta",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "delete": {
                "tags": [
                    "Cart"
                ],
                "summary": "Remove a line from the cart",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "500": {
                        "description": "Error"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Product ID",
                        "type": "string"
                    }
                ]
            }
        },
        "/categories": {
            "get": {
                "tags": [
                    "Catalog"
                ],
                "summary": "List product categories",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "502": {
                        "description": "Error"
                    },
                    "503": {
                        "description": "Error"
                    }
                }
            }
        },
        "/products": {
            "get": {
                "tags": [
                    "Catalog"
                ],
                "summary": "List products",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "502": {
                        "description": "Error"
                    },
                    "503": {
                        "description": "Error"
                    }
                },
                "parameters": [
                    {
                        "name": "category",
                        "in": "query",
                        "required": false,
                        "description": "Category ID",
                        "type": "string"
                    },
                    {
                        "name": "brand",
                        "in": "query",
                        "required": false,
                        "description": "Brand",
                        "type": "string"
                    },
                    {
                        "name": "q",
                        "in": "query",
                        "required": false,
                        "description": "Case-insensitive text search",
                        "type": "string"
                    }
                ]
            }
        },
        "/products/{id}": {
            "get": {
                "tags": [
                    "Catalog"
                ],
                "summary": "Get a product by ID",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Error"
                    },
                    "503": {
                        "description": "Error"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Product ID",
                        "type": "string"
                    }
                ]
            }
        },
        "/checkout": {
            "get": {
                "tags": [
                    "Checkout"
                ],
                "summary": "Get the checkout state",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            },
            "post": {
                "tags": [
                    "Checkout"
                ],
                "summary": "Place the order",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Error"
                    },
                    "409": {
                        "description": "Error"
                    },
                    "502": {
                        "description": "Error"
                    },
                    "503": {
                        "description": "Error"
                    }
                },
                "parameters": [
                    {
                        "name": "form",
                        "in": "body",
                        "required": true,
                        "description": "Customer and delivery details",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/checkout/begin": {
            "post": {
                "tags": [
                    "Checkout"
                ],
                "summary": "Open the checkout form",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Error"
                    },
                    "409": {
                        "description": "Error"
                    }
                }
            }
        },
        "/checkout/reset": {
            "post": {
                "tags": [
                    "Checkout"
                ],
                "summary": "Close the checkout",
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
        "/delivery/zones": {
            "get": {
                "tags": [
                    "Delivery"
                ],
                "summary": "List delivery zones",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Error"
                    },
                    "503": {
                        "description": "Error"
                    }
                }
            }
        },
        "/delivery/date": {
            "get": {
                "tags": [
                    "Delivery"
                ],
                "summary": "Preview the delivery date for a city",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Error"
                    },
                    "503": {
                        "description": "Error"
                    }
                },
                "parameters": [
                    {
                        "name": "city",
                        "in": "query",
                        "required": false,
                        "description": "City",
                        "type": "string"
                    }
                ]
            }
        },
        "/offers/options": {
            "get": {
                "tags": [
                    "Offers"
                ],
                "summary": "List offer form choices",
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
        "/offers": {
            "post": {
                "tags": [
                    "Offers"
                ],
                "summary": "Request a business quote",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "202": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Error"
                    },
                    "404": {
                        "description": "Error"
                    },
                    "502": {
                        "description": "Error"
                    },
                    "503": {
                        "description": "Error"
                    }
                },
                "parameters": [
                    {
                        "name": "offer",
                        "in": "body",
                        "required": true,
                        "description": "Quote request",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/orders": {
            "get": {
                "tags": [
                    "Orders"
                ],
                "summary": "List past orders",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Error"
                    },
                    "503": {
                        "description": "Error"
                    }
                },
                "parameters": [
                    {
                        "name": "email",
                        "in": "query",
                        "required": false,
                        "description": "Customer email (remote history only)",
                        "type": "string"
                    }
                ]
            }
        },
        "/orders/{id}": {
            "get": {
                "tags": [
                    "Orders"
                ],
                "summary": "Get an order by ID",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Error"
                    },
                    "503": {
                        "description": "Error"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Order ID",
                        "type": "string"
                    }
                ]
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Aqualan Storefront API",
	Description:      "Backend-for-frontend of the Aqualan water delivery storefront.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
