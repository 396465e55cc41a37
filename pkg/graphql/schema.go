// Package graphql exposes the catalog and order lookups as a GraphQL query
// schema served at POST /graphql.
package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/storefront/app/models"
)

// Catalog is the product lookup the schema resolves against.
type Catalog interface {
	All() ([]models.Product, error)
	ByID(id int) (models.Product, bool, error)
	Search(query string) ([]models.Product, error)
}

// Orders is the order lookup the schema resolves against.
type Orders interface {
	OrderByID(id int) (models.Order, bool, error)
	UserOrders(email string) ([]models.Order, error)
}

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"name":        &graphql.Field{Type: graphql.String},
		"price":       &graphql.Field{Type: graphql.Float},
		"rating":      &graphql.Field{Type: graphql.Float},
		"reviews":     &graphql.Field{Type: graphql.Int},
		"description": &graphql.Field{Type: graphql.String},
		"imageUrl":    &graphql.Field{Type: graphql.String},
		"displayPrice": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Product).DisplayPrice(), nil
			},
		},
	},
})

var lineItemType = graphql.NewObject(graphql.ObjectConfig{
	Name: "LineItem",
	Fields: graphql.Fields{
		"product":  &graphql.Field{Type: productType},
		"quantity": &graphql.Field{Type: graphql.Int},
		"total": &graphql.Field{
			Type: graphql.Float,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.LineItem).Total(), nil
			},
		},
	},
})

var orderType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Order",
	Fields: graphql.Fields{
		"id": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"formattedId": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Order).FormattedID(), nil
			},
		},
		"userEmail": &graphql.Field{Type: graphql.String},
		"items":     &graphql.Field{Type: graphql.NewList(lineItemType)},
		"total":     &graphql.Field{Type: graphql.Float},
		"date": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Order).DisplayDate(), nil
			},
		},
		"fullName": &graphql.Field{Type: graphql.String},
		"address":  &graphql.Field{Type: graphql.String},
		"phone":    &graphql.Field{Type: graphql.String},
		"email":    &graphql.Field{Type: graphql.String},
		"status":   &graphql.Field{Type: graphql.String},
	},
})

// NewSchema builds the query schema over catalog and orders.
func NewSchema(catalog Catalog, orders Orders) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type: graphql.NewList(productType),
				Resolve: func(graphql.ResolveParams) (interface{}, error) {
					return catalog.All()
				},
			},
			"product": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					prod, ok, err := catalog.ByID(p.Args["id"].(int))
					if err != nil || !ok {
						return nil, err
					}
					return prod, nil
				},
			},
			"search": &graphql.Field{
				Type: graphql.NewList(productType),
				Args: graphql.FieldConfigArgument{
					"query": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return catalog.Search(p.Args["query"].(string))
				},
			},
			"order": &graphql.Field{
				Type: orderType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					o, ok, err := orders.OrderByID(p.Args["id"].(int))
					if err != nil || !ok {
						return nil, err
					}
					return o, nil
				},
			},
			"orders": &graphql.Field{
				Type: graphql.NewList(orderType),
				Args: graphql.FieldConfigArgument{
					"email": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return orders.UserOrders(p.Args["email"].(string))
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: query,
	})
}
