package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func comp(name string, t ComponentType) Component {
	return Component{Name: name, Type: t, Boundary: "Internet"}
}

func TestDefaultFlowPlanAvoidsCrossProduct(t *testing.T) {
	components := []Component{
		comp("User", ComponentTypeUser),
		comp("Admin", ComponentTypeAdmin),
		comp("Web Frontend", ComponentTypeServer),
		comp("API Server", ComponentTypeServer),
	}

	plan := DefaultFlowPlan(components)

	var requests, responses int
	for _, flow := range plan {
		if flow.Response {
			responses++
		} else {
			requests++
		}
	}

	// actor[0] to both servers, actor[1] to server[0] only, one response.
	assert.Equal(t, 3, requests)
	assert.Equal(t, 1, responses)
	assert.Equal(t, PlannedFlow{Source: "Web Frontend", Destination: "User", Label: "Response", Response: true}, plan[1])
}

func TestDefaultFlowPlanStoresAndExternals(t *testing.T) {
	components := []Component{
		comp("User", ComponentTypeUser),
		comp("Web Frontend", ComponentTypeServer),
		comp("API Server", ComponentTypeServer),
		comp("Database", ComponentTypeDatabase),
		comp("Cache", ComponentTypeCache),
		comp("Payment Gateway", ComponentTypeExternalService),
	}

	plan := DefaultFlowPlan(components)

	// Only the first server sources store and external edges.
	for _, flow := range plan {
		if flow.Label == "Query" || flow.Label == "API" {
			assert.Equal(t, "Web Frontend", flow.Source)
		}
	}

	var queries, apis int
	for _, flow := range plan {
		switch flow.Label {
		case "Query":
			queries++
		case "API":
			apis++
		}
	}
	assert.Equal(t, 2, queries)
	assert.Equal(t, 1, apis)
}

func TestDefaultFlowPlanNoServers(t *testing.T) {
	components := []Component{
		comp("User", ComponentTypeUser),
		comp("Database", ComponentTypeDatabase),
	}
	assert.Empty(t, DefaultFlowPlan(components))
}
