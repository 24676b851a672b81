package models

// PlannedFlow is a synthesized edge used when no explicit dataflows were
// supplied. Response marks the single reciprocal server-to-actor edge so
// renderers can style it differently.
type PlannedFlow struct {
	Source      string
	Destination string
	Label       string
	Response    bool
}

// DefaultFlowPlan derives edges from component categories when the model
// carries no explicit dataflows. The plan intentionally under-connects to
// bound visual clutter: the first actor reaches every server, every actor
// reaches the first server (no full cross product), a single reciprocal
// response edge goes from the first server to the first actor, and only
// the first server connects to datastores and externals.
func DefaultFlowPlan(components []Component) []PlannedFlow {
	var actors, servers, stores, externals []Component
	for _, comp := range components {
		switch comp.Type.Category() {
		case CategoryActor:
			actors = append(actors, comp)
		case CategoryProcess:
			servers = append(servers, comp)
		case CategoryDatastore:
			stores = append(stores, comp)
		case CategoryExternal:
			externals = append(externals, comp)
		}
	}

	var plan []PlannedFlow
	for i, actor := range actors {
		for j, server := range servers {
			if i != 0 && j != 0 {
				continue
			}
			plan = append(plan, PlannedFlow{
				Source:      actor.Name,
				Destination: server.Name,
				Label:       "Request",
			})
			if i == 0 && j == 0 {
				plan = append(plan, PlannedFlow{
					Source:      server.Name,
					Destination: actor.Name,
					Label:       "Response",
					Response:    true,
				})
			}
		}
	}

	if len(servers) > 0 {
		first := servers[0]
		for _, store := range stores {
			plan = append(plan, PlannedFlow{
				Source:      first.Name,
				Destination: store.Name,
				Label:       "Query",
			})
		}
		for _, external := range externals {
			plan = append(plan, PlannedFlow{
				Source:      first.Name,
				Destination: external.Name,
				Label:       "API",
			})
		}
	}

	return plan
}
