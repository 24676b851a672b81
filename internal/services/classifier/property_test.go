package classifier

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/ternarybob/limes/internal/models"
)

// TestExtractProperties verifies the classifier invariants over random
// descriptions: the output is always total and well-formed regardless of
// input.
func TestExtractProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)
	svc := newTestService()

	properties.Property("always yields an actor and a server", prop.ForAll(
		func(description string) bool {
			components, _ := svc.Extract(description)
			hasActor, hasServer := false, false
			for _, c := range components {
				switch c.Type.Category() {
				case models.CategoryActor:
					hasActor = true
				case models.CategoryProcess:
					hasServer = true
				}
			}
			return hasActor && hasServer
		},
		gen.AnyString(),
	))

	properties.Property("Internet boundary always present", prop.ForAll(
		func(description string) bool {
			_, boundaries := svc.Extract(description)
			for _, b := range boundaries {
				if b.Name == "Internet" {
					return true
				}
			}
			return false
		},
		gen.AnyString(),
	))

	properties.Property("every component boundary is registered", prop.ForAll(
		func(description string) bool {
			components, boundaries := svc.Extract(description)
			registered := make(map[string]bool, len(boundaries))
			for _, b := range boundaries {
				registered[b.Name] = true
			}
			for _, c := range components {
				if !registered[c.Boundary] {
					return false
				}
			}
			return true
		},
		gen.AnyString(),
	))

	properties.Property("component slugs contain only identifier characters", prop.ForAll(
		func(description string) bool {
			components, _ := svc.Extract(description)
			for _, c := range components {
				for _, r := range models.Slug(c.Name) {
					valid := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_'
					if !valid {
						return false
					}
				}
			}
			return true
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
