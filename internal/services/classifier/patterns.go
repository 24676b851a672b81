package classifier

import "github.com/ternarybob/limes/internal/models"

// rule is one entry in the ordered detection table. A rule fires when any
// of its keywords appears as a substring of the lower-cased description.
// Table order, not match position, decides emission order.
type rule struct {
	keywords []string
	name     string
	compType models.ComponentType
	boundary string
}

// rules is the fixed detection table. Keyword matching is plain substring
// search, so a keyword can fire inside a larger word ("ui" inside
// "build"); that quirk is accepted and covered by tests. The mobile rule
// deliberately has no bare "app" keyword because it would fire inside
// "application".
var rules = []rule{
	{[]string{"web", "frontend", "ui", "portal", "dashboard"}, "Web Frontend", models.ComponentTypeServer, "Internet"},
	{[]string{"api", "backend", "rest", "graphql", "service"}, "API Server", models.ComponentTypeServer, "DMZ"},
	{[]string{"database", "postgres", "mysql", "sql", "mongo"}, "Database", models.ComponentTypeDatabase, "Internal"},
	{[]string{"redis", "cache", "memcache"}, "Cache", models.ComponentTypeCache, "Internal"},
	{[]string{"storage", "s3", "blob", "bucket"}, "File Storage", models.ComponentTypeFileStorage, "Internal"},
	{[]string{"user", "customer", "client"}, "User", models.ComponentTypeUser, "Internet"},
	{[]string{"admin", "administrator"}, "Admin", models.ComponentTypeAdmin, "Internet"},
	{[]string{"payment", "stripe", "paypal"}, "Payment Gateway", models.ComponentTypeExternalService, "Internet"},
	{[]string{"email", "smtp", "mail"}, "Email Service", models.ComponentTypeExternalService, "Internet"},
	{[]string{"auth", "oauth", "sso", "identity"}, "Auth Provider", models.ComponentTypeExternalService, "Internet"},
	{[]string{"mobile", "ios", "android", "smartphone"}, "Mobile App", models.ComponentTypeActor, "Internet"},
	{[]string{"microservice"}, "Microservice", models.ComponentTypeMicroservice, "Internal"},
	{[]string{"queue", "kafka", "rabbitmq"}, "Message Queue", models.ComponentTypeDatastore, "Internal"},
	{[]string{"cdn", "cloudfront"}, "CDN", models.ComponentTypeExternalService, "Internet"},
	{[]string{"lambda", "serverless", "function"}, "Lambda Function", models.ComponentTypeLambda, "Cloud"},
	{[]string{"load balancer", "nginx", "haproxy"}, "Load Balancer", models.ComponentTypeInfrastructure, "DMZ"},
}

// boundaryCatalog maps the boundary names the table can register onto
// their full records.
var boundaryCatalog = map[string]models.TrustBoundary{
	"Internet": {Name: "Internet", Type: models.BoundaryTypeInternet, SecurityLevel: 0, Description: "Public internet zone"},
	"DMZ":      {Name: "DMZ", Type: models.BoundaryTypeDMZ, SecurityLevel: 3, Description: "Demilitarized zone"},
	"Internal": {Name: "Internal", Type: models.BoundaryTypeInternal, SecurityLevel: 7, Description: "Internal network zone"},
	"Cloud":    {Name: "Cloud", Type: models.BoundaryTypeCloud, SecurityLevel: 5, Description: "Cloud provider zone"},
}

// Default components synthesized after the table pass.
const (
	defaultActorName  = "User"
	defaultServerName = "Application Server"
)
