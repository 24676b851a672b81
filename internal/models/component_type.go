package models

// ComponentType identifies what kind of node a component is in the
// architecture model. Types group into categories that drive diagram
// styling and PyTM element selection.
type ComponentType string

const (
	ComponentTypeActor           ComponentType = "actor"
	ComponentTypeUser            ComponentType = "user"
	ComponentTypeAdmin           ComponentType = "admin"
	ComponentTypeServer          ComponentType = "server"
	ComponentTypeProcess         ComponentType = "process"
	ComponentTypeMicroservice    ComponentType = "microservice"
	ComponentTypeLambda          ComponentType = "lambda"
	ComponentTypeDatastore       ComponentType = "datastore"
	ComponentTypeDatabase        ComponentType = "database"
	ComponentTypeCache           ComponentType = "cache"
	ComponentTypeFileStorage     ComponentType = "file_storage"
	ComponentTypeExternalService ComponentType = "external_service"
	ComponentTypeInfrastructure  ComponentType = "infrastructure"
)

// ComponentCategory is the coarse grouping used by the diagram synthesizer
// and the default flow plan.
type ComponentCategory string

const (
	CategoryActor          ComponentCategory = "actor"
	CategoryProcess        ComponentCategory = "process"
	CategoryDatastore      ComponentCategory = "datastore"
	CategoryExternal       ComponentCategory = "external"
	CategoryInfrastructure ComponentCategory = "infrastructure"
	CategoryUnknown        ComponentCategory = "unknown"
)

// IsValid checks if the ComponentType is a known, valid type
func (t ComponentType) IsValid() bool {
	switch t {
	case ComponentTypeActor, ComponentTypeUser, ComponentTypeAdmin,
		ComponentTypeServer, ComponentTypeProcess, ComponentTypeMicroservice, ComponentTypeLambda,
		ComponentTypeDatastore, ComponentTypeDatabase, ComponentTypeCache, ComponentTypeFileStorage,
		ComponentTypeExternalService, ComponentTypeInfrastructure:
		return true
	}
	return false
}

// String returns the string representation of the ComponentType
func (t ComponentType) String() string {
	return string(t)
}

// Category maps the concrete type onto its coarse grouping.
func (t ComponentType) Category() ComponentCategory {
	switch t {
	case ComponentTypeActor, ComponentTypeUser, ComponentTypeAdmin:
		return CategoryActor
	case ComponentTypeServer, ComponentTypeProcess, ComponentTypeMicroservice, ComponentTypeLambda:
		return CategoryProcess
	case ComponentTypeDatastore, ComponentTypeDatabase, ComponentTypeCache, ComponentTypeFileStorage:
		return CategoryDatastore
	case ComponentTypeExternalService:
		return CategoryExternal
	case ComponentTypeInfrastructure:
		return CategoryInfrastructure
	default:
		return CategoryUnknown
	}
}

// AllComponentTypes returns a slice of all valid ComponentType values
func AllComponentTypes() []ComponentType {
	return []ComponentType{
		ComponentTypeActor,
		ComponentTypeUser,
		ComponentTypeAdmin,
		ComponentTypeServer,
		ComponentTypeProcess,
		ComponentTypeMicroservice,
		ComponentTypeLambda,
		ComponentTypeDatastore,
		ComponentTypeDatabase,
		ComponentTypeCache,
		ComponentTypeFileStorage,
		ComponentTypeExternalService,
		ComponentTypeInfrastructure,
	}
}
