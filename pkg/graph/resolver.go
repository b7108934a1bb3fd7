package graph

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=resolver.go -destination=mocks/resolver.gen.go -package=mocks

// Resolver supplies the already resolved dependency graph of a project.
// Each top-level declared dependency maps to its direct transitive modules.
// An empty map means there is nothing to analyze and is not an error.
type Resolver interface {
	Resolve(projectDir string) (DependencyModuleMap, error)
}
