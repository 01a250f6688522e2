package config

const (
	// Reference data paths, relative to DATA_DIR
	ConfigPathItems   = "items/items.json"
	ConfigPathRecipes = "recipes/recipes.json"
	ConfigPathJobs    = "jobs/jobs.json"
)

// Storage backends
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)
