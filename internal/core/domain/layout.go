package domain

const (
	// SettingsFileName is the name of the optional settings file read from the working directory.
	SettingsFileName = "seer.yaml"

	// ProjectFileSuffix is the suffix identifying evaluated project documents.
	ProjectFileSuffix = ".proj.yaml"

	// ProjectReferenceItemType is the item type whose includes form the project reference graph.
	ProjectReferenceItemType = "ProjectReference"

	// FormatText renders predictions as human-readable text.
	FormatText = "text"

	// FormatJSON renders predictions as JSON.
	FormatJSON = "json"
)

// Settings holds the tool settings read from SettingsFileName.
// Zero values mean "use the default".
type Settings struct {
	// Parallelism bounds the number of projects predicted concurrently.
	Parallelism int `yaml:"parallelism"`
	// DisabledPredictors lists predictor names that are not run.
	DisabledPredictors []string `yaml:"disabledPredictors"`
	// StatCacheSize is the number of existence checks kept in memory. Zero disables the cache.
	StatCacheSize int `yaml:"statCacheSize"`
	// Format is the default output format.
	Format string `yaml:"format"`
}
