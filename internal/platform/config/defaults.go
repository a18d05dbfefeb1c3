package config

const (
	defaultServerPort = 8080

	defaultDescriptionMinLength = 5
	defaultPeopleMin            = 1
	defaultPeopleMax            = 6
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"form.description_min_length": defaultDescriptionMinLength,
		"form.people_min":             defaultPeopleMin,
		"form.people_max":             defaultPeopleMax,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "projectboard",
	}
}
