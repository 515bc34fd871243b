package config

import "os"

const apiKeyEnvVar = "TMDB_API_KEY"

func lookupAPIKeyEnv() (string, bool) {
	return os.LookupEnv(apiKeyEnvVar)
}
