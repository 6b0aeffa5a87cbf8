package cmd

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	OracleBaseURL          string
	RegistryOwner          string
	DefaultThresholdMeters int64
	StaleRequestAgeMinutes int64
}
