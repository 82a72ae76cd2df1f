package storage

import "github.com/spf13/viper"

// MinIOConfig holds MinIO connection configuration
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

// LoadMinIOConfig reads the MINIO_* keys from viper (environment backed).
// An empty Endpoint means object archiving is disabled.
func LoadMinIOConfig() *MinIOConfig {
	viper.AutomaticEnv()
	viper.SetDefault("MINIO_BUCKET", "docqa-uploads")
	return &MinIOConfig{
		Endpoint:  viper.GetString("MINIO_ENDPOINT"),
		AccessKey: viper.GetString("MINIO_ACCESS_KEY"),
		SecretKey: viper.GetString("MINIO_SECRET_KEY"),
		UseSSL:    viper.GetBool("MINIO_USE_SSL"),
		Bucket:    viper.GetString("MINIO_BUCKET"),
	}
}
