package configuration

import (
	"github.com/fulldump/arrayinit/arrayinit"
)

func Default() *Configuration {
	return &Configuration{
		HttpAddr:          "127.0.0.1:8080",
		Threshold:         arrayinit.DefaultThreshold,
		MaxLength:         16 * 1024 * 1024,
		EnableCompression: true,
		ShowBanner:        true,
	}
}
